package pocket

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
)

// Summary is one aggregate row over a pocket's atom set. The coordinate
// fields are kept as strings so that the three-decimal formatting applied
// here survives the trip through CSV untouched.
type Summary struct {
	Pocket  int
	X, Y, Z string
}

// Median computes the per-column median of a pocket's atoms. For an even
// number of atoms the median is the average of the two middle values. The
// pocket column's median is itself coerced to an integer, matching the
// treatment of every other aggregate. Median panics if atoms is empty.
func Median(atoms []Atom) Summary {
	return Summary{
		Pocket: int(median(column(atoms, func(a Atom) float64 {
			return float64(a.Pocket)
		}))),
		X: fmt.Sprintf("%.3f", median(column(atoms, func(a Atom) float64 {
			return a.X
		}))),
		Y: fmt.Sprintf("%.3f", median(column(atoms, func(a Atom) float64 {
			return a.Y
		}))),
		Z: fmt.Sprintf("%.3f", median(column(atoms, func(a Atom) float64 {
			return a.Z
		}))),
	}
}

// Mean computes the per-column arithmetic mean of a pocket's atoms. Mean
// panics if atoms is empty.
func Mean(atoms []Atom) Summary {
	return Summary{
		Pocket: int(mean(column(atoms, func(a Atom) float64 {
			return float64(a.Pocket)
		}))),
		X: fmt.Sprintf("%.3f", mean(column(atoms, func(a Atom) float64 {
			return a.X
		}))),
		Y: fmt.Sprintf("%.3f", mean(column(atoms, func(a Atom) float64 {
			return a.Y
		}))),
		Z: fmt.Sprintf("%.3f", mean(column(atoms, func(a Atom) float64 {
			return a.Z
		}))),
	}
}

func column(atoms []Atom, get func(Atom) float64) []float64 {
	vals := make([]float64, len(atoms))
	for i, atom := range atoms {
		vals[i] = get(atom)
	}
	return vals
}

func median(vals []float64) float64 {
	if len(vals) == 0 {
		panic("BUG: median of an empty column")
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		panic("BUG: mean of an empty column")
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// WriteSummary writes a single-row summary CSV with the header
// "pocket_number,x,y,z".
func WriteSummary(fileName string, sum Summary) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	rows := [][]string{
		{"pocket_number", "x", "y", "z"},
		{fmt.Sprintf("%d", sum.Pocket), sum.X, sum.Y, sum.Z},
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadSummary reads a CSV written by WriteSummary (or any CSV with a
// pocket_number,x,y,z header) back into its rows.
func ReadSummary(fileName string) ([]Summary, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("summary file '%s' has no data rows", fileName)
	}

	sums := make([]Summary, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < 4 {
			return nil, fmt.Errorf("summary file '%s' has a row with %d "+
				"columns but 4 are required", fileName, len(row))
		}
		var sum Summary
		if _, err := fmt.Sscanf(row[0], "%d", &sum.Pocket); err != nil {
			return nil, fmt.Errorf("bad pocket number '%s' in '%s': %s",
				row[0], fileName, err)
		}
		sum.X, sum.Y, sum.Z = row[1], row[2], row[3]
		sums = append(sums, sum)
	}
	return sums, nil
}
