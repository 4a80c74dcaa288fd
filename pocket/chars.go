package pocket

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Metrics lists the pocket ranking metrics, in the order summaries are
// produced. Each name is also the file-name stem of the corresponding
// summary CSVs.
var Metrics = []string{"score", "drug_score", "sasa", "volume"}

// ErrNoTable is returned by FindCharacteristics when the target directory
// contains no characteristics CSV. Callers are expected to treat this as
// "nothing to do" rather than a hard failure.
var ErrNoTable = errors.New("no characteristics CSV file found")

// Record is one row of fpocketR's per-pocket characteristics table.
type Record struct {
	Pocket    int
	Score     float64
	DrugScore float64
	SASA      float64
	Volume    float64
}

// Selection maps a metric name to the pocket identifier achieving the
// maximum value of that metric.
type Selection map[string]int

// FindCharacteristics returns the path of the first file in dir matching
// '*characteristics.csv'. If dir does not exist or contains no such file,
// ErrNoTable is returned.
func FindCharacteristics(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*characteristics.csv"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", ErrNoTable
	}
	return matches[0], nil
}

// ReadCharacteristics parses a characteristics CSV file. The file must have
// a header row containing at least the columns "Pocket", "Score",
// "Drug score", "SASA" and "Volume"; any other columns are ignored.
func ReadCharacteristics(fileName string) ([]Record, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readCharacteristics(f, fileName)
}

func readCharacteristics(r io.Reader, name string) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("characteristics file '%s' is empty", name)
	} else if err != nil {
		return nil, err
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[h] = i
	}
	for _, required := range []string{
		"Pocket", "Score", "Drug score", "SASA", "Volume",
	} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("characteristics file '%s' is missing "+
				"the '%s' column", name, required)
		}
	}

	records := make([]Record, 0, 10)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		var rec Record
		rec.Pocket, err = intField(row, cols["Pocket"])
		if err != nil {
			return nil, fmt.Errorf("bad 'Pocket' value in '%s': %s", name, err)
		}
		fields := []struct {
			col string
			dst *float64
		}{
			{"Score", &rec.Score},
			{"Drug score", &rec.DrugScore},
			{"SASA", &rec.SASA},
			{"Volume", &rec.Volume},
		}
		for _, fl := range fields {
			*fl.dst, err = strconv.ParseFloat(row[cols[fl.col]], 64)
			if err != nil {
				return nil, fmt.Errorf("bad '%s' value in '%s': %s",
					fl.col, name, err)
			}
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("characteristics file '%s' has no data rows",
			name)
	}
	return records, nil
}

// Pocket identifiers in the characteristics table are occasionally written
// as floats (e.g. "3.0"), so fall back to float parsing.
func intField(row []string, i int) (int, error) {
	s := row[i]
	if num, err := strconv.ParseInt(s, 10, 32); err == nil {
		return int(num), nil
	}
	num, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(num), nil
}

// Best returns, for every metric in Metrics, the pocket identifier of the
// record with the maximum value of that metric. Ties are broken by first
// occurrence in the table.
func Best(records []Record) Selection {
	sel := make(Selection, len(Metrics))
	for _, metric := range Metrics {
		best := 0
		for i := 1; i < len(records); i++ {
			if metricValue(records[i], metric) >
				metricValue(records[best], metric) {

				best = i
			}
		}
		sel[metric] = records[best].Pocket
	}
	return sel
}

func metricValue(rec Record, metric string) float64 {
	switch metric {
	case "score":
		return rec.Score
	case "drug_score":
		return rec.DrugScore
	case "sasa":
		return rec.SASA
	case "volume":
		return rec.Volume
	}
	panic(fmt.Sprintf("BUG: unknown metric '%s'", metric))
}
