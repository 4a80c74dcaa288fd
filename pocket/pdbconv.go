package pocket

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
)

// CSVToPDB converts a summary CSV into a minimal synthetic PDB file: one
// ATOM record per data row, with a placeholder carbon atom in an "STP"
// residue whose residue sequence number is the pocket identifier. The file
// is terminated with TER and END records.
//
// The output is not a real structure; it exists so that pocket centroids
// can be loaded by tools that only speak PDB.
func CSVToPDB(csvName, pdbName string) error {
	sums, err := ReadSummary(csvName)
	if err != nil {
		return err
	}

	coords := make([][3]float64, len(sums))
	for i, sum := range sums {
		for j, field := range []string{sum.X, sum.Y, sum.Z} {
			coords[i][j], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return fmt.Errorf("bad coordinate '%s' in '%s': %s",
					field, csvName, err)
			}
		}
	}

	f, err := os.Create(pdbName)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)

	for i, sum := range sums {
		// Standard PDB ATOM fixed columns: serial in 7-11, atom name in
		// 13-16, residue name in 18-20, chain in 22, residue sequence
		// number in 23-26, coordinates in 31-54.
		fmt.Fprintf(w, "ATOM  %5d  C   STP A%4d    %8.3f%8.3f%8.3f"+
			"%6.2f%6.2f           C\n",
			i+1, sum.Pocket, coords[i][0], coords[i][1], coords[i][2],
			1.0, 0.0)
	}
	fmt.Fprintln(w, "TER")
	fmt.Fprintln(w, "END")

	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
