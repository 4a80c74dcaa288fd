package pocket

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Atom is one vertex record from an fpocket pocket PQR file: the pocket
// identifier it belongs to and its coordinates.
type Atom struct {
	Pocket  int
	X, Y, Z float64
}

// ReadPQR parses a pocket vertex PQR file. Only lines whose record name is
// "ATOM" are read; in those, the fifth whitespace-delimited field is the
// pocket identifier and the sixth through eighth are the x, y and z
// coordinates. A record line with too few fields is an error.
func ReadPQR(fileName string) ([]Atom, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	atoms := make([]Atom, 0, 50)
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if !strings.HasPrefix(line, "ATOM") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 8 {
			return nil, fmt.Errorf("record on line %d of '%s' has %d fields "+
				"but at least 8 are required", lineNum, fileName, len(fields))
		}

		var atom Atom
		num, err := strconv.ParseInt(fields[4], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad pocket number on line %d of '%s': %s",
				lineNum, fileName, err)
		}
		atom.Pocket = int(num)

		coords := []*float64{&atom.X, &atom.Y, &atom.Z}
		for i, dst := range coords {
			*dst, err = strconv.ParseFloat(fields[5+i], 64)
			if err != nil {
				return nil, fmt.Errorf("bad coordinate on line %d of "+
					"'%s': %s", lineNum, fileName, err)
			}
		}
		atoms = append(atoms, atom)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return atoms, nil
}

// PQRFileName returns the conventional name of the vertex PQR file for a
// pocket, e.g. "pocket3_vert.pqr".
func PQRFileName(pocketNum int) string {
	return fmt.Sprintf("pocket%d_vert.pqr", pocketNum)
}
