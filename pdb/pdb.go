// Package pdb provides a minimal reader for PDB structure files. It reads
// just enough of a file to sanity check it before handing it to an external
// analysis tool: which chains exist, how many ATOM records each carries and
// the bounding box of their coordinates.
package pdb

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
)

// Entry represents the information read from a PDB file: its path and a map
// of chains keyed by chain identifier.
type Entry struct {
	Path   string
	Chains map[byte]*Chain
}

// Chain is one chain's worth of ATOM records: the chain identifier, the
// number of ATOM records seen and the minimum/maximum coordinate values
// across them.
type Chain struct {
	Ident     byte
	AtomCount int
	Min, Max  [3]float64
	hasCoords bool
}

// New reads a PDB file. Only ATOM records are processed; everything else is
// skipped. If the file name ends with ".gz", gzip decompression is used.
func New(fileName string) (*Entry, error) {
	var reader io.Reader
	var err error

	reader, err = os.Open(fileName)
	if err != nil {
		return nil, err
	}

	if path.Ext(fileName) == ".gz" {
		reader, err = gzip.NewReader(reader)
		if err != nil {
			return nil, err
		}
	}

	entry := &Entry{
		Path:   fileName,
		Chains: make(map[byte]*Chain, 0),
	}

	breader := bufio.NewReaderSize(reader, 1000)
	for {
		// We ignore 'isPrefix' here, since we never care about lines longer
		// than 1000 characters, which is the size of our buffer.
		line, _, err := breader.ReadLine()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		// The record name is always in the first six columns.
		if len(line) < 6 {
			continue
		}
		if strings.TrimSpace(string(line[0:6])) == "ATOM" {
			if err := entry.parseAtom(line); err != nil {
				return nil, err
			}
		}
	}

	return entry, nil
}

// AtomCount returns the total number of ATOM records across all chains.
func (e *Entry) AtomCount() int {
	total := 0
	for _, chain := range e.Chains {
		total += chain.AtomCount
	}
	return total
}

// String returns a sorted list of all chains with their atom counts and
// coordinate extents.
func (e *Entry) String() string {
	lines := make([]string, 0)
	for _, chain := range e.Chains {
		lines = append(lines, chain.String())
	}
	sort.Sort(sort.StringSlice(lines))
	return strings.Join(lines, "\n")
}

// getOrMakeChain looks for a chain in the 'Chains' map corresponding to the
// chain identifier. If one doesn't exist, it is created and returned.
func (e *Entry) getOrMakeChain(ident byte) *Chain {
	if chain, ok := e.Chains[ident]; ok {
		return chain
	}
	e.Chains[ident] = &Chain{Ident: ident}
	return e.Chains[ident]
}

// parseAtom reads the chain identifier from column 22 and the coordinates
// from columns 31-54 of an ATOM record, and folds them into the record's
// chain.
func (e *Entry) parseAtom(line []byte) error {
	if len(line) < 54 {
		return fmt.Errorf("ATOM record in '%s' is %d columns long, but at "+
			"least 54 are required", e.Path, len(line))
	}

	chain := e.getOrMakeChain(line[21])
	chain.AtomCount++

	var coords [3]float64
	for i := 0; i < 3; i++ {
		start := 30 + i*8
		field := strings.TrimSpace(string(line[start : start+8]))
		num, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return fmt.Errorf("bad coordinate '%s' in ATOM record of "+
				"'%s': %s", field, e.Path, err)
		}
		coords[i] = num
	}

	if !chain.hasCoords {
		chain.Min, chain.Max = coords, coords
		chain.hasCoords = true
		return nil
	}
	for i := 0; i < 3; i++ {
		if coords[i] < chain.Min[i] {
			chain.Min[i] = coords[i]
		}
		if coords[i] > chain.Max[i] {
			chain.Max[i] = coords[i]
		}
	}
	return nil
}

// String summarizes one chain on a single line.
func (c *Chain) String() string {
	return fmt.Sprintf("> Chain %c :: %d atoms in (%.3f, %.3f, %.3f) - "+
		"(%.3f, %.3f, %.3f)",
		c.Ident, c.AtomCount,
		c.Min[0], c.Min[1], c.Min[2],
		c.Max[0], c.Max[1], c.Max[2])
}
