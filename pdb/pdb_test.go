package pdb

import (
	"os"
	"path/filepath"
	"testing"
)

var pdbText = `HEADER    HYDROLASE
ATOM      1  N   MET A   1      11.104  13.207   2.100  1.00  0.00           N
ATOM      2  CA  MET A   1      12.560  13.329   2.300  1.00  0.00           C
ATOM      3  N   GLY B   1      -1.500   0.250   7.000  1.00  0.00           N
HETATM    4  O   HOH A 201       0.000   0.000   0.000  1.00  0.00           O
END
`

func writePDB(t *testing.T, text string) string {
	t.Helper()
	fileName := filepath.Join(t.TempDir(), "test.pdb")
	if err := os.WriteFile(fileName, []byte(text), 0666); err != nil {
		t.Fatalf("Could not write PDB file: %s", err)
	}
	return fileName
}

func TestNew(t *testing.T) {
	entry, err := New(writePDB(t, pdbText))
	if err != nil {
		t.Fatalf("Could not read PDB file: %s", err)
	}

	// HETATM records are not counted.
	if entry.AtomCount() != 3 {
		t.Errorf("Expected 3 atoms but got %d.", entry.AtomCount())
	}
	if len(entry.Chains) != 2 {
		t.Fatalf("Expected 2 chains but got %d.", len(entry.Chains))
	}

	chainA := entry.Chains['A']
	if chainA.AtomCount != 2 {
		t.Errorf("Chain A has %d atoms, but 2 were expected.",
			chainA.AtomCount)
	}
	if chainA.Min[0] != 11.104 || chainA.Max[0] != 12.560 {
		t.Errorf("Chain A x extent is (%f, %f), but (11.104, 12.560) was "+
			"expected.", chainA.Min[0], chainA.Max[0])
	}

	chainB := entry.Chains['B']
	if chainB.Min != chainB.Max {
		t.Errorf("A single-atom chain should have equal extents, but got "+
			"%v and %v.", chainB.Min, chainB.Max)
	}
}

func TestNewNoAtoms(t *testing.T) {
	entry, err := New(writePDB(t, "HEADER    EMPTY\nEND\n"))
	if err != nil {
		t.Fatalf("Could not read PDB file: %s", err)
	}
	if entry.AtomCount() != 0 {
		t.Errorf("Expected 0 atoms but got %d.", entry.AtomCount())
	}
}

func TestNewShortAtomRecord(t *testing.T) {
	_, err := New(writePDB(t, "ATOM      1  N   MET A   1\n"))
	if err == nil {
		t.Fatal("Expected an error for a truncated ATOM record.")
	}
}
