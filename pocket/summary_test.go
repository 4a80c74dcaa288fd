package pocket

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMedian(t *testing.T) {
	tests := []struct {
		atoms  []Atom
		answer Summary
	}{
		{
			// Odd count: the middle value of each sorted column.
			[]Atom{
				{3, 1.0, 10.0, -1.0},
				{3, 3.0, 30.0, -3.0},
				{3, 2.0, 20.0, -2.0},
			},
			Summary{3, "2.000", "20.000", "-2.000"},
		},
		{
			// Even count: the average of the two middle values.
			[]Atom{
				{7, 1.0, 10.0, 0.0},
				{7, 2.0, 20.0, 0.5},
				{7, 3.0, 30.0, 1.0},
				{7, 4.0, 40.0, 1.5},
			},
			Summary{7, "2.500", "25.000", "0.750"},
		},
		{
			[]Atom{{5, 1.2345, -1.2345, 0.0005}},
			Summary{5, "1.234", "-1.234", "0.001"},
		},
	}
	for i, test := range tests {
		if sum := Median(test.atoms); sum != test.answer {
			t.Errorf("Test %d: median is %v, but %v was expected.",
				i, sum, test.answer)
		}
	}
}

func TestMean(t *testing.T) {
	atoms := []Atom{
		{2, 1.0, -3.0, 0.1},
		{2, 2.0, -6.0, 0.2},
	}
	answer := Summary{2, "1.500", "-4.500", "0.150"}
	if sum := Mean(atoms); sum != answer {
		t.Errorf("Mean is %v, but %v was expected.", sum, answer)
	}
}

func TestWriteSummary(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "score_median.csv")
	sum := Summary{4, "1.000", "2.500", "-3.250"}
	if err := WriteSummary(fileName, sum); err != nil {
		t.Fatalf("Could not write summary: %s", err)
	}

	bs, err := os.ReadFile(fileName)
	if err != nil {
		t.Fatalf("Could not read summary back: %s", err)
	}
	answer := "pocket_number,x,y,z\n4,1.000,2.500,-3.250\n"
	if string(bs) != answer {
		t.Errorf("Summary file contains %q, but %q was expected.",
			string(bs), answer)
	}

	sums, err := ReadSummary(fileName)
	if err != nil {
		t.Fatalf("Could not re-read summary: %s", err)
	}
	if len(sums) != 1 || sums[0] != sum {
		t.Errorf("Re-read summary is %v, but %v was expected.", sums, sum)
	}
}
