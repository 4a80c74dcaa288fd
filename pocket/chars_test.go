package pocket

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var charsCSV = `Pocket,Score,Drug score,SASA,Volume,Extra
1,1.0,0.11,120.5,400.0,junk
2,5.0,0.92,80.25,350.0,junk
3,3.0,0.92,99.0,910.5,junk
4,2.0,0.50,130.75,910.5,junk
`

func TestBest(t *testing.T) {
	records, err := readCharacteristics(strings.NewReader(charsCSV), "test")
	if err != nil {
		t.Fatalf("Could not read characteristics: %s", err)
	}

	best := Best(records)
	answers := map[string]int{
		"score":      2, // Score values are [1,5,3,2]; 5 wins.
		"drug_score": 2, // Tied with pocket 3; first occurrence wins.
		"sasa":       4,
		"volume":     3, // Tied with pocket 4; first occurrence wins.
	}
	for metric, answer := range answers {
		if best[metric] != answer {
			t.Errorf("For metric '%s', pocket %d was selected, but pocket "+
				"%d has the maximum value.", metric, best[metric], answer)
		}
	}
}

func TestReadCharacteristics(t *testing.T) {
	records, err := readCharacteristics(strings.NewReader(charsCSV), "test")
	if err != nil {
		t.Fatalf("Could not read characteristics: %s", err)
	}
	if len(records) != 4 {
		t.Fatalf("Expected 4 records but got %d.", len(records))
	}

	first := Record{Pocket: 1, Score: 1.0, DrugScore: 0.11,
		SASA: 120.5, Volume: 400.0}
	if records[0] != first {
		t.Errorf("First record is %v, but %v was expected.",
			records[0], first)
	}
}

func TestReadCharacteristicsFloatPocket(t *testing.T) {
	csv := "Pocket,Score,Drug score,SASA,Volume\n3.0,1.0,0.5,10.0,20.0\n"
	records, err := readCharacteristics(strings.NewReader(csv), "test")
	if err != nil {
		t.Fatalf("Could not read characteristics: %s", err)
	}
	if records[0].Pocket != 3 {
		t.Errorf("Pocket number is %d, but 3 was expected.",
			records[0].Pocket)
	}
}

func TestFindCharacteristics(t *testing.T) {
	dir := t.TempDir()
	if _, err := FindCharacteristics(dir); !errors.Is(err, ErrNoTable) {
		t.Fatalf("Expected ErrNoTable for an empty directory, got %v.", err)
	}
	if _, err := FindCharacteristics(filepath.Join(dir, "missing")); !errors.Is(err, ErrNoTable) {
		t.Fatalf("Expected ErrNoTable for a missing directory, got %v.", err)
	}

	fileName := filepath.Join(dir, "1abc_characteristics.csv")
	if err := os.WriteFile(fileName, []byte("Pocket\n"), 0666); err != nil {
		t.Fatalf("Could not write file: %s", err)
	}
	found, err := FindCharacteristics(dir)
	if err != nil {
		t.Fatalf("Could not find characteristics file: %s", err)
	}
	if found != fileName {
		t.Errorf("Found '%s', but '%s' was expected.", found, fileName)
	}
}

func TestReadCharacteristicsBadInput(t *testing.T) {
	tests := []string{
		"",
		"Pocket,Score,SASA,Volume\n1,1.0,2.0,3.0\n",
		"Pocket,Score,Drug score,SASA,Volume\n",
		"Pocket,Score,Drug score,SASA,Volume\n1,not-a-number,0.5,1,2\n",
	}
	for i, test := range tests {
		_, err := readCharacteristics(strings.NewReader(test), "test")
		if err == nil {
			t.Errorf("Test %d: expected an error but got none.", i)
		}
	}
}
