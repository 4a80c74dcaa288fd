package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/fryzjergda/fpocketR-parser/apps/fpocket"
	"github.com/fryzjergda/fpocketR-parser/cmd/util"
	"github.com/fryzjergda/fpocketR-parser/config"
	"github.com/fryzjergda/fpocketR-parser/pdb"
	"github.com/fryzjergda/fpocketR-parser/pocket"
)

var flagFile = ""

func init() {
	flag.StringVar(&flagFile, "f", flagFile,
		"The input PDB file. Required.")
	util.FlagUse("config", "out", "quiet", "vomit")
	util.FlagParse("-f in-pdb-file",
		"Runs fpocketR on the input structure, picks the best pocket for "+
			"each ranking metric, writes median/mean coordinate summaries "+
			"and archives the tool's output tree.")
	if len(flagFile) == 0 {
		util.Usage()
	}
}

func main() {
	cfg, err := config.Load(util.FlagConfig)
	util.Assert(err, "Could not load configuration")
	util.AssertIsDir(util.FlagOut)

	// Preflight: the tool owns real validation, but an input without any
	// ATOM records is worth flagging before a long subprocess run.
	if entry, err := pdb.New(flagFile); err != nil {
		util.Warning(err, "Could not read PDB file '%s'", flagFile)
	} else if entry.AtomCount() == 0 {
		util.Warnf("No ATOM records found in '%s'.", flagFile)
	}

	conf := fpocket.Config{
		Conda:   cfg.CondaExe,
		Env:     cfg.CondaEnv,
		Ligand:  cfg.Ligand,
		Offset:  cfg.Offset,
		Output:  cfg.Output,
		Verbose: cfg.Verbose && !util.FlagQuiet,
		Vomit:   cfg.Vomit || util.FlagVomit,
	}
	res, err := conf.Run(flagFile)
	if errors.Is(err, fpocket.ErrNoPockets) {
		util.Exitf(2, "Processing terminated: no pockets were found in "+
			"'%s'.", flagFile)
	}
	if err != nil {
		util.Exitf(2, "Processing terminated: %s", err)
	}

	writeSummaries(res)

	moved, err := res.MoveSummaries(util.FlagOut)
	util.Assert(err, "Could not move summary files to '%s'", util.FlagOut)

	zipName, err := res.Archive(util.FlagOut)
	util.Assert(err, "Could not archive '%s'", res.Root())
	util.Warnf("Archived fpocketR output to '%s'.", zipName)

	for _, csvFile := range moved {
		pdbFile := strings.TrimSuffix(csvFile, ".csv") + ".pdb"
		util.Assert(pocket.CSVToPDB(csvFile, pdbFile),
			"Could not convert '%s' to PDB", csvFile)
	}
}

// writeSummaries picks the best pocket per metric from the characteristics
// table and writes median/mean coordinate CSVs into the pockets directory.
// A missing characteristics table is a documented no-op: the run still
// archives the tool's output, it just has no summaries to offer.
func writeSummaries(res *fpocket.Results) {
	charsFile, err := pocket.FindCharacteristics(res.CleanDir())
	if errors.Is(err, pocket.ErrNoTable) {
		util.Warnf("No characteristics CSV file found in '%s'.",
			res.CleanDir())
		return
	}
	util.Assert(err, "Could not search '%s'", res.CleanDir())

	records, err := pocket.ReadCharacteristics(charsFile)
	util.Assert(err, "Could not read characteristics table '%s'", charsFile)

	best := pocket.Best(records)
	for _, metric := range pocket.Metrics {
		pocketNum := best[metric]
		pqrFile := filepath.Join(res.PocketsDir(),
			pocket.PQRFileName(pocketNum))
		if _, err := os.Stat(pqrFile); err != nil {
			util.Warnf("Skipping metric %s: no geometry file '%s'.",
				metric, pqrFile)
			continue
		}

		atoms, err := pocket.ReadPQR(pqrFile)
		util.Assert(err, "Could not read geometry file '%s'", pqrFile)

		medianFile := filepath.Join(res.PocketsDir(), metric+"_median.csv")
		meanFile := filepath.Join(res.PocketsDir(), metric+"_mean.csv")
		util.Assert(pocket.WriteSummary(medianFile, pocket.Median(atoms)),
			"Could not write '%s'", medianFile)
		util.Assert(pocket.WriteSummary(meanFile, pocket.Mean(atoms)),
			"Could not write '%s'", meanFile)
	}
}
