package fpocket

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/cmd"
)

// noPocketsSentinel is the literal substring fpocketR emits when it finds
// no pockets. The tool exits 0 in that case, so its output has to be
// inspected in addition to its exit status.
const noPocketsSentinel = "No pockets found"

// ErrNoPockets is returned by Run when fpocketR reports that the input
// structure has no detectable pockets. The output tree is removed before
// Run returns this error.
var ErrNoPockets = errors.New("no pockets were found by fpocketR")

// DefaultConfig provides some sane defaults to run fpocketR with.
// For example:
//
//	results, err := fpocket.DefaultConfig.Run("1abc.pdb")
var DefaultConfig = Config{
	Conda:   "",
	Env:     "fpocketR",
	Ligand:  "noll",
	Offset:  0,
	Output:  "fpocket-R",
	Verbose: true,
	Vomit:   false,
}

// Config specifies how fpocketR is invoked, along with the level of vomit
// echoed to stderr.
type Config struct {
	// Conda points to the conda executable. If empty, FindConda is used.
	Conda string

	// Env is the name of the conda environment containing fpocketR.
	Env string

	// Ligand is passed to fpocketR's '--ligand' flag.
	Ligand string

	// Offset is passed to fpocketR's '--offset' flag.
	Offset int

	// Output is the directory fpocketR writes its output tree to. Any
	// existing tree at that path is removed before the tool runs.
	Output string

	// Verbose controls whether the command executed is printed to stderr.
	Verbose bool

	// When Vomit is true, all output from the command executed will also
	// be printed to stderr.
	Vomit bool
}

// Run executes fpocketR on the given PDB file and returns a handle on its
// output tree. The process working directory is never changed; all paths in
// the returned Results are relative to Config.Output.
//
// Run fails if the tool exits nonzero (the captured output is included in
// the error), and returns ErrNoPockets if the tool's combined stdout/stderr
// contains its no-pockets sentinel text.
func (conf Config) Run(pdbFile string) (*Results, error) {
	conda := conf.Conda
	if len(conda) == 0 {
		var err error
		if conda, err = FindConda(); err != nil {
			return nil, err
		}
	}

	// A stale tree from a previous run would pollute the characteristics
	// glob, so drop it first. Best effort.
	os.RemoveAll(conf.Output)

	args := []string{
		"run", "-n", conf.Env,
		"python", "-m", "fpocketR",
		"-pdb", pdbFile,
		"--ligand", conf.Ligand,
		"--offset", strconv.Itoa(conf.Offset),
		"-o", conf.Output,
	}
	c := cmd.New(conda, args...)

	var out bytes.Buffer
	c.Cmd.Stdout = &out
	c.Cmd.Stderr = &out

	if conf.Verbose {
		fmt.Fprintf(os.Stderr, "%s\n", c)
	}
	err := c.Run()
	if conf.Vomit {
		fmt.Fprintf(os.Stderr, "%s\n", out.String())
	}

	if strings.Contains(out.String(), noPocketsSentinel) {
		os.RemoveAll(conf.Output)
		return nil, ErrNoPockets
	}
	if err != nil {
		return nil, fmt.Errorf("error running fpocketR:\n%s\n%s",
			out.String(), err)
	}
	return newResults(conf.Output, pdbFile)
}
