package fpocket

import (
	"errors"
	"os"
	"os/exec"
)

// ErrCondaNotFound is returned by FindConda when no conda executable could
// be located.
var ErrCondaNotFound = errors.New("conda executable not found")

// condaCommonPaths are tried, in order, after $CONDA_EXE and $PATH.
var condaCommonPaths = []string{
	"/usr/local/miniconda3/bin/conda",
	"/usr/local/anaconda3/bin/conda",
	"/opt/conda/bin/conda",
	"/miniconda3/bin/conda",
	"/anaconda3/bin/conda",
}

// FindConda locates the conda executable. $CONDA_EXE wins if it points at a
// regular file, then a $PATH lookup, then a fixed list of common install
// locations.
func FindConda() (string, error) {
	if path := os.Getenv("CONDA_EXE"); len(path) > 0 && isFile(path) {
		return path, nil
	}
	if path, err := exec.LookPath("conda"); err == nil {
		return path, nil
	}
	for _, path := range condaCommonPaths {
		if isFile(path) {
			return path, nil
		}
	}
	return "", ErrCondaNotFound
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
