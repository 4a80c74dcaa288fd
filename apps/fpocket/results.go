package fpocket

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Results corresponds to the output tree of one fpocketR invocation. All
// paths are derived from the configured output directory and the input
// file's name; nothing here depends on the process working directory.
type Results struct {
	root    string
	name    string
	pdbFile string
}

// newResults checks that fpocketR actually produced the expected output
// directory, rather than trusting its exit status alone.
func newResults(root, pdbFile string) (*Results, error) {
	res := &Results{
		root:    root,
		name:    BaseName(pdbFile),
		pdbFile: pdbFile,
	}
	info, err := os.Stat(res.CleanDir())
	if err != nil {
		return nil, fmt.Errorf("fpocketR did not produce its output "+
			"directory '%s': %s", res.CleanDir(), err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("fpocketR output '%s' is not a directory",
			res.CleanDir())
	}
	return res, nil
}

// BaseName returns the stem fpocketR derives from an input file name: the
// base name with its last extension removed and any remaining dots dropped.
// ("1abc.v2.pdb" becomes "1abcv2".)
func BaseName(pdbFile string) string {
	base := filepath.Base(pdbFile)
	parts := strings.Split(base, ".")
	if len(parts) == 1 {
		return base
	}
	return strings.Join(parts[:len(parts)-1], "")
}

// Root returns the root of the output tree.
func (res *Results) Root() string {
	return res.root
}

// CleanDir returns the '<name>_clean_out' directory inside the output tree,
// which holds the characteristics table.
func (res *Results) CleanDir() string {
	return filepath.Join(res.root, res.name+"_clean_out")
}

// PocketsDir returns the per-pocket geometry directory inside the output
// tree.
func (res *Results) PocketsDir() string {
	return filepath.Join(res.CleanDir(), "pockets")
}

// CleanPDB returns the path of the intermediate cleaned structure file
// fpocketR writes next to the input.
func (res *Results) CleanPDB() string {
	return filepath.Join(filepath.Dir(res.pdbFile), res.name+"_clean.pdb")
}

// MoveSummaries moves every CSV file in the pockets directory into destDir,
// overwriting same-named files, and returns the destination paths.
func (res *Results) MoveSummaries(destDir string) ([]string, error) {
	csvs, err := filepath.Glob(filepath.Join(res.PocketsDir(), "*.csv"))
	if err != nil {
		return nil, err
	}

	moved := make([]string, 0, len(csvs))
	for _, src := range csvs {
		dest := filepath.Join(destDir, filepath.Base(src))
		if err := moveFile(src, dest); err != nil {
			return moved, fmt.Errorf("could not move '%s' to '%s': %s",
				src, dest, err)
		}
		moved = append(moved, dest)
	}
	return moved, nil
}

// moveFile renames src to dest, falling back to a copy-and-remove when the
// two live on different file systems.
func moveFile(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	out, err := os.Create(dest)
	if err != nil {
		in.Close()
		return err
	}
	_, err = io.Copy(out, in)
	in.Close()
	if err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(src)
}

// Archive zips the whole output tree into '<tree base name>.zip' inside
// destDir, with entry names relative to the tree's parent directory, then
// removes the tree and the intermediate cleaned structure file. The
// removals are best effort; a failure while writing leaves no partial zip
// behind.
func (res *Results) Archive(destDir string) (string, error) {
	zipName := filepath.Join(destDir, filepath.Base(res.root)+".zip")
	if err := zipTree(zipName, res.root); err != nil {
		os.Remove(zipName)
		return "", err
	}
	res.Clean()
	return zipName, nil
}

// Clean removes the output tree and the intermediate cleaned structure
// file, ignoring errors.
func (res *Results) Clean() {
	os.RemoveAll(res.root)
	os.Remove(res.CleanPDB())
}

func zipTree(zipName, root string) error {
	f, err := os.Create(zipName)
	if err != nil {
		return err
	}
	zw := zip.NewWriter(f)

	parent := filepath.Dir(root)
	err = filepath.Walk(root,
		func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return nil
			}

			rel, err := filepath.Rel(parent, path)
			if err != nil {
				return err
			}
			w, err := zw.Create(filepath.ToSlash(rel))
			if err != nil {
				return err
			}
			in, err := os.Open(path)
			if err != nil {
				return err
			}
			_, err = io.Copy(w, in)
			in.Close()
			return err
		})
	if err != nil {
		zw.Close()
		f.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
