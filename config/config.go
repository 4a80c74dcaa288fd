// Package config loads the parser's configuration by layering defaults, an
// optional YAML file and FPOCKETR_-prefixed environment variables.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config contains everything needed to invoke fpocketR and place its
// post-processed output.
type Config struct {
	// CondaExe is the conda executable. Empty means "discover it".
	CondaExe string `koanf:"conda_exe"`

	// CondaEnv is the conda environment containing fpocketR.
	CondaEnv string `koanf:"conda_env"`

	// Ligand and Offset are passed through to fpocketR.
	Ligand string `koanf:"ligand"`
	Offset int    `koanf:"offset"`

	// Output is the directory fpocketR writes its tree to.
	Output string `koanf:"output"`

	// Verbose echoes the executed command; Vomit echoes its output.
	Verbose bool `koanf:"verbose"`
	Vomit   bool `koanf:"vomit"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		CondaEnv: "fpocketR",
		Ligand:   "noll",
		Offset:   0,
		Output:   "fpocket-R",
		Verbose:  true,
		Vomit:    false,
	}
}

// Load builds a Config by layering defaults, an optional file, and env
// vars. Order of precedence (low -> high):
//  1. defaults (New)
//  2. file (YAML) from the fileName argument, or $FPOCKETR_CONFIG when
//     fileName is empty
//  3. env (prefix FPOCKETR_, e.g. FPOCKETR_CONDA_ENV -> conda_env)
func Load(fileName string) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if len(fileName) == 0 {
		fileName = os.Getenv("FPOCKETR_CONFIG")
	}
	if len(fileName) > 0 {
		if err := k.Load(file.Provider(fileName), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Preserve underscores so env keys match the koanf tags above.
	envProvider := env.Provider("FPOCKETR_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "fpocketr_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	conf := koanf.UnmarshalConf{Tag: "koanf"}
	if err := k.UnmarshalWithConf("", &cfg, conf); err != nil {
		return nil, err
	}

	if cfg.CondaEnv == "" {
		return nil, errors.New("conda_env must not be empty")
	}
	if cfg.Output == "" {
		return nil, errors.New("output must not be empty")
	}
	return &cfg, nil
}
