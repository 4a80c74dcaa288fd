package util

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"strings"
)

var (
	// FlagConfig optionally points at a YAML configuration file.
	FlagConfig = ""

	// FlagOut is the directory summary CSVs and the archive end up in.
	FlagOut = "."

	// FlagQuiet suppresses the echo of executed commands.
	FlagQuiet = false

	// FlagVomit echoes all output of executed commands to stderr.
	FlagVomit = false
)

func init() {
	log.SetFlags(0)
}

type commonFlag struct {
	set, init func()
	use       bool
}

var commonFlags = map[string]*commonFlag{
	"config": {
		set: func() {
			flag.StringVar(&FlagConfig, "config", FlagConfig,
				"An optional YAML configuration file. Environment "+
					"variables with a FPOCKETR_ prefix take precedence.")
		},
	},
	"out": {
		set: func() {
			flag.StringVar(&FlagOut, "o", FlagOut,
				"The directory to write summary CSV files and the "+
					"output archive to.")
		},
	},
	"quiet": {
		set: func() {
			flag.BoolVar(&FlagQuiet, "quiet", FlagQuiet,
				"When set, executed commands will not be echoed to stderr.")
		},
	},
	"vomit": {
		set: func() {
			flag.BoolVar(&FlagVomit, "vomit", FlagVomit,
				"When set, all output of executed commands will be echoed "+
					"to stderr.")
		},
	},
}

func FlagUse(names ...string) {
	for _, name := range names {
		commonFlags[name].use = true
	}
}

// Usage just calls `flag.Usage`. It's included here to avoid
// an extra import to `flag` just to call Usage.
func Usage() {
	flag.Usage()
}

func FlagParse(positional string, desc string) {
	for _, fl := range commonFlags {
		if fl.use {
			fl.set()
		}
	}

	flag.Usage = func() {
		log.Printf("Usage: %s [flags] %s\n\n",
			path.Base(os.Args[0]), positional)
		if len(desc) > 0 {
			log.Printf("%s\n", desc)
		}
		flag.VisitAll(func(fl *flag.Flag) {
			var def string
			if len(fl.DefValue) > 0 {
				def = fmt.Sprintf(" (default: %s)", fl.DefValue)
			}

			usage := strings.Replace(fl.Usage, "\n", "\n    ", -1)
			log.Printf("-%s%s\n", fl.Name, def)
			log.Printf("    %s\n", usage)
		})
		os.Exit(1)
	}
	flag.Parse()

	for _, fl := range commonFlags {
		if fl.use && fl.init != nil {
			fl.init()
		}
	}
}
