package main

import (
	flag "github.com/spf13/pflag"
)

// buildFlags holds the command line options.
type buildFlags struct {
	config  string
	out     string
	quiet   bool
	version bool
}

// parseFlags parses the command line. args is the full os.Args slice.
func parseFlags(args []string) (buildFlags, error) {
	fs := flag.NewFlagSet("mdsite", flag.ContinueOnError)

	var f buildFlags
	fs.StringVarP(&f.config, "config", "c", "mdsite.yml", "site configuration file")
	fs.StringVarP(&f.out, "out", "o", "", "output directory (overrides config)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress build log output")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return buildFlags{}, err
	}
	return f, nil
}
