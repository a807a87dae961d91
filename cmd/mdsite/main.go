// Command mdsite builds a static site from a directory of markdown
// documents: converted, templated, highlighted, minified, and written
// under pretty URLs.
package main

import (
	"context"
	"fmt"
	"os"

	mdsite "github.com/alnah/go-mdsite"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags, err := parseFlags(args)
	if err != nil {
		return err
	}
	if flags.version {
		fmt.Println("mdsite " + Version)
		return nil
	}

	cfg, err := mdsite.LoadConfig(flags.config)
	if err != nil {
		return err
	}
	if flags.out != "" {
		cfg.OutputDir = flags.out
	}

	var opts []mdsite.Option
	if flags.quiet {
		opts = append(opts, mdsite.WithLogger(func(string, ...any) {}))
	}

	builder, err := mdsite.NewBuilder(cfg, opts...)
	if err != nil {
		return err
	}
	return builder.Build(context.Background())
}
