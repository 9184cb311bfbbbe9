package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for one invocation.
type cliFlags struct {
	help       bool
	version    bool
	all        bool
	recursive  bool
	outputDir  string
	force      bool
	files      []string
	workers    int
	config     string
	quiet      bool
	verbose    bool
	noValidate bool
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("cbz2pdf", flag.ContinueOnError)
	f := &cliFlags{}

	fs.BoolVarP(&f.help, "help", "h", false, "print usage and exit")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.all, "all", "a", false, "convert all archives in the search directory (default)")
	fs.BoolVarP(&f.recursive, "recursive", "R", false, "when batching, search subdirectories too")
	fs.StringVarP(&f.outputDir, "output-dir", "o", "", "destination directory for produced PDFs")
	fs.BoolVar(&f.force, "force", false, "overwrite existing destination PDFs instead of skipping")
	fs.StringArrayVarP(&f.files, "file", "f", nil, "convert one named archive (deprecated; bare arguments are equivalent)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel conversions (0 = auto)")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-job timing")
	fs.BoolVar(&f.noValidate, "no-validate", false, "skip structural validation of produced PDFs")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
