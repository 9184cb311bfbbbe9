package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cbz2pdf [flags] [archive ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert comic-book archives (.cbz/.zip) to PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "With no arguments, converts every archive in the current directory.")
	fmt.Fprintln(w, "Bare arguments name individual archives to convert.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Batch:")
	fmt.Fprintln(w, "  -a, --all                 Convert all archives in the search directory (default)")
	fmt.Fprintln(w, "  -R, --recursive           Search subdirectories too")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel conversions (0 = auto, one per CPU)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -f, --file <path>         Convert one named archive (deprecated; bare")
	fmt.Fprintln(w, "                            arguments are equivalent)")
	fmt.Fprintln(w, "  -o, --output-dir <dir>    Destination directory for produced PDFs")
	fmt.Fprintln(w, "                            (default: current directory)")
	fmt.Fprintln(w, "      --force               Overwrite existing destination PDFs instead of")
	fmt.Fprintln(w, "                            skipping them")
	fmt.Fprintln(w, "      --no-validate         Skip structural validation of produced PDFs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-job timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Misc:")
	fmt.Fprintln(w, "  -h, --help                Print this message and exit")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Requires unzip and img2pdf on PATH.")
}
