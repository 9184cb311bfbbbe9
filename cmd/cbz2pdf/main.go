package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"go.uber.org/automaxprocs/maxprocs"

	cbz2pdf "github.com/abriel/cbz2pdf"
	"github.com/abriel/cbz2pdf/internal/config"
	"github.com/abriel/cbz2pdf/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Sentinel errors for CLI operations.
var (
	ErrNoArchives       = errors.New("no archives found")
	ErrJobsFailed       = errors.New("conversion failures")
	ErrDestCollision    = errors.New("two archives map to the same destination")
	ErrInvalidWorkers   = errors.New("invalid worker count")
	ErrConflictingModes = errors.New("cannot combine --all with named archives")
)

func main() {
	flags, args, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		printUsage(os.Stderr)
		os.Exit(ExitUsage)
	}

	if flags.help {
		printUsage(os.Stdout)
		os.Exit(ExitSuccess)
	}
	if flags.version {
		fmt.Println("cbz2pdf " + Version)
		os.Exit(ExitSuccess)
	}

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	env := DefaultEnv()
	if err := run(context.Background(), flags, args, env); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// run orchestrates one invocation: config, dependency check, job assembly,
// batch execution, summary.
func run(ctx context.Context, flags *cliFlags, args []string, env *Environment) error {
	cfg := config.Default()
	if flags.config != "" {
		loaded, err := config.Load(flags.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound())
			}
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	mergeFlags(flags, cfg)

	if err := checkTools(cfg.Tools.Unzip, cfg.Tools.Img2pdf); err != nil {
		return err
	}

	conv := cbz2pdf.NewConverter()
	conv.UnzipBin = cfg.Tools.Unzip
	conv.Img2pdfBin = cfg.Tools.Img2pdf
	conv.Validate = !cfg.Convert.NoValidate

	paths, discovered, err := resolveSources(flags, args, cfg)
	if err != nil {
		return err
	}

	jobs, err := assembleJobs(paths, cfg.Output.DefaultDir, cfg.Convert.Force)
	if err != nil {
		return err
	}

	workers := resolveWorkers(cfg.Batch.Workers)
	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d\n", workers)
	}

	tally := runBatch(ctx, conv, jobs, workers, flags.quiet, flags.verbose, env)
	printSummary(tally, flags.quiet, discovered, env)

	if tally.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrJobsFailed, tally.Failed, tally.Total())
	}
	return nil
}

// resolveSources returns the archive paths to convert: explicitly named
// files when given, otherwise directory discovery. The returned flag reports
// which mode ran. Explicitly named files are validated eagerly; a missing or
// non-archive argument aborts the invocation before any job runs.
func resolveSources(flags *cliFlags, args []string, cfg *config.Config) ([]string, bool, error) {
	named := make([]string, 0, len(flags.files)+len(args))
	named = append(named, flags.files...)
	named = append(named, args...)

	if len(named) > 0 {
		if flags.all {
			return nil, false, fmt.Errorf("%w: %s", ErrConflictingModes, named[0])
		}
		for _, p := range named {
			info, err := os.Stat(p)
			if err != nil {
				return nil, false, fmt.Errorf("%w: %s", cbz2pdf.ErrSourceNotFound, p)
			}
			if info.IsDir() || !cbz2pdf.IsArchivePath(p) {
				return nil, false, fmt.Errorf("%w: %s", cbz2pdf.ErrNotAnArchive, p)
			}
		}
		sort.Strings(named)
		return named, false, nil
	}

	root := cfg.Input.DefaultDir
	paths, err := discoverArchives(root, cfg.Batch.Recursive)
	if err != nil {
		return nil, true, fmt.Errorf("discovering archives: %w", err)
	}
	if len(paths) == 0 {
		return nil, true, fmt.Errorf("%w in %s", ErrNoArchives, root)
	}
	return paths, true, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.outputDir != "" {
		cfg.Output.DefaultDir = flags.outputDir
	}
	if flags.workers > 0 {
		cfg.Batch.Workers = flags.workers
	}
	if flags.recursive {
		cfg.Batch.Recursive = true
	}
	if flags.force {
		cfg.Convert.Force = true
	}
	if flags.noValidate {
		cfg.Convert.NoValidate = true
	}
}
