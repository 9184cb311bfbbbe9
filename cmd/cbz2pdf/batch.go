package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	cbz2pdf "github.com/abriel/cbz2pdf"
)

// defaultWorkers is used when the number of processing units cannot be
// determined.
const defaultWorkers = 2

// BatchConverter is the interface the batch driver needs from the library.
type BatchConverter interface {
	Convert(ctx context.Context, job cbz2pdf.Job) cbz2pdf.Result
}

// Compile-time interface implementation check.
var _ BatchConverter = (*cbz2pdf.Converter)(nil)

// discoverArchives finds archive files under searchRoot, matching the
// extension case-insensitively. When recursive is false, only searchRoot
// itself is scanned. Paths are sorted for deterministic dispatch order.
func discoverArchives(searchRoot string, recursive bool) ([]string, error) {
	var paths []string

	if recursive {
		err := filepath.WalkDir(searchRoot, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			if d.IsDir() {
				return nil
			}
			if cbz2pdf.IsArchivePath(path) {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(searchRoot)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if cbz2pdf.IsArchivePath(e.Name()) {
				paths = append(paths, filepath.Join(searchRoot, e.Name()))
			}
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// assembleJobs maps archive paths to jobs, rejecting destination collisions:
// two distinct archives with the same base name would race on the same PDF,
// so the batch refuses to start rather than silently losing one.
func assembleJobs(paths []string, outputDir string, force bool) ([]cbz2pdf.Job, error) {
	jobs := make([]cbz2pdf.Job, 0, len(paths))
	seen := make(map[string]string, len(paths))

	for _, p := range paths {
		dest := cbz2pdf.DestinationPath(p, outputDir)
		if prev, ok := seen[dest]; ok {
			return nil, fmt.Errorf("%w: %s and %s both produce %s", ErrDestCollision, prev, p, dest)
		}
		seen[dest] = p
		jobs = append(jobs, cbz2pdf.Job{SourcePath: p, DestPath: dest, Force: force})
	}
	return jobs, nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkers, n)
	}
	return nil
}

// resolveWorkers determines the concurrency cap.
// Priority: explicit setting > one worker per available processing unit
// (GOMAXPROCS, adjusted by automaxprocs in containers), never less than 1.
func resolveWorkers(configured int) int {
	if configured > 0 {
		return configured
	}
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		n = defaultWorkers
	}
	return n
}

// runBatch dispatches every job across at most `workers` concurrent
// conversions in a sliding window: as each in-flight job completes, its
// worker immediately pulls the next undispatched job. Workers report
// results over a channel and the single consumer below owns the tally, so
// no counter is ever incremented from two goroutines.
//
// Individual job failures never abort the batch; every job is attempted
// exactly once.
func runBatch(ctx context.Context, conv BatchConverter, jobs []cbz2pdf.Job, workers int, quiet, verbose bool, env *Environment) cbz2pdf.Tally {
	var tally cbz2pdf.Tally
	if len(jobs) == 0 {
		return tally
	}

	if workers > len(jobs) {
		workers = len(jobs)
	}
	if workers < 1 {
		workers = 1
	}

	work := make(chan cbz2pdf.Job)
	results := make(chan cbz2pdf.Result)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range work {
				if !quiet {
					env.logf(env.Stdout, "Converting %s\n", job.SourcePath)
				}
				results <- conv.Convert(ctx, job)
			}
		}()
	}

	go func() {
		for _, j := range jobs {
			work <- j
		}
		close(work)
		wg.Wait()
		close(results)
	}()

	done := 0
	for res := range results {
		done++
		tally.Record(res.Outcome)
		printResult(res, done, len(jobs), quiet, verbose, env)
	}
	return tally
}

// printResult outputs the terminal line for one completed job.
func printResult(res cbz2pdf.Result, done, total int, quiet, verbose bool, env *Environment) {
	switch res.Outcome {
	case cbz2pdf.Failed:
		env.logf(env.Stderr, "FAILED %s: %v\n", res.Job.SourcePath, res.Err)
	case cbz2pdf.Skipped:
		if !quiet {
			env.logf(env.Stdout, "Skipped %s (exists: %s)\n", res.Job.SourcePath, res.Job.DestPath)
		}
	case cbz2pdf.Succeeded:
		if quiet {
			return
		}
		if verbose {
			env.logf(env.Stdout, "[%d/%d] %s -> %s (%d pages, %v)\n",
				done, total, res.Job.SourcePath, res.Job.DestPath, res.Pages, res.Duration.Round(time.Millisecond))
		} else {
			env.logf(env.Stdout, "Created %s\n", res.Job.DestPath)
		}
	}
}

// printSummary outputs the aggregate tally once, after all jobs complete.
// Batch (discovered) mode always gets a summary; a single explicitly named
// archive already has its own terminal line, so one is not repeated.
func printSummary(tally cbz2pdf.Tally, quiet, discovered bool, env *Environment) {
	if quiet || (!discovered && tally.Total() <= 1) {
		return
	}
	env.logf(env.Stdout, "\n%d succeeded, %d failed, %d skipped\n",
		tally.Succeeded, tally.Failed, tally.Skipped)
}
