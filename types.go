package cbz2pdf

import (
	"path/filepath"
	"strings"
	"time"
)

// Outcome classifies the result of one archive conversion.
// Every completion path resolves to exactly one value; callers must never
// infer the outcome from a raw process status code.
type Outcome int

const (
	// Succeeded means the destination PDF was written.
	Succeeded Outcome = iota
	// Failed means extraction, page listing, or rasterization failed.
	// No destination file is left behind.
	Failed
	// Skipped means the destination already existed and overwrite was not
	// requested. Nothing was extracted or written.
	Skipped
)

// String returns the lowercase name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case Skipped:
		return "skipped"
	}
	return "unknown"
}

// Job identifies one archive to convert.
type Job struct {
	SourcePath string // archive to read
	DestPath   string // PDF to produce
	Force      bool   // overwrite an existing destination instead of skipping
}

// Result holds the outcome of one job.
type Result struct {
	Job      Job
	Outcome  Outcome
	Err      error // set only when Outcome is Failed
	Pages    int   // pages fed to the rasterizer (0 unless Succeeded)
	Duration time.Duration
}

// Tally accumulates job outcomes across one batch invocation.
// It must only ever be mutated by a single owner; workers report results
// over a channel rather than incrementing shared counters.
type Tally struct {
	Succeeded int
	Failed    int
	Skipped   int
}

// Record counts one outcome.
func (t *Tally) Record(o Outcome) {
	switch o {
	case Succeeded:
		t.Succeeded++
	case Failed:
		t.Failed++
	case Skipped:
		t.Skipped++
	}
}

// Total returns the number of recorded outcomes.
func (t Tally) Total() int {
	return t.Succeeded + t.Failed + t.Skipped
}

// ArchiveExtensions lists recognized archive extensions (lowercase, with
// leading dot). Comic archives are ZIP files; plain .zip is accepted too.
var ArchiveExtensions = map[string]bool{
	".cbz": true,
	".zip": true,
}

// IsArchivePath reports whether path carries a recognized archive
// extension, compared case-insensitively.
func IsArchivePath(path string) bool {
	return ArchiveExtensions[strings.ToLower(filepath.Ext(path))]
}

// DestinationPath returns the PDF path for an archive: the archive's base
// name with the extension replaced by .pdf, placed in outputDir. The
// mapping is deterministic; two distinct archives sharing a base name
// collide, which callers should detect before dispatching.
func DestinationPath(sourcePath, outputDir string) string {
	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	return filepath.Join(outputDir, base+".pdf")
}
