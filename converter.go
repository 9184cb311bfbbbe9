package cbz2pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// dirPermissions is rwxr-x---: owner full, group read+execute.
const dirPermissions = 0o750

// tmpSuffix marks the in-progress output written before the atomic rename.
const tmpSuffix = ".tmp"

// Default external tool names, overridable per Converter.
const (
	DefaultUnzipBin   = "unzip"
	DefaultImg2pdfBin = "img2pdf"
)

// Converter turns one comic archive into a PDF by shelling out to an
// archive extractor and an image-to-PDF rasterizer. A Converter is
// stateless and safe for concurrent use by multiple jobs.
type Converter struct {
	Runner     CommandRunner
	UnzipBin   string
	Img2pdfBin string
	// Validate enables a structural check of the produced PDF before the
	// job is counted as succeeded.
	Validate bool
}

// NewConverter returns a Converter wired to the real external tools with
// validation enabled.
func NewConverter() *Converter {
	return &Converter{
		Runner:     ExecRunner{},
		UnzipBin:   DefaultUnzipBin,
		Img2pdfBin: DefaultImg2pdfBin,
		Validate:   true,
	}
}

// Convert runs one job to completion and classifies it. Failures are
// contained in the Result; Convert never panics the batch and never leaves
// a partial destination file or workspace behind.
func (c *Converter) Convert(ctx context.Context, job Job) Result {
	start := time.Now()
	res := Result{Job: job, Outcome: Failed}

	if _, err := os.Stat(job.DestPath); err == nil && !job.Force {
		res.Outcome = Skipped
		res.Duration = time.Since(start)
		return res
	}

	ws, err := NewWorkspace()
	if err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		return res
	}
	defer ws.Remove()

	if err := c.extract(ctx, job.SourcePath, ws.Dir); err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		return res
	}

	pages, err := ListPages(ws.Dir)
	if err != nil {
		res.Err = fmt.Errorf("listing pages: %w", err)
		res.Duration = time.Since(start)
		return res
	}
	if len(pages) == 0 {
		res.Err = fmt.Errorf("%w: %s", ErrNoImages, job.SourcePath)
		res.Duration = time.Since(start)
		return res
	}

	if err := c.rasterize(ctx, pages, job.DestPath); err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		return res
	}

	if c.Validate {
		if err := validatePDF(job.DestPath); err != nil {
			_ = os.Remove(job.DestPath)
			res.Err = err
			res.Duration = time.Since(start)
			return res
		}
	}

	res.Outcome = Succeeded
	res.Pages = len(pages)
	res.Duration = time.Since(start)
	return res
}

// extract unpacks the archive into dir via the external unzip tool.
func (c *Converter) extract(ctx context.Context, sourcePath, dir string) error {
	stderr, err := c.Runner.Run(ctx, c.UnzipBin, "-qq", "-o", sourcePath, "-d", dir)
	if err != nil {
		if detail := strings.TrimSpace(stderr); detail != "" {
			return fmt.Errorf("%w: %s: %s", ErrExtraction, sourcePath, detail)
		}
		return fmt.Errorf("%w: %s: %v", ErrExtraction, sourcePath, err)
	}
	return nil
}

// rasterize feeds the ordered page list to img2pdf, writing to a temporary
// path next to the destination and renaming on success so a failed tool
// invocation never leaves a partial PDF at the destination.
func (c *Converter) rasterize(ctx context.Context, pages []string, destPath string) error {
	if dir := filepath.Dir(destPath); dir != "" {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}

	tmpPath := destPath + tmpSuffix
	args := append([]string{}, pages...)
	args = append(args, "--output", tmpPath)

	stderr, err := c.Runner.Run(ctx, c.Img2pdfBin, args...)
	if err != nil {
		_ = os.Remove(tmpPath)
		if detail := strings.TrimSpace(stderr); detail != "" {
			return fmt.Errorf("%w: %s", ErrConversionTool, detail)
		}
		return fmt.Errorf("%w: %v", ErrConversionTool, err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// validatePDF runs a relaxed structural validation of the produced file.
func validatePDF(path string) error {
	cfg := model.NewDefaultConfiguration()
	cfg.ValidationMode = model.ValidationRelaxed
	if err := api.ValidateFile(path, cfg); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidPDF, path, err)
	}
	return nil
}
