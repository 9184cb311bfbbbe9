package cbz2pdf

import "errors"

// Sentinel errors for conversion failures. Each failed Result wraps exactly
// one of these, so callers can classify with errors.Is.
var (
	ErrSourceNotFound = errors.New("archive not found")
	ErrNotAnArchive   = errors.New("file must have a .cbz or .zip extension")
	ErrWorkspace      = errors.New("failed to create workspace")
	ErrExtraction     = errors.New("archive extraction failed")
	ErrNoImages       = errors.New("no page images found in archive")
	ErrConversionTool = errors.New("image to PDF conversion failed")
	ErrWriteOutput    = errors.New("failed to write output PDF")
	ErrInvalidPDF     = errors.New("produced PDF failed validation")
)
