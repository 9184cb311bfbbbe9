// Package cbz2pdf converts comic-book archives (ZIP files of page images,
// usually with a .cbz extension) into PDF documents.
//
// # Quick Start
//
// Create a converter and run a job:
//
//	conv := cbz2pdf.NewConverter()
//	res := conv.Convert(ctx, cbz2pdf.Job{
//	    SourcePath: "issue-01.cbz",
//	    DestPath:   cbz2pdf.DestinationPath("issue-01.cbz", "out"),
//	})
//	if res.Outcome == cbz2pdf.Failed {
//	    log.Fatal(res.Err)
//	}
//
// # Conversion Pipeline
//
// Each job follows the same stages:
//
//  1. Skip check: if the destination PDF already exists and Job.Force is
//     false, the job ends as Skipped without touching any file.
//  2. Extraction of the archive into a private temporary workspace via the
//     external unzip tool.
//  3. Page listing: recognized raster images are collected recursively and
//     ordered with a natural sort, so page2.jpg precedes page10.jpg.
//  4. Rasterization of the ordered pages into one PDF via the external
//     img2pdf tool, written to a temporary path and renamed into place.
//  5. Optional structural validation of the produced PDF (pdfcpu).
//
// The workspace is removed on every exit path. A job never interferes with
// concurrently running jobs: workspaces carry unique names and each job
// writes a distinct destination file.
//
// # External Tools
//
// Extraction and rasterization are delegated to unzip and img2pdf, which
// must be installed separately. The CommandRunner interface is the seam
// between the converter and the tools; tests substitute a fake runner.
//
// # Outcomes
//
// Every job resolves to exactly one Outcome: Succeeded, Failed, or Skipped.
// Skipped is not an error. Callers batch-processing archives accumulate
// outcomes into a Tally and derive their exit status from Tally.Failed.
package cbz2pdf
