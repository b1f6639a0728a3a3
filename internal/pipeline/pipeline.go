// Copyright Daniel Amado, 2026. All rights reserved.

// Package pipeline sequences rasterization and slide composition for one
// conversion job and reports step-by-step progress to a caller-supplied
// callback.
package pipeline

import (
	"context"
	"fmt"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/TDanyStark/pdf-to-pptx/internal/compose"
	"github.com/TDanyStark/pdf-to-pptx/internal/pptx"
	"github.com/TDanyStark/pdf-to-pptx/pkg/types"
)

// Progress fractions are split across the fixed pipeline phases: setup
// takes the first tenth, per-page work shares the middle, and the final
// save takes the last tenth.
const (
	progressSetup = 0.10
	progressPages = 0.80
)

// pagesDir is the subdirectory under the job dir for exported page images.
const pagesDir = "pages"

// manifestFile records the job outcome next to the presentation.
const manifestFile = "job.yaml"

// ProgressFunc receives a monotonically non-decreasing fraction in [0,1]
// and a human-readable status line. It is called after setup, after each
// page, and once at the end; it reaches exactly 1.0 only on success.
type ProgressFunc func(fraction float64, message string)

// Document is an open source document. Pages renders in source order.
type Document interface {
	PageCount() int
	Pages(dpi int) PageIter
	Close() error
}

// PageIter yields page images in page order; io.EOF after the last page.
type PageIter interface {
	Next() (*types.PageImage, error)
}

// PageSource opens source documents. The production implementation wraps
// MuPDF; tests inject fakes.
type PageSource interface {
	Open(path string) (Document, error)
}

// Orchestrator runs conversion jobs against a page source.
type Orchestrator struct {
	source PageSource
}

// New creates an orchestrator backed by the given page source.
func New(source PageSource) *Orchestrator {
	return &Orchestrator{source: source}
}

// Convert runs one job to completion: it renders every page to the job's
// pages directory, composes one slide per page, and saves the
// presentation as <outputDir>/<base>/<base>.pptx.
//
// Any failure aborts the remaining pipeline and moves the job to its
// failed state; partially written files stay on disk. Cancellation via
// ctx is checked between pages. The job instance is single-use: terminal
// states admit no retry.
func (o *Orchestrator) Convert(ctx context.Context, job *types.ConversionJob, progress ProgressFunc) (*types.OutputPaths, error) {
	if progress == nil {
		progress = func(float64, string) {}
	}
	if job.State != types.StateIdle {
		return nil, &types.ConversionError{Page: -1, Err: fmt.Errorf("job already started (state %s)", job.State)}
	}
	if job.DPI <= 0 {
		return nil, fail(job, &types.InvalidDimensionError{What: "dpi", Value: float64(job.DPI)})
	}
	if job.Format == "" {
		job.Format = types.FormatPNG
	}
	if job.JPEGQuality <= 0 {
		job.JPEGQuality = 95
	}

	job.State = types.StatePreparing
	job.StartedAt = time.Now()

	base := strings.TrimSuffix(filepath.Base(job.InputPath), filepath.Ext(job.InputPath))

	// The document opens before anything is written so that an unreadable
	// source leaves the destination untouched.
	doc, err := o.source.Open(job.InputPath)
	if err != nil {
		return nil, fail(job, err)
	}
	defer doc.Close()

	total := doc.PageCount()
	if total == 0 {
		return nil, fail(job, &types.DocumentError{Path: job.InputPath, Err: fmt.Errorf("document has no pages")})
	}
	job.PagesTotal = total

	jobDir := filepath.Join(job.OutputDir, base)
	imgDir := filepath.Join(jobDir, pagesDir)
	if err := os.MkdirAll(imgDir, 0o755); err != nil {
		return nil, fail(job, &types.IOError{Path: imgDir, Err: err})
	}

	progress(progressSetup, fmt.Sprintf("Opened %s (%d pages)", filepath.Base(job.InputPath), total))

	out := &types.OutputPaths{
		JobDir:   jobDir,
		PPTXPath: filepath.Join(jobDir, base+".pptx"),
		DPI:      job.DPI,
	}

	job.State = types.StateRendering
	var prs *compose.Presentation
	iter := doc.Pages(job.DPI)
	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fail(job, &types.CancelledError{Page: i, Err: err})
		}

		page, err := iter.Next()
		if err != nil {
			return nil, fail(job, pageErr(i, err))
		}

		imgPath := filepath.Join(imgDir, fmt.Sprintf("%03d.%s", page.Index, job.Format.Ext()))
		if err := writePageImage(imgPath, page, job.Format, job.JPEGQuality); err != nil {
			return nil, fail(job, err)
		}

		if prs == nil {
			// Slide size comes from the first page's raster.
			prs, err = compose.New(base, page.WidthPx, page.HeightPx, job.DPI)
			if err != nil {
				return nil, fail(job, err)
			}
			out.FirstPageWidthPx = page.WidthPx
			out.FirstPageHeightPx = page.HeightPx
		}
		if err := prs.AddPage(imgPath, page.WidthPx, page.HeightPx); err != nil {
			return nil, fail(job, pageErr(i, err))
		}

		out.PagePaths = append(out.PagePaths, imgPath)
		job.PagesDone = i + 1
		frac := progressSetup + progressPages*float64(i+1)/float64(total)
		progress(frac, fmt.Sprintf("Rendered page %d/%d", i+1, total))
	}

	job.State = types.StateSaving
	if err := pptx.Write(out.PPTXPath, prs); err != nil {
		return nil, fail(job, err)
	}
	if err := writeManifest(jobDir, job, out); err != nil {
		return nil, fail(job, err)
	}

	job.State = types.StateDone
	job.FinishedAt = time.Now()
	progress(1.0, fmt.Sprintf("Saved %s", out.PPTXPath))
	return out, nil
}

// fail moves the job to its terminal failed state and passes the cause
// through. Output already on disk is left in place.
func fail(job *types.ConversionJob, err error) error {
	job.State = types.StateFailed
	job.FinishedAt = time.Now()
	return err
}

// pageErr attributes an error to a page index unless it already carries one.
func pageErr(i int, err error) error {
	switch err.(type) {
	case *types.ConversionError, *types.DocumentError, *types.IOError:
		return err
	}
	return &types.ConversionError{Page: i, Err: err}
}

// writePageImage encodes one page raster to disk.
func writePageImage(path string, page *types.PageImage, format types.ImageFormat, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return &types.IOError{Path: path, Err: err}
	}
	defer f.Close()

	switch format {
	case types.FormatJPEG:
		err = jpeg.Encode(f, page.Image, &jpeg.Options{Quality: quality})
	default:
		err = png.Encode(f, page.Image)
	}
	if err != nil {
		return &types.ConversionError{Page: page.Index, Err: err}
	}
	return f.Close()
}
