// Copyright Daniel Amado, 2026. All rights reserved.

// Package types defines the shared domain types for the PDF-to-PPTX
// conversion pipeline: jobs, configuration, output descriptors, and the
// error kinds surfaced by the stages.
package types

import (
	"image"
	"time"
)

// JobState tracks a conversion job through its lifecycle. Terminal states
// (done, failed) are final for a job instance; a retry requires a new job.
type JobState string

const (
	StateIdle      JobState = "idle"
	StatePreparing JobState = "preparing"
	StateRendering JobState = "rendering"
	StateSaving    JobState = "saving"
	StateDone      JobState = "done"
	StateFailed    JobState = "failed"
)

// Terminal reports whether the state admits no further transitions.
func (s JobState) Terminal() bool {
	return s == StateDone || s == StateFailed
}

// ImageFormat selects the encoding for exported page images.
type ImageFormat string

const (
	FormatPNG  ImageFormat = "png"
	FormatJPEG ImageFormat = "jpeg"
)

// Ext returns the file extension for the format, without the dot.
func (f ImageFormat) Ext() string {
	if f == FormatJPEG {
		return "jpg"
	}
	return "png"
}

// ConversionJob describes one end-to-end request to convert one PDF into
// one presentation. It is created when a conversion is requested, mutated
// as pages complete, and discarded after the final save or on failure.
type ConversionJob struct {
	// InputPath is the path to the source PDF.
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputDir is the destination directory. The job writes into
	// OutputDir/<pdf base name>/.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// DPI is the raster resolution for page export.
	DPI int `json:"dpi" yaml:"dpi"`

	// Format is the page image encoding (png or jpeg).
	Format ImageFormat `json:"format" yaml:"format"`

	// JPEGQuality applies when Format is jpeg (default 95).
	JPEGQuality int `json:"jpeg_quality,omitempty" yaml:"jpeg_quality,omitempty"`

	// State is the current lifecycle state.
	State JobState `json:"state" yaml:"state"`

	// PagesDone and PagesTotal track rendering progress.
	PagesDone  int `json:"pages_done" yaml:"pages_done"`
	PagesTotal int `json:"pages_total" yaml:"pages_total"`

	// StartedAt and FinishedAt bound the job's execution.
	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at,omitempty" yaml:"finished_at,omitempty"`
}

// PageImage is a decoded raster of one source page. It is ephemeral: it
// exists only until written to disk and placed into a slide.
type PageImage struct {
	// Index is the zero-based page index in source order.
	Index int

	// Image is the decoded raster.
	Image image.Image

	// WidthPx and HeightPx are the raster dimensions in pixels.
	WidthPx  int
	HeightPx int
}

// OutputPaths describes where a completed conversion wrote its results.
type OutputPaths struct {
	// JobDir is OutputDir/<base>, the directory holding all outputs.
	JobDir string `json:"job_dir" yaml:"job_dir"`

	// PPTXPath is the presentation file.
	PPTXPath string `json:"pptx_path" yaml:"pptx_path"`

	// PagePaths lists the exported page images in source page order.
	PagePaths []string `json:"page_paths" yaml:"page_paths"`

	// FirstPageWidthPx and FirstPageHeightPx are the pixel dimensions of
	// the first rendered page, from which the slide size was derived.
	FirstPageWidthPx  int `json:"first_page_width_px" yaml:"first_page_width_px"`
	FirstPageHeightPx int `json:"first_page_height_px" yaml:"first_page_height_px"`

	// DPI is the resolution the pages were rendered at.
	DPI int `json:"dpi" yaml:"dpi"`
}
