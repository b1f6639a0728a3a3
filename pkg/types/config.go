// Copyright Daniel Amado, 2026. All rights reserved.

package types

import (
	"os"
	"path/filepath"
)

// DefaultDPI is the raster resolution used when none is configured.
const DefaultDPI = 200

// ConversionConfig holds settings for the conversion pipeline.
type ConversionConfig struct {
	// DPI is the raster resolution for page export (default 200). Higher
	// values increase output image resolution and processing time
	// proportionally to pixel count.
	DPI int `json:"dpi" yaml:"dpi"`

	// Format selects the page image encoding: png or jpeg (default png).
	Format ImageFormat `json:"format" yaml:"format"`

	// OutputDir is the destination directory. Empty means the platform's
	// user downloads location.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// JPEGQuality applies when Format is jpeg (default 95).
	JPEGQuality int `json:"jpeg_quality" yaml:"jpeg_quality"`
}

// HistoryConfig holds settings for the job history store.
type HistoryConfig struct {
	// Enabled controls whether finished jobs are recorded.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Dir is the directory holding the history database. Empty means
	// ~/.pdf2pptx.
	Dir string `json:"dir" yaml:"dir"`
}

// ApplyDefaults fills the store location with its documented default.
// Enabled has no detectable unset state here; the CLI treats absence of
// the setting as enabled.
func (c *HistoryConfig) ApplyDefaults() {
	if c.Dir != "" {
		return
	}
	home, err := os.UserHomeDir()
	if err != nil {
		c.Dir = ".pdf2pptx"
		return
	}
	c.Dir = filepath.Join(home, ".pdf2pptx")
}

// ApplyDefaults fills zero-valued fields with their documented defaults.
func (c *ConversionConfig) ApplyDefaults() {
	if c.DPI == 0 {
		c.DPI = DefaultDPI
	}
	if c.Format == "" {
		c.Format = FormatPNG
	}
	if c.JPEGQuality == 0 {
		c.JPEGQuality = 95
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir()
	}
}

// DefaultOutputDir returns the user's Downloads directory when it exists,
// falling back to the home directory, then to the working directory.
func DefaultOutputDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	dl := filepath.Join(home, "Downloads")
	if info, err := os.Stat(dl); err == nil && info.IsDir() {
		return dl
	}
	return home
}
