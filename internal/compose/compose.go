// Copyright Daniel Amado, 2026. All rights reserved.

// Package compose computes slide geometry for full-bleed page images. All
// coordinates are in EMU (English Metric Units, 914400 per inch), the
// native unit of the presentation container.
package compose

import (
	"math"

	"github.com/TDanyStark/pdf-to-pptx/pkg/types"
)

// EMUPerInch is the number of English Metric Units per inch.
const EMUPerInch = 914400

// Placement positions an image on a slide. Off is the top-left corner and
// may be negative: cover fit lets the image overshoot the slide bounds
// symmetrically on one axis.
type Placement struct {
	OffX, OffY int64
	ExtW, ExtH int64
}

// CoverFit scales an image uniformly so it fully covers a slide, then
// centers it. The scale is max(slideW/imgW, slideH/imgH): the covering
// axis matches the slide exactly while the other overshoots and is
// cropped at the slide edges. This trades clipped image edges for the
// guarantee of no visible border; it is never a contain fit.
func CoverFit(imgW, imgH, slideW, slideH int64) (Placement, error) {
	for _, d := range []struct {
		name string
		v    int64
	}{
		{"imgW", imgW}, {"imgH", imgH}, {"slideW", slideW}, {"slideH", slideH},
	} {
		if d.v <= 0 {
			return Placement{}, &types.InvalidDimensionError{What: d.name, Value: float64(d.v)}
		}
	}

	scale := math.Max(float64(slideW)/float64(imgW), float64(slideH)/float64(imgH))
	w := int64(math.Round(float64(imgW) * scale))
	h := int64(math.Round(float64(imgH) * scale))

	return Placement{
		OffX: (slideW - w) / 2,
		OffY: (slideH - h) / 2,
		ExtW: w,
		ExtH: h,
	}, nil
}

// SlideSizeFromPixels derives slide dimensions in EMU from a page raster's
// pixel size at the given resolution, so one pixel maps to one slide unit
// of the same physical size as on the source page.
func SlideSizeFromPixels(widthPx, heightPx, dpi int) (emuW, emuH int64, err error) {
	for _, d := range []struct {
		name string
		v    int
	}{
		{"widthPx", widthPx}, {"heightPx", heightPx}, {"dpi", dpi},
	} {
		if d.v <= 0 {
			return 0, 0, &types.InvalidDimensionError{What: d.name, Value: float64(d.v)}
		}
	}
	emuW = int64(math.Round(float64(widthPx) / float64(dpi) * EMUPerInch))
	emuH = int64(math.Round(float64(heightPx) / float64(dpi) * EMUPerInch))
	return emuW, emuH, nil
}

// Slide is one page image placed on a slide.
type Slide struct {
	// ImagePath is the exported page image on disk.
	ImagePath string

	// WidthPx and HeightPx are the image's pixel dimensions.
	WidthPx, HeightPx int

	// Placement is the cover-fit position of the image on the slide.
	Placement Placement
}

// Presentation is an ordered sequence of slides sharing one slide size,
// built incrementally and persisted once at the end.
type Presentation struct {
	// SlideW and SlideH are the slide dimensions in EMU.
	SlideW, SlideH int64

	// Title is the presentation title (the source document's base name).
	Title string

	Slides []Slide
}

// New creates an empty presentation sized from the first page's raster.
func New(title string, firstPageWidthPx, firstPageHeightPx, dpi int) (*Presentation, error) {
	w, h, err := SlideSizeFromPixels(firstPageWidthPx, firstPageHeightPx, dpi)
	if err != nil {
		return nil, err
	}
	return &Presentation{SlideW: w, SlideH: h, Title: title}, nil
}

// AddPage appends one slide holding the given page image, placed with
// cover fit. Slides are appended strictly in call order.
func (p *Presentation) AddPage(imagePath string, widthPx, heightPx int) error {
	if widthPx <= 0 {
		return &types.InvalidDimensionError{What: "widthPx", Value: float64(widthPx)}
	}
	if heightPx <= 0 {
		return &types.InvalidDimensionError{What: "heightPx", Value: float64(heightPx)}
	}
	// Image pixels scale to EMU at the presentation's implied DPI; the
	// ratio is all CoverFit cares about, so pixel units work directly.
	pl, err := CoverFit(int64(widthPx), int64(heightPx), p.SlideW, p.SlideH)
	if err != nil {
		return err
	}
	p.Slides = append(p.Slides, Slide{
		ImagePath: imagePath,
		WidthPx:   widthPx,
		HeightPx:  heightPx,
		Placement: pl,
	})
	return nil
}

// Len returns the number of slides.
func (p *Presentation) Len() int { return len(p.Slides) }
