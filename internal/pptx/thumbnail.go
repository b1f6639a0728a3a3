// Copyright Daniel Amado, 2026. All rights reserved.

package pptx

import (
	"archive/zip"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/TDanyStark/pdf-to-pptx/pkg/types"
)

const (
	thumbnailPart  = "docProps/thumbnail.jpeg"
	thumbnailWidth = 256
)

// writeThumbnail scales the first page image down to a package thumbnail.
func writeThumbnail(zw *zip.Writer, firstPagePath string) error {
	f, err := os.Open(firstPagePath)
	if err != nil {
		return &types.IOError{Path: firstPagePath, Err: err}
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return &types.ConversionError{Page: 0, Err: err}
	}

	b := src.Bounds()
	h := b.Dy() * thumbnailWidth / b.Dx()
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, thumbnailWidth, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	w, err := zw.Create(thumbnailPart)
	if err != nil {
		return &types.IOError{Path: thumbnailPart, Err: err}
	}
	if err := jpeg.Encode(w, dst, &jpeg.Options{Quality: 80}); err != nil {
		return &types.ConversionError{Page: 0, Err: err}
	}
	return nil
}
