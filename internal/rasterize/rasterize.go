// Copyright Daniel Amado, 2026. All rights reserved.

// Package rasterize renders PDF pages to raster images through MuPDF.
package rasterize

import (
	"io"

	"github.com/gen2brain/go-fitz"

	"github.com/TDanyStark/pdf-to-pptx/pkg/types"
)

// Document is an open PDF owned by the rasterizer for the duration of a
// conversion. It is read-only; rendering holds no cross-page state.
type Document struct {
	path string
	doc  *fitz.Document
}

// Open opens the PDF at path. An unreadable or corrupted file yields a
// *types.DocumentError.
func Open(path string) (*Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, &types.DocumentError{Path: path, Err: err}
	}
	return &Document{path: path, doc: doc}, nil
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return d.doc.NumPage()
}

// Pages returns a finite, forward-only iterator over page images rendered
// at the given resolution, in source page order. The iterator is not
// restartable mid-sequence; reopen the document to start over.
func (d *Document) Pages(dpi int) *PageIter {
	return &PageIter{doc: d, dpi: dpi, total: d.PageCount()}
}

// Close releases the underlying document.
func (d *Document) Close() error {
	return d.doc.Close()
}

// PageIter is a cursor over a document's pages.
type PageIter struct {
	doc   *Document
	dpi   int
	next  int
	total int
}

// Next renders and returns the next page image, or io.EOF after the last
// page. A render failure yields a *types.ConversionError carrying the
// failed page index.
func (it *PageIter) Next() (*types.PageImage, error) {
	if it.next >= it.total {
		return nil, io.EOF
	}
	i := it.next
	img, err := it.doc.doc.ImageDPI(i, float64(it.dpi))
	if err != nil {
		return nil, &types.ConversionError{Page: i, Err: err}
	}
	it.next++
	b := img.Bounds()
	return &types.PageImage{
		Index:    i,
		Image:    img,
		WidthPx:  b.Dx(),
		HeightPx: b.Dy(),
	}, nil
}
