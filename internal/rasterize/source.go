// Copyright Daniel Amado, 2026. All rights reserved.

package rasterize

import (
	"github.com/TDanyStark/pdf-to-pptx/internal/pipeline"
)

// Source implements pipeline.PageSource over MuPDF documents.
type Source struct{}

func (Source) Open(path string) (pipeline.Document, error) {
	d, err := Open(path)
	if err != nil {
		return nil, err
	}
	return pipelineDoc{d}, nil
}

// pipelineDoc narrows *Document's iterator to the pipeline's interface.
type pipelineDoc struct {
	*Document
}

func (d pipelineDoc) Pages(dpi int) pipeline.PageIter {
	return d.Document.Pages(dpi)
}
