// Copyright Daniel Amado, 2026. All rights reserved.

// Package pptx writes a presentation container (a zip of OOXML parts)
// holding one full-bleed picture per slide. It emits only the parts a
// picture deck needs; no text, placeholders, or notes.
package pptx

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/TDanyStark/pdf-to-pptx/internal/compose"
	"github.com/TDanyStark/pdf-to-pptx/pkg/types"
)

// Write persists the presentation to path. Page images are read back from
// the paths recorded on each slide and embedded as media parts. The file
// is written once; there is no partial or incremental save.
func Write(path string, prs *compose.Presentation) error {
	if prs.Len() == 0 {
		return &types.ConversionError{Page: -1, Err: fmt.Errorf("presentation has no slides")}
	}

	f, err := os.Create(path)
	if err != nil {
		return &types.IOError{Path: path, Err: err}
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	if err := writeParts(zw, prs); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return &types.IOError{Path: path, Err: err}
	}
	return f.Close()
}

func writeParts(zw *zip.Writer, prs *compose.Presentation) error {
	n := prs.Len()

	static := []struct {
		name, content string
	}{
		{"[Content_Types].xml", contentTypesXML(n)},
		{"_rels/.rels", rootRelsXML()},
		{"docProps/core.xml", corePropsXML(prs.Title, time.Now())},
		{"docProps/app.xml", appPropsXML(n)},
		{"ppt/presentation.xml", presentationXML(prs.SlideW, prs.SlideH, n)},
		{"ppt/_rels/presentation.xml.rels", presentationRelsXML(n)},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML()},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML()},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML()},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsXML()},
		{"ppt/theme/theme1.xml", themeXML()},
	}
	for _, p := range static {
		if err := writeStringPart(zw, p.name, p.content); err != nil {
			return err
		}
	}

	if err := writeThumbnail(zw, prs.Slides[0].ImagePath); err != nil {
		return err
	}

	for i, s := range prs.Slides {
		mediaName := fmt.Sprintf("image%d%s", i+1, strings.ToLower(filepath.Ext(s.ImagePath)))
		pl := s.Placement
		if err := writeStringPart(zw, fmt.Sprintf("ppt/slides/slide%d.xml", i+1),
			slideXML(i, pl.OffX, pl.OffY, pl.ExtW, pl.ExtH)); err != nil {
			return err
		}
		if err := writeStringPart(zw, fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1),
			slideRelsXML(mediaName)); err != nil {
			return err
		}
		if err := copyFilePart(zw, "ppt/media/"+mediaName, s.ImagePath); err != nil {
			return err
		}
	}
	return nil
}

func writeStringPart(zw *zip.Writer, name, content string) error {
	w, err := zw.Create(name)
	if err != nil {
		return &types.IOError{Path: name, Err: err}
	}
	if _, err := io.WriteString(w, content); err != nil {
		return &types.IOError{Path: name, Err: err}
	}
	return nil
}

func copyFilePart(zw *zip.Writer, name, srcPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return &types.IOError{Path: srcPath, Err: err}
	}
	defer src.Close()

	w, err := zw.Create(name)
	if err != nil {
		return &types.IOError{Path: name, Err: err}
	}
	if _, err := io.Copy(w, src); err != nil {
		return &types.IOError{Path: name, Err: err}
	}
	return nil
}
