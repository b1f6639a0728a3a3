// Copyright Daniel Amado, 2026. All rights reserved.

package pptx

import (
	"archive/zip"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TDanyStark/pdf-to-pptx/internal/compose"
)

// writeTestImage writes a small solid PNG and returns its path.
func writeTestImage(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

// buildTestPresentation composes a deck from n generated page images.
func buildTestPresentation(t *testing.T, dir string, n int) *compose.Presentation {
	t.Helper()
	prs, err := compose.New("deck", 400, 300, 100)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < n; i++ {
		p := writeTestImage(t, dir, fmt.Sprintf("%03d.png", i), 400, 300)
		if err := prs.AddPage(p, 400, 300); err != nil {
			t.Fatal(err)
		}
	}
	return prs
}

func readPart(t *testing.T, zr *zip.ReadCloser, name string) string {
	t.Helper()
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				t.Fatal(err)
			}
			defer rc.Close()
			data, err := io.ReadAll(rc)
			if err != nil {
				t.Fatal(err)
			}
			return string(data)
		}
	}
	t.Fatalf("part %s not found in package", name)
	return ""
}

func TestWrite_PackageStructure(t *testing.T) {
	dir := t.TempDir()
	prs := buildTestPresentation(t, dir, 3)

	out := filepath.Join(dir, "deck.pptx")
	if err := Write(out, prs); err != nil {
		t.Fatalf("Write: %v", err)
	}

	zr, err := zip.OpenReader(out)
	if err != nil {
		t.Fatalf("opening package: %v", err)
	}
	defer zr.Close()

	required := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/core.xml",
		"docProps/app.xml",
		"docProps/thumbnail.jpeg",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
		"ppt/slides/slide3.xml",
		"ppt/slides/_rels/slide1.xml.rels",
		"ppt/media/image1.png",
		"ppt/media/image2.png",
		"ppt/media/image3.png",
	}
	have := make(map[string]bool, len(zr.File))
	for _, f := range zr.File {
		have[f.Name] = true
	}
	for _, name := range required {
		if !have[name] {
			t.Errorf("missing part %s", name)
		}
	}
}

func TestWrite_PartContents(t *testing.T) {
	dir := t.TempDir()
	prs := buildTestPresentation(t, dir, 2)

	out := filepath.Join(dir, "deck.pptx")
	if err := Write(out, prs); err != nil {
		t.Fatalf("Write: %v", err)
	}

	zr, err := zip.OpenReader(out)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()

	ct := readPart(t, zr, "[Content_Types].xml")
	for _, want := range []string{
		`PartName="/ppt/slides/slide1.xml"`,
		`PartName="/ppt/slides/slide2.xml"`,
		`Extension="png"`,
	} {
		if !strings.Contains(ct, want) {
			t.Errorf("content types missing %s", want)
		}
	}

	pres := readPart(t, zr, "ppt/presentation.xml")
	// 400x300 px at 100 DPI is 4x3 inches.
	if !strings.Contains(pres, `cx="3657600" cy="2743200"`) {
		t.Errorf("presentation.xml has wrong slide size: %s", pres)
	}
	if got := strings.Count(pres, "<p:sldId "); got != 2 {
		t.Errorf("presentation.xml lists %d slides, want 2", got)
	}

	slide := readPart(t, zr, "ppt/slides/slide1.xml")
	// Matching aspect: the picture fills the slide from the origin.
	if !strings.Contains(slide, `<a:off x="0" y="0"/>`) {
		t.Errorf("slide1 picture not at origin: %s", slide)
	}
	if !strings.Contains(slide, `r:embed="rId1"`) {
		t.Error("slide1 missing image reference")
	}

	rels := readPart(t, zr, "ppt/slides/_rels/slide1.xml.rels")
	if !strings.Contains(rels, `Target="../media/image1.png"`) {
		t.Errorf("slide1 rels missing media target: %s", rels)
	}

	core := readPart(t, zr, "docProps/core.xml")
	if !strings.Contains(core, "<dc:title>deck</dc:title>") {
		t.Error("core.xml missing title")
	}
}

func TestWrite_EmptyPresentation(t *testing.T) {
	prs := &compose.Presentation{SlideW: 100, SlideH: 100, Title: "empty"}
	err := Write(filepath.Join(t.TempDir(), "empty.pptx"), prs)
	if err == nil {
		t.Fatal("expected error for empty presentation")
	}
}

func TestWrite_MissingImage(t *testing.T) {
	prs, err := compose.New("deck", 400, 300, 100)
	if err != nil {
		t.Fatal(err)
	}
	if err := prs.AddPage(filepath.Join(t.TempDir(), "gone.png"), 400, 300); err != nil {
		t.Fatal(err)
	}
	if err := Write(filepath.Join(t.TempDir(), "deck.pptx"), prs); err == nil {
		t.Fatal("expected error for missing page image")
	}
}

func TestXMLEscape(t *testing.T) {
	got := xmlEscape(`a<b>&"c"`)
	if strings.ContainsAny(got, "<>") || !strings.Contains(got, "&amp;") {
		t.Errorf("xmlEscape = %q", got)
	}
}
