// Copyright Daniel Amado, 2026. All rights reserved.

package rasterize

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TDanyStark/pdf-to-pptx/pkg/types"
)

// writeMinimalPDF assembles a valid empty-page PDF by hand, tracking byte
// offsets for the cross-reference table. Pages are US Letter (612x792 pt).
func writeMinimalPDF(t *testing.T, dir string, pages int) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("%PDF-1.4\n")

	kids := make([]string, pages)
	for i := 0; i < pages; i++ {
		kids[i] = fmt.Sprintf("%d 0 R", 3+i)
	}

	objects := []string{
		"<</Type/Catalog/Pages 2 0 R>>",
		fmt.Sprintf("<</Type/Pages/Kids[%s]/Count %d>>", strings.Join(kids, " "), pages),
	}
	for i := 0; i < pages; i++ {
		objects = append(objects, "<</Type/Page/Parent 2 0 R/MediaBox[0 0 612 792]>>")
	}

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefOffset := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n", len(objects)+1)
	b.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<</Size %d/Root 1 0 R>>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, xrefOffset)

	path := filepath.Join(dir, "fixture.pdf")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.pdf"))
	var docErr *types.DocumentError
	if !errors.As(err, &docErr) {
		t.Fatalf("err = %v, want DocumentError", err)
	}
}

func TestOpen_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(path)
	var docErr *types.DocumentError
	if !errors.As(err, &docErr) {
		t.Fatalf("err = %v, want DocumentError", err)
	}
}

func TestDocument_PageCount(t *testing.T) {
	path := writeMinimalPDF(t, t.TempDir(), 3)

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer doc.Close()

	if got := doc.PageCount(); got != 3 {
		t.Errorf("PageCount = %d, want 3", got)
	}
}

func TestPageIter(t *testing.T) {
	path := writeMinimalPDF(t, t.TempDir(), 2)

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer doc.Close()

	const dpi = 144
	iter := doc.Pages(dpi)
	for i := 0; i < 2; i++ {
		page, err := iter.Next()
		if err != nil {
			t.Fatalf("Next page %d: %v", i, err)
		}
		if page.Index != i {
			t.Errorf("page index = %d, want %d", page.Index, i)
		}
		// 612x792 pt at 144 DPI doubles the point dimensions.
		if diff(page.WidthPx, 1224) > 2 || diff(page.HeightPx, 1584) > 2 {
			t.Errorf("page %d rendered at %dx%d, want ~1224x1584", i, page.WidthPx, page.HeightPx)
		}
		if page.Image == nil {
			t.Fatalf("page %d has nil image", i)
		}
	}

	// The sequence is finite and forward-only.
	if _, err := iter.Next(); err != io.EOF {
		t.Errorf("Next after last page = %v, want io.EOF", err)
	}
}

func diff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
