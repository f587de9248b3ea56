package minifyrenderer

import (
	"strings"
	"testing"

	"github.com/ByLCY/svgmaker/svg"
)

func TestMinifiedOutputIsCompact(t *testing.T) {
	doc := svg.New(100, 100)
	doc.AdjustStyle(true)
	doc.StartDocument()
	doc.AddComment("decoration")
	doc.OpenGroup(svg.ShapeOptions{Style: svg.Attrs{{Name: "fill", Value: "red"}}})
	doc.DrawCircle(50, 50, 10, svg.ShapeOptions{})
	doc.DrawRect(0, 0, 20, 20, svg.ShapeOptions{})
	doc.EndDocument()

	out, err := NewRenderer(0).Render(doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "<svg") {
		t.Fatalf("missing svg root: %s", s)
	}
	if strings.Contains(s, "\n    ") {
		t.Fatalf("indentation should be removed: %s", s)
	}
	if strings.Contains(s, "decoration") {
		t.Fatalf("comments should be removed: %s", s)
	}
	if len(s) >= len(doc.String()) {
		t.Fatalf("minified output is not shorter: %d >= %d", len(s), len(doc.String()))
	}
}

func TestMinifyRejectsOpenDocument(t *testing.T) {
	doc := svg.New(10, 10)
	doc.StartDocument()
	if _, err := NewRenderer(0).Render(doc); err == nil {
		t.Fatalf("expected error for document with open scopes")
	}
}
