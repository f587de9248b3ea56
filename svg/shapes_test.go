package svg

import (
	"strings"
	"testing"

	"github.com/tdewolff/canvas"
)

func render(el Element) string {
	d := New(0, 0)
	d.Emit(el, LayoutInline)
	return d.String()
}

func TestMergeAttrsOrder(t *testing.T) {
	base := Attrs{{"a", "1"}, {"b", "2"}}
	extra := Attrs{{"b", "3"}, {"c", "4"}}
	style := Attrs{{"fill", "red"}}
	got := MergeAttrs(base, style, extra, true)
	want := Attrs{{"a", "1"}, {"b", "3"}, {"c", "4"}, {"opacity", "0"}, {"style", "fill: red"}}
	if len(got) != len(want) {
		t.Fatalf("unexpected merged attrs: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("attr %d mismatch: got=%v want=%v", i, got[i], want[i])
		}
	}
	if v, _ := base.Get("b"); v != "2" {
		t.Fatalf("base must not be modified, b=%s", v)
	}
}

func TestMergeAttrsOverridesLiteralStyleAndOpacity(t *testing.T) {
	extra := Attrs{{"opacity", "0.5"}, {"style", "stroke: blue"}}
	got := MergeAttrs(nil, Attrs{{"fill", "red"}, {"stroke", "none"}}, extra, true)
	if v, _ := got.Get("opacity"); v != "0" {
		t.Fatalf("invisible must force opacity 0, got %s", v)
	}
	if v, _ := got.Get("style"); v != "fill: red; stroke: none" {
		t.Fatalf("style mapping must replace literal style, got %s", v)
	}
}

func TestRectCentering(t *testing.T) {
	got := render(Rect(10, 20, 100, 50, ShapeOptions{}))
	if got != `<rect x="10" y="20" width="100" height="50"/>` {
		t.Fatalf("unexpected rect: %s", got)
	}
	got = render(Rect(10, 20, 100, 50, ShapeOptions{Center: Centered}))
	if got != `<rect x="-40" y="-5" width="100" height="50"/>` {
		t.Fatalf("unexpected centered rect: %s", got)
	}
}

func TestCircleCentering(t *testing.T) {
	got := render(Circle(5, 5, 3, ShapeOptions{}))
	if got != `<circle cx="5" cy="5" r="3"/>` {
		t.Fatalf("unexpected circle: %s", got)
	}
	got = render(Circle(5, 5, 3, ShapeOptions{Center: Cornered}))
	if got != `<circle cx="8" cy="8" r="3"/>` {
		t.Fatalf("unexpected cornered circle: %s", got)
	}
}

func TestEllipseCentering(t *testing.T) {
	got := render(Ellipse(0, 0, 4, 2, ShapeOptions{Center: Cornered}))
	if got != `<ellipse cx="4" cy="2" rx="4" ry="2"/>` {
		t.Fatalf("unexpected ellipse: %s", got)
	}
}

func TestLineCenteringShiftsByFullVector(t *testing.T) {
	got := render(Line(10, 10, 20, 30, ShapeOptions{Center: Centered}))
	if got != `<line x1="0" y1="-10" x2="20" y2="30"/>` {
		t.Fatalf("unexpected centered line: %s", got)
	}
}

func TestPolygonPoints(t *testing.T) {
	pts := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 2.5}}
	got := render(Polygon(pts, ShapeOptions{Style: Attrs{{"fill", "blue"}}}))
	if got != `<polygon points="0,0 10,0 5,2.5" style="fill: blue"/>` {
		t.Fatalf("unexpected polygon: %s", got)
	}
	got = render(Polyline(pts[:2], ShapeOptions{}))
	if got != `<polyline points="0,0 10,0"/>` {
		t.Fatalf("unexpected polyline: %s", got)
	}
}

func TestDrawText(t *testing.T) {
	d := New(10, 10)
	d.StartDocument()
	if err := d.DrawText(1, 2, "Hello", ShapeOptions{Invisible: true}); err != nil {
		t.Fatalf("DrawText: %v", err)
	}
	got := d.Lines()[2:]
	want := []string{`    <text x="1" y="2" opacity="0">`, "        Hello", "    </text>"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected text: got=%q want=%q", got, want)
	}
	if d.Depth() != 1 {
		t.Fatalf("DrawText must close its own scope, depth=%d", d.Depth())
	}
}

func TestOpenShapeNests(t *testing.T) {
	d := New(10, 10)
	d.OpenRect(0, 0, 4, 4, ShapeOptions{})
	d.FadeIn(1, 1)
	if err := d.CloseScopes(1); err != nil {
		t.Fatalf("close: %v", err)
	}
	want := []string{
		`<rect x="0" y="0" width="4" height="4">`,
		`    <animate attributeName="opacity" from="0" to="1" begin="1" dur="1" fill="freeze"/>`,
		`</rect>`,
	}
	got := d.Lines()
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected nesting: got=%q want=%q", got, want)
	}
}

func TestFadeZeroDurationUsesSet(t *testing.T) {
	d := New(10, 10)
	d.FadeIn(2, 0)
	d.FadeOut(3, 0.5)
	got := d.Lines()
	if got[0] != `<set attributeName="opacity" to="1" begin="2"/>` {
		t.Fatalf("unexpected fade-in: %s", got[0])
	}
	if got[1] != `<animate attributeName="opacity" from="1" to="0" begin="3" dur="0.5" fill="freeze"/>` {
		t.Fatalf("unexpected fade-out: %s", got[1])
	}
}

func TestDefaultsAreNotShared(t *testing.T) {
	opts := ShapeOptions{Extra: Attrs{{"id", "a"}}}
	first := Circle(0, 0, 1, opts)
	first.Attrs = first.Attrs.Set("id", "changed")
	if v, _ := opts.Extra.Get("id"); v != "a" {
		t.Fatalf("caller attrs were modified: %s", v)
	}
	second := Circle(0, 0, 1, ShapeOptions{})
	if _, ok := second.Attrs.Get("id"); ok {
		t.Fatalf("attributes leaked between calls: %v", second.Attrs)
	}
}

func TestPathFromCanvas(t *testing.T) {
	star := canvas.StarPolygon(5, 10, 4, true)
	el := PathFrom(star, 50, 50, ShapeOptions{})
	if el.Tag != "path" {
		t.Fatalf("unexpected tag %s", el.Tag)
	}
	d, ok := el.Attrs.Get("d")
	if !ok || !strings.HasPrefix(d, "M") {
		t.Fatalf("unexpected path data: %q", d)
	}
	if again := PathFrom(star, 50, 50, ShapeOptions{}); again.Attrs[0] != el.Attrs[0] {
		t.Fatalf("PathFrom must not modify the source path")
	}
}

func TestOpenGroupWithoutAttrs(t *testing.T) {
	d := New(10, 10)
	d.OpenGroup(ShapeOptions{})
	d.OpenGroup(ShapeOptions{Extra: Attrs{{"id", "g"}}})
	d.EndDocument()
	want := []string{"<g>", `    <g id="g">`, "    </g>", "</g>"}
	got := d.Lines()
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected groups: got=%q want=%q", got, want)
	}
}

func TestPathEntryPoints(t *testing.T) {
	d := New(10, 10)
	d.OpenShape(canvas.Rectangle(4, 2), 1, 1, ShapeOptions{Extra: Attrs{{"id", "box"}}})
	d.DrawPath("M0 0L1 1", ShapeOptions{})
	if err := d.CloseScopes(1); err != nil {
		t.Fatalf("close shape: %v", err)
	}
	d.OpenPath("M2 2", ShapeOptions{})
	d.DrawShape(canvas.Rectangle(1, 1), 0, 0, ShapeOptions{})
	if err := d.CloseScopes(1); err != nil {
		t.Fatalf("close path: %v", err)
	}

	got := d.Lines()
	if len(got) != 6 {
		t.Fatalf("expected 6 lines, got %q", got)
	}
	if !strings.HasPrefix(got[0], `<path d="M1 1`) || !strings.HasSuffix(got[0], `z" id="box">`) {
		t.Fatalf("unexpected opened shape: %q", got[0])
	}
	if got[1] != `    <path d="M0 0L1 1"/>` || got[2] != "</path>" {
		t.Fatalf("unexpected shape body: %q", got[1:3])
	}
	if got[3] != `<path d="M2 2">` || !strings.HasPrefix(got[4], `    <path d="M0 0`) || got[5] != "</path>" {
		t.Fatalf("unexpected path pair: %q", got[3:])
	}
	if d.Depth() != 0 {
		t.Fatalf("expected balanced scopes, depth %d", d.Depth())
	}
}
