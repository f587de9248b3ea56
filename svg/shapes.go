package svg

import (
	"strconv"
	"strings"

	"github.com/tdewolff/canvas"
)

// Point 是多边形/折线的顶点，沿用 canvas 的坐标类型。
type Point = canvas.Point

// Centering 决定图形坐标参数的含义。
type Centering int

const (
	CenterDefault Centering = iota // 使用图形自身的默认值
	Centered                       // 给定坐标为图形中心
	Cornered                       // 给定坐标为左上角（线段为起点）
)

// ShapeOptions 汇总图形方法共用的可选参数，零值即全部默认。
type ShapeOptions struct {
	Style     Attrs // CSS 样式，非空时序列化为 style 属性
	Extra     Attrs // 额外属性，覆盖同名的坐标属性
	Center    Centering
	Invisible bool // 强制 opacity="0"，通常配合 FadeIn
	Layout    Layout
}

func (o ShapeOptions) centered(def bool) bool {
	switch o.Center {
	case Centered:
		return true
	case Cornered:
		return false
	default:
		return def
	}
}

// Element 描述一个待写出的元素：标签名与最终属性。
type Element struct {
	Tag   string
	Attrs Attrs
}

// Emit 以自闭合形式写出元素。
func (d *Document) Emit(el Element, layout Layout) {
	d.EmitElement(el.Tag, el.Attrs, "/>", layout)
}

// Open 写出元素的开始标签并保持打开。
func (d *Document) Open(el Element, layout Layout) {
	d.OpenElement(el.Tag, el.Attrs, layout)
}

func newElement(tag string, base Attrs, opts ShapeOptions) Element {
	return Element{Tag: tag, Attrs: MergeAttrs(base, opts.Style, opts.Extra, opts.Invisible)}
}

// Circle 构造圆。默认 (x, y) 为圆心；Cornered 时 (x, y) 为外接正方形左上角。
func Circle(x, y, r float64, opts ShapeOptions) Element {
	if !opts.centered(true) {
		x += r
		y += r
	}
	return newElement("circle", Attrs{
		{Name: "cx", Value: num(x)},
		{Name: "cy", Value: num(y)},
		{Name: "r", Value: num(r)},
	}, opts)
}

// Ellipse 构造椭圆，居中规则同 Circle。
func Ellipse(x, y, rx, ry float64, opts ShapeOptions) Element {
	if !opts.centered(true) {
		x += rx
		y += ry
	}
	return newElement("ellipse", Attrs{
		{Name: "cx", Value: num(x)},
		{Name: "cy", Value: num(y)},
		{Name: "rx", Value: num(rx)},
		{Name: "ry", Value: num(ry)},
	}, opts)
}

// Rect 构造矩形。默认 (x, y) 为左上角；Centered 时 (x, y) 为中心。
func Rect(x, y, w, h float64, opts ShapeOptions) Element {
	if opts.centered(false) {
		x -= w / 2
		y -= h / 2
	}
	return newElement("rect", Attrs{
		{Name: "x", Value: num(x)},
		{Name: "y", Value: num(y)},
		{Name: "width", Value: num(w)},
		{Name: "height", Value: num(h)},
	}, opts)
}

// Line 构造线段。Centered 时起点沿 (x2-x1, y2-y1) 反向平移一个完整位移量。
func Line(x1, y1, x2, y2 float64, opts ShapeOptions) Element {
	if opts.centered(false) {
		// 平移整段位移而非一半，保持既有输出不变
		x1 -= x2 - x1
		y1 -= y2 - y1
	}
	return newElement("line", Attrs{
		{Name: "x1", Value: num(x1)},
		{Name: "y1", Value: num(y1)},
		{Name: "x2", Value: num(x2)},
		{Name: "y2", Value: num(y2)},
	}, opts)
}

// Polygon 构造闭合多边形，Center 被忽略。
func Polygon(points []Point, opts ShapeOptions) Element {
	return newElement("polygon", Attrs{{Name: "points", Value: FormatPoints(points)}}, opts)
}

// Polyline 构造折线，Center 被忽略。
func Polyline(points []Point, opts ShapeOptions) Element {
	return newElement("polyline", Attrs{{Name: "points", Value: FormatPoints(points)}}, opts)
}

// FormatPoints 输出 "x1,y1 x2,y2 ..."。
func FormatPoints(points []Point) string {
	parts := make([]string, 0, len(points))
	for _, p := range points {
		parts = append(parts, num(p.X)+","+num(p.Y))
	}
	return strings.Join(parts, " ")
}

func (d *Document) DrawCircle(x, y, r float64, opts ShapeOptions) {
	d.Emit(Circle(x, y, r, opts), opts.Layout)
}

func (d *Document) OpenCircle(x, y, r float64, opts ShapeOptions) {
	d.Open(Circle(x, y, r, opts), opts.Layout)
}

func (d *Document) DrawEllipse(x, y, rx, ry float64, opts ShapeOptions) {
	d.Emit(Ellipse(x, y, rx, ry, opts), opts.Layout)
}

func (d *Document) OpenEllipse(x, y, rx, ry float64, opts ShapeOptions) {
	d.Open(Ellipse(x, y, rx, ry, opts), opts.Layout)
}

func (d *Document) DrawRect(x, y, w, h float64, opts ShapeOptions) {
	d.Emit(Rect(x, y, w, h, opts), opts.Layout)
}

func (d *Document) OpenRect(x, y, w, h float64, opts ShapeOptions) {
	d.Open(Rect(x, y, w, h, opts), opts.Layout)
}

func (d *Document) DrawLine(x1, y1, x2, y2 float64, opts ShapeOptions) {
	d.Emit(Line(x1, y1, x2, y2, opts), opts.Layout)
}

func (d *Document) OpenLine(x1, y1, x2, y2 float64, opts ShapeOptions) {
	d.Open(Line(x1, y1, x2, y2, opts), opts.Layout)
}

func (d *Document) DrawPolygon(points []Point, opts ShapeOptions) {
	d.Emit(Polygon(points, opts), opts.Layout)
}

func (d *Document) OpenPolygon(points []Point, opts ShapeOptions) {
	d.Open(Polygon(points, opts), opts.Layout)
}

func (d *Document) DrawPolyline(points []Point, opts ShapeOptions) {
	d.Emit(Polyline(points, opts), opts.Layout)
}

func (d *Document) OpenPolyline(points []Point, opts ShapeOptions) {
	d.Open(Polyline(points, opts), opts.Layout)
}

// Text 构造 <text> 的开始标签，文本内容由调用方在打开后写入。
func Text(x, y float64, opts ShapeOptions) Element {
	return newElement("text", Attrs{
		{Name: "x", Value: num(x)},
		{Name: "y", Value: num(y)},
	}, opts)
}

// DrawText 写出 <text>，文本内容作为嵌套的一行原样输出，不做转义。
func (d *Document) DrawText(x, y float64, text string, opts ShapeOptions) error {
	d.Open(Text(x, y, opts), opts.Layout)
	d.WriteLines(text)
	return d.CloseScopes(1)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
