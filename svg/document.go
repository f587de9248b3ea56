// Package svg 以逐行追加的方式生成带缩进的 SVG 文本。
//
// Document 维护输出行、缩进层级与待关闭标签栈；各类图形方法只负责计算坐标与属性，
// 最终都经由 EmitElement / OpenElement 两个原语写出。
package svg

import (
	"errors"
	"strconv"
	"strings"
)

const (
	indentUnit = "    "
	xmlHeader  = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>`
	namespace  = "http://www.w3.org/2000/svg"
)

// ErrScopeUnderflow 表示在没有已打开作用域时尝试关闭作用域。
var ErrScopeUnderflow = errors.New("svg: close scope without open scope")

// Layout 控制属性的排列方式。
type Layout int

const (
	LayoutInherit  Layout = iota // 沿用文档默认值
	LayoutInline                 // <tag a="1" b="2"/>
	LayoutIndented               // 每个属性一行，闭合符单独一行
)

// Document 是一次性、单遍写入的 SVG 文档，不支持并发访问。
type Document struct {
	Width  int
	Height int

	lines    []string
	closers  []string // 待输出的关闭标签，栈顶在末尾；长度即缩进层级
	indented bool     // 文档默认的属性排列方式
}

// New 创建指定画布尺寸的空文档，默认属性写在同一行。
func New(width, height int) *Document {
	return &Document{Width: width, Height: height}
}

// AdjustStyle 修改文档默认的属性排列方式，只影响之后写出且未显式指定 Layout 的元素。
func (d *Document) AdjustStyle(indented bool) {
	d.indented = indented
}

// Indented 报告文档当前默认是否使用缩进属性排列。
func (d *Document) Indented() bool { return d.indented }

// Depth 返回当前缩进层级。
func (d *Document) Depth() int { return len(d.closers) }

// Lines 返回已写出行的副本。
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// WriteLines 按当前缩进层级追加若干行，是唯一修改输出的入口。
func (d *Document) WriteLines(lines ...string) {
	prefix := strings.Repeat(indentUnit, len(d.closers))
	for _, line := range lines {
		d.lines = append(d.lines, prefix+line)
	}
}

// OpenScope 压入一个关闭标签并增加缩进，本身不输出任何内容。
func (d *Document) OpenScope(closing string) {
	d.closers = append(d.closers, closing)
}

// CloseScope 弹出栈顶关闭标签，并在减少后的缩进层级写出它。
func (d *Document) CloseScope() error {
	n := len(d.closers)
	if n == 0 {
		return ErrScopeUnderflow
	}
	tag := d.closers[n-1]
	d.closers = d.closers[:n-1]
	d.WriteLines(tag)
	return nil
}

// CloseScopes 自顶向下关闭恰好 levels 个作用域。
// levels 超过已打开数量时不做任何修改并返回 ErrScopeUnderflow。
func (d *Document) CloseScopes(levels int) error {
	if levels > len(d.closers) {
		return ErrScopeUnderflow
	}
	for i := 0; i < levels; i++ {
		if err := d.CloseScope(); err != nil {
			return err
		}
	}
	return nil
}

// CloseOpenScopes 关闭除最外层（根 svg）以外的所有作用域。
func (d *Document) CloseOpenScopes() error {
	if len(d.closers) <= 1 {
		return nil
	}
	return d.CloseScopes(len(d.closers) - 1)
}

// EmitElement 写出一个元素。closer 通常为 "/>" 或 ">"。
// attrs 为空时原样输出 <tag{closer}，注释也借此输出（tag 为 "!--"）。
// 属性值不做任何转义。
func (d *Document) EmitElement(tag string, attrs Attrs, closer string, layout Layout) {
	if len(attrs) == 0 {
		d.WriteLines("<" + tag + closer)
		return
	}

	if d.resolve(layout) == LayoutIndented {
		params := make([]string, 0, len(attrs))
		for _, attr := range attrs {
			params = append(params, attr.Name+"=\t\""+attr.Value+"\"")
		}
		d.WriteLines("<" + tag)
		d.OpenScope(closer)
		d.WriteLines(params...)
		// 刚刚打开的作用域，不可能下溢
		_ = d.CloseScope()
		return
	}

	var b strings.Builder
	b.WriteString("<")
	b.WriteString(tag)
	for _, attr := range attrs {
		b.WriteString(" ")
		b.WriteString(attr.Name)
		b.WriteString("=\"")
		b.WriteString(attr.Value)
		b.WriteString("\"")
	}
	b.WriteString(closer)
	d.WriteLines(b.String())
}

// OpenElement 写出开始标签并压入对应的 </tag>，之后的元素嵌套在其中，直到关闭。
func (d *Document) OpenElement(tag string, attrs Attrs, layout Layout) {
	d.EmitElement(tag, attrs, ">", layout)
	d.OpenScope("</" + tag + ">")
}

// resolve 在写出时读取文档默认值，不提前缓存。
func (d *Document) resolve(layout Layout) Layout {
	if layout != LayoutInherit {
		return layout
	}
	if d.indented {
		return LayoutIndented
	}
	return LayoutInline
}

// StartDocument 写出 XML 声明并打开根 svg 元素。
func (d *Document) StartDocument() {
	d.WriteLines(xmlHeader)
	d.OpenElement("svg", Attrs{
		{Name: "width", Value: strconv.Itoa(d.Width)},
		{Name: "height", Value: strconv.Itoa(d.Height)},
		{Name: "xmlns", Value: namespace},
	}, LayoutInherit)
}

// EndDocument 按后进先出顺序关闭所有剩余作用域，缩进回到 0。
func (d *Document) EndDocument() {
	for len(d.closers) > 0 {
		_ = d.CloseScope()
	}
}

// AddBlankLines 追加 n 个空行（仍带当前缩进前缀）。
func (d *Document) AddBlankLines(n int) {
	if n <= 0 {
		return
	}
	d.WriteLines(make([]string, n)...)
}

// AddComment 追加一行 XML 注释。
func (d *Document) AddComment(text string) {
	d.EmitElement("!--", nil, " "+text+" -->", LayoutInherit)
}
