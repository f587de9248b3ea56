// Package minifyrenderer 通过 github.com/tdewolff/minify 输出压缩后的 SVG。
package minifyrenderer

import (
	"fmt"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"

	"github.com/ByLCY/svgmaker/renderer"
	svgdoc "github.com/ByLCY/svgmaker/svg"
)

const mediaType = "image/svg+xml"

// Renderer 去掉缩进、注释与多余空白，适合直接内嵌到网页。
type Renderer struct {
	m *minify.M
}

var _ renderer.Renderer = (*Renderer)(nil)

// NewRenderer 创建压缩渲染器，precision 为数值保留的有效位数，0 表示不截断。
func NewRenderer(precision int) *Renderer {
	m := minify.New()
	m.Add(mediaType, &svg.Minifier{Precision: precision})
	return &Renderer{m: m}
}

// Render 先按原样渲染，再交给 minify 压缩。
func (r *Renderer) Render(doc *svgdoc.Document) ([]byte, error) {
	plain, err := renderer.Plain{}.Render(doc)
	if err != nil {
		return nil, err
	}
	out, err := r.m.Bytes(mediaType, plain)
	if err != nil {
		return nil, fmt.Errorf("压缩 SVG 失败: %w", err)
	}
	return out, nil
}
