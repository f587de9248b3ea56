package svg

import "github.com/tdewolff/canvas"

// Path 构造 <path>，d 原样写入。
func Path(d string, opts ShapeOptions) Element {
	return newElement("path", Attrs{{Name: "d", Value: d}}, opts)
}

// PathFrom 把 canvas 路径平移到 (x, y) 后序列化为 <path>，不修改传入的路径。
func PathFrom(p *canvas.Path, x, y float64, opts ShapeOptions) Element {
	return Path(p.Copy().Translate(x, y).ToSVG(), opts)
}

func (d *Document) DrawPath(path string, opts ShapeOptions) {
	d.Emit(Path(path, opts), opts.Layout)
}

func (d *Document) OpenPath(path string, opts ShapeOptions) {
	d.Open(Path(path, opts), opts.Layout)
}

// DrawShape 写出由 canvas 构造的路径，例如 canvas.StarPolygon 或 canvas.RoundedRectangle。
func (d *Document) DrawShape(p *canvas.Path, x, y float64, opts ShapeOptions) {
	d.Emit(PathFrom(p, x, y, opts), opts.Layout)
}

func (d *Document) OpenShape(p *canvas.Path, x, y float64, opts ShapeOptions) {
	d.Open(PathFrom(p, x, y, opts), opts.Layout)
}

// OpenGroup 打开一个 <g> 容器，用 CloseScopes(1) 或 CloseOpenScopes 关闭。
// 没有任何属性时输出 <g>。
func (d *Document) OpenGroup(opts ShapeOptions) {
	d.Open(newElement("g", nil, opts), opts.Layout)
}
