// Package scene 解释 dsl 脚本，驱动 svg.Document 生成文档。
package scene

import (
	"fmt"
	"math"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/svgmaker/dsl"
	"github.com/ByLCY/svgmaker/svg"
)

// Build 执行脚本并返回已经结束（所有作用域已关闭）的文档。
func Build(script *dsl.Script, data any, opts BuildOptions) (*svg.Document, error) {
	if script == nil {
		return nil, fmt.Errorf("脚本为空")
	}
	if script.Body == nil {
		return nil, fmt.Errorf("脚本缺少 svg 主体")
	}
	width, height, err := script.Size()
	if err != nil {
		return nil, err
	}

	b := &builder{
		doc:      svg.New(width, height),
		data:     data,
		override: opts.Layout,
	}
	if opts.Layout != svg.LayoutInherit {
		b.doc.AdjustStyle(opts.Layout == svg.LayoutIndented)
	}

	for _, stmt := range script.Body.Statements {
		switch {
		case stmt.Assignment != nil:
			if err := b.setting(stmt.Assignment); err != nil {
				return nil, err
			}
		case stmt.Command != nil:
			b.start()
			if err := b.command(stmt.Command); err != nil {
				return nil, err
			}
		case stmt.Text != nil:
			return nil, fmt.Errorf("svg 主体中不允许直接出现文本 %q，请使用 text 命令", string(stmt.Text.Value))
		}
	}

	b.start()
	b.doc.EndDocument()
	return b.doc, nil
}

type builder struct {
	doc      *svg.Document
	data     any
	override svg.Layout
	started  bool
}

// start 延迟到第一条命令前输出根元素，使脚本开头的 layout 设置也作用于 <svg>。
func (b *builder) start() {
	if b.started {
		return
	}
	b.started = true
	b.doc.StartDocument()
}

func (b *builder) setting(a *dsl.Assignment) error {
	switch a.Key {
	case "layout":
		mode := b.assignmentString(a)
		layout, ok := parseLayout(mode)
		if !ok {
			return errorf(a.Pos, a.Key, "未知的属性排列方式 %q（可选 inline / indented）", mode)
		}
		if b.override == svg.LayoutInherit {
			b.doc.AdjustStyle(layout == svg.LayoutIndented)
		}
		return nil
	default:
		return errorf(a.Pos, a.Key, "未知的文档设置")
	}
}

func parseLayout(mode string) (svg.Layout, bool) {
	switch mode {
	case "inline":
		return svg.LayoutInline, true
	case "indented":
		return svg.LayoutIndented, true
	default:
		return svg.LayoutInherit, false
	}
}

// commands 依次处理嵌套命令。
func (b *builder) commands(cmds []*dsl.Command) error {
	for _, cmd := range cmds {
		if err := b.command(cmd); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) command(cmd *dsl.Command) error {
	switch cmd.Name {
	case "circle", "ellipse", "rect", "line", "polygon", "polyline", "path", "rounded-rect", "ngon", "star":
		return b.shape(cmd)
	case "text":
		return b.text(cmd)
	case "group":
		return b.group(cmd)
	case "fade-in", "fade-out":
		return b.fade(cmd)
	case "comment":
		args, err := b.parseArgs(cmd)
		if err != nil {
			return err
		}
		if len(args.strs) != 1 {
			return errorf(cmd.Pos, cmd.Name, "需要一个字符串参数")
		}
		b.doc.AddComment(args.strs[0])
		return nil
	case "blank":
		args, err := b.parseArgs(cmd)
		if err != nil {
			return err
		}
		if len(args.nums) > 1 {
			return errorf(cmd.Pos, cmd.Name, "最多一个数值参数")
		}
		n := 1
		if len(args.nums) == 1 {
			if n, err = args.count(cmd, 0, 0); err != nil {
				return err
			}
		}
		b.doc.AddBlankLines(n)
		return nil
	case "raw":
		args, err := b.parseArgs(cmd)
		if err != nil {
			return err
		}
		b.doc.WriteLines(args.strs...)
		return nil
	case "style":
		return errorf(cmd.Pos, cmd.Name, "style 只能出现在图形或 group 内部")
	default:
		return errorf(cmd.Pos, cmd.Name, "未知命令")
	}
}

// shape 构造图形元素；若块中含有子命令，则以打开方式写出并在子命令之后关闭一层。
func (b *builder) shape(cmd *dsl.Command) error {
	args, err := b.parseArgs(cmd)
	if err != nil {
		return err
	}
	body, err := b.parseBody(cmd)
	if err != nil {
		return err
	}
	opts := args.options(body)

	el, err := b.element(cmd, args, opts)
	if err != nil {
		return err
	}
	if len(body.children) == 0 {
		b.doc.Emit(el, opts.Layout)
		return nil
	}
	b.doc.Open(el, opts.Layout)
	if err := b.commands(body.children); err != nil {
		return err
	}
	return b.doc.CloseScopes(1)
}

func (b *builder) element(cmd *dsl.Command, args arguments, opts svg.ShapeOptions) (svg.Element, error) {
	switch cmd.Name {
	case "circle":
		if err := args.expect(cmd, 3); err != nil {
			return svg.Element{}, err
		}
		n := args.nums
		return svg.Circle(n[0], n[1], n[2], opts), nil
	case "ellipse":
		if err := args.expect(cmd, 4); err != nil {
			return svg.Element{}, err
		}
		n := args.nums
		return svg.Ellipse(n[0], n[1], n[2], n[3], opts), nil
	case "rect":
		if err := args.expect(cmd, 4); err != nil {
			return svg.Element{}, err
		}
		n := args.nums
		return svg.Rect(n[0], n[1], n[2], n[3], opts), nil
	case "line":
		if err := args.expect(cmd, 4); err != nil {
			return svg.Element{}, err
		}
		n := args.nums
		return svg.Line(n[0], n[1], n[2], n[3], opts), nil
	case "polygon", "polyline":
		if len(args.nums) == 0 || len(args.nums)%2 != 0 {
			return svg.Element{}, errorf(cmd.Pos, cmd.Name, "需要成对的坐标，实际 %d 个数值", len(args.nums))
		}
		points := make([]svg.Point, 0, len(args.nums)/2)
		for i := 0; i < len(args.nums); i += 2 {
			points = append(points, svg.Point{X: args.nums[i], Y: args.nums[i+1]})
		}
		if cmd.Name == "polygon" {
			return svg.Polygon(points, opts), nil
		}
		return svg.Polyline(points, opts), nil
	case "path":
		if len(args.strs) != 1 {
			return svg.Element{}, errorf(cmd.Pos, cmd.Name, "需要一个路径字符串参数")
		}
		return svg.Path(args.strs[0], opts), nil
	case "rounded-rect":
		if err := args.expect(cmd, 5); err != nil {
			return svg.Element{}, err
		}
		x, y, w, h, r := args.nums[0], args.nums[1], args.nums[2], args.nums[3], args.nums[4]
		if opts.Center == svg.Centered {
			x -= w / 2
			y -= h / 2
		}
		return svg.PathFrom(canvas.RoundedRectangle(w, h, r), x, y, opts), nil
	case "ngon":
		if err := args.expect(cmd, 4); err != nil {
			return svg.Element{}, err
		}
		sides, err := args.count(cmd, 2, 3)
		if err != nil {
			return svg.Element{}, err
		}
		n := args.nums
		return svg.PathFrom(upright(canvas.RegularPolygon(sides, n[3], true)), n[0], n[1], opts), nil
	case "star":
		if err := args.expect(cmd, 5); err != nil {
			return svg.Element{}, err
		}
		points, err := args.count(cmd, 2, 3)
		if err != nil {
			return svg.Element{}, err
		}
		n := args.nums
		return svg.PathFrom(upright(canvas.StarPolygon(points, n[3], n[4], true)), n[0], n[1], opts), nil
	default:
		return svg.Element{}, errorf(cmd.Pos, cmd.Name, "未知图形")
	}
}

// text 支持参数中的字符串，也支持块中的文本字面量（每个字面量一行）。
func (b *builder) text(cmd *dsl.Command) error {
	args, err := b.parseArgs(cmd)
	if err != nil {
		return err
	}
	body, err := b.parseBody(cmd)
	if err != nil {
		return err
	}
	if err := args.expect(cmd, 2); err != nil {
		return err
	}
	opts := args.options(body)
	lines := append(append([]string{}, args.strs...), body.texts...)
	if len(lines) == 0 {
		return errorf(cmd.Pos, cmd.Name, "缺少文本内容")
	}

	b.doc.Open(svg.Text(args.nums[0], args.nums[1], opts), opts.Layout)
	b.doc.WriteLines(lines...)
	if err := b.commands(body.children); err != nil {
		return err
	}
	return b.doc.CloseScopes(1)
}

func (b *builder) group(cmd *dsl.Command) error {
	args, err := b.parseArgs(cmd)
	if err != nil {
		return err
	}
	body, err := b.parseBody(cmd)
	if err != nil {
		return err
	}
	if len(args.nums) > 0 || len(args.strs) > 0 {
		return errorf(cmd.Pos, cmd.Name, "group 不接受位置参数")
	}
	opts := args.options(body)
	b.doc.OpenGroup(opts)
	if err := b.commands(body.children); err != nil {
		return err
	}
	return b.doc.CloseScopes(1)
}

func (b *builder) fade(cmd *dsl.Command) error {
	args, err := b.parseArgs(cmd)
	if err != nil {
		return err
	}
	if len(args.nums) < 1 || len(args.nums) > 2 {
		return errorf(cmd.Pos, cmd.Name, "用法: %s <begin> [dur]", cmd.Name)
	}
	if err := args.plain(cmd, 0); err != nil {
		return err
	}
	begin, dur := args.nums[0], 0.0
	if len(args.nums) == 2 {
		dur = args.nums[1]
	}
	if cmd.Name == "fade-in" {
		b.doc.FadeIn(begin, dur)
	} else {
		b.doc.FadeOut(begin, dur)
	}
	return nil
}

// upright 把 canvas 的 Y 轴朝上坐标翻转为 SVG 的 Y 轴朝下，并抹掉三角函数带来的微小误差。
// 只用于由直线段构成的多边形路径。
func upright(p *canvas.Path) *canvas.Path {
	return p.TransformFunc(func(x, y float64) (float64, float64) {
		return snap(x), snap(-y)
	})
}

func snap(v float64) float64 {
	v = math.Round(v*1e9) / 1e9
	if v == 0 {
		return 0 // 去掉 -0
	}
	return v
}
