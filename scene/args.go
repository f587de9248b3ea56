package scene

import (
	"math"
	"strings"

	"github.com/ByLCY/svgmaker/binding"
	"github.com/ByLCY/svgmaker/dsl"
	"github.com/ByLCY/svgmaker/svg"
)

// arguments 是命令位置参数按类型拆分后的结果。
// nums 已换算为用户单位，raw 保留对应的原始写法。
type arguments struct {
	nums      []float64
	raw       []string
	strs      []string
	center    svg.Centering
	invisible bool
	layout    svg.Layout
}

func (b *builder) parseArgs(cmd *dsl.Command) (arguments, error) {
	var out arguments
	for _, arg := range cmd.Args {
		switch arg.Type {
		case "Number":
			l, err := ParseLength(arg.Value)
			if err != nil {
				return out, errorf(arg.Pos, cmd.Name, "%v", err)
			}
			out.nums = append(out.nums, l.Px())
			out.raw = append(out.raw, arg.Value)
		case "String":
			out.strs = append(out.strs, binding.Interpolate(arg.Value, b.data))
		case "Ident":
			switch arg.Value {
			case "centered":
				out.center = svg.Centered
			case "corner":
				out.center = svg.Cornered
			case "invisible":
				out.invisible = true
			case "inline":
				out.layout = svg.LayoutInline
			case "indented":
				out.layout = svg.LayoutIndented
			default:
				return out, errorf(arg.Pos, cmd.Name, "未知标志 %q", arg.Value)
			}
		case "Symbol":
			if arg.Value != "," {
				return out, errorf(arg.Pos, cmd.Name, "意外的符号 %q", arg.Raw)
			}
		default:
			return out, errorf(arg.Pos, cmd.Name, "意外的参数 %q", arg.Raw)
		}
	}
	return out, nil
}

// expect 校验数值参数个数。
func (a arguments) expect(cmd *dsl.Command, n int) error {
	if len(a.nums) != n {
		return errorf(cmd.Pos, cmd.Name, "需要 %d 个数值参数，实际 %d 个", n, len(a.nums))
	}
	return nil
}

// plain 要求从 from 起的数值不带单位：时间与个数不是长度。
func (a arguments) plain(cmd *dsl.Command, from int) error {
	for i := from; i < len(a.raw); i++ {
		l, err := ParseLength(a.raw[i])
		if err != nil {
			return errorf(cmd.Pos, cmd.Name, "%v", err)
		}
		if l.Unit != UnitNone {
			return errorf(cmd.Pos, cmd.Name, "%q 不是长度，不能带单位", a.raw[i])
		}
	}
	return nil
}

// count 读取第 i 个数值作为个数，必须是不带单位且不小于 least 的整数。
func (a arguments) count(cmd *dsl.Command, i, least int) (int, error) {
	if err := a.plain(cmd, i); err != nil {
		return 0, err
	}
	v := a.nums[i]
	if v != math.Trunc(v) || v < float64(least) {
		return 0, errorf(cmd.Pos, cmd.Name, "%s 应为不小于 %d 的整数", a.raw[i], least)
	}
	return int(v), nil
}

func (a arguments) options(bd body) svg.ShapeOptions {
	return svg.ShapeOptions{
		Style:     bd.style,
		Extra:     bd.extra,
		Center:    a.center,
		Invisible: a.invisible,
		Layout:    a.layout,
	}
}

// body 是命令块拆分后的内容：属性、样式、子命令与文本字面量。
type body struct {
	extra    svg.Attrs
	style    svg.Attrs
	children []*dsl.Command
	texts    []string
}

func (b *builder) parseBody(cmd *dsl.Command) (body, error) {
	var out body
	if cmd.Block == nil {
		return out, nil
	}
	for _, stmt := range cmd.Block.Statements {
		switch {
		case stmt.Assignment != nil:
			out.extra = out.extra.Set(stmt.Assignment.Key, b.assignmentString(stmt.Assignment))
		case stmt.Command != nil && stmt.Command.Name == "style":
			style, err := b.parseStyle(stmt.Command)
			if err != nil {
				return out, err
			}
			out.style = out.style.Merge(style)
		case stmt.Command != nil:
			out.children = append(out.children, stmt.Command)
		case stmt.Text != nil:
			if cmd.Name != "text" {
				return out, errorf(cmd.Pos, cmd.Name, "只有 text 命令可以包含文本字面量")
			}
			out.texts = append(out.texts, binding.Interpolate(string(stmt.Text.Value), b.data))
		}
	}
	return out, nil
}

// parseStyle 读取 style { key: value } 块。
func (b *builder) parseStyle(cmd *dsl.Command) (svg.Attrs, error) {
	if len(cmd.Args) > 0 {
		return nil, errorf(cmd.Pos, cmd.Name, "style 不接受位置参数")
	}
	var style svg.Attrs
	if cmd.Block == nil {
		return style, nil
	}
	for _, stmt := range cmd.Block.Statements {
		if stmt.Assignment == nil {
			return nil, errorf(cmd.Pos, cmd.Name, "style 块中只能包含 key: value")
		}
		style = style.Set(stmt.Assignment.Key, b.assignmentString(stmt.Assignment))
	}
	return style, nil
}

// assignmentString 拼接首个值与同一行的其余记号：5 3 -> "5 3"，Arial, serif -> "Arial, serif"。
func (b *builder) assignmentString(a *dsl.Assignment) string {
	head := b.valueString(a.Value)
	if len(a.Tail) == 0 {
		return head
	}
	tail := joinExpr(a.Tail)
	if a.Tail[0].Type == "Symbol" {
		return head + tail
	}
	return head + " " + tail
}

// valueString 把属性值还原为字符串；字符串会做数据绑定。
func (b *builder) valueString(val *dsl.Value) string {
	if val == nil {
		return ""
	}
	switch {
	case val.String != nil:
		return binding.Interpolate(string(*val.String), b.data)
	case val.Number != nil:
		return *val.Number
	case val.Color != nil:
		return *val.Color
	case val.Array != nil:
		parts := make([]string, 0, len(val.Array.Values))
		for _, item := range val.Array.Values {
			parts = append(parts, b.valueString(item))
		}
		return strings.Join(parts, " ")
	case val.Object != nil:
		var style svg.Attrs
		for _, entry := range val.Object.Entries {
			style = style.Set(entry.Key, b.assignmentString(entry))
		}
		return svg.FormatStyle(style)
	case val.Expr != nil:
		return joinExpr(val.Expr.Parts)
	default:
		return ""
	}
}

// joinExpr 拼接表达式记号，相邻的单词类记号之间补一个空格，括号外的逗号后补一个空格：
// rgb ( 1 , 2 , 3 ) -> rgb(1,2,3)，bold italic -> bold italic，a , b -> a, b。
func joinExpr(parts []*dsl.Lexeme) string {
	var sb strings.Builder
	prevWord := false
	depth := 0
	for _, p := range parts {
		word := p.Type != "Symbol"
		if word && prevWord {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.Raw)
		prevWord = word
		switch p.Raw {
		case "(", "[":
			depth++
		case ")", "]":
			if depth > 0 {
				depth--
			}
		case ",":
			if depth == 0 {
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}
