package scene

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ByLCY/svgmaker/svg"
)

// BuildOptions 配置脚本解释阶段。
type BuildOptions struct {
	// Layout 非 LayoutInherit 时覆盖脚本中的 layout 设置。
	Layout svg.Layout
}

// Error 指出脚本中出错的命令及位置。
type Error struct {
	Pos     lexer.Position
	Command string
	Message string
}

func (e *Error) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("第 %d 行第 %d 列 %s: %s", e.Pos.Line, e.Pos.Column, e.Command, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Command, e.Message)
}

func errorf(pos lexer.Position, command, format string, args ...any) error {
	return &Error{Pos: pos, Command: command, Message: fmt.Sprintf(format, args...)}
}
