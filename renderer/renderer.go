package renderer

import (
	"fmt"

	"github.com/ByLCY/svgmaker/svg"
)

// Renderer 将已结束的文档输出为最终文件内容。
// Render 返回生成的字节以及可能的错误。
type Renderer interface {
	Render(doc *svg.Document) ([]byte, error)
}

// Plain 原样输出文档：各行以换行符连接，与 Document.Export 写入的内容一致。
type Plain struct{}

var _ Renderer = Plain{}

func (Plain) Render(doc *svg.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("文档为空")
	}
	if doc.Depth() != 0 {
		return nil, fmt.Errorf("文档仍有 %d 个未关闭的作用域", doc.Depth())
	}
	return doc.Bytes(), nil
}
