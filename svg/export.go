package svg

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// String 以换行符连接所有输出行，末尾不追加换行。
func (d *Document) String() string {
	return strings.Join(d.lines, "\n")
}

// Bytes 返回 String 的 UTF-8 字节。
func (d *Document) Bytes() []byte {
	return []byte(d.String())
}

// WriteTo 实现 io.WriterTo。
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}

// Export 把文档整体写入 path，覆盖已有内容。
// 先写同目录下的临时文件再重命名，失败时不会留下半截文件。
// 多次调用得到相同内容。
func (d *Document) Export(path string) error {
	return WriteFileAtomic(path, d.Bytes())
}

// WriteFileAtomic 在 path 所在目录创建临时文件，写入 data 后重命名为 path。
func WriteFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("创建临时文件失败: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("写入 %s 失败: %w", path, err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("设置 %s 权限失败: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("关闭 %s 失败: %w", path, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("重命名为 %s 失败: %w", path, err)
	}
	return nil
}
