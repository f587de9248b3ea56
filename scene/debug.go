package scene

import (
	"encoding/json"
	"os"

	"github.com/ByLCY/svgmaker/dsl"
)

// WriteDebugJSON 将解析后的脚本 AST 输出为 JSON，便于排查脚本问题。
func WriteDebugJSON(script *dsl.Script, path string) error {
	if script == nil {
		return nil
	}
	data, err := json.MarshalIndent(script, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
