package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ByLCY/svgmaker/renderer"
	minifyrenderer "github.com/ByLCY/svgmaker/renderer/minify"
)

func writeScript(t *testing.T, dir, src string) string {
	t.Helper()
	path := filepath.Join(dir, "scene.sketch")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("写入脚本失败: %v", err)
	}
	return path
}

func TestRunWritesSVG(t *testing.T) {
	dir := t.TempDir()
	cfg := config{
		input:     writeScript(t, dir, "svg 800 800 {\n  line 0 0 10 10\n  text 1 2 \"${name}\"\n}\n"),
		output:    filepath.Join(dir, "out", "scene.svg"),
		debugPath: filepath.Join(dir, "debug", "ast.json"),
		query:     ".scene",
		data:      map[string]any{"scene": map[string]any{"name": "Ada"}},
	}
	if err := run(cfg, renderer.Plain{}); err != nil {
		t.Fatalf("run 失败: %v", err)
	}
	data, err := os.ReadFile(cfg.output)
	if err != nil {
		t.Fatalf("读取输出失败: %v", err)
	}
	s := string(data)
	if !strings.HasPrefix(s, `<?xml version="1.0"`) || !strings.HasSuffix(s, "</svg>") {
		t.Fatalf("输出格式不符:\n%s", s)
	}
	if !strings.Contains(s, "        Ada") {
		t.Fatalf("数据绑定未生效:\n%s", s)
	}
	if _, err := os.Stat(cfg.debugPath); err != nil {
		t.Fatalf("调试 JSON 未生成: %v", err)
	}
}

func TestRunIndentAndMinify(t *testing.T) {
	dir := t.TempDir()
	cfg := config{
		input:  writeScript(t, dir, "svg 10 10 {\n  circle 1 2 3\n}\n"),
		output: filepath.Join(dir, "a.svg"),
		indent: true,
	}
	if err := run(cfg, renderer.Plain{}); err != nil {
		t.Fatalf("run 失败: %v", err)
	}
	data, err := os.ReadFile(cfg.output)
	if err != nil {
		t.Fatalf("读取输出失败: %v", err)
	}
	if !strings.Contains(string(data), "cx=\t\"1\"") {
		t.Fatalf("-indent 未生效:\n%s", data)
	}

	cfg.output = filepath.Join(dir, "b.svg")
	if err := run(cfg, minifyrenderer.NewRenderer(0)); err != nil {
		t.Fatalf("minify run 失败: %v", err)
	}
	min, err := os.ReadFile(cfg.output)
	if err != nil {
		t.Fatalf("读取输出失败: %v", err)
	}
	if len(min) >= len(data) {
		t.Fatalf("压缩输出应更短: %d >= %d", len(min), len(data))
	}
}

func TestRunReportsScriptErrors(t *testing.T) {
	dir := t.TempDir()
	cfg := config{
		input:  writeScript(t, dir, "svg 10 10 {\n  circle 1\n}\n"),
		output: filepath.Join(dir, "a.svg"),
	}
	if err := run(cfg, renderer.Plain{}); err == nil {
		t.Fatalf("期望脚本错误")
	}
	if _, err := os.Stat(cfg.output); !os.IsNotExist(err) {
		t.Fatalf("出错时不应生成输出文件")
	}
	if err := run(config{input: filepath.Join(dir, "missing.sketch")}, renderer.Plain{}); err == nil {
		t.Fatalf("期望打开失败")
	}
}
