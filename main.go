package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ByLCY/svgmaker/binding"
	"github.com/ByLCY/svgmaker/dsl"
	"github.com/ByLCY/svgmaker/renderer"
	minifyrenderer "github.com/ByLCY/svgmaker/renderer/minify"
	"github.com/ByLCY/svgmaker/scene"
	"github.com/ByLCY/svgmaker/svg"
)

// stdoutName 表示输出到标准输出。
const stdoutName = "-"

type config struct {
	input     string
	output    string
	debugPath string
	query     string
	indent    bool
	data      any
}

func main() {
	log.SetFlags(0)

	input := flag.String("in", "examples/lines.sketch", "场景脚本路径")
	output := flag.String("out", "output/lines.svg", "SVG 输出路径，- 表示标准输出")
	debug := flag.String("debug", "", "脚本 AST 调试 JSON 输出路径")
	dataJSON := flag.String("data", "", "绑定到脚本的 JSON 数据")
	query := flag.String("query", "", "用 jq 表达式从 data 中选取绑定的子树")
	indent := flag.Bool("indent", false, "强制每个属性单独一行")
	minify := flag.Bool("minify", false, "输出压缩后的 SVG")
	precision := flag.Int("precision", 0, "压缩时数值保留的有效位数，0 表示不截断")
	flag.Parse()

	cfg := config{
		input:     *input,
		output:    *output,
		debugPath: *debug,
		query:     *query,
		indent:    *indent,
	}
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &cfg.data); err != nil {
			log.Fatalf("解析 data JSON 失败: %v", err)
		}
	}

	var r renderer.Renderer = renderer.Plain{}
	if *minify {
		r = minifyrenderer.NewRenderer(*precision)
	}
	if err := run(cfg, r); err != nil {
		log.Fatalf("生成 SVG 失败: %v", err)
	}
	if cfg.output != stdoutName {
		fmt.Printf("已生成 SVG：%s\n", cfg.output)
	}
}

// run 串联解析、数据绑定、场景构建与渲染。
func run(cfg config, r renderer.Renderer) error {
	if r == nil {
		return fmt.Errorf("renderer 不能为空")
	}
	file, err := os.Open(cfg.input)
	if err != nil {
		return fmt.Errorf("无法打开脚本 %s: %w", cfg.input, err)
	}
	defer file.Close()

	script, err := dsl.Parse(file)
	if err != nil {
		return fmt.Errorf("解析脚本失败: %w", err)
	}

	if cfg.debugPath != "" {
		if err := writeDebug(script, cfg.debugPath); err != nil {
			return err
		}
	}

	data, err := binding.Select(cfg.data, cfg.query)
	if err != nil {
		return err
	}

	opts := scene.BuildOptions{}
	if cfg.indent {
		opts.Layout = svg.LayoutIndented
	}
	doc, err := scene.Build(script, data, opts)
	if err != nil {
		return fmt.Errorf("构建场景失败: %w", err)
	}

	out, err := r.Render(doc)
	if err != nil {
		return fmt.Errorf("渲染 SVG 失败: %w", err)
	}

	if cfg.output == stdoutName {
		_, err := os.Stdout.Write(out)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.output), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := svg.WriteFileAtomic(cfg.output, out); err != nil {
		return fmt.Errorf("写入 SVG 文件失败: %w", err)
	}
	return nil
}

func writeDebug(script *dsl.Script, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := scene.WriteDebugJSON(script, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
