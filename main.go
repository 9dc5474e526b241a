package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/RobbieKaras/rotater/layout"
	"github.com/RobbieKaras/rotater/pagespec"
	"github.com/RobbieKaras/rotater/renderer"
	canvasrenderer "github.com/RobbieKaras/rotater/renderer/canvas"
	"github.com/RobbieKaras/rotater/source"
)

func main() {
	input := flag.String("in", "", "输入文件路径（.pdf，或以换页符分页的纯文本）")
	output := flag.String("out", "output/rotated.pdf", "PDF 输出路径")
	pageSpec := flag.String("page", "letter", "输出页面规格，例如 \"letter portrait margin 0.6in\" 或 \"450x700pt\"")
	fontSize := flag.String("font-size", "12pt", "正文字号")
	leading := flag.String("leading", "14pt", "行距")
	rotate := flag.String("rotate", "ccw", "旋转方向：cw 或 ccw")
	title := flag.String("title", "", "覆盖文档显示名（默认取输入文件名）")
	debug := flag.String("debug", "", "布局调试 JSON 输出路径")
	flag.Parse()

	if *input == "" {
		log.Fatalf("缺少输入文件，请通过 -in 指定")
	}

	var r renderer.Renderer = canvasrenderer.NewRenderer()
	if err := run(*input, *output, *pageSpec, *fontSize, *leading, *rotate, *title, *debug, r); err != nil {
		log.Fatalf("生成 PDF 失败: %v", err)
	}
}

// run 串联抽取、布局与渲染。
func run(inputPath, outputPath, pageSpec, fontSize, leading, rotate, title, debugPath string, r renderer.Renderer) error {
	if r == nil {
		return fmt.Errorf("renderer 不能为空")
	}

	doc, err := readSource(inputPath)
	if err != nil {
		return err
	}
	if title != "" {
		doc.Name = title
	}

	geom, err := pagespec.Parse(pageSpec)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(fontSize, leading, rotate)
	if err != nil {
		return err
	}

	ts, ok := r.(layout.Typesetter)
	if !ok {
		return fmt.Errorf("renderer 未实现排版接口")
	}

	result, err := layout.Build(doc, layout.BuildOptions{
		Geometry:   geom,
		Config:     cfg,
		Typesetter: ts,
	})
	if err != nil {
		return fmt.Errorf("布局计算失败: %w", err)
	}

	if debugPath != "" {
		if err := writeDebug(result, debugPath); err != nil {
			return err
		}
	}

	if len(result.Pages) == 0 {
		fmt.Printf("输入 %s 没有可抽取的文本，未生成输出\n", inputPath)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}

	pdfBytes, err := r.Render(result)
	if err != nil {
		return fmt.Errorf("渲染 PDF 失败: %w", err)
	}
	if err := os.WriteFile(outputPath, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("写入 PDF 文件失败: %w", err)
	}

	fmt.Printf("已生成 PDF：%s（%d 页）\n", outputPath, len(result.Pages))
	return nil
}

// readSource 按扩展名选择抽取器：.pdf 走 PDF 抽取，其余按换页符分页的文本处理。
func readSource(path string) (*source.Document, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return source.FromPDF(path)
	}
	return source.FromText(path)
}

func resolveConfig(fontSize, leading, rotate string) (layout.Config, error) {
	fs, ok := layout.ParseLength(fontSize)
	if !ok {
		return layout.Config{}, fmt.Errorf("无法解析字号 %q", fontSize)
	}
	ld, ok := layout.ParseLength(leading)
	if !ok {
		return layout.Config{}, fmt.Errorf("无法解析行距 %q", leading)
	}
	dir, err := layout.ParseDirection(rotate)
	if err != nil {
		return layout.Config{}, err
	}
	return layout.Config{FontSize: fs.ToPT(), Leading: ld.ToPT(), Rotation: dir}, nil
}

func writeDebug(result *layout.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
