package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/processor"
)

// 命令行参数定义
var (
	configPath = pflag.StringP("config", "c", "", "配置文件路径，缺省时按常见位置查找")
	outputPath = pflag.StringP("output", "o", "", "结果JSON输出文件，缺省打印到标准输出")
	debugMode  = pflag.Bool("debug", false, "开启调试日志")
	maxLen     = pflag.Int("maxlen", 1000, "终端预览提取文本的最大长度，设为-1显示全部")
	showText   = pflag.Bool("show-text", false, "打印提取出的原始文本预览")
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "用法: %s [选项] <简历文件>\n\n支持 .pdf / .docx / .txt 格式。\n\n选项:\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "错误: 必须提供一个简历文件路径")
		pflag.Usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	if *debugMode {
		cfg.Logger.Level = "debug"
	}
	logger.Init(logger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})

	absPath, err := filepath.Abs(pflag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法获取文件的绝对路径: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fmt.Printf("准备解析简历文件: %s\n", absPath)
	rp, err := processor.NewResumeParser(ctx, cfg, nil, []processor.SettingOpt{
		processor.WithsetDebug(*debugMode),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "创建简历解析器失败: %v\n", err)
		os.Exit(1)
	}

	if *showText {
		previewExtractedText(ctx, rp, absPath)
	}

	startTime := time.Now()
	record, err := rp.ParseFile(ctx, absPath)
	if err != nil {
		switch {
		case errors.Is(err, processor.ErrFileNotFound):
			fmt.Fprintf(os.Stderr, "文件不存在或不可读: %v\n", err)
		case errors.Is(err, processor.ErrUnsupportedFileType):
			fmt.Fprintf(os.Stderr, "文件类型不受支持: %v\n", err)
		default:
			fmt.Fprintf(os.Stderr, "解析失败: %v\n", err)
		}
		os.Exit(1)
	}
	fmt.Printf("解析完成，耗时 %v\n", time.Since(startTime))

	output, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "序列化结果失败: %v\n", err)
		os.Exit(1)
	}

	if *outputPath != "" {
		if err := os.WriteFile(*outputPath, output, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "写入输出文件失败: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("结果已写入: %s\n", *outputPath)
		return
	}
	fmt.Println(string(output))
}

// previewExtractedText 打印提取文本的前 maxlen 个字符，便于排查切分问题
func previewExtractedText(ctx context.Context, rp *processor.ResumeParser, absPath string) {
	text, _, err := rp.Components.TextExtractor.ExtractText(ctx, absPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "提取文本失败: %v\n", err)
		return
	}
	preview := text
	if *maxLen >= 0 && len(preview) > *maxLen {
		preview = preview[:*maxLen] + "\n...(截断)"
	}
	fmt.Printf("----- 提取文本预览 -----\n%s\n----- 预览结束 -----\n", preview)
}
