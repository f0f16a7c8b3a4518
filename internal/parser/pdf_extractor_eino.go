package parser

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoParser "github.com/cloudwego/eino/components/document/parser"
	"github.com/rs/zerolog"

	"resume-parser-go/internal/logger"
)

// EinoPDFTextExtractor 使用 Eino PDF Parser 提取文本
type EinoPDFTextExtractor struct {
	parser *pdf.PDFParser
	logger zerolog.Logger
}

// EinoPDFOption PDF提取器的配置选项
type EinoPDFOption func(*EinoPDFTextExtractor)

// WithEinoLogger 配置自定义日志记录器
func WithEinoLogger(l zerolog.Logger) EinoPDFOption {
	return func(e *EinoPDFTextExtractor) {
		e.logger = l
	}
}

// NewEinoPDFTextExtractor 初始化 Eino PDF 文本提取器
// ToPages 设为 false：简历解析需要整份文档的连续文本，换行是唯一的结构信号
func NewEinoPDFTextExtractor(ctx context.Context, options ...EinoPDFOption) (*EinoPDFTextExtractor, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{
		ToPages: false,
	})
	if err != nil {
		return nil, fmt.Errorf("创建Eino PDF解析器失败: %w", err)
	}

	extractor := &EinoPDFTextExtractor{
		parser: p,
		logger: logger.Logger.With().Str("component", "pdf_extractor").Logger(),
	}
	for _, option := range options {
		option(extractor)
	}

	return extractor, nil
}

// ExtractFromFile 从PDF文件提取纯文本和元数据
func (e *EinoPDFTextExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error) {
	startTime := time.Now()

	file, err := os.Open(filePath)
	if err != nil {
		return "", nil, fmt.Errorf("打开PDF文件 %s 失败: %w", filePath, err)
	}
	defer file.Close()

	text, metadata, err := e.ExtractFromReader(ctx, file, filePath)
	if err != nil {
		return "", nil, err
	}

	e.logger.Debug().
		Str("file", filePath).
		Int("text_len", len(text)).
		Dur("duration", time.Since(startTime)).
		Msg("PDF文本提取完成")
	return text, metadata, nil
}

// ExtractFromReader 从 io.Reader 提取纯文本和元数据
func (e *EinoPDFTextExtractor) ExtractFromReader(ctx context.Context, reader io.Reader, uri string) (string, map[string]interface{}, error) {
	// 解析超时保护，防止损坏文件导致无限等待
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	extraMeta := map[string]interface{}{
		"source_file_path": uri,
		"extraction_time":  time.Now().Format(time.RFC3339),
	}

	docs, err := e.parser.Parse(ctx, reader,
		einoParser.WithURI(uri),
		einoParser.WithExtraMeta(extraMeta),
	)
	if err != nil {
		return "", extraMeta, fmt.Errorf("eino PDF解析失败 (URI: %s): %w", uri, err)
	}
	if len(docs) == 0 {
		return "", extraMeta, fmt.Errorf("eino PDF解析未返回任何文档 (URI: %s)", uri)
	}

	var fullContent string
	for i, doc := range docs {
		fullContent += doc.Content
		if i < len(docs)-1 {
			fullContent += "\n\n"
		}
	}

	metadata := make(map[string]interface{})
	if docs[0].MetaData != nil {
		for k, v := range docs[0].MetaData {
			metadata[k] = v
		}
	}
	for k, v := range extraMeta {
		metadata[k] = v
	}
	metadata["document_count"] = len(docs)
	metadata["text_length"] = len(fullContent)

	return fullContent, metadata, nil
}
