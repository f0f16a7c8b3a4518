package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resume-parser-go/internal/parser"
)

// FileTextExtractor 按文件扩展名分发到具体提取器
// .pdf 走 Eino 解析器，.docx 走 OOXML 解析，.txt 直接读取
type FileTextExtractor struct {
	pdf  *parser.EinoPDFTextExtractor
	docx *parser.DocxTextExtractor
}

// NewFileTextExtractor 创建文件文本提取器，PDF 提取器初始化失败时返回错误
func NewFileTextExtractor(ctx context.Context) (*FileTextExtractor, error) {
	pdfExtractor, err := parser.NewEinoPDFTextExtractor(ctx)
	if err != nil {
		return nil, fmt.Errorf("初始化PDF提取器失败: %w", err)
	}
	return &FileTextExtractor{
		pdf:  pdfExtractor,
		docx: parser.NewDocxTextExtractor(),
	}, nil
}

// ExtractText 实现 TextExtractor 接口
func (f *FileTextExtractor) ExtractText(ctx context.Context, filePath string) (string, map[string]interface{}, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return "", nil, NewFileNotFoundError(filePath, err.Error())
	}
	if info.IsDir() {
		return "", nil, NewFileNotFoundError(filePath, "路径是目录而非文件")
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".pdf":
		text, metadata, err := f.pdf.ExtractFromFile(ctx, filePath)
		if err != nil {
			return "", nil, NewExtractTextError(filePath, err.Error())
		}
		return text, metadata, nil
	case ".docx":
		text, err := f.docx.ExtractFromFile(filePath)
		if err != nil {
			return "", nil, NewExtractTextError(filePath, err.Error())
		}
		return text, plainMetadata(filePath, len(text)), nil
	case ".txt", "":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", nil, NewExtractTextError(filePath, err.Error())
		}
		return string(data), plainMetadata(filePath, len(data)), nil
	default:
		return "", nil, NewUnsupportedFileTypeError(filePath, fmt.Sprintf("扩展名 %s 不受支持", ext))
	}
}

func plainMetadata(filePath string, textLen int) map[string]interface{} {
	return map[string]interface{}{
		"source_file_path": filePath,
		"extraction_time":  time.Now().Format(time.RFC3339),
		"text_length":      textLen,
	}
}
