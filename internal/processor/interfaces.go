package processor

import (
	"context"
)

// TextExtractor 定义从简历文件提取纯文本的通用接口
// PDF、DOCX、纯文本提取器都实现该接口，由 FileTextExtractor 按扩展名分发
type TextExtractor interface {
	// ExtractText 从指定文件提取纯文本，metadata 携带来源信息
	ExtractText(ctx context.Context, filePath string) (text string, metadata map[string]interface{}, err error)
}
