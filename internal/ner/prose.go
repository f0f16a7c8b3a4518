package ner

import (
	"context"
	"fmt"

	"github.com/jdkato/prose/v2"
	"github.com/rs/zerolog"

	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/types"
)

// ProseRecognizer 基于 prose 统计模型的识别引擎实现
// 模型数据在首次构建文档时加载，实例本身无可变状态，可被多goroutine只读共享
type ProseRecognizer struct {
	logger zerolog.Logger
}

// ProseOption ProseRecognizer 的配置选项
type ProseOption func(*ProseRecognizer)

// WithProseLogger 配置自定义日志记录器
func WithProseLogger(l zerolog.Logger) ProseOption {
	return func(r *ProseRecognizer) {
		r.logger = l
	}
}

// NewProseRecognizer 初始化识别引擎并预热底层模型
// 预热失败视为启动期错误直接返回，不留到解析期
func NewProseRecognizer(options ...ProseOption) (*ProseRecognizer, error) {
	r := &ProseRecognizer{
		logger: logger.Logger.With().Str("component", "prose_ner").Logger(),
	}
	for _, option := range options {
		option(r)
	}

	// 预热：跑一段极小文本，强制模型完成加载
	if _, err := prose.NewDocument("warm up"); err != nil {
		return nil, fmt.Errorf("初始化prose识别引擎失败: %w", err)
	}

	return r, nil
}

// Recognize 实现 NameEntityRecognizer 接口
func (r *ProseRecognizer) Recognize(ctx context.Context, text string) ([]types.EntitySpan, error) {
	if text == "" {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("prose文档分析失败: %w", err)
	}

	var spans []types.EntitySpan
	cursor := 0
	for _, ent := range doc.Entities() {
		start, end := spanOffsets(text, ent.Text, cursor)
		if start < 0 {
			r.logger.Debug().Str("entity", ent.Text).Msg("无法在原文中定位实体偏移，跳过")
			continue
		}
		spans = append(spans, types.EntitySpan{
			Start: start,
			End:   end,
			Label: ent.Label,
			Text:  ent.Text,
		})
		if end > cursor {
			cursor = end
		}
	}

	r.logger.Debug().Int("entity_count", len(spans)).Int("text_len", len(text)).Msg("实体识别完成")
	return spans, nil
}
