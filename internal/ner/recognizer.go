package ner

import (
	"context"
	"strings"
	"sync"

	"resume-parser-go/internal/types"
)

// LabelPerson 人名实体标签
const LabelPerson = "PERSON"

// NameEntityRecognizer 命名实体识别能力的注入接口
// 核心管线只依赖"给定文本返回带标签实体片段"这一能力，不关心底层实现
type NameEntityRecognizer interface {
	// Recognize 对一段文本做实体识别，返回按出现位置排序的实体片段
	Recognize(ctx context.Context, text string) ([]types.EntitySpan, error)
}

var (
	defaultOnce       sync.Once
	defaultRecognizer NameEntityRecognizer
	defaultErr        error
)

// Default 返回进程级识别引擎单例
// 初始化失败属于启动期致命错误，应由调用方 Fatal 处理，而非逐次重试
func Default() (NameEntityRecognizer, error) {
	defaultOnce.Do(func() {
		defaultRecognizer, defaultErr = NewProseRecognizer()
	})
	return defaultRecognizer, defaultErr
}

// spanOffsets 在原文本中从 searchFrom 开始定位实体原文，返回起止偏移
// 同一实体文本多次出现时按顺序消费，保证偏移单调递增
func spanOffsets(text, entity string, searchFrom int) (int, int) {
	if entity == "" {
		return -1, -1
	}
	idx := strings.Index(text[searchFrom:], entity)
	if idx < 0 {
		// 回退到全文查找，宁可偏移回绕也不丢实体
		idx = strings.Index(text, entity)
		if idx < 0 {
			return -1, -1
		}
		return idx, idx + len(entity)
	}
	start := searchFrom + idx
	return start, start + len(entity)
}
