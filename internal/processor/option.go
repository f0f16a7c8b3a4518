package processor

import (
	"github.com/rs/zerolog"

	"resume-parser-go/internal/ner"
	"resume-parser-go/internal/parser"
)

// ComponentOpt 组件选项类型，仅改变 Components 结构体内的字段
type ComponentOpt func(*Components)

// SettingOpt 设置选项类型，仅改变 Settings 结构体内的字段
type SettingOpt func(*Settings)

// ----- 组件选项 -----

// WithcompTextextractor 设置文件文本提取器组件
func WithcompTextextractor(extractor TextExtractor) ComponentOpt {
	return func(c *Components) {
		c.TextExtractor = extractor
	}
}

// WithcompRecognizer 设置命名实体识别器组件
func WithcompRecognizer(recognizer ner.NameEntityRecognizer) ComponentOpt {
	return func(c *Components) {
		c.Recognizer = recognizer
	}
}

// ----- 设置选项 -----

// WithsetLogger 设置日志记录器
func WithsetLogger(l zerolog.Logger) SettingOpt {
	return func(s *Settings) {
		s.Logger = l
	}
}

// WithsetClock 设置时钟，主要用于测试中固定"今天"
func WithsetClock(clock parser.Clock) SettingOpt {
	return func(s *Settings) {
		if clock != nil {
			s.Clock = clock
		}
	}
}

// WithsetDebug 设置调试模式
func WithsetDebug(debug bool) SettingOpt {
	return func(s *Settings) {
		s.Debug = debug
	}
}
