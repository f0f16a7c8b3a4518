package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/types"
)

// degreeMatcher 一条编译好的学历匹配规则
type degreeMatcher struct {
	label string
	re    *regexp.Regexp
}

// EducationExtractor 教育经历提取器
// 各学历模式彼此独立评估、结果累加，不做互斥假设
type EducationExtractor struct {
	logger   zerolog.Logger
	matchers []degreeMatcher
	clock    Clock
}

// NewEducationExtractor 创建教育经历提取器
// 配置中的学历正则使用命名分组 field/institution/location/start/end
func NewEducationExtractor(cfg *config.Config, clock Clock) (*EducationExtractor, error) {
	if clock == nil {
		clock = time.Now
	}

	e := &EducationExtractor{
		logger: logger.Logger.With().Str("component", "education_extractor").Logger(),
		clock:  clock,
	}

	for _, dp := range cfg.DegreePatterns {
		re, err := regexp.Compile(dp.Pattern)
		if err != nil {
			return nil, fmt.Errorf("编译学历正则失败 %q: %w", dp.Label, err)
		}
		e.matchers = append(e.matchers, degreeMatcher{label: dp.Label, re: re})
	}

	return e, nil
}

// Extract 把教育章节文本解析为零或多条教育经历
func (e *EducationExtractor) Extract(sectionText string) []types.EducationEntry {
	var entries []types.EducationEntry

	for _, matcher := range e.matchers {
		m := matcher.re.FindStringSubmatch(sectionText)
		if m == nil {
			continue
		}

		entry := types.EducationEntry{
			Degree:      matcher.label,
			Field:       namedGroup(matcher.re, m, "field"),
			Institution: namedGroup(matcher.re, m, "institution"),
			Location:    namedGroup(matcher.re, m, "location"),
		}

		start := namedGroup(matcher.re, m, "start")
		end := namedGroup(matcher.re, m, "end")
		if start != "" && end != "" {
			entry.Duration = start + " - " + end
			entry.StartDate, entry.EndDate = NormalizeDateRange(entry.Duration, e.clock())
		}

		entries = append(entries, entry)
	}

	return entries
}

// namedGroup 取出命名分组的去空白内容，分组不存在或未参与匹配时返回空串
func namedGroup(re *regexp.Regexp, match []string, name string) string {
	idx := re.SubexpIndex(name)
	if idx < 0 || idx >= len(match) {
		return ""
	}
	return strings.TrimSpace(match[idx])
}
