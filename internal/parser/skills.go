package parser

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/logger"
)

// skillDelimiterRegex 技能值行内的分隔符
var skillDelimiterRegex = regexp.MustCompile(`[,;]+`)

// SkillsExtractor 技能提取器
// 要求章节已经是"类别行 + 值行"的表格式布局；散文式技能段落不受支持，
// 会得到空映射（已知覆盖缺口，见 DESIGN.md）
type SkillsExtractor struct {
	logger     zerolog.Logger
	categories []string
}

// NewSkillsExtractor 创建技能提取器，类别词表来自配置
func NewSkillsExtractor(cfg *config.Config) *SkillsExtractor {
	return &SkillsExtractor{
		logger:     logger.Logger.With().Str("component", "skills_extractor").Logger(),
		categories: cfg.SkillCategories,
	}
}

// Extract 逐行扫描并维护"当前类别"游标
// 精确命中类别名（忽略大小写）的行切换游标；其后的行按分隔符拆成技能值；
// 出现在任何类别之前的行被忽略；没有值行的类别不出现在结果里
func (e *SkillsExtractor) Extract(sectionText string) map[string][]string {
	categorized := make(map[string][]string)

	currentCategory := ""
	for _, line := range strings.Split(sectionText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if category := e.matchCategory(line); category != "" {
			currentCategory = category
			if _, ok := categorized[currentCategory]; !ok {
				categorized[currentCategory] = []string{}
			}
			continue
		}

		if currentCategory == "" {
			continue
		}

		for _, skill := range skillDelimiterRegex.Split(line, -1) {
			if skill = strings.TrimSpace(skill); skill != "" {
				categorized[currentCategory] = append(categorized[currentCategory], skill)
			}
		}
	}

	// 只保留拿到过值行的类别
	for category, skills := range categorized {
		if len(skills) == 0 {
			delete(categorized, category)
		}
	}

	return categorized
}

// matchCategory 当整行恰好等于某个配置类别名时返回规范类别名
func (e *SkillsExtractor) matchCategory(line string) string {
	for _, category := range e.categories {
		if strings.EqualFold(line, category) {
			return category
		}
	}
	return ""
}
