package parser

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/types"
)

// summaryAfterHeaderRegex 紧跟 "professional summary" 标题的摘要捕获
// 捕获到下一个联系方式字段行、空行或文本末尾为止
var summaryAfterHeaderRegex = regexp.MustCompile(`(?is)professional summary:[ \t]*\n?(.*?)(?:\n[ \t]*(?:email|mobile)[ \t]*:|\n[ \t]*\n|\z)`)

// headerOccurrence 一次章节标题命中
type headerOccurrence struct {
	start int
	end   int
	key   types.SectionKey
}

// SectionSegmenter 章节切分器
// 基于配置的标题词表把全文切分为互不重叠、按文档顺序排列的章节块
type SectionSegmenter struct {
	logger          zerolog.Logger
	headerRegexMap  map[types.SectionKey][]*regexp.Regexp
	contactPatterns []*regexp.Regexp
	summaryMinWords int
}

// NewSectionSegmenter 创建章节切分器，词表中的非法标题短语会导致错误
// 标题短语只在独占一行（可带末尾冒号）时命中，避免正文里的普通词被误认为标题
func NewSectionSegmenter(cfg *config.Config) (*SectionSegmenter, error) {
	s := &SectionSegmenter{
		logger:          logger.Logger.With().Str("component", "section_segmenter").Logger(),
		headerRegexMap:  make(map[types.SectionKey][]*regexp.Regexp),
		summaryMinWords: cfg.Extractor.SummaryMinWords,
	}

	for rawKey, phrases := range cfg.SectionHeaders {
		key := types.SectionKey(rawKey)
		for _, phrase := range phrases {
			pattern := `(?im)^[ \t]*` + regexp.QuoteMeta(phrase) + `[ \t]*:?[ \t]*$`
			re, err := regexp.Compile(pattern)
			if err != nil {
				return nil, fmt.Errorf("编译章节标题正则失败 %q: %w", phrase, err)
			}
			s.headerRegexMap[key] = append(s.headerRegexMap[key], re)
		}
	}

	// 摘要收集在遇到联系方式行时停止
	s.contactPatterns = []*regexp.Regexp{emailRegex, phoneRegex, linkedinRegex}

	return s, nil
}

// Segment 将全文切分为章节映射
// 同一章节键的首个标题生效，后续重复标题只在该键仍为空时补位
func (s *SectionSegmenter) Segment(text string) types.SectionMap {
	sections := types.NewSectionMap()

	occurrences := s.findHeaders(text)

	for i, occ := range occurrences {
		contentEnd := len(text)
		if i+1 < len(occurrences) {
			contentEnd = occurrences[i+1].start
		}
		content := strings.TrimSpace(text[occ.end:contentEnd])

		if sections[occ.key] == "" {
			sections[occ.key] = content
		} else {
			s.logger.Debug().Str("section", string(occ.key)).Msg("章节标题重复出现，保留首次命中的内容")
		}
	}

	// 第一个标题之前的内容按引言处理；完全没有标题时整个文档就是引言
	intro := text
	if len(occurrences) > 0 {
		intro = text[:occurrences[0].start]
	}
	s.captureSummary(intro, sections)

	return sections
}

// findHeaders 找出全部标题命中并按文档位置排序
func (s *SectionSegmenter) findHeaders(text string) []headerOccurrence {
	var occurrences []headerOccurrence
	seen := make(map[int]bool)

	for key, regexes := range s.headerRegexMap {
		for _, re := range regexes {
			for _, span := range re.FindAllStringIndex(text, -1) {
				if seen[span[0]] {
					continue
				}
				seen[span[0]] = true
				occurrences = append(occurrences, headerOccurrence{start: span[0], end: span[1], key: key})
			}
		}
	}

	sort.Slice(occurrences, func(i, j int) bool {
		return occurrences[i].start < occurrences[j].start
	})
	return occurrences
}

// captureSummary 从引言块中恢复摘要
// 先尝试显式的 "professional summary" 标题；否则逐行收集直到遇到联系方式行，
// 收集结果超过词数门槛才作为摘要接受，避免把姓名/职位抬头误当摘要
func (s *SectionSegmenter) captureSummary(intro string, sections types.SectionMap) {
	intro = strings.TrimSpace(intro)
	if intro == "" || sections[types.SectionProfessionalSummary] != "" {
		return
	}

	if m := summaryAfterHeaderRegex.FindStringSubmatch(intro); m != nil {
		if candidate := strings.TrimSpace(m[1]); candidate != "" {
			sections[types.SectionProfessionalSummary] = candidate
			return
		}
	}

	var collected []string
	for _, line := range strings.Split(intro, "\n") {
		if s.isContactLine(line) {
			break
		}
		collected = append(collected, line)
	}

	candidate := strings.TrimSpace(strings.Join(collected, "\n"))
	if len(strings.Fields(candidate)) > s.summaryMinWords {
		sections[types.SectionProfessionalSummary] = candidate
	}
}

func (s *SectionSegmenter) isContactLine(line string) bool {
	for _, re := range s.contactPatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
