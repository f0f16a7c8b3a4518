package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/types"
)

var (
	// clientMarkerRegex 仅含 "Client" 标签的结构行，标记一段工作经历的开始
	clientMarkerRegex = regexp.MustCompile(`(?im)^[ \t]*Client[ \t]*\r?$`)

	// clientTripleRegex Client/Title/Duration 三字段按固定顺序的多行模式
	clientTripleRegex = regexp.MustCompile(`(?is)client[ \t]*\r?\n[ \t]*(.*?)\r?\n[ \t]*title[ \t]*\r?\n[ \t]*(.*?)\r?\n[ \t]*duration[ \t]*\r?\n[ \t]*(.*?)(?:\r?\n|\z)`)

	// responsibilitiesRegex Responsibilities 与 Environment 标记之间的内容
	responsibilitiesRegex = regexp.MustCompile(`(?is)responsibilities:[ \t]*\r?\n(.*?)(?:\r?\nenvironment:|\z)`)

	// bulletPrefixRegex 行首的项目符号
	bulletPrefixRegex = regexp.MustCompile(`^\s*[•*-]\s*`)
)

// ExperienceExtractor 工作经历提取器
type ExperienceExtractor struct {
	logger            zerolog.Logger
	locationRegex     *regexp.Regexp
	employerFallbacks []*regexp.Regexp
	clock             Clock
}

// NewExperienceExtractor 创建工作经历提取器
// 地点模式由配置的州缩写闭集拼出；雇主描述短语作为地点提取的回退锚点
func NewExperienceExtractor(cfg *config.Config, clock Clock) *ExperienceExtractor {
	if clock == nil {
		clock = time.Now
	}

	stateAlternatives := strings.Join(cfg.StateAbbreviations, "|")
	locationPattern := `,[ \t]*([A-Za-z ,]+(?:` + stateAlternatives + `)\b)`

	var fallbacks []*regexp.Regexp
	for _, phrase := range cfg.EmployerPhrases {
		pattern := `(?is)\ndescription:[ \t]*` + regexp.QuoteMeta(phrase) +
			`[\s\S]*?environment:[\s\S]*?,[ \t]*([A-Za-z ,]+(?:` + stateAlternatives + `)\b)`
		if re, err := regexp.Compile(pattern); err == nil {
			fallbacks = append(fallbacks, re)
		}
	}

	return &ExperienceExtractor{
		logger:            logger.Logger.With().Str("component", "experience_extractor").Logger(),
		locationRegex:     regexp.MustCompile(locationPattern),
		employerFallbacks: fallbacks,
		clock:             clock,
	}
}

// Extract 把工作经历章节文本解析为按文档顺序排列的经历条目
// 无法命中 Client/Title/Duration 三字段的块被跳过，但不影响后续块
func (e *ExperienceExtractor) Extract(sectionText string) []types.ExperienceEntry {
	var entries []types.ExperienceEntry

	for _, block := range e.splitJobBlocks(sectionText) {
		triple := clientTripleRegex.FindStringSubmatch(block)
		if triple == nil {
			e.logger.Debug().Int("block_len", len(block)).Msg("经历块缺少Client/Title/Duration三字段，跳过")
			continue
		}

		clientLine := strings.TrimSpace(triple[1])
		duration := strings.TrimSpace(triple[3])
		start, end := NormalizeDateRange(duration, e.clock())

		entry := types.ExperienceEntry{
			Client:           strings.TrimSpace(strings.SplitN(clientLine, ",", 2)[0]),
			Title:            strings.TrimSpace(triple[2]),
			Duration:         duration,
			StartDate:        start,
			EndDate:          end,
			Location:         e.extractLocation(clientLine, block),
			Responsibilities: extractResponsibilities(block),
		}
		entries = append(entries, entry)
	}

	return entries
}

// splitJobBlocks 按 "Client" 结构行切出各经历块，每块包含自己的标记行
func (e *ExperienceExtractor) splitJobBlocks(text string) []string {
	markers := clientMarkerRegex.FindAllStringIndex(text, -1)
	if len(markers) == 0 {
		return nil
	}

	blocks := make([]string, 0, len(markers))
	for i, marker := range markers {
		blockEnd := len(text)
		if i+1 < len(markers) {
			blockEnd = markers[i+1][0]
		}
		blocks = append(blocks, text[marker[0]:blockEnd])
	}
	return blocks
}

// extractLocation 先在Client行尾找 "<城市>, <州缩写>"，失败时用雇主描述短语锚定的回退模式
func (e *ExperienceExtractor) extractLocation(clientLine, block string) string {
	if m := e.locationRegex.FindStringSubmatch(clientLine); m != nil {
		return strings.TrimSpace(m[1])
	}
	for _, re := range e.employerFallbacks {
		if m := re.FindStringSubmatch(block); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// extractResponsibilities 取出职责清单，剥掉行首项目符号并丢弃空行
func extractResponsibilities(block string) []string {
	m := responsibilitiesRegex.FindStringSubmatch(block)
	if m == nil {
		return nil
	}

	var responsibilities []string
	for _, line := range strings.Split(m[1], "\n") {
		cleaned := strings.TrimSpace(bulletPrefixRegex.ReplaceAllString(line, ""))
		if cleaned != "" {
			responsibilities = append(responsibilities, cleaned)
		}
	}
	return responsibilities
}
