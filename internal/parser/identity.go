package parser

import (
	"context"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/ner"
)

// IdentityExtractor 候选人姓名与职位提取器
// 姓名识别优先依赖注入的实体识别引擎，引擎失效时退回大写行启发式；
// 任何一步未命中都以空串收场，从不报错
type IdentityExtractor struct {
	recognizer        ner.NameEntityRecognizer
	logger            zerolog.Logger
	titleLineRegex    *regexp.Regexp
	knownTitleRes     []anchorMatcher
	titleWindow       int
	knownTitleWindow  int
	upperExcludeWords []string
	titleCaser        cases.Caser
}

// NewIdentityExtractor 创建姓名/职位提取器
func NewIdentityExtractor(recognizer ner.NameEntityRecognizer, cfg *config.Config) *IdentityExtractor {
	// 形如 "Front End Developer" 的独立职位行：前缀任意词 + 闭集后缀
	titlePattern := `(?im)^[ \t]*([A-Za-z .&/-]+(?:` + strings.Join(cfg.TitleSuffixes, "|") + `)[ \t]*)$`

	excludes := make([]string, 0, len(cfg.TitleSuffixes)+1)
	for _, suffix := range cfg.TitleSuffixes {
		excludes = append(excludes, strings.ToUpper(suffix))
	}
	excludes = append(excludes, "EMAIL")

	var knownRes []anchorMatcher
	for _, known := range cfg.KnownTitles {
		knownRes = append(knownRes, anchorMatcher{
			title: known,
			re:    regexp.MustCompile(`(?i)` + regexp.QuoteMeta(known)),
		})
	}

	return &IdentityExtractor{
		recognizer:        recognizer,
		logger:            logger.Logger.With().Str("component", "identity_extractor").Logger(),
		titleLineRegex:    regexp.MustCompile(titlePattern),
		knownTitleRes:     knownRes,
		titleWindow:       cfg.Extractor.TitleWindowChars,
		knownTitleWindow:  cfg.Extractor.KnownTitleWindowChars,
		upperExcludeWords: excludes,
		titleCaser:        cases.Title(language.English),
	}
}

// Extract 返回 (姓名, 职位)，两者都可能为空
func (e *IdentityExtractor) Extract(ctx context.Context, text string) (string, string) {
	lines := nonBlankLines(text)
	if len(lines) == 0 {
		return "", ""
	}

	// 姓名通常出现在第一或第二个显著行
	rawName := e.recognizeName(ctx, lines)

	name := ""
	title := ""
	if rawName != "" {
		name = e.titleCaser.String(rawName)
		title = e.titleNearName(text, rawName)
	}

	// 识别引擎没有给出结果时，扫描头三行找全大写的姓名行
	if name == "" {
		if upper := e.uppercaseNameLine(lines); upper != "" {
			name = e.titleCaser.String(upper)
		}
	}

	// 二级回退：文档头部出现的已知职位短语原样接受
	if title == "" {
		title = e.knownTitleNearTop(text)
	}

	return name, title
}

// recognizeName 依次对第一、二行调用识别引擎，取首个至少两个词的人名实体
func (e *IdentityExtractor) recognizeName(ctx context.Context, lines []string) string {
	for i := 0; i < len(lines) && i < 2; i++ {
		spans, err := e.recognizer.Recognize(ctx, lines[i])
		if err != nil {
			e.logger.Warn().Err(err).Int("line", i).Msg("实体识别失败，继续尝试后续行")
			continue
		}
		for _, span := range spans {
			if span.Label == ner.LabelPerson && len(strings.Fields(span.Text)) >= 2 {
				return span.Text
			}
		}
	}
	return ""
}

// titleNearName 在姓名之后的有限窗口内找独立成行的职位
// 窗口限制用于避免捕获文档后部不相关的职位行
func (e *IdentityExtractor) titleNearName(text, rawName string) string {
	nameIdx := strings.Index(text, rawName)
	if nameIdx < 0 {
		return ""
	}

	after := text[nameIdx+len(rawName):]
	loc := e.titleLineRegex.FindStringSubmatchIndex(after)
	if loc == nil || loc[0] >= e.titleWindow {
		return ""
	}
	return strings.TrimSpace(after[loc[2]:loc[3]])
}

// uppercaseNameLine 在头三个非空行中找"至少两个词的全大写行"作为姓名候选
// 排除看起来像职位行或邮箱抬头行的内容
func (e *IdentityExtractor) uppercaseNameLine(lines []string) string {
	for i := 0; i < len(lines) && i < 3; i++ {
		line := lines[i]
		if len(strings.Fields(line)) < 2 {
			continue
		}
		if line != strings.ToUpper(line) || line == strings.ToLower(line) {
			continue
		}
		if e.containsExcludedWord(strings.ToUpper(line)) {
			continue
		}
		return line
	}
	return ""
}

func (e *IdentityExtractor) containsExcludedWord(upperLine string) bool {
	for _, word := range e.upperExcludeWords {
		if strings.Contains(upperLine, word) {
			return true
		}
	}
	return false
}

// knownTitleNearTop 在文档头部窗口内查找配置的已知职位短语
func (e *IdentityExtractor) knownTitleNearTop(text string) string {
	for _, known := range e.knownTitleRes {
		if loc := known.re.FindStringIndex(text); loc != nil && loc[0] < e.knownTitleWindow {
			return known.title
		}
	}
	return ""
}

// nonBlankLines 取出全部去除首尾空白后的非空行
func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
