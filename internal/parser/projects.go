package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/types"
)

// projectLinkRegex 描述末尾可选的 "Link: <url>" 标记
var projectLinkRegex = regexp.MustCompile(`(?i)link:[ \t]*(\S+)`)

// anchorMatcher 配置短语与其不区分大小写的匹配正则
type anchorMatcher struct {
	title string
	re    *regexp.Regexp
}

// ProjectsExtractor 项目条目提取器
// 输入是"项目章节 + 全文"拼接成的文本，以便找回散落在专门章节之外的项目
type ProjectsExtractor struct {
	logger       zerolog.Logger
	anchorRes    []anchorMatcher
	techKeywords []string
}

// NewProjectsExtractor 创建项目提取器，锚点短语与技术关键词表来自配置
func NewProjectsExtractor(cfg *config.Config) *ProjectsExtractor {
	e := &ProjectsExtractor{
		logger:       logger.Logger.With().Str("component", "projects_extractor").Logger(),
		techKeywords: cfg.TechKeywords,
	}
	for _, anchor := range cfg.KnownProjects {
		e.anchorRes = append(e.anchorRes, anchorMatcher{
			title: anchor,
			re:    regexp.MustCompile(`(?i)` + regexp.QuoteMeta(anchor)),
		})
	}
	return e
}

// Extract 按已知项目锚点提取项目条目
// documentSkills 是技能章节解析出的映射，其值参与技术关键词匹配
func (e *ProjectsExtractor) Extract(blob string, documentSkills map[string][]string) []types.ProjectEntry {
	var projects []types.ProjectEntry

	for _, anchor := range e.anchorRes {
		loc := anchor.re.FindStringIndex(blob)
		if loc == nil {
			continue
		}

		description, link := splitDescriptionAndLink(blob[loc[1]:])
		if description == "" {
			continue
		}

		projects = append(projects, types.ProjectEntry{
			Title:        anchor.title,
			Description:  description,
			Technologies: e.matchTechnologies(description, documentSkills),
			Link:         link,
		})
	}

	return projects
}

// splitDescriptionAndLink 锚点之后到段落结束（或Link标记）的文本作为描述
func splitDescriptionAndLink(segment string) (string, string) {
	// 描述止于第一个空行
	if blank := strings.Index(segment, "\n\n"); blank >= 0 {
		segment = segment[:blank]
	}

	link := ""
	if loc := projectLinkRegex.FindStringSubmatchIndex(segment); loc != nil {
		link = segment[loc[2]:loc[3]]
		segment = segment[:loc[0]]
	}

	description := strings.TrimSpace(segment)
	description = strings.TrimSpace(strings.TrimPrefix(description, "-"))
	return description, link
}

// matchTechnologies 在描述里匹配配置关键词与文档技能词表，并去重排序保证输出确定
func (e *ProjectsExtractor) matchTechnologies(description string, documentSkills map[string][]string) []string {
	lowerDesc := strings.ToLower(description)
	seen := make(map[string]bool)

	collect := func(keyword string) {
		keyword = strings.TrimSpace(keyword)
		if keyword == "" || seen[keyword] {
			return
		}
		if strings.Contains(lowerDesc, strings.ToLower(keyword)) {
			seen[keyword] = true
		}
	}

	for _, skills := range documentSkills {
		for _, skill := range skills {
			collect(skill)
		}
	}
	for _, keyword := range e.techKeywords {
		collect(keyword)
	}

	technologies := make([]string, 0, len(seen))
	for keyword := range seen {
		technologies = append(technologies, keyword)
	}
	sort.Strings(technologies)
	return technologies
}
