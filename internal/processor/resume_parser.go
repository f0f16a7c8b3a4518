package processor

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/ner"
	"resume-parser-go/internal/parser"
	"resume-parser-go/internal/types"
)

// Components 持有可替换的外部组件依赖
type Components struct {
	TextExtractor TextExtractor
	Recognizer    ner.NameEntityRecognizer
}

// Settings 持有运行期行为设置
type Settings struct {
	Logger zerolog.Logger
	Clock  parser.Clock
	Debug  bool
}

// ResumeParser 简历解析管线的聚合入口
// 各阶段提取器在构造时一次性编译，解析阶段无锁可并发复用
type ResumeParser struct {
	Components Components
	Settings   Settings

	segmenter  *parser.SectionSegmenter
	identity   *parser.IdentityExtractor
	contact    *parser.ContactExtractor
	skills     *parser.SkillsExtractor
	experience *parser.ExperienceExtractor
	education  *parser.EducationExtractor
	projects   *parser.ProjectsExtractor
}

// listItemRegex 清单章节（获奖/证书）条目行的前导符号
var listItemRegex = regexp.MustCompile(`^\s*[•*-]\s*`)

// NewResumeParser 创建简历解析器
// 未显式注入的组件使用默认实现：识别器取全局单例，文本提取器按扩展名分发
func NewResumeParser(ctx context.Context, cfg *config.Config, compOpts []ComponentOpt, setOpts []SettingOpt) (*ResumeParser, error) {
	components := Components{}
	for _, opt := range compOpts {
		opt(&components)
	}

	settings := Settings{
		Logger: logger.Logger.With().Str("component", "resume_parser").Logger(),
		Clock:  time.Now,
	}
	for _, opt := range setOpts {
		opt(&settings)
	}

	if components.Recognizer == nil {
		recognizer, err := ner.Default()
		if err != nil {
			return nil, fmt.Errorf("初始化默认实体识别器失败: %w", err)
		}
		components.Recognizer = recognizer
	}
	if components.TextExtractor == nil {
		extractor, err := NewFileTextExtractor(ctx)
		if err != nil {
			return nil, fmt.Errorf("初始化文件文本提取器失败: %w", err)
		}
		components.TextExtractor = extractor
	}

	segmenter, err := parser.NewSectionSegmenter(cfg)
	if err != nil {
		return nil, fmt.Errorf("编译章节头模式失败: %w", err)
	}
	education, err := parser.NewEducationExtractor(cfg, settings.Clock)
	if err != nil {
		return nil, fmt.Errorf("编译学历模式失败: %w", err)
	}

	return &ResumeParser{
		Components: components,
		Settings:   settings,
		segmenter:  segmenter,
		identity:   parser.NewIdentityExtractor(components.Recognizer, cfg),
		contact:    parser.NewContactExtractor(cfg),
		skills:     parser.NewSkillsExtractor(cfg),
		experience: parser.NewExperienceExtractor(cfg, settings.Clock),
		education:  education,
		projects:   parser.NewProjectsExtractor(cfg),
	}, nil
}

// ParseResume 对原始简历文本执行完整解析管线
// 任何阶段提取不到内容都只产生空缺省值，不会让整体失败
func (p *ResumeParser) ParseResume(ctx context.Context, rawText string) (*types.ResumeRecord, error) {
	startTime := time.Now()
	record := types.NewResumeRecord()
	record.ResumeID = uuid.New().String()

	text := normalizeInput(rawText)
	if strings.TrimSpace(text) == "" {
		p.Settings.Logger.Warn().Msg("输入文本为空，返回空记录")
		return record, nil
	}

	// 阶段1：章节切分
	sections := p.segmenter.Segment(text)

	// 阶段2：姓名与头衔
	name, title := p.identity.Extract(ctx, text)
	record.Name = name
	record.Title = title

	// 阶段3：联系方式（在全文上匹配，不受章节边界影响）
	record.Contact = p.contact.Extract(text)

	// 阶段4：个人总结
	record.Summary = strings.TrimSpace(sections[types.SectionProfessionalSummary])

	// 阶段5：技能分类
	record.Skills = p.skills.Extract(sections[types.SectionAreasOfExpertise])

	// 阶段6：工作经历
	record.Experience = p.experience.Extract(sections[types.SectionProfessionalExperience])

	// 阶段7：教育经历
	record.Education = p.education.Extract(sections[types.SectionEducational])

	// 阶段8：项目与清单章节
	// 项目锚点可能出现在专门章节之外，因此在"项目章节+全文"的拼接文本上查找
	projectBlob := sections[types.SectionProjects] + "\n\n" + text
	record.Projects = p.projects.Extract(projectBlob, record.Skills)
	record.Awards = listLines(sections[types.SectionAwards])
	record.Certifications = listLines(sections[types.SectionCertifications])

	p.Settings.Logger.Info().
		Str("resume_id", record.ResumeID).
		Str("name", record.Name).
		Int("experience_entries", len(record.Experience)).
		Int("education_entries", len(record.Education)).
		Dur("duration", time.Since(startTime)).
		Msg("简历解析完成")

	if p.Settings.Debug {
		p.Settings.Logger.Debug().
			Int("skill_categories", len(record.Skills)).
			Int("projects", len(record.Projects)).
			Int("contact_channels", len(record.Contact)).
			Msg("解析明细")
	}
	return record, nil
}

// ParseFile 从文件提取文本后执行解析管线
func (p *ResumeParser) ParseFile(ctx context.Context, filePath string) (*types.ResumeRecord, error) {
	text, metadata, err := p.Components.TextExtractor.ExtractText(ctx, filePath)
	if err != nil {
		return nil, err
	}
	p.Settings.Logger.Debug().
		Str("file", filePath).
		Interface("metadata", metadata).
		Msg("文本提取完成")
	return p.ParseResume(ctx, text)
}

// normalizeInput 统一换行符并去除 BOM，后续阶段只处理 \n
func normalizeInput(text string) string {
	text = strings.TrimPrefix(text, "\uFEFF")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// listLines 把清单章节按行拆成条目，剥掉前导符号并丢弃空行
func listLines(sectionText string) []string {
	items := []string{}
	for _, line := range strings.Split(sectionText, "\n") {
		line = listItemRegex.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}
