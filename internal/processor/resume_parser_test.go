package processor

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/ner"
	"resume-parser-go/internal/types"
)

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

// stubRecognizer 返回固定人名的测试识别器
type stubRecognizer struct {
	personName string
}

func (s *stubRecognizer) Recognize(_ context.Context, text string) ([]types.EntitySpan, error) {
	idx := strings.Index(text, s.personName)
	if s.personName == "" || idx < 0 {
		return nil, nil
	}
	return []types.EntitySpan{{
		Start: idx,
		End:   idx + len(s.personName),
		Label: ner.LabelPerson,
		Text:  s.personName,
	}}, nil
}

// stubTextExtractor 返回预置文本的测试提取器
type stubTextExtractor struct {
	text string
}

func (s *stubTextExtractor) ExtractText(_ context.Context, filePath string) (string, map[string]interface{}, error) {
	return s.text, map[string]interface{}{"source_file_path": filePath}, nil
}

func newTestParser(t *testing.T, personName string) *ResumeParser {
	t.Helper()
	rp, err := NewResumeParser(context.Background(), config.DefaultConfig(),
		[]ComponentOpt{
			WithcompRecognizer(&stubRecognizer{personName: personName}),
			WithcompTextextractor(&stubTextExtractor{}),
		},
		[]SettingOpt{
			WithsetClock(func() time.Time { return testNow }),
		},
	)
	require.NoError(t, err, "构建简历解析器不应失败")
	return rp
}

// TestParseResumeEmptyInput 验证空输入返回全缺省值的记录而非错误
func TestParseResumeEmptyInput(t *testing.T) {
	record, err := newTestParser(t, "").ParseResume(context.Background(), "   \n\n")

	require.NoError(t, err, "空输入不应报错")
	require.NotNil(t, record, "空输入也应返回记录")
	assert.NotEmpty(t, record.ResumeID, "记录必须携带resume_id")
	assert.Empty(t, record.Name, "空输入的姓名应为空")
	assert.Empty(t, record.Contact, "空输入的联系方式应为空映射")
	assert.NotNil(t, record.Experience, "经历列表应为空切片而非nil")
	assert.NotNil(t, record.Skills, "技能映射应为空映射而非nil")
}

// TestParseResumeFullPipeline 验证合成简历走通全部阶段
func TestParseResumeFullPipeline(t *testing.T) {
	rawText := `john smith
Front End Developer
Email: john.smith@example.com
Mobile: 312-555-0188
linkedin.com/in/johnsmith

Professional Summary:
Front end specialist with years of experience building accessible interfaces at scale.

Areas of Expertise
Web Technologies
HTML5, CSS3, JavaScript

Professional Experience
Client
Acme Corp, Chicago, IL
Title
Senior Developer
Duration
January 2020 - Present
Responsibilities:
• Built the storefront

Educational
Bachelor of Technology in Computer Science from State University, Chicago, IL

Projects
E-commerce Recommendation System
- Built a recommendation engine using Python and TensorFlow.

Certifications
AWS Certified Developer
`
	record, err := newTestParser(t, "john smith").ParseResume(context.Background(), rawText)
	require.NoError(t, err, "合成简历解析不应报错")

	assert.Equal(t, "John Smith", record.Name, "姓名提取错误")
	assert.Equal(t, "Front End Developer", record.Title, "职位提取错误")
	assert.Equal(t, "john.smith@example.com", record.Contact[types.ContactEmail], "邮箱提取错误")
	assert.Equal(t, "312-555-0188", record.Contact[types.ContactMobile], "电话提取错误")
	assert.Contains(t, record.Summary, "Front end specialist", "摘要提取错误")
	assert.Equal(t, []string{"HTML5", "CSS3", "JavaScript"}, record.Skills["Web Technologies"], "技能提取错误")

	require.Len(t, record.Experience, 1, "应解析出一条工作经历")
	assert.Equal(t, "Acme Corp", record.Experience[0].Client, "经历客户名错误")
	assert.Equal(t, "2020-01-01", record.Experience[0].StartDate, "经历起始日期错误")
	assert.Equal(t, "2024-03-15", record.Experience[0].EndDate, "Present应替换为固定时钟的当前日期")

	require.Len(t, record.Education, 1, "应解析出一条教育经历")
	assert.Equal(t, "B.Tech", record.Education[0].Degree, "学位标签错误")

	require.Len(t, record.Projects, 1, "应解析出一个项目")
	assert.Equal(t, "E-commerce Recommendation System", record.Projects[0].Title, "项目标题错误")

	assert.Equal(t, []string{"AWS Certified Developer"}, record.Certifications, "证书清单错误")
	assert.Empty(t, record.Awards, "未出现的获奖章节应为空列表")
}

// TestParseResumeWindowsLineEndings 验证 CRLF 输入与 LF 输入结果一致
func TestParseResumeWindowsLineEndings(t *testing.T) {
	lf := "Skills\nDatabases\nMySQL\n"
	crlf := strings.ReplaceAll(lf, "\n", "\r\n")

	recordLF, err := newTestParser(t, "").ParseResume(context.Background(), lf)
	require.NoError(t, err)
	recordCRLF, err := newTestParser(t, "").ParseResume(context.Background(), crlf)
	require.NoError(t, err)

	assert.Equal(t, recordLF.Skills, recordCRLF.Skills, "CRLF输入应与LF输入产生相同的技能结果")
}

// TestParseFileUsesExtractor 验证 ParseFile 走注入的文本提取器
func TestParseFileUsesExtractor(t *testing.T) {
	rp, err := NewResumeParser(context.Background(), config.DefaultConfig(),
		[]ComponentOpt{
			WithcompRecognizer(&stubRecognizer{}),
			WithcompTextextractor(&stubTextExtractor{text: "Skills\nDatabases\nPostgreSQL\n"}),
		},
		[]SettingOpt{
			WithsetClock(func() time.Time { return testNow }),
		},
	)
	require.NoError(t, err, "构建简历解析器不应失败")

	record, err := rp.ParseFile(context.Background(), "/tmp/any.txt")
	require.NoError(t, err, "ParseFile不应报错")
	assert.Equal(t, []string{"PostgreSQL"}, record.Skills["Databases"], "ParseFile应解析提取器返回的文本")
}

// TestListLines 验证清单章节的逐行拆分
func TestListLines(t *testing.T) {
	items := listLines("• First award\n\n- Second award\nThird\n")
	assert.Equal(t, []string{"First award", "Second award", "Third"}, items, "清单拆分结果错误")
}
