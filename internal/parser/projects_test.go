package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser-go/internal/config"
)

func newTestProjectsExtractor(t *testing.T) *ProjectsExtractor {
	t.Helper()
	return NewProjectsExtractor(config.DefaultConfig())
}

// TestProjectsAnchorWithLink 验证锚点命中、描述截断和 Link 标记剥离
func TestProjectsAnchorWithLink(t *testing.T) {
	blob := `Projects
E-commerce Recommendation System
- Built a recommendation engine using Python and TensorFlow with Pandas pipelines.
Link: github.com/johnsmith/recsys

Other unrelated paragraph text.
`
	projects := newTestProjectsExtractor(t).Extract(blob, nil)

	require.Len(t, projects, 1, "应命中一个已知项目锚点")
	p := projects[0]
	assert.Equal(t, "E-commerce Recommendation System", p.Title, "项目标题应取配置里的规范写法")
	assert.Contains(t, p.Description, "recommendation engine", "项目描述缺失")
	assert.NotContains(t, p.Description, "Link:", "描述中不应残留Link标记")
	assert.NotContains(t, p.Description, "unrelated paragraph", "描述应止于段落结束")
	assert.Equal(t, "github.com/johnsmith/recsys", p.Link, "项目链接提取错误")
}

// TestProjectsTechnologiesSorted 验证技术关键词去重且按字典序输出
func TestProjectsTechnologiesSorted(t *testing.T) {
	blob := `E-commerce Recommendation System
Implemented with Python, TensorFlow and Pandas. Python everywhere.
`
	projects := newTestProjectsExtractor(t).Extract(blob, nil)

	require.Len(t, projects, 1, "应命中一个项目")
	assert.Equal(t, []string{"Pandas", "Python", "TensorFlow"}, projects[0].Technologies, "技术列表应去重并按字典序排序")
}

// TestProjectsDocumentSkillsParticipate 验证技能章节的词表参与技术匹配
func TestProjectsDocumentSkillsParticipate(t *testing.T) {
	blob := `E-commerce Recommendation System
Deployed the model behind a Kafka ingestion layer.
`
	documentSkills := map[string][]string{
		"Other Technologies": {"Kafka"},
	}
	projects := newTestProjectsExtractor(t).Extract(blob, documentSkills)

	require.Len(t, projects, 1, "应命中一个项目")
	assert.Contains(t, projects[0].Technologies, "Kafka", "文档技能词表应参与技术匹配")
}

// TestProjectsNoAnchor 验证没有锚点命中时返回空结果
func TestProjectsNoAnchor(t *testing.T) {
	projects := newTestProjectsExtractor(t).Extract("A resume without any known project names.", nil)
	assert.Empty(t, projects, "无锚点命中时应返回空项目列表")
}
