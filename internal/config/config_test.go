package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultConfigComplete 验证内置默认配置携带全部必要词表
func TestDefaultConfigComplete(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotEmpty(t, cfg.SectionHeaders["professional_experience"], "经历章节标题词表不应为空")
	assert.NotEmpty(t, cfg.SkillCategories, "技能类别词表不应为空")
	assert.NotEmpty(t, cfg.TechKeywords, "技术关键词表不应为空")
	assert.NotEmpty(t, cfg.DegreePatterns, "学历模式列表不应为空")
	assert.Equal(t, "US", cfg.Extractor.PhoneRegion, "默认电话地区应为US")
	assert.Equal(t, 100, cfg.Extractor.TitleWindowChars, "默认职位窗口错误")
	assert.Equal(t, 10, cfg.Extractor.SummaryMinWords, "默认摘要词数门槛错误")
}

// TestLoadConfigOverridesDefaults 验证配置文件只覆盖声明的字段、其余保留默认值
func TestLoadConfigOverridesDefaults(t *testing.T) {
	yamlContent := `
extractor:
  phone_region: "GB"
logger:
  level: "debug"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0o644), "无法写入临时配置文件")

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err, "加载合法配置不应返回错误")

	assert.Equal(t, "GB", cfg.Extractor.PhoneRegion, "配置文件应覆盖电话地区")
	assert.Equal(t, "debug", cfg.Logger.Level, "配置文件应覆盖日志级别")
	assert.NotEmpty(t, cfg.SkillCategories, "未声明的词表应保留默认值")
	assert.Equal(t, 100, cfg.Extractor.TitleWindowChars, "未声明的数值字段应补默认值")
}

// TestLoadConfigEnvOverride 验证环境变量优先于配置文件
func TestLoadConfigEnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`extractor: {phone_region: "GB"}`), 0o644), "无法写入临时配置文件")

	t.Setenv("RESUME_PARSER_PHONE_REGION", "IN")

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err, "加载配置不应返回错误")
	assert.Equal(t, "IN", cfg.Extractor.PhoneRegion, "环境变量应覆盖配置文件的电话地区")
}

// TestLoadConfigMissingFileInTest 验证测试环境下找不到文件时退回默认配置
func TestLoadConfigMissingFileInTest(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err, "测试环境下缺省路径不应报错")
	require.NotNil(t, cfg, "应退回默认配置")
	assert.NotEmpty(t, cfg.SectionHeaders, "默认配置应携带章节词表")
}

// TestCreateSampleConfig 验证示例配置文件的生成与拒绝覆盖
func TestCreateSampleConfig(t *testing.T) {
	tmpDir := t.TempDir()
	samplePath := filepath.Join(tmpDir, "config.yaml")

	require.NoError(t, CreateSampleConfig(samplePath), "生成示例配置不应失败")

	loaded, err := LoadConfig(samplePath)
	require.NoError(t, err, "示例配置应能被重新加载")
	assert.Equal(t, DefaultConfig().SkillCategories, loaded.SkillCategories, "示例配置往返后词表应一致")

	assert.Error(t, CreateSampleConfig(samplePath), "已存在的文件不应被覆盖")
}
