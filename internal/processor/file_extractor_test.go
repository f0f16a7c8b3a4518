package processor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser-go/internal/parser"
)

// 不经过PDF初始化的提取器，足够覆盖 .txt 和错误分支
func newTestFileExtractor() *FileTextExtractor {
	return &FileTextExtractor{docx: parser.NewDocxTextExtractor()}
}

// TestExtractTextPlainFile 验证 .txt 文件直接读取
func TestExtractTextPlainFile(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("John Smith\nDeveloper\n"), 0o644), "写入测试文件失败")

	text, metadata, err := newTestFileExtractor().ExtractText(context.Background(), filePath)
	require.NoError(t, err, "txt提取不应报错")
	assert.Equal(t, "John Smith\nDeveloper\n", text, "txt内容应原样返回")
	assert.Equal(t, filePath, metadata["source_file_path"], "元数据应携带来源路径")
}

// TestExtractTextMissingFile 验证文件不存在时返回类型化错误
func TestExtractTextMissingFile(t *testing.T) {
	_, _, err := newTestFileExtractor().ExtractText(context.Background(), "/nonexistent/resume.txt")

	require.Error(t, err, "缺失文件应报错")
	assert.ErrorIs(t, err, ErrFileNotFound, "应返回文件不存在的类型化错误")
}

// TestExtractTextUnsupportedExtension 验证未知扩展名返回类型化错误
func TestExtractTextUnsupportedExtension(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "resume.odt")
	require.NoError(t, os.WriteFile(filePath, []byte("data"), 0o644), "写入测试文件失败")

	_, _, err := newTestFileExtractor().ExtractText(context.Background(), filePath)
	require.Error(t, err, "未知扩展名应报错")
	assert.ErrorIs(t, err, ErrUnsupportedFileType, "应返回不支持类型的类型化错误")
}

// TestExtractTextDirectory 验证目录路径被拒绝
func TestExtractTextDirectory(t *testing.T) {
	_, _, err := newTestFileExtractor().ExtractText(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, ErrFileNotFound, "目录路径应按文件不存在处理")
}

// TestResumeParseErrorFormat 验证自定义错误的格式与 errors.Is 行为
func TestResumeParseErrorFormat(t *testing.T) {
	err := NewExtractTextError("/tmp/resume.pdf", "底层解析失败")

	assert.ErrorIs(t, err, ErrExtractTextFailed, "errors.Is 应命中基础错误")
	assert.Contains(t, err.Error(), "/tmp/resume.pdf", "错误信息应包含文件路径")
	assert.Contains(t, err.Error(), "底层解析失败", "错误信息应包含细节")
	assert.Contains(t, err.Error(), "extract", "错误信息应包含操作名")
}
