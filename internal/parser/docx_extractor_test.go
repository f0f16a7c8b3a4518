package parser

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDocx 构造一个只含 word/document.xml 的最小 docx 包
func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err, "创建zip条目失败")
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err, "写入document.xml失败")
	require.NoError(t, zw.Close(), "关闭zip失败")
	return buf.Bytes()
}

// TestDocxExtractParagraphs 验证 w:t 文本拼接与段落换行
func TestDocxExtractParagraphs(t *testing.T) {
	documentXML := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>John Smith</w:t></w:r></w:p>
    <w:p><w:r><w:t>Front End </w:t></w:r><w:r><w:t>Developer</w:t></w:r></w:p>
  </w:body>
</w:document>`

	text, err := NewDocxTextExtractor().ExtractFromBytes(buildDocx(t, documentXML))
	require.NoError(t, err, "docx提取不应报错")
	assert.Equal(t, "John Smith\nFront End Developer\n", text, "段落文本拼接错误")
}

// TestDocxMissingDocumentXML 验证缺少正文部件时报错
func TestDocxMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = NewDocxTextExtractor().ExtractFromBytes(buf.Bytes())
	assert.Error(t, err, "缺少word/document.xml时应报错")
}

// TestDocxNotAZip 验证损坏内容报错
func TestDocxNotAZip(t *testing.T) {
	_, err := NewDocxTextExtractor().ExtractFromBytes([]byte("not a zip archive"))
	assert.Error(t, err, "非zip内容应报错")
}
