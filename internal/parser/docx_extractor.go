package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// DocxTextExtractor 从 .docx 文件提取纯文本
// docx 本质是 zip 包，正文在 word/document.xml，按 OOXML 的段落/文本节点取值
type DocxTextExtractor struct{}

// NewDocxTextExtractor 创建 DOCX 文本提取器
func NewDocxTextExtractor() *DocxTextExtractor {
	return &DocxTextExtractor{}
}

// ExtractFromFile 从DOCX文件提取纯文本
func (d *DocxTextExtractor) ExtractFromFile(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("读取DOCX文件 %s 失败: %w", filePath, err)
	}
	return d.ExtractFromBytes(data)
}

// ExtractFromBytes 从内存中的DOCX内容提取纯文本
func (d *DocxTextExtractor) ExtractFromBytes(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("打开DOCX压缩包失败: %w", err)
	}

	var docXML io.ReadCloser
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docXML, err = f.Open()
			if err != nil {
				return "", fmt.Errorf("打开word/document.xml失败: %w", err)
			}
			break
		}
	}
	if docXML == nil {
		return "", fmt.Errorf("DOCX文件中缺少word/document.xml")
	}
	defer docXML.Close()

	return extractDocumentText(docXML)
}

// extractDocumentText 流式遍历 document.xml：w:t 取字符内容，每个 w:p 结束补换行
func extractDocumentText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var sb strings.Builder
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("解析document.xml失败: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}

	return sb.String(), nil
}
