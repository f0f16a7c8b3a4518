package processor

import (
	"errors"
	"fmt"
)

// 定义基础错误类型
var (
	ErrFileNotFound        = errors.New("简历文件不存在")
	ErrUnsupportedFileType = errors.New("不支持的简历文件类型")
	ErrExtractTextFailed   = errors.New("提取简历文本失败")
)

// ResumeParseError 包含详细错误信息的自定义错误
type ResumeParseError struct {
	FilePath string
	Op       string
	BaseErr  error
	Detail   string
}

func (e *ResumeParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s, 文件:%s): %s", e.BaseErr, e.Op, e.FilePath, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s, 文件:%s)", e.BaseErr, e.Op, e.FilePath)
}

func (e *ResumeParseError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *ResumeParseError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// 错误构造函数
func NewFileNotFoundError(filePath, detail string) error {
	return &ResumeParseError{
		FilePath: filePath,
		Op:       "open",
		BaseErr:  ErrFileNotFound,
		Detail:   detail,
	}
}

func NewUnsupportedFileTypeError(filePath, detail string) error {
	return &ResumeParseError{
		FilePath: filePath,
		Op:       "dispatch",
		BaseErr:  ErrUnsupportedFileType,
		Detail:   detail,
	}
}

func NewExtractTextError(filePath, detail string) error {
	return &ResumeParseError{
		FilePath: filePath,
		Op:       "extract",
		BaseErr:  ErrExtractTextFailed,
		Detail:   detail,
	}
}
