package parser

import (
	"strings"
	"time"
)

// Clock 可注入的时间源，测试中用固定时间替换
type Clock func() time.Time

// dateLayouts 单个日期组件按序尝试的候选格式，先命中者生效
var dateLayouts = []string{
	"January 2006", // "January 2020"
	"Jan 2006",     // "Jan 2020"
	"2006-01-02",   // "2020-01-01"
	"2006/01/02",   // "2020/01/01"
	"01/02/2006",   // "01/01/2020"
	"2006",         // "2020"
}

// NormalizeDateRange 将一段原始时间段文本规范化为 (start, end)
// 输出为 YYYY-MM-DD 或纯 YYYY；无法解析的组件原样返回，永不报错
func NormalizeDateRange(raw string, now time.Time) (string, string) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, "–", "-"))

	today := now.Format("2006-01-02")
	s = strings.ReplaceAll(s, "Present", today)

	if s == "" {
		return "", today
	}

	// 整串本身就是单个日期时不再按连字符拆分，保证规范输入的幂等
	if normalized, ok := normalizeSingleDate(s); ok {
		return normalized, today
	}

	// 按范围分隔符拆成起止两段，只有起点时终点取当前日期
	// 优先匹配带空格的 " - "，避免切开 ISO 日期内部的连字符
	separator := "-"
	if strings.Contains(s, " - ") {
		separator = " - "
	}
	parts := strings.SplitN(s, separator, 2)
	start := strings.TrimSpace(parts[0])
	end := today
	if len(parts) > 1 {
		end = strings.TrimSpace(parts[1])
	}

	return normalizeComponent(start), normalizeComponent(end)
}

// normalizeComponent 规范化单个组件，解析失败时原样返回
func normalizeComponent(s string) string {
	if normalized, ok := normalizeSingleDate(s); ok {
		return normalized
	}
	return s
}

// normalizeSingleDate 按候选格式依次尝试解析单个日期
// 原文恰为4个字符时输出纯年份，否则输出完整日期
func normalizeSingleDate(s string) (string, bool) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if len(s) == 4 {
			return t.Format("2006"), true
		}
		return t.Format("2006-01-02"), true
	}
	return "", false
}
