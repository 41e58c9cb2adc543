package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MeasureFunc 返回一段文本的像素宽度
type MeasureFunc func(s string) float64

// FaceMeasure 用 ebiten 字体测量文本宽度
func FaceMeasure(face text.Face) MeasureFunc {
	return func(s string) float64 {
		if s == "" || face == nil {
			return 0
		}
		width, _ := text.Measure(s, face, 0)
		return width
	}
}

// WrapText 将文本按指定宽度自动换行
//
// 换行规则:
//   - 优先在空格处断行
//   - 单个单词超过最大宽度时按字符强制断行
//   - 原文中的换行符保留为段落分隔
func WrapText(textStr string, measure MeasureFunc, maxWidth float64) []string {
	if textStr == "" || measure == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	var lines []string
	for _, para := range strings.Split(textStr, "\n") {
		lines = append(lines, wrapParagraph(para, measure, maxWidth)...)
	}
	return lines
}

func wrapParagraph(para string, measure MeasureFunc, maxWidth float64) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		if measure(word) <= maxWidth {
			current = word
			continue
		}
		// 超长单词按字符拆分
		broken := breakWord(word, measure, maxWidth)
		lines = append(lines, broken[:len(broken)-1]...)
		current = broken[len(broken)-1]
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func breakWord(word string, measure MeasureFunc, maxWidth float64) []string {
	var parts []string
	current := ""
	for len(word) > 0 {
		r, size := utf8.DecodeRuneInString(word)
		word = word[size:]
		candidate := current + string(r)
		if current != "" && measure(candidate) > maxWidth {
			parts = append(parts, current)
			candidate = string(r)
		}
		current = candidate
	}
	return append(parts, current)
}
