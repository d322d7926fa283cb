package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TextMeasurer 测量一行文本宽度（像素）
type TextMeasurer func(s string) float64

// FaceMeasurer 返回基于字体的文本宽度测量函数
func FaceMeasurer(face text.Face) TextMeasurer {
	return func(s string) float64 {
		if s == "" || face == nil {
			return 0
		}
		return text.Advance(s, face)
	}
}

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本（可包含 \n 段落分隔）
//   - measure: 文本宽度测量函数
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 优先在空格处断行
//   - 如果单词太长超过最大宽度，按字符强制断行
//   - 空段落保留为空行
func WrapText(textStr string, measure TextMeasurer, maxWidth float64) []string {
	if textStr == "" || measure == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		currentLine := ""
		for _, word := range words {
			candidate := word
			if currentLine != "" {
				candidate = currentLine + " " + word
			}
			if measure(candidate) <= maxWidth {
				currentLine = candidate
				continue
			}

			// 当前行结束
			if currentLine != "" {
				lines = append(lines, currentLine)
				currentLine = ""
			}

			// 单词本身就超宽：按字符强制断行
			if measure(word) > maxWidth {
				pieces := breakWord(word, measure, maxWidth)
				lines = append(lines, pieces[:len(pieces)-1]...)
				currentLine = pieces[len(pieces)-1]
				continue
			}
			currentLine = word
		}
		if currentLine != "" {
			lines = append(lines, currentLine)
		}
	}

	return lines
}

// breakWord 按字符拆分超宽单词（支持多字节字符）
func breakWord(word string, measure TextMeasurer, maxWidth float64) []string {
	var pieces []string
	current := ""
	for len(word) > 0 {
		r, size := utf8.DecodeRuneInString(word)
		char := string(r)
		if current != "" && measure(current+char) > maxWidth {
			pieces = append(pieces, current)
			current = ""
		}
		current += char
		word = word[size:]
	}
	return append(pieces, current)
}
