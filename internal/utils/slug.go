package utils

import (
	"regexp"
	"strings"
)

// 土耳其语字母替换表，大小写都映射为小写基础字母
var slugReplacer = strings.NewReplacer(
	"ç", "c", "ğ", "g", "ı", "i", "ö", "o", "ş", "s", "ü", "u",
	"Ç", "c", "Ğ", "g", "İ", "i", "Ö", "o", "Ş", "s", "Ü", "u",
)

var slugSeparator = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify 将标题转换为URL友好的slug。
// 不同输入可能得到相同的slug，调用方不应依赖其唯一性。
func Slugify(text string) string {
	text = slugReplacer.Replace(text)
	text = strings.ToLower(text)
	text = slugSeparator.ReplaceAllString(text, "-")
	return strings.Trim(text, "-")
}
