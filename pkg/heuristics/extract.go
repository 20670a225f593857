package heuristics

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Extraction is deterministic and pattern based: an ordered list of
// expressions is tried and the first match wins, independently for the
// keyword and the category. No scoring, no ambiguity resolution. Finding
// nothing is not an error; empty fields tell the conversation engine to ask
// the user for more detail.

// keywordPatterns capture the keyword in group 1. Order matters.
var keywordPatterns = []*regexp.Regexp{
	regexp.MustCompile(`关于\s*[“”"]?([^“”"]+)[“”"]?\s*的`),
	regexp.MustCompile(`[“”"]([^“”"]+)[“”"].*?(?:相关|内容|笔记)`),
	regexp.MustCompile(`(?:想做|制作|创作)\s*[“”"]?([^“”"，。？！]+)[“”"]?`),
	regexp.MustCompile(`(?:关键词|话题)\s*[“”"]?([^“”"，。？！]+)[“”"]?`),
}

// categoryPatterns match the category as the whole expression. The last one
// is the bare category-word list itself.
var categoryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:类目|分类|类型)\s*[“”"]?([^“”"，。？！]+)[“”"]?`),
	regexp.MustCompile(`[“”"]([^“”"]+)[“”"].*?(?:类|类目|分类|类型)`),
	regexp.MustCompile(`(?:测评|分享|教程|攻略|心得|技巧|推荐|diy|穿搭|护肤|美妆|旅行|美食|健身)`),
}

// categoryWords are excluded from the fallback keyword scan so a bare
// category utterance does not double as a keyword.
var categoryWords = []string{
	"测评", "分享", "教程", "攻略", "心得", "技巧", "推荐",
	"diy", "穿搭", "护肤", "美妆", "旅行", "美食", "健身",
}

var tokenSplitter = regexp.MustCompile(`\s+|[,，.。:：;；!！?？]`)

// ExtractKeywordAndCategory pulls a keyword and a category out of free text.
// Fields that cannot be found come back empty; the function never fails.
func ExtractKeywordAndCategory(text string) (keyword, category string) {
	lowered := strings.ToLower(text)

	for _, p := range keywordPatterns {
		if m := p.FindStringSubmatch(lowered); m != nil && m[1] != "" {
			keyword = strings.TrimSpace(m[1])
			break
		}
	}

	// Fallback: first token of at least two runes that is not a category word.
	if keyword == "" {
		for _, word := range tokenSplitter.Split(lowered, -1) {
			if utf8.RuneCountInString(word) < 2 {
				continue
			}
			if containsCategoryWord(word) {
				continue
			}
			keyword = word
			break
		}
	}

	for _, p := range categoryPatterns {
		if m := p.FindString(lowered); m != "" {
			category = strings.TrimSpace(m)
			break
		}
	}

	return keyword, category
}

func containsCategoryWord(word string) bool {
	for _, c := range categoryWords {
		if strings.Contains(word, c) {
			return true
		}
	}
	return false
}
