package heuristics

import (
	"regexp"
	"strings"
)

// confirmPatterns match a whole affirmative message, or an affirmative
// suffix right before optional punctuation. Pure string tests, no scoring.
var confirmPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^是$`),
	regexp.MustCompile(`^对$`),
	regexp.MustCompile(`^确认$`),
	regexp.MustCompile(`^没问题$`),
	regexp.MustCompile(`^可以$`),
	regexp.MustCompile(`^正确$`),
	regexp.MustCompile(`^准确$`),
	regexp.MustCompile(`^开始$`),
	regexp.MustCompile(`^确定$`),
	regexp.MustCompile(`^是的$`),
	regexp.MustCompile(`^对的$`),
	regexp.MustCompile(`^好的$`),
	regexp.MustCompile(`^可以的$`),
	regexp.MustCompile(`^没错$`),
	regexp.MustCompile(`信息(正确|准确|没问题)`),
	regexp.MustCompile(`(正确|准确|没问题|可以)(，|。|！|\s)?$`),
}

// newRequestPrefixes start a fresh content request from the ending stage.
var newRequestPrefixes = []string{
	"我想", "我需要", "我要", "帮我", "请帮", "可以帮",
	"能帮", "制作", "创作", "生成", "做一个", "做一份",
}

// IsConfirming reports whether the message confirms the collected request
// info.
func IsConfirming(text string) bool {
	msg := strings.ToLower(strings.TrimSpace(text))
	for _, p := range confirmPatterns {
		if p.MatchString(msg) {
			return true
		}
	}
	return false
}

// IsNewRequest reports whether the message starts a new content request.
func IsNewRequest(text string) bool {
	msg := strings.ToLower(strings.TrimSpace(text))
	for _, prefix := range newRequestPrefixes {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}
