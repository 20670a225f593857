package heuristics

import "strings"

// Feedback classifies a user's closing feedback message.
type Feedback struct {
	IsPositive      bool
	IsNegative      bool
	HasSuggestion   bool
	ResponseMessage string
}

var positiveKeywords = []string{
	"不错", "很好", "满意", "喜欢", "棒", "赞", "感谢", "谢谢",
	"好看", "实用", "有用", "符合", "期待",
}

var negativeKeywords = []string{
	"不好", "不满意", "不喜欢", "不行", "差", "糟", "失望",
	"不符合", "不实用", "不准确", "不匹配",
}

var suggestionKeywords = []string{
	"希望", "建议", "可以更", "应该", "最好", "如果能",
	"下次", "改进", "提升", "增加", "减少", "优化",
}

// Canned response fragments for the (positive, negative) truth table plus the
// suggestion acknowledgement.
const (
	feedbackPositiveReply   = "我会继续保持这样的服务质量，为你提供优质的内容。"
	feedbackNegativeReply   = "非常抱歉没能满足你的期望，我会努力改进，下次为你提供更好的内容。"
	feedbackMixedReply      = "感谢你的肯定和建议，我会在保持优点的同时努力改进不足之处。"
	feedbackNeutralReply    = "我会记录你的反馈，不断优化我的服务。"
	feedbackSuggestionReply = " 你的建议我已记录，这将帮助我在未来为你提供更符合期望的内容。"
)

// AnalyzeFeedback scans the message for positive, negative and suggestion
// keywords (existence tests, not counts) and derives the canned response
// fragment. Total: every input produces a structured result.
func AnalyzeFeedback(text string) Feedback {
	msg := strings.ToLower(text)

	fb := Feedback{
		IsPositive:    containsAny(msg, positiveKeywords),
		IsNegative:    containsAny(msg, negativeKeywords),
		HasSuggestion: containsAny(msg, suggestionKeywords),
	}

	switch {
	case fb.IsPositive && !fb.IsNegative:
		fb.ResponseMessage = feedbackPositiveReply
	case fb.IsNegative && !fb.IsPositive:
		fb.ResponseMessage = feedbackNegativeReply
	case fb.IsPositive && fb.IsNegative:
		fb.ResponseMessage = feedbackMixedReply
	default:
		fb.ResponseMessage = feedbackNeutralReply
	}

	if fb.HasSuggestion {
		fb.ResponseMessage += feedbackSuggestionReply
	}

	return fb
}

func containsAny(msg string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(msg, k) {
			return true
		}
	}
	return false
}
