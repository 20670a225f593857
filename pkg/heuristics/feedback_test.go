package heuristics

import (
	"strings"
	"testing"
)

func TestAnalyzeFeedback(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		wantPositive  bool
		wantNegative  bool
		wantSuggest   bool
		wantFragments []string
	}{
		{
			name:          "positive with suggestion",
			text:          "这个不错，但希望图片更好看",
			wantPositive:  true,
			wantNegative:  false,
			wantSuggest:   true,
			wantFragments: []string{feedbackPositiveReply, feedbackSuggestionReply},
		},
		{
			name:          "purely negative",
			text:          "有点失望，内容不匹配",
			wantPositive:  false,
			wantNegative:  true,
			wantSuggest:   false,
			wantFragments: []string{feedbackNegativeReply},
		},
		{
			name:          "mixed",
			text:          "标题很好，但是图片不行",
			wantPositive:  true,
			wantNegative:  true,
			wantSuggest:   false,
			wantFragments: []string{feedbackMixedReply},
		},
		{
			name:          "neutral",
			text:          "就这样吧",
			wantPositive:  false,
			wantNegative:  false,
			wantSuggest:   false,
			wantFragments: []string{feedbackNeutralReply},
		},
		{
			name:          "negation triggers both sides",
			text:          "不满意",
			wantPositive:  true, // 满意 matches inside 不满意
			wantNegative:  true,
			wantSuggest:   false,
			wantFragments: []string{feedbackMixedReply},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := AnalyzeFeedback(tt.text)
			if fb.IsPositive != tt.wantPositive {
				t.Errorf("IsPositive = %v, want %v", fb.IsPositive, tt.wantPositive)
			}
			if fb.IsNegative != tt.wantNegative {
				t.Errorf("IsNegative = %v, want %v", fb.IsNegative, tt.wantNegative)
			}
			if fb.HasSuggestion != tt.wantSuggest {
				t.Errorf("HasSuggestion = %v, want %v", fb.HasSuggestion, tt.wantSuggest)
			}
			for _, frag := range tt.wantFragments {
				if !strings.Contains(fb.ResponseMessage, frag) {
					t.Errorf("ResponseMessage %q missing fragment %q", fb.ResponseMessage, frag)
				}
			}
		})
	}
}
