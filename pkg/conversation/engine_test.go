package conversation

import (
	"context"
	"strings"
	"testing"

	"rednote-trend-be/pkg/grammar"
	"rednote-trend-be/pkg/pipeline"
	"rednote-trend-be/pkg/store"
)

func newTestEngine() *Engine {
	return NewEngine(pipeline.NewRunner(grammar.NewSeeded(11), 0))
}

func send(t *testing.T, e *Engine, s *store.Session, message string) Reply {
	t.Helper()
	reply, err := e.HandleMessage(context.Background(), s, message)
	if err != nil {
		t.Fatalf("HandleMessage(%q): %v", message, err)
	}
	if reply.Type != ReplyTypeText || reply.Content == "" {
		t.Fatalf("HandleMessage(%q) returned malformed reply %+v", message, reply)
	}
	return reply
}

func TestGreetingThenExtraction(t *testing.T) {
	e := newTestEngine()
	s := store.NewSession("s1")

	reply := send(t, e, s, "我想做敏感肌保湿测评")
	if !strings.Contains(reply.Content, "小红书爆款内容制作助手") {
		t.Errorf("greeting reply missing introduction: %q", reply.Content)
	}
	if s.Stage != store.StageCollectingNeeds {
		t.Fatalf("stage = %s, want collecting_needs", s.Stage)
	}

	send(t, e, s, "我想做敏感肌保湿测评")
	if s.Stage != store.StageConfirmingInfo {
		t.Fatalf("stage = %s, want confirming_info", s.Stage)
	}
	if s.Request.Keyword == "" {
		t.Error("keyword not extracted")
	}
	if !strings.Contains(s.Request.Category, "测评") {
		t.Errorf("category = %q, want one containing 测评", s.Request.Category)
	}
}

func TestCollectingNeedsPartialBranches(t *testing.T) {
	e := newTestEngine()

	t.Run("category only asks for keyword", func(t *testing.T) {
		s := store.NewSession("s")
		s.Stage = store.StageCollectingNeeds
		reply := send(t, e, s, "穿搭")
		if s.Stage != store.StageCollectingNeeds {
			t.Errorf("stage = %s, want collecting_needs", s.Stage)
		}
		if s.Request.Category == "" {
			t.Error("category not recorded")
		}
		if !strings.Contains(reply.Content, "关键词") {
			t.Errorf("reply does not ask for keyword: %q", reply.Content)
		}
	})

	t.Run("keyword only asks for category", func(t *testing.T) {
		s := store.NewSession("s")
		s.Stage = store.StageCollectingNeeds
		reply := send(t, e, s, "复古风")
		if s.Stage != store.StageCollectingNeeds {
			t.Errorf("stage = %s, want collecting_needs", s.Stage)
		}
		if s.Request.Keyword != "复古风" {
			t.Errorf("keyword = %q, want 复古风", s.Request.Keyword)
		}
		if !strings.Contains(reply.Content, "类目") {
			t.Errorf("reply does not ask for category: %q", reply.Content)
		}
	})

	t.Run("nothing asks for both", func(t *testing.T) {
		s := store.NewSession("s")
		s.Stage = store.StageCollectingNeeds
		reply := send(t, e, s, "？")
		if !strings.Contains(reply.Content, "具体") {
			t.Errorf("reply does not request details: %q", reply.Content)
		}
	})
}

func TestConfirmationTransitions(t *testing.T) {
	e := newTestEngine()

	t.Run("affirmative enters processing", func(t *testing.T) {
		s := store.NewSession("s")
		s.Stage = store.StageConfirmingInfo
		s.Request = store.Request{Keyword: "敏感肌保湿", Category: "测评"}

		send(t, e, s, "是的")
		if !s.Request.Confirmed {
			t.Error("request not confirmed")
		}
		if s.Stage != store.StageProcessing {
			t.Errorf("stage = %s, want processing", s.Stage)
		}
	})

	t.Run("rejection retreats and clears the request", func(t *testing.T) {
		s := store.NewSession("s")
		s.Stage = store.StageConfirmingInfo
		s.Request = store.Request{Keyword: "敏感肌保湿", Category: "测评"}

		send(t, e, s, "不对，重新来")
		if s.Request.Confirmed {
			t.Error("request confirmed on rejection")
		}
		if s.Request.Keyword != "" || s.Request.Category != "" {
			t.Errorf("request fields not cleared: %+v", s.Request)
		}
		if s.Stage != store.StageCollectingNeeds {
			t.Errorf("stage = %s, want collecting_needs", s.Stage)
		}
	})
}

func TestProcessingAdvancesOneStepPerMessage(t *testing.T) {
	e := newTestEngine()
	s := store.NewSession("s")
	s.Stage = store.StageProcessing
	s.Request = store.Request{Keyword: "敏感肌保湿", Category: "测评", Confirmed: true}

	// Turn 1: collect.
	reply := send(t, e, s, "进度如何？")
	if !s.Pipeline.Collected || s.Pipeline.Analyzed {
		t.Fatalf("after turn 1 flags = %+v", s.Pipeline)
	}
	if !strings.Contains(reply.Content, "收集") {
		t.Errorf("collect reply = %q", reply.Content)
	}

	// Turn 2: analyze.
	send(t, e, s, "好了吗")
	if !s.Pipeline.Analyzed || s.Pipeline.Created {
		t.Fatalf("after turn 2 flags = %+v", s.Pipeline)
	}

	// Turn 3: create.
	send(t, e, s, "继续")
	if !s.Pipeline.Created || s.Pipeline.Linked {
		t.Fatalf("after turn 3 flags = %+v", s.Pipeline)
	}

	// Turn 4: link completes and returns the results directly.
	reply = send(t, e, s, "然后呢")
	if !s.Pipeline.Linked {
		t.Fatal("link flag not set after turn 4")
	}
	if s.Stage != store.StageShowingResults {
		t.Errorf("stage = %s, want showing_results", s.Stage)
	}
	if s.Creation.DownloadLink == "" || !strings.Contains(reply.Content, s.Creation.DownloadLink) {
		t.Errorf("results reply missing download link: %q", reply.Content)
	}
	if !strings.Contains(reply.Content, "【分析发现】") {
		t.Errorf("results reply missing findings section: %q", reply.Content)
	}
}

func TestFeedbackAndEnding(t *testing.T) {
	e := newTestEngine()
	s := store.NewSession("s")
	s.Stage = store.StageShowingResults

	send(t, e, s, "看起来不错")
	if s.Stage != store.StageCollectingFeedback {
		t.Fatalf("stage = %s, want collecting_feedback", s.Stage)
	}

	reply := send(t, e, s, "这个不错，但希望图片更好看")
	if s.Stage != store.StageEnding {
		t.Fatalf("stage = %s, want ending", s.Stage)
	}
	if !strings.Contains(reply.Content, "感谢你的反馈") {
		t.Errorf("closing reply = %q", reply.Content)
	}
	if !strings.Contains(reply.Content, "你的建议我已记录") {
		t.Errorf("closing reply missing suggestion acknowledgement: %q", reply.Content)
	}

	// Non-request messages stay in ending.
	send(t, e, s, "再见")
	if s.Stage != store.StageEnding {
		t.Errorf("stage = %s, want ending", s.Stage)
	}
}

func TestEndingNewRequestResetsSession(t *testing.T) {
	e := newTestEngine()
	s := store.NewSession("s")
	s.Stage = store.StageEnding
	s.Request = store.Request{Keyword: "旧关键词", Category: "测评", Confirmed: true}
	s.Pipeline = store.Pipeline{Collected: true, Analyzed: true, Created: true, Linked: true}
	s.Collected.Notes = []store.TrendingNote{{Id: "note1"}}

	reply := send(t, e, s, "帮我做一个复古穿搭分享")
	if !strings.Contains(reply.Content, "小红书爆款内容制作助手") {
		t.Errorf("expected greeting reply, got %q", reply.Content)
	}
	if s.Stage != store.StageCollectingNeeds {
		t.Errorf("stage = %s, want collecting_needs", s.Stage)
	}
	if s.Pipeline != (store.Pipeline{}) {
		t.Errorf("pipeline flags not reset: %+v", s.Pipeline)
	}
	if len(s.Collected.Notes) != 0 {
		t.Error("collected notes not cleared")
	}
	if s.Request != (store.Request{}) {
		t.Errorf("request not cleared: %+v", s.Request)
	}
}

func TestCorruptStageRepairsToGreeting(t *testing.T) {
	e := newTestEngine()
	s := store.NewSession("s")
	s.Stage = store.Stage("Bogus_STAGE")

	reply := send(t, e, s, "你好")
	if !strings.Contains(reply.Content, "小红书爆款内容制作助手") {
		t.Errorf("expected greeting reply, got %q", reply.Content)
	}
	if s.Stage != store.StageCollectingNeeds {
		t.Errorf("stage = %s, want collecting_needs", s.Stage)
	}
}

func TestFullConversationKeepsStageInvariant(t *testing.T) {
	e := newTestEngine()
	s := store.NewSession("s")

	script := []string{
		"你好",
		"我想做敏感肌保湿测评",
		"是的",
		"1", "2", "3", "4",
		"看看结果",
		"很好，谢谢",
		"再见",
	}
	for _, msg := range script {
		send(t, e, s, msg)
		if !s.Stage.IsValid() {
			t.Fatalf("invalid stage %q after %q", s.Stage, msg)
		}
		if s.Stage == store.StageProcessing && !s.Request.Confirmed {
			t.Fatal("entered processing without confirmation")
		}
	}
	if s.Stage != store.StageEnding {
		t.Errorf("final stage = %s, want ending", s.Stage)
	}
}
