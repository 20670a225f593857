package integration

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"rednote-trend-be/internal/bootstrap"
	"rednote-trend-be/internal/config"
	"rednote-trend-be/internal/dto"
	"rednote-trend-be/internal/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *server.Server {
	t.Helper()

	// No step delays so the pipeline turns return immediately.
	t.Setenv("ASSISTANT_STEP_DELAY_MS", "0")
	cfg := config.Load()

	container := bootstrap.NewContainer(cfg)
	return server.New(cfg, container)
}

func sendChat(t *testing.T, srv *server.Server, sessionId, text string) *dto.SendMessageResponse {
	t.Helper()

	body, _ := json.Marshal(dto.SendMessageRequest{Message: text, SessionId: sessionId})
	req := httptest.NewRequest("POST", "/api/assistant/chat", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.GetApp().Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var res dto.SendMessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return &res
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	srv := newTestApp(t)

	body := `{"message": ""}`
	req := httptest.NewRequest("POST", "/api/assistant/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.GetApp().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.NotEmpty(t, payload["error"])
}

func TestSessionLifecycleEndpoints(t *testing.T) {
	srv := newTestApp(t)

	req := httptest.NewRequest("POST", "/api/assistant/session", nil)
	resp, err := srv.GetApp().Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	var created dto.CreateSessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotEmpty(t, created.SessionId)

	reply := sendChat(t, srv, created.SessionId, "你好")
	assert.Equal(t, created.SessionId, reply.SessionId)

	req = httptest.NewRequest("DELETE", "/api/assistant/session/"+created.SessionId, nil)
	resp, err = srv.GetApp().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
}

func TestFullConversationOverHTTP(t *testing.T) {
	srv := newTestApp(t)

	script := []struct {
		text     string
		contains string
	}{
		{"你好", "小红书爆款内容制作助手"},
		{"关键词敏感肌保湿，类目护肤", "确认一下你的需求"},
		{"确认", "收集和分析"},
		{"继续", "已完成爆款笔记收集"},
		{"继续", "分析完成"},
		{"继续", "生成完成"},
		{"继续", "下载链接"},
		{"看一下结果", "反馈"},
		{"很满意", "感谢你的反馈"},
		{"再见", "随时告诉我"},
	}

	sessionId := ""
	for i, turn := range script {
		reply := sendChat(t, srv, sessionId, turn.text)
		if sessionId == "" {
			sessionId = reply.SessionId
		}
		assert.Equal(t, sessionId, reply.SessionId, "turn %d", i+1)
		assert.Contains(t, reply.Response, turn.contains, "turn %d: %s", i+1, turn.text)
	}
}
