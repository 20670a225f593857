package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"rednote-trend-be/internal/constant"
	"rednote-trend-be/internal/dto"
	"rednote-trend-be/internal/repository/memory"
	"rednote-trend-be/pkg/conversation"
	"rednote-trend-be/pkg/grammar"
	"rednote-trend-be/pkg/pipeline"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serviceFixture struct {
	service IAssistantService
	pubSub  *gochannel.GoChannel
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	gen := grammar.NewSeeded(1)
	runner := pipeline.NewRunner(gen, 0)
	engine := conversation.NewEngine(runner)
	sessionRepo := memory.NewSessionRepository(time.Hour)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})

	return &serviceFixture{
		service: NewAssistantService(engine, sessionRepo, pubSub, &noopLogger{}),
		pubSub:  pubSub,
	}
}

type noopLogger struct{}

func (n *noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (n *noopLogger) Info(module, message string, details map[string]interface{})  {}
func (n *noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (n *noopLogger) Error(module, message string, details map[string]interface{}) {}
func (n *noopLogger) Sync() error { return nil }

func TestSendMessageRejectsEmptyMessage(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.SendMessage(context.Background(), &dto.SendMessageRequest{Message: "   "})
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestSendMessageAllocatesSession(t *testing.T) {
	f := newServiceFixture(t)

	res, err := f.service.SendMessage(context.Background(), &dto.SendMessageRequest{Message: "你好"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.SessionId)
	assert.Contains(t, res.Response, "小红书爆款内容制作助手")
}

func TestSendMessageKeepsSessionState(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	first, err := f.service.SendMessage(ctx, &dto.SendMessageRequest{Message: "你好"})
	require.NoError(t, err)

	second, err := f.service.SendMessage(ctx, &dto.SendMessageRequest{
		Message:   "关键词敏感肌保湿，类目护肤",
		SessionId: first.SessionId,
	})
	require.NoError(t, err)
	assert.Equal(t, first.SessionId, second.SessionId)
	assert.Contains(t, second.Response, "确认一下你的需求")
}

func TestCreateSessionReturnsUsableId(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateSession(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, created.SessionId)

	res, err := f.service.SendMessage(ctx, &dto.SendMessageRequest{
		Message:   "你好",
		SessionId: created.SessionId,
	})
	require.NoError(t, err)
	assert.Equal(t, created.SessionId, res.SessionId)
}

func TestResetSessionStartsOver(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	first, err := f.service.SendMessage(ctx, &dto.SendMessageRequest{Message: "你好"})
	require.NoError(t, err)

	_, err = f.service.SendMessage(ctx, &dto.SendMessageRequest{
		Message:   "关键词敏感肌保湿，类目护肤",
		SessionId: first.SessionId,
	})
	require.NoError(t, err)

	require.NoError(t, f.service.ResetSession(ctx, first.SessionId))

	res, err := f.service.SendMessage(ctx, &dto.SendMessageRequest{
		Message:   "随便说点什么",
		SessionId: first.SessionId,
	})
	require.NoError(t, err)
	assert.Contains(t, res.Response, "小红书爆款内容制作助手")
}

func TestSendMessagePublishesStageTransition(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	messages, err := f.pubSub.Subscribe(ctx, constant.ConversationEventsTopic)
	require.NoError(t, err)

	_, err = f.service.SendMessage(ctx, &dto.SendMessageRequest{Message: "你好"})
	require.NoError(t, err)

	select {
	case msg := <-messages:
		var event dto.ConversationEvent
		require.NoError(t, json.Unmarshal(msg.Payload, &event))
		assert.Equal(t, constant.EventStageTransition, event.Type)
		assert.Equal(t, "greeting", event.FromStage)
		assert.Equal(t, "collecting_needs", event.ToStage)
		msg.Ack()
	case <-time.After(time.Second):
		t.Fatal("expected a stage transition event")
	}
}

func TestCompletedStepNamesFlippedFlag(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	first, err := f.service.SendMessage(ctx, &dto.SendMessageRequest{Message: "你好"})
	require.NoError(t, err)
	sessionId := first.SessionId

	turns := []string{"关键词美白精华，类目护肤", "确认"}
	for _, text := range turns {
		_, err = f.service.SendMessage(ctx, &dto.SendMessageRequest{Message: text, SessionId: sessionId})
		require.NoError(t, err)
	}

	messages, err := f.pubSub.Subscribe(ctx, constant.ConversationEventsTopic)
	require.NoError(t, err)

	// Each processing turn completes exactly one pipeline step, in order.
	wantSteps := []string{"collect", "analyze", "create", "link"}
	for _, want := range wantSteps {
		_, err = f.service.SendMessage(ctx, &dto.SendMessageRequest{Message: "继续", SessionId: sessionId})
		require.NoError(t, err)

		found := ""
		deadline := time.After(time.Second)
	drain:
		for {
			select {
			case msg := <-messages:
				var event dto.ConversationEvent
				require.NoError(t, json.Unmarshal(msg.Payload, &event))
				msg.Ack()
				if event.Type == constant.EventPipelineStep {
					found = event.Step
					break drain
				}
			case <-deadline:
				t.Fatalf("no pipeline step event for %s", want)
			}
		}
		if !strings.EqualFold(found, want) {
			t.Fatalf("expected step %s, got %s", want, found)
		}
	}
}
