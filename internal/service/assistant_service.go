package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"rednote-trend-be/internal/constant"
	"rednote-trend-be/internal/dto"
	"rednote-trend-be/internal/pkg/logger"
	"rednote-trend-be/internal/repository/memory"
	"rednote-trend-be/pkg/conversation"
	"rednote-trend-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// ErrEmptyMessage is returned when a turn arrives without message text. The
// controller maps it to a client error before the conversation core is
// reached.
var ErrEmptyMessage = errors.New("message is required")

// IAssistantService defines the conversational assistant service interface
type IAssistantService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	SendMessage(ctx context.Context, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	ResetSession(ctx context.Context, sessionId string) error
}

// assistantService owns the session map and serializes turns per session.
// Each session is exclusively owned by one conversation; concurrent callers
// on the same id queue behind its lock, distinct sessions are independent.
type assistantService struct {
	engine      *conversation.Engine
	sessionRepo *memory.SessionRepository
	pubSub      *gochannel.GoChannel
	sysLogger   logger.ILogger

	locks sync.Map // session id -> *sync.Mutex
}

// NewAssistantService creates the assistant service.
func NewAssistantService(
	engine *conversation.Engine,
	sessionRepo *memory.SessionRepository,
	pubSub *gochannel.GoChannel,
	sysLogger logger.ILogger,
) IAssistantService {
	return &assistantService{
		engine:      engine,
		sessionRepo: sessionRepo,
		pubSub:      pubSub,
		sysLogger:   sysLogger,
	}
}

// CreateSession allocates a fresh conversation positioned at greeting.
func (as *assistantService) CreateSession(_ context.Context) (*dto.CreateSessionResponse, error) {
	session := store.NewSession(uuid.NewString())
	as.sessionRepo.Save(session)

	as.sysLogger.Info("assistant", "session created", map[string]interface{}{
		"session_id": session.ID,
	})
	return &dto.CreateSessionResponse{SessionId: session.ID}, nil
}

// SendMessage processes one user turn to completion. A missing or unknown
// session id starts a fresh conversation, which matches first-message
// behavior.
func (as *assistantService) SendMessage(ctx context.Context, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	if strings.TrimSpace(request.Message) == "" {
		return nil, ErrEmptyMessage
	}

	sessionId := request.SessionId
	if sessionId == "" {
		sessionId = uuid.NewString()
	}

	lock := as.sessionLock(sessionId)
	lock.Lock()
	defer lock.Unlock()

	session, found := as.sessionRepo.Get(sessionId)
	if !found {
		session = store.NewSession(sessionId)
	}

	fromStage := session.Stage
	fromFlags := session.Pipeline

	reply, err := as.engine.HandleMessage(ctx, session, request.Message)
	if err != nil {
		as.sysLogger.Error("assistant", "turn aborted", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return nil, err
	}

	as.sessionRepo.Save(session)
	as.publishTurnEvents(sessionId, fromStage, fromFlags, session)

	return &dto.SendMessageResponse{
		Response:  reply.Content,
		SessionId: sessionId,
	}, nil
}

// ResetSession drops the cached conversation; the next message starts over
// at greeting.
func (as *assistantService) ResetSession(_ context.Context, sessionId string) error {
	as.sessionRepo.Delete(sessionId)
	as.publish(dto.ConversationEvent{
		Type:      constant.EventSessionReset,
		SessionId: sessionId,
		At:        time.Now(),
	})
	return nil
}

func (as *assistantService) sessionLock(sessionId string) *sync.Mutex {
	actual, _ := as.locks.LoadOrStore(sessionId, &sync.Mutex{})
	return actual.(*sync.Mutex)
}

// publishTurnEvents emits a stage-transition event when the stage moved and a
// pipeline-step event for a flag that flipped this turn.
func (as *assistantService) publishTurnEvents(sessionId string, fromStage store.Stage, fromFlags store.Pipeline, session *store.Session) {
	now := time.Now()

	if fromStage != session.Stage {
		as.publish(dto.ConversationEvent{
			Type:      constant.EventStageTransition,
			SessionId: sessionId,
			FromStage: string(fromStage),
			ToStage:   string(session.Stage),
			At:        now,
		})
	}

	if step := completedStep(fromFlags, session.Pipeline); step != "" {
		as.publish(dto.ConversationEvent{
			Type:      constant.EventPipelineStep,
			SessionId: sessionId,
			Step:      step,
			At:        now,
		})
	}
}

// completedStep names the single flag that flipped between two snapshots.
func completedStep(before, after store.Pipeline) string {
	switch {
	case !before.Collected && after.Collected:
		return "collect"
	case !before.Analyzed && after.Analyzed:
		return "analyze"
	case !before.Created && after.Created:
		return "create"
	case !before.Linked && after.Linked:
		return "link"
	}
	return ""
}

func (as *assistantService) publish(event dto.ConversationEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		as.sysLogger.Error("assistant", "failed to marshal event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := as.pubSub.Publish(constant.ConversationEventsTopic, msg); err != nil {
		as.sysLogger.Warn("assistant", "failed to publish event", map[string]interface{}{
			"error": err.Error(),
			"type":  event.Type,
		})
	}
}
