package service

import (
	"context"
	"encoding/json"

	"rednote-trend-be/internal/dto"
	"rednote-trend-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the conversation events topic and records each
// event in the structured log. It is the audit trail for stage transitions
// and pipeline progress.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	sysLogger logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		sysLogger: sysLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var event dto.ConversationEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.sysLogger.Error("consumer", "failed to unmarshal event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid payloads are not retryable
		return
	}

	cs.sysLogger.Info("consumer", "conversation event", map[string]interface{}{
		"type":       event.Type,
		"session_id": event.SessionId,
		"from_stage": event.FromStage,
		"to_stage":   event.ToStage,
		"step":       event.Step,
	})

	msg.Ack()
}
