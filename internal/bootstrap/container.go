package bootstrap

import (
	"rednote-trend-be/internal/config"
	"rednote-trend-be/internal/constant"
	"rednote-trend-be/internal/controller"
	"rednote-trend-be/internal/pkg/logger"
	"rednote-trend-be/internal/repository/memory"
	"rednote-trend-be/internal/service"
	"rednote-trend-be/pkg/conversation"
	"rednote-trend-be/pkg/grammar"
	"rednote-trend-be/pkg/pipeline"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	AssistantController controller.IAssistantController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Conversation Core
	gen := grammar.New()
	runner := pipeline.NewRunner(gen, cfg.Assistant.StepDelayUnit)
	engine := conversation.NewEngine(runner)

	sessionRepo := memory.NewSessionRepository(cfg.Assistant.SessionTTL)

	// 4. Services
	assistantService := service.NewAssistantService(engine, sessionRepo, pubSub, sysLogger)
	consumerService := service.NewConsumerService(
		pubSub,
		constant.ConversationEventsTopic,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		AssistantController: controller.NewAssistantController(assistantService),

		ConsumerService: consumerService,
	}
}
