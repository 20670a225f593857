package constant

const (
	// Topic for in-process conversation events consumed by the event logger.
	ConversationEventsTopic = "CONVERSATION_EVENTS"

	// Event types published by the assistant service.
	EventStageTransition = "STAGE_TRANSITION"
	EventPipelineStep    = "PIPELINE_STEP"
	EventSessionReset    = "SESSION_RESET"
)
