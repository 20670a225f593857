package dto

import "time"

// SendMessageRequest is one user turn. SessionId is optional: a missing or
// unknown id starts a fresh conversation.
type SendMessageRequest struct {
	Message   string `json:"message"`
	SessionId string `json:"session_id,omitempty"`
}

// SendMessageResponse carries the assistant's reply text plus the session id
// the caller should echo on the next turn.
type SendMessageResponse struct {
	Response  string `json:"response"`
	SessionId string `json:"session_id"`
}

// CreateSessionResponse is returned by the explicit session-create endpoint.
type CreateSessionResponse struct {
	SessionId string `json:"session_id"`
}

// ConversationEvent is the payload published on the in-process event bus for
// stage transitions and pipeline step completions.
type ConversationEvent struct {
	Type      string    `json:"type"`
	SessionId string    `json:"session_id"`
	FromStage string    `json:"from_stage,omitempty"`
	ToStage   string    `json:"to_stage,omitempty"`
	Step      string    `json:"step,omitempty"`
	At        time.Time `json:"at"`
}
