package conversation

import (
	"context"

	"rednote-trend-be/pkg/heuristics"
	"rednote-trend-be/pkg/pipeline"
	"rednote-trend-be/pkg/store"
)

// ReplyTypeText is the only reply type in the current scope; generated images
// are referenced by URL inside the text, never returned as binary payloads.
const ReplyTypeText = "text"

// Reply is the assistant's answer to one message.
type Reply struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

func text(content string) Reply {
	return Reply{Type: ReplyTypeText, Content: content}
}

// Engine dispatches each inbound message to the handler for the session's
// current stage. Handlers mutate the session and return the reply; the engine
// itself holds no per-conversation state, so one engine serves all sessions.
type Engine struct {
	runner *pipeline.Runner
}

// NewEngine creates an engine driving the given pipeline runner.
func NewEngine(runner *pipeline.Runner) *Engine {
	return &Engine{runner: runner}
}

// HandleMessage processes one user message against the session and returns
// the reply. A session carrying a stage outside the defined set is treated as
// corrupt and silently repaired to greeting; the stage type is closed, so
// this is defense in depth for state that crossed a serialization boundary.
func (e *Engine) HandleMessage(ctx context.Context, s *store.Session, message string) (Reply, error) {
	if !s.Stage.IsValid() {
		s.Stage = store.StageGreeting
	}

	switch s.Stage {
	case store.StageGreeting:
		return e.handleGreeting(s)
	case store.StageCollectingNeeds:
		return e.handleCollectingNeeds(s, message)
	case store.StageConfirmingInfo:
		return e.handleConfirmingInfo(s, message)
	case store.StageProcessing:
		return e.handleProcessing(ctx, s)
	case store.StageShowingResults:
		return e.handleShowingResults(s)
	case store.StageCollectingFeedback:
		return e.handleCollectingFeedback(s, message)
	default: // StageEnding
		return e.handleEnding(s, message)
	}
}

// handleGreeting resets the session and introduces the assistant.
func (e *Engine) handleGreeting(s *store.Session) (Reply, error) {
	s.Reset()
	s.Stage = store.StageCollectingNeeds
	return text(greetingReply), nil
}

// handleCollectingNeeds extracts the keyword and category and branches on
// which of the two the current message produced.
func (e *Engine) handleCollectingNeeds(s *store.Session, message string) (Reply, error) {
	keyword, category := heuristics.ExtractKeywordAndCategory(message)

	switch {
	case keyword != "" && category != "":
		s.Request.Keyword = keyword
		s.Request.Category = category
		s.Stage = store.StageConfirmingInfo
		return text(confirmInfoReply(keyword, category)), nil
	case keyword != "":
		s.Request.Keyword = keyword
		return text(askCategoryReply(keyword)), nil
	case category != "":
		s.Request.Category = category
		return text(askKeywordReply(category)), nil
	default:
		return text(askBothReply), nil
	}
}

// handleConfirmingInfo gates entry into processing on an affirmative
// message. A non-confirmation retreats to collecting_needs and clears the
// accumulated request fields.
func (e *Engine) handleConfirmingInfo(s *store.Session, message string) (Reply, error) {
	if heuristics.IsConfirming(message) {
		s.Request.Confirmed = true
		s.Stage = store.StageProcessing
		return text(processingStartReply(s.Request.Keyword, s.Request.Category)), nil
	}

	s.Stage = store.StageCollectingNeeds
	s.Request.Keyword = ""
	s.Request.Category = ""
	return text(retreatReply), nil
}

// handleProcessing advances exactly one pending pipeline step per message and
// reports progress. The turn that completes the link step returns the full
// results message itself and lands in showing_results; the "link ready"
// notice is intentionally folded into the results, matching the scripted
// flow.
func (e *Engine) handleProcessing(ctx context.Context, s *store.Session) (Reply, error) {
	if e.runner.Completed(s) {
		s.Stage = store.StageShowingResults
		return text(resultsReply(s)), nil
	}

	name, err := e.runner.Advance(ctx, s)
	if err != nil {
		if ctx.Err() != nil {
			return Reply{}, err
		}
		// Reserved fault path: the step's flag is still false, so the next
		// message retries the same step.
		return text(stepFailedReply), nil
	}

	switch name {
	case pipeline.StepCollect:
		return text(collectDoneReply(s.Collected.TotalFound, s.Collected.SelectedCount)), nil
	case pipeline.StepAnalyze:
		return text(analyzeDoneReply), nil
	case pipeline.StepCreate:
		return text(createDoneReply), nil
	default: // StepLink
		s.Stage = store.StageShowingResults
		return text(resultsReply(s)), nil
	}
}

// handleShowingResults asks for feedback on any follow-up message.
func (e *Engine) handleShowingResults(s *store.Session) (Reply, error) {
	s.Stage = store.StageCollectingFeedback
	return text(feedbackRequestReply), nil
}

// handleCollectingFeedback classifies the feedback and closes out.
func (e *Engine) handleCollectingFeedback(s *store.Session, message string) (Reply, error) {
	s.Stage = store.StageEnding
	fb := heuristics.AnalyzeFeedback(message)
	return text(closingReply(fb.ResponseMessage)), nil
}

// handleEnding either starts over on a new request or stays idle.
func (e *Engine) handleEnding(s *store.Session, message string) (Reply, error) {
	if heuristics.IsNewRequest(message) {
		return e.handleGreeting(s)
	}
	return text(idleReply), nil
}
