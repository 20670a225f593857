package store

import "time"

// Stage names the phase of the scripted conversation. Exactly one stage is
// active per session.
type Stage string

const (
	StageGreeting           Stage = "greeting"
	StageCollectingNeeds    Stage = "collecting_needs"
	StageConfirmingInfo     Stage = "confirming_info"
	StageProcessing         Stage = "processing"
	StageShowingResults     Stage = "showing_results"
	StageCollectingFeedback Stage = "collecting_feedback"
	StageEnding             Stage = "ending"
)

// IsValid reports whether s is one of the seven defined stages. Anything else
// is treated as a corrupt session and repaired to greeting by the engine.
func (s Stage) IsValid() bool {
	switch s {
	case StageGreeting, StageCollectingNeeds, StageConfirmingInfo,
		StageProcessing, StageShowingResults, StageCollectingFeedback,
		StageEnding:
		return true
	}
	return false
}

// Image roles, assigned by position within the generated image sequence.
const (
	ImageRoleCover   = "cover"
	ImageRoleProduct = "product"
	ImageRoleUsage   = "usage"
	ImageRoleEffect  = "effect"
)

// Request accumulates the user's intent across the collecting/confirming
// stages. Confirmed is only ever set true in the confirming_info stage.
type Request struct {
	Keyword   string `json:"keyword"`
	Category  string `json:"category"`
	Confirmed bool   `json:"confirmed"`
}

// Pipeline tracks the four mock backend steps. Each flag flips false->true
// exactly once per session, strictly in Collected -> Analyzed -> Created ->
// Linked order, and never resets except via Session.Reset.
type Pipeline struct {
	Collected bool `json:"collected"`
	Analyzed  bool `json:"analyzed"`
	Created   bool `json:"created"`
	Linked    bool `json:"linked"`
}

// Author is the synthetic creator of a trending note.
type Author struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	Followers int    `json:"followers"`
}

// Comment is one of a note's top comments.
type Comment struct {
	User    string `json:"user"`
	Content string `json:"content"`
}

// Engagement holds the mocked interaction counters of a trending note.
type Engagement struct {
	Likes       int       `json:"likes"`
	Collects    int       `json:"collects"`
	Comments    int       `json:"comments"`
	TopComments []Comment `json:"top_comments"`
}

// TrendingNote is a synthetic record standing in for a real retrieved post.
// Notes are generated once during the collect step and never mutated after.
type TrendingNote struct {
	Id          string     `json:"id"`
	Title       string     `json:"title"`
	Author      Author     `json:"author"`
	PublishTime time.Time  `json:"publish_time"`
	Category    string     `json:"category"`
	Content     string     `json:"content"`
	Images      []string   `json:"images"`
	Tags        []string   `json:"tags"`
	Engagement  Engagement `json:"engagement"`
}

// Collected holds the output of the collect step.
type Collected struct {
	Notes         []TrendingNote `json:"notes"`
	TotalFound    int            `json:"total_found"`
	SelectedCount int            `json:"selected_count"`
}

// AnalysisResult is the output of the analyze step. It stays nil on the
// session until that step has run.
type AnalysisResult struct {
	Id             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	SourceNoteIds  []string  `json:"source_note_ids"`
	KeyFindings    []string  `json:"key_findings"` // always length 4
	SuccessFactors []string  `json:"success_factors"`
}

// Image is a generated placeholder image reference. Dimensions are fixed to
// the portrait format the platform expects.
type Image struct {
	URL    string `json:"url"`
	Type   string `json:"type"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Creation is the authored piece produced by the create and link steps.
type Creation struct {
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Images       []Image  `json:"images"`
	Tags         []string `json:"tags"`
	WordCount    int      `json:"word_count"`
	DownloadLink string   `json:"download_link"`
	PreviewLink  string   `json:"preview_link"`
}

// Session is the per-conversation state, exclusively owned by one
// conversation and mutated only through the stage handlers. It lives in the
// in-memory repository for the process lifetime; there is no persistence.
type Session struct {
	ID        string          `json:"id"`
	Stage     Stage           `json:"stage"`
	Request   Request         `json:"request"`
	Pipeline  Pipeline        `json:"pipeline"`
	Collected Collected       `json:"collected"`
	Analysis  *AnalysisResult `json:"analysis,omitempty"`
	Creation  Creation        `json:"creation"`
}

// NewSession creates a fresh session positioned at the greeting stage.
func NewSession(id string) *Session {
	return &Session{ID: id, Stage: StageGreeting}
}

// Reset restores the session to its initial greeting state, keeping only the
// session identity. Used on first contact and on the ending -> greeting
// re-entry edge.
func (s *Session) Reset() {
	id := s.ID
	*s = Session{ID: id, Stage: StageGreeting}
}
