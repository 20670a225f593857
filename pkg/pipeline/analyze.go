package pipeline

import (
	"context"
	"time"

	"rednote-trend-be/pkg/store"
)

// analyze derives the mocked analysis from the collected batch. Findings
// branch on the category family; source ids reference the collected notes.
func (r *Runner) analyze(_ context.Context, s *store.Session) error {
	sourceIds := make([]string, 0, len(s.Collected.Notes))
	for _, note := range s.Collected.Notes {
		sourceIds = append(sourceIds, note.Id)
	}

	s.Analysis = &store.AnalysisResult{
		Id:             "analysis" + opaqueID(),
		Timestamp:      time.Now(),
		SourceNoteIds:  sourceIds,
		KeyFindings:    r.gen.KeyFindings(s.Request.Keyword, s.Request.Category),
		SuccessFactors: r.gen.SuccessFactors(),
	}
	s.Pipeline.Analyzed = true
	return nil
}
