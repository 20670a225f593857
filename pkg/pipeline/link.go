package pipeline

import (
	"context"

	"rednote-trend-be/pkg/store"
)

// link mints the download and preview URLs. A real build would upload the
// content package to object storage first.
func (r *Runner) link(_ context.Context, s *store.Session) error {
	s.Creation.DownloadLink = "https://example.com/download/" + opaqueID()
	s.Creation.PreviewLink = "https://example.com/preview/" + opaqueID()
	s.Pipeline.Linked = true
	return nil
}
