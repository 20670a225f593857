package pipeline

import (
	"context"
	"fmt"
	"time"

	"rednote-trend-be/pkg/store"
)

// collect fabricates the trending-note batch. A real build would call the
// platform search API here; this one synthesizes the batch locally.
func (r *Runner) collect(_ context.Context, s *store.Session) error {
	keyword := s.Request.Keyword
	category := s.Request.Category

	totalFound := r.gen.IntBetween(20, 50)
	selected := r.gen.IntBetween(5, 10)

	notes := make([]store.TrendingNote, 0, selected)
	for i := 0; i < selected; i++ {
		notes = append(notes, r.fabricateNote(keyword, category, i))
	}

	s.Collected = store.Collected{
		Notes:         notes,
		TotalFound:    totalFound,
		SelectedCount: selected,
	}
	s.Pipeline.Collected = true
	return nil
}

func (r *Runner) fabricateNote(keyword, category string, index int) store.TrendingNote {
	imageCount := r.gen.IntBetween(3, 8)
	images := make([]string, 0, imageCount)
	for i := 0; i < imageCount; i++ {
		images = append(images, fmt.Sprintf("https://example.com/images/%s.jpg", opaqueID()))
	}

	comments := make([]store.Comment, 0, 3)
	for i := 0; i < 3; i++ {
		comments = append(comments, store.Comment{
			User:    "用户" + opaqueID()[:6],
			Content: r.gen.Comment(),
		})
	}

	return store.TrendingNote{
		Id:    "note" + opaqueID(),
		Title: r.gen.NoteTitle(keyword, category, index),
		Author: store.Author{
			Id:        "user" + opaqueID(),
			Name:      r.gen.AuthorName(),
			Followers: r.gen.IntBetween(1000, 51000),
		},
		PublishTime: time.Now().AddDate(0, 0, -r.gen.IntBetween(0, 30)),
		Category:    category,
		Content:     r.gen.NoteContent(keyword, category),
		Images:      images,
		Tags:        r.gen.NoteTags(keyword, category),
		Engagement: store.Engagement{
			Likes:       r.gen.IntBetween(1000, 6000),
			Collects:    r.gen.IntBetween(500, 2500),
			Comments:    r.gen.IntBetween(50, 550),
			TopComments: comments,
		},
	}
}
