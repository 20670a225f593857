package pipeline

import (
	"context"
	"fmt"
	"unicode/utf8"

	"rednote-trend-be/pkg/store"
)

// create authors the final piece from the template grammar, seeded by the
// confirmed keyword/category. Image roles are assigned by position: first is
// the cover, then thirds of the remainder are product, usage and effect.
func (r *Runner) create(_ context.Context, s *store.Session) error {
	keyword := s.Request.Keyword
	category := s.Request.Category

	title := r.gen.CreativeTitle(keyword, category)
	content := r.gen.CreativeContent(keyword, category)

	imageCount := r.gen.IntBetween(5, 8)
	images := make([]store.Image, 0, imageCount)
	for i := 0; i < imageCount; i++ {
		images = append(images, store.Image{
			URL:    fmt.Sprintf("https://example.com/generated_images/%s.jpg", opaqueID()),
			Type:   imageRole(i, imageCount),
			Width:  1080,
			Height: 1920,
		})
	}

	s.Creation = store.Creation{
		Title:     title,
		Content:   content,
		Images:    images,
		Tags:      r.gen.CreativeTags(keyword, category),
		WordCount: utf8.RuneCountInString(content),
	}
	s.Pipeline.Created = true
	return nil
}

func imageRole(index, total int) string {
	switch {
	case index == 0:
		return store.ImageRoleCover
	case index < total/3:
		return store.ImageRoleProduct
	case index < total*2/3:
		return store.ImageRoleUsage
	default:
		return store.ImageRoleEffect
	}
}
