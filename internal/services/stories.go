package services

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/hearthkeep/hearthkeep/internal/model"
	"github.com/hearthkeep/hearthkeep/internal/query"
	"github.com/hearthkeep/hearthkeep/internal/store"
)

// StoryService manages illustrated stories: a marker record plus any
// number of uploaded images referenced from its attributes.
type StoryService struct {
	store store.Store
	log   zerolog.Logger
}

func NewStoryService(s store.Store, log zerolog.Logger) *StoryService {
	return &StoryService{store: s, log: log}
}

// ImageUpload is one attached image for a story.
type ImageUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

type CreateStoryRequest struct {
	Title   string
	Content string
	Author  string
	Date    string
	Tags    []string
	Images  []ImageUpload
}

// Create validates first, then uploads all images as one unordered
// concurrent batch, then writes the story marker. The batch is
// all-or-nothing: any failed upload cancels the rest, exactly one error
// surfaces, and no marker is created — a story never exists with missing
// images. Images that did land before the failure stay behind as orphans
// (logged; a human deletes them).
func (s *StoryService) Create(ctx context.Context, req CreateStoryRequest) (*model.Record, error) {
	attrs := model.Attributes{
		"title":   req.Title,
		"content": req.Content,
		"author":  req.Author,
		"date":    req.Date,
	}
	if len(req.Tags) > 0 {
		attrs["tags"] = req.Tags
	}
	if err := validateAttributes(model.KindStory, attrs); err != nil {
		return nil, err
	}

	imageIDs := make([]string, len(req.Images))
	g, gctx := errgroup.WithContext(ctx)
	for i, img := range req.Images {
		i, img := i, img
		g.Go(func() error {
			rec, err := s.store.Create(gctx, store.CreateRequest{
				Kind:        model.KindPhoto,
				Filename:    img.Filename,
				ContentType: img.ContentType,
				Content:     img.Content,
				Attributes:  model.Attributes{"title": req.Title},
			})
			if err != nil {
				return err
			}
			imageIDs[i] = rec.ID
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Warn().Str("story", req.Title).Err(err).
			Msg("image batch failed, story not created; completed uploads remain orphaned")
		return nil, err
	}
	if len(imageIDs) > 0 {
		attrs["images"] = imageIDs
	}

	return s.store.Create(ctx, store.CreateRequest{
		Kind:       model.KindStory,
		Title:      req.Title,
		Attributes: attrs,
	})
}

func (s *StoryService) List(ctx context.Context) ([]*model.Record, error) {
	recs, err := s.store.List(ctx, store.ListOptions{Kind: model.KindStory})
	if err != nil {
		return nil, err
	}
	query.SortByDateDesc(recs)
	return recs, nil
}

func (s *StoryService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
