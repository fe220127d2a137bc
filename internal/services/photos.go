package services

import (
	"context"
	"io"

	"github.com/hearthkeep/hearthkeep/internal/model"
	"github.com/hearthkeep/hearthkeep/internal/query"
	"github.com/hearthkeep/hearthkeep/internal/store"
)

// PhotoService manages uploaded photos and videos. Unlike marker kinds
// these carry real content and keep their original filename; the kind is
// recovered from the MIME type.
type PhotoService struct {
	store store.Store
}

func NewPhotoService(s store.Store) *PhotoService {
	return &PhotoService{store: s}
}

type UploadPhotoRequest struct {
	Filename    string
	ContentType string
	Content     io.Reader

	Title       string
	Description string
	Date        string
	Location    string
	Tags        []string
}

func (s *PhotoService) Upload(ctx context.Context, req UploadPhotoRequest) (*model.Record, error) {
	attrs := model.Attributes{}
	if req.Title != "" {
		attrs["title"] = req.Title
	}
	if req.Description != "" {
		attrs["description"] = req.Description
	}
	if req.Date != "" {
		attrs["date"] = req.Date
	}
	if req.Location != "" {
		attrs["location"] = req.Location
	}
	if len(req.Tags) > 0 {
		attrs["tags"] = req.Tags
	}
	return s.store.Create(ctx, store.CreateRequest{
		Kind:        model.KindPhoto,
		Filename:    req.Filename,
		ContentType: req.ContentType,
		Content:     req.Content,
		Attributes:  attrs,
	})
}

// List returns media newest-first, optionally narrowed to images or
// videos.
func (s *PhotoService) List(ctx context.Context, media store.MediaFilter) ([]*model.Record, error) {
	recs, err := s.store.List(ctx, store.ListOptions{Kind: model.KindPhoto, Media: media})
	if err != nil {
		return nil, err
	}
	query.SortByCreatedDesc(recs)
	return recs, nil
}

func (s *PhotoService) Update(ctx context.Context, id string, attrs model.Attributes) (*model.Record, error) {
	return s.store.Update(ctx, id, attrs)
}

func (s *PhotoService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// Link makes the photo publicly fetchable and returns the content URL.
// The grant is eventually consistent; the store probes before returning
// but the link may still lag for slow propagation.
func (s *PhotoService) Link(ctx context.Context, id string) (string, error) {
	return s.store.PublicLink(ctx, id)
}
