// Package services holds the per-kind repositories: thin orchestration
// over the content store plus attribute validation and the client-side
// orderings each page expects. There are no subscriptions — the backing
// store cannot push changes — so "refresh" is simply calling List again.
package services

import (
	"context"

	"github.com/hearthkeep/hearthkeep/internal/model"
	"github.com/hearthkeep/hearthkeep/internal/query"
	"github.com/hearthkeep/hearthkeep/internal/store"
)

// MemoryService manages memory-wall posts.
type MemoryService struct {
	store store.Store
}

func NewMemoryService(s store.Store) *MemoryService {
	return &MemoryService{store: s}
}

// CreateMemoryRequest carries the memory-wall form fields.
type CreateMemoryRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Author  string   `json:"author"`
	Date    string   `json:"date"`
	Tags    []string `json:"tags,omitempty"`
}

func (s *MemoryService) Create(ctx context.Context, req CreateMemoryRequest) (*model.Record, error) {
	attrs := model.Attributes{
		"title":   req.Title,
		"content": req.Content,
		"author":  req.Author,
		"date":    req.Date,
	}
	if len(req.Tags) > 0 {
		attrs["tags"] = req.Tags
	}
	if err := validateAttributes(model.KindMemory, attrs); err != nil {
		return nil, err
	}
	return s.store.Create(ctx, store.CreateRequest{
		Kind:       model.KindMemory,
		Title:      req.Title,
		Attributes: attrs,
	})
}

// List re-fetches all memories, newest first.
func (s *MemoryService) List(ctx context.Context) ([]*model.Record, error) {
	recs, err := s.store.List(ctx, store.ListOptions{Kind: model.KindMemory})
	if err != nil {
		return nil, err
	}
	query.SortByDateDesc(recs)
	return recs, nil
}

// Update replaces the attributes wholesale; the replacement must itself
// satisfy the kind's required keys.
func (s *MemoryService) Update(ctx context.Context, id string, attrs model.Attributes) (*model.Record, error) {
	if err := validateAttributes(model.KindMemory, attrs); err != nil {
		return nil, err
	}
	return s.store.Update(ctx, id, attrs)
}

func (s *MemoryService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
