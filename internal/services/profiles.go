package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/hearthkeep/hearthkeep/internal/model"
	"github.com/hearthkeep/hearthkeep/internal/store"
)

// ProfileService manages per-person profiles.
type ProfileService struct {
	store store.Store
}

func NewProfileService(s store.Store) *ProfileService {
	return &ProfileService{store: s}
}

type CreateProfileRequest struct {
	Name   string `json:"name"`
	Bio    string `json:"bio,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

func (s *ProfileService) Create(ctx context.Context, req CreateProfileRequest) (*model.Record, error) {
	attrs := model.Attributes{"name": req.Name}
	if req.Bio != "" {
		attrs["bio"] = req.Bio
	}
	if req.Avatar != "" {
		attrs["avatar"] = req.Avatar
	}
	if err := validateAttributes(model.KindProfile, attrs); err != nil {
		return nil, err
	}
	return s.store.Create(ctx, store.CreateRequest{
		Kind:       model.KindProfile,
		Title:      req.Name,
		Attributes: attrs,
	})
}

// GetByName finds the profile whose name attribute matches,
// case-insensitively. Names are not unique by construction; the first
// match wins.
func (s *ProfileService) GetByName(ctx context.Context, name string) (*model.Record, error) {
	recs, err := s.store.List(ctx, store.ListOptions{Kind: model.KindProfile})
	if err != nil {
		return nil, err
	}
	for _, r := range recs {
		if strings.EqualFold(r.Attributes.String("name"), name) {
			return r, nil
		}
	}
	return nil, fmt.Errorf("profile %q: %w", name, model.ErrNotFound)
}

// Update merges a partial patch over the stored attributes; keys absent
// from patch keep their current value.
func (s *ProfileService) Update(ctx context.Context, id string, patch model.Attributes) (*model.Record, error) {
	recs, err := s.store.List(ctx, store.ListOptions{Kind: model.KindProfile})
	if err != nil {
		return nil, err
	}
	var current *model.Record
	for _, r := range recs {
		if r.ID == id {
			current = r
			break
		}
	}
	if current == nil {
		return nil, fmt.Errorf("profile %s: %w", id, model.ErrNotFound)
	}

	merged := model.Attributes{}
	for k, v := range current.Attributes {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	if err := validateAttributes(model.KindProfile, merged); err != nil {
		return nil, err
	}
	return s.store.Update(ctx, id, merged)
}
