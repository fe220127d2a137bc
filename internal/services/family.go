package services

import (
	"context"

	"github.com/hearthkeep/hearthkeep/internal/model"
	"github.com/hearthkeep/hearthkeep/internal/query"
	"github.com/hearthkeep/hearthkeep/internal/store"
)

// FamilyService manages family-tree members.
type FamilyService struct {
	store store.Store
}

func NewFamilyService(s store.Store) *FamilyService {
	return &FamilyService{store: s}
}

type AddFamilyMemberRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birthDate,omitempty"`
	DeathDate string `json:"deathDate,omitempty"`
	Bio       string `json:"bio,omitempty"`

	// Relationships maps relation labels to member ids, e.g.
	// {"parent": "<id>", "spouse": "<id>"}. Referential integrity is the
	// family's problem, not the store's.
	Relationships map[string]any `json:"relationships,omitempty"`
}

func (s *FamilyService) Add(ctx context.Context, req AddFamilyMemberRequest) (*model.Record, error) {
	attrs := model.Attributes{"name": req.Name}
	if req.BirthDate != "" {
		attrs["birthDate"] = req.BirthDate
	}
	if req.DeathDate != "" {
		attrs["deathDate"] = req.DeathDate
	}
	if req.Bio != "" {
		attrs["bio"] = req.Bio
	}
	if len(req.Relationships) > 0 {
		attrs["relationships"] = req.Relationships
	}
	if err := validateAttributes(model.KindFamilyMember, attrs); err != nil {
		return nil, err
	}
	return s.store.Create(ctx, store.CreateRequest{
		Kind:       model.KindFamilyMember,
		Title:      req.Name,
		Attributes: attrs,
	})
}

// List returns members alphabetically by name.
func (s *FamilyService) List(ctx context.Context) ([]*model.Record, error) {
	recs, err := s.store.List(ctx, store.ListOptions{Kind: model.KindFamilyMember})
	if err != nil {
		return nil, err
	}
	query.SortByName(recs)
	return recs, nil
}

func (s *FamilyService) Update(ctx context.Context, id string, attrs model.Attributes) (*model.Record, error) {
	if err := validateAttributes(model.KindFamilyMember, attrs); err != nil {
		return nil, err
	}
	return s.store.Update(ctx, id, attrs)
}

func (s *FamilyService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
