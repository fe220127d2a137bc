package services

import (
	"context"

	"github.com/hearthkeep/hearthkeep/internal/model"
	"github.com/hearthkeep/hearthkeep/internal/query"
	"github.com/hearthkeep/hearthkeep/internal/store"
)

// EventService manages calendar events.
type EventService struct {
	store store.Store
}

func NewEventService(s store.Store) *EventService {
	return &EventService{store: s}
}

type CreateEventRequest struct {
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Location    string   `json:"location,omitempty"`
	Description string   `json:"description,omitempty"`
	Attendees   []string `json:"attendees,omitempty"`
}

func (s *EventService) Create(ctx context.Context, req CreateEventRequest) (*model.Record, error) {
	attrs := model.Attributes{
		"title": req.Title,
		"date":  req.Date,
	}
	if req.Location != "" {
		attrs["location"] = req.Location
	}
	if req.Description != "" {
		attrs["description"] = req.Description
	}
	if len(req.Attendees) > 0 {
		attrs["attendees"] = req.Attendees
	}
	if err := validateAttributes(model.KindEvent, attrs); err != nil {
		return nil, err
	}
	return s.store.Create(ctx, store.CreateRequest{
		Kind:       model.KindEvent,
		Title:      req.Title,
		Attributes: attrs,
	})
}

// List returns events in calendar order, soonest first.
func (s *EventService) List(ctx context.Context) ([]*model.Record, error) {
	recs, err := s.store.List(ctx, store.ListOptions{Kind: model.KindEvent})
	if err != nil {
		return nil, err
	}
	query.SortByDateAsc(recs)
	return recs, nil
}

func (s *EventService) Update(ctx context.Context, id string, attrs model.Attributes) (*model.Record, error) {
	if err := validateAttributes(model.KindEvent, attrs); err != nil {
		return nil, err
	}
	return s.store.Update(ctx, id, attrs)
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
