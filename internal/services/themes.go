package services

import (
	"context"

	"github.com/hearthkeep/hearthkeep/internal/model"
	"github.com/hearthkeep/hearthkeep/internal/store"
)

// defaultTheme is returned before anyone has picked one.
const defaultTheme = "light"

// ThemeService persists the single site-wide theme choice.
type ThemeService struct {
	store store.Store
}

func NewThemeService(s store.Store) *ThemeService {
	return &ThemeService{store: s}
}

// Get returns the stored theme, or the default when none has been set.
// Duplicate theme records can exist if two writers raced; the first one
// listed wins, same as every other slug collision.
func (s *ThemeService) Get(ctx context.Context) (string, error) {
	recs, err := s.store.List(ctx, store.ListOptions{Kind: model.KindTheme})
	if err != nil {
		return "", err
	}
	if len(recs) == 0 {
		return defaultTheme, nil
	}
	if t := recs[0].Attributes.String("theme"); t != "" {
		return t, nil
	}
	return defaultTheme, nil
}

// Set updates the existing theme record in place, creating it on first
// use.
func (s *ThemeService) Set(ctx context.Context, theme string) error {
	attrs := model.Attributes{"theme": theme}
	if err := validateAttributes(model.KindTheme, attrs); err != nil {
		return err
	}
	recs, err := s.store.List(ctx, store.ListOptions{Kind: model.KindTheme})
	if err != nil {
		return err
	}
	if len(recs) > 0 {
		_, err = s.store.Update(ctx, recs[0].ID, attrs)
		return err
	}
	_, err = s.store.Create(ctx, store.CreateRequest{
		Kind:       model.KindTheme,
		Title:      "site",
		Attributes: attrs,
	})
	return err
}
