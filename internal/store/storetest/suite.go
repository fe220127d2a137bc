// Package storetest holds a compliance suite any store.Store
// implementation must pass, plus an in-memory fake for tests higher up
// the stack.
package storetest

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/hearthkeep/hearthkeep/internal/model"
	"github.com/hearthkeep/hearthkeep/internal/store"
)

// Run exercises a minimal compliance suite against a store.Store
// implementation. makeStore must return a clean, isolated store.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	title := "suite " + uuid.New().String()[:8]

	// Create a marker record.
	rec, err := s.Create(ctx, store.CreateRequest{
		Kind:       model.KindMemory,
		Title:      title,
		Attributes: model.Attributes{"title": title, "content": "c", "author": "a", "date": "2024-01-01"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.ID == "" {
		t.Fatalf("Create: empty id")
	}
	if rec.Kind != model.KindMemory {
		t.Fatalf("Create: kind=%s", rec.Kind)
	}

	// Typed listing sees it; a different kind does not.
	if lst, err := s.List(ctx, store.ListOptions{Kind: model.KindMemory}); err != nil || len(lst) != 1 {
		t.Fatalf("List(memory): n=%d err=%v", len(lst), err)
	}
	if lst, err := s.List(ctx, store.ListOptions{Kind: model.KindEvent}); err != nil || len(lst) != 0 {
		t.Fatalf("List(event): n=%d err=%v", len(lst), err)
	}

	// Update replaces attributes, preserves identity and kind.
	upd, err := s.Update(ctx, rec.ID, model.Attributes{"title": title, "content": "c2", "author": "a", "date": "2024-01-02"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if upd.ID != rec.ID || upd.Kind != rec.Kind {
		t.Fatalf("Update changed identity: %+v", upd)
	}
	if upd.Attributes.String("content") != "c2" {
		t.Fatalf("Update did not apply: %+v", upd.Attributes)
	}

	// Delete removes it from subsequent listings.
	if err := s.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if lst, err := s.List(ctx, store.ListOptions{Kind: model.KindMemory}); err != nil || len(lst) != 0 {
		t.Fatalf("List after delete: n=%d err=%v", len(lst), err)
	}

	// Gone ids surface ErrNotFound on every mutating operation.
	if err := s.Delete(ctx, rec.ID); !model.IsNotFound(err) {
		t.Fatalf("Delete(gone): want ErrNotFound, got %v", err)
	}
	if _, err := s.Update(ctx, rec.ID, model.Attributes{"title": "x"}); !model.IsNotFound(err) {
		t.Fatalf("Update(gone): want ErrNotFound, got %v", err)
	}
}
