package storetest

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/hearthkeep/hearthkeep/internal/model"
	"github.com/hearthkeep/hearthkeep/internal/store"
)

// Fake is an in-memory store.Store for tests above the adapter layer.
// Marker creates count under op "create", content uploads under
// "upload"; FailWith injects an error for an op, Calls counts attempts.
type Fake struct {
	mu    sync.Mutex
	seq   int
	clock time.Time
	byID  map[string]*model.Record
	order []string

	Shared   map[string]bool
	Calls    map[string]int
	FailWith map[string]error
}

var _ store.Store = (*Fake)(nil)

func NewFake() *Fake {
	return &Fake{
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		byID:     make(map[string]*model.Record),
		order:    nil,
		Shared:   make(map[string]bool),
		Calls:    make(map[string]int),
		FailWith: make(map[string]error),
	}
}

func (f *Fake) op(name string) error {
	f.Calls[name]++
	return f.FailWith[name]
}

func (f *Fake) Create(ctx context.Context, req store.CreateRequest) (*model.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	op := "create"
	if req.Content != nil {
		op = "upload"
	}
	if err := f.op(op); err != nil {
		return nil, err
	}
	if req.Content != nil {
		if _, err := io.Copy(io.Discard, req.Content); err != nil {
			return nil, err
		}
	}
	f.seq++
	f.clock = f.clock.Add(time.Minute)
	name := req.Filename
	if name == "" {
		name = strings.ToLower(req.Title) + "." + string(req.Kind)
	}
	rec := &model.Record{
		ID:          fmt.Sprintf("rec-%04d", f.seq),
		Kind:        req.Kind,
		Name:        name,
		Attributes:  copyAttrs(req.Attributes),
		MIMEType:    req.ContentType,
		ViewLink:    "https://fake.example/view/" + fmt.Sprintf("rec-%04d", f.seq),
		ContentLink: "https://fake.example/dl/" + fmt.Sprintf("rec-%04d", f.seq),
		CreatedTime: f.clock,
	}
	f.byID[rec.ID] = rec
	f.order = append(f.order, rec.ID)
	return copyRecord(rec), nil
}

func (f *Fake) List(ctx context.Context, opts store.ListOptions) ([]*model.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.op("list"); err != nil {
		return nil, err
	}
	out := make([]*model.Record, 0, len(f.order))
	for _, id := range f.order {
		rec, ok := f.byID[id]
		if !ok {
			continue
		}
		if opts.Kind != "" && rec.Kind != opts.Kind {
			continue
		}
		if opts.Media == store.MediaImage && !strings.HasPrefix(rec.MIMEType, "image/") {
			continue
		}
		if opts.Media == store.MediaVideo && !strings.HasPrefix(rec.MIMEType, "video/") {
			continue
		}
		out = append(out, copyRecord(rec))
	}
	return out, nil
}

func (f *Fake) Update(ctx context.Context, id string, attrs model.Attributes) (*model.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.op("update"); err != nil {
		return nil, err
	}
	rec, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("update %s: %w", id, model.ErrNotFound)
	}
	rec.Attributes = copyAttrs(attrs)
	return copyRecord(rec), nil
}

func (f *Fake) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.op("delete"); err != nil {
		return err
	}
	if _, ok := f.byID[id]; !ok {
		return fmt.Errorf("delete %s: %w", id, model.ErrNotFound)
	}
	delete(f.byID, id)
	return nil
}

func (f *Fake) PublicLink(ctx context.Context, id string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.op("link"); err != nil {
		return "", err
	}
	rec, ok := f.byID[id]
	if !ok {
		return "", fmt.Errorf("link %s: %w", id, model.ErrNotFound)
	}
	f.Shared[id] = true
	return rec.ContentLink, nil
}

// Seed inserts a record as-is, bypassing Create. Useful for planting
// records of kinds the public API cannot produce.
func (f *Fake) Seed(rec *model.Record) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[rec.ID] = copyRecord(rec)
	f.order = append(f.order, rec.ID)
}

func copyAttrs(attrs model.Attributes) model.Attributes {
	out := model.Attributes{}
	for k, v := range attrs {
		out[k] = v
	}
	return out
}

func copyRecord(rec *model.Record) *model.Record {
	cp := *rec
	cp.Attributes = copyAttrs(rec.Attributes)
	return &cp
}
