package services

import (
	"context"

	"github.com/hearthkeep/hearthkeep/internal/model"
	"github.com/hearthkeep/hearthkeep/internal/store"
)

// ExportService produces a full JSON archive of the container, grouped by
// kind. The raw listing is used on purpose: files with unknown suffixes
// are somebody's data too and belong in a backup.
type ExportService struct {
	store store.Store
}

func NewExportService(s store.Store) *ExportService {
	return &ExportService{store: s}
}

// Archive is the export payload.
type Archive struct {
	Records map[string][]*model.Record `json:"records"`
	Total   int                        `json:"total"`
}

func (s *ExportService) Export(ctx context.Context) (*Archive, error) {
	recs, err := s.store.List(ctx, store.ListOptions{})
	if err != nil {
		return nil, err
	}
	byKind := make(map[string][]*model.Record)
	for _, r := range recs {
		byKind[string(r.Kind)] = append(byKind[string(r.Kind)], r)
	}
	return &Archive{Records: byKind, Total: len(recs)}, nil
}
