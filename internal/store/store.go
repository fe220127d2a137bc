// Package store defines the document-store contract the entity services
// depend on. Implementations live under internal/store/<driver>/ (the only
// driver shipped is drive, the cloud-folder adapter).
package store

import (
	"context"
	"io"

	"github.com/hearthkeep/hearthkeep/internal/model"
)

// MediaFilter narrows media listings by MIME family.
type MediaFilter string

const (
	MediaAny   MediaFilter = ""
	MediaImage MediaFilter = "image"
	MediaVideo MediaFilter = "video"
)

// CreateRequest describes a record to persist. When Content is nil a
// zero-byte marker file is written whose name encodes kind and title; when
// Content is set the upload keeps Filename and ContentType and the kind is
// recovered from the MIME type on later listings.
type CreateRequest struct {
	Kind        model.Kind
	Title       string
	Attributes  model.Attributes
	Content     io.Reader
	Filename    string
	ContentType string
}

// ListOptions narrows a listing. The zero value lists everything in the
// container, unknown-suffix files included.
type ListOptions struct {
	Kind  model.Kind
	Media MediaFilter
}

// Store is the capability set every backend must provide. All records live
// in one shared container; kind separation is logical only. Listing order
// is unspecified — callers sort client-side.
type Store interface {
	Create(ctx context.Context, req CreateRequest) (*model.Record, error)
	List(ctx context.Context, opts ListOptions) ([]*model.Record, error)

	// Update rewrites the metadata field wholesale. Name, content and id
	// are untouched; the kind of a record never changes.
	Update(ctx context.Context, id string, attrs model.Attributes) (*model.Record, error)

	// Delete removes the stored file. Deleting an id that is already gone
	// returns model.ErrNotFound, consistently.
	Delete(ctx context.Context, id string) error

	// PublicLink grants read-for-anyone and returns a directly fetchable
	// content URL. The grant is eventually consistent on the remote side;
	// the link may lag behind the call returning.
	PublicLink(ctx context.Context, id string) (string, error)
}
