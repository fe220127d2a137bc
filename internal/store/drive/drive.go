// Package drive implements the content store on top of a cloud-drive file
// API. Records of every kind live flat in one shared folder: marker kinds
// as zero-byte files whose name encodes kind and slug, media as real
// uploads classified by MIME type. The structured attributes ride
// JSON-encoded in the file's description field. The naming table and the
// codec in this package are the single translation boundary; no other
// component parses file names or description text.
package drive

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hearthkeep/hearthkeep/internal/model"
	"github.com/hearthkeep/hearthkeep/internal/store"
)

// Config carries the drive-specific settings resolved from the
// environment by internal/config.
type Config struct {
	CredentialsFile string
	FolderID        string
	PageSize        int64
	CallTimeout     time.Duration
	MaxRetries      uint64
}

// Store implements store.Store against a remote drive folder.
type Store struct {
	remote      remote
	probe       *linkProbe
	log         zerolog.Logger
	callTimeout time.Duration
	maxRetries  uint64
}

var _ store.Store = (*Store)(nil)

// New builds a store backed by Google Drive v3 with service-account
// credentials.
func New(ctx context.Context, cfg Config, log zerolog.Logger) (*Store, error) {
	r, err := newDriveRemote(ctx, cfg.CredentialsFile, cfg.FolderID, cfg.PageSize)
	if err != nil {
		return nil, fmt.Errorf("drive client: %w", err)
	}
	return newStore(r, newLinkProbe(cfg.CallTimeout), log, cfg), nil
}

func newStore(r remote, probe *linkProbe, log zerolog.Logger, cfg Config) *Store {
	timeout := cfg.CallTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Store{
		remote:      r,
		probe:       probe,
		log:         log,
		callTimeout: timeout,
		maxRetries:  cfg.MaxRetries,
	}
}

// Create persists a record. Marker creates (nil content) are retried on
// transient failures; media uploads are a single attempt because the
// content reader cannot be rewound. A failure after the upload may leave
// an orphaned, never-shared file behind — orphans are logged and left for
// a human to delete.
func (s *Store) Create(ctx context.Context, req store.CreateRequest) (*model.Record, error) {
	enc, err := encodeAttributes(req.Attributes)
	if err != nil {
		return nil, err
	}

	name := req.Filename
	if req.Content == nil {
		if _, ok := suffixByKind[req.Kind]; !ok {
			return nil, fmt.Errorf("%w: kind %q has no marker suffix", model.ErrValidation, req.Kind)
		}
		name = markerName(req.Kind, req.Title)
	} else if name == "" {
		return nil, fmt.Errorf("%w: media upload requires a filename", model.ErrValidation)
	}

	var f *file
	create := func(ctx context.Context) error {
		var cerr error
		f, cerr = s.remote.createFile(ctx, name, req.ContentType, enc, req.Content)
		return translateErr("create", cerr)
	}
	if req.Content == nil {
		err = s.withRetry(ctx, create)
	} else {
		err = s.once(ctx, create)
	}
	if err != nil {
		return nil, err
	}

	return s.recordFromFile(f), nil
}

// List fetches every stored file in the container in one call (up to the
// configured page cap) and reconstructs records. A file with an
// undecodable description stays in the listing with empty attributes;
// one corrupt record never aborts the enumeration. Order is whatever the
// remote returned — callers sort on an attribute.
func (s *Store) List(ctx context.Context, opts store.ListOptions) ([]*model.Record, error) {
	var files []*file
	err := s.withRetry(ctx, func(ctx context.Context) error {
		var lerr error
		files, lerr = s.remote.listFiles(ctx)
		return translateErr("list", lerr)
	})
	if err != nil {
		return nil, err
	}

	records := make([]*model.Record, 0, len(files))
	for _, f := range files {
		rec := s.recordFromFile(f)
		if opts.Kind != "" && rec.Kind != opts.Kind {
			continue
		}
		if opts.Media != store.MediaAny && !matchesMedia(rec.MIMEType, opts.Media) {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// Update rewrites the description field in place. Name, content and id
// are untouched, so a record's kind can never change through here.
func (s *Store) Update(ctx context.Context, id string, attrs model.Attributes) (*model.Record, error) {
	enc, err := encodeAttributes(attrs)
	if err != nil {
		return nil, err
	}
	var f *file
	err = s.withRetry(ctx, func(ctx context.Context) error {
		var uerr error
		f, uerr = s.remote.updateDescription(ctx, id, enc)
		return translateErr("update", uerr)
	})
	if err != nil {
		return nil, err
	}
	return s.recordFromFile(f), nil
}

// Delete removes the stored file. A missing id surfaces as
// model.ErrNotFound — the remote 404 is not masked, matching every other
// operation on a gone id.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.withRetry(ctx, func(ctx context.Context) error {
		return translateErr("delete", s.remote.deleteFile(ctx, id))
	})
}

// PublicLink grants anyone/reader and re-fetches the canonical content
// link: two round trips before the caller has a usable URL. The grant is
// eventually consistent remotely, so the link is probed with bounded
// backoff; if propagation outlasts the probe budget the link is returned
// anyway and the delay is logged.
func (s *Store) PublicLink(ctx context.Context, id string) (string, error) {
	err := s.withRetry(ctx, func(ctx context.Context) error {
		return translateErr("share", s.remote.allowPublicRead(ctx, id))
	})
	if err != nil {
		return "", err
	}

	var f *file
	err = s.withRetry(ctx, func(ctx context.Context) error {
		var gerr error
		f, gerr = s.remote.getFile(ctx, id)
		return translateErr("get", gerr)
	})
	if err != nil {
		return "", err
	}

	link := f.ContentLink
	if link == "" {
		link = f.ViewLink
	}
	if s.probe != nil && link != "" {
		if perr := s.probe.wait(ctx, link); perr != nil {
			s.log.Warn().Str("id", id).Err(perr).
				Msg("public link not resolvable yet, returning it anyway")
		}
	}
	return link, nil
}

// once applies the per-call timeout without the retry loop.
func (s *Store) once(ctx context.Context, fn func(ctx context.Context) error) error {
	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()
	return fn(callCtx)
}

func (s *Store) recordFromFile(f *file) *model.Record {
	attrs, err := decodeAttributes(f.Description)
	if err != nil {
		s.log.Warn().Str("id", f.ID).Str("file", f.Name).Err(err).
			Msg("undecodable metadata field, record kept with empty attributes")
		attrs = model.Attributes{}
	}
	return &model.Record{
		ID:          f.ID,
		Kind:        kindOfFile(f.Name, f.MIMEType),
		Name:        f.Name,
		Attributes:  attrs,
		MIMEType:    f.MIMEType,
		ViewLink:    f.ViewLink,
		ContentLink: f.ContentLink,
		CreatedTime: parseCreatedTime(f.CreatedTime),
	}
}

func matchesMedia(mimeType string, m store.MediaFilter) bool {
	switch m {
	case store.MediaImage:
		return len(mimeType) >= 6 && mimeType[:6] == "image/"
	case store.MediaVideo:
		return len(mimeType) >= 6 && mimeType[:6] == "video/"
	}
	return true
}
