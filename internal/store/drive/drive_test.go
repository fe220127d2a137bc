package drive

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthkeep/hearthkeep/internal/model"
	"github.com/hearthkeep/hearthkeep/internal/store"
	"github.com/hearthkeep/hearthkeep/internal/store/storetest"
)

func newTestStore(t *testing.T) (*Store, *fakeRemote) {
	t.Helper()
	fake := newFakeRemote()
	s := newStore(fake, nil, zerolog.Nop(), Config{
		CallTimeout: 5 * time.Second,
		MaxRetries:  2,
	})
	return s, fake
}

func TestStoreCompliance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		s, _ := newTestStore(t)
		return s
	})
}

func TestCreateMarker(t *testing.T) {
	s, fake := newTestStore(t)
	ctx := context.Background()

	rec, err := s.Create(ctx, store.CreateRequest{
		Kind:  model.KindMemory,
		Title: "First Snow",
		Attributes: model.Attributes{
			"title": "First Snow", "content": "so much snow", "author": "nana", "date": "2020-01-12",
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, model.KindMemory, rec.Kind)
	assert.Equal(t, "first-snow.memory", rec.Name)
	assert.Equal(t, "so much snow", rec.Attributes.String("content"))

	// The marker carries its payload in the description field only.
	f := fake.files[rec.ID]
	assert.Contains(t, f.Description, `"author":"nana"`)
}

func TestCreateUnknownKindRejected(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.Create(context.Background(), store.CreateRequest{
		Kind:  model.KindUnknown,
		Title: "nope",
	})
	require.Error(t, err)
	assert.True(t, model.IsValidation(err))
}

func TestCreateMediaNeedsFilename(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.Create(context.Background(), store.CreateRequest{
		Kind:        model.KindPhoto,
		Content:     strings.NewReader("bytes"),
		ContentType: "image/jpeg",
	})
	require.Error(t, err)
	assert.True(t, model.IsValidation(err))
}

func TestListKindFilterIsolatesCorruptRecord(t *testing.T) {
	s, fake := newTestStore(t)
	ctx := context.Background()

	mkEvent := func(title string) *model.Record {
		rec, err := s.Create(ctx, store.CreateRequest{
			Kind:       model.KindEvent,
			Title:      title,
			Attributes: model.Attributes{"title": title, "date": "2024-06-01"},
		})
		require.NoError(t, err)
		return rec
	}
	mkEvent("Reunion")
	mkEvent("Picnic")
	bad := mkEvent("Corrupted")
	for _, title := range []string{"m1", "m2", "m3"} {
		_, err := s.Create(ctx, store.CreateRequest{
			Kind:       model.KindMemory,
			Title:      title,
			Attributes: model.Attributes{"title": title},
		})
		require.NoError(t, err)
	}
	fake.corrupt(bad.ID)

	events, err := s.List(ctx, store.ListOptions{Kind: model.KindEvent})
	require.NoError(t, err, "one corrupt record must not abort the listing")
	assert.Len(t, events, 3, "2 decodable + 1 empty-attribute event, no memories")

	var corrupted *model.Record
	for _, e := range events {
		assert.Equal(t, model.KindEvent, e.Kind)
		if e.ID == bad.ID {
			corrupted = e
		}
	}
	require.NotNil(t, corrupted)
	assert.Empty(t, corrupted.Attributes, "undecodable metadata decays to empty attributes")
}

func TestListMediaFilter(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, store.CreateRequest{
		Kind: model.KindPhoto, Filename: "beach.jpg", ContentType: "image/jpeg",
		Content: strings.NewReader("jpegbytes"),
	})
	require.NoError(t, err)
	_, err = s.Create(ctx, store.CreateRequest{
		Kind: model.KindPhoto, Filename: "clip.mp4", ContentType: "video/mp4",
		Content: strings.NewReader("mp4bytes"),
	})
	require.NoError(t, err)

	images, err := s.List(ctx, store.ListOptions{Kind: model.KindPhoto, Media: store.MediaImage})
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "beach.jpg", images[0].Name)

	videos, err := s.List(ctx, store.ListOptions{Kind: model.KindPhoto, Media: store.MediaVideo})
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "clip.mp4", videos[0].Name)

	all, err := s.List(ctx, store.ListOptions{Kind: model.KindPhoto})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRawListingKeepsUnknownKinds(t *testing.T) {
	s, fake := newTestStore(t)
	ctx := context.Background()

	_, err := fake.createFile(ctx, "stray-notes.txt", "text/plain", "", strings.NewReader("x"))
	require.NoError(t, err)
	_, err = s.Create(ctx, store.CreateRequest{
		Kind: model.KindMemory, Title: "m", Attributes: model.Attributes{"title": "m"},
	})
	require.NoError(t, err)

	all, err := s.List(ctx, store.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, all, 2, "raw listings include unknown-suffix files")

	typed, err := s.List(ctx, store.ListOptions{Kind: model.KindMemory})
	require.NoError(t, err)
	assert.Len(t, typed, 1, "typed listings exclude them")
}

func TestUpdateRewritesAttributesOnly(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	rec, err := s.Create(ctx, store.CreateRequest{
		Kind: model.KindEvent, Title: "Reunion",
		Attributes: model.Attributes{"title": "Reunion", "date": "2024-06-01"},
	})
	require.NoError(t, err)

	updated, err := s.Update(ctx, rec.ID, model.Attributes{"title": "Reunion", "date": "2024-07-01", "location": "lake"})
	require.NoError(t, err)
	assert.Equal(t, rec.ID, updated.ID, "identity never changes across updates")
	assert.Equal(t, rec.Name, updated.Name, "name is not rewritten")
	assert.Equal(t, model.KindEvent, updated.Kind)
	assert.Equal(t, "2024-07-01", updated.Attributes.String("date"))
}

func TestUpdateGoneRecord(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	rec, err := s.Create(ctx, store.CreateRequest{
		Kind: model.KindMemory, Title: "gone", Attributes: model.Attributes{"title": "gone"},
	})
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, rec.ID))

	_, err = s.Update(ctx, rec.ID, model.Attributes{"title": "still gone"})
	require.Error(t, err)
	assert.True(t, model.IsNotFound(err))
}

func TestDeleteMissingIsNotFound(t *testing.T) {
	// Documented policy: deleting an id that is already gone surfaces
	// ErrNotFound rather than silent success.
	s, _ := newTestStore(t)
	err := s.Delete(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.True(t, model.IsNotFound(err))
}

func TestPublicLink(t *testing.T) {
	s, fake := newTestStore(t)
	ctx := context.Background()

	rec, err := s.Create(ctx, store.CreateRequest{
		Kind: model.KindPhoto, Filename: "beach.jpg", ContentType: "image/jpeg",
		Content: strings.NewReader("jpegbytes"),
	})
	require.NoError(t, err)

	link, err := s.PublicLink(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://files.example/dl/"+rec.ID, link)
	assert.True(t, fake.shared[rec.ID], "share grant must precede the link fetch")
}

func TestTransientRetry(t *testing.T) {
	s, fake := newTestStore(t)
	fake.failWith["list"] = &googleapiServerError
	fake.failN["list"] = 2

	recs, err := s.List(context.Background(), store.ListOptions{})
	require.NoError(t, err, "transient failures within budget are retried")
	assert.Empty(t, recs)
	assert.Equal(t, 3, fake.calls["list"])
}

func TestTransientRetryExhaustion(t *testing.T) {
	s, fake := newTestStore(t)
	fake.failWith["list"] = &googleapiServerError

	_, err := s.List(context.Background(), store.ListOptions{})
	require.Error(t, err)
	assert.True(t, model.IsTransient(err))
	assert.Equal(t, 3, fake.calls["list"], "initial attempt + MaxRetries")
}

func TestPermissionErrorNotRetried(t *testing.T) {
	s, fake := newTestStore(t)
	fake.failWith["list"] = &googleapiForbiddenError

	_, err := s.List(context.Background(), store.ListOptions{})
	require.Error(t, err)
	assert.True(t, model.IsPermission(err))
	assert.Equal(t, 1, fake.calls["list"], "fatal errors surface on the first attempt")
}
