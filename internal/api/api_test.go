package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthkeep/hearthkeep/internal/model"
	"github.com/hearthkeep/hearthkeep/internal/session"
	"github.com/hearthkeep/hearthkeep/internal/store/storetest"
)

const testPassword = "familypw"

func newTestServer(t *testing.T) (*httptest.Server, *storetest.Fake) {
	t.Helper()
	fake := storetest.NewFake()
	gate := session.New(testPassword, "")
	srv := httptest.NewServer(NewRouter(fake, gate, zerolog.Nop()))
	t.Cleanup(srv.Close)

	// Most tests run behind an open gate.
	resp := postJSON(t, srv, "/api/session/login", map[string]string{"password": testPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	return srv, fake
}

func postJSON(t *testing.T, srv *httptest.Server, path string, body any) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	return resp
}

func do(t *testing.T, srv *httptest.Server, method, path string, body io.Reader) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, body)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
}

func TestGateBlocksUntilLogin(t *testing.T) {
	fake := storetest.NewFake()
	gate := session.New(testPassword, "")
	srv := httptest.NewServer(NewRouter(fake, gate, zerolog.Nop()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/memories")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Health and session status stay reachable while locked.
	resp, err = http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var status map[string]bool
	resp, err = http.Get(srv.URL + "/api/session")
	require.NoError(t, err)
	decode(t, resp, &status)
	assert.False(t, status["active"])

	resp = postJSON(t, srv, "/api/session/login", map[string]string{"password": "wrong"})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = postJSON(t, srv, "/api/session/login", map[string]string{"password": testPassword})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/memories")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMemoryLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv, "/api/memories", map[string]any{
		"title": "First Snow", "content": "so much snow", "author": "nana", "date": "2020-01-12",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created model.Record
	decode(t, resp, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, model.KindMemory, created.Kind)

	var listing struct {
		Memories []*model.Record `json:"memories"`
		Count    int             `json:"count"`
	}
	resp = do(t, srv, http.MethodGet, "/api/memories", nil)
	decode(t, resp, &listing)
	assert.Equal(t, 1, listing.Count)

	patch, _ := json.Marshal(map[string]any{
		"title": "First Snow", "content": "revised", "author": "nana", "date": "2020-01-12",
	})
	resp = do(t, srv, http.MethodPatch, "/api/memories/"+created.ID, bytes.NewReader(patch))
	var updated model.Record
	decode(t, resp, &updated)
	assert.Equal(t, "revised", updated.Attributes.String("content"))

	resp = do(t, srv, http.MethodDelete, "/api/memories/"+created.ID, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, srv, http.MethodDelete, "/api/memories/"+created.ID, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInvalidJSONIs400(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, err := http.Post(srv.URL+"/api/memories", "application/json", strings.NewReader("not{json"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestValidationErrorIs400(t *testing.T) {
	srv, fake := newTestServer(t)
	resp := postJSON(t, srv, "/api/memories", map[string]any{"title": "no content"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, fake.Calls["create"])
}

func TestTransientStoreErrorIs503(t *testing.T) {
	srv, fake := newTestServer(t)
	fake.FailWith["list"] = fmt.Errorf("backend: %w", model.ErrTransient)
	resp := do(t, srv, http.MethodGet, "/api/memories", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestPhotoMediaParamValidated(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := do(t, srv, http.MethodGet, "/api/photos?media=audio", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPhotoUploadAndLink(t *testing.T) {
	srv, fake := newTestServer(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "beach.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpegbytes"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("title", "Beach day"))
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/api/photos", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created model.Record
	decode(t, resp, &created)
	assert.Equal(t, "beach.jpg", created.Name)

	var link map[string]string
	resp = do(t, srv, http.MethodGet, "/api/photos/"+created.ID+"/link", nil)
	decode(t, resp, &link)
	assert.NotEmpty(t, link["link"])
	assert.True(t, fake.Shared[created.ID])
}

func TestStoryMultipartCreate(t *testing.T) {
	srv, fake := newTestServer(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("title", "The Big Move"))
	require.NoError(t, mw.WriteField("content", "we moved"))
	require.NoError(t, mw.WriteField("author", "dad"))
	require.NoError(t, mw.WriteField("date", "2019-08-01"))
	part, err := mw.CreateFormFile("images", "truck.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpegbytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/api/stories", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created model.Record
	decode(t, resp, &created)
	assert.Equal(t, model.KindStory, created.Kind)
	assert.Len(t, created.Attributes.Strings("images"), 1)
	assert.Equal(t, 1, fake.Calls["upload"])
}

func TestProfileByName(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv, "/api/profiles", map[string]any{"name": "Aunt May", "bio": "photographer"})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got model.Record
	resp = do(t, srv, http.MethodGet, "/api/profiles/Aunt%20May", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &got)
	assert.Equal(t, "photographer", got.Attributes.String("bio"))

	resp = do(t, srv, http.MethodGet, "/api/profiles/nobody", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestThemeRoundTrip(t *testing.T) {
	srv, _ := newTestServer(t)

	var theme map[string]string
	resp := do(t, srv, http.MethodGet, "/api/theme", nil)
	decode(t, resp, &theme)
	assert.Equal(t, "light", theme["theme"])

	buf, _ := json.Marshal(map[string]string{"theme": "dark"})
	resp = do(t, srv, http.MethodPut, "/api/theme", bytes.NewReader(buf))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, srv, http.MethodGet, "/api/theme", nil)
	decode(t, resp, &theme)
	assert.Equal(t, "dark", theme["theme"])
}

func TestSearchEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, m := range []map[string]any{
		{"title": "Summer BBQ", "content": "ribs", "author": "dad", "date": "2023-07-04", "tags": []string{"food"}},
		{"title": "Winter trip", "content": "snow", "author": "mom", "date": "2023-12-20"},
	} {
		resp := postJSON(t, srv, "/api/memories", m)
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	var results struct {
		Results []*model.Record `json:"results"`
		Count   int             `json:"count"`
	}
	resp := do(t, srv, http.MethodGet, "/api/search?q=summer", nil)
	decode(t, resp, &results)
	require.Equal(t, 1, results.Count)
	assert.Equal(t, "Summer BBQ", results.Results[0].Attributes.String("title"))

	resp = do(t, srv, http.MethodGet, "/api/search?tag=food", nil)
	decode(t, resp, &results)
	assert.Equal(t, 1, results.Count)

	resp = do(t, srv, http.MethodGet, "/api/search?q=snow&kind=event", nil)
	decode(t, resp, &results)
	assert.Zero(t, results.Count, "kind narrows before matching")
}

func TestExportEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv, "/api/memories", map[string]any{
		"title": "m", "content": "c", "author": "a", "date": "2024-01-01",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var arch struct {
		Records map[string][]*model.Record `json:"records"`
		Total   int                        `json:"total"`
	}
	resp = do(t, srv, http.MethodGet, "/api/export", nil)
	decode(t, resp, &arch)
	assert.Equal(t, 1, arch.Total)
	assert.Len(t, arch.Records["memory"], 1)
}
