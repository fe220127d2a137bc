package drive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"google.golang.org/api/googleapi"
)

// notFoundErr mimics the remote 404 so tests run through the real error
// translation.
func notFoundErr(id string) error {
	return &googleapi.Error{Code: http.StatusNotFound, Message: "file not found: " + id}
}

// fakeRemote is an in-memory stand-in for the drive folder. Failures are
// injected per operation name; failN makes the first N calls fail to
// exercise the retry loop.
type fakeRemote struct {
	mu     sync.Mutex
	seq    int
	files  map[string]*file
	shared map[string]bool

	failWith map[string]error
	failN    map[string]int
	calls    map[string]int
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		files:    make(map[string]*file),
		shared:   make(map[string]bool),
		failWith: make(map[string]error),
		failN:    make(map[string]int),
		calls:    make(map[string]int),
	}
}

func (f *fakeRemote) fail(op string) error {
	f.calls[op]++
	if n, ok := f.failN[op]; ok && n > 0 {
		f.failN[op] = n - 1
		return f.failWith[op]
	}
	if _, ok := f.failN[op]; !ok {
		if err, ok := f.failWith[op]; ok {
			return err
		}
	}
	return nil
}

func (f *fakeRemote) createFile(_ context.Context, name, contentType, description string, content io.Reader) (*file, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("create"); err != nil {
		return nil, err
	}
	if content != nil {
		if _, err := io.Copy(io.Discard, content); err != nil {
			return nil, err
		}
	}
	f.seq++
	id := fmt.Sprintf("file-%04d", f.seq)
	nf := &file{
		ID:          id,
		Name:        name,
		MIMEType:    contentType,
		Description: description,
		ViewLink:    "https://files.example/view/" + id,
		ContentLink: "https://files.example/dl/" + id,
		CreatedTime: time.Now().UTC().Format(time.RFC3339),
	}
	f.files[id] = nf
	cp := *nf
	return &cp, nil
}

func (f *fakeRemote) listFiles(_ context.Context) ([]*file, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("list"); err != nil {
		return nil, err
	}
	out := make([]*file, 0, len(f.files))
	for _, fl := range f.files {
		cp := *fl
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeRemote) updateDescription(_ context.Context, id, description string) (*file, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("update"); err != nil {
		return nil, err
	}
	fl, ok := f.files[id]
	if !ok {
		return nil, notFoundErr(id)
	}
	fl.Description = description
	cp := *fl
	return &cp, nil
}

func (f *fakeRemote) deleteFile(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("delete"); err != nil {
		return err
	}
	if _, ok := f.files[id]; !ok {
		return notFoundErr(id)
	}
	delete(f.files, id)
	return nil
}

func (f *fakeRemote) allowPublicRead(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("share"); err != nil {
		return err
	}
	if _, ok := f.files[id]; !ok {
		return notFoundErr(id)
	}
	f.shared[id] = true
	return nil
}

func (f *fakeRemote) getFile(_ context.Context, id string) (*file, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("get"); err != nil {
		return nil, err
	}
	fl, ok := f.files[id]
	if !ok {
		return nil, notFoundErr(id)
	}
	cp := *fl
	return &cp, nil
}

// corrupt overwrites a stored description with undecodable text.
func (f *fakeRemote) corrupt(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[id].Description = "not{json"
}
