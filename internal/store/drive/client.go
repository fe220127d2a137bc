package drive

import (
	"context"
	"io"
	"time"

	drivev3 "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// file is the adapter's view of a stored object. CreatedTime stays RFC3339
// text until record conversion.
type file struct {
	ID          string
	Name        string
	MIMEType    string
	Description string
	ViewLink    string
	ContentLink string
	CreatedTime string
}

// remote is the narrow seam to the file-hosting API. The real
// implementation wraps the Drive v3 client; tests substitute a fake.
type remote interface {
	createFile(ctx context.Context, name, contentType, description string, content io.Reader) (*file, error)
	listFiles(ctx context.Context) ([]*file, error)
	updateDescription(ctx context.Context, id, description string) (*file, error)
	deleteFile(ctx context.Context, id string) error
	allowPublicRead(ctx context.Context, id string) error
	getFile(ctx context.Context, id string) (*file, error)
}

const fileFields googleapi.Field = "id, name, description, mimeType, webViewLink, webContentLink, createdTime"

// driveRemote talks to Google Drive v3. All stored files live flat in one
// folder; there is no nesting.
type driveRemote struct {
	svc      *drivev3.Service
	folderID string
	pageSize int64
}

func newDriveRemote(ctx context.Context, credentialsFile, folderID string, pageSize int64) (*driveRemote, error) {
	svc, err := drivev3.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(drivev3.DriveScope),
	)
	if err != nil {
		return nil, err
	}
	return &driveRemote{svc: svc, folderID: folderID, pageSize: pageSize}, nil
}

func (r *driveRemote) createFile(ctx context.Context, name, contentType, description string, content io.Reader) (*file, error) {
	meta := &drivev3.File{
		Name:        name,
		Parents:     []string{r.folderID},
		Description: description,
	}
	call := r.svc.Files.Create(meta).Fields(fileFields).Context(ctx)
	if content != nil {
		call = call.Media(content, googleapi.ContentType(contentType))
	}
	f, err := call.Do()
	if err != nil {
		return nil, err
	}
	return fromDriveFile(f), nil
}

func (r *driveRemote) listFiles(ctx context.Context) ([]*file, error) {
	resp, err := r.svc.Files.List().
		Q("'" + r.folderID + "' in parents and trashed=false").
		PageSize(r.pageSize).
		Fields("files(" + fileFields + ")").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	out := make([]*file, 0, len(resp.Files))
	for _, f := range resp.Files {
		out = append(out, fromDriveFile(f))
	}
	return out, nil
}

func (r *driveRemote) updateDescription(ctx context.Context, id, description string) (*file, error) {
	f, err := r.svc.Files.Update(id, &drivev3.File{Description: description}).
		Fields(fileFields).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	return fromDriveFile(f), nil
}

func (r *driveRemote) deleteFile(ctx context.Context, id string) error {
	return r.svc.Files.Delete(id).Context(ctx).Do()
}

func (r *driveRemote) allowPublicRead(ctx context.Context, id string) error {
	_, err := r.svc.Permissions.Create(id, &drivev3.Permission{
		Role: "reader",
		Type: "anyone",
	}).Context(ctx).Do()
	return err
}

func (r *driveRemote) getFile(ctx context.Context, id string) (*file, error) {
	f, err := r.svc.Files.Get(id).Fields(fileFields).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return fromDriveFile(f), nil
}

func fromDriveFile(f *drivev3.File) *file {
	return &file{
		ID:          f.Id,
		Name:        f.Name,
		MIMEType:    f.MimeType,
		Description: f.Description,
		ViewLink:    f.WebViewLink,
		ContentLink: f.WebContentLink,
		CreatedTime: f.CreatedTime,
	}
}

func parseCreatedTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
