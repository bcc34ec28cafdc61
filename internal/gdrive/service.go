// Package gdrive wraps the Google Drive v3 API with typed errors, query
// building, and pagination so callers are spared the raw client plumbing.
// Transport, retry, and rate limiting stay with the official client.
package gdrive

import (
	"context"
	"errors"
	"strings"
	"time"

	"google.golang.org/api/drive/v3"

	"gdrivekit/pkg/interfaces"
)

// Field selector strings shared by the gateway operations.
const (
	itemFields     = "id,name,mimeType,parents,trashed"
	itemListFields = "nextPageToken,files(id,name,mimeType,parents,trashed)"
)

// Service issues individual Drive operations against the injected capability
// surface, normalizing responses into Items and raising typed failures. It
// performs no retries and holds no state beyond the API handle.
type Service struct {
	api interfaces.DriveAPI
}

// NewService creates a gateway over api.
func NewService(api interfaces.DriveAPI) *Service {
	return &Service{api: api}
}

// Metadata fetches the normalized record for a single item.
func (s *Service) Metadata(ctx context.Context, id string) (Item, error) {
	if err := requireNonEmpty("id", id); err != nil {
		return Item{}, err
	}

	f, err := s.api.GetFile(ctx, id, itemFields)
	if err != nil {
		return Item{}, err
	}

	return newItem(f), nil
}

// FindFolderByName returns the ID of the first non-trashed folder named name
// under parentID, or "" when there is no match. When several folders share
// the name, which one is returned is unspecified.
func (s *Service) FindFolderByName(ctx context.Context, name, parentID string) (string, error) {
	return s.findByName(ctx, name, parentID, MimeTypeFolder)
}

// FindFileByName is FindFolderByName without the folder MIME filter.
func (s *Service) FindFileByName(ctx context.Context, name, parentID string) (string, error) {
	return s.findByName(ctx, name, parentID, "")
}

func (s *Service) findByName(ctx context.Context, name, parentID, mimeType string) (string, error) {
	if err := requireNonEmpty("name", name); err != nil {
		return "", err
	}

	if err := requireNonEmpty("parentID", parentID); err != nil {
		return "", err
	}

	// First-match lookup, not a list: one page of one item.
	page, err := s.api.ListFiles(ctx, interfaces.ListCall{
		Query:    buildQuery(queryOptions{Name: name, ParentID: parentID, MimeType: mimeType}),
		Fields:   itemListFields,
		PageSize: 1,
	})
	if err != nil {
		return "", err
	}

	if len(page.Files) == 0 {
		return "", nil
	}

	return page.Files[0].Id, nil
}

// ListFoldersIn lists the non-trashed folders directly under parentID.
func (s *Service) ListFoldersIn(ctx context.Context, parentID string, pageSize int64) ([]Item, error) {
	if err := requireNonEmpty("parentID", parentID); err != nil {
		return nil, err
	}

	query := buildQuery(queryOptions{ParentID: parentID, MimeType: MimeTypeFolder})

	return collectPages(ctx, query, pageSize, s.fetchItemPage)
}

// ListAllFolders lists every non-trashed folder in the drive at the maximum
// page size. Items carry their parent IDs so callers can rebuild the folder
// hierarchy without issuing one call per folder.
func (s *Service) ListAllFolders(ctx context.Context) ([]Item, error) {
	query := buildQuery(queryOptions{MimeType: MimeTypeFolder})

	return collectPages(ctx, query, maxPageSize, s.fetchItemPage)
}

// ListItemsIn lists every non-trashed item directly under parentID,
// optionally restricted to those modified after modifiedAfter.
func (s *Service) ListItemsIn(ctx context.Context, parentID string, pageSize int64, modifiedAfter time.Time) ([]Item, error) {
	if err := requireNonEmpty("parentID", parentID); err != nil {
		return nil, err
	}

	query := buildQuery(queryOptions{ParentID: parentID, ModifiedAfter: modifiedAfter})

	return collectPages(ctx, query, pageSize, s.fetchItemPage)
}

// ListTrashed lists every trashed item.
func (s *Service) ListTrashed(ctx context.Context, pageSize int64) ([]Item, error) {
	query := buildQuery(queryOptions{Trashed: true})

	return collectPages(ctx, query, pageSize, s.fetchItemPage)
}

// fetchItemPage is the single-page fetch behind every listing operation.
func (s *Service) fetchItemPage(ctx context.Context, query string, pageSize int64, pageToken string) ([]Item, string, error) {
	page, err := s.api.ListFiles(ctx, interfaces.ListCall{
		Query:     query,
		Fields:    itemListFields,
		PageSize:  pageSize,
		PageToken: pageToken,
	})
	if err != nil {
		return nil, "", err
	}

	return newItems(page.Files), page.NextPageToken, nil
}

// CreateFolder creates a folder named name under parentID and returns the
// new folder's ID.
func (s *Service) CreateFolder(ctx context.Context, name, parentID string) (string, error) {
	if err := requireNonEmpty("name", name); err != nil {
		return "", err
	}

	if err := requireNonEmpty("parentID", parentID); err != nil {
		return "", err
	}

	f, err := s.api.CreateFile(ctx, &drive.File{
		Name:     name,
		MimeType: MimeTypeFolder,
		Parents:  []string{parentID},
	}, "id")
	if err != nil {
		return "", err
	}

	return f.Id, nil
}

// DeleteFolder permanently deletes the folder with the given ID. The item's
// MIME type is checked first; a non-folder yields an ItemTypeError and no
// delete request is issued.
func (s *Service) DeleteFolder(ctx context.Context, id string) error {
	return s.deleteChecked(ctx, id, true)
}

// DeleteFile permanently deletes the regular file with the given ID. Folders
// are rejected with an ItemTypeError.
func (s *Service) DeleteFile(ctx context.Context, id string) error {
	return s.deleteChecked(ctx, id, false)
}

func (s *Service) deleteChecked(ctx context.Context, id string, wantFolder bool) error {
	if err := requireNonEmpty("id", id); err != nil {
		return err
	}

	f, err := s.api.GetFile(ctx, id, "id,mimeType")
	if err != nil {
		return err
	}

	if (f.MimeType == MimeTypeFolder) != wantFolder {
		want := MimeTypeFolder
		if !wantFolder {
			want = "any non-folder type"
		}

		return &ItemTypeError{ID: id, Got: f.MimeType, Want: want}
	}

	return s.api.DeleteFile(ctx, id)
}

// Rename updates only the item's name; every other field is omitted from the
// request (field-mask semantics).
func (s *Service) Rename(ctx context.Context, id, newName string) error {
	if err := requireNonEmpty("id", id); err != nil {
		return err
	}

	if err := requireNonEmpty("newName", newName); err != nil {
		return err
	}

	_, err := s.api.UpdateFile(ctx, id, &drive.File{Name: newName}, interfaces.UpdateCall{Fields: "id,name"})

	return err
}

// Move adds toParent and removes fromParent from the item's parent set in a
// single update. Membership of fromParent is not verified beforehand; if the
// server rejects the removal, its error passes through unchanged.
func (s *Service) Move(ctx context.Context, id, fromParent, toParent string) error {
	if err := requireNonEmpty("id", id); err != nil {
		return err
	}

	if err := requireNonEmpty("fromParent", fromParent); err != nil {
		return err
	}

	if err := requireNonEmpty("toParent", toParent); err != nil {
		return err
	}

	_, err := s.api.UpdateFile(ctx, id, &drive.File{}, interfaces.UpdateCall{
		AddParents:    toParent,
		RemoveParents: fromParent,
		Fields:        "id,parents",
	})

	return err
}

// Copy performs a server-side copy of id into toParent and returns the new
// item's ID. A blank or whitespace newName preserves the original name: the
// name field is omitted from the request rather than sent empty.
func (s *Service) Copy(ctx context.Context, id, toParent, newName string) (string, error) {
	if err := requireNonEmpty("id", id); err != nil {
		return "", err
	}

	if err := requireNonEmpty("toParent", toParent); err != nil {
		return "", err
	}

	meta := &drive.File{Parents: []string{toParent}}
	if trimmed := strings.TrimSpace(newName); trimmed != "" {
		meta.Name = trimmed
	}

	f, err := s.api.CopyFile(ctx, id, meta, "id")
	if err != nil {
		if isCancellation(err) {
			return "", err
		}

		return "", &OpError{Op: "copy", ID: id, Err: ErrCopyFailed, Cause: err}
	}

	if f == nil || f.Id == "" {
		return "", &OpError{Op: "copy", ID: id, Err: ErrCopyFailed}
	}

	return f.Id, nil
}

// Trash moves the item to the trash and verifies the server's response
// actually reports it trashed; a successful HTTP call with trashed=false
// still fails.
func (s *Service) Trash(ctx context.Context, id string) error {
	return s.setTrashed(ctx, id, true)
}

// Untrash restores the item from the trash, with the symmetric
// post-update verification.
func (s *Service) Untrash(ctx context.Context, id string) error {
	return s.setTrashed(ctx, id, false)
}

func (s *Service) setTrashed(ctx context.Context, id string, trashed bool) error {
	if err := requireNonEmpty("id", id); err != nil {
		return err
	}

	op, sentinel := "trash", ErrTrashFailed
	if !trashed {
		op, sentinel = "restore", ErrRestoreFailed
	}

	// Trashed=false is a zero value; ForceSendFields keeps it in the
	// request body on restore.
	meta := &drive.File{Trashed: trashed}
	if !trashed {
		meta.ForceSendFields = []string{"Trashed"}
	}

	f, err := s.api.UpdateFile(ctx, id, meta, interfaces.UpdateCall{Fields: "id,trashed"})
	if err != nil {
		if isCancellation(err) {
			return err
		}

		return &OpError{Op: op, ID: id, Err: sentinel, Cause: err}
	}

	if f == nil || f.Trashed != trashed {
		return &OpError{Op: op, ID: id, Err: sentinel}
	}

	return nil
}

// EmptyTrash permanently purges every trashed item. Irreversible.
func (s *Service) EmptyTrash(ctx context.Context) error {
	return s.api.EmptyTrash(ctx)
}

// isCancellation reports whether err is a context cancellation, which is
// never reinterpreted as a remote-operation failure.
func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
