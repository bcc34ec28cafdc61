// Package interfaces defines the narrow Drive API surface the rest of the
// module depends on, so the transport can be swapped or faked in tests.
package interfaces

import (
	"context"
	"io"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

// ListPage is one page of a Files.List traversal.
type ListPage struct {
	Files         []*drive.File
	NextPageToken string
}

// ListCall describes a single Files.List request.
type ListCall struct {
	Query     string
	Fields    string
	PageSize  int64
	PageToken string
}

// UpdateCall carries the optional parts of a Files.Update request.
// Empty strings mean the corresponding parameter is omitted.
type UpdateCall struct {
	AddParents    string
	RemoveParents string
	Fields        string
}

// DriveAPI is the capability surface over the Drive v3 service. Every method
// issues exactly one request. Implementations do not retry, cache, or
// reinterpret errors; googleapi errors pass through unchanged.
type DriveAPI interface {
	GetFile(ctx context.Context, fileID, fields string) (*drive.File, error)
	ListFiles(ctx context.Context, call ListCall) (*ListPage, error)
	CreateFile(ctx context.Context, file *drive.File, fields string) (*drive.File, error)
	UpdateFile(ctx context.Context, fileID string, file *drive.File, call UpdateCall) (*drive.File, error)
	DeleteFile(ctx context.Context, fileID string) error
	CopyFile(ctx context.Context, fileID string, file *drive.File, fields string) (*drive.File, error)
	EmptyTrash(ctx context.Context) error

	// DownloadFile streams the binary content of a concrete file.
	DownloadFile(ctx context.Context, fileID string) (io.ReadCloser, error)
	// ExportFile streams a Workspace document converted to exportMimeType.
	ExportFile(ctx context.Context, fileID, exportMimeType string) (io.ReadCloser, error)

	// UploadFile creates a new file with media attached via a resumable
	// upload. progress may be nil; when set it is registered for this call
	// only and observes (bytesSent, totalBytes) updates.
	UploadFile(ctx context.Context, file *drive.File, media io.Reader, contentType string, progress googleapi.ProgressUpdater) (*drive.File, error)
	// UpdateFileMedia replaces the content of an existing file via a
	// resumable upload, leaving all metadata untouched.
	UpdateFileMedia(ctx context.Context, fileID string, media io.Reader, contentType string, progress googleapi.ProgressUpdater) (*drive.File, error)
}
