package gdrive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

// ProgressFunc observes resumable-upload progress as (bytesSent, totalBytes).
// It is registered for the duration of a single upload call and always
// released afterward, including on failure.
type ProgressFunc func(current, total int64)

// UploadFile uploads the file at path into parentID via a resumable upload
// and returns the new item's ID. The file's base name becomes the item name.
func (s *Service) UploadFile(ctx context.Context, path, mimeType, parentID string, progress ProgressFunc) (string, error) {
	if err := requireNonEmpty("path", path); err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("unable to open upload source: %w", err)
	}

	defer func() {
		_ = f.Close()
	}()

	return s.UploadStream(ctx, f, filepath.Base(path), mimeType, parentID, progress)
}

// UploadStream uploads r as a new item named name under parentID via a
// resumable upload and returns the new item's ID. A seekable r is rewound to
// the start first, in case the caller has already consumed part of it. The
// upload must reach the completed state: a server response without an ID is
// reported as a distinct "completed but no id" failure rather than returned.
// Context cancellation propagates as-is, never as an UploadError.
func (s *Service) UploadStream(ctx context.Context, r io.Reader, name, mimeType, parentID string, progress ProgressFunc) (string, error) {
	if err := requireNonEmpty("name", name); err != nil {
		return "", err
	}

	if err := requireNonEmpty("mimeType", mimeType); err != nil {
		return "", err
	}

	if err := requireNonEmpty("parentID", parentID); err != nil {
		return "", err
	}

	if err := rewind(r); err != nil {
		return "", err
	}

	meta := &drive.File{Name: name, Parents: []string{parentID}}

	f, err := s.api.UploadFile(ctx, meta, r, mimeType, updater(progress))
	if err != nil {
		if isCancellation(err) {
			return "", err
		}

		return "", &UploadError{Status: "failed", Reason: "create upload did not complete", Cause: err}
	}

	if f == nil || f.Id == "" {
		return "", &UploadError{Status: "completed", Reason: "server returned no file ID"}
	}

	return f.Id, nil
}

// UpdateContent replaces the bytes of an existing item via a resumable
// upload. No metadata fields are sent, so everything else is preserved.
func (s *Service) UpdateContent(ctx context.Context, id string, content io.Reader, contentType string, progress ProgressFunc) error {
	if err := requireNonEmpty("id", id); err != nil {
		return err
	}

	if err := requireNonEmpty("contentType", contentType); err != nil {
		return err
	}

	if err := rewind(content); err != nil {
		return err
	}

	f, err := s.api.UpdateFileMedia(ctx, id, content, contentType, updater(progress))
	if err != nil {
		if isCancellation(err) {
			return err
		}

		return &UploadError{Status: "failed", Reason: "content update did not complete", Cause: err}
	}

	if f == nil || f.Id == "" {
		return &UploadError{Status: "completed", Reason: "server returned no file ID"}
	}

	return nil
}

// rewind resets a seekable reader to its start; non-seekable readers are
// used as-is.
func rewind(r io.Reader) error {
	seeker, ok := r.(io.Seeker)
	if !ok {
		return nil
	}

	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("unable to rewind upload stream: %w", err)
	}

	return nil
}

func updater(progress ProgressFunc) googleapi.ProgressUpdater {
	if progress == nil {
		return nil
	}

	return googleapi.ProgressUpdater(progress)
}
