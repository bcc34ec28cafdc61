package gdrive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Download fetches the item's content into destDir and returns the path of
// the written file. Workspace documents are export-downloaded in their
// mapped concrete format; everything else is a direct binary download. The
// destination file name is the item's name with any extension replaced by
// the one matching the downloaded MIME type. destDir is created if absent.
func (s *Service) Download(ctx context.Context, id, destDir string) (string, error) {
	if err := requireNonEmpty("id", id); err != nil {
		return "", err
	}

	if err := requireNonEmpty("destDir", destDir); err != nil {
		return "", err
	}

	item, err := s.Metadata(ctx, id)
	if err != nil {
		return "", err
	}

	contentMime := item.MimeType

	if IsWorkspaceMime(item.MimeType) {
		exportMime, ok := ExportMimeFor(item.MimeType)
		if !ok {
			return "", &UnsupportedMimeTypeError{MimeType: item.MimeType, Reason: "no export mapping for Workspace type"}
		}

		contentMime = exportMime
	}

	ext, ok := ExtensionFor(contentMime)
	if !ok {
		return "", &UnsupportedMimeTypeError{MimeType: contentMime, Reason: "no known file extension"}
	}

	var body io.ReadCloser
	if contentMime == item.MimeType {
		body, err = s.api.DownloadFile(ctx, id)
	} else {
		body, err = s.api.ExportFile(ctx, id, contentMime)
	}

	if err != nil {
		return "", err
	}

	defer func() {
		_ = body.Close()
	}()

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("unable to create destination directory: %w", err)
	}

	destPath := filepath.Join(destDir, destFileName(item.Name, ext))

	out, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("unable to create destination file: %w", err)
	}

	if _, err := io.Copy(out, body); err != nil {
		_ = out.Close()

		return "", fmt.Errorf("unable to write file content: %w", err)
	}

	if err := out.Close(); err != nil {
		return "", fmt.Errorf("unable to close destination file: %w", err)
	}

	return destPath, nil
}

// Export streams a Workspace document converted to exportMimeType. The
// caller owns the returned reader.
func (s *Service) Export(ctx context.Context, id, exportMimeType string) (io.ReadCloser, error) {
	if err := requireNonEmpty("id", id); err != nil {
		return nil, err
	}

	if err := requireNonEmpty("exportMimeType", exportMimeType); err != nil {
		return nil, err
	}

	return s.api.ExportFile(ctx, id, exportMimeType)
}

// ExportString exports a Workspace document and returns the converted
// content as a string.
func (s *Service) ExportString(ctx context.Context, id, exportMimeType string) (string, error) {
	body, err := s.Export(ctx, id, exportMimeType)
	if err != nil {
		return "", err
	}

	defer func() {
		_ = body.Close()
	}()

	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("failed to read exported content: %w", err)
	}

	return string(data), nil
}

// destFileName strips the original extension and appends the resolved one.
func destFileName(name, ext string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if base == "" {
		base = name
	}

	return base + "." + ext
}
