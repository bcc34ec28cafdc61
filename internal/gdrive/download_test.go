package gdrive

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/drive/v3"
)

func TestDownloadConcreteFile(t *testing.T) {
	api := &fakeAPI{
		files: map[string]*drive.File{
			"x": {Id: "x", Name: "report.bin", MimeType: "application/pdf"},
		},
		downloadContent: "pdf-bytes",
	}
	svc := NewService(api)

	destDir := filepath.Join(t.TempDir(), "out", "nested")

	path, err := svc.Download(context.Background(), "x", destDir)
	require.NoError(t, err)

	// Extension replaced to match the actual content type.
	assert.Equal(t, filepath.Join(destDir, "report.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(data))

	assert.Equal(t, []string{"x"}, api.downloadedIDs)
	assert.Empty(t, api.exportedIDs)
}

func TestDownloadWorkspaceDocExports(t *testing.T) {
	api := &fakeAPI{
		files: map[string]*drive.File{
			"doc1": {Id: "doc1", Name: "Quarterly Plan", MimeType: MimeTypeGoogleDoc},
		},
		exportContent: "docx-bytes",
	}
	svc := NewService(api)

	destDir := t.TempDir()

	path, err := svc.Download(context.Background(), "doc1", destDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(destDir, "Quarterly Plan.docx"), path)

	require.Len(t, api.exportedMimes, 1)
	assert.Equal(t, MimeTypeDocx, api.exportedMimes[0])
	assert.Empty(t, api.downloadedIDs)
}

func TestDownloadUnmappedWorkspaceType(t *testing.T) {
	api := &fakeAPI{files: map[string]*drive.File{
		"form1": {Id: "form1", Name: "Survey", MimeType: "application/vnd.google-apps.form"},
	}}
	svc := NewService(api)

	_, err := svc.Download(context.Background(), "form1", t.TempDir())
	require.ErrorIs(t, err, ErrUnsupportedMimeType)

	// Detected before any download or export request.
	assert.Empty(t, api.downloadedIDs)
	assert.Empty(t, api.exportedIDs)
}

func TestDestFileName(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		want string
	}{
		{"report.bin", "pdf", "report.pdf"},
		{"no-extension", "docx", "no-extension.docx"},
		{"archive.tar.gz", "gz", "archive.tar.gz"},
		{".hidden", "txt", ".hidden.txt"},
	}

	for _, tt := range tests {
		if got := destFileName(tt.name, tt.ext); got != tt.want {
			t.Errorf("destFileName(%q, %q) = %q, want %q", tt.name, tt.ext, got, tt.want)
		}
	}
}
