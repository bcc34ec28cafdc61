package gdrive

import "google.golang.org/api/drive/v3"

// Google Workspace MIME types.
const (
	MimeTypeFolder             = "application/vnd.google-apps.folder"
	MimeTypeGoogleDoc          = "application/vnd.google-apps.document"
	MimeTypeGoogleSheet        = "application/vnd.google-apps.spreadsheet"
	MimeTypeGooglePresentation = "application/vnd.google-apps.presentation"
	MimeTypeGoogleDrawing      = "application/vnd.google-apps.drawing"
)

// workspacePrefix marks provider-native document formats that have no direct
// byte representation and must be exported before download.
const workspacePrefix = "application/vnd.google-apps."

// DefaultRootFolderID is the reserved sentinel for the Drive root.
const DefaultRootFolderID = "root"

// maxPageSize is the documented Files.List page size cap.
const maxPageSize = 1000

// Item is the normalized record for a Drive file or folder. It is built from
// a single API response and never cached beyond that call.
type Item struct {
	ID       string
	Name     string
	MimeType string
	Parents  []string
	Trashed  bool
}

// IsFolder reports whether the item is a Drive folder.
func (it Item) IsFolder() bool {
	return it.MimeType == MimeTypeFolder
}

func newItem(f *drive.File) Item {
	return Item{
		ID:       f.Id,
		Name:     f.Name,
		MimeType: f.MimeType,
		Parents:  f.Parents,
		Trashed:  f.Trashed,
	}
}

func newItems(files []*drive.File) []Item {
	items := make([]Item, 0, len(files))
	for _, f := range files {
		items = append(items, newItem(f))
	}

	return items
}
