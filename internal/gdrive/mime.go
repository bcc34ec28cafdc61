package gdrive

import (
	"mime"
	"strings"
)

// Export MIME types for Workspace documents.
const (
	MimeTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeTypeXlsx = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MimeTypePptx = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	MimeTypePng  = "image/png"
)

// exportMimeTypes maps the closed set of exportable Workspace types to one
// concrete download format each. Anything outside this set has no mapping.
var exportMimeTypes = map[string]string{
	MimeTypeGoogleDoc:          MimeTypeDocx,
	MimeTypeGoogleSheet:        MimeTypeXlsx,
	MimeTypeGooglePresentation: MimeTypePptx,
	MimeTypeGoogleDrawing:      MimeTypePng,
}

// extensions covers the export formats and a few types the stdlib mime table
// resolves ambiguously across platforms.
var extensions = map[string]string{
	MimeTypeDocx:       "docx",
	MimeTypeXlsx:       "xlsx",
	MimeTypePptx:       "pptx",
	MimeTypePng:        "png",
	"application/pdf":  "pdf",
	"text/plain":       "txt",
	"text/csv":         "csv",
	"application/json": "json",
	"image/jpeg":       "jpg",
}

// IsWorkspaceMime reports whether mimeType is a Google Workspace virtual
// type, matched by prefix case-insensitively. Empty input is not a
// Workspace type.
func IsWorkspaceMime(mimeType string) bool {
	if mimeType == "" {
		return false
	}

	return strings.HasPrefix(strings.ToLower(mimeType), workspacePrefix)
}

// ExportMimeFor returns the concrete download format for a Workspace virtual
// type. The second result is false for anything outside the known set,
// including MIME types that are already concrete.
func ExportMimeFor(virtualType string) (string, bool) {
	m, ok := exportMimeTypes[strings.ToLower(virtualType)]

	return m, ok
}

// ExtensionFor returns the conventional file extension (without the dot) for
// a concrete MIME type, falling back to the stdlib MIME table. The second
// result is false when no extension is known.
func ExtensionFor(mimeType string) (string, bool) {
	if ext, ok := extensions[strings.ToLower(mimeType)]; ok {
		return ext, true
	}

	exts, err := mime.ExtensionsByType(mimeType)
	if err != nil || len(exts) == 0 {
		return "", false
	}

	return strings.TrimPrefix(exts[0], "."), true
}
