package gdrive

import (
	"fmt"
	"strings"
	"time"
)

// queryOptions controls the generated Files.List query string.
type queryOptions struct {
	// Name filters on exact name equality (no fuzzy match).
	Name string
	// ParentID filters on parent membership; empty means no parent filter.
	ParentID string
	// MimeType filters on MIME type equality.
	MimeType string
	// ModifiedAfter filters on modification time (zero = no filter).
	ModifiedAfter time.Time
	// Trashed selects trashed or live items. Every generated query carries
	// a trashed clause so results are never a mix of both.
	Trashed bool
}

// buildQuery assembles a Drive query string from opts using the documented
// filter syntax, e.g. mimeType='X' and name='Y' and 'Z' in parents and
// trashed=false. String values are single-quote escaped.
func buildQuery(opts queryOptions) string {
	var parts []string

	if opts.MimeType != "" {
		parts = append(parts, fmt.Sprintf("mimeType='%s'", escapeQuery(opts.MimeType)))
	}

	if opts.Name != "" {
		parts = append(parts, fmt.Sprintf("name='%s'", escapeQuery(opts.Name)))
	}

	if opts.ParentID != "" {
		parts = append(parts, fmt.Sprintf("'%s' in parents", escapeQuery(opts.ParentID)))
	}

	if !opts.ModifiedAfter.IsZero() {
		parts = append(parts, fmt.Sprintf("modifiedTime > '%s'", opts.ModifiedAfter.UTC().Format(time.RFC3339)))
	}

	parts = append(parts, fmt.Sprintf("trashed=%t", opts.Trashed))

	return strings.Join(parts, " and ")
}

// escapeQuery escapes backslashes and single quotes for embedding in a Drive
// query string literal.
func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)

	return s
}
