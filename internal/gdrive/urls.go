package gdrive

import (
	"fmt"
	"net/url"
	"strings"
)

// ExtractFileID pulls the file ID out of the Drive and Docs URL shapes users
// paste into the CLI:
//   - docs.google.com/{document,spreadsheets,presentation,drawings}/d/{ID}/...
//   - drive.google.com/file/d/{ID}/...
//   - drive.google.com/open?id={ID}
//
// A bare ID (no scheme, no slashes) is returned unchanged, so commands
// accept IDs and URLs interchangeably.
func ExtractFileID(raw string) (string, error) {
	if raw == "" {
		return "", invalidArgf("URL or file ID must not be empty")
	}

	if !strings.Contains(raw, "/") && !strings.Contains(raw, "?") {
		return raw, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("unable to parse Drive URL: %w", err)
	}

	if id := u.Query().Get("id"); id != "" {
		return id, nil
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, seg := range segments {
		if seg == "d" && i+1 < len(segments) {
			return segments[i+1], nil
		}
	}

	return "", fmt.Errorf("unable to extract file ID from URL: %s", raw)
}
