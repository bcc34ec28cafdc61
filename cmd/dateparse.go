package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tj/go-naturaldate"
)

// parseDateTime parses the --since flag. Supported, in precedence order:
// named dates ("today", "yesterday"), ISO 8601 dates and datetimes,
// relative day counts ("7d"), Go durations ("24h"), and natural language
// ("last week") as a fallback.
func parseDateTime(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	now := time.Now()

	switch dateStr {
	case "today":
		return midnight(now), nil
	case "yesterday":
		return midnight(now.AddDate(0, 0, -1)), nil
	}

	isoFormats := []string{
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02T15:04:05",
		"2006-01-02",
	}

	for _, format := range isoFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	// Go's ParseDuration has no day unit.
	if daysStr, ok := strings.CutSuffix(dateStr, "d"); ok {
		if days, err := strconv.Atoi(daysStr); err == nil && days >= 0 {
			return now.AddDate(0, 0, -days), nil
		}
	}

	if d, err := time.ParseDuration(dateStr); err == nil {
		return now.Add(-d), nil
	}

	t, err := naturaldate.Parse(dateStr, now, naturaldate.WithDirection(naturaldate.Past))
	if err != nil || t.Equal(now) {
		return time.Time{}, fmt.Errorf(
			"unable to parse date %q; supported: ISO 8601 (2006-01-02), relative (7d, 24h), named (today, yesterday), natural language (last week)",
			dateStr)
	}

	return t, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
