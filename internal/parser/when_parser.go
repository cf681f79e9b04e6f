package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ParseTimestamp parses the timestamp formats accepted for manual
// entries.
// Supported formats:
// - yyyy-mm-dd hh:mm (e.g., "2024-12-15 18:30")
// - dd/mm/yyyy hh:mm (e.g., "15/12/2024 18:30")
// - today hh:mm / yesterday hh:mm
// - hh:mm (today)
func ParseTimestamp(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	if t, err := parseAbsolute(input); err == nil {
		return t, nil
	}

	if t, err := parseRelativeDay(input); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid timestamp %q. Use: yyyy-mm-dd hh:mm, dd/mm/yyyy hh:mm, today hh:mm, yesterday hh:mm, or hh:mm", input)
}

// parseAbsolute tries the explicit-date layouts.
func parseAbsolute(input string) (time.Time, error) {
	layouts := []string{
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"02/01/2006 15:04",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, input, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("not an absolute timestamp")
}

var relativeDayRegex = regexp.MustCompile(`^(today|yesterday)?\s*(\d{1,2}):(\d{2})$`)

// parseRelativeDay parses "today 14:00", "yesterday 09:15" and a bare
// "14:00" (today).
func parseRelativeDay(input string) (time.Time, error) {
	matches := relativeDayRegex.FindStringSubmatch(strings.ToLower(input))
	if matches == nil {
		return time.Time{}, fmt.Errorf("not a relative timestamp")
	}

	clock, err := time.Parse("15:04", matches[2]+":"+matches[3])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time of day")
	}

	day := time.Now()
	if matches[1] == "yesterday" {
		day = day.AddDate(0, 0, -1)
	}

	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.Local), nil
}
