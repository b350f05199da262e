// Package parse contains the pure normalizers that turn user-facing
// strings into typed values. Parse failures are non-fatal by contract:
// callers skip the affected field or filter instead of aborting.
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrParse marks input that no normalizer could interpret.
var ErrParse = errors.New("unparseable input")

// Absolute date layouts, tried in order. The MM/DD layout deliberately
// precedes DD/MM, so 03/04/2025 always reads as March 4th.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"2006-01-02 15:04",
}

// Date resolves a date expression against now. Resolution order:
// literal keywords (today/tomorrow/yesterday), absolute layouts,
// then relative expressions of the shape "in N day(s)|week(s)|month(s)".
func Date(input string, now time.Time) (time.Time, error) {
	switch strings.ToLower(input) {
	case "today":
		return now, nil
	case "tomorrow":
		return now.AddDate(0, 0, 1), nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, input, now.Location()); err == nil {
			return t, nil
		}
	}

	fields := strings.Fields(input)
	if len(fields) >= 3 && fields[0] == "in" {
		value, err := strconv.Atoi(fields[1])
		if err == nil && value > 0 {
			unit := strings.ToLower(fields[2])
			switch {
			case strings.HasPrefix(unit, "day"):
				return now.AddDate(0, 0, value), nil
			case strings.HasPrefix(unit, "week"):
				return now.AddDate(0, 0, value*7), nil
			case strings.HasPrefix(unit, "month"):
				return now.AddDate(0, value, 0), nil
			}
		}
	}

	return time.Time{}, fmt.Errorf("%w: date %q", ErrParse, input)
}

// AbsoluteDateTime parses the single YYYY-MM-DD HH:MM layout used for
// absolute alarm triggers.
func AbsoluteDateTime(input string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", input, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date-time %q", ErrParse, input)
	}
	return t, nil
}

// Priority resolves a priority token to its numeric level.
// Accepts the named levels case-insensitively or a bare integer 0-9.
func Priority(input string) (int, error) {
	switch strings.ToLower(input) {
	case "high", "h", "1":
		return 1, nil
	case "medium", "med", "m", "5":
		return 5, nil
	case "low", "l", "9":
		return 9, nil
	case "none", "n", "0":
		return 0, nil
	}

	if n, err := strconv.Atoi(input); err == nil && n >= 0 && n <= 9 {
		return n, nil
	}

	return 0, fmt.Errorf("%w: priority %q", ErrParse, input)
}
