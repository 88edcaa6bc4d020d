// Package timecode converts textual timecodes to seconds.
package timecode

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts a timecode of the form "MM:SS" or "HH:MM:SS" into seconds.
// Fields must be plain integers. Anything else is rejected; callers that
// tolerate bad timestamps should fall back to zero seconds themselves.
func Parse(value string) (float64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, fmt.Errorf("timecode: empty value")
	}

	parts := strings.Split(trimmed, ":")
	switch len(parts) {
	case 2:
		minutes, err := parseField(parts[0])
		if err != nil {
			return 0, fmt.Errorf("timecode %q: %w", trimmed, err)
		}
		seconds, err := parseField(parts[1])
		if err != nil {
			return 0, fmt.Errorf("timecode %q: %w", trimmed, err)
		}
		return float64(minutes*60 + seconds), nil
	case 3:
		hours, err := parseField(parts[0])
		if err != nil {
			return 0, fmt.Errorf("timecode %q: %w", trimmed, err)
		}
		minutes, err := parseField(parts[1])
		if err != nil {
			return 0, fmt.Errorf("timecode %q: %w", trimmed, err)
		}
		seconds, err := parseField(parts[2])
		if err != nil {
			return 0, fmt.Errorf("timecode %q: %w", trimmed, err)
		}
		return float64(hours*3600 + minutes*60 + seconds), nil
	default:
		return 0, fmt.Errorf("timecode %q: expected MM:SS or HH:MM:SS", trimmed)
	}
}

// ParseOrZero converts a timecode and falls back to zero seconds when the
// value is malformed. The boolean reports whether the parse succeeded.
func ParseOrZero(value string) (float64, bool) {
	seconds, err := Parse(value)
	if err != nil {
		return 0, false
	}
	return seconds, true
}

func parseField(field string) (int, error) {
	field = strings.TrimSpace(field)
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("non-integer field %q", field)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative field %q", field)
	}
	return n, nil
}
