package minmax

import (
	"strconv"
	"strings"
	"time"
)

// rangeSeparators are tried in order when splitting a rep or warm-up range.
var rangeSeparators = []string{"-", "–", "to"}

// dateLayouts cover the renderings a cell takes after the spreadsheet tool
// silently reformats a typed "X-Y" range into a date. The month field is the
// only part that still carries the range's lower bound.
var dateLayouts = []string{
	"2-Jan",
	"02-Jan",
	"2-Jan-06",
	"Jan-2",
	"1/2/06",
	"1/2/2006",
	"2006-01-02",
}

// dateArtifactMonth reports the month of a date-formatted cell value.
// Plain range strings like "8-10" never match any layout, so the range
// split below stays unaffected.
func dateArtifactMonth(s string) (int, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return int(t.Month()), true
		}
	}
	return 0, false
}

// repLower extracts the lower bound of a rep-range cell.
// Date artifacts are checked before range splitting: "8-Jun" must yield 6
// (the month), not 8.
func repLower(val string) (int, bool) {
	s := strings.TrimSpace(val)
	if s == "" {
		return 0, false
	}

	if m, ok := dateArtifactMonth(s); ok {
		return m, true
	}

	for _, sep := range rangeSeparators {
		if i := strings.Index(s, sep); i >= 0 {
			left := strings.TrimSpace(s[:i])
			if n, err := strconv.Atoi(left); err == nil && n >= 0 {
				return n, true
			}
		}
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), true
	}
	return 0, false
}

// warmupCount converts a warm-up sets cell into a count, using the lower
// end of a range: "1-2" -> 1, "2-3" -> 2, 3 -> 3, blank/N/A -> 0.
func warmupCount(val string) int {
	s := strings.TrimSpace(val)
	if s == "" {
		return 0
	}

	if m, ok := dateArtifactMonth(s); ok {
		return m
	}

	switch strings.ToLower(s) {
	case "n/a", "na", "none":
		return 0
	}

	for _, sep := range rangeSeparators {
		if i := strings.Index(s, sep); i >= 0 {
			left := strings.TrimSpace(s[:i])
			if n, err := strconv.Atoi(left); err == nil && n >= 0 {
				return n
			}
			return 0
		}
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if n := int(f); n > 0 {
			return n
		}
	}
	return 0
}

// safeString returns the trimmed cell value, or def when the cell is blank.
func safeString(val, def string) string {
	s := strings.TrimSpace(val)
	if s == "" {
		return def
	}
	return s
}
