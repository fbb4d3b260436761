package ledger

import (
	"strconv"
	"strings"
	"time"
)

// Normalize canonicalizes a raw field value. The second return is false when
// the value lands in the null bucket: empty or whitespace-only input always,
// plus anything that fails to parse for numeric and date fields. Valid
// numbers come back in strconv canonical form, valid dates as YYYY-MM-DD
// with any time-of-day discarded.
func Normalize(raw string, t Type) (string, bool) {
	switch t {
	case TypeNumber:
		f, ok := NormalizeNumber(raw)
		if !ok {
			return "", false
		}

		return strconv.FormatFloat(f, 'f', -1, 64), true
	case TypeDate:
		return NormalizeDate(raw)
	default:
		s := strings.TrimSpace(raw)
		if s == "" {
			return "", false
		}

		return s, true
	}
}

// NormalizeNumber coerces a raw value to a float. Amounts arrive both as
// numbers and as numeric strings from the feed, so this is the single
// coercion point before any arithmetic or numeric sort.
func NormalizeNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return f, true
}

// dateLayouts are the formats accepted for date normalization, most common
// first. RFC3339 covers timestamps from the feed API.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// NormalizeDate parses a calendar date and returns it as YYYY-MM-DD.
func NormalizeDate(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}

	return "", false
}

// Equal reports whether two raw values normalize to the same thing. Both in
// the null bucket counts as equal, so "", "  ", and a stored null are all
// unchanged relative to each other; callers use this to suppress redundant
// writes when an edit normalizes to the stored value.
func Equal(a, b string, t Type) bool {
	na, aok := Normalize(a, t)
	nb, bok := Normalize(b, t)

	if !aok || !bok {
		return aok == bok
	}

	return na == nb
}
