package normalize

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// unix values above this are taken as milliseconds.
const millisThreshold = 1_000_000_000_000

var layouts = []string{
	time.RFC3339Nano,
	time.RubyDate,
	time.RFC1123Z,
	time.RFC1123,
}

// parseTimestamp returns fallback when v is missing or cannot be parsed.
func parseTimestamp(v flexValue, fallback time.Time) time.Time {
	if v.isNull() {
		return fallback
	}
	return parseTimeString(v.string(), fallback)
}

func parseTimeString(s string, fallback time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil {
		if n <= 0 {
			return fallback
		}
		if n >= millisThreshold {
			return time.UnixMilli(int64(n)).UTC()
		}
		return time.Unix(int64(n), 0).UTC()
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	if t, err := dateparse.ParseAny(s); err == nil {
		return t
	}
	return fallback
}
