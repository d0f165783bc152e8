package formparse

import "time"

// parseDate parses the date formats EDGAR actually emits: "20240215"
// (header fields), "20240215163055" (acceptance datetimes), and
// "2024-02-15" (XML elements). Unparseable or empty input returns the
// zero time rather than an error — dates are optional almost everywhere
// in this domain.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{"20060102", "20060102150405", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
