package store

import "time"

// Appointment dates are stored the way the booking frontend renders them:
// a US locale calendar string without leading zeros ("5/1/2024"). Queries
// arrive in whatever format the client used, so they are normalized to that
// form before comparison.
const dateLayout = "1/2/2006"

var acceptedLayouts = []string{
	dateLayout,
	"2006-01-02",
	time.RFC3339,
	"Jan 2, 2006",
}

// NormalizeDate reduces s to calendar-date granularity in the stored layout.
// Unparseable input is returned unchanged so an exact-match query can still
// hit records written with the same raw string.
func NormalizeDate(s string) string {
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dateLayout)
		}
	}
	return s
}
