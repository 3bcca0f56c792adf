package cli

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are the accepted explicit date formats.
var dateLayouts = []string{"2006-01-02", "02.01.2006", "2006/01/02"}

// parseDate turns a user-supplied date string into a UTC calendar date.
// Accepts "today", "yesterday" and the explicit layouts above.
func parseDate(s string, now time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return now.UTC().Truncate(24 * time.Hour), nil
	case "yesterday":
		return now.UTC().Truncate(24 * time.Hour).AddDate(0, 0, -1), nil
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return d.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (want today, yesterday, YYYY-MM-DD, DD.MM.YYYY or YYYY/MM/DD)", s)
}

// timestampFor converts a date string into the timestamp stored with an
// entry: today keeps the wall-clock time so same-day entries stay ordered,
// any other day is pinned to noon UTC.
func timestampFor(s string, now time.Time) (time.Time, error) {
	d, err := parseDate(s, now)
	if err != nil {
		return time.Time{}, err
	}
	if sameDay(d, now.UTC()) {
		return now.UTC(), nil
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.UTC), nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
