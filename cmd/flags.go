package cmd

import (
	"github.com/etnz/drivelog/date"
)

// parseDate reads a -d flag value, defaulting to today when empty.
func parseDate(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}
