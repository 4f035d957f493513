// Package utils provides utility functions for the application.
package utils

import (
	"time"
)

// UTCNow returns the current time in UTC
func UTCNow() time.Time {
	return time.Now().UTC()
}

// ParseRFC3339OrNow parses an RFC3339 timestamp; an empty value yields the current UTC time
func ParseRFC3339OrNow(value string) (time.Time, error) {
	if value == "" {
		return UTCNow(), nil
	}
	return time.Parse(time.RFC3339, value)
}
