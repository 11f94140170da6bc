package helpers

import (
	"strconv"
	"time"

	"tourism-service/internal/pkg/errors"
)

const DateLayout = "2006-01-02"

// ParseDate parses a calendar date in UTC.
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, errors.BadRequest("invalid date format, expected YYYY-MM-DD: " + value)
	}
	return t, nil
}

// ParseOptionalDate returns nil for an empty value.
func ParseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Today returns the current UTC date truncated to midnight.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// QueryInt parses value or returns def when it is empty or not a number.
func QueryInt(value string, def int) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return n
}

// QueryFloat returns nil when value is empty or not a number.
func QueryFloat(value string) *float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &f
}

// QueryBool returns nil unless value is "true" or "false".
func QueryBool(value string) *bool {
	switch value {
	case "true":
		b := true
		return &b
	case "false":
		b := false
		return &b
	}
	return nil
}
