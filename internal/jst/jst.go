// Package jst converts between JST wall-clock text and UTC instants.
// JST is treated as a fixed +09:00 offset. No timezone database lookups.
package jst

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const Offset = 9 * time.Hour

// matches 'YYYY-MM-DD HH:mm' with optional seconds. 'T' is accepted
// as the separator since some clients send the datetime-local form.
var textPattern = regexp.MustCompile(
	`^(\d{4})-(\d{2})-(\d{2})[ T](\d{2}):(\d{2})(?::(\d{2}))?$`,
)

// TextToUTC parses a JST wall-clock string like '2025-08-20 12:00' and
// returns the equivalent UTC instant. Anything not matching the pattern
// is rejected, there is no lenient parsing.
func TextToUTC(text string) (time.Time, error) {
	m := textPattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, fmt.Errorf("invalid jst timestamp %q, expected 'YYYY-MM-DD HH:mm'", text)
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])
	second := 0
	if m[6] != "" {
		second, _ = strconv.Atoi(m[6])
	}

	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, fmt.Errorf("invalid jst timestamp %q, field out of range", text)
	}

	// build the wall-clock value as if it were UTC, then shift back 9h
	wall := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	return wall.Add(-Offset), nil
}

// UTCToText formats a UTC instant as JST wall-clock text
// 'YYYY-MM-DD HH:mm'. Seconds are truncated. Zero time yields "".
func UTCToText(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Add(Offset).Format("2006-01-02 15:04")
}
