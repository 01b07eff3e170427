package jst

import (
	"testing"
	"time"
)

func TestTextToUTC(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
		ok   bool
	}{
		{
			name: "noon jst is 3am utc",
			in:   "2025-08-20 12:00",
			want: time.Date(2025, 8, 20, 3, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "midnight jst rolls back to previous utc day",
			in:   "2025-01-01 00:00",
			want: time.Date(2024, 12, 31, 15, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "seconds accepted",
			in:   "2025-08-20 12:00:30",
			want: time.Date(2025, 8, 20, 3, 0, 30, 0, time.UTC),
			ok:   true,
		},
		{
			name: "t separator accepted",
			in:   "2025-08-20T12:00",
			want: time.Date(2025, 8, 20, 3, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{name: "empty", in: "", ok: false},
		{name: "date only", in: "2025-08-20", ok: false},
		{name: "single digit hour", in: "2025-08-20 9:00", ok: false},
		{name: "trailing garbage", in: "2025-08-20 12:00 JST", ok: false},
		{name: "month out of range", in: "2025-13-20 12:00", ok: false},
		{name: "minute out of range", in: "2025-08-20 12:60", ok: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := TextToUTC(c.in)
			if c.ok {
				if err != nil {
					t.Fatalf("TextToUTC(%q) returned error: %v", c.in, err)
				}
				if !got.Equal(c.want) {
					t.Errorf("TextToUTC(%q) = %v, want %v", c.in, got, c.want)
				}
			} else {
				if err == nil {
					t.Errorf("TextToUTC(%q) = %v, want error", c.in, got)
				}
				if !got.IsZero() {
					t.Errorf("TextToUTC(%q) returned non-zero time with error", c.in)
				}
			}
		})
	}
}

func TestUTCToText(t *testing.T) {
	in := time.Date(2025, 8, 19, 4, 0, 45, 0, time.UTC)
	if got := UTCToText(in); got != "2025-08-19 13:00" {
		t.Errorf("UTCToText(%v) = %q, want %q", in, got, "2025-08-19 13:00")
	}
	if got := UTCToText(time.Time{}); got != "" {
		t.Errorf("UTCToText(zero) = %q, want empty", got)
	}
}

func TestRoundTrip(t *testing.T) {
	texts := []string{
		"2025-08-20 12:00",
		"2024-02-29 23:59",
		"2030-12-31 15:00",
		"2025-08-20 12:00:59", // seconds dropped on the way back
	}
	for _, text := range texts {
		instant, err := TextToUTC(text)
		if err != nil {
			t.Fatalf("TextToUTC(%q) returned error: %v", text, err)
		}
		got := UTCToText(instant)
		want := text
		if len(want) > 16 {
			want = want[:16]
		}
		if got != want {
			t.Errorf("round trip of %q = %q, want %q", text, got, want)
		}
	}
}
