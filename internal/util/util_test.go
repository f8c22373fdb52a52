package util

import (
	"testing"
	"time"
)

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		region   string
		expected string
	}{
		{name: "national US number", input: "(650) 253-0000", region: "US", expected: "+16502530000"},
		{name: "lower-case region", input: "650 253 0000", region: "us", expected: "+16502530000"},
		{name: "international overrides region", input: "+44 20 7031 3000", region: "US", expected: "+442070313000"},
		{name: "unparseable kept verbatim", input: "  call the bar  ", region: "US", expected: "call the bar"},
		{name: "invalid number kept", input: "123", region: "US", expected: "123"},
		{name: "empty", input: "   ", region: "US", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NormalizePhone(tt.input, tt.region); got != tt.expected {
				t.Fatalf("NormalizePhone(%q, %q) = %q, want %q", tt.input, tt.region, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "sub-second", duration: 350 * time.Millisecond, expected: "350ms"},
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
