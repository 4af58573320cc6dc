package timeutil_test

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/ayoisaiah/vntracker/internal/timeutil"
)

var durationRegex = regexp.MustCompile(`^(\d+)h (\d+)m (\d+)s$`)

func TestFormatDuration(t *testing.T) {
	testCases := []struct {
		Name    string
		Want    string
		Seconds uint64
	}{
		{Name: "zero", Seconds: 0, Want: "0h 0m 0s"},
		{Name: "seconds only", Seconds: 59, Want: "0h 0m 59s"},
		{Name: "minute rollover", Seconds: 65, Want: "0h 1m 5s"},
		{Name: "hour rollover", Seconds: 3661, Want: "1h 1m 1s"},
		{Name: "many hours", Seconds: 100 * 3600, Want: "100h 0m 0s"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Want, timeutil.FormatDuration(tc.Seconds))
		})
	}
}

func TestParseDuration(t *testing.T) {
	testCases := []struct {
		Name  string
		Input string
		Want  uint64
	}{
		{Name: "empty string", Input: "", Want: 0},
		{Name: "canonical", Input: "1h 1m 5s", Want: 3665},
		{Name: "missing components", Input: "2m", Want: 120},
		{Name: "out of order", Input: "5s 1h", Want: 3605},
		{Name: "extra whitespace", Input: "  1h\t 2m  3s ", Want: 3723},
		{Name: "unparseable token", Input: "xh 2m", Want: 120},
		{Name: "later token wins", Input: "1h 2h", Want: 7200},
		{Name: "later invalid token resets unit", Input: "1h yh", Want: 0},
		{Name: "negative is unparseable", Input: "-1h 5s", Want: 5},
		{Name: "leading plus sign", Input: "+5h +1m", Want: 5*3600 + 60},
		{Name: "double plus sign is unparseable", Input: "++5h 2s", Want: 2},
		{Name: "bare plus sign is unparseable", Input: "+h 2s", Want: 2},
		{Name: "token without unit ignored", Input: "12 3s", Want: 3},
		{Name: "ms token is seconds with bad prefix", Input: "1m 5ms", Want: 60},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Want, timeutil.ParseDuration(tc.Input))
		})
	}
}

func TestAddDuration(t *testing.T) {
	assert.Equal(t, "1h 1m 5s", timeutil.AddDuration("1h 0m 0s", 65))
	assert.Equal(t, "0h 0m 30s", timeutil.AddDuration("", 30))
}

func TestPropertyDurationRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.Uint64Range(0, 1_000_000_000).Draw(t, "seconds")

		got := timeutil.ParseDuration(timeutil.FormatDuration(s))
		if got != s {
			t.Fatalf("round trip of %d produced %d", s, got)
		}
	})
}

func TestPropertyDurationWellFormed(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.Uint64Range(0, 1_000_000_000).Draw(t, "seconds")

		out := timeutil.FormatDuration(s)

		match := durationRegex.FindStringSubmatch(out)
		if match == nil {
			t.Fatalf("%q is not in canonical form", out)
		}

		for _, part := range match[2:] {
			n, err := strconv.Atoi(part)
			if err != nil || n < 0 || n > 59 {
				t.Fatalf("component %q of %q out of range", part, out)
			}
		}
	})
}
