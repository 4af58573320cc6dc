package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	secondsInAMinute = 60
	secondsInAnHour  = 3600
)

// ZeroDuration is the display form of an empty play time.
const ZeroDuration = "0h 0m 0s"

// FormatDuration renders a number of seconds as "Xh Ym Zs". Hours are
// unbounded; minutes and seconds are always in [0, 59].
func FormatDuration(seconds uint64) string {
	h := seconds / secondsInAnHour
	m := (seconds % secondsInAnHour) / secondsInAMinute
	s := seconds % secondsInAMinute

	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}

// ParseDuration converts a "Xh Ym Zs" string back into seconds. Each
// whitespace separated token ending in h, m or s sets that component; a token
// whose numeric prefix is not a non-negative integer (an optional leading
// plus sign is allowed) sets it to zero. Later
// tokens of the same unit replace earlier ones and other tokens are ignored.
func ParseDuration(str string) uint64 {
	var h, m, s uint64

	for _, part := range strings.Fields(str) {
		switch {
		case strings.HasSuffix(part, "h"):
			h = parseComponent(strings.TrimSuffix(part, "h"))
		case strings.HasSuffix(part, "m"):
			m = parseComponent(strings.TrimSuffix(part, "m"))
		case strings.HasSuffix(part, "s"):
			s = parseComponent(strings.TrimSuffix(part, "s"))
		}
	}

	return h*secondsInAnHour + m*secondsInAMinute + s
}

func parseComponent(v string) uint64 {
	v = strings.TrimPrefix(v, "+")

	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0
	}

	return n
}

// AddDuration adds elapsed seconds to a display duration and returns the new
// display string.
func AddDuration(hours string, elapsed uint64) string {
	return FormatDuration(ParseDuration(hours) + elapsed)
}
