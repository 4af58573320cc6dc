package config

import (
	"slices"
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/vntracker/internal/models"
	"github.com/ayoisaiah/vntracker/internal/timeutil"
)

// FilterConfig represents a configuration to filter sessions by the time
// they were recorded.
type FilterConfig struct {
	StartTime time.Time
	EndTime   time.Time
}

// getTimeRange returns the start and end time according to the
// specified time period.
func getTimeRange(now time.Time, period timeutil.Period) (start, end time.Time) {
	start = timeutil.RoundToStart(now)

	end = timeutil.RoundToEnd(now)

	//nolint:exhaustive // other cases covered by default
	switch period {
	case timeutil.PeriodToday:
		return
	case timeutil.PeriodYesterday:
		start = now.AddDate(0, 0, timeutil.Range[period])
		start = timeutil.RoundToStart(start)
		end = timeutil.RoundToEnd(start)

		return
	case timeutil.PeriodAllTime:
		start = time.Time{}
		return
	default:
		start = now.AddDate(0, 0, timeutil.Range[period])
		start = timeutil.RoundToStart(start)
	}

	return
}

// NewFilter builds a filter from a period name or a free-form start date.
// The period wins when both are set; with neither, every session matches.
func NewFilter(now time.Time, period, since string) (*FilterConfig, error) {
	p := timeutil.Period(strings.TrimSpace(period))

	if p != "" {
		if !slices.Contains(timeutil.PeriodCollection, p) {
			names := make([]string, len(timeutil.PeriodCollection))
			for i, v := range timeutil.PeriodCollection {
				names[i] = string(v)
			}

			return nil, errInvalidPeriod.Fmt(strings.Join(names, ", "))
		}

		f := &FilterConfig{}
		f.StartTime, f.EndTime = getTimeRange(now, p)

		return f, nil
	}

	f := &FilterConfig{EndTime: now}

	since = strings.TrimSpace(since)
	if since == "" {
		return f, nil
	}

	dt, err := dps.Parse(&dps.Configuration{CurrentTime: now}, since)
	if err != nil || dt.Time.IsZero() {
		return nil, errInvalidSince.Fmt(since)
	}

	f.StartTime = dt.Time

	if f.EndTime.Before(f.StartTime) {
		return nil, errInvalidDateRange
	}

	return f, nil
}

// Filter builds a session filter from the --period and --since flags.
func Filter(ctx *cli.Context) (*FilterConfig, error) {
	return NewFilter(time.Now(), ctx.String("period"), ctx.String("since"))
}

// Match reports whether sess was recorded inside the filter's range.
// Sessions with a date that cannot be parsed always match.
func (f *FilterConfig) Match(sess models.Session) bool {
	t, err := timeutil.ParseSessionDate(sess.Date)
	if err != nil {
		return true
	}

	if !f.StartTime.IsZero() && t.Before(f.StartTime) {
		return false
	}

	if !f.EndTime.IsZero() && t.After(f.EndTime) {
		return false
	}

	return true
}

// Apply returns the sessions that match the filter, in their original order.
func (f *FilterConfig) Apply(sessions []models.Session) []models.Session {
	out := make([]models.Session, 0, len(sessions))

	for _, sess := range sessions {
		if f.Match(sess) {
			out = append(out, sess)
		}
	}

	return out
}
