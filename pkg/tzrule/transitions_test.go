package tzrule

import (
	"testing"

	"github.com/clockshift-dev/clockshift/pkg/calendar"
)

var (
	usEastern = Rule{
		StartMonth: 3, StartWeek: 2,
		EndMonth: 11, EndWeek: 1,
		Weekday:   0,
		StartHour: 2, EndHour: 2,
		OffsetMin: -300, OffsetDSTMin: -240,
	}
	centralEurope = Rule{
		StartMonth: 3, StartWeek: 0, // last Sunday
		EndMonth: 10, EndWeek: 0,
		Weekday:   0,
		StartHour: 2, EndHour: 3,
		OffsetMin: 60, OffsetDSTMin: 120,
	}
	sydney = Rule{
		StartMonth: 10, StartWeek: 1,
		EndMonth: 4, EndWeek: 1,
		Weekday:   0,
		StartHour: 2, EndHour: 3,
		OffsetMin: 600, OffsetDSTMin: 660,
	}
)

func TestSwitchDay(t *testing.T) {
	tests := []struct {
		name    string
		rule    Rule
		year    int
		month   int
		isStart bool
		want    int
	}{
		{"2nd Sunday March 2024", usEastern, 2024, 3, true, 10},
		{"1st Sunday November 2024", usEastern, 2024, 11, false, 3},
		{"2nd Sunday March 2025", usEastern, 2025, 3, true, 9},
		{"1st Sunday November 2025", usEastern, 2025, 11, false, 2},
		{"last Sunday March 2024", centralEurope, 2024, 3, true, 31},
		{"last Sunday October 2024", centralEurope, 2024, 10, false, 27},
		{"1st Sunday October 2024", sydney, 2024, 10, true, 6},
		{"1st Sunday April 2024", sydney, 2024, 4, false, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rule.SwitchDay(tt.year, tt.month, tt.isStart)
			if got != tt.want {
				t.Errorf("SwitchDay(%d, %d, %v) = %d, want %d",
					tt.year, tt.month, tt.isStart, got, tt.want)
			}
		})
	}
}

func TestTransitionsUTC(t *testing.T) {
	tests := []struct {
		name      string
		rule      Rule
		year      int
		wantStart int64
		wantEnd   int64
	}{
		{
			// 2024-03-10T07:00Z / 2024-11-03T06:00Z
			"us eastern 2024",
			usEastern, 2024,
			1710054000000,
			1730613600000,
		},
		{
			// Local switch hours 02:00 CET and 03:00 CEST both map to 01:00 UTC.
			"central europe 2024",
			centralEurope, 2024,
			calendar.DateToMillis(2024, 3, 31, 1, 0, 0),
			calendar.DateToMillis(2024, 10, 27, 1, 0, 0),
		},
		{
			// Southern hemisphere: the end instant precedes the start instant.
			"sydney 2024",
			sydney, 2024,
			calendar.DateToMillis(2024, 10, 5, 16, 0, 0),
			calendar.DateToMillis(2024, 4, 6, 16, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.rule.TransitionsUTC(tt.year)
			if start != tt.wantStart {
				t.Errorf("StartUTC(%d) = %d, want %d", tt.year, start, tt.wantStart)
			}
			if end != tt.wantEnd {
				t.Errorf("EndUTC(%d) = %d, want %d", tt.year, end, tt.wantEnd)
			}
		})
	}
}

func TestTransitionAsymmetry(t *testing.T) {
	// The end transition is derived with the DST offset. Deriving it with the
	// standard offset would land one DST delta later.
	end := usEastern.EndUTC(2024)
	endLocal := calendar.DateToMillis(2024, 11, 3, 2, 0, 0)
	if end != endLocal-int64(usEastern.OffsetDSTMin)*calendar.MillisPerMinute {
		t.Errorf("EndUTC(2024) = %d, not derived from the DST offset", end)
	}
	if end == endLocal-int64(usEastern.OffsetMin)*calendar.MillisPerMinute {
		t.Error("EndUTC(2024) was derived from the standard offset")
	}
}
