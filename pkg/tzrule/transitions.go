package tzrule

import "github.com/clockshift-dev/clockshift/pkg/calendar"

// SwitchDay resolves the day of month on which the rule switches in the
// given month of year. For a positive week selector it scans forward from
// the 1st to the first matching weekday (at most seven steps) and advances
// whole weeks; for the last-occurrence selector it derives the weekday of
// the month's final day and scans backward.
func (r Rule) SwitchDay(year, month int, isStart bool) int {
	week := r.EndWeek
	if isStart {
		week = r.StartWeek
	}

	firstWeekday := calendar.WeekdayFromDays(calendar.DaysFromDate(year, month, 1))

	if week > 0 {
		day := 1
		wd := firstWeekday
		for wd != r.Weekday {
			day++
			wd = (wd + 1) % 7
		}
		return day + 7*(week-1)
	}

	inMonth := calendar.DaysInMonth(month, year)
	day := inMonth
	wd := (firstWeekday + inMonth - 1) % 7
	for wd != r.Weekday {
		day--
		wd--
		if wd < 0 {
			wd = 6
		}
	}
	return day
}

// StartUTC returns the UTC instant at which DST begins in year. The local
// switch instant is read on the standard-time clock, the one in effect
// immediately before the transition.
func (r Rule) StartUTC(year int) int64 {
	day := r.SwitchDay(year, r.StartMonth, true)
	local := calendar.DateToMillis(year, r.StartMonth, day, r.StartHour, 0, 0)
	return local - int64(r.OffsetMin)*calendar.MillisPerMinute
}

// EndUTC returns the UTC instant at which DST ends in year. The local switch
// instant is read on the DST clock, the one in effect immediately before the
// transition. Using the standard offset here would shift the instant by the
// DST delta.
func (r Rule) EndUTC(year int) int64 {
	day := r.SwitchDay(year, r.EndMonth, false)
	local := calendar.DateToMillis(year, r.EndMonth, day, r.EndHour, 0, 0)
	return local - int64(r.OffsetDSTMin)*calendar.MillisPerMinute
}

// TransitionsUTC returns both of year's transition instants. For southern-
// hemisphere rules the end instant precedes the start instant within the
// same calendar year.
func (r Rule) TransitionsUTC(year int) (startMs, endMs int64) {
	return r.StartUTC(year), r.EndUTC(year)
}
