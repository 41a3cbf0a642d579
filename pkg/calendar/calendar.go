// Package calendar implements Gregorian calendar arithmetic anchored on the
// Unix epoch (1970-01-01T00:00:00 UTC). All functions are pure and operate on
// plain integers; timestamp decomposition performs a single 64-bit division
// and everything downstream of it is small-integer arithmetic, which keeps
// the package cheap on 32-bit targets.
package calendar

// MinYear and MaxYear bound the year search in YearFromDays. They are the
// supported timestamp range of the whole library, not a property of the
// algorithm itself: widen them if you need dates past 2500.
const (
	MinYear = 1971
	MaxYear = 2501
)

// Millisecond unit conversions shared across the module.
const (
	MillisPerSecond int64 = 1000
	MillisPerMinute int64 = 60 * MillisPerSecond
	MillisPerHour   int64 = 60 * MillisPerMinute
	MillisPerDay    int64 = 24 * MillisPerHour
)

// epochWeekday is the day of week of 1970-01-01, a Thursday.
const epochWeekday = 4

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	switch {
	case year%400 == 0:
		return true
	case year%100 == 0:
		return false
	default:
		return year%4 == 0
	}
}

// DaysInMonth returns the number of days in the given month (1-12) of year.
// It returns 0 for a month outside 1-12; callers are expected to pass
// validated months, the zero is a sentinel rather than an error.
func DaysInMonth(month, year int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeap(year) {
		return 29
	}
	return monthDays[month-1]
}

// leapsBefore counts the leap days between the epoch and the start of
// 1970+years. Closed form, no per-year iteration.
func leapsBefore(years int) int {
	return (years+1)/4 - (years+69)/100 + (years+369)/400
}

// DaysFromDate returns the number of days from 1970-01-01 to the given
// calendar date. Month accumulation is bounded at twelve iterations.
func DaysFromDate(year, month, day int) int {
	years := year - 1970
	days := years*365 + leapsBefore(years)
	for m := 1; m < month; m++ {
		days += monthDays[m-1]
		if m == 2 && IsLeap(year) {
			days++
		}
	}
	return days + day - 1
}

// DateToMillis builds a millisecond timestamp from calendar components.
// The components are not range-checked; compose validated values only.
func DateToMillis(year, month, day, hour, minute, second int) int64 {
	ms := int64(DaysFromDate(year, month, day)) * MillisPerDay
	ms += int64(hour) * MillisPerHour
	ms += int64(minute) * MillisPerMinute
	ms += int64(second) * MillisPerSecond
	return ms
}

// YearFromDays returns the calendar year containing the given day count
// since the epoch. Binary search over MinYear..MaxYear using the closed-form
// leap count, so no per-year walking: the last year whose cumulative day
// count does not exceed days wins.
func YearFromDays(days int) int {
	lo, hi := MinYear, MaxYear
	for lo < hi {
		mid := lo + (hi-lo)/2
		y := mid - 1970
		if y*365+leapsBefore(y) > days {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo - 1
}

// YearFromMillis returns the calendar year containing the millisecond
// timestamp.
func YearFromMillis(ms int64) int {
	return YearFromDays(int(ms / MillisPerDay))
}

// WeekdayFromDays returns the day of week (0=Sunday..6=Saturday) for a day
// count since the epoch.
func WeekdayFromDays(days int) int {
	return (days + epochWeekday) % 7
}

// Weekday returns the day of week (0=Sunday..6=Saturday) for a millisecond
// timestamp.
func Weekday(ms int64) int {
	return WeekdayFromDays(int(ms / MillisPerDay))
}
