package calendar

// Time is a broken-down timestamp with millisecond precision, similar to a
// struct tm. It is produced on demand and never stored by the library.
type Time struct {
	Year    int // calendar year, 1970+
	Month   int // 1-12
	Day     int // 1-31
	Hour    int // 0-23
	Minute  int // 0-59
	Second  int // 0-59
	Millis  int // 0-999
	Weekday int // 0=Sunday .. 6=Saturday
}

// FromMillis decomposes a millisecond timestamp into its calendar fields.
// One 64-bit division splits days from the time of day; every field after
// that is derived with small-integer arithmetic.
func FromMillis(ms int64) Time {
	days := int(ms / MillisPerDay)
	rem := int(ms - int64(days)*MillisPerDay)

	var ts Time
	ts.Millis = rem % 1000
	remSec := rem / 1000
	ts.Second = remSec % 60
	ts.Minute = (remSec / 60) % 60
	ts.Hour = remSec / 3600

	year := YearFromDays(days)
	years := year - 1970
	dayOfYear := days - (years*365 + leapsBefore(years))
	ts.Year = year

	month := 1
	for month < 12 {
		inMonth := monthDays[month-1]
		if month == 2 && IsLeap(year) {
			inMonth = 29
		}
		if dayOfYear < inMonth {
			break
		}
		dayOfYear -= inMonth
		month++
	}
	ts.Month = month
	ts.Day = dayOfYear + 1

	ts.Weekday = WeekdayFromDays(days)
	return ts
}

// UnixMillis recomposes the millisecond timestamp described by the
// broken-down fields. The Weekday field is ignored.
func (t Time) UnixMillis() int64 {
	return DateToMillis(t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second) +
		int64(t.Millis)
}
