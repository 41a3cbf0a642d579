// Package tzrule describes daylight-saving rules and evaluates the UTC
// instants at which a rule switches between standard time and DST in a given
// year. Rules are small value types: copy them freely, compare them with ==.
package tzrule

import "fmt"

// Rule defines a timezone's UTC offsets and the yearly DST switch schedule.
// A StartMonth of 0 marks a fixed-offset zone that never observes DST; all
// other DST fields are ignored for such a rule.
//
// Week selectors count occurrences of Weekday within the switch month:
// positive N means the Nth occurrence, zero or negative means the last one.
type Rule struct {
	StartMonth int // month DST begins, 1-12; 0 = no DST
	StartWeek  int // occurrence of Weekday in StartMonth
	EndMonth   int // month DST ends, 1-12
	EndWeek    int // occurrence of Weekday in EndMonth
	Weekday    int // switch day of week, 0=Sunday..6=Saturday, shared by both boundaries

	StartHour int // local standard-time hour when DST begins
	EndHour   int // local DST-time hour when DST ends

	OffsetMin    int // UTC offset in minutes while DST is not active
	OffsetDSTMin int // UTC offset in minutes while DST is active
}

// FixedOffset returns a rule for a zone at a constant UTC offset with no DST.
func FixedOffset(offsetMin int) Rule {
	return Rule{OffsetMin: offsetMin, OffsetDSTMin: offsetMin}
}

// UTC returns the zero-offset fixed rule.
func UTC() Rule {
	return Rule{}
}

// ObservesDST reports whether the rule defines a DST schedule.
func (r Rule) ObservesDST() bool {
	return r.StartMonth != 0
}

// Validate checks the rule invariant: both switch months are in 1-12 and are
// either both set or both zero. A rule that fails validation must be
// discarded whole; there is no partially valid rule.
func (r Rule) Validate() error {
	if r.StartMonth < 0 || r.StartMonth > 12 {
		return fmt.Errorf("tzrule: start month %d out of range 0-12", r.StartMonth)
	}
	if r.EndMonth < 0 || r.EndMonth > 12 {
		return fmt.Errorf("tzrule: end month %d out of range 0-12", r.EndMonth)
	}
	if r.StartMonth != 0 && r.EndMonth == 0 {
		return fmt.Errorf("tzrule: start month %d set without end month", r.StartMonth)
	}
	if r.StartMonth == 0 && r.EndMonth != 0 {
		return fmt.Errorf("tzrule: end month %d set without start month", r.EndMonth)
	}
	return nil
}
