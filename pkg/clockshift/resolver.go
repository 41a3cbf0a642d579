package clockshift

import (
	"log/slog"

	"github.com/clockshift-dev/clockshift/pkg/calendar"
	"github.com/clockshift-dev/clockshift/pkg/tzrule"
)

// offsetCache remembers the half-open UTC interval [validFrom, validUntil)
// over which a single offset is known to hold. A zero-width interval matches
// nothing, so the zero value is the empty cache. Exactly one cache exists
// per Translator; it is never shared.
type offsetCache struct {
	validFrom  int64
	validUntil int64
	offsetMin  int
}

func (c *offsetCache) contains(utcMs int64) bool {
	return utcMs >= c.validFrom && utcMs < c.validUntil
}

// resolveUTC returns the offset in minutes active at the UTC instant utcMs.
// The hit path is two comparisons; a miss recomputes the season bounds and
// refills the cache so that any instant in the same season hits next time.
func resolveUTC(utcMs int64, rule tzrule.Rule, cache *offsetCache, logger *slog.Logger) int {
	if !rule.ObservesDST() {
		return rule.OffsetMin
	}
	if cache.contains(utcMs) {
		return cache.offsetMin
	}
	fillSeason(utcMs, rule, cache)
	if logger != nil {
		logger.Debug("offset cache refilled",
			"valid_from", cache.validFrom,
			"valid_until", cache.validUntil,
			"offset_min", cache.offsetMin)
	}
	return cache.offsetMin
}

// fillSeason classifies utcMs into one of the three sub-year offset periods
// and stores that period's tight bounds in the cache. For the two standard-
// time periods the far bound lies in an adjacent year; that neighbour
// transition is computed lazily, only for the bound actually needed, so the
// cache spans a full winter without a spurious miss at the year boundary.
// It returns the current year's transition pair for callers that need it.
func fillSeason(utcMs int64, rule tzrule.Rule, cache *offsetCache) (startMs, endMs int64) {
	year := calendar.YearFromMillis(utcMs)
	startMs, endMs = rule.TransitionsUTC(year)

	if startMs < endMs {
		// Northern ordering: DST sits inside the calendar year.
		switch {
		case utcMs < startMs:
			*cache = offsetCache{rule.EndUTC(year - 1), startMs, rule.OffsetMin}
		case utcMs < endMs:
			*cache = offsetCache{startMs, endMs, rule.OffsetDSTMin}
		default:
			*cache = offsetCache{endMs, rule.StartUTC(year + 1), rule.OffsetMin}
		}
		return startMs, endMs
	}

	// Southern ordering: DST spans the year boundary.
	switch {
	case utcMs < endMs:
		*cache = offsetCache{rule.StartUTC(year - 1), endMs, rule.OffsetDSTMin}
	case utcMs < startMs:
		*cache = offsetCache{endMs, startMs, rule.OffsetMin}
	default:
		*cache = offsetCache{startMs, rule.EndUTC(year + 1), rule.OffsetDSTMin}
	}
	return startMs, endMs
}

// resolveLocal returns the offset in minutes active at the local wall-clock
// instant localMs. The corresponding UTC instant is first approximated with
// the standard offset, which is exact everywhere except near the two
// transitions; on a cache miss a second pass compares localMs against the
// season's local switch window and corrects the approximation.
//
// preferDST picks the interpretation of local times inside the fall-back
// overlap, the wall-clock hour that occurs twice when DST ends: true takes
// the DST reading (the earlier UTC instant), false the standard reading (the
// later one). Spring-forward gap times, which never occur on a wall clock,
// are not rejected; they resolve through the same comparisons.
func resolveLocal(localMs int64, rule tzrule.Rule, cache *offsetCache, preferDST bool, logger *slog.Logger) int {
	if !rule.ObservesDST() {
		return rule.OffsetMin
	}

	approxUTC := localMs - int64(rule.OffsetMin)*calendar.MillisPerMinute
	if cache.contains(approxUTC) {
		return cache.offsetMin
	}

	startMs, endMs := fillSeason(approxUTC, rule, cache)
	if logger != nil {
		logger.Debug("offset cache refilled",
			"valid_from", cache.validFrom,
			"valid_until", cache.validUntil,
			"offset_min", cache.offsetMin)
	}

	// The local switch window, each bound rebuilt with the offset its
	// transition was derived from: start on the standard clock, end on the
	// DST clock.
	startLocal := startMs + int64(rule.OffsetMin)*calendar.MillisPerMinute
	endLocal := endMs + int64(rule.OffsetDSTMin)*calendar.MillisPerMinute

	var inDSTWindow bool
	if startMs < endMs {
		inDSTWindow = localMs >= startLocal && localMs < endLocal
	} else {
		inDSTWindow = localMs >= startLocal || localMs < endLocal
	}
	if !inDSTWindow {
		return rule.OffsetMin
	}

	if !preferDST {
		// Second pass through the fall-back overlap: the delta-wide local
		// range just before the end-of-DST wall instant.
		delta := int64(rule.OffsetDSTMin-rule.OffsetMin) * calendar.MillisPerMinute
		if localMs >= endLocal-delta && localMs < endLocal {
			return rule.OffsetMin
		}
	}
	return rule.OffsetDSTMin
}
