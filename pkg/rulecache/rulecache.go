// Package rulecache provides a shared, concurrency-safe offset resolver
// backed by an in-process cache of per-year DST transition instants. It
// serves callers that cannot dedicate a clockshift.Translator to each
// goroutine, such as request handlers: the transition cache absorbs the
// recomputation cost while every call stays stateless.
package rulecache

import (
	"log/slog"

	"github.com/maypok86/otter/v2"

	"github.com/clockshift-dev/clockshift/pkg/calendar"
	"github.com/clockshift-dev/clockshift/pkg/tzrule"
)

// transitionKey identifies one rule-year's pair of transition instants.
// tzrule.Rule is a comparable value type, so it keys directly.
type transitionKey struct {
	rule tzrule.Rule
	year int
}

type transitions struct {
	startMs int64
	endMs   int64
}

// Resolver resolves UTC offsets for arbitrary rules and timestamps. Safe
// for concurrent use by multiple goroutines.
type Resolver struct {
	cache  *otter.Cache[transitionKey, transitions]
	logger *slog.Logger
}

// NewResolver creates a Resolver whose transition cache holds at most
// capacity rule-year entries. A nil logger falls back to slog.Default().
func NewResolver(capacity int, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	cache := otter.Must(&otter.Options[transitionKey, transitions]{
		MaximumSize: capacity,
	})
	return &Resolver{cache: cache, logger: logger}
}

// transitionsFor returns the transition pair for rule in year, computing and
// caching it on first use.
func (r *Resolver) transitionsFor(rule tzrule.Rule, year int) transitions {
	key := transitionKey{rule: rule, year: year}
	if tr, ok := r.cache.GetIfPresent(key); ok {
		return tr
	}
	start, end := rule.TransitionsUTC(year)
	tr := transitions{startMs: start, endMs: end}
	r.cache.Set(key, tr)
	r.logger.Debug("transition cache miss", "year", year, "start_ms", start, "end_ms", end)
	return tr
}

// OffsetForUTC returns the offset in minutes active at the UTC instant.
func (r *Resolver) OffsetForUTC(rule tzrule.Rule, utcMs int64) int {
	if !rule.ObservesDST() {
		return rule.OffsetMin
	}
	tr := r.transitionsFor(rule, calendar.YearFromMillis(utcMs))
	if tr.startMs < tr.endMs {
		if utcMs >= tr.startMs && utcMs < tr.endMs {
			return rule.OffsetDSTMin
		}
		return rule.OffsetMin
	}
	// Southern ordering: DST spans the year boundary.
	if utcMs < tr.endMs || utcMs >= tr.startMs {
		return rule.OffsetDSTMin
	}
	return rule.OffsetMin
}

// OffsetForLocal returns the offset in minutes active at the local
// wall-clock instant. preferDST picks the reading of local times inside the
// fall-back overlap hour, as in clockshift.LocalToUTCIn.
func (r *Resolver) OffsetForLocal(rule tzrule.Rule, localMs int64, preferDST bool) int {
	if !rule.ObservesDST() {
		return rule.OffsetMin
	}

	approxUTC := localMs - int64(rule.OffsetMin)*calendar.MillisPerMinute
	tr := r.transitionsFor(rule, calendar.YearFromMillis(approxUTC))

	startLocal := tr.startMs + int64(rule.OffsetMin)*calendar.MillisPerMinute
	endLocal := tr.endMs + int64(rule.OffsetDSTMin)*calendar.MillisPerMinute

	var inDSTWindow bool
	if tr.startMs < tr.endMs {
		inDSTWindow = localMs >= startLocal && localMs < endLocal
	} else {
		inDSTWindow = localMs >= startLocal || localMs < endLocal
	}
	if !inDSTWindow {
		return rule.OffsetMin
	}

	if !preferDST {
		delta := int64(rule.OffsetDSTMin-rule.OffsetMin) * calendar.MillisPerMinute
		if localMs >= endLocal-delta && localMs < endLocal {
			return rule.OffsetMin
		}
	}
	return rule.OffsetDSTMin
}

// UTCToLocal converts a UTC millisecond timestamp to local time under rule.
func (r *Resolver) UTCToLocal(rule tzrule.Rule, utcMs int64) int64 {
	return utcMs + int64(r.OffsetForUTC(rule, utcMs))*calendar.MillisPerMinute
}

// LocalToUTC converts a local millisecond timestamp to UTC under rule.
func (r *Resolver) LocalToUTC(rule tzrule.Rule, localMs int64, preferDST bool) int64 {
	return localMs - int64(r.OffsetForLocal(rule, localMs, preferDST))*calendar.MillisPerMinute
}

// Size returns the estimated number of cached rule-year entries.
func (r *Resolver) Size() int {
	return int(r.cache.EstimatedSize())
}
