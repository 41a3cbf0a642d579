// Package clockshift converts timestamps between UTC and local wall-clock
// time under arbitrary daylight-saving rules for either hemisphere. All
// outputs are 64-bit milliseconds since the Unix epoch; 32-bit second inputs
// are accepted and widened through a 2038-rollover heuristic.
//
// A Translator caches the UTC bounds of the offset period it last resolved,
// so repeated conversions within the same DST or standard season cost two
// integer comparisons. One instance must not be used concurrently from
// multiple goroutines without external locking; separate instances per
// goroutine are safe without any locking, each cache is exclusively owned.
package clockshift

import (
	"fmt"
	"log/slog"

	"github.com/clockshift-dev/clockshift/pkg/calendar"
	"github.com/clockshift-dev/clockshift/pkg/tzrule"
)

// rolloverEpoch2020 is the Unix second count of 2020-01-01T00:00:00 UTC, the
// cutoff for 32-bit rollover detection in Normalize32.
const rolloverEpoch2020 uint32 = 1577836800

// Translator converts between UTC and local time for one configured rule.
// The zero-configured Translator (from New) is plain UTC.
type Translator struct {
	rule   tzrule.Rule
	cache  offsetCache
	logger *slog.Logger
}

// New returns a Translator configured for UTC with an empty cache.
func New() *Translator {
	return NewWithLogger(slog.Default())
}

// NewWithLogger is New with an explicit logger. The logger only ever emits
// Debug records, one per cache refill; the conversion fast path is silent.
func NewWithLogger(logger *slog.Logger) *Translator {
	return &Translator{rule: tzrule.UTC(), logger: logger}
}

// Configure validates rule and installs it as the Translator's rule,
// clearing the offset cache in the same step: a cache interval computed
// under the previous rule would hand out wrong offsets under the new one.
// On error nothing changes, neither the rule nor the cache.
func (t *Translator) Configure(rule tzrule.Rule) error {
	if err := rule.Validate(); err != nil {
		return fmt.Errorf("configure: %w", err)
	}
	t.rule = rule
	t.cache = offsetCache{}
	return nil
}

// Rule returns the currently configured rule.
func (t *Translator) Rule() tzrule.Rule {
	return t.rule
}

// UTCToLocal converts a UTC millisecond timestamp to local time under the
// configured rule, using and updating the instance cache.
func (t *Translator) UTCToLocal(utcMs int64) int64 {
	offset := resolveUTC(utcMs, t.rule, &t.cache, t.logger)
	return utcMs + int64(offset)*calendar.MillisPerMinute
}

// LocalToUTC converts a local millisecond timestamp to UTC under the
// configured rule, using and updating the instance cache.
//
// preferDST disambiguates the fall-back overlap hour; see LocalToUTCIn. A
// warm instance cache can short-circuit that disambiguation, returning the
// standard reading even when preferDST is true; use LocalToUTCIn when exact
// overlap resolution matters more than cache reuse.
func (t *Translator) LocalToUTC(localMs int64, preferDST bool) int64 {
	offset := resolveLocal(localMs, t.rule, &t.cache, preferDST, t.logger)
	return localMs - int64(offset)*calendar.MillisPerMinute
}

// UTCToLocal32 converts a 32-bit UTC seconds timestamp, widened through
// Normalize32, to local milliseconds.
func (t *Translator) UTCToLocal32(utcSec uint32) int64 {
	return t.UTCToLocal(Normalize32(utcSec))
}

// LocalToUTC32 converts a 32-bit local seconds timestamp, widened through
// Normalize32, to UTC milliseconds.
func (t *Translator) LocalToUTC32(localSec uint32, preferDST bool) int64 {
	return t.LocalToUTC(Normalize32(localSec), preferDST)
}

// UTCToLocalIn converts a UTC millisecond timestamp to local time under an
// explicit rule. Each call uses a throwaway cache, trading reuse for
// statelessness; the function is safe for concurrent use.
func UTCToLocalIn(rule tzrule.Rule, utcMs int64) int64 {
	if !rule.ObservesDST() {
		return utcMs + int64(rule.OffsetMin)*calendar.MillisPerMinute
	}
	var scratch offsetCache
	offset := resolveUTC(utcMs, rule, &scratch, nil)
	return utcMs + int64(offset)*calendar.MillisPerMinute
}

// LocalToUTCIn converts a local millisecond timestamp to UTC under an
// explicit rule, with a throwaway cache; safe for concurrent use.
//
// preferDST selects the reading of local times inside the fall-back overlap
// hour: true resolves to the DST offset, the earlier UTC instant; false to
// the standard offset, the later one. Local times inside the spring-forward
// gap never existed on a wall clock; they are resolved silently rather than
// rejected.
func LocalToUTCIn(rule tzrule.Rule, localMs int64, preferDST bool) int64 {
	if !rule.ObservesDST() {
		return localMs - int64(rule.OffsetMin)*calendar.MillisPerMinute
	}
	var scratch offsetCache
	offset := resolveLocal(localMs, rule, &scratch, preferDST, nil)
	return localMs - int64(offset)*calendar.MillisPerMinute
}

// UTCToLocal32In is UTCToLocalIn for a 32-bit seconds input.
func UTCToLocal32In(rule tzrule.Rule, utcSec uint32) int64 {
	return UTCToLocalIn(rule, Normalize32(utcSec))
}

// LocalToUTC32In is LocalToUTCIn for a 32-bit seconds input.
func LocalToUTC32In(rule tzrule.Rule, localSec uint32, preferDST bool) int64 {
	return LocalToUTCIn(rule, Normalize32(localSec), preferDST)
}

// Normalize32 widens a 32-bit seconds timestamp to 64-bit milliseconds. A
// value below the 2020-01-01 cutoff is assumed to have wrapped past the
// 32-bit limit of 2038-01-19 and is shifted one full 2^32-second cycle into
// the future; clocks feeding this library are expected to be set no earlier
// than 2020.
func Normalize32(sec uint32) int64 {
	if sec < rolloverEpoch2020 {
		return (int64(sec) + (1 << 32)) * 1000
	}
	return int64(sec) * 1000
}

// ToTime decomposes a millisecond timestamp into broken-down calendar
// fields. Pure; no rule or cache involved.
func ToTime(ms int64) calendar.Time {
	return calendar.FromMillis(ms)
}

// DateToMillis composes a millisecond timestamp from calendar components.
// Pure; no rule or cache involved.
func DateToMillis(year, month, day, hour, minute, second int) int64 {
	return calendar.DateToMillis(year, month, day, hour, minute, second)
}
