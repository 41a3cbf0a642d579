// Package catalog provides named daylight-saving rules: a small built-in set
// of common zones and a YAML loader for site-specific rule files. It is a
// convenience layer only; the conversion core takes plain tzrule.Rule values
// and never consults the catalog.
package catalog

import (
	"sort"

	"github.com/clockshift-dev/clockshift/pkg/tzrule"
)

// builtins holds the rules shipped with the library. These are the rules as
// legislated today; a zone whose legislation changes needs an updated rule,
// there is no tz database underneath.
var builtins = map[string]tzrule.Rule{
	"utc":   tzrule.UTC(),
	"india": tzrule.FixedOffset(330),

	"us-eastern": {
		StartMonth: 3, StartWeek: 2, EndMonth: 11, EndWeek: 1,
		Weekday: 0, StartHour: 2, EndHour: 2,
		OffsetMin: -300, OffsetDSTMin: -240,
	},
	"us-central": {
		StartMonth: 3, StartWeek: 2, EndMonth: 11, EndWeek: 1,
		Weekday: 0, StartHour: 2, EndHour: 2,
		OffsetMin: -360, OffsetDSTMin: -300,
	},
	"us-mountain": {
		StartMonth: 3, StartWeek: 2, EndMonth: 11, EndWeek: 1,
		Weekday: 0, StartHour: 2, EndHour: 2,
		OffsetMin: -420, OffsetDSTMin: -360,
	},
	"us-pacific": {
		StartMonth: 3, StartWeek: 2, EndMonth: 11, EndWeek: 1,
		Weekday: 0, StartHour: 2, EndHour: 2,
		OffsetMin: -480, OffsetDSTMin: -420,
	},
	"uk": {
		StartMonth: 3, StartWeek: 0, EndMonth: 10, EndWeek: 0,
		Weekday: 0, StartHour: 1, EndHour: 2,
		OffsetMin: 0, OffsetDSTMin: 60,
	},
	"central-europe": {
		StartMonth: 3, StartWeek: 0, EndMonth: 10, EndWeek: 0,
		Weekday: 0, StartHour: 2, EndHour: 3,
		OffsetMin: 60, OffsetDSTMin: 120,
	},
	"sydney": {
		StartMonth: 10, StartWeek: 1, EndMonth: 4, EndWeek: 1,
		Weekday: 0, StartHour: 2, EndHour: 3,
		OffsetMin: 600, OffsetDSTMin: 660,
	},
	"new-zealand": {
		StartMonth: 9, StartWeek: 0, EndMonth: 4, EndWeek: 1,
		Weekday: 0, StartHour: 2, EndHour: 3,
		OffsetMin: 720, OffsetDSTMin: 780,
	},
}

// Lookup returns the built-in rule registered under name.
func Lookup(name string) (tzrule.Rule, bool) {
	rule, ok := builtins[name]
	return rule, ok
}

// Names returns the sorted names of all built-in rules.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
