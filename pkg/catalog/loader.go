package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/clockshift-dev/clockshift/pkg/tzrule"
)

// ruleSpec mirrors tzrule.Rule in the YAML rule-file schema. Omitted fields
// default to zero, so a fixed-offset zone only needs offset_min.
type ruleSpec struct {
	StartMonth   int `yaml:"start_month"`
	StartWeek    int `yaml:"start_week"`
	EndMonth     int `yaml:"end_month"`
	EndWeek      int `yaml:"end_week"`
	Weekday      int `yaml:"weekday"`
	StartHour    int `yaml:"start_hour"`
	EndHour      int `yaml:"end_hour"`
	OffsetMin    int `yaml:"offset_min"`
	OffsetDSTMin int `yaml:"offset_dst_min"`
}

type ruleFile struct {
	Rules map[string]ruleSpec `yaml:"rules"`
}

// LoadFile reads a YAML rule file and returns the named rules it defines.
// One invalid rule rejects the whole file; no partial catalog is returned.
func LoadFile(path string) (map[string]tzrule.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	rules, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return rules, nil
}

// Parse decodes a YAML rule document of the form
//
//	rules:
//	  my-zone:
//	    start_month: 3
//	    start_week: 2
//	    end_month: 11
//	    end_week: 1
//	    weekday: 0
//	    start_hour: 2
//	    end_hour: 2
//	    offset_min: -300
//	    offset_dst_min: -240
//
// and validates every rule before returning any of them.
func Parse(data []byte) (map[string]tzrule.Rule, error) {
	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("yaml parse error: %w", err)
	}
	if len(file.Rules) == 0 {
		return nil, errors.New("no rules defined")
	}

	rules := make(map[string]tzrule.Rule, len(file.Rules))
	for name, spec := range file.Rules {
		rule := tzrule.Rule{
			StartMonth:   spec.StartMonth,
			StartWeek:    spec.StartWeek,
			EndMonth:     spec.EndMonth,
			EndWeek:      spec.EndWeek,
			Weekday:      spec.Weekday,
			StartHour:    spec.StartHour,
			EndHour:      spec.EndHour,
			OffsetMin:    spec.OffsetMin,
			OffsetDSTMin: spec.OffsetDSTMin,
		}
		if err := rule.Validate(); err != nil {
			return nil, fmt.Errorf("rule %q: %w", name, err)
		}
		rules[name] = rule
	}
	return rules, nil
}
