package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/clockshift-dev/clockshift/pkg/tzrule"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		found  bool
		hasDST bool
	}{
		{"utc", true, false},
		{"india", true, false},
		{"us-eastern", true, true},
		{"central-europe", true, true},
		{"sydney", true, true},
		{"atlantis", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := Lookup(tt.name)
			if ok != tt.found {
				t.Fatalf("Lookup(%q) found = %v, want %v", tt.name, ok, tt.found)
			}
			if ok && rule.ObservesDST() != tt.hasDST {
				t.Errorf("Lookup(%q) DST = %v, want %v", tt.name, rule.ObservesDST(), tt.hasDST)
			}
		})
	}
}

func TestBuiltinsValidate(t *testing.T) {
	for _, name := range Names() {
		rule, _ := Lookup(name)
		if err := rule.Validate(); err != nil {
			t.Errorf("built-in %q does not validate: %v", name, err)
		}
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("no built-in names")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Names() not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestParse(t *testing.T) {
	doc := `
rules:
  office:
    start_month: 3
    start_week: 2
    end_month: 11
    end_week: 1
    weekday: 0
    start_hour: 2
    end_hour: 2
    offset_min: -300
    offset_dst_min: -240
  lab:
    offset_min: 330
    offset_dst_min: 330
`
	rules, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 2 {
		t.Fatalf("got %d rules, want 2", len(rules))
	}
	want := tzrule.Rule{
		StartMonth: 3, StartWeek: 2, EndMonth: 11, EndWeek: 1,
		StartHour: 2, EndHour: 2, OffsetMin: -300, OffsetDSTMin: -240,
	}
	if rules["office"] != want {
		t.Errorf("office = %+v, want %+v", rules["office"], want)
	}
	if rules["lab"] != tzrule.FixedOffset(330) {
		t.Errorf("lab = %+v", rules["lab"])
	}
}

func TestParseRejectsWholeFile(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		errPart string
	}{
		{"empty document", "", "no rules"},
		{"no rules key", "other: 1\n", "no rules"},
		{"invalid month", "rules:\n  bad:\n    start_month: 13\n    end_month: 11\n", "out of range"},
		{"start without end", "rules:\n  bad:\n    start_month: 3\n", "without end month"},
		{"not yaml", "rules: [", "yaml parse error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatalf("Parse accepted %q, rules = %v", tt.doc, rules)
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error %q does not mention %q", err, tt.errPart)
			}
			if rules != nil {
				t.Error("partial catalog returned alongside error")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	doc := "rules:\n  fixed:\n    offset_min: 60\n    offset_dst_min: 60\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if rules["fixed"] != tzrule.FixedOffset(60) {
		t.Errorf("fixed = %+v", rules["fixed"])
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadFile on a missing path did not fail")
	}
}
