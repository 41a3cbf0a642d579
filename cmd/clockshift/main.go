// Package main implements the clockshift CLI for one-off timestamp
// conversions and DST transition tables.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/fatih/color"

	"github.com/clockshift-dev/clockshift/pkg/calendar"
	"github.com/clockshift-dev/clockshift/pkg/catalog"
	"github.com/clockshift-dev/clockshift/pkg/clockshift"
	"github.com/clockshift-dev/clockshift/pkg/tzrule"
)

var (
	zoneName  = flag.String("zone", "utc", "Built-in rule name (see -list)")
	rulesFile = flag.String("rules", "", "YAML rule file; its names extend the built-ins (or set CLOCKSHIFT_RULES)")
	toLocal   = flag.String("to-local", "", "UTC timestamp to convert to local time (epoch ms or RFC 3339)")
	toUTC     = flag.String("to-utc", "", "Local timestamp to convert to UTC (epoch ms or RFC 3339)")
	sec32     = flag.Bool("sec32", false, "Treat a numeric input as 32-bit seconds with 2038 rollover handling")
	standard  = flag.Bool("standard", false, "Resolve the fall-back overlap hour to standard time instead of DST")
	tableYear = flag.Int("table", 0, "Print the transition table starting at this year")
	tableSpan = flag.Int("span", 5, "Number of years for -table")
	listZones = flag.Bool("list", false, "List available rule names")
	verbose   = flag.Bool("verbose", false, "Enable verbose logging")
	version   = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Println("clockshift CLI v1.0.0")
		return
	}

	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *rulesFile == "" {
		*rulesFile = os.Getenv("CLOCKSHIFT_RULES")
	}

	rules := map[string]tzrule.Rule{}
	for _, name := range catalog.Names() {
		rules[name], _ = catalog.Lookup(name)
	}
	if *rulesFile != "" {
		loaded, err := catalog.LoadFile(*rulesFile)
		if err != nil {
			logger.Error("loading rule file failed", "path", *rulesFile, "error", err)
			os.Exit(1)
		}
		for name, rule := range loaded {
			rules[name] = rule
		}
	}

	if *listZones {
		printZoneList(rules)
		return
	}

	rule, ok := rules[*zoneName]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown zone %q; try -list\n", *zoneName)
		os.Exit(1)
	}

	switch {
	case *tableYear != 0:
		printTransitionTable(rule, *tableYear, *tableSpan)
	case *toLocal != "":
		convert(rule, *toLocal, true)
	case *toUTC != "":
		convert(rule, *toUTC, false)
	default:
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
}

func convert(rule tzrule.Rule, input string, utcToLocal bool) {
	ms, err := parseTimestamp(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad timestamp %q: %v\n", input, err)
		os.Exit(1)
	}

	var out int64
	if utcToLocal {
		out = clockshift.UTCToLocalIn(rule, ms)
	} else {
		out = clockshift.LocalToUTCIn(rule, ms, !*standard)
	}

	offset := (out - ms) / calendar.MillisPerMinute
	if !utcToLocal {
		offset = -offset
	}

	bold := color.New(color.Bold)
	fmt.Printf("%s  ->  %s  (%d, offset %s)\n",
		formatMillis(ms), bold.Sprint(formatMillis(out)), out, formatOffset(int(offset)))
}

// parseTimestamp accepts epoch milliseconds (or 32-bit seconds with -sec32)
// and RFC 3339 strings. RFC 3339 inputs are read as wall-clock fields; any
// zone designator in the string is ignored, the -zone rule decides meaning.
func parseTimestamp(input string) (int64, error) {
	if n, err := strconv.ParseInt(input, 10, 64); err == nil {
		if *sec32 {
			if n < 0 || n > (1<<32)-1 {
				return 0, fmt.Errorf("%d does not fit in 32-bit seconds", n)
			}
			return clockshift.Normalize32(uint32(n)), nil
		}
		return n, nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, input); err == nil {
			return calendar.DateToMillis(t.Year(), int(t.Month()), t.Day(),
				t.Hour(), t.Minute(), t.Second()), nil
		}
	}
	return 0, fmt.Errorf("not epoch milliseconds or RFC 3339")
}

func formatMillis(ms int64) string {
	ts := calendar.FromMillis(ms)
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%03d (%s)",
		ts.Year, ts.Month, ts.Day, ts.Hour, ts.Minute, ts.Second, ts.Millis,
		weekdayNames[ts.Weekday])
}

func formatOffset(min int) string {
	sign := "+"
	if min < 0 {
		sign = "-"
		min = -min
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, min/60, min%60)
}

var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func printZoneList(rules map[string]tzrule.Rule) {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		rule := rules[name]
		if rule.ObservesDST() {
			fmt.Printf("%-16s %s standard, %s DST\n",
				name, formatOffset(rule.OffsetMin), formatOffset(rule.OffsetDSTMin))
		} else {
			fmt.Printf("%-16s %s fixed\n", name, formatOffset(rule.OffsetMin))
		}
	}
}

func printTransitionTable(rule tzrule.Rule, fromYear, span int) {
	if !rule.ObservesDST() {
		fmt.Printf("fixed offset %s, no transitions\n", formatOffset(rule.OffsetMin))
		return
	}
	if span < 1 {
		span = 1
	}
	if fromYear < calendar.MinYear || fromYear+span > calendar.MaxYear {
		fmt.Fprintf(os.Stderr, "year range %d-%d outside supported %d-%d\n",
			fromYear, fromYear+span-1, calendar.MinYear, calendar.MaxYear-1)
		os.Exit(1)
	}

	header := color.New(color.Bold, color.FgCyan)
	dstColor := color.New(color.FgYellow)
	stdColor := color.New(color.FgBlue)

	fmt.Println(header.Sprintf("%-6s %-34s %-34s", "year", "DST begins (UTC)", "DST ends (UTC)"))
	for year := fromYear; year < fromYear+span; year++ {
		start, end := rule.TransitionsUTC(year)
		// Pad before coloring so the escape codes don't skew the columns.
		fmt.Printf("%-6d %s %s\n", year,
			dstColor.Sprint(fmt.Sprintf("%-34s", formatMillis(start))),
			stdColor.Sprint(fmt.Sprintf("%-34s", formatMillis(end))))
	}
}
