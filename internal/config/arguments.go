package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	flag "github.com/spf13/pflag"
	"github.com/tkjaer/netprobe/internal/version"
)

type Args struct {
	Targets []string

	// Test shape
	Duration int // seconds
	Rate     int // probes per second, per target

	// Retry policy
	RetryCount    int
	RetryInterval float64 // seconds

	// Probe strategy
	Native         bool // native ICMP instead of the platform ping binary
	IncludeGateway bool // also probe the default gateway

	// Output
	JsonFile string // write the report to a file instead of stdout

	// Logging
	Log       string // log file path, empty means stderr only
	LogLevel  string // log level: debug, info, warning, error
	LogFormat string // log format: text, json
}

func ParseArgs() (Args, error) {
	var args Args
	var showVersion bool

	// Set custom usage message
	flag.Usage = func() {
		println("netprobe - concurrent reachability prober")
		println()
		println("Probes a set of targets in parallel for a fixed duration and reports")
		println("per-target RTT and packet-loss statistics as JSON.")
		println()
		println("Usage:")
		println("  netprobe [OPTIONS] --targets HOST[,HOST...]")
		println()
		println("Examples:")
		println("  netprobe --targets 192.0.2.10,192.0.2.11             # 60s test at 1 probe/sec")
		println("  netprobe --targets plc-7 --duration 10 --rate 5      # short high-rate test")
		println("  netprobe --include-gateway --native                  # ICMP without the ping binary")
		println()
		println("Options:")
		flag.PrintDefaults()
	}

	flag.BoolVarP(&showVersion, "version", "v", false, "Show version information")
	flag.StringSliceVarP(&args.Targets, "targets", "t", nil, "Targets to probe (comma separated, repeatable)")
	flag.IntVarP(&args.Duration, "duration", "d", 60, "Test duration in seconds")
	flag.IntVarP(&args.Rate, "rate", "r", 1, "Probe rate in probes per second, per target")
	flag.IntVar(&args.RetryCount, "retry-count", 3, "Attempts per probe before counting a loss")
	flag.Float64Var(&args.RetryInterval, "retry-interval", 1.0, "Seconds to wait between retry attempts")
	flag.BoolVar(&args.Native, "native", false, "Send ICMP echoes directly instead of invoking the ping binary")
	flag.BoolVarP(&args.IncludeGateway, "include-gateway", "g", false, "Also probe the default gateway")
	flag.StringVarP(&args.JsonFile, "json-file", "j", "", "Write the JSON report to a file instead of stdout")
	flag.StringVarP(&args.Log, "log", "l", "", "Diagnostic log file (empty = stderr)")
	flag.StringVar(&args.LogLevel, "log-level", "info", "Log level: debug, info, warning, error")
	flag.StringVar(&args.LogFormat, "log-format", "text", "Log format: text or json")
	flag.Parse()

	// Handle version flag
	if showVersion {
		fmt.Println(version.FullVersion())
		os.Exit(0)
	}

	args.Targets = dedupeTargets(args.Targets)

	switch {
	case len(args.Targets) == 0 && !args.IncludeGateway:
		return args, errors.New("at least one target is required")
	case args.Duration <= 0:
		return args, errors.New("duration must be positive")
	case args.Rate <= 0:
		return args, errors.New("rate must be positive")
	case args.RetryCount < 1:
		return args, errors.New("retry count must be at least 1")
	case args.RetryInterval < 0:
		return args, errors.New("retry interval must not be negative")
	case !validLogLevel(args.LogLevel):
		return args, errors.New("log level must be one of debug, info, warning or error")
	case args.LogFormat != "text" && args.LogFormat != "json":
		return args, errors.New("log format must be either 'text' or 'json'")
	}

	return args, nil
}

// TestDuration returns the wall-clock length of the test session.
func (a Args) TestDuration() time.Duration {
	return time.Duration(a.Duration) * time.Second
}

// ProbeInterval returns the pacing interval between probes to one target.
// Only valid after validation has established Rate > 0.
func (a Args) ProbeInterval() time.Duration {
	return time.Second / time.Duration(a.Rate)
}

// RetryDelay returns the pause between failed probe attempts.
func (a Args) RetryDelay() time.Duration {
	return time.Duration(a.RetryInterval * float64(time.Second))
}

// AddTarget appends a target unless it is already on the list.
func (a *Args) AddTarget(target string) {
	for _, t := range a.Targets {
		if t == target {
			return
		}
	}
	a.Targets = append(a.Targets, target)
}

// dedupeTargets drops repeated targets while preserving input order.
func dedupeTargets(targets []string) []string {
	seen := make(map[string]bool, len(targets))
	out := targets[:0]
	for _, t := range targets {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func validLogLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}
