package pinger

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"
)

// ExecPinger probes targets by invoking the platform ping binary once per
// call and parsing the RTT out of its textual output.
type ExecPinger struct {
	pattern rttPattern
	goos    string
}

func NewExecPinger() *ExecPinger {
	return &ExecPinger{
		pattern: newRTTPattern(runtime.GOOS),
		goos:    runtime.GOOS,
	}
}

// pingArgs builds the single-probe ping invocation for the host platform.
func (e *ExecPinger) pingArgs(target string) []string {
	if e.goos == "windows" {
		return []string{"ping", "-n", "1", target}
	}
	return []string{"ping", "-c", "1", target}
}

func (e *ExecPinger) Ping(ctx context.Context, target string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, AttemptTimeout)
	defer cancel()

	args := e.pingArgs(target)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	output, err := cmd.CombinedOutput()

	slog.Debug("Ping command finished",
		"command", strings.Join(args, " "),
		"output", snippet(string(output)),
		"error", err,
	)

	if ctx.Err() == context.DeadlineExceeded {
		return 0, fmt.Errorf("ping %s: %w", target, ctx.Err())
	}
	if err != nil {
		return 0, fmt.Errorf("ping %s: %w", target, err)
	}

	rtt, err := e.pattern.parse(string(output))
	if err != nil {
		slog.Warn("Ping succeeded but output could not be parsed", "target", target)
		return 0, fmt.Errorf("ping %s: %w", target, err)
	}
	return rtt, nil
}

// snippet truncates raw probe output for diagnostic logging.
func snippet(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 200 {
		return s[:200]
	}
	return s
}
