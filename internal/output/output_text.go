package output

import (
	"fmt"
	"io"
	"net"

	"github.com/tkjaer/netprobe/internal/shared"
)

// NameResolver supplies display names for probed addresses.
type NameResolver interface {
	ReverseLookup(ip string) string
}

// TextOutput prints a short human-readable summary, one line per target.
// It is meant for the terminal; the JSON report remains the machine contract.
type TextOutput struct {
	w        io.Writer
	resolver NameResolver // optional
}

func NewTextOutput(w io.Writer, resolver NameResolver) *TextOutput {
	return &TextOutput{w: w, resolver: resolver}
}

func (t *TextOutput) WriteReport(report *shared.SessionReport) error {
	fmt.Fprintf(t.w, "\nProbed %d targets at %d packets/sec (%s - %s)\n",
		len(report.Results),
		report.Rate,
		report.StartTime.Format(shared.TimeFormat),
		report.EndTime.Format(shared.TimeFormat),
	)

	for _, target := range report.Targets {
		stats, ok := report.Results[target]
		if !ok {
			continue
		}
		fmt.Fprintf(t.w, "%-30s avg %dms  max %dms  loss %d%%  (%d/%d probes lost)\n",
			t.displayName(target),
			stats.AvgMs,
			stats.MaxMs,
			stats.LossPct,
			stats.FailedAttempts,
			stats.TotalAttempts,
		)
	}
	return nil
}

func (t *TextOutput) Close() error {
	return nil
}

// displayName enriches IP targets with their PTR name when one resolves.
func (t *TextOutput) displayName(target string) string {
	if t.resolver == nil || net.ParseIP(target) == nil {
		return target
	}
	if name := t.resolver.ReverseLookup(target); name != target {
		return fmt.Sprintf("%s (%s)", target, name)
	}
	return target
}
