package probe

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/tkjaer/netprobe/internal/shared"
)

// Runner drives a Prober against a single target for a fixed wall-clock
// duration at a fixed probing rate.
type Runner struct {
	target   string
	prober   *Prober
	duration time.Duration
	interval time.Duration
}

func NewRunner(target string, prober *Prober, duration, interval time.Duration) *Runner {
	return &Runner{
		target:   target,
		prober:   prober,
		duration: duration,
		interval: interval,
	}
}

// Run probes the target until the deadline passes and returns the finished
// record. An iteration that starts before the deadline runs to completion,
// so the loop may slightly overshoot the configured duration.
func (r *Runner) Run(ctx context.Context) *shared.TargetStats {
	slog.Info("Starting probe loop", "target", r.target)

	stats := &shared.TargetStats{Samples: []int{}}
	start := time.Now()

	for time.Since(start) < r.duration {
		if ctx.Err() != nil {
			break
		}
		iterStart := time.Now()

		rtt, ok := r.prober.Probe(ctx, r.target)
		stats.TotalAttempts++
		if ok {
			stats.Samples = append(stats.Samples, int(math.Round(rtt)))
		} else {
			stats.FailedAttempts++
			slog.Warn("Packet loss detected",
				"target", r.target,
				"time", time.Now().Format(shared.TimeFormat),
			)
		}

		// Sleep only for what remains of the interval, so time spent probing
		// does not push the effective rate below target.
		if spent := time.Since(iterStart); spent < r.interval {
			select {
			case <-ctx.Done():
			case <-time.After(r.interval - spent):
			}
		}
	}

	stats.Finalize()
	slog.Info("Completed probe loop",
		"target", r.target,
		"attempts", stats.TotalAttempts,
		"lost", stats.FailedAttempts,
	)
	return stats
}
