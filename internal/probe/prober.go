package probe

import (
	"context"
	"log/slog"
	"time"

	"github.com/tkjaer/netprobe/internal/pinger"
)

// Prober wraps a Pinger with a bounded retry policy. Transport failures,
// timeouts and unparsable output are all treated as a failed attempt and
// retried the same way; errors never escape to the caller.
type Prober struct {
	pinger        pinger.Pinger
	retryCount    int
	retryInterval time.Duration
}

func NewProber(p pinger.Pinger, retryCount int, retryInterval time.Duration) *Prober {
	return &Prober{
		pinger:        p,
		retryCount:    retryCount,
		retryInterval: retryInterval,
	}
}

// Probe attempts to obtain one RTT measurement for target, retrying up to the
// configured attempt count with a fixed pause between failures. It returns
// the first successful RTT in milliseconds, or ok=false once all attempts are
// exhausted or the context is cancelled.
func (p *Prober) Probe(ctx context.Context, target string) (float64, bool) {
	for attempt := 1; attempt <= p.retryCount; attempt++ {
		rtt, err := p.pinger.Ping(ctx, target)
		if err == nil {
			return rtt, true
		}
		slog.Warn("Probe attempt failed", "target", target, "attempt", attempt, "error", err)

		if ctx.Err() != nil {
			return 0, false
		}
		// No pause after the final attempt
		if attempt < p.retryCount {
			select {
			case <-ctx.Done():
				return 0, false
			case <-time.After(p.retryInterval):
			}
		}
	}
	slog.Error("All probe attempts failed", "target", target, "attempts", p.retryCount)
	return 0, false
}
