package pinger

import (
	"context"
	"fmt"
	"time"

	probing "github.com/prometheus-community/pro-bing"
)

// NativePinger sends ICMP echo requests directly, for hosts where the ping
// binary is unavailable or shelling out is undesirable. Privileged mode uses
// raw sockets and typically requires elevated rights.
type NativePinger struct {
	privileged bool
}

func NewNativePinger(privileged bool) *NativePinger {
	return &NativePinger{privileged: privileged}
}

func (n *NativePinger) Ping(ctx context.Context, target string) (float64, error) {
	p, err := probing.NewPinger(target)
	if err != nil {
		return 0, fmt.Errorf("ping %s: %w", target, err)
	}
	p.Count = 1
	p.Timeout = AttemptTimeout
	p.SetPrivileged(n.privileged)

	// Run blocks until the reply arrives or Timeout passes; a cancelled
	// context stops it early.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			p.Stop()
		case <-done:
		}
	}()

	if err := p.Run(); err != nil {
		return 0, fmt.Errorf("ping %s: %w", target, err)
	}
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("ping %s: %w", target, err)
	}

	stats := p.Statistics()
	if stats.PacketsRecv == 0 {
		return 0, fmt.Errorf("ping %s: %w", target, ErrNoReply)
	}
	return float64(stats.AvgRtt) / float64(time.Millisecond), nil
}
