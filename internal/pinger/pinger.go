// Package pinger provides the single-probe capability consumed by the probe
// loop: send one reachability probe to a target and report its round-trip
// time. Two strategies exist, one invoking the platform ping binary and one
// sending ICMP echoes directly.
package pinger

import (
	"context"
	"errors"
	"time"
)

// AttemptTimeout bounds a single probe attempt, regardless of strategy.
const AttemptTimeout = 5 * time.Second

var (
	// ErrNoRTT means the probe reported success but no RTT could be
	// extracted from its output.
	ErrNoRTT = errors.New("no RTT found in probe output")

	// ErrNoReply means the probe completed without receiving a response.
	ErrNoReply = errors.New("no reply received")
)

// Pinger sends a single reachability probe and returns the measured
// round-trip time in milliseconds.
type Pinger interface {
	Ping(ctx context.Context, target string) (float64, error)
}
