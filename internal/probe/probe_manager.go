package probe

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/tkjaer/netprobe/internal/config"
	"github.com/tkjaer/netprobe/internal/pinger"
	"github.com/tkjaer/netprobe/internal/shared"
)

// ProbeManager fans out one runner goroutine per target, waits for all of
// them to finish, and merges their records into a single session report.
// The manager itself never probes.
type ProbeManager struct {
	// Coordination
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once

	// Test configuration
	targets  []string
	duration time.Duration
	interval time.Duration
	rate     int
	prober   *Prober
	resolver *Resolver

	// Shared results store, written once per target by its runner
	results map[string]*shared.TargetStats
	mutex   sync.Mutex
}

// NewProbeManager creates and initializes a probe manager
func NewProbeManager(a config.Args, p pinger.Pinger) *ProbeManager {
	return newProbeManager(
		a.Targets,
		a.TestDuration(),
		a.ProbeInterval(),
		a.Rate,
		NewProber(p, a.RetryCount, a.RetryDelay()),
	)
}

func newProbeManager(targets []string, duration, interval time.Duration, rate int, prober *Prober) *ProbeManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &ProbeManager{
		ctx:      ctx,
		cancel:   cancel,
		targets:  targets,
		duration: duration,
		interval: interval,
		rate:     rate,
		prober:   prober,
		resolver: NewResolver(),
		results:  make(map[string]*shared.TargetStats),
	}
}

// Run executes the full test session and returns the merged report.
func (pm *ProbeManager) Run() (*shared.SessionReport, error) {
	slog.Info("Starting reachability tests", "targets", len(pm.targets))

	pm.resolver.Start()
	defer pm.resolver.Stop()
	pm.preflight()

	report := &shared.SessionReport{
		StartTime: time.Now(),
		Rate:      pm.rate,
		Targets:   pm.targets,
		Results:   make(map[string]*shared.TargetStats),
	}

	for _, target := range pm.targets {
		pm.wg.Add(1)
		go func(target string) {
			defer pm.wg.Done()
			runner := NewRunner(target, pm.prober, pm.duration, pm.interval)
			pm.setResult(target, runner.Run(pm.ctx))
		}(target)
	}
	pm.wg.Wait()
	report.EndTime = time.Now()

	if err := pm.ctx.Err(); err != nil {
		return nil, err
	}

	// Assemble results in input target order
	for _, target := range pm.targets {
		pm.mutex.Lock()
		stats, ok := pm.results[target]
		pm.mutex.Unlock()
		if !ok {
			// Every runner writes exactly once, so this should not occur;
			// the target is omitted from the report rather than failing
			// the whole session.
			slog.Warn("No result recorded for target", "target", target)
			continue
		}
		report.Results[target] = stats
	}

	slog.Info("Reachability tests completed", "targets", len(report.Results))
	return report, nil
}

// Stop cancels all in-flight probe loops.
func (pm *ProbeManager) Stop() {
	pm.stopOnce.Do(pm.cancel)
}

// Resolver exposes the manager's DNS cache for output enrichment.
func (pm *ProbeManager) Resolver() *Resolver {
	return pm.resolver
}

// setResult stores a finished target record; the lock is scoped to the write.
func (pm *ProbeManager) setResult(target string, stats *shared.TargetStats) {
	pm.mutex.Lock()
	pm.results[target] = stats
	pm.mutex.Unlock()
}

// preflight resolves each target up front. Resolution is advisory: an
// unresolvable target is still probed and shows up as loss in the report.
func (pm *ProbeManager) preflight() {
	for _, target := range pm.targets {
		addr, err := pm.resolver.Resolve(target)
		if err != nil {
			slog.Warn("Target did not resolve, probing anyway", "target", target, "error", err)
			continue
		}
		slog.Debug("Resolved target", "target", target, "address", addr)
	}
}
