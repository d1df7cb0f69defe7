package shared

import (
	"math"
	"time"
)

// TimeFormat is the timestamp layout used in session reports.
const TimeFormat = "2006-01-02 15:04:05"

// TargetStats holds the accumulated measurements for a single target.
// It is mutated only by the runner that owns the target and is read-only
// once that runner finishes.
type TargetStats struct {
	Samples        []int `json:"rtt_samples"` // RTT in milliseconds, rounded
	AvgMs          int   `json:"rtt_avg_ms"`
	MaxMs          int   `json:"rtt_max_ms"`
	LossPct        int   `json:"loss_pct"`
	TotalAttempts  uint  `json:"total_attempts"`
	FailedAttempts uint  `json:"failed_attempts"`
}

// Finalize computes the derived statistics from the accumulated samples and
// counters. With no samples, average and maximum stay at their zero sentinels.
func (t *TargetStats) Finalize() {
	if len(t.Samples) > 0 {
		sum := 0
		max := t.Samples[0]
		for _, s := range t.Samples {
			sum += s
			if s > max {
				max = s
			}
		}
		t.AvgMs = int(math.Round(float64(sum) / float64(len(t.Samples))))
		t.MaxMs = max
	}
	t.LossPct = CalculateLossPct(t.FailedAttempts, t.TotalAttempts)
}

// CalculateLossPct returns the loss percentage rounded to the nearest whole
// percent. Zero total attempts report 0% loss.
func CalculateLossPct(lost, total uint) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(lost) / float64(total) * 100))
}

// SessionReport is the merged result of one full test session.
// Targets preserves the input order; Results is keyed by target.
type SessionReport struct {
	StartTime time.Time
	EndTime   time.Time
	Rate      int // probes per second, per target
	Targets   []string
	Results   map[string]*TargetStats
}
