package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/tkjaer/netprobe/internal/shared"
)

// staticResolver returns canned PTR names for tests
type staticResolver struct {
	names map[string]string
}

func (s *staticResolver) ReverseLookup(ip string) string {
	if name, ok := s.names[ip]; ok {
		return name
	}
	return ip
}

func textReport() *shared.SessionReport {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &shared.SessionReport{
		StartTime: start,
		EndTime:   start.Add(2 * time.Second),
		Rate:      1,
		Targets:   []string{"192.0.2.1", "gateway.example"},
		Results: map[string]*shared.TargetStats{
			"192.0.2.1": {
				Samples:        []int{10},
				AvgMs:          10,
				MaxMs:          10,
				LossPct:        0,
				TotalAttempts:  2,
				FailedAttempts: 0,
			},
			"gateway.example": {
				Samples:        []int{},
				LossPct:        100,
				TotalAttempts:  2,
				FailedAttempts: 2,
			},
		},
	}
}

func TestTextOutput_WriteReport(t *testing.T) {
	var buf bytes.Buffer
	out := NewTextOutput(&buf, nil)

	if err := out.WriteReport(textReport()); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}

	got := buf.String()
	for _, want := range []string{
		"Probed 2 targets at 1 packets/sec",
		"192.0.2.1",
		"gateway.example",
		"loss 100%",
		"avg 10ms",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestTextOutput_WriteReport_WithResolver(t *testing.T) {
	var buf bytes.Buffer
	resolver := &staticResolver{names: map[string]string{"192.0.2.1": "plc-7.factory.example"}}
	out := NewTextOutput(&buf, resolver)

	if err := out.WriteReport(textReport()); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "192.0.2.1 (plc-7.factory.example)") {
		t.Errorf("summary missing resolved name:\n%s", got)
	}
	// Hostname targets are not reverse-resolved
	if strings.Contains(got, "gateway.example (") {
		t.Errorf("hostname target should not be reverse-resolved:\n%s", got)
	}
}

func TestTextOutput_Close(t *testing.T) {
	out := NewTextOutput(&bytes.Buffer{}, nil)
	if err := out.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}
