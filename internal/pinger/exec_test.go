package pinger

import (
	"strings"
	"testing"
)

func TestExecPinger_PingArgs(t *testing.T) {
	tests := []struct {
		goos string
		want []string
	}{
		{"linux", []string{"ping", "-c", "1", "192.0.2.1"}},
		{"darwin", []string{"ping", "-c", "1", "192.0.2.1"}},
		{"windows", []string{"ping", "-n", "1", "192.0.2.1"}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			e := &ExecPinger{pattern: newRTTPattern(tt.goos), goos: tt.goos}
			got := e.pingArgs("192.0.2.1")
			if len(got) != len(tt.want) {
				t.Fatalf("pingArgs() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("pingArgs()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSnippet(t *testing.T) {
	if got := snippet("  short output\n"); got != "short output" {
		t.Errorf("snippet() = %q, want %q", got, "short output")
	}

	long := strings.Repeat("x", 500)
	if got := snippet(long); len(got) != 200 {
		t.Errorf("snippet() length = %d, want 200", len(got))
	}
}
