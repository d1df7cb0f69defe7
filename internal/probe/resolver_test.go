package probe

import (
	"testing"
)

func TestResolver_Resolve_IPLiteral(t *testing.T) {
	r := NewResolver()

	tests := []string{"192.0.2.1", "2001:db8::1", "127.0.0.1"}
	for _, ip := range tests {
		got, err := r.Resolve(ip)
		if err != nil {
			t.Errorf("Resolve(%q) unexpected error: %v", ip, err)
			continue
		}
		if got != ip {
			t.Errorf("Resolve(%q) = %q, want the literal back", ip, got)
		}
	}
}

func TestResolver_Resolve_Empty(t *testing.T) {
	r := NewResolver()

	if _, err := r.Resolve(""); err == nil {
		t.Error("Resolve(\"\") expected error, got nil")
	}
}

func TestResolver_ReverseLookup_Cached(t *testing.T) {
	r := NewResolver()

	// Pre-seed the cache so no network lookup happens
	r.reverse.Set("192.0.2.1", "plc-7.factory.example", 0)

	if got := r.ReverseLookup("192.0.2.1"); got != "plc-7.factory.example" {
		t.Errorf("ReverseLookup() = %q, want cached name", got)
	}
}
