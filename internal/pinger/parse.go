package pinger

import (
	"regexp"
	"strconv"
)

// rttPattern extracts the round-trip time from the output of the platform
// ping binary. The pattern is selected once at startup for the host platform
// and reused for every probe.
type rttPattern struct {
	re *regexp.Regexp
}

func newRTTPattern(goos string) rttPattern {
	if goos == "windows" {
		// "Reply from 192.0.2.1: bytes=32 time=31ms TTL=117" or "time<1ms"
		return rttPattern{re: regexp.MustCompile(`[=<](\d+)ms`)}
	}
	// "64 bytes from 192.0.2.1: icmp_seq=1 ttl=117 time=12.3 ms"
	return rttPattern{re: regexp.MustCompile(`time=(\d+\.?\d*)`)}
}

// parse returns the RTT in milliseconds from raw ping output.
func (p rttPattern) parse(output string) (float64, error) {
	m := p.re.FindStringSubmatch(output)
	if len(m) < 2 {
		return 0, ErrNoRTT
	}
	rtt, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, ErrNoRTT
	}
	return rtt, nil
}
