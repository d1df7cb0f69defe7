package probe

import (
	"errors"
	"net"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

const resolverTTL = 5 * time.Minute

// Resolver caches forward and reverse DNS lookups for probe targets so
// repeated lookups within a session hit the cache instead of the resolver.
type Resolver struct {
	forward *ttlcache.Cache[string, string]
	reverse *ttlcache.Cache[string, string]
}

func NewResolver() *Resolver {
	return &Resolver{
		forward: ttlcache.New(ttlcache.WithTTL[string, string](resolverTTL)),
		reverse: ttlcache.New(ttlcache.WithTTL[string, string](resolverTTL)),
	}
}

// Start begins background expiry of cached entries.
func (r *Resolver) Start() {
	go r.forward.Start()
	go r.reverse.Start()
}

func (r *Resolver) Stop() {
	r.forward.Stop()
	r.reverse.Stop()
}

// Resolve returns the first address the target resolves to. IP literals pass
// through unchanged.
func (r *Resolver) Resolve(target string) (string, error) {
	if ip := net.ParseIP(target); ip != nil {
		return target, nil
	}
	if item := r.forward.Get(target); item != nil {
		return item.Value(), nil
	}

	addrs, err := net.LookupHost(target)
	if err != nil {
		return "", err
	}
	if len(addrs) == 0 {
		return "", errors.New("no addresses found")
	}
	r.forward.Set(target, addrs[0], ttlcache.DefaultTTL)
	return addrs[0], nil
}

// ReverseLookup returns the PTR name for ip, or ip itself when no record
// exists. Failed lookups are cached too, to avoid repeating them.
func (r *Resolver) ReverseLookup(ip string) string {
	if item := r.reverse.Get(ip); item != nil {
		return item.Value()
	}

	name := ip
	if ptrs, err := net.LookupAddr(ip); err == nil && len(ptrs) > 0 {
		name = strings.TrimSuffix(ptrs[0], ".")
	}
	r.reverse.Set(ip, name, ttlcache.DefaultTTL)
	return name
}
