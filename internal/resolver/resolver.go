// Package resolver provides cached reverse-DNS lookups used to decorate
// flows in the API and the TUI. Lookups never block the render path:
// Resolve returns the IP string until the PTR answer lands in the cache.
package resolver

import (
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/miekg/dns"
)

// Resolver handles DNS lookups with caching
type Resolver struct {
	mu      sync.RWMutex
	cache   map[string]cacheEntry
	enabled bool
	timeout time.Duration
	maxAge  time.Duration

	client  *dns.Client
	servers []string
}

type cacheEntry struct {
	hostname  string
	timestamp time.Time
	notFound  bool
}

// New creates a new resolver using the system's DNS configuration.
func New() *Resolver {
	r := &Resolver{
		cache:   make(map[string]cacheEntry),
		enabled: true,
		timeout: 500 * time.Millisecond,
		maxAge:  5 * time.Minute,
		client:  &dns.Client{Timeout: 500 * time.Millisecond},
	}

	if conf, err := dns.ClientConfigFromFile("/etc/resolv.conf"); err == nil {
		for _, server := range conf.Servers {
			r.servers = append(r.servers, net.JoinHostPort(server, conf.Port))
		}
	}
	if len(r.servers) == 0 {
		r.servers = []string{"127.0.0.1:53"}
	}

	return r
}

// SetEnabled enables or disables DNS resolution
func (r *Resolver) SetEnabled(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled = enabled
}

// Resolve returns the cached hostname for an IP, or the IP string while a
// background lookup is in flight.
func (r *Resolver) Resolve(ip net.IP) string {
	if ip == nil {
		return ""
	}
	ipStr := ip.String()

	r.mu.RLock()
	enabled := r.enabled
	if entry, ok := r.cache[ipStr]; ok && time.Since(entry.timestamp) < r.maxAge {
		r.mu.RUnlock()
		if entry.notFound {
			return ipStr
		}
		return entry.hostname
	}
	r.mu.RUnlock()

	if !enabled {
		return ipStr
	}

	go r.lookup(ipStr)
	return ipStr
}

// ResolveSync does a synchronous lookup (blocks)
func (r *Resolver) ResolveSync(ip net.IP) string {
	if ip == nil {
		return ""
	}
	ipStr := ip.String()

	r.mu.RLock()
	enabled := r.enabled
	if entry, ok := r.cache[ipStr]; ok && time.Since(entry.timestamp) < r.maxAge {
		r.mu.RUnlock()
		if entry.notFound {
			return ipStr
		}
		return entry.hostname
	}
	r.mu.RUnlock()

	if !enabled {
		return ipStr
	}

	return r.lookup(ipStr)
}

// lookup queries the configured servers for a PTR record and caches the
// outcome either way, so failing addresses are not retried on every flow.
func (r *Resolver) lookup(ipStr string) string {
	ip := net.ParseIP(ipStr)
	if ip == nil {
		return ipStr
	}

	reverseName := reverseName(ip)
	if reverseName == "" {
		return ipStr
	}

	msg := new(dns.Msg)
	msg.SetQuestion(reverseName, dns.TypePTR)
	msg.RecursionDesired = true

	hostname := ""
	for _, server := range r.servers {
		in, _, err := r.client.Exchange(msg, server)
		if err != nil || in == nil {
			continue
		}
		for _, answer := range in.Answer {
			if ptr, ok := answer.(*dns.PTR); ok {
				hostname = strings.TrimSuffix(ptr.Ptr, ".")
				break
			}
		}
		break
	}

	r.mu.Lock()
	r.cache[ipStr] = cacheEntry{
		hostname:  hostname,
		timestamp: time.Now(),
		notFound:  hostname == "",
	}
	r.mu.Unlock()

	if hostname == "" {
		return ipStr
	}
	return hostname
}

// CacheSize returns the number of cached entries.
func (r *Resolver) CacheSize() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cache)
}

// reverseName creates the reverse DNS name for an address.
func reverseName(ip net.IP) string {
	if ip4 := ip.To4(); ip4 != nil {
		return fmt.Sprintf("%d.%d.%d.%d.in-addr.arpa.", ip4[3], ip4[2], ip4[1], ip4[0])
	}

	ip = ip.To16()
	if ip == nil {
		return ""
	}
	var parts []string
	for i := len(ip) - 1; i >= 0; i-- {
		parts = append(parts, fmt.Sprintf("%x", ip[i]&0x0f))
		parts = append(parts, fmt.Sprintf("%x", ip[i]>>4))
	}
	return strings.Join(parts, ".") + ".ip6.arpa."
}
