// Package store keeps a bounded in-memory window of recent flows for the
// API and the displays, together with running totals. It deliberately
// does not aggregate: every stored entry is one exported flow record.
package store

import (
	"net"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"ipfix-collector/pkg/types"
)

// SortField defines the field to sort by
type SortField int

const (
	SortByTime SortField = iota
	SortByBytes
	SortByPackets
	SortByProtocol
)

// Condition is a single filter term, e.g. src=10.0.0.0/8 or port=443.
type Condition struct {
	Field   string
	Value   string
	Port    uint16
	Network *net.IPNet
	Negated bool
}

// Matches reports whether a flow satisfies the condition.
func (c *Condition) Matches(flow *types.Flow) bool {
	srcIP := flow.SrcAddr.String()
	dstIP := flow.DstAddr.String()

	var result bool
	switch c.Field {
	case "src", "srcip":
		if c.Network != nil {
			result = c.Network.Contains(flow.SrcAddr)
		} else {
			result = strings.Contains(srcIP, c.Value)
		}
	case "dst", "dstip":
		if c.Network != nil {
			result = c.Network.Contains(flow.DstAddr)
		} else {
			result = strings.Contains(dstIP, c.Value)
		}
	case "ip":
		if c.Network != nil {
			result = c.Network.Contains(flow.SrcAddr) || c.Network.Contains(flow.DstAddr)
		} else {
			result = strings.Contains(srcIP, c.Value) || strings.Contains(dstIP, c.Value)
		}
	case "sport", "srcport":
		result = flow.SrcPort == c.Port
	case "dport", "dstport":
		result = flow.DstPort == c.Port
	case "port":
		result = flow.SrcPort == c.Port || flow.DstPort == c.Port
	case "proto", "protocol":
		result = strings.EqualFold(flow.ProtocolName(), c.Value)
	case "exporter":
		result = flow.ExporterIP != nil && strings.Contains(flow.ExporterIP.String(), c.Value)
	case "version":
		result = strconv.Itoa(int(flow.Version)) == c.Value
	default:
		result = true
	}

	if c.Negated {
		return !result
	}
	return result
}

// Filter is a conjunction of conditions parsed from a query string like
// "src=10.0.0.0/8 dport=443 !proto=udp".
type Filter struct {
	Conditions []Condition
	Raw        string
}

// ParseFilter parses a space-separated list of key=value terms. Unknown
// keys match everything, so a typo widens rather than hides traffic.
func ParseFilter(s string) Filter {
	f := Filter{Raw: s}

	for _, term := range strings.Fields(s) {
		negated := false
		if strings.HasPrefix(term, "!") {
			negated = true
			term = term[1:]
		}
		key, value, ok := strings.Cut(term, "=")
		if !ok || value == "" {
			continue
		}

		cond := Condition{Field: strings.ToLower(key), Value: value, Negated: negated}
		if _, network, err := net.ParseCIDR(value); err == nil {
			cond.Network = network
		}
		if port, err := strconv.ParseUint(value, 10, 16); err == nil {
			cond.Port = uint16(port)
		}
		f.Conditions = append(f.Conditions, cond)
	}

	return f
}

// IsEmpty returns true if no conditions are set
func (f *Filter) IsEmpty() bool {
	return len(f.Conditions) == 0
}

// Matches reports whether a flow satisfies all conditions.
func (f *Filter) Matches(flow *types.Flow) bool {
	for i := range f.Conditions {
		if !f.Conditions[i].Matches(flow) {
			return false
		}
	}
	return true
}

// Stats are the store's running totals since start.
type Stats struct {
	TotalFlows      uint64
	TotalBytes      uint64
	TotalPackets    uint64
	FlowsPerSecond  float64
	BytesPerSecond  float64
	V5Flows         uint64
	IPFIXFlows      uint64
	UniqueExporters int
}

// FlowStore stores flows in memory
type FlowStore struct {
	mu              sync.RWMutex
	flows           []types.Flow
	maxFlows        int
	stats           Stats
	exporters       map[string]bool
	lastStatsUpdate time.Time
	flowsInWindow   int
	bytesInWindow   uint64
}

// New creates a new flow store holding at most maxFlows recent flows.
func New(maxFlows int) *FlowStore {
	if maxFlows <= 0 {
		maxFlows = 100000
	}
	return &FlowStore{
		flows:           make([]types.Flow, 0, maxFlows),
		maxFlows:        maxFlows,
		exporters:       make(map[string]bool),
		lastStatsUpdate: time.Now(),
	}
}

// Add adds flows to the store, evicting the oldest entries beyond the cap.
func (fs *FlowStore) Add(flows []types.Flow) {
	if len(flows) == 0 {
		return
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	for _, flow := range flows {
		fs.stats.TotalFlows++
		fs.stats.TotalBytes += flow.Bytes
		fs.stats.TotalPackets += flow.Packets
		fs.flowsInWindow++
		fs.bytesInWindow += flow.Bytes

		switch flow.Version {
		case types.NetFlowV5:
			fs.stats.V5Flows++
		case types.IPFIX:
			fs.stats.IPFIXFlows++
		}

		if flow.ExporterIP != nil {
			fs.exporters[flow.ExporterIP.String()] = true
		}

		fs.flows = append(fs.flows, flow)
	}

	// FIFO eviction
	if over := len(fs.flows) - fs.maxFlows; over > 0 {
		fs.flows = append(fs.flows[:0], fs.flows[over:]...)
	}

	// Update rates every second
	now := time.Now()
	elapsed := now.Sub(fs.lastStatsUpdate).Seconds()
	if elapsed >= 1.0 {
		fs.stats.FlowsPerSecond = float64(fs.flowsInWindow) / elapsed
		fs.stats.BytesPerSecond = float64(fs.bytesInWindow) / elapsed
		fs.flowsInWindow = 0
		fs.bytesInWindow = 0
		fs.lastStatsUpdate = now
	}
	fs.stats.UniqueExporters = len(fs.exporters)
}

// Query returns stored flows matching the filter, sorted and limited.
func (fs *FlowStore) Query(filter *Filter, sortBy SortField, ascending bool, limit int) []types.Flow {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	var filtered []types.Flow
	if filter == nil || filter.IsEmpty() {
		filtered = make([]types.Flow, len(fs.flows))
		copy(filtered, fs.flows)
	} else {
		for i := range fs.flows {
			if filter.Matches(&fs.flows[i]) {
				filtered = append(filtered, fs.flows[i])
			}
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		var less bool
		switch sortBy {
		case SortByBytes:
			less = filtered[i].Bytes < filtered[j].Bytes
		case SortByPackets:
			less = filtered[i].Packets < filtered[j].Packets
		case SortByProtocol:
			less = filtered[i].Protocol < filtered[j].Protocol
		default:
			less = filtered[i].ReceivedAt.Before(filtered[j].ReceivedAt)
		}
		if ascending {
			return less
		}
		return !less
	})

	if limit > 0 && limit < len(filtered) {
		filtered = filtered[:limit]
	}

	return filtered
}

// GetRecent returns the most recent flows
func (fs *FlowStore) GetRecent(count int) []types.Flow {
	return fs.Query(nil, SortByTime, false, count)
}

// GetTopByBytes returns top flows by bytes
func (fs *FlowStore) GetTopByBytes(count int) []types.Flow {
	return fs.Query(nil, SortByBytes, false, count)
}

// GetTopByPackets returns top flows by packets
func (fs *FlowStore) GetTopByPackets(count int) []types.Flow {
	return fs.Query(nil, SortByPackets, false, count)
}

// GetStats returns current statistics
func (fs *FlowStore) GetStats() Stats {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.stats
}

// GetFlowCount returns the current number of stored flows
func (fs *FlowStore) GetFlowCount() int {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return len(fs.flows)
}

// GetMaxFlows returns the maximum number of flows that can be stored
func (fs *FlowStore) GetMaxFlows() int {
	return fs.maxFlows
}

// Exporters returns the addresses flows have been received from.
func (fs *FlowStore) Exporters() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	out := make([]string, 0, len(fs.exporters))
	for ip := range fs.exporters {
		out = append(out, ip)
	}
	sort.Strings(out)
	return out
}

// Clear drops all stored flows but keeps the running totals.
func (fs *FlowStore) Clear() {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.flows = fs.flows[:0]
}
