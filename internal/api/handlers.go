package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"ipfix-collector/internal/resolver"
	"ipfix-collector/internal/store"
	"ipfix-collector/pkg/types"
)

const defaultFlowLimit = 100

// Handlers implements the API endpoints over the flow store.
type Handlers struct {
	store    *store.FlowStore
	resolver *resolver.Resolver
}

// NewHandlers creates the handler set; the resolver may be nil.
func NewHandlers(flowStore *store.FlowStore, res *resolver.Resolver) *Handlers {
	return &Handlers{store: flowStore, resolver: res}
}

// HandleFlows serves GET /api/v1/flows?filter=...&sort=...&limit=N.
func (h *Handlers) HandleFlows(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := defaultFlowLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	sortBy := store.SortByTime
	switch r.URL.Query().Get("sort") {
	case "", "time":
	case "bytes":
		sortBy = store.SortByBytes
	case "packets":
		sortBy = store.SortByPackets
	case "protocol":
		sortBy = store.SortByProtocol
	default:
		http.Error(w, "invalid sort field", http.StatusBadRequest)
		return
	}

	filterExpr := r.URL.Query().Get("filter")
	filter := store.ParseFilter(filterExpr)

	flows := h.store.Query(&filter, sortBy, false, limit)

	resp := FlowsResponse{
		Count:  len(flows),
		Filter: filterExpr,
		Flows:  make([]FlowJSON, 0, len(flows)),
	}
	for i := range flows {
		resp.Flows = append(resp.Flows, h.flowJSON(&flows[i]))
	}

	writeJSON(w, resp)
}

// HandleStats serves GET /api/v1/stats.
func (h *Handlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	stats := h.store.GetStats()
	writeJSON(w, StatsResponse{
		TotalFlows:      stats.TotalFlows,
		TotalBytes:      stats.TotalBytes,
		TotalPackets:    stats.TotalPackets,
		FlowsPerSecond:  stats.FlowsPerSecond,
		BytesPerSecond:  stats.BytesPerSecond,
		V5Flows:         stats.V5Flows,
		IPFIXFlows:      stats.IPFIXFlows,
		UniqueExporters: stats.UniqueExporters,
		StoredFlows:     h.store.GetFlowCount(),
		MaxFlows:        h.store.GetMaxFlows(),
	})
}

// HandleExporters serves GET /api/v1/exporters.
func (h *Handlers) HandleExporters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	exporters := h.store.Exporters()
	writeJSON(w, ExportersResponse{Count: len(exporters), Exporters: exporters})
}

func (h *Handlers) flowJSON(flow *types.Flow) FlowJSON {
	out := FlowJSON{
		Version:  flow.Version.String(),
		SrcAddr:  flow.SrcAddr.String(),
		DstAddr:  flow.DstAddr.String(),
		SrcPort:  flow.SrcPort,
		DstPort:  flow.DstPort,
		Protocol: flow.ProtocolName(),
		Bytes:    flow.Bytes,
		Packets:  flow.Packets,
		TCPFlags: flow.TCPFlagsString(),
		SrcAS:    flow.SrcAS,
		DstAS:    flow.DstAS,
		Start:    flow.StartTime,
		End:      flow.EndTime,
		Received: flow.ReceivedAt,
	}
	if flow.ExporterIP != nil {
		out.Exporter = flow.ExporterIP.String()
	}
	if h.resolver != nil {
		if host := h.resolver.Resolve(flow.SrcAddr); host != out.SrcAddr {
			out.SrcHost = host
		}
		if host := h.resolver.Resolve(flow.DstAddr); host != out.DstAddr {
			out.DstHost = host
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
