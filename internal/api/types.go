package api

import "time"

// FlowJSON is one flow entry in API responses.
type FlowJSON struct {
	Version   string    `json:"version"`
	SrcAddr   string    `json:"src_addr"`
	SrcHost   string    `json:"src_host,omitempty"`
	DstAddr   string    `json:"dst_addr"`
	DstHost   string    `json:"dst_host,omitempty"`
	SrcPort   uint16    `json:"src_port"`
	DstPort   uint16    `json:"dst_port"`
	Protocol  string    `json:"protocol"`
	Bytes     uint64    `json:"bytes"`
	Packets   uint64    `json:"packets"`
	TCPFlags  string    `json:"tcp_flags"`
	SrcAS     uint32    `json:"src_as,omitempty"`
	DstAS     uint32    `json:"dst_as,omitempty"`
	Exporter  string    `json:"exporter"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Received  time.Time `json:"received"`
}

// FlowsResponse wraps /api/v1/flows.
type FlowsResponse struct {
	Count  int        `json:"count"`
	Filter string     `json:"filter,omitempty"`
	Flows  []FlowJSON `json:"flows"`
}

// StatsResponse wraps /api/v1/stats.
type StatsResponse struct {
	TotalFlows      uint64  `json:"total_flows"`
	TotalBytes      uint64  `json:"total_bytes"`
	TotalPackets    uint64  `json:"total_packets"`
	FlowsPerSecond  float64 `json:"flows_per_second"`
	BytesPerSecond  float64 `json:"bytes_per_second"`
	V5Flows         uint64  `json:"v5_flows"`
	IPFIXFlows      uint64  `json:"ipfix_flows"`
	UniqueExporters int     `json:"unique_exporters"`
	StoredFlows     int     `json:"stored_flows"`
	MaxFlows        int     `json:"max_flows"`
}

// ExportersResponse wraps /api/v1/exporters.
type ExportersResponse struct {
	Count     int      `json:"count"`
	Exporters []string `json:"exporters"`
}
