// Package metrics defines the collector's Prometheus instrumentation and
// the optional exposition endpoint.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PacketsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "collector",
		Name:      "packets_total",
		Help:      "Total number of datagrams received, per protocol version",
	}, []string{"version"})
	PacketBytes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "collector",
		Name:      "packet_bytes_total",
		Help:      "Total number of payload bytes read from the UDP socket",
	})
	DecodeErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "collector",
		Name:      "decode_errors_total",
		Help:      "Total number of datagrams rejected by the decoder, per error kind",
	}, []string{"kind"})
	TransportErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "collector",
		Name:      "transport_errors_total",
		Help:      "Total number of UDP receive errors",
	})
	DecodedRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "collector",
		Name:      "decoded_records_total",
		Help:      "Total number of flow records decoded, per protocol version",
	}, []string{"version"})
	TemplatesInstalled = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "collector",
		Name:      "templates_installed_total",
		Help:      "Total number of IPFIX templates installed, per type",
	}, []string{"type"})
	TemplatesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "collector",
		Name:      "templates_dropped_total",
		Help:      "Total number of templates dropped because of unknown or variable-length fields",
	})
	SkippedDataSets = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "collector",
		Name:      "skipped_data_sets_total",
		Help:      "Total number of data sets skipped because no template was installed yet",
	})
	SamplingUpdates = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "collector",
		Name:      "sampling_updates_total",
		Help:      "Total number of sampling interval changes learned from option data records",
	})
	ChannelDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "collector",
		Name:      "record_channel_depth",
		Help:      "Number of record batches waiting in the consumer channel",
	})
)

// Server exposes the default registry over HTTP at /metrics.
type Server struct {
	server *http.Server
}

// NewServer builds an exposition server bound to addr.
func NewServer(addr string) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Server{
		server: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
	}
}

// Start serves in a goroutine until Stop is called.
func (s *Server) Start() {
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return
		}
	}()
}

// Stop shuts the exposition server down gracefully.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}
