// Package listener implements the UDP ingest loop: it owns the socket and
// the parser (and with it all per-exporter template state) and hands
// decoded flow records downstream over a bounded channel.
package listener

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"

	"go.uber.org/zap"

	"ipfix-collector/internal/metrics"
	"ipfix-collector/internal/parser"
	"ipfix-collector/pkg/types"
)

const (
	// MaxPacketSize is the receive buffer size. MTU-sized on purpose:
	// flow exporters keep datagrams under the path MTU to avoid
	// fragmentation, and anything larger is truncated by the OS.
	// Jumbo-frame deployments are out of scope.
	MaxPacketSize = 1500

	// DefaultChannelSize bounds the record hand-off to the consumer.
	DefaultChannelSize = 1000

	// DefaultReadBuffer is the OS-level UDP receive buffer size.
	DefaultReadBuffer = 1024 * 1024 // 1MB
)

// UDPListener receives NetFlow/IPFIX datagrams and decodes them in place.
type UDPListener struct {
	addr    string
	parser  *parser.Parser
	records chan []*types.FlowRecord
	log     *zap.Logger

	conn *net.UDPConn
}

// New creates a listener bound later to addr ("host:port"). The parser is
// owned by the listener's read loop from here on.
func New(addr string, p *parser.Parser, channelSize int, log *zap.Logger) *UDPListener {
	if channelSize <= 0 {
		channelSize = DefaultChannelSize
	}
	return &UDPListener{
		addr:    addr,
		parser:  p,
		records: make(chan []*types.FlowRecord, channelSize),
		log:     log,
	}
}

// Records returns the channel of decoded record batches. Each batch holds
// the records of one datagram in wire order; the channel is closed when
// the listener shuts down.
func (l *UDPListener) Records() <-chan []*types.FlowRecord {
	return l.records
}

// Start binds the socket and launches the read loop. A bind failure is
// returned to the caller and is fatal for the process.
func (l *UDPListener) Start(ctx context.Context) error {
	udpAddr, err := net.ResolveUDPAddr("udp", l.addr)
	if err != nil {
		return fmt.Errorf("invalid listener address %q: %w", l.addr, err)
	}

	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return fmt.Errorf("failed to bind udp socket to %s: %w", l.addr, err)
	}

	if err := conn.SetReadBuffer(DefaultReadBuffer); err != nil {
		l.log.Warn("could not set UDP receive buffer size", zap.Error(err))
	}

	l.conn = conn
	l.log.Info("listening", zap.String("addr", l.addr))

	// closing the socket is what interrupts the blocking read on shutdown
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	go l.readLoop(ctx)

	return nil
}

// LocalAddr returns the bound socket address, nil before Start.
func (l *UDPListener) LocalAddr() net.Addr {
	if l.conn == nil {
		return nil
	}
	return l.conn.LocalAddr()
}

// readLoop is the ingest loop: receive, dispatch by version, push. One
// malformed datagram never stops ingest.
func (l *UDPListener) readLoop(ctx context.Context) {
	defer close(l.records)

	buf := make([]byte, MaxPacketSize)

	for {
		n, addr, err := l.conn.ReadFromUDP(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) || ctx.Err() != nil {
				l.log.Info("closing UDP socket", zap.String("addr", l.addr))
				return
			}
			metrics.TransportErrors.Inc()
			l.log.Error("udp receive failed", zap.Error(err))
			continue
		}

		metrics.PacketBytes.Add(float64(n))

		if n < 2 {
			metrics.DecodeErrors.WithLabelValues("short_buffer").Inc()
			l.log.Error("datagram too short for a version word",
				zap.Int("bytes", n), zap.Stringer("exporter", addr))
			continue
		}

		version := uint16(buf[0])<<8 | uint16(buf[1])
		metrics.PacketsTotal.WithLabelValues(strconv.Itoa(int(version))).Inc()

		records, err := l.parser.Parse(buf[:n], addr)
		if err != nil {
			metrics.DecodeErrors.WithLabelValues(parser.ErrorKind(err)).Inc()
			l.log.Error("failed to decode datagram",
				zap.Error(err), zap.Stringer("exporter", addr), zap.Int("bytes", n))
			continue
		}
		if len(records) == 0 {
			continue
		}

		metrics.DecodedRecords.WithLabelValues(records[0].Version.String()).Add(float64(len(records)))

		// blocking send: a slow consumer backpressures ingest rather
		// than silently reordering or dropping
		select {
		case l.records <- records:
			metrics.ChannelDepth.Set(float64(len(l.records)))
		case <-ctx.Done():
			return
		}
	}
}
