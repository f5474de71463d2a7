package parser

import (
	"encoding/binary"
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"

	"ipfix-collector/pkg/types"
)

// Parser decodes NetFlow v5 and IPFIX datagrams into flow records. It
// owns the per-exporter template state and is therefore not safe for
// concurrent use; the ingest goroutine is its only caller.
type Parser struct {
	exporters   map[ExporterKey]*ExporterState
	templateTTL time.Duration
	log         *zap.Logger
	now         func() time.Time
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger; the default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(p *Parser) { p.log = log }
}

// WithTemplateTTL ages out exporter state that has been idle longer than
// ttl. Zero (the default) keeps templates for the process lifetime, which
// is what exporters expect: they re-advertise periodically.
func WithTemplateTTL(ttl time.Duration) Option {
	return func(p *Parser) { p.templateTTL = ttl }
}

// New creates a new parser
func New(opts ...Option) *Parser {
	p := &Parser{
		exporters: make(map[ExporterKey]*ExporterState),
		log:       zap.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse decodes one datagram and returns the flow records it carried.
// Template and option-template sets update internal state and produce no
// records, so an empty result with a nil error is common.
func (p *Parser) Parse(data []byte, sourceAddr *net.UDPAddr) ([]*types.FlowRecord, error) {
	if len(data) < 2 {
		return nil, shortBuffer("version word", 2, len(data))
	}

	version := binary.BigEndian.Uint16(data[0:2])

	switch version {
	case 5:
		return p.parseNetFlowV5(data, sourceAddr)
	case 10:
		return p.parseIPFIX(data, sourceAddr)
	default:
		return nil, fmt.Errorf("%w: expected 5 or 10, read %d", ErrBadVersion, version)
	}
}

// Exporters returns the number of exporter keys with installed state.
func (p *Parser) Exporters() int {
	return len(p.exporters)
}

// Sampling returns the effective sampling interval for an exporter key,
// zero when none has been learned.
func (p *Parser) Sampling(key ExporterKey) uint32 {
	if st, ok := p.exporters[key]; ok {
		return st.Sampling
	}
	return 0
}
