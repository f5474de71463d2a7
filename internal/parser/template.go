package parser

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"ipfix-collector/internal/metrics"
	"ipfix-collector/pkg/types"
)

// ExporterKey identifies the scope under which IPFIX templates are
// remembered: the exporter's source address together with the observation
// domain id from the message header. Two datagrams from the same address
// with different domain ids do not share templates.
type ExporterKey struct {
	Exporter string
	Domain   uint32
}

func (k ExporterKey) String() string {
	return fmt.Sprintf("%s/%d", k.Exporter, k.Domain)
}

// FieldDef defines one field in a template: its Information Element and
// its encoded length in octets.
type FieldDef struct {
	Type   types.FieldType
	Length uint16
}

// Template is an installed IPFIX template (or options template, when
// ScopeFieldCount > 0 or Options is set). Immutable once installed; a
// re-advertisement under the same id replaces it as a whole.
type Template struct {
	ID              uint16
	Options         bool
	ScopeFieldCount uint16
	Fields          []FieldDef
	Length          int // sum of field lengths = octets per data record
}

// ExporterState carries everything remembered about one ExporterKey: the
// installed templates and the effective sampling interval learned from
// option data records. A sampling interval of zero means no correction.
type ExporterState struct {
	Sampling  uint32
	Templates map[uint16]*Template
	lastSeen  time.Time
}

// state returns the ExporterState for key, creating it on first use.
func (p *Parser) state(key ExporterKey) *ExporterState {
	st, ok := p.exporters[key]
	if !ok {
		st = &ExporterState{Templates: make(map[uint16]*Template)}
		p.exporters[key] = st
	}
	st.lastSeen = p.now()
	return st
}

// install stores a template, replacing any prior entry with the same id.
func (p *Parser) install(key ExporterKey, tmpl *Template) {
	st := p.state(key)
	if _, replaced := st.Templates[tmpl.ID]; replaced {
		p.log.Debug("replacing template",
			zap.String("exporter", key.String()),
			zap.Uint16("template_id", tmpl.ID))
	} else {
		p.log.Info("installed template",
			zap.String("exporter", key.String()),
			zap.Uint16("template_id", tmpl.ID),
			zap.Bool("options", tmpl.Options),
			zap.Int("fields", len(tmpl.Fields)),
			zap.Int("record_length", tmpl.Length))
	}
	st.Templates[tmpl.ID] = tmpl
}

// lookup returns the template installed for (key, id), or nil. When a
// template TTL is configured, state idle past the TTL is discarded first.
func (p *Parser) lookup(key ExporterKey, id uint16) *Template {
	st, ok := p.exporters[key]
	if !ok {
		return nil
	}
	if p.templateTTL > 0 && p.now().Sub(st.lastSeen) > p.templateTTL {
		delete(p.exporters, key)
		p.log.Info("expired exporter state", zap.String("exporter", key.String()))
		return nil
	}
	return st.Templates[id]
}

// setSampling records the sampling interval learned from an option data
// record. Idempotent; logs only on change.
func (p *Parser) setSampling(key ExporterKey, interval uint32) {
	st := p.state(key)
	if st.Sampling == interval {
		return
	}
	p.log.Info("sampling interval changed",
		zap.String("exporter", key.String()),
		zap.Uint32("old", st.Sampling),
		zap.Uint32("new", interval))
	st.Sampling = interval
	metrics.SamplingUpdates.Inc()
}
