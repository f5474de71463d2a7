package parser

import (
	"encoding/binary"
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"

	"ipfix-collector/internal/metrics"
	"ipfix-collector/pkg/types"
)

const (
	ipfixHeaderSize         = 16
	ipfixSetHeaderSize      = 4
	ipfixTemplateHeaderSize = 4
	ipfixOptionHeaderSize   = 6
	ipfixFieldSize          = 4

	templateSetID       = 2
	optionTemplateSetID = 3
	minDataSetID        = 256

	// variableLength is the reserved field length for variable-length
	// Information Elements (RFC 7011 §7). Not supported: templates that
	// declare it are dropped.
	variableLength = 0xFFFF
)

// IPFIX Message Header (RFC 7011 §3.1):
// Bytes 0-1:   Version (10)
// Bytes 2-3:   Length (total message length including this header)
// Bytes 4-7:   Export Time (Unix seconds)
// Bytes 8-11:  Sequence Number
// Bytes 12-15: Observation Domain ID

// IPFIXHeader is the fixed 16-octet IPFIX message header.
type IPFIXHeader struct {
	Version    uint16
	Length     uint16
	ExportTime uint32
	Sequence   uint32
	DomainID   uint32
}

// decodeIPFIXHeader reads the message header from the start of buf.
func decodeIPFIXHeader(buf []byte) (IPFIXHeader, error) {
	if len(buf) < ipfixHeaderSize {
		return IPFIXHeader{}, shortBuffer("IPFIX message header", ipfixHeaderSize, len(buf))
	}

	return IPFIXHeader{
		Version:    binary.BigEndian.Uint16(buf[0:2]),
		Length:     binary.BigEndian.Uint16(buf[2:4]),
		ExportTime: binary.BigEndian.Uint32(buf[4:8]),
		Sequence:   binary.BigEndian.Uint32(buf[8:12]),
		DomainID:   binary.BigEndian.Uint32(buf[12:16]),
	}, nil
}

// SetHeader is the 4-octet header of every IPFIX set. Length includes the
// header itself, so the content length is Length - 4.
type SetHeader struct {
	ID     uint16
	Length uint16
}

func decodeSetHeader(buf []byte) (SetHeader, error) {
	if len(buf) < ipfixSetHeaderSize {
		return SetHeader{}, shortBuffer("IPFIX set header", ipfixSetHeaderSize, len(buf))
	}

	return SetHeader{
		ID:     binary.BigEndian.Uint16(buf[0:2]),
		Length: binary.BigEndian.Uint16(buf[2:4]),
	}, nil
}

// parseIPFIX decodes one IPFIX message against the template state for
// (source address, observation domain). Template sets install templates,
// option data sets update sampling state, and data sets with a known
// ordinary template produce flow records.
func (p *Parser) parseIPFIX(data []byte, sourceAddr *net.UDPAddr) ([]*types.FlowRecord, error) {
	header, err := decodeIPFIXHeader(data)
	if err != nil {
		return nil, err
	}
	if header.Version != 10 {
		return nil, fmt.Errorf("%w: IPFIX header version %d", ErrBadVersion, header.Version)
	}
	if int(header.Length) != len(data) {
		return nil, fmt.Errorf("%w: IPFIX header says %d bytes, datagram has %d",
			ErrLengthMismatch, header.Length, len(data))
	}

	key := ExporterKey{Exporter: sourceAddr.IP.String(), Domain: header.DomainID}
	received := p.now()

	var records []*types.FlowRecord
	offset := ipfixHeaderSize

	for offset+ipfixSetHeaderSize <= len(data) {
		set, err := decodeSetHeader(data[offset:])
		if err != nil {
			return nil, err
		}
		if int(set.Length) < ipfixSetHeaderSize {
			return nil, fmt.Errorf("%w: set length %d below header size", ErrLengthMismatch, set.Length)
		}
		endOfSet := offset + int(set.Length)
		if endOfSet > len(data) {
			return nil, fmt.Errorf("%w: set of %d bytes at offset %d exceeds datagram of %d",
				ErrLengthMismatch, set.Length, offset, len(data))
		}

		content := data[offset+ipfixSetHeaderSize : endOfSet]

		switch {
		case set.ID == templateSetID:
			p.installTemplateSet(content, key, false)
		case set.ID == optionTemplateSetID:
			p.installTemplateSet(content, key, true)
		case set.ID >= minDataSetID:
			records = append(records, p.decodeDataSet(content, key, set.ID, received, sourceAddr)...)
		default:
			return nil, fmt.Errorf("%w: set id %d is reserved", ErrBadSetID, set.ID)
		}

		// endOfSet absorbs any trailing alignment padding inside the set
		offset = endOfSet
	}

	return records, nil
}

// installTemplateSet walks the template records of one (option) template
// set. A template referencing an unknown or variable-length field is
// dropped; the rest of the set, and the datagram, continue.
func (p *Parser) installTemplateSet(content []byte, key ExporterKey, options bool) {
	headerSize := ipfixTemplateHeaderSize
	if options {
		headerSize = ipfixOptionHeaderSize
	}

	offset := 0
	for offset+headerSize <= len(content) {
		templateID := binary.BigEndian.Uint16(content[offset : offset+2])
		fieldCount := binary.BigEndian.Uint16(content[offset+2 : offset+4])
		if templateID < minDataSetID {
			// all-zero trailing padding decodes as id 0; nothing valid can follow
			return
		}
		var scopeFieldCount uint16
		if options {
			scopeFieldCount = binary.BigEndian.Uint16(content[offset+4 : offset+6])
		}
		offset += headerSize

		if offset+int(fieldCount)*ipfixFieldSize > len(content) {
			p.log.Warn("template record truncated, dropping rest of set",
				zap.String("exporter", key.String()),
				zap.Uint16("template_id", templateID))
			return
		}

		tmpl := &Template{
			ID:              templateID,
			Options:         options,
			ScopeFieldCount: scopeFieldCount,
			Fields:          make([]FieldDef, 0, fieldCount),
		}

		valid := true
		for i := 0; i < int(fieldCount); i++ {
			fieldID := binary.BigEndian.Uint16(content[offset : offset+2])
			fieldLen := binary.BigEndian.Uint16(content[offset+2 : offset+4])
			offset += ipfixFieldSize

			fieldType, known := types.LookupField(fieldID)
			if !known {
				p.log.Warn("dropping template with unknown field id",
					zap.String("exporter", key.String()),
					zap.Uint16("template_id", templateID),
					zap.Uint16("field_id", fieldID))
				valid = false
				continue
			}
			if fieldLen == variableLength {
				p.log.Warn("dropping template with variable-length field",
					zap.String("exporter", key.String()),
					zap.Uint16("template_id", templateID),
					zap.Stringer("field", fieldType))
				valid = false
				continue
			}

			tmpl.Fields = append(tmpl.Fields, FieldDef{Type: fieldType, Length: fieldLen})
			tmpl.Length += int(fieldLen)
		}

		if !valid {
			metrics.TemplatesDropped.Inc()
			continue
		}

		p.install(key, tmpl)
		if options {
			metrics.TemplatesInstalled.WithLabelValues("options").Inc()
		} else {
			metrics.TemplatesInstalled.WithLabelValues("data").Inc()
		}
	}
}

// decodeDataSet walks the fixed-length records of one data set. Records
// under an ordinary template are emitted with sampling correction
// applied; records under an options template update exporter state and
// are consumed here. Sets for templates we have not seen yet are skipped,
// which is normal before the exporter's next template advertisement.
func (p *Parser) decodeDataSet(content []byte, key ExporterKey, setID uint16, received time.Time, sourceAddr *net.UDPAddr) []*types.FlowRecord {
	tmpl := p.lookup(key, setID)
	if tmpl == nil {
		metrics.SkippedDataSets.Inc()
		p.log.Debug("skipping data set without template",
			zap.String("exporter", key.String()),
			zap.Uint16("set_id", setID))
		return nil
	}
	if tmpl.Length == 0 {
		return nil
	}

	var records []*types.FlowRecord

	for offset := 0; offset+tmpl.Length <= len(content); offset += tmpl.Length {
		fields := decodeDataRecord(content[offset:offset+tmpl.Length], tmpl)

		if tmpl.Options {
			p.applyOptionRecord(key, fields)
			continue
		}

		addSampling(fields, p.state(key).Sampling)
		records = append(records, &types.FlowRecord{
			Version:    types.IPFIX,
			ExporterIP: sourceAddr.IP,
			Domain:     key.Domain,
			ReceivedAt: received,
			Fields:     fields,
		})
	}

	return records
}

// decodeDataRecord reads one record of exactly tmpl.Length bytes. The
// declared field length picks the value width; anything that is not a
// power-of-two integer width is kept as opaque bytes.
func decodeDataRecord(buf []byte, tmpl *Template) types.FieldMap {
	fields := make(types.FieldMap, len(tmpl.Fields))
	offset := 0

	for _, field := range tmpl.Fields {
		value := buf[offset : offset+int(field.Length)]
		switch field.Length {
		case 1:
			fields[field.Type] = types.U8(value[0])
		case 2:
			fields[field.Type] = types.U16(binary.BigEndian.Uint16(value))
		case 4:
			fields[field.Type] = types.U32(binary.BigEndian.Uint32(value))
		case 8:
			fields[field.Type] = types.U64(binary.BigEndian.Uint64(value))
		case 16:
			fields[field.Type] = types.U128(value)
		default:
			fields[field.Type] = types.Opaque(value)
		}
		offset += int(field.Length)
	}

	return fields
}

// applyOptionRecord consumes a decoded options data record: currently
// only the sampling interval is of interest.
func (p *Parser) applyOptionRecord(key ExporterKey, fields types.FieldMap) {
	if v, ok := fields[types.SamplingInterval]; ok {
		p.setSampling(key, uint32(v.AsUint()))
	}
}

// addSampling multiplies the delta counters by the sampling interval so
// emitted counts estimate the unsampled traffic volume.
func addSampling(fields types.FieldMap, sampling uint32) {
	if sampling == 0 {
		return
	}
	if v, ok := fields[types.OctetDeltaCount]; ok && v.Kind == types.KindU64 {
		v.Uint *= uint64(sampling)
		fields[types.OctetDeltaCount] = v
	}
	if v, ok := fields[types.PacketDeltaCount]; ok && v.Kind == types.KindU64 {
		v.Uint *= uint64(sampling)
		fields[types.PacketDeltaCount] = v
	}
}
