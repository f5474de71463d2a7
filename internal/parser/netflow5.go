package parser

import (
	"encoding/binary"
	"fmt"
	"net"

	"ipfix-collector/pkg/types"
)

const (
	netflowV5HeaderSize = 24
	netflowV5RecordSize = 48
)

// NetFlow v5 Header structure:
// Bytes 0-1:   Version (5)
// Bytes 2-3:   Count (number of flows, 1-30)
// Bytes 4-7:   SysUptime (ms since boot)
// Bytes 8-11:  Unix Secs
// Bytes 12-15: Unix Nsecs
// Bytes 16-19: Flow Sequence
// Byte 20:     Engine Type
// Byte 21:     Engine ID
// Bytes 22-23: Sampling word (2 bits mode, 14 bits interval)

// V5Header is the fixed 24-octet NetFlow v5 packet header.
type V5Header struct {
	Version    uint16
	Count      uint16
	SysUptime  uint32
	UnixSecs   uint32
	UnixNsecs  uint32
	Sequence   uint32
	EngineType uint8
	EngineID   uint8
	sampling   uint16
}

// SamplingMode returns the two high bits of the sampling word.
func (h *V5Header) SamplingMode() uint16 {
	return h.sampling >> 14
}

// SamplingInterval returns the low 14 bits of the sampling word.
func (h *V5Header) SamplingInterval() uint16 {
	return h.sampling & 0x3FFF
}

// decodeV5Header reads the 24-octet header from the start of buf.
func decodeV5Header(buf []byte) (V5Header, error) {
	if len(buf) < netflowV5HeaderSize {
		return V5Header{}, shortBuffer("NetFlow v5 header", netflowV5HeaderSize, len(buf))
	}

	return V5Header{
		Version:    binary.BigEndian.Uint16(buf[0:2]),
		Count:      binary.BigEndian.Uint16(buf[2:4]),
		SysUptime:  binary.BigEndian.Uint32(buf[4:8]),
		UnixSecs:   binary.BigEndian.Uint32(buf[8:12]),
		UnixNsecs:  binary.BigEndian.Uint32(buf[12:16]),
		Sequence:   binary.BigEndian.Uint32(buf[16:20]),
		EngineType: buf[20],
		EngineID:   buf[21],
		sampling:   binary.BigEndian.Uint16(buf[22:24]),
	}, nil
}

// NetFlow v5 Record structure (48 octets):
// Bytes 0-3:   Source IP
// Bytes 4-7:   Dest IP
// Bytes 8-11:  Next Hop
// Bytes 12-13: Input Interface
// Bytes 14-15: Output Interface
// Bytes 16-19: Packets
// Bytes 20-23: Octets
// Bytes 24-27: First (SysUptime at start)
// Bytes 28-31: Last (SysUptime at end)
// Bytes 32-33: Source Port
// Bytes 34-35: Dest Port
// Byte 36:     Pad1
// Byte 37:     TCP Flags
// Byte 38:     Protocol
// Byte 39:     ToS
// Bytes 40-41: Source AS
// Bytes 42-43: Dest AS
// Byte 44:     Source Mask
// Byte 45:     Dest Mask
// Bytes 46-47: Pad2

// decodeV5Record reads one 48-octet flow record from the start of buf.
func decodeV5Record(buf []byte) (types.V5Record, error) {
	if len(buf) < netflowV5RecordSize {
		return types.V5Record{}, shortBuffer("NetFlow v5 record", netflowV5RecordSize, len(buf))
	}

	return types.V5Record{
		SrcAddr:   binary.BigEndian.Uint32(buf[0:4]),
		DstAddr:   binary.BigEndian.Uint32(buf[4:8]),
		NextHop:   binary.BigEndian.Uint32(buf[8:12]),
		InputIf:   binary.BigEndian.Uint16(buf[12:14]),
		OutputIf:  binary.BigEndian.Uint16(buf[14:16]),
		Packets:   binary.BigEndian.Uint32(buf[16:20]),
		Octets:    binary.BigEndian.Uint32(buf[20:24]),
		StartTime: binary.BigEndian.Uint32(buf[24:28]),
		EndTime:   binary.BigEndian.Uint32(buf[28:32]),
		SrcPort:   binary.BigEndian.Uint16(buf[32:34]),
		DstPort:   binary.BigEndian.Uint16(buf[34:36]),
		Pad1:      buf[36],
		TCPFlags:  buf[37],
		Protocol:  buf[38],
		ToS:       buf[39],
		SrcAS:     binary.BigEndian.Uint16(buf[40:42]),
		DstAS:     binary.BigEndian.Uint16(buf[42:44]),
		SrcMask:   buf[44],
		DstMask:   buf[45],
		Pad2:      binary.BigEndian.Uint16(buf[46:48]),
	}, nil
}

// parseNetFlowV5 decodes a complete v5 datagram: header plus exactly
// header.Count records, with sampling correction from the header word.
func (p *Parser) parseNetFlowV5(data []byte, sourceAddr *net.UDPAddr) ([]*types.FlowRecord, error) {
	header, err := decodeV5Header(data)
	if err != nil {
		return nil, err
	}

	if header.Count == 0 || (len(data)-netflowV5HeaderSize)/netflowV5RecordSize != int(header.Count) {
		return nil, fmt.Errorf("%w: header says %d records, datagram has %d payload bytes",
			ErrCountMismatch, header.Count, len(data)-netflowV5HeaderSize)
	}

	sampling := uint32(header.SamplingInterval())
	received := p.now()

	records := make([]*types.FlowRecord, 0, header.Count)
	offset := netflowV5HeaderSize

	for i := 0; i < int(header.Count); i++ {
		record, err := decodeV5Record(data[offset:])
		if err != nil {
			return nil, err
		}
		record.AddSampling(sampling)

		records = append(records, &types.FlowRecord{
			Version:    types.NetFlowV5,
			ExporterIP: sourceAddr.IP,
			ReceivedAt: received,
			V5:         &record,
		})
		offset += netflowV5RecordSize
	}

	return records, nil
}
