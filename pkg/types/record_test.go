package types

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldValueKinds(t *testing.T) {
	assert.Equal(t, uint64(7), U8(7).AsUint())
	assert.Equal(t, uint64(40), U16(40).AsUint())
	assert.Equal(t, uint64(13193), U32(13193).AsUint())
	assert.Equal(t, uint64(4714), U64(4714).AsUint())

	opaque := Opaque([]byte{1, 2, 3})
	assert.Equal(t, uint64(0), opaque.AsUint())
	assert.Equal(t, KindBytes, opaque.Kind)
	assert.Equal(t, []byte{1, 2, 3}, opaque.Raw)
}

func TestFieldValueAsIP(t *testing.T) {
	v4 := U32(0xC305ED5A)
	assert.Equal(t, "195.5.237.90", v4.AsIP().String())

	raw := make([]byte, 16)
	raw[15] = 1
	v6 := U128(raw)
	assert.Equal(t, "::1", v6.AsIP().String())

	assert.Nil(t, U16(80).AsIP())
}

func TestFieldValueCopiesInput(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	v := Opaque(buf)
	buf[0] = 9
	assert.Equal(t, []byte{1, 2, 3, 4}, v.Raw)
}

func TestV5RecordHelpers(t *testing.T) {
	r := V5Record{
		SrcAddr:   0x700A140A,
		DstAddr:   0xAC1EBE0A,
		NextHop:   0xACC70F01,
		Packets:   795,
		Octets:    259,
		StartTime: 566,
		EndTime:   936,
	}

	assert.Equal(t, "112.10.20.10", r.SrcIP().String())
	assert.Equal(t, "172.30.190.10", r.DstIP().String())
	assert.Equal(t, "172.199.15.1", r.NextHopIP().String())
	assert.Equal(t, uint32(370), r.Duration())

	r.AddSampling(10)
	assert.Equal(t, uint32(7950), r.Packets)
	assert.Equal(t, uint32(2590), r.Octets)

	r.AddSampling(0)
	assert.Equal(t, uint32(7950), r.Packets)
}

func TestFlowRecordV5Summary(t *testing.T) {
	received := time.Unix(1_700_000_000, 0)
	rec := &FlowRecord{
		Version:    NetFlowV5,
		ExporterIP: net.ParseIP("192.0.2.1"),
		ReceivedAt: received,
		V5: &V5Record{
			SrcAddr:  0x700A140A,
			DstAddr:  0xAC1EBE0A,
			SrcPort:  40,
			DstPort:  80,
			Protocol: 6,
			Packets:  795,
			Octets:   259,
			TCPFlags: 0x12,
			SrcAS:    49933,
			DstAS:    13757,
			EndTime:  370,
		},
	}

	assert.Equal(t, uint64(259), rec.Octets())
	assert.Equal(t, uint64(795), rec.Packets())

	flow := rec.Summary()
	assert.Equal(t, NetFlowV5, flow.Version)
	assert.Equal(t, "112.10.20.10", flow.SrcAddr.String())
	assert.Equal(t, "172.30.190.10", flow.DstAddr.String())
	assert.Equal(t, uint16(40), flow.SrcPort)
	assert.Equal(t, uint16(80), flow.DstPort)
	assert.Equal(t, uint8(6), flow.Protocol)
	assert.Equal(t, uint64(259), flow.Bytes)
	assert.Equal(t, uint64(795), flow.Packets)
	assert.Equal(t, uint32(49933), flow.SrcAS)
	assert.Equal(t, "192.0.2.1", flow.ExporterIP.String())
	assert.Equal(t, 370*time.Millisecond, flow.Duration())
}

func TestFlowRecordIPFIXSummary(t *testing.T) {
	rec := &FlowRecord{
		Version:    IPFIX,
		ExporterIP: net.ParseIP("192.0.2.1"),
		Domain:     524288,
		Fields: FieldMap{
			SourceIPv4Address:        U32(0xC305ED5A),
			DestinationIPv4Address:   U32(0x347191DE),
			ProtocolIdentifier:       U8(17),
			SourceTransportPort:      U16(61528),
			DestinationTransportPort: U16(3480),
			OctetDeltaCount:          U64(4714),
			PacketDeltaCount:         U64(37),
			FlowStartMilliseconds:    U64(1617712433408),
			FlowEndMilliseconds:      U64(1617712523776),
		},
	}

	require.Equal(t, "195.5.237.90", rec.SrcIP().String())
	require.Equal(t, "52.113.145.222", rec.DstIP().String())
	assert.Equal(t, uint64(4714), rec.Octets())
	assert.Equal(t, uint64(37), rec.Packets())

	flow := rec.Summary()
	assert.Equal(t, IPFIX, flow.Version)
	assert.Equal(t, "195.5.237.90", flow.SrcAddr.String())
	assert.Equal(t, uint16(61528), flow.SrcPort)
	assert.Equal(t, uint16(3480), flow.DstPort)
	assert.Equal(t, uint8(17), flow.Protocol)
	assert.Equal(t, uint64(4714), flow.Bytes)
	assert.Equal(t, uint64(37), flow.Packets)
	assert.Equal(t, time.UnixMilli(1617712433408), flow.StartTime)
	assert.Equal(t, time.UnixMilli(1617712523776), flow.EndTime)
}

func TestFlowRecordIPv6Addresses(t *testing.T) {
	src := make([]byte, 16)
	src[0] = 0x20
	src[1] = 0x01
	src[15] = 0x01

	rec := &FlowRecord{
		Version: IPFIX,
		Fields: FieldMap{
			SourceIPv6Address: U128(src),
		},
	}
	assert.Equal(t, "2001::1", rec.SrcIP().String())
	assert.Nil(t, rec.DstIP())
}

func TestFlowHelpers(t *testing.T) {
	flow := &Flow{Protocol: 6, TCPFlags: 0x12}
	assert.Equal(t, "TCP", flow.ProtocolName())
	assert.Equal(t, "SA", flow.TCPFlagsString())

	flow = &Flow{Protocol: 17}
	assert.Equal(t, "UDP", flow.ProtocolName())
	assert.Equal(t, "-", flow.TCPFlagsString())
}
