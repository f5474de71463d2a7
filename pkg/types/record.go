package types

import (
	"fmt"
	"net"
	"time"
)

// ValueKind tags the wire width a field value was decoded with.
type ValueKind uint8

const (
	KindU8 ValueKind = iota
	KindU16
	KindU32
	KindU64
	KindU128
	KindBytes
)

// FieldValue holds one decoded Information Element value. Values of one,
// two, four and eight octets live in Uint; sixteen-octet values and any
// other declared length are kept verbatim in Raw.
type FieldValue struct {
	Kind ValueKind
	Uint uint64
	Raw  []byte
}

func U8(v uint8) FieldValue   { return FieldValue{Kind: KindU8, Uint: uint64(v)} }
func U16(v uint16) FieldValue { return FieldValue{Kind: KindU16, Uint: uint64(v)} }
func U32(v uint32) FieldValue { return FieldValue{Kind: KindU32, Uint: uint64(v)} }
func U64(v uint64) FieldValue { return FieldValue{Kind: KindU64, Uint: v} }

// U128 copies the 16-octet big-endian value.
func U128(b []byte) FieldValue {
	raw := make([]byte, 16)
	copy(raw, b)
	return FieldValue{Kind: KindU128, Raw: raw}
}

// Opaque copies a value of a non-integer declared length.
func Opaque(b []byte) FieldValue {
	raw := make([]byte, len(b))
	copy(raw, b)
	return FieldValue{Kind: KindBytes, Raw: raw}
}

// AsUint flattens integer kinds to uint64; Raw kinds return 0.
func (v FieldValue) AsUint() uint64 {
	switch v.Kind {
	case KindU8, KindU16, KindU32, KindU64:
		return v.Uint
	default:
		return 0
	}
}

// AsIP interprets the value as an IP address: four-octet values as IPv4,
// sixteen-octet values as IPv6. Other kinds return nil.
func (v FieldValue) AsIP() net.IP {
	switch v.Kind {
	case KindU32:
		return net.IPv4(byte(v.Uint>>24), byte(v.Uint>>16), byte(v.Uint>>8), byte(v.Uint)).To4()
	case KindU128:
		ip := make(net.IP, 16)
		copy(ip, v.Raw)
		return ip
	default:
		return nil
	}
}

func (v FieldValue) String() string {
	switch v.Kind {
	case KindU8, KindU16, KindU32, KindU64:
		return fmt.Sprintf("%d", v.Uint)
	case KindU128:
		return v.AsIP().String()
	default:
		return fmt.Sprintf("%x", v.Raw)
	}
}

// FieldMap holds the decoded fields of one IPFIX data record. Keys are
// unique; iteration order carries no meaning.
type FieldMap map[FieldType]FieldValue

// V5Record is the fixed 48-octet NetFlow v5 flow record.
type V5Record struct {
	SrcAddr   uint32 // source IP address
	DstAddr   uint32 // destination IP address
	NextHop   uint32 // IP address of next hop router
	InputIf   uint16 // SNMP index of input interface
	OutputIf  uint16 // SNMP index of output interface
	Packets   uint32 // packets in the flow
	Octets    uint32 // total layer 3 octets in the flow
	StartTime uint32 // SysUptime at start of flow (ms)
	EndTime   uint32 // SysUptime when the last packet was seen (ms)
	SrcPort   uint16
	DstPort   uint16
	Pad1      uint8
	TCPFlags  uint8 // cumulative OR of TCP flags
	Protocol  uint8
	ToS       uint8
	SrcAS     uint16
	DstAS     uint16
	SrcMask   uint8
	DstMask   uint8
	Pad2      uint16
}

// Duration returns the flow duration in milliseconds of device uptime.
func (r *V5Record) Duration() uint32 {
	return r.EndTime - r.StartTime
}

// SrcIP returns the source address as a net.IP.
func (r *V5Record) SrcIP() net.IP { return ipv4FromUint32(r.SrcAddr) }

// DstIP returns the destination address as a net.IP.
func (r *V5Record) DstIP() net.IP { return ipv4FromUint32(r.DstAddr) }

// NextHopIP returns the next-hop address as a net.IP.
func (r *V5Record) NextHopIP() net.IP { return ipv4FromUint32(r.NextHop) }

// AddSampling scales the counters by the sampling interval learned from
// the packet header. An interval of zero means the exporter does not
// sample and the counters are left untouched.
func (r *V5Record) AddSampling(sampling uint32) {
	if sampling > 0 {
		r.Octets *= sampling
		r.Packets *= sampling
	}
}

func ipv4FromUint32(v uint32) net.IP {
	return net.IPv4(byte(v>>24), byte(v>>16), byte(v>>8), byte(v)).To4()
}

// FlowRecord is the unit handed to consumers: either a NetFlow v5 record
// or an IPFIX data record, tagged by Version. Exactly one of V5 and
// Fields is set.
type FlowRecord struct {
	Version    FlowVersion
	ExporterIP net.IP
	Domain     uint32 // IPFIX observation domain id; zero for v5
	ReceivedAt time.Time

	V5     *V5Record
	Fields FieldMap
}

// field is a nil-safe map access for the IPFIX variant.
func (f *FlowRecord) field(t FieldType) (FieldValue, bool) {
	if f.Fields == nil {
		return FieldValue{}, false
	}
	v, ok := f.Fields[t]
	return v, ok
}

// SrcIP returns the source address of either variant, nil when absent.
func (f *FlowRecord) SrcIP() net.IP {
	if f.V5 != nil {
		return f.V5.SrcIP()
	}
	if v, ok := f.field(SourceIPv4Address); ok {
		return v.AsIP()
	}
	if v, ok := f.field(SourceIPv6Address); ok {
		return v.AsIP()
	}
	return nil
}

// DstIP returns the destination address of either variant, nil when absent.
func (f *FlowRecord) DstIP() net.IP {
	if f.V5 != nil {
		return f.V5.DstIP()
	}
	if v, ok := f.field(DestinationIPv4Address); ok {
		return v.AsIP()
	}
	if v, ok := f.field(DestinationIPv6Address); ok {
		return v.AsIP()
	}
	return nil
}

// Octets returns the (sampling-corrected) octet count.
func (f *FlowRecord) Octets() uint64 {
	if f.V5 != nil {
		return uint64(f.V5.Octets)
	}
	if v, ok := f.field(OctetDeltaCount); ok {
		return v.AsUint()
	}
	return 0
}

// Packets returns the (sampling-corrected) packet count.
func (f *FlowRecord) Packets() uint64 {
	if f.V5 != nil {
		return uint64(f.V5.Packets)
	}
	if v, ok := f.field(PacketDeltaCount); ok {
		return v.AsUint()
	}
	return 0
}

// Summary flattens the record into the display/store model.
func (f *FlowRecord) Summary() Flow {
	flow := Flow{
		Version:    f.Version,
		ExporterIP: f.ExporterIP,
		ReceivedAt: f.ReceivedAt,
	}

	if f.V5 != nil {
		r := f.V5
		flow.SrcAddr = r.SrcIP()
		flow.DstAddr = r.DstIP()
		flow.SrcPort = r.SrcPort
		flow.DstPort = r.DstPort
		flow.Protocol = r.Protocol
		flow.Bytes = uint64(r.Octets)
		flow.Packets = uint64(r.Packets)
		flow.TCPFlags = r.TCPFlags
		flow.SrcAS = uint32(r.SrcAS)
		flow.DstAS = uint32(r.DstAS)
		flow.InputIf = r.InputIf
		flow.OutputIf = r.OutputIf
		flow.StartTime = f.ReceivedAt.Add(-time.Duration(r.Duration()) * time.Millisecond)
		flow.EndTime = f.ReceivedAt
		return flow
	}

	flow.SrcAddr = f.SrcIP()
	flow.DstAddr = f.DstIP()
	flow.Bytes = f.Octets()
	flow.Packets = f.Packets()
	if v, ok := f.field(SourceTransportPort); ok {
		flow.SrcPort = uint16(v.AsUint())
	}
	if v, ok := f.field(DestinationTransportPort); ok {
		flow.DstPort = uint16(v.AsUint())
	}
	if v, ok := f.field(ProtocolIdentifier); ok {
		flow.Protocol = uint8(v.AsUint())
	}
	if v, ok := f.field(TcpControlBits); ok {
		flow.TCPFlags = uint8(v.AsUint())
	}
	if v, ok := f.field(BgpSourceAsNumber); ok {
		flow.SrcAS = uint32(v.AsUint())
	}
	if v, ok := f.field(BgpDestinationAsNumber); ok {
		flow.DstAS = uint32(v.AsUint())
	}
	if v, ok := f.field(IngressInterface); ok {
		flow.InputIf = uint16(v.AsUint())
	}
	if v, ok := f.field(EgressInterface); ok {
		flow.OutputIf = uint16(v.AsUint())
	}
	if v, ok := f.field(FlowStartMilliseconds); ok {
		flow.StartTime = time.UnixMilli(int64(v.AsUint()))
	}
	if v, ok := f.field(FlowEndMilliseconds); ok {
		flow.EndTime = time.UnixMilli(int64(v.AsUint()))
	}
	return flow
}

func (f *FlowRecord) String() string {
	if f.V5 != nil {
		r := f.V5
		return fmt.Sprintf("src_addr: %s, dst_addr: %s, octets: %d, packets: %d, protocol: %d, duration: %dms",
			r.SrcIP(), r.DstIP(), r.Octets, r.Packets, r.Protocol, r.Duration())
	}
	out := ""
	for ftype, fvalue := range f.Fields {
		if out != "" {
			out += ", "
		}
		switch ftype {
		case SourceIPv4Address, DestinationIPv4Address, ExporterIPv4Address,
			SourceIPv6Address, DestinationIPv6Address, ExporterIPv6Address,
			IpNextHopIPv4Address, BgpNextHopIPv4Address:
			out += fmt.Sprintf("%s: %s", ftype, fvalue.AsIP())
		default:
			out += fmt.Sprintf("%s: %s", ftype, fvalue)
		}
	}
	return out
}
