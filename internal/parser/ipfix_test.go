package parser

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ipfix-collector/pkg/types"
)

const ipfixHeaderPayload = `00 0a 00 84 60 6c 55 89 df b2 ba d2 00 08 00 00`

const setHeaderPayload = `00 02 00 74`

// 27-field data template, id 256
const templatePayload = `
	01 00 00 1b 00 08 00 04 00 0c 00 04 00 05 00 01
	00 04 00 01 00 07 00 02 00 0b 00 02 00 20 00 02
	00 0a 00 04 00 3a 00 02 00 09 00 01 00 0d 00 01
	00 10 00 04 00 11 00 04 00 0f 00 04 00 06 00 01
	00 0e 00 04 00 01 00 08 00 02 00 08 00 34 00 01
	00 35 00 01 00 98 00 08 00 99 00 08 00 88 00 01
	00 3d 00 01 00 f3 00 02 00 f5 00 02 00 36 00 04`

// 11-field options template, id 512, one scope field
const optionTemplatePayload = `
	02 00 00 0b 00 01 00 90 00 04 00 29 00 08 00 2a
	00 08 00 a0 00 08 00 82 00 04 00 83 00 10 00 22
	00 04 00 24 00 02 00 25 00 02 00 d6 00 01 00 d7
	00 01`

// one 85-octet record under template 256
const dataSetPayload = `
	c3 05 ed 5a 34 71 91 de 00 11 f0 58 0d 98 00 00
	00 00 02 2d 00 00 1e 0e 00 00 33 89 00 00 1f 8b
	c3 42 e0 8c 00 00 00 02 2c 00 00 00 00 00 00 12
	6a 00 00 00 00 00 00 00 25 75 75 00 00 01 78 a7
	2c c9 00 00 00 01 78 a7 2e 2a 00 02 ff 00 00 00
	00 00 00 00 00`

// one 58-octet record under options template 512, samplingInterval = 10
const optionDataSetPayload = `
	00 00 00 02 00 00 00 09 31 c3 26 c6 00 00 00 26
	5b 7e cc 9b 00 00 01 4a a2 d7 85 28 b2 84 10 20
	00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00
	00 00 00 0a 00 0a 00 0a 0a 11`

const testDomain = 0x00080000

// ipfixDatagram assembles a message header plus the given sets. Each set
// is (id, content); set and message lengths are computed.
func ipfixDatagram(t *testing.T, domain uint32, sets ...[2]interface{}) []byte {
	t.Helper()

	total := ipfixHeaderSize
	for _, s := range sets {
		total += ipfixSetHeaderSize + len(s[1].([]byte))
	}

	data := make([]byte, 0, total)
	header := make([]byte, ipfixHeaderSize)
	binary.BigEndian.PutUint16(header[0:2], 10)
	binary.BigEndian.PutUint16(header[2:4], uint16(total))
	binary.BigEndian.PutUint32(header[4:8], 1617712521)
	binary.BigEndian.PutUint32(header[8:12], 3753032402)
	binary.BigEndian.PutUint32(header[12:16], domain)
	data = append(data, header...)

	for _, s := range sets {
		id := s[0].(uint16)
		content := s[1].([]byte)
		setHeader := make([]byte, ipfixSetHeaderSize)
		binary.BigEndian.PutUint16(setHeader[0:2], id)
		binary.BigEndian.PutUint16(setHeader[2:4], uint16(ipfixSetHeaderSize+len(content)))
		data = append(data, setHeader...)
		data = append(data, content...)
	}

	return data
}

func TestDecodeIPFIXHeader(t *testing.T) {
	header, err := decodeIPFIXHeader(mustHex(t, ipfixHeaderPayload))
	require.NoError(t, err)

	assert.Equal(t, uint16(10), header.Version)
	assert.Equal(t, uint16(132), header.Length)
	assert.Equal(t, uint32(1617712521), header.ExportTime)
	assert.Equal(t, uint32(3753032402), header.Sequence)
	assert.Equal(t, uint32(524288), header.DomainID)
}

func TestDecodeIPFIXHeaderShort(t *testing.T) {
	payload := mustHex(t, ipfixHeaderPayload)
	_, err := decodeIPFIXHeader(payload[:len(payload)-1])
	assert.ErrorIs(t, err, ErrShortBuffer)
}

func TestDecodeSetHeader(t *testing.T) {
	set, err := decodeSetHeader(mustHex(t, setHeaderPayload))
	require.NoError(t, err)

	assert.Equal(t, uint16(2), set.ID)
	assert.Equal(t, uint16(116), set.Length)
}

func TestInstallTemplate(t *testing.T) {
	p := New()

	records, err := p.Parse(
		ipfixDatagram(t, testDomain, [2]interface{}{uint16(templateSetID), mustHex(t, templatePayload)}),
		exporterAddr("127.0.0.1"))
	require.NoError(t, err)
	assert.Empty(t, records, "template sets must not emit records")

	key := ExporterKey{Exporter: "127.0.0.1", Domain: testDomain}
	tmpl := p.lookup(key, 256)
	require.NotNil(t, tmpl)
	assert.False(t, tmpl.Options)
	assert.Equal(t, uint16(256), tmpl.ID)
	assert.Len(t, tmpl.Fields, 27)
	assert.Equal(t, 85, tmpl.Length)

	assert.Equal(t, FieldDef{Type: types.SourceIPv4Address, Length: 4}, tmpl.Fields[0])
	assert.Equal(t, FieldDef{Type: types.DestinationIPv4Address, Length: 4}, tmpl.Fields[1])
	assert.Equal(t, FieldDef{Type: types.IPClassOfService, Length: 1}, tmpl.Fields[2])
	assert.Equal(t, FieldDef{Type: types.ProtocolIdentifier, Length: 1}, tmpl.Fields[3])
	assert.Equal(t, FieldDef{Type: types.SourceTransportPort, Length: 2}, tmpl.Fields[4])
	assert.Equal(t, FieldDef{Type: types.DestinationTransportPort, Length: 2}, tmpl.Fields[5])
	assert.Equal(t, FieldDef{Type: types.IcmpTypeCodeIPv4, Length: 2}, tmpl.Fields[6])
	assert.Equal(t, FieldDef{Type: types.IngressInterface, Length: 4}, tmpl.Fields[7])
	assert.Equal(t, FieldDef{Type: types.VlanID, Length: 2}, tmpl.Fields[8])
	assert.Equal(t, FieldDef{Type: types.SourceIPv4PrefixLength, Length: 1}, tmpl.Fields[9])
	assert.Equal(t, FieldDef{Type: types.DestinationIPv4PrefixLength, Length: 1}, tmpl.Fields[10])
	assert.Equal(t, FieldDef{Type: types.BgpSourceAsNumber, Length: 4}, tmpl.Fields[11])
	assert.Equal(t, FieldDef{Type: types.BgpDestinationAsNumber, Length: 4}, tmpl.Fields[12])
	assert.Equal(t, FieldDef{Type: types.IpNextHopIPv4Address, Length: 4}, tmpl.Fields[13])
	assert.Equal(t, FieldDef{Type: types.TcpControlBits, Length: 1}, tmpl.Fields[14])
	assert.Equal(t, FieldDef{Type: types.EgressInterface, Length: 4}, tmpl.Fields[15])
	assert.Equal(t, FieldDef{Type: types.OctetDeltaCount, Length: 8}, tmpl.Fields[16])
	assert.Equal(t, FieldDef{Type: types.PacketDeltaCount, Length: 8}, tmpl.Fields[17])
	assert.Equal(t, FieldDef{Type: types.MinimumTTL, Length: 1}, tmpl.Fields[18])
	assert.Equal(t, FieldDef{Type: types.MaximumTTL, Length: 1}, tmpl.Fields[19])
	assert.Equal(t, FieldDef{Type: types.FlowStartMilliseconds, Length: 8}, tmpl.Fields[20])
	assert.Equal(t, FieldDef{Type: types.FlowEndMilliseconds, Length: 8}, tmpl.Fields[21])
	assert.Equal(t, FieldDef{Type: types.FlowEndReason, Length: 1}, tmpl.Fields[22])
	assert.Equal(t, FieldDef{Type: types.FlowDirection, Length: 1}, tmpl.Fields[23])
	assert.Equal(t, FieldDef{Type: types.Dot1qVlanID, Length: 2}, tmpl.Fields[24])
	assert.Equal(t, FieldDef{Type: types.Dot1qCustomerVlanID, Length: 2}, tmpl.Fields[25])
	assert.Equal(t, FieldDef{Type: types.FragmentIdentification, Length: 4}, tmpl.Fields[26])
}

func TestInstallOptionTemplate(t *testing.T) {
	p := New()

	records, err := p.Parse(
		ipfixDatagram(t, testDomain, [2]interface{}{uint16(optionTemplateSetID), mustHex(t, optionTemplatePayload)}),
		exporterAddr("127.0.0.1"))
	require.NoError(t, err)
	assert.Empty(t, records)

	key := ExporterKey{Exporter: "127.0.0.1", Domain: testDomain}
	tmpl := p.lookup(key, 512)
	require.NotNil(t, tmpl)
	assert.True(t, tmpl.Options)
	assert.Equal(t, uint16(1), tmpl.ScopeFieldCount)
	assert.Len(t, tmpl.Fields, 11)
	assert.Equal(t, 58, tmpl.Length)

	assert.Equal(t, FieldDef{Type: types.ExportingProcessID, Length: 4}, tmpl.Fields[0])
	assert.Equal(t, FieldDef{Type: types.ExportedMessageTotalCount, Length: 8}, tmpl.Fields[1])
	assert.Equal(t, FieldDef{Type: types.ExportedFlowRecordTotalCount, Length: 8}, tmpl.Fields[2])
	assert.Equal(t, FieldDef{Type: types.SystemInitTimeMilliseconds, Length: 8}, tmpl.Fields[3])
	assert.Equal(t, FieldDef{Type: types.ExporterIPv4Address, Length: 4}, tmpl.Fields[4])
	assert.Equal(t, FieldDef{Type: types.ExporterIPv6Address, Length: 16}, tmpl.Fields[5])
	assert.Equal(t, FieldDef{Type: types.SamplingInterval, Length: 4}, tmpl.Fields[6])
	assert.Equal(t, FieldDef{Type: types.FlowActiveTimeout, Length: 2}, tmpl.Fields[7])
	assert.Equal(t, FieldDef{Type: types.FlowIdleTimeout, Length: 2}, tmpl.Fields[8])
	assert.Equal(t, FieldDef{Type: types.ExportProtocolVersion, Length: 1}, tmpl.Fields[9])
	assert.Equal(t, FieldDef{Type: types.ExportTransportProtocol, Length: 1}, tmpl.Fields[10])
}

func TestDataSetBeforeTemplate(t *testing.T) {
	p := New()

	// data before any template advertisement is skipped, not an error
	records, err := p.Parse(
		ipfixDatagram(t, testDomain, [2]interface{}{uint16(256), mustHex(t, dataSetPayload)}),
		exporterAddr("127.0.0.1"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestTemplateThenDataSet(t *testing.T) {
	p := New()
	addr := exporterAddr("127.0.0.1")

	records, err := p.Parse(
		ipfixDatagram(t, testDomain, [2]interface{}{uint16(templateSetID), mustHex(t, templatePayload)}), addr)
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = p.Parse(
		ipfixDatagram(t, testDomain, [2]interface{}{uint16(256), mustHex(t, dataSetPayload)}), addr)
	require.NoError(t, err)
	require.Len(t, records, 1)

	fields := records[0].Fields
	require.NotNil(t, fields)
	assert.Len(t, fields, 27)

	assert.Equal(t, "195.5.237.90", fields[types.SourceIPv4Address].AsIP().String())
	assert.Equal(t, "52.113.145.222", fields[types.DestinationIPv4Address].AsIP().String())
	assert.Equal(t, types.U8(0), fields[types.IPClassOfService])
	assert.Equal(t, types.U8(17), fields[types.ProtocolIdentifier])
	assert.Equal(t, types.U16(61528), fields[types.SourceTransportPort])
	assert.Equal(t, types.U16(3480), fields[types.DestinationTransportPort])
	assert.Equal(t, types.U16(0), fields[types.IcmpTypeCodeIPv4])
	assert.Equal(t, types.U32(557), fields[types.IngressInterface])
	assert.Equal(t, types.U16(0), fields[types.VlanID])
	assert.Equal(t, types.U8(30), fields[types.SourceIPv4PrefixLength])
	assert.Equal(t, types.U8(14), fields[types.DestinationIPv4PrefixLength])
	assert.Equal(t, types.U32(13193), fields[types.BgpSourceAsNumber])
	assert.Equal(t, types.U32(8075), fields[types.BgpDestinationAsNumber])
	assert.Equal(t, "195.66.224.140", fields[types.IpNextHopIPv4Address].AsIP().String())
	assert.Equal(t, types.U8(0), fields[types.TcpControlBits])
	assert.Equal(t, types.U32(556), fields[types.EgressInterface])
	assert.Equal(t, types.U64(4714), fields[types.OctetDeltaCount])
	assert.Equal(t, types.U64(37), fields[types.PacketDeltaCount])
	assert.Equal(t, types.U8(117), fields[types.MinimumTTL])
	assert.Equal(t, types.U8(117), fields[types.MaximumTTL])
	assert.Equal(t, types.U64(1617712433408), fields[types.FlowStartMilliseconds])
	assert.Equal(t, types.U64(1617712523776), fields[types.FlowEndMilliseconds])
	assert.Equal(t, types.U8(2), fields[types.FlowEndReason])
	assert.Equal(t, types.U8(255), fields[types.FlowDirection])
	assert.Equal(t, types.U16(0), fields[types.Dot1qVlanID])
	assert.Equal(t, types.U16(0), fields[types.Dot1qCustomerVlanID])
	assert.Equal(t, types.U32(0), fields[types.FragmentIdentification])
}

func TestTemplateAndDataInOneDatagram(t *testing.T) {
	p := New()

	records, err := p.Parse(
		ipfixDatagram(t, testDomain,
			[2]interface{}{uint16(templateSetID), mustHex(t, templatePayload)},
			[2]interface{}{uint16(256), mustHex(t, dataSetPayload)}),
		exporterAddr("127.0.0.1"))
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestOptionDataSetUpdatesSampling(t *testing.T) {
	p := New()
	addr := exporterAddr("127.0.0.1")
	key := ExporterKey{Exporter: "127.0.0.1", Domain: testDomain}

	_, err := p.Parse(
		ipfixDatagram(t, testDomain, [2]interface{}{uint16(optionTemplateSetID), mustHex(t, optionTemplatePayload)}), addr)
	require.NoError(t, err)

	records, err := p.Parse(
		ipfixDatagram(t, testDomain, [2]interface{}{uint16(512), mustHex(t, optionDataSetPayload)}), addr)
	require.NoError(t, err)
	assert.Empty(t, records, "option data records are consumed, not emitted")
	assert.Equal(t, uint32(10), p.Sampling(key))

	// idempotent: replaying the option data set changes nothing
	_, err = p.Parse(
		ipfixDatagram(t, testDomain, [2]interface{}{uint16(512), mustHex(t, optionDataSetPayload)}), addr)
	require.NoError(t, err)
	assert.Equal(t, uint32(10), p.Sampling(key))
}

func TestSamplingAppliedToDataRecords(t *testing.T) {
	p := New()
	addr := exporterAddr("127.0.0.1")

	for _, datagram := range [][]byte{
		ipfixDatagram(t, testDomain, [2]interface{}{uint16(templateSetID), mustHex(t, templatePayload)}),
		ipfixDatagram(t, testDomain, [2]interface{}{uint16(optionTemplateSetID), mustHex(t, optionTemplatePayload)}),
		ipfixDatagram(t, testDomain, [2]interface{}{uint16(512), mustHex(t, optionDataSetPayload)}),
	} {
		_, err := p.Parse(datagram, addr)
		require.NoError(t, err)
	}

	records, err := p.Parse(
		ipfixDatagram(t, testDomain, [2]interface{}{uint16(256), mustHex(t, dataSetPayload)}), addr)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, uint64(47140), records[0].Octets())
	assert.Equal(t, uint64(370), records[0].Packets())
}

func TestCrossExporterIsolation(t *testing.T) {
	p := New()

	_, err := p.Parse(
		ipfixDatagram(t, testDomain, [2]interface{}{uint16(templateSetID), mustHex(t, templatePayload)}),
		exporterAddr("127.0.0.1"))
	require.NoError(t, err)

	// same template id, different source address: not visible
	records, err := p.Parse(
		ipfixDatagram(t, testDomain, [2]interface{}{uint16(256), mustHex(t, dataSetPayload)}),
		exporterAddr("10.0.0.8"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCrossDomainIsolation(t *testing.T) {
	p := New()
	addr := exporterAddr("127.0.0.1")

	_, err := p.Parse(
		ipfixDatagram(t, testDomain, [2]interface{}{uint16(templateSetID), mustHex(t, templatePayload)}), addr)
	require.NoError(t, err)

	records, err := p.Parse(
		ipfixDatagram(t, testDomain+1, [2]interface{}{uint16(256), mustHex(t, dataSetPayload)}), addr)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLengthMismatchRejected(t *testing.T) {
	p := New()

	data := ipfixDatagram(t, testDomain, [2]interface{}{uint16(templateSetID), mustHex(t, templatePayload)})
	binary.BigEndian.PutUint16(data[2:4], uint16(len(data)+4))

	_, err := p.Parse(data, exporterAddr("127.0.0.1"))
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestSetOverrunRejected(t *testing.T) {
	p := New()

	data := ipfixDatagram(t, testDomain, [2]interface{}{uint16(templateSetID), mustHex(t, templatePayload)})
	// set claims more bytes than the datagram holds
	binary.BigEndian.PutUint16(data[ipfixHeaderSize+2:ipfixHeaderSize+4], uint16(len(data)))

	_, err := p.Parse(data, exporterAddr("127.0.0.1"))
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestReservedSetIDRejected(t *testing.T) {
	p := New()

	data := ipfixDatagram(t, testDomain, [2]interface{}{uint16(4), mustHex(t, dataSetPayload)})
	_, err := p.Parse(data, exporterAddr("127.0.0.1"))
	assert.ErrorIs(t, err, ErrBadSetID)
}

func TestUnknownFieldDropsTemplateOnly(t *testing.T) {
	p := New()
	addr := exporterAddr("127.0.0.1")
	key := ExporterKey{Exporter: "127.0.0.1", Domain: testDomain}

	// template 300 references field id 600 (outside the registry);
	// template 256 in the same datagram must still install
	bad := make([]byte, 8)
	binary.BigEndian.PutUint16(bad[0:2], 300)
	binary.BigEndian.PutUint16(bad[2:4], 1)
	binary.BigEndian.PutUint16(bad[4:6], 600)
	binary.BigEndian.PutUint16(bad[6:8], 4)

	records, err := p.Parse(
		ipfixDatagram(t, testDomain,
			[2]interface{}{uint16(templateSetID), bad},
			[2]interface{}{uint16(templateSetID), mustHex(t, templatePayload)}),
		addr)
	require.NoError(t, err)
	assert.Empty(t, records)

	assert.Nil(t, p.lookup(key, 300))
	assert.NotNil(t, p.lookup(key, 256))
}

func TestVariableLengthFieldDropsTemplate(t *testing.T) {
	p := New()
	key := ExporterKey{Exporter: "127.0.0.1", Domain: testDomain}

	tmpl := make([]byte, 8)
	binary.BigEndian.PutUint16(tmpl[0:2], 300)
	binary.BigEndian.PutUint16(tmpl[2:4], 1)
	binary.BigEndian.PutUint16(tmpl[4:6], uint16(types.InterfaceName))
	binary.BigEndian.PutUint16(tmpl[6:8], variableLength)

	_, err := p.Parse(
		ipfixDatagram(t, testDomain, [2]interface{}{uint16(templateSetID), tmpl}),
		exporterAddr("127.0.0.1"))
	require.NoError(t, err)
	assert.Nil(t, p.lookup(key, 300))
}

func TestDataSetPaddingIgnored(t *testing.T) {
	p := New()
	addr := exporterAddr("127.0.0.1")

	_, err := p.Parse(
		ipfixDatagram(t, testDomain, [2]interface{}{uint16(templateSetID), mustHex(t, templatePayload)}), addr)
	require.NoError(t, err)

	// three padding octets after the record must not trigger another decode
	padded := append(mustHex(t, dataSetPayload), 0, 0, 0)
	records, err := p.Parse(
		ipfixDatagram(t, testDomain, [2]interface{}{uint16(256), padded}), addr)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestTemplateSetPaddingIgnored(t *testing.T) {
	p := New()
	key := ExporterKey{Exporter: "127.0.0.1", Domain: testDomain}

	// two zero octets of padding after the template record
	padded := append(mustHex(t, templatePayload), 0, 0)
	_, err := p.Parse(
		ipfixDatagram(t, testDomain, [2]interface{}{uint16(templateSetID), padded}),
		exporterAddr("127.0.0.1"))
	require.NoError(t, err)
	assert.NotNil(t, p.lookup(key, 256))
}

func TestTemplateReplacement(t *testing.T) {
	p := New()
	addr := exporterAddr("127.0.0.1")
	key := ExporterKey{Exporter: "127.0.0.1", Domain: testDomain}

	_, err := p.Parse(
		ipfixDatagram(t, testDomain, [2]interface{}{uint16(templateSetID), mustHex(t, templatePayload)}), addr)
	require.NoError(t, err)
	require.Equal(t, 85, p.lookup(key, 256).Length)

	// re-advertise id 256 with a two-field layout; the old one is gone
	replacement := make([]byte, 12)
	binary.BigEndian.PutUint16(replacement[0:2], 256)
	binary.BigEndian.PutUint16(replacement[2:4], 2)
	binary.BigEndian.PutUint16(replacement[4:6], uint16(types.SourceIPv4Address))
	binary.BigEndian.PutUint16(replacement[6:8], 4)
	binary.BigEndian.PutUint16(replacement[8:10], uint16(types.DestinationIPv4Address))
	binary.BigEndian.PutUint16(replacement[10:12], 4)

	_, err = p.Parse(
		ipfixDatagram(t, testDomain, [2]interface{}{uint16(templateSetID), replacement}), addr)
	require.NoError(t, err)

	tmpl := p.lookup(key, 256)
	require.NotNil(t, tmpl)
	assert.Len(t, tmpl.Fields, 2)
	assert.Equal(t, 8, tmpl.Length)
}

// encodeDataRecord re-serializes a decoded record under its template,
// for the round-trip check below.
func encodeDataRecord(t *testing.T, fields types.FieldMap, tmpl *Template) []byte {
	t.Helper()
	buf := make([]byte, 0, tmpl.Length)

	for _, field := range tmpl.Fields {
		v, ok := fields[field.Type]
		require.True(t, ok, "field %s missing", field.Type)

		switch field.Length {
		case 1:
			buf = append(buf, byte(v.Uint))
		case 2:
			buf = binary.BigEndian.AppendUint16(buf, uint16(v.Uint))
		case 4:
			buf = binary.BigEndian.AppendUint32(buf, uint32(v.Uint))
		case 8:
			buf = binary.BigEndian.AppendUint64(buf, v.Uint)
		default:
			buf = append(buf, v.Raw...)
		}
	}
	return buf
}

func TestDataRecordRoundTrip(t *testing.T) {
	p := New()
	addr := exporterAddr("127.0.0.1")
	key := ExporterKey{Exporter: "127.0.0.1", Domain: testDomain}

	_, err := p.Parse(
		ipfixDatagram(t, testDomain, [2]interface{}{uint16(templateSetID), mustHex(t, templatePayload)}), addr)
	require.NoError(t, err)

	records, err := p.Parse(
		ipfixDatagram(t, testDomain, [2]interface{}{uint16(256), mustHex(t, dataSetPayload)}), addr)
	require.NoError(t, err)
	require.Len(t, records, 1)

	tmpl := p.lookup(key, 256)
	require.NotNil(t, tmpl)

	assert.Equal(t, mustHex(t, dataSetPayload), encodeDataRecord(t, records[0].Fields, tmpl))
}

func TestSetLengthInvariant(t *testing.T) {
	// sum of set lengths + header size must equal the message length the
	// builder writes into the header
	data := ipfixDatagram(t, testDomain,
		[2]interface{}{uint16(templateSetID), mustHex(t, templatePayload)},
		[2]interface{}{uint16(256), mustHex(t, dataSetPayload)})

	total := ipfixHeaderSize
	offset := ipfixHeaderSize
	for offset < len(data) {
		setLen := int(binary.BigEndian.Uint16(data[offset+2 : offset+4]))
		total += setLen
		offset += setLen
	}
	assert.Equal(t, int(binary.BigEndian.Uint16(data[2:4])), total)
	assert.Equal(t, len(data), total)
}
