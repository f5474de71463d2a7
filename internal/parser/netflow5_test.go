package parser

import (
	"encoding/binary"
	"encoding/hex"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustHex decodes a whitespace-separated hex dump into bytes.
func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	clean := strings.NewReplacer(" ", "", "\n", "", "\t", "").Replace(s)
	b, err := hex.DecodeString(clean)
	require.NoError(t, err)
	return b
}

const v5HeaderPayload = `
	00 05 00 10 00 00 04 b2 60 80 b8 9c 1a 47 ff 30
	00 00 00 02 01 00 00 00`

const v5RecordPayload = `
	70 0a 14 0a ac 1e be 0a ac c7 0f 01 00 00 00 00
	00 00 03 1b 00 00 01 03 00 00 02 36 00 00 03 a8
	00 28 00 50 00 00 06 00 c3 0d 35 bd 15 1a 00 00`

func exporterAddr(ip string) *net.UDPAddr {
	return &net.UDPAddr{IP: net.ParseIP(ip), Port: 49152}
}

func TestDecodeV5Header(t *testing.T) {
	header, err := decodeV5Header(mustHex(t, v5HeaderPayload))
	require.NoError(t, err)

	assert.Equal(t, uint16(5), header.Version)
	assert.Equal(t, uint16(16), header.Count)
	assert.Equal(t, uint32(1202), header.SysUptime)
	assert.Equal(t, uint32(1619048604), header.UnixSecs)
	assert.Equal(t, uint32(440926000), header.UnixNsecs)
	assert.Equal(t, uint32(2), header.Sequence)
	assert.Equal(t, uint8(1), header.EngineType)
	assert.Equal(t, uint8(0), header.EngineID)
	assert.Equal(t, uint16(0), header.SamplingMode())
	assert.Equal(t, uint16(0), header.SamplingInterval())
}

func TestDecodeV5HeaderShort(t *testing.T) {
	payload := mustHex(t, v5HeaderPayload)
	_, err := decodeV5Header(payload[:len(payload)-1])
	assert.ErrorIs(t, err, ErrShortBuffer)
}

func TestDecodeV5Record(t *testing.T) {
	record, err := decodeV5Record(mustHex(t, v5RecordPayload))
	require.NoError(t, err)

	assert.Equal(t, "112.10.20.10", record.SrcIP().String())
	assert.Equal(t, "172.30.190.10", record.DstIP().String())
	assert.Equal(t, "172.199.15.1", record.NextHopIP().String())
	assert.Equal(t, uint16(0), record.InputIf)
	assert.Equal(t, uint16(0), record.OutputIf)
	assert.Equal(t, uint32(795), record.Packets)
	assert.Equal(t, uint32(259), record.Octets)
	assert.Equal(t, uint32(566), record.StartTime)
	assert.Equal(t, uint32(936), record.EndTime)
	assert.Equal(t, uint32(370), record.Duration())
	assert.Equal(t, uint16(40), record.SrcPort)
	assert.Equal(t, uint16(80), record.DstPort)
	assert.Equal(t, uint8(0), record.TCPFlags)
	assert.Equal(t, uint8(6), record.Protocol)
	assert.Equal(t, uint8(0), record.ToS)
	assert.Equal(t, uint16(49933), record.SrcAS)
	assert.Equal(t, uint16(13757), record.DstAS)
	assert.Equal(t, uint8(21), record.SrcMask)
	assert.Equal(t, uint8(26), record.DstMask)
}

func TestDecodeV5RecordShort(t *testing.T) {
	payload := mustHex(t, v5RecordPayload)
	_, err := decodeV5Record(payload[:netflowV5RecordSize-1])
	assert.ErrorIs(t, err, ErrShortBuffer)
}

func TestV5RecordSamplingZero(t *testing.T) {
	record, err := decodeV5Record(mustHex(t, v5RecordPayload))
	require.NoError(t, err)

	record.AddSampling(0)
	assert.Equal(t, uint32(795), record.Packets)
	assert.Equal(t, uint32(259), record.Octets)
}

func TestV5RecordSampling(t *testing.T) {
	record, err := decodeV5Record(mustHex(t, v5RecordPayload))
	require.NoError(t, err)

	record.AddSampling(10)
	assert.Equal(t, uint32(7950), record.Packets)
	assert.Equal(t, uint32(2590), record.Octets)
}

// v5Datagram builds a datagram with count records and the given sampling
// interval in the header word.
func v5Datagram(t *testing.T, count int, sampling uint16) []byte {
	t.Helper()
	header := mustHex(t, v5HeaderPayload)
	binary.BigEndian.PutUint16(header[2:4], uint16(count))
	binary.BigEndian.PutUint16(header[22:24], sampling&0x3FFF)

	data := header
	for i := 0; i < count; i++ {
		data = append(data, mustHex(t, v5RecordPayload)...)
	}
	return data
}

func TestParseV5Datagram(t *testing.T) {
	p := New()

	records, err := p.Parse(v5Datagram(t, 3, 0), exporterAddr("192.0.2.1"))
	require.NoError(t, err)
	require.Len(t, records, 3)

	for _, r := range records {
		require.NotNil(t, r.V5)
		assert.Equal(t, uint64(259), r.Octets())
		assert.Equal(t, uint64(795), r.Packets())
		assert.Equal(t, "192.0.2.1", r.ExporterIP.String())
	}
}

func TestParseV5DatagramSampling(t *testing.T) {
	p := New()

	records, err := p.Parse(v5Datagram(t, 1, 10), exporterAddr("192.0.2.1"))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, uint64(2590), records[0].Octets())
	assert.Equal(t, uint64(7950), records[0].Packets())
}

func TestParseV5CountMismatch(t *testing.T) {
	p := New()

	// header claims 3 records, payload carries 2
	data := v5Datagram(t, 3, 0)
	data = data[:len(data)-netflowV5RecordSize]

	_, err := p.Parse(data, exporterAddr("192.0.2.1"))
	assert.ErrorIs(t, err, ErrCountMismatch)
}

func TestParseV5ZeroCount(t *testing.T) {
	p := New()

	_, err := p.Parse(v5Datagram(t, 0, 0), exporterAddr("192.0.2.1"))
	assert.ErrorIs(t, err, ErrCountMismatch)
}
