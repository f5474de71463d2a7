package listener

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ipfix-collector/internal/parser"
	"ipfix-collector/pkg/types"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	clean := strings.NewReplacer(" ", "", "\n", "", "\t", "").Replace(s)
	b, err := hex.DecodeString(clean)
	require.NoError(t, err)
	return b
}

// one header + one record, count patched to 1
func v5Datagram(t *testing.T) []byte {
	t.Helper()
	data := mustHex(t, `
		00 05 00 10 00 00 04 b2 60 80 b8 9c 1a 47 ff 30
		00 00 00 02 01 00 00 00
		70 0a 14 0a ac 1e be 0a ac c7 0f 01 00 00 00 00
		00 00 03 1b 00 00 01 03 00 00 02 36 00 00 03 a8
		00 28 00 50 00 00 06 00 c3 0d 35 bd 15 1a 00 00`)
	binary.BigEndian.PutUint16(data[2:4], 1)
	return data
}

func startListener(t *testing.T) (*UDPListener, *net.UDPConn, context.CancelFunc) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	l := New("127.0.0.1:0", parser.New(), 16, zap.NewNop())
	require.NoError(t, l.Start(ctx))

	conn, err := net.DialUDP("udp", nil, l.LocalAddr().(*net.UDPAddr))
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		cancel()
	})

	return l, conn, cancel
}

func receiveBatch(t *testing.T, l *UDPListener) []*types.FlowRecord {
	t.Helper()
	select {
	case batch := <-l.Records():
		return batch
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for records")
		return nil
	}
}

func TestListenerDecodesV5(t *testing.T) {
	l, conn, _ := startListener(t)

	_, err := conn.Write(v5Datagram(t))
	require.NoError(t, err)

	batch := receiveBatch(t, l)
	require.Len(t, batch, 1)
	assert.Equal(t, types.NetFlowV5, batch[0].Version)
	assert.Equal(t, uint64(259), batch[0].Octets())
	assert.Equal(t, "127.0.0.1", batch[0].ExporterIP.String())
}

func TestListenerSurvivesGarbage(t *testing.T) {
	l, conn, _ := startListener(t)

	// undersized, bad version, truncated v5: all logged and skipped
	for _, payload := range [][]byte{{0x01}, {0x00, 0x63, 0x00, 0x00}, v5Datagram(t)[:30]} {
		_, err := conn.Write(payload)
		require.NoError(t, err)
	}

	_, err := conn.Write(v5Datagram(t))
	require.NoError(t, err)

	batch := receiveBatch(t, l)
	assert.Len(t, batch, 1, "the valid datagram after the garbage still decodes")
}

func TestListenerBatchPerDatagram(t *testing.T) {
	l, conn, _ := startListener(t)

	_, err := conn.Write(v5Datagram(t))
	require.NoError(t, err)
	_, err = conn.Write(v5Datagram(t))
	require.NoError(t, err)

	first := receiveBatch(t, l)
	second := receiveBatch(t, l)
	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
}

func TestListenerShutdownClosesChannel(t *testing.T) {
	l, _, cancel := startListener(t)

	cancel()

	select {
	case _, open := <-l.Records():
		assert.False(t, open, "records channel must close on shutdown")
	case <-time.After(2 * time.Second):
		t.Fatal("records channel did not close")
	}
}

func TestListenerBindFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	taken := New("127.0.0.1:0", parser.New(), 1, zap.NewNop())
	require.NoError(t, taken.Start(ctx))

	addr := taken.LocalAddr().String()
	dup := New(addr, parser.New(), 1, zap.NewNop())
	assert.Error(t, dup.Start(context.Background()))
}
