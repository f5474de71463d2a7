package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParserDispatch(t *testing.T) {
	p := New()
	addr := exporterAddr("192.0.2.1")

	_, err := p.Parse([]byte{0x00}, addr)
	assert.ErrorIs(t, err, ErrShortBuffer)

	_, err = p.Parse([]byte{0x00, 0x09, 0x00, 0x00}, addr)
	assert.ErrorIs(t, err, ErrBadVersion)

	_, err = p.Parse([]byte{0x00, 0xFF}, addr)
	assert.ErrorIs(t, err, ErrBadVersion)
}

func TestErrorKindLabels(t *testing.T) {
	assert.Equal(t, "short_buffer", ErrorKind(shortBuffer("x", 4, 2)))
	assert.Equal(t, "bad_version", ErrorKind(ErrBadVersion))
	assert.Equal(t, "length_mismatch", ErrorKind(ErrLengthMismatch))
	assert.Equal(t, "unknown_field_id", ErrorKind(ErrUnknownFieldID))
	assert.Equal(t, "bad_set_id", ErrorKind(ErrBadSetID))
	assert.Equal(t, "count_mismatch", ErrorKind(ErrCountMismatch))
	assert.Equal(t, "other", ErrorKind(assert.AnError))
}

func TestExporterStateLifecycle(t *testing.T) {
	p := New()
	key := ExporterKey{Exporter: "127.0.0.1", Domain: 1}

	assert.Equal(t, 0, p.Exporters())
	assert.Nil(t, p.lookup(key, 256))

	p.install(key, &Template{ID: 256, Length: 8})
	assert.Equal(t, 1, p.Exporters())
	require.NotNil(t, p.lookup(key, 256))

	// second domain from the same address is independent state
	other := ExporterKey{Exporter: "127.0.0.1", Domain: 2}
	assert.Nil(t, p.lookup(other, 256))
	p.install(other, &Template{ID: 256, Length: 4})
	assert.Equal(t, 2, p.Exporters())
	assert.Equal(t, 8, p.lookup(key, 256).Length)
	assert.Equal(t, 4, p.lookup(other, 256).Length)
}

func TestSetSamplingIdempotent(t *testing.T) {
	p := New()
	key := ExporterKey{Exporter: "127.0.0.1", Domain: 1}

	p.setSampling(key, 10)
	assert.Equal(t, uint32(10), p.Sampling(key))
	p.setSampling(key, 10)
	assert.Equal(t, uint32(10), p.Sampling(key))
	p.setSampling(key, 20)
	assert.Equal(t, uint32(20), p.Sampling(key))
}

func TestTemplateTTLExpiry(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	p := New(WithTemplateTTL(time.Minute))
	p.now = func() time.Time { return now }

	key := ExporterKey{Exporter: "127.0.0.1", Domain: 1}
	p.install(key, &Template{ID: 256, Length: 8})

	now = now.Add(30 * time.Second)
	assert.NotNil(t, p.lookup(key, 256), "state within the TTL survives")

	// lastSeen updates on installs, option records and decoded data records,
	// not on lookups; idle past the TTL drops the key
	now = now.Add(2 * time.Minute)
	assert.Nil(t, p.lookup(key, 256))
	assert.Equal(t, 0, p.Exporters())
}

func TestTemplateTTLDisabledByDefault(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	p := New()
	p.now = func() time.Time { return now }

	key := ExporterKey{Exporter: "127.0.0.1", Domain: 1}
	p.install(key, &Template{ID: 256, Length: 8})

	now = now.Add(1000 * time.Hour)
	assert.NotNil(t, p.lookup(key, 256))
}
