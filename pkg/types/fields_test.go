package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupField(t *testing.T) {
	ft, ok := LookupField(1)
	assert.True(t, ok)
	assert.Equal(t, OctetDeltaCount, ft)

	ft, ok = LookupField(491)
	assert.True(t, ok)
	assert.Equal(t, BgpDestinationLargeCommunityList, ft)

	_, ok = LookupField(600)
	assert.False(t, ok)
}

func TestLookupFieldRegistryGaps(t *testing.T) {
	// ranges IANA assigns for NetFlow v9 compatibility, plus deprecated ids
	for _, id := range []uint16{65, 66, 69, 97, 105, 127, 416, 419, 492, 32767} {
		_, ok := LookupField(id)
		assert.False(t, ok, "id %d must not resolve", id)
	}
}

func TestFieldNames(t *testing.T) {
	assert.Equal(t, "octetDeltaCount", OctetDeltaCount.Name())
	assert.Equal(t, "sourceIPv4Address", SourceIPv4Address.Name())
	assert.Equal(t, "samplingInterval", SamplingInterval.Name())
	assert.Equal(t, "flowEndReason", FlowEndReason.Name())
	assert.Equal(t, "ipClassOfService", IPClassOfService.Name())
	assert.Equal(t, "vlanId", VlanID.Name())
	assert.Equal(t, "wlanSSID", WlanSSID.Name())
	assert.Equal(t, "ipVersion", IPVersion.Name())

	// IANA spellings, not the occasionally seen typo'd variants
	assert.Equal(t, "minimumTTL", MinimumTTL.Name())
	assert.Equal(t, "maximumTTL", MaximumTTL.Name())
	assert.Equal(t, "multicastReplicationFactor", MulticastReplicationFactor.Name())

	assert.Equal(t, "unknown(600)", FieldType(600).Name())
}

func TestFieldIDValues(t *testing.T) {
	assert.Equal(t, FieldType(1), OctetDeltaCount)
	assert.Equal(t, FieldType(2), PacketDeltaCount)
	assert.Equal(t, FieldType(8), SourceIPv4Address)
	assert.Equal(t, FieldType(12), DestinationIPv4Address)
	assert.Equal(t, FieldType(34), SamplingInterval)
	assert.Equal(t, FieldType(52), MinimumTTL)
	assert.Equal(t, FieldType(53), MaximumTTL)
	assert.Equal(t, FieldType(136), FlowEndReason)
	assert.Equal(t, FieldType(152), FlowStartMilliseconds)
	assert.Equal(t, FieldType(153), FlowEndMilliseconds)
}
