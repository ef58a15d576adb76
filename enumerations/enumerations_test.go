package enumerations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRoundTripIsTotal checks the from_primitive(to_primitive(e)) == e
// property spec.md §8 requires of every enumeration: across the full uint8
// domain for ForceId, and at sampled values for PduType and the uint16
// MunitionDescriptorWarhead.
func TestRoundTripIsTotal(t *testing.T) {
	for n := 0; n < 256; n++ {
		got := ForceId(uint8(n))
		assert.Equal(t, ForceId(uint8(n)), got)
		assert.Equal(t, uint8(n), uint8(got))
	}

	for n := 0; n < 1<<16; n += 997 {
		got := PduType(uint8(n))
		assert.Equal(t, uint8(n), uint8(got))
	}

	for n := 0; n < 1<<16; n += 1009 {
		got := MunitionDescriptorWarhead(uint16(n))
		assert.Equal(t, uint16(n), uint16(got))
	}
}

func TestUnknownValuesPreserveRawAndReportUnknown(t *testing.T) {
	unknown := ForceId(199)
	assert.False(t, unknown.Known())
	assert.Equal(t, "Unknown(199)", unknown.String())
	assert.Equal(t, uint8(199), uint8(unknown))
}

func TestDefaultsAreZeroValue(t *testing.T) {
	var f ForceId
	assert.Equal(t, ForceIdOther, f)

	var k EntityKind
	assert.Equal(t, EntityKindOther, k)

	var d DrAlgorithm
	assert.Equal(t, DrAlgorithmOther, d)
}

func TestFamilyOfAgreesWithHeaderDispatch(t *testing.T) {
	cases := []struct {
		pdu  PduType
		want ProtocolFamily
	}{
		{PduTypeEntityState, ProtocolFamilyEntityInformationInteraction},
		{PduTypeFire, ProtocolFamilyWarfare},
		{PduTypeDetonation, ProtocolFamilyWarfare},
		{PduTypeAcknowledge, ProtocolFamilySimulationManagement},
		{PduTypeTransmitter, ProtocolFamilyRadioCommunications},
		{PduTypeElectromagneticEmission, ProtocolFamilyDistributedEmissionRegen},
	}
	for _, tt := range cases {
		t.Run(tt.pdu.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, FamilyOf(tt.pdu))
		})
	}
}

func TestProtocolVersionKnownSet(t *testing.T) {
	assert.True(t, V6.Known())
	assert.True(t, V7.Known())
	assert.False(t, ProtocolVersion(42).Known())
}
