package dis

import (
	"testing"

	"github.com/mellowdrifter/godis/enumerations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHeader(t *testing.T, version enumerations.ProtocolVersion, pduType enumerations.PduType) Header {
	t.Helper()
	h, err := NewHeaderBuilder().
		Version(version).
		ExerciseId(1).
		PduType(pduType).
		Timestamp(12345).
		Build()
	require.NoError(t, err)
	return h
}

func TestEmptyOtherPduV6RoundTrips(t *testing.T) {
	h := mustHeader(t, enumerations.V6, enumerations.PduTypeOther)
	pdu := Pdu{Header: h, Body: Other{Type: enumerations.PduTypeOther}}

	encoded, err := Serialize(pdu)
	require.NoError(t, err)
	assert.Equal(t, headerLength, len(encoded))

	decoded, err := ParsePdu(encoded, DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, enumerations.V6, decoded.Header.Version)
	assert.Equal(t, enumerations.PduTypeOther, decoded.Header.PduType)
}

func TestAcknowledgePduRoundTrips(t *testing.T) {
	h := mustHeader(t, enumerations.V7, enumerations.PduTypeAcknowledge)
	body := AcknowledgeBody{
		OriginatingEntityId: EntityId{Simulation: SimulationAddress{Site: 1, Application: 1}, Entity: 1},
		ReceivingEntityId:   NoEntity,
		AcknowledgeFlag:     enumerations.AcknowledgeFlagCreateEntity,
		ResponseFlag:        enumerations.ResponseFlagAbleToComply,
		RequestId:           42,
	}
	pdu := Pdu{Header: h, Body: body}

	encoded, err := Serialize(pdu)
	require.NoError(t, err)
	assert.Equal(t, headerLength+20, len(encoded))

	decoded, err := ParsePdu(encoded, DecodeOptions{})
	require.NoError(t, err)
	got, ok := decoded.Body.(AcknowledgeBody)
	require.True(t, ok)
	assert.Equal(t, body, got)
}

func TestEntityStateLandPlatformMarkingRoundTrips(t *testing.T) {
	h := mustHeader(t, enumerations.V6, enumerations.PduTypeEntityState)
	body := EntityStateBody{
		EntityId: EntityId{Simulation: SimulationAddress{Site: 1, Application: 1}, Entity: 10},
		ForceId:  enumerations.ForceIdFriendly,
		EntityType: EntityType{
			Kind:   enumerations.EntityKindPlatform,
			Domain: enumerations.DomainLand,
		},
		EntityMarking: EntityMarking{
			CharacterSet: enumerations.EntityMarkingCharacterSetASCII,
			Value:        "EYE 10",
		},
	}
	pdu := Pdu{Header: h, Body: body}

	encoded, err := Serialize(pdu)
	require.NoError(t, err)

	decoded, err := ParsePdu(encoded, DecodeOptions{})
	require.NoError(t, err)
	got, ok := decoded.Body.(EntityStateBody)
	require.True(t, ok)
	assert.Equal(t, "EYE 10", got.EntityMarking.Value)
	assert.Equal(t, enumerations.EntityMarkingCharacterSetASCII, got.EntityMarking.CharacterSet)
}

func TestDecodeEntityMarkingTrimsSpacePadding(t *testing.T) {
	raw := []byte{1, 'E', 'Y', 'E', ' ', '1', '0', ' ', ' ', ' ', ' ', ' '}
	r := newReader(raw)
	m, err := decodeEntityMarking(r)
	require.NoError(t, err)
	assert.Equal(t, "EYE 10", m.Value)
	assert.Equal(t, enumerations.EntityMarkingCharacterSetASCII, m.CharacterSet)

	w := newWriter()
	require.NoError(t, m.encode(w))
	assert.Equal(t, raw, w.buf)
}

func TestFirePduV7MunitionFireTypeRoundTrips(t *testing.T) {
	h := mustHeader(t, enumerations.V7, enumerations.PduTypeFire)
	h.Status.FireType = enumerations.FireTypeIndicatorMunition
	body := FireBody{
		FiringEntityId: EntityId{Simulation: SimulationAddress{Site: 1, Application: 1}, Entity: 1},
		TargetEntityId: EntityId{Simulation: SimulationAddress{Site: 1, Application: 1}, Entity: 2},
		Descriptor: Descriptor{
			EntityType: EntityType{Kind: enumerations.EntityKindMunition},
			Munition:   MunitionDescriptor{Warhead: enumerations.MunitionDescriptorWarheadHighExplosive},
		},
	}
	pdu := Pdu{Header: h, Body: body}

	encoded, err := Serialize(pdu)
	require.NoError(t, err)

	decoded, err := ParsePdu(encoded, DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, enumerations.FireTypeIndicatorMunition, decoded.Header.Status.FireType)
	got, ok := decoded.Body.(FireBody)
	require.True(t, ok)
	assert.Equal(t, enumerations.MunitionDescriptorWarheadHighExplosive, got.Descriptor.Munition.Warhead)
}

func TestVariableDatumWithOddLengthValuePadsToEightOctets(t *testing.T) {
	value := make([]byte, 13)
	for i := range value {
		value[i] = byte(i + 1)
	}
	w := newWriter()
	datum := VariableDatum{ID: 7, Value: value}
	datum.encode(w)
	assert.Equal(t, 24, len(w.buf)) // 8 header + 13 value + 3 pad = 24

	r := newReader(w.buf)
	decoded, err := decodeVariableDatum(r)
	require.NoError(t, err)
	assert.Equal(t, value, decoded.Value)
	assert.Equal(t, 0, r.remaining())
}

func TestUnknownForceIdPreservesRawValue(t *testing.T) {
	h := mustHeader(t, enumerations.V6, enumerations.PduTypeEntityState)
	body := EntityStateBody{ForceId: enumerations.ForceId(199)}
	pdu := Pdu{Header: h, Body: body}

	encoded, err := Serialize(pdu)
	require.NoError(t, err)

	decoded, err := ParsePdu(encoded, DecodeOptions{})
	require.NoError(t, err)
	got := decoded.Body.(EntityStateBody)
	assert.False(t, got.ForceId.Known())
	assert.Equal(t, "Unknown(199)", got.ForceId.String())
	assert.Equal(t, uint8(199), uint8(got.ForceId))
}

func TestParsePduRejectsUnsupportedProtocolVersion(t *testing.T) {
	data := []byte{42, 1, 0, 0, 0, 0, 0, 0, 0, 12, 0, 0}
	_, err := ParsePdu(data, DecodeOptions{})
	var target *UnsupportedProtocolVersionError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, uint8(42), target.Raw)
}

func TestParsePduRejectsLengthShorterThanHeader(t *testing.T) {
	data := []byte{6, 1, 0, 0, 0, 0, 0, 0, 0, 5, 0, 0}
	_, err := ParsePdu(data, DecodeOptions{})
	var target *InconsistentLengthError
	require.ErrorAs(t, err, &target)
}

func TestParseStreamDecodesConcatenatedPdus(t *testing.T) {
	h1 := mustHeader(t, enumerations.V6, enumerations.PduTypeOther)
	h2 := mustHeader(t, enumerations.V6, enumerations.PduTypeCollision)
	pdu1, err := Serialize(Pdu{Header: h1, Body: Other{Type: enumerations.PduTypeOther}})
	require.NoError(t, err)
	pdu2, err := Serialize(Pdu{Header: h2, Body: CollisionBody{CollisionType: 3}})
	require.NoError(t, err)

	stream := append(append([]byte{}, pdu1...), pdu2...)
	results := ParseStream(stream, DecodeOptions{})
	require.Len(t, results, 2)
	require.NoError(t, results[0].Err)
	require.NoError(t, results[1].Err)
	assert.Equal(t, enumerations.PduTypeOther, results[0].Pdu.Header.PduType)
	assert.Equal(t, enumerations.PduTypeCollision, results[1].Pdu.Header.PduType)
}

func TestParseStreamResynchronizesPastCorruptPdu(t *testing.T) {
	hA := mustHeader(t, enumerations.V6, enumerations.PduTypeOther)
	pduA, err := Serialize(Pdu{Header: hA, Body: Other{Type: enumerations.PduTypeOther}})
	require.NoError(t, err)

	// A header-only PDU (length 12) with an unsupported protocol version.
	// decodeHeader fails on the very first byte, but the declared length at
	// bytes 8-9 is still readable directly off the wire.
	corrupt := []byte{42, 1, 0, 0, 0, 0, 0, 0, 0, 12, 0, 0}

	hB := mustHeader(t, enumerations.V6, enumerations.PduTypeCollision)
	pduB, err := Serialize(Pdu{Header: hB, Body: CollisionBody{CollisionType: 5}})
	require.NoError(t, err)

	stream := append(append(append([]byte{}, pduA...), corrupt...), pduB...)
	results := ParseStream(stream, DecodeOptions{})

	require.Len(t, results, 3)

	require.NoError(t, results[0].Err)
	assert.Equal(t, enumerations.PduTypeOther, results[0].Pdu.Header.PduType)

	var versionErr *UnsupportedProtocolVersionError
	require.ErrorAs(t, results[1].Err, &versionErr)
	assert.Equal(t, uint8(42), versionErr.Raw)

	require.NoError(t, results[2].Err)
	assert.Equal(t, enumerations.PduTypeCollision, results[2].Pdu.Header.PduType)
}

func TestPaddedLengthRoundsToEightOctets(t *testing.T) {
	cases := []struct {
		in, total, pad int
	}{
		{0, 0, 0},
		{1, 8, 7},
		{8, 8, 0},
		{9, 16, 7},
		{13, 16, 3},
	}
	for _, tt := range cases {
		total, pad := paddedLength(tt.in)
		assert.Equal(t, tt.total, total)
		assert.Equal(t, tt.pad, pad)
	}
}
