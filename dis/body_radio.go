package dis

import "github.com/mellowdrifter/godis/enumerations"

// ModulationType is the Transmitter PDU's modulation-parameters record.
type ModulationType struct {
	SpreadSpectrum   uint16
	MajorModulation  enumerations.ModulationMajorModulation
	Detail           uint16
	System           enumerations.ModulationSystem
}

const modulationTypeLength = 8

func decodeModulationType(r *reader) (ModulationType, error) {
	spread, err := r.u16()
	if err != nil {
		return ModulationType{}, err
	}
	major, err := r.u16()
	if err != nil {
		return ModulationType{}, err
	}
	detail, err := r.u16()
	if err != nil {
		return ModulationType{}, err
	}
	system, err := r.u16()
	if err != nil {
		return ModulationType{}, err
	}
	return ModulationType{
		SpreadSpectrum:  spread,
		MajorModulation: enumerations.ModulationMajorModulation(major),
		Detail:          detail,
		System:          enumerations.ModulationSystem(system),
	}, nil
}

func (m ModulationType) encode(w *writer) {
	w.u16(m.SpreadSpectrum)
	w.u16(uint16(m.MajorModulation))
	w.u16(m.Detail)
	w.u16(uint16(m.System))
}

// TransmitterBody describes one entity's radio transmitter: location,
// antenna pattern, frequency, power, and modulation.
type TransmitterBody struct {
	RadioEntityId            EntityId
	RadioId                  uint16
	RadioEntityType          EntityType
	TransmitState            enumerations.TransmitState
	InputSource              enumerations.InputSource
	AntennaLocation          Position
	RelativeAntennaLocation  Vector
	AntennaPatternType       enumerations.AntennaPatternType
	Frequency                uint64
	TransmitFrequencyBandwidth float32
	Power                    float32
	Modulation               ModulationType
	CryptoSystem             uint16
	CryptoKeyId              uint16
	ModulationParameters     []byte
	AntennaPatternParameters []byte
}

func (TransmitterBody) PduType() enumerations.PduType { return enumerations.PduTypeTransmitter }

func decodeTransmitterBody(r *reader) (TransmitterBody, error) {
	var b TransmitterBody
	var err error
	if b.RadioEntityId, err = decodeEntityId(r); err != nil {
		return TransmitterBody{}, err
	}
	if b.RadioId, err = r.u16(); err != nil {
		return TransmitterBody{}, err
	}
	if b.RadioEntityType, err = decodeEntityType(r); err != nil {
		return TransmitterBody{}, err
	}
	transmitState, err := r.u8()
	if err != nil {
		return TransmitterBody{}, err
	}
	b.TransmitState = enumerations.TransmitState(transmitState)
	inputSource, err := r.u8()
	if err != nil {
		return TransmitterBody{}, err
	}
	b.InputSource = enumerations.InputSource(inputSource)
	if err := r.skip(2); err != nil { // padding
		return TransmitterBody{}, err
	}
	if b.AntennaLocation, err = decodePosition(r); err != nil {
		return TransmitterBody{}, err
	}
	if b.RelativeAntennaLocation, err = decodeVector(r); err != nil {
		return TransmitterBody{}, err
	}
	antennaPatternType, err := r.u16()
	if err != nil {
		return TransmitterBody{}, err
	}
	b.AntennaPatternType = enumerations.AntennaPatternType(antennaPatternType)
	antennaPatternLength, err := r.u16()
	if err != nil {
		return TransmitterBody{}, err
	}
	if b.Frequency, err = r.u64(); err != nil {
		return TransmitterBody{}, err
	}
	if b.TransmitFrequencyBandwidth, err = r.f32(); err != nil {
		return TransmitterBody{}, err
	}
	if b.Power, err = r.f32(); err != nil {
		return TransmitterBody{}, err
	}
	if b.Modulation, err = decodeModulationType(r); err != nil {
		return TransmitterBody{}, err
	}
	cryptoSystem, err := r.u16()
	if err != nil {
		return TransmitterBody{}, err
	}
	b.CryptoSystem = cryptoSystem
	if b.CryptoKeyId, err = r.u16(); err != nil {
		return TransmitterBody{}, err
	}
	modulationParameterLength, err := r.u8()
	if err != nil {
		return TransmitterBody{}, err
	}
	if err := r.skip(3); err != nil { // padding
		return TransmitterBody{}, err
	}
	if b.ModulationParameters, err = r.bytes(int(modulationParameterLength)); err != nil {
		return TransmitterBody{}, err
	}
	if b.AntennaPatternParameters, err = r.bytes(int(antennaPatternLength)); err != nil {
		return TransmitterBody{}, err
	}
	return b, nil
}

func (b TransmitterBody) encode(w *writer) {
	b.RadioEntityId.encode(w)
	w.u16(b.RadioId)
	b.RadioEntityType.encode(w)
	w.u8(uint8(b.TransmitState))
	w.u8(uint8(b.InputSource))
	w.zero(2)
	b.AntennaLocation.encode(w)
	b.RelativeAntennaLocation.encode(w)
	w.u16(uint16(b.AntennaPatternType))
	w.u16(uint16(len(b.AntennaPatternParameters)))
	w.u64(b.Frequency)
	w.f32(b.TransmitFrequencyBandwidth)
	w.f32(b.Power)
	b.Modulation.encode(w)
	w.u16(b.CryptoSystem)
	w.u16(b.CryptoKeyId)
	w.u8(uint8(len(b.ModulationParameters)))
	w.zero(3)
	w.bytes(b.ModulationParameters)
	w.bytes(b.AntennaPatternParameters)
}

// SignalBody carries a chunk of encoded radio traffic (voice, data link) for
// a transmitter already described by a TransmitterBody.
type SignalBody struct {
	RadioEntityId  EntityId
	RadioId        uint16
	EncodingClass  enumerations.SignalEncodingClass
	EncodingType   enumerations.SignalEncodingType
	TDLType        uint16
	SampleRate     uint32
	SamplesCount   uint16
	Data           []byte
}

func (SignalBody) PduType() enumerations.PduType { return enumerations.PduTypeSignal }

func decodeSignalBody(r *reader) (SignalBody, error) {
	var b SignalBody
	var err error
	if b.RadioEntityId, err = decodeEntityId(r); err != nil {
		return SignalBody{}, err
	}
	if b.RadioId, err = r.u16(); err != nil {
		return SignalBody{}, err
	}
	encoding, err := r.u16()
	if err != nil {
		return SignalBody{}, err
	}
	b.EncodingClass = enumerations.SignalEncodingClass(encoding >> 14)
	b.EncodingType = enumerations.SignalEncodingType(encoding & 0x3FFF)
	if b.TDLType, err = r.u16(); err != nil {
		return SignalBody{}, err
	}
	if b.SampleRate, err = r.u32(); err != nil {
		return SignalBody{}, err
	}
	dataLengthBits, err := r.u16()
	if err != nil {
		return SignalBody{}, err
	}
	if b.SamplesCount, err = r.u16(); err != nil {
		return SignalBody{}, err
	}
	dataLengthBytes := int((dataLengthBits + 7) / 8)
	raw, err := r.bytes(dataLengthBytes)
	if err != nil {
		return SignalBody{}, err
	}
	b.Data = append([]byte(nil), raw...)
	_, pad := paddedLength(dataLengthBytes)
	if err := r.skip(pad); err != nil {
		return SignalBody{}, err
	}
	return b, nil
}

func (b SignalBody) encode(w *writer) {
	b.RadioEntityId.encode(w)
	w.u16(b.RadioId)
	encoding := (uint16(b.EncodingClass) << 14) | (uint16(b.EncodingType) & 0x3FFF)
	w.u16(encoding)
	w.u16(b.TDLType)
	w.u32(b.SampleRate)
	w.u16(uint16(len(b.Data)) * 8)
	w.u16(b.SamplesCount)
	w.bytes(b.Data)
	_, pad := paddedLength(len(b.Data))
	w.zero(pad)
}

// ReceiverBody reports a radio receiver's lock state and the transmitter it
// is receiving, if any.
type ReceiverBody struct {
	RadioEntityId       EntityId
	RadioId             uint16
	ReceiverState        uint16
	ReceivedPower        float32
	TransmitterEntityId  EntityId
	TransmitterRadioId   uint16
}

func (ReceiverBody) PduType() enumerations.PduType { return enumerations.PduTypeReceiver }

func decodeReceiverBody(r *reader) (ReceiverBody, error) {
	var b ReceiverBody
	var err error
	if b.RadioEntityId, err = decodeEntityId(r); err != nil {
		return ReceiverBody{}, err
	}
	if b.RadioId, err = r.u16(); err != nil {
		return ReceiverBody{}, err
	}
	if b.ReceiverState, err = r.u16(); err != nil {
		return ReceiverBody{}, err
	}
	if err := r.skip(2); err != nil { // padding
		return ReceiverBody{}, err
	}
	if b.ReceivedPower, err = r.f32(); err != nil {
		return ReceiverBody{}, err
	}
	if b.TransmitterEntityId, err = decodeEntityId(r); err != nil {
		return ReceiverBody{}, err
	}
	if b.TransmitterRadioId, err = r.u16(); err != nil {
		return ReceiverBody{}, err
	}
	return b, nil
}

func (b ReceiverBody) encode(w *writer) {
	b.RadioEntityId.encode(w)
	w.u16(b.RadioId)
	w.u16(b.ReceiverState)
	w.zero(2)
	w.f32(b.ReceivedPower)
	b.TransmitterEntityId.encode(w)
	w.u16(b.TransmitterRadioId)
}
