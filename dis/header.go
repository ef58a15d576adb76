package dis

import "github.com/mellowdrifter/godis/enumerations"

const headerLength = 12

// PduStatus is the v7 header's status byte. Which of its named fields are
// meaningful depends on the carrying PduType — FireType/IntercomAttached/
// IFFSimulationMode all share bit 4, DetonationType/RadioAttached share bit
// 5, exactly as laid out in enumerations.
type PduStatus struct {
	TransferredEntity enumerations.TransferredEntityIndicator
	Lvc               enumerations.LvcIndicator
	CoupledExtension  enumerations.CoupledExtensionIndicator
	FireType          enumerations.FireTypeIndicator
	IntercomAttached  enumerations.IntercomAttachedIndicator
	IFFSimulationMode enumerations.IFFSimulationMode
	DetonationType    enumerations.DetonationTypeIndicator
	RadioAttached     enumerations.RadioAttachedIndicator
}

func decodePduStatus(raw uint8, pduType enumerations.PduType) PduStatus {
	s := PduStatus{
		TransferredEntity: enumerations.TransferredEntityIndicator(raw & 0x01),
		Lvc:               enumerations.LvcIndicator((raw >> 1) & 0x03),
		CoupledExtension:  enumerations.CoupledExtensionIndicator((raw >> 3) & 0x01),
	}
	bit4 := (raw >> 4) & 0x01
	bit5 := (raw >> 5) & 0x01
	switch pduType {
	case enumerations.PduTypeFire:
		s.FireType = enumerations.FireTypeIndicator(bit4)
	case enumerations.PduTypeDetonation:
		s.FireType = enumerations.FireTypeIndicator(bit4)
		s.DetonationType = enumerations.DetonationTypeIndicator(bit5)
	case enumerations.PduTypeIntercomSignal, enumerations.PduTypeIntercomControl:
		s.IntercomAttached = enumerations.IntercomAttachedIndicator(bit4)
	case enumerations.PduTypeIFF:
		s.IFFSimulationMode = enumerations.IFFSimulationMode(bit4)
	case enumerations.PduTypeTransmitter, enumerations.PduTypeSignal, enumerations.PduTypeReceiver:
		s.RadioAttached = enumerations.RadioAttachedIndicator(bit5)
	}
	return s
}

func (s PduStatus) encode(pduType enumerations.PduType) uint8 {
	var raw uint8
	raw |= uint8(s.TransferredEntity) & 0x01
	raw |= (uint8(s.Lvc) & 0x03) << 1
	raw |= (uint8(s.CoupledExtension) & 0x01) << 3
	switch pduType {
	case enumerations.PduTypeFire:
		raw |= (uint8(s.FireType) & 0x01) << 4
	case enumerations.PduTypeDetonation:
		raw |= (uint8(s.FireType) & 0x01) << 4
		raw |= (uint8(s.DetonationType) & 0x01) << 5
	case enumerations.PduTypeIntercomSignal, enumerations.PduTypeIntercomControl:
		raw |= (uint8(s.IntercomAttached) & 0x01) << 4
	case enumerations.PduTypeIFF:
		raw |= (uint8(s.IFFSimulationMode) & 0x01) << 4
	case enumerations.PduTypeTransmitter, enumerations.PduTypeSignal, enumerations.PduTypeReceiver:
		raw |= (uint8(s.RadioAttached) & 0x01) << 5
	}
	return raw
}

// Header is the 12-byte prefix common to every PDU. Under v6 the last two
// bytes are reserved padding; under v7 the first of those two is the
// PduStatus byte and Status is populated.
type Header struct {
	Version    enumerations.ProtocolVersion
	ExerciseId uint8
	PduType    enumerations.PduType
	Family     enumerations.ProtocolFamily
	Timestamp  uint32
	Length     uint16
	Status     PduStatus
}

func decodeHeader(r *reader) (Header, error) {
	version, err := r.u8()
	if err != nil {
		return Header{}, err
	}
	pv := enumerations.ProtocolVersion(version)
	if pv != enumerations.V6 && pv != enumerations.V7 {
		return Header{}, &UnsupportedProtocolVersionError{Raw: version}
	}

	exerciseId, err := r.u8()
	if err != nil {
		return Header{}, err
	}
	pduTypeRaw, err := r.u8()
	if err != nil {
		return Header{}, err
	}
	pduType := enumerations.PduType(pduTypeRaw)
	familyRaw, err := r.u8()
	if err != nil {
		return Header{}, err
	}
	timestamp, err := r.u32()
	if err != nil {
		return Header{}, err
	}
	length, err := r.u16()
	if err != nil {
		return Header{}, err
	}

	h := Header{
		Version:    pv,
		ExerciseId: exerciseId,
		PduType:    pduType,
		Family:     enumerations.ProtocolFamily(familyRaw),
		Timestamp:  timestamp,
		Length:     length,
	}

	if pv == enumerations.V7 {
		statusRaw, err := r.u8()
		if err != nil {
			return Header{}, err
		}
		if _, err := r.u8(); err != nil { // padding octet
			return Header{}, err
		}
		h.Status = decodePduStatus(statusRaw, pduType)
	} else {
		if err := r.skip(2); err != nil { // v6 reserved padding
			return Header{}, err
		}
	}

	return h, nil
}

func (h Header) encode(w *writer) {
	w.u8(uint8(h.Version))
	w.u8(h.ExerciseId)
	w.u8(uint8(h.PduType))
	w.u8(uint8(h.Family))
	w.u32(h.Timestamp)
	w.u16(h.Length)
	if h.Version == enumerations.V7 {
		w.u8(h.Status.encode(h.PduType))
		w.u8(0)
	} else {
		w.u8(0)
		w.u8(0)
	}
}

// HeaderBuilder assembles a Header with required-field tracking, grounded in
// the original PduHeaderBuilder (Option fields, validate-then-build).
type HeaderBuilder struct {
	version    *enumerations.ProtocolVersion
	exerciseId *uint8
	pduType    *enumerations.PduType
	timestamp  uint32
	status     PduStatus
}

func NewHeaderBuilder() *HeaderBuilder {
	return &HeaderBuilder{}
}

func (b *HeaderBuilder) Version(v enumerations.ProtocolVersion) *HeaderBuilder {
	b.version = &v
	return b
}

func (b *HeaderBuilder) ExerciseId(id uint8) *HeaderBuilder {
	b.exerciseId = &id
	return b
}

func (b *HeaderBuilder) PduType(t enumerations.PduType) *HeaderBuilder {
	b.pduType = &t
	return b
}

func (b *HeaderBuilder) Timestamp(ts uint32) *HeaderBuilder {
	b.timestamp = ts
	return b
}

func (b *HeaderBuilder) Status(s PduStatus) *HeaderBuilder {
	b.status = s
	return b
}

func (b *HeaderBuilder) Build() (Header, error) {
	if b.version == nil {
		return Header{}, &MissingFieldError{Name: "version"}
	}
	if b.exerciseId == nil {
		return Header{}, &MissingFieldError{Name: "exerciseId"}
	}
	if b.pduType == nil {
		return Header{}, &MissingFieldError{Name: "pduType"}
	}
	return Header{
		Version:    *b.version,
		ExerciseId: *b.exerciseId,
		PduType:    *b.pduType,
		Family:     enumerations.FamilyOf(*b.pduType),
		Timestamp:  b.timestamp,
		Status:     b.status,
	}, nil
}
