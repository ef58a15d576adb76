package dis

import "github.com/mellowdrifter/godis/enumerations"

// MunitionDescriptor is the Fire/Detonation PDU's 8-byte munition detail
// record: warhead, fuse, quantity, and rate of fire.
type MunitionDescriptor struct {
	Warhead  enumerations.MunitionDescriptorWarhead
	Fuse     enumerations.MunitionDescriptorFuse
	Quantity uint16
	Rate     uint16
}

const munitionDescriptorLength = 8

func decodeMunitionDescriptor(r *reader) (MunitionDescriptor, error) {
	warhead, err := r.u16()
	if err != nil {
		return MunitionDescriptor{}, err
	}
	fuse, err := r.u16()
	if err != nil {
		return MunitionDescriptor{}, err
	}
	quantity, err := r.u16()
	if err != nil {
		return MunitionDescriptor{}, err
	}
	rate, err := r.u16()
	if err != nil {
		return MunitionDescriptor{}, err
	}
	return MunitionDescriptor{
		Warhead:  enumerations.MunitionDescriptorWarhead(warhead),
		Fuse:     enumerations.MunitionDescriptorFuse(fuse),
		Quantity: quantity,
		Rate:     rate,
	}, nil
}

func (m MunitionDescriptor) encode(w *writer) {
	w.u16(uint16(m.Warhead))
	w.u16(uint16(m.Fuse))
	w.u16(m.Quantity)
	w.u16(m.Rate)
}

// Descriptor is the Fire/Detonation PDU's variant descriptor record. Which
// field is meaningful is selected by the carrying header's FireType (Fire)
// or DetonationType (Detonation) indicator, not by anything in the body
// itself — grounded in the original parser's descriptor_record_fti, which
// dispatches on the header bit rather than a body tag.
type Descriptor struct {
	EntityType EntityType
	Munition   MunitionDescriptor
}

const descriptorLength = entityTypeLength + munitionDescriptorLength

func decodeDescriptor(r *reader, fti enumerations.FireTypeIndicator) (Descriptor, error) {
	entityType, err := decodeEntityType(r)
	if err != nil {
		return Descriptor{}, err
	}
	if fti == enumerations.FireTypeIndicatorExpendable {
		if err := r.skip(munitionDescriptorLength); err != nil {
			return Descriptor{}, err
		}
		return Descriptor{EntityType: entityType}, nil
	}
	munition, err := decodeMunitionDescriptor(r)
	if err != nil {
		return Descriptor{}, err
	}
	return Descriptor{EntityType: entityType, Munition: munition}, nil
}

// encode always writes the full 16-byte record. For an Expendable descriptor
// d.Munition is the zero value, which serializes to the same 8 zero bytes
// the Expendable variant carries on the wire — so encode needs no FireType
// parameter even though decode does.
func (d Descriptor) encode(w *writer) {
	d.EntityType.encode(w)
	d.Munition.encode(w)
}

// FireBody is the Fire PDU: issued when a munition is launched or an
// expendable (chaff, flare) is dispensed.
type FireBody struct {
	FiringEntityId       EntityId
	TargetEntityId       EntityId
	MunitionExpendableId EntityId
	EventId              EventId
	FireMissionIndex     uint32
	Location             Position
	Descriptor           Descriptor
	Velocity             Vector
	Range                float32
}

func (FireBody) PduType() enumerations.PduType { return enumerations.PduTypeFire }

func decodeFireBody(r *reader, h Header) (FireBody, error) {
	var b FireBody
	var err error

	if b.FiringEntityId, err = decodeEntityId(r); err != nil {
		return FireBody{}, err
	}
	if b.TargetEntityId, err = decodeEntityId(r); err != nil {
		return FireBody{}, err
	}
	if b.MunitionExpendableId, err = decodeEntityId(r); err != nil {
		return FireBody{}, err
	}
	if b.EventId, err = decodeEventId(r); err != nil {
		return FireBody{}, err
	}
	if b.FireMissionIndex, err = r.u32(); err != nil {
		return FireBody{}, err
	}
	if b.Location, err = decodePosition(r); err != nil {
		return FireBody{}, err
	}
	if b.Descriptor, err = decodeDescriptor(r, h.Status.FireType); err != nil {
		return FireBody{}, err
	}
	if b.Velocity, err = decodeVector(r); err != nil {
		return FireBody{}, err
	}
	if b.Range, err = r.f32(); err != nil {
		return FireBody{}, err
	}
	return b, nil
}

func (b FireBody) encode(w *writer) {
	b.FiringEntityId.encode(w)
	b.TargetEntityId.encode(w)
	b.MunitionExpendableId.encode(w)
	b.EventId.encode(w)
	w.u32(b.FireMissionIndex)
	b.Location.encode(w)
	b.Descriptor.encode(w)
	b.Velocity.encode(w)
	w.f32(b.Range)
}
