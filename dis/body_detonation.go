package dis

import "github.com/mellowdrifter/godis/enumerations"

// DetonationBody is the Detonation PDU: issued when a munition detonates or
// an expendable is activated, reporting where and with what effect.
type DetonationBody struct {
	FiringEntityId              EntityId
	TargetEntityId              EntityId
	MunitionExpendableId        EntityId
	EventId                     EventId
	Velocity                    Vector
	Location                    Position
	Descriptor                  Descriptor
	LocationInEntityCoordinates Vector
	Result                      enumerations.DetonationResult
	ArticulationParameters      []ArticulationParameter
}

func (DetonationBody) PduType() enumerations.PduType { return enumerations.PduTypeDetonation }

func decodeDetonationBody(r *reader, h Header) (DetonationBody, error) {
	var b DetonationBody
	var err error

	if b.FiringEntityId, err = decodeEntityId(r); err != nil {
		return DetonationBody{}, err
	}
	if b.TargetEntityId, err = decodeEntityId(r); err != nil {
		return DetonationBody{}, err
	}
	if b.MunitionExpendableId, err = decodeEntityId(r); err != nil {
		return DetonationBody{}, err
	}
	if b.EventId, err = decodeEventId(r); err != nil {
		return DetonationBody{}, err
	}
	if b.Velocity, err = decodeVector(r); err != nil {
		return DetonationBody{}, err
	}
	if b.Location, err = decodePosition(r); err != nil {
		return DetonationBody{}, err
	}
	fti := enumerations.FireTypeIndicator(h.Status.DetonationType)
	if b.Descriptor, err = decodeDescriptor(r, fti); err != nil {
		return DetonationBody{}, err
	}
	if b.LocationInEntityCoordinates, err = decodeVector(r); err != nil {
		return DetonationBody{}, err
	}
	result, err := r.u8()
	if err != nil {
		return DetonationBody{}, err
	}
	b.Result = enumerations.DetonationResult(result)

	numArticulation, err := r.u8()
	if err != nil {
		return DetonationBody{}, err
	}
	if err := r.skip(2); err != nil { // padding
		return DetonationBody{}, err
	}

	b.ArticulationParameters = make([]ArticulationParameter, 0, numArticulation)
	for i := 0; i < int(numArticulation); i++ {
		ap, err := decodeArticulationParameter(r)
		if err != nil {
			return DetonationBody{}, err
		}
		b.ArticulationParameters = append(b.ArticulationParameters, ap)
	}

	return b, nil
}

func (b DetonationBody) encode(w *writer) {
	b.FiringEntityId.encode(w)
	b.TargetEntityId.encode(w)
	b.MunitionExpendableId.encode(w)
	b.EventId.encode(w)
	b.Velocity.encode(w)
	b.Location.encode(w)
	b.Descriptor.encode(w)
	b.LocationInEntityCoordinates.encode(w)
	w.u8(uint8(b.Result))
	w.u8(uint8(len(b.ArticulationParameters)))
	w.zero(2)
	for _, ap := range b.ArticulationParameters {
		ap.encode(w)
	}
}
