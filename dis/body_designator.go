package dis

import "github.com/mellowdrifter/godis/enumerations"

// DesignatorBody reports a laser or other designator spot being placed on
// an entity or a point in space.
type DesignatorBody struct {
	DesignatingEntityId    EntityId
	CodeName               uint16
	DesignatedEntityId     EntityId
	DesignatorCode         uint16
	DesignatorPower        float32
	DesignatorWavelength   float32
	SpotWrtDesignatedEntity Vector
	SpotLocation           Position
	DeadReckoningAlgorithm enumerations.DrAlgorithm
	EntityLinearAcceleration Vector
}

func (DesignatorBody) PduType() enumerations.PduType { return enumerations.PduTypeDesignator }

func decodeDesignatorBody(r *reader) (DesignatorBody, error) {
	var b DesignatorBody
	var err error
	if b.DesignatingEntityId, err = decodeEntityId(r); err != nil {
		return DesignatorBody{}, err
	}
	if b.CodeName, err = r.u16(); err != nil {
		return DesignatorBody{}, err
	}
	if b.DesignatedEntityId, err = decodeEntityId(r); err != nil {
		return DesignatorBody{}, err
	}
	if b.DesignatorCode, err = r.u16(); err != nil {
		return DesignatorBody{}, err
	}
	if b.DesignatorPower, err = r.f32(); err != nil {
		return DesignatorBody{}, err
	}
	if b.DesignatorWavelength, err = r.f32(); err != nil {
		return DesignatorBody{}, err
	}
	if b.SpotWrtDesignatedEntity, err = decodeVector(r); err != nil {
		return DesignatorBody{}, err
	}
	if b.SpotLocation, err = decodePosition(r); err != nil {
		return DesignatorBody{}, err
	}
	algo, err := r.u8()
	if err != nil {
		return DesignatorBody{}, err
	}
	b.DeadReckoningAlgorithm = enumerations.DrAlgorithm(algo)
	if err := r.skip(3); err != nil { // padding
		return DesignatorBody{}, err
	}
	if b.EntityLinearAcceleration, err = decodeVector(r); err != nil {
		return DesignatorBody{}, err
	}
	return b, nil
}

func (b DesignatorBody) encode(w *writer) {
	b.DesignatingEntityId.encode(w)
	w.u16(b.CodeName)
	b.DesignatedEntityId.encode(w)
	w.u16(b.DesignatorCode)
	w.f32(b.DesignatorPower)
	w.f32(b.DesignatorWavelength)
	b.SpotWrtDesignatedEntity.encode(w)
	b.SpotLocation.encode(w)
	w.u8(uint8(b.DeadReckoningAlgorithm))
	w.zero(3)
	b.EntityLinearAcceleration.encode(w)
}
