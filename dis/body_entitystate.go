package dis

import "github.com/mellowdrifter/godis/enumerations"

// DrParameters is the dead-reckoning parameters record: the algorithm
// selector, an algorithm-specific "other parameters" block this codec
// treats as opaque, and the linear acceleration / angular velocity vectors
// the algorithm extrapolates from. This library never runs the
// extrapolation itself, only carries the values.
type DrParameters struct {
	Algorithm           enumerations.DrAlgorithm
	Other               [15]byte
	LinearAcceleration  Vector
	AngularVelocity     Vector
}

const drParametersLength = 1 + 15 + vectorLength + vectorLength

func decodeDrParameters(r *reader) (DrParameters, error) {
	algo, err := r.u8()
	if err != nil {
		return DrParameters{}, err
	}
	other, err := r.bytes(15)
	if err != nil {
		return DrParameters{}, err
	}
	accel, err := decodeVector(r)
	if err != nil {
		return DrParameters{}, err
	}
	angular, err := decodeVector(r)
	if err != nil {
		return DrParameters{}, err
	}
	d := DrParameters{Algorithm: enumerations.DrAlgorithm(algo), LinearAcceleration: accel, AngularVelocity: angular}
	copy(d.Other[:], other)
	return d, nil
}

func (d DrParameters) encode(w *writer) {
	w.u8(uint8(d.Algorithm))
	w.bytes(d.Other[:])
	d.LinearAcceleration.encode(w)
	d.AngularVelocity.encode(w)
}

// EntityStateBody is the EntityState PDU: the most frequently transmitted
// PDU in a DIS exercise, broadcasting one entity's identity, kinematics,
// and appearance. Grounded field-for-field in the original entity_state
// model and its v6 bit-level parser.
type EntityStateBody struct {
	EntityId               EntityId
	ForceId                enumerations.ForceId
	EntityType             EntityType
	AlternativeEntityType  EntityType
	EntityLinearVelocity   Vector
	EntityLocation         Position
	EntityOrientation      Orientation
	GeneralAppearance      GeneralAppearance
	SpecificAppearance     SpecificAppearance
	DeadReckoningParameters DrParameters
	EntityMarking          EntityMarking
	Capabilities           EntityCapabilities
	ArticulationParameters []ArticulationParameter
}

func (EntityStateBody) PduType() enumerations.PduType { return enumerations.PduTypeEntityState }

func decodeEntityStateBody(r *reader) (EntityStateBody, error) {
	var b EntityStateBody
	var err error

	if b.EntityId, err = decodeEntityId(r); err != nil {
		return EntityStateBody{}, err
	}
	forceId, err := r.u8()
	if err != nil {
		return EntityStateBody{}, err
	}
	b.ForceId = enumerations.ForceId(forceId)

	numArticulation, err := r.u8()
	if err != nil {
		return EntityStateBody{}, err
	}

	if b.EntityType, err = decodeEntityType(r); err != nil {
		return EntityStateBody{}, err
	}
	if b.AlternativeEntityType, err = decodeEntityType(r); err != nil {
		return EntityStateBody{}, err
	}
	if b.EntityLinearVelocity, err = decodeVector(r); err != nil {
		return EntityStateBody{}, err
	}
	if b.EntityLocation, err = decodePosition(r); err != nil {
		return EntityStateBody{}, err
	}
	if b.EntityOrientation, err = decodeOrientation(r); err != nil {
		return EntityStateBody{}, err
	}
	if b.GeneralAppearance, err = decodeGeneralAppearance(r); err != nil {
		return EntityStateBody{}, err
	}
	if b.SpecificAppearance, err = decodeSpecificAppearance(r, b.EntityType.Kind, b.EntityType.Domain); err != nil {
		return EntityStateBody{}, err
	}
	if b.DeadReckoningParameters, err = decodeDrParameters(r); err != nil {
		return EntityStateBody{}, err
	}
	if b.EntityMarking, err = decodeEntityMarking(r); err != nil {
		return EntityStateBody{}, err
	}
	if b.Capabilities, err = decodeEntityCapabilities(r); err != nil {
		return EntityStateBody{}, err
	}

	b.ArticulationParameters = make([]ArticulationParameter, 0, numArticulation)
	for i := 0; i < int(numArticulation); i++ {
		ap, err := decodeArticulationParameter(r)
		if err != nil {
			return EntityStateBody{}, err
		}
		b.ArticulationParameters = append(b.ArticulationParameters, ap)
	}

	return b, nil
}

func (b EntityStateBody) encode(w *writer) {
	b.EntityId.encode(w)
	w.u8(uint8(b.ForceId))
	w.u8(uint8(len(b.ArticulationParameters)))
	b.EntityType.encode(w)
	b.AlternativeEntityType.encode(w)
	b.EntityLinearVelocity.encode(w)
	b.EntityLocation.encode(w)
	b.EntityOrientation.encode(w)
	b.GeneralAppearance.encode(w)
	b.SpecificAppearance.encode(w, b.EntityType.Kind, b.EntityType.Domain)
	b.DeadReckoningParameters.encode(w)
	if err := b.EntityMarking.encode(w); err != nil {
		// An EntityMarking.Value longer than 11 bytes is truncated to
		// 11 bytes rather than failing mid-encode.
		trimmed := b.EntityMarking
		if len(trimmed.Value) > entityMarkingTextLength {
			trimmed.Value = trimmed.Value[:entityMarkingTextLength]
		}
		_ = trimmed.encode(w)
	}
	b.Capabilities.encode(w)
	for _, ap := range b.ArticulationParameters {
		ap.encode(w)
	}
}
