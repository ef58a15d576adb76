package dis

import "github.com/mellowdrifter/godis/enumerations"

// CollisionBody is the Collision PDU: reported when two entities' bounding
// volumes intersect.
type CollisionBody struct {
	IssuingEntityId  EntityId
	CollidingEntityId EntityId
	EventId          EventId
	CollisionType    uint8
	Velocity         Vector
	Mass             float32
	Location         Vector
}

func (CollisionBody) PduType() enumerations.PduType { return enumerations.PduTypeCollision }

func decodeCollisionBody(r *reader) (CollisionBody, error) {
	var b CollisionBody
	var err error

	if b.IssuingEntityId, err = decodeEntityId(r); err != nil {
		return CollisionBody{}, err
	}
	if b.CollidingEntityId, err = decodeEntityId(r); err != nil {
		return CollisionBody{}, err
	}
	if b.EventId, err = decodeEventId(r); err != nil {
		return CollisionBody{}, err
	}
	collisionType, err := r.u8()
	if err != nil {
		return CollisionBody{}, err
	}
	b.CollisionType = collisionType
	if err := r.skip(1); err != nil { // padding
		return CollisionBody{}, err
	}
	if b.Velocity, err = decodeVector(r); err != nil {
		return CollisionBody{}, err
	}
	if b.Mass, err = r.f32(); err != nil {
		return CollisionBody{}, err
	}
	if b.Location, err = decodeVector(r); err != nil {
		return CollisionBody{}, err
	}
	return b, nil
}

func (b CollisionBody) encode(w *writer) {
	b.IssuingEntityId.encode(w)
	b.CollidingEntityId.encode(w)
	b.EventId.encode(w)
	w.u8(b.CollisionType)
	w.zero(1)
	b.Velocity.encode(w)
	w.f32(b.Mass)
	b.Location.encode(w)
}
