package dis

import "github.com/mellowdrifter/godis/enumerations"

// Position is a world coordinate in the DIS world coordinate system: an ECEF
// (Earth-Centered, Earth-Fixed) triple in meters, each component a 64-bit
// double. Grounded in the original parser's world_coordinates/location
// record: three consecutive big-endian f64 fields, no padding.
type Position struct {
	X, Y, Z float64
}

const positionLength = 24

func decodePosition(r *reader) (Position, error) {
	x, err := r.f64()
	if err != nil {
		return Position{}, err
	}
	y, err := r.f64()
	if err != nil {
		return Position{}, err
	}
	z, err := r.f64()
	if err != nil {
		return Position{}, err
	}
	return Position{X: x, Y: y, Z: z}, nil
}

func (p Position) encode(w *writer) {
	w.f64(p.X)
	w.f64(p.Y)
	w.f64(p.Z)
}

// Vector is a 3-component single-precision vector: linear velocity,
// linear acceleration, or an entity-coordinate offset, depending on the
// record it appears in. Grounded in the original parser's vec3_f32.
type Vector struct {
	X, Y, Z float32
}

const vectorLength = 12

func decodeVector(r *reader) (Vector, error) {
	x, err := r.f32()
	if err != nil {
		return Vector{}, err
	}
	y, err := r.f32()
	if err != nil {
		return Vector{}, err
	}
	z, err := r.f32()
	if err != nil {
		return Vector{}, err
	}
	return Vector{X: x, Y: y, Z: z}, nil
}

func (v Vector) encode(w *writer) {
	w.f32(v.X)
	w.f32(v.Y)
	w.f32(v.Z)
}

// Orientation is the Euler angle triple (psi, theta, phi), in radians,
// describing an entity's rotation from the parent coordinate system.
// Grounded in the original parser's orientation record: three f32 fields
// in psi/theta/phi order.
type Orientation struct {
	Psi, Theta, Phi float32
}

const orientationLength = 12

func decodeOrientation(r *reader) (Orientation, error) {
	psi, err := r.f32()
	if err != nil {
		return Orientation{}, err
	}
	theta, err := r.f32()
	if err != nil {
		return Orientation{}, err
	}
	phi, err := r.f32()
	if err != nil {
		return Orientation{}, err
	}
	return Orientation{Psi: psi, Theta: theta, Phi: phi}, nil
}

func (o Orientation) encode(w *writer) {
	w.f32(o.Psi)
	w.f32(o.Theta)
	w.f32(o.Phi)
}

// SimulationAddress identifies a simulation application: the (site,
// application) pair every Entity/Event ID record is built from.
type SimulationAddress struct {
	Site        uint16
	Application uint16
}

const simulationAddressLength = 4

func decodeSimulationAddress(r *reader) (SimulationAddress, error) {
	site, err := r.u16()
	if err != nil {
		return SimulationAddress{}, err
	}
	application, err := r.u16()
	if err != nil {
		return SimulationAddress{}, err
	}
	return SimulationAddress{Site: site, Application: application}, nil
}

func (s SimulationAddress) encode(w *writer) {
	w.u16(s.Site)
	w.u16(s.Application)
}

// EntityId uniquely identifies an entity within the exercise: a simulation
// address plus an entity number scoped to that application.
type EntityId struct {
	Simulation SimulationAddress
	Entity     uint16
}

const entityIdLength = simulationAddressLength + 2

func decodeEntityId(r *reader) (EntityId, error) {
	sim, err := decodeSimulationAddress(r)
	if err != nil {
		return EntityId{}, err
	}
	entity, err := r.u16()
	if err != nil {
		return EntityId{}, err
	}
	return EntityId{Simulation: sim, Entity: entity}, nil
}

func (e EntityId) encode(w *writer) {
	e.Simulation.encode(w)
	w.u16(e.Entity)
}

// NoEntity is the reserved EntityId value meaning "not applicable", used by
// several request/response PDUs to address the receiving simulation rather
// than a specific entity.
var NoEntity = EntityId{Simulation: SimulationAddress{Site: 0xFFFF, Application: 0xFFFF}, Entity: 0xFFFF}

// EventId identifies an event originated by a simulation application,
// structurally identical to EntityId but scoped to events rather than
// entities (Fire, Detonation, and Collision PDUs carry one each).
type EventId struct {
	Simulation SimulationAddress
	Event      uint16
}

const eventIdLength = simulationAddressLength + 2

func decodeEventId(r *reader) (EventId, error) {
	sim, err := decodeSimulationAddress(r)
	if err != nil {
		return EventId{}, err
	}
	event, err := r.u16()
	if err != nil {
		return EventId{}, err
	}
	return EventId{Simulation: sim, Event: event}, nil
}

func (e EventId) encode(w *writer) {
	e.Simulation.encode(w)
	w.u16(e.Event)
}

// EntityType is the SISO enumeration seven-tuple classifying an entity or
// munition: kind, domain, country, category, subcategory, specific, and
// extra. Grounded in the original parser's entity_type/kind/country
// functions and dis_rs's EntityType model struct, field for field.
type EntityType struct {
	Kind        enumerations.EntityKind
	Domain      uint8
	Country     enumerations.Country
	Category    uint8
	Subcategory uint8
	Specific    uint8
	Extra       uint8
}

const entityTypeLength = 8

func decodeEntityType(r *reader) (EntityType, error) {
	kind, err := r.u8()
	if err != nil {
		return EntityType{}, err
	}
	domain, err := r.u8()
	if err != nil {
		return EntityType{}, err
	}
	country, err := r.u16()
	if err != nil {
		return EntityType{}, err
	}
	category, err := r.u8()
	if err != nil {
		return EntityType{}, err
	}
	subcategory, err := r.u8()
	if err != nil {
		return EntityType{}, err
	}
	specific, err := r.u8()
	if err != nil {
		return EntityType{}, err
	}
	extra, err := r.u8()
	if err != nil {
		return EntityType{}, err
	}
	return EntityType{
		Kind:        enumerations.EntityKind(kind),
		Domain:      domain,
		Country:     enumerations.Country(country),
		Category:    category,
		Subcategory: subcategory,
		Specific:    specific,
		Extra:       extra,
	}, nil
}

func (e EntityType) encode(w *writer) {
	w.u8(uint8(e.Kind))
	w.u8(e.Domain)
	w.u16(uint16(e.Country))
	w.u8(e.Category)
	w.u8(e.Subcategory)
	w.u8(e.Specific)
	w.u8(e.Extra)
}
