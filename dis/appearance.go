package dis

import "github.com/mellowdrifter/godis/enumerations"

// bits16 is a tiny MSB-first bitfield cursor over a single uint16, used to
// pack/unpack the General and Specific Appearance records. Grounded in the
// original parser's nom bit-combinator chains (take_bits(n) applied
// left-to-right across each appearance record); Go has no equivalent
// combinator so the shifts are explicit here.
type bits16 struct {
	raw  uint16
	pos  uint // bits consumed from the MSB side, 0..16
}

func (b *bits16) take(width uint) uint16 {
	shift := 16 - b.pos - width
	mask := uint16((1 << width) - 1)
	v := (b.raw >> shift) & mask
	b.pos += width
	return v
}

type bits16Writer struct {
	raw uint16
	pos uint
}

func (w *bits16Writer) put(width uint, value uint16) {
	shift := 16 - w.pos - width
	mask := uint16((1 << width) - 1)
	w.raw |= (value & mask) << shift
	w.pos += width
}

// GeneralAppearance is the EntityState PDU's domain-independent appearance
// sub-record: nine bitfields packed MSB-first into 16 bits.
type GeneralAppearance struct {
	PaintScheme    enumerations.EntityPaintScheme
	MobilityKill   enumerations.EntityMobilityKill
	FirePower      enumerations.EntityFirePower
	Damage         enumerations.EntityDamage
	Smoke          enumerations.EntitySmoke
	TrailingEffect enumerations.EntityTrailingEffect
	HatchState     enumerations.EntityHatchState
	Lights         enumerations.EntityLights
	FlamingEffect  enumerations.EntityFlamingEffect
}

func decodeGeneralAppearance(r *reader) (GeneralAppearance, error) {
	raw, err := r.u16()
	if err != nil {
		return GeneralAppearance{}, err
	}
	b := bits16{raw: raw}
	return GeneralAppearance{
		PaintScheme:    enumerations.EntityPaintScheme(b.take(1)),
		MobilityKill:   enumerations.EntityMobilityKill(b.take(1)),
		FirePower:      enumerations.EntityFirePower(b.take(1)),
		Damage:         enumerations.EntityDamage(b.take(2)),
		Smoke:          enumerations.EntitySmoke(b.take(2)),
		TrailingEffect: enumerations.EntityTrailingEffect(b.take(2)),
		HatchState:     enumerations.EntityHatchState(b.take(3)),
		Lights:         enumerations.EntityLights(b.take(3)),
		FlamingEffect:  enumerations.EntityFlamingEffect(b.take(1)),
	}, nil
}

func (g GeneralAppearance) encode(w *writer) {
	bw := bits16Writer{}
	bw.put(1, uint16(g.PaintScheme))
	bw.put(1, uint16(g.MobilityKill))
	bw.put(1, uint16(g.FirePower))
	bw.put(2, uint16(g.Damage))
	bw.put(2, uint16(g.Smoke))
	bw.put(2, uint16(g.TrailingEffect))
	bw.put(3, uint16(g.HatchState))
	bw.put(3, uint16(g.Lights))
	bw.put(1, uint16(g.FlamingEffect))
	w.u16(bw.raw)
}

// SpecificAppearance is the EntityState PDU's domain-dependent appearance
// sub-record. Exactly one of the embedded structs is meaningful, selected by
// the entity's (Kind, Domain) pair — see kindFor.
type SpecificAppearance struct {
	Land            LandAppearance
	Air             AirAppearance
	Surface         SurfaceAppearance
	GuidedMunition  GuidedMunitionAppearance
	LifeForm        LifeFormAppearance
	Environmental   EnvironmentalAppearance
	Raw             uint16
}

type LandAppearance struct {
	Launcher    enumerations.Launcher
	Camouflage  enumerations.Camouflage
	Concealed   enumerations.Concealed
	Frozen      enumerations.FrozenStatus
	PowerPlant  enumerations.PowerPlantStatus
	State       enumerations.PlatformOperationalState
	Tent        enumerations.Tent
	Ramp        enumerations.Ramp
}

type AirAppearance struct {
	LaunchFlash enumerations.LaunchFlash
	Afterburner enumerations.Afterburner
	Frozen      enumerations.FrozenStatus
	PowerPlant  enumerations.PowerPlantStatus
	State       enumerations.PlatformOperationalState
}

// SurfaceAppearance also covers Subsurface and Space domains; the original
// parser gives all three the same bit layout (5 unused, frozen, power
// plant, state, 8 pad).
type SurfaceAppearance struct {
	Frozen     enumerations.FrozenStatus
	PowerPlant enumerations.PowerPlantStatus
	State      enumerations.PlatformOperationalState
}

type GuidedMunitionAppearance struct {
	LaunchFlash enumerations.LaunchFlash
	Frozen      enumerations.FrozenStatus
	State       enumerations.PlatformOperationalState
}

// LifeFormAppearance's bit layout is state(4) | unused(1) | frozen(1) |
// unused(1) | activity(1) | weapon1(2) | weapon2(2) | pad(4).
type LifeFormAppearance struct {
	LifeFormsState enumerations.LifeFormsState
	Frozen         enumerations.FrozenStatus
	Activity       enumerations.ActivityState
	Weapon1        enumerations.Weapon
	Weapon2        enumerations.Weapon
}

type EnvironmentalAppearance struct {
	Density enumerations.Density
}

// specificAppearanceKind selects which of SpecificAppearance's embedded
// structs is meaningful for a given entity type, mirroring the original
// builder module's per-domain specific-appearance builders.
type specificAppearanceKind int

const (
	specificAppearanceUnknown specificAppearanceKind = iota
	specificAppearanceLand
	specificAppearanceAir
	specificAppearanceSurface
	specificAppearanceGuidedMunition
	specificAppearanceLifeForm
	specificAppearanceEnvironmental
)

func kindFor(entityKind enumerations.EntityKind, domain uint8) specificAppearanceKind {
	switch {
	case entityKind == enumerations.EntityKindLifeForm:
		return specificAppearanceLifeForm
	case entityKind == enumerations.EntityKindEnvironmental:
		return specificAppearanceEnvironmental
	case entityKind == enumerations.EntityKindMunition && domain == enumerations.DomainAir:
		return specificAppearanceGuidedMunition
	case domain == enumerations.DomainLand:
		return specificAppearanceLand
	case domain == enumerations.DomainAir:
		return specificAppearanceAir
	case domain == enumerations.DomainSurface || domain == enumerations.DomainSubsurface || domain == enumerations.DomainSpace:
		return specificAppearanceSurface
	default:
		return specificAppearanceUnknown
	}
}

func decodeSpecificAppearance(r *reader, entityKind enumerations.EntityKind, domain uint8) (SpecificAppearance, error) {
	raw, err := r.u16()
	if err != nil {
		return SpecificAppearance{}, err
	}
	b := bits16{raw: raw}
	sa := SpecificAppearance{Raw: raw}
	switch kindFor(entityKind, domain) {
	case specificAppearanceLand:
		sa.Land = LandAppearance{
			Launcher:   enumerations.Launcher(b.take(1)),
			Camouflage: enumerations.Camouflage(b.take(2)),
			Concealed:  enumerations.Concealed(b.take(1)),
			Frozen:     enumerations.FrozenStatus(b.take(1)),
			PowerPlant: enumerations.PowerPlantStatus(b.take(1)),
			State:      enumerations.PlatformOperationalState(b.take(1)),
			Tent:       enumerations.Tent(b.take(1)),
			Ramp:       enumerations.Ramp(b.take(1)),
		}
	case specificAppearanceAir:
		sa.Air = AirAppearance{
			LaunchFlash: enumerations.LaunchFlash(b.take(1)),
			Afterburner: enumerations.Afterburner(b.take(1)),
			Frozen:      enumerations.FrozenStatus(b.take(1)),
			PowerPlant:  enumerations.PowerPlantStatus(b.take(1)),
			State:       enumerations.PlatformOperationalState(b.take(1)),
		}
	case specificAppearanceSurface:
		b.take(5)
		sa.Surface = SurfaceAppearance{
			Frozen:     enumerations.FrozenStatus(b.take(1)),
			PowerPlant: enumerations.PowerPlantStatus(b.take(1)),
			State:      enumerations.PlatformOperationalState(b.take(1)),
		}
	case specificAppearanceGuidedMunition:
		sa.GuidedMunition = GuidedMunitionAppearance{
			LaunchFlash: enumerations.LaunchFlash(b.take(1)),
			Frozen:      enumerations.FrozenStatus(b.take(1)),
			State:       enumerations.PlatformOperationalState(b.take(1)),
		}
	case specificAppearanceLifeForm:
		state := enumerations.LifeFormsState(b.take(4))
		b.take(1) // unused
		frozen := enumerations.FrozenStatus(b.take(1))
		b.take(1) // unused
		activity := enumerations.ActivityState(b.take(1))
		weapon1 := enumerations.Weapon(b.take(2))
		weapon2 := enumerations.Weapon(b.take(2))
		b.take(4) // pad
		sa.LifeForm = LifeFormAppearance{
			LifeFormsState: state,
			Frozen:         frozen,
			Activity:       activity,
			Weapon1:        weapon1,
			Weapon2:        weapon2,
		}
	case specificAppearanceEnvironmental:
		sa.Environmental = EnvironmentalAppearance{
			Density: enumerations.Density(b.take(4)),
		}
	}
	return sa, nil
}

func (s SpecificAppearance) encode(w *writer, entityKind enumerations.EntityKind, domain uint8) {
	bw := bits16Writer{}
	switch kindFor(entityKind, domain) {
	case specificAppearanceLand:
		l := s.Land
		bw.put(1, uint16(l.Launcher))
		bw.put(2, uint16(l.Camouflage))
		bw.put(1, uint16(l.Concealed))
		bw.put(1, uint16(l.Frozen))
		bw.put(1, uint16(l.PowerPlant))
		bw.put(1, uint16(l.State))
		bw.put(1, uint16(l.Tent))
		bw.put(1, uint16(l.Ramp))
	case specificAppearanceAir:
		a := s.Air
		bw.put(1, uint16(a.LaunchFlash))
		bw.put(1, uint16(a.Afterburner))
		bw.put(1, uint16(a.Frozen))
		bw.put(1, uint16(a.PowerPlant))
		bw.put(1, uint16(a.State))
	case specificAppearanceSurface:
		bw.put(5, 0)
		su := s.Surface
		bw.put(1, uint16(su.Frozen))
		bw.put(1, uint16(su.PowerPlant))
		bw.put(1, uint16(su.State))
	case specificAppearanceGuidedMunition:
		g := s.GuidedMunition
		bw.put(1, uint16(g.LaunchFlash))
		bw.put(1, uint16(g.Frozen))
		bw.put(1, uint16(g.State))
	case specificAppearanceLifeForm:
		lf := s.LifeForm
		bw.put(4, uint16(lf.LifeFormsState))
		bw.put(1, 0) // unused
		bw.put(1, uint16(lf.Frozen))
		bw.put(1, 0) // unused
		bw.put(1, uint16(lf.Activity))
		bw.put(2, uint16(lf.Weapon1))
		bw.put(2, uint16(lf.Weapon2))
		bw.put(4, 0) // pad
	case specificAppearanceEnvironmental:
		bw.put(4, uint16(s.Environmental.Density))
	default:
		bw.raw = s.Raw
	}
	w.u16(bw.raw)
}

// EntityCapabilities is the EntityState PDU's platform-capabilities record:
// four named boolean flags packed into the top bits of a 32-bit field, the
// remaining 28 bits reserved. Grounded in dis_rs's EntityCapabilities model
// (four bool fields plus a reserved tail).
type EntityCapabilities struct {
	AmmunitionSupply bool
	FuelSupply       bool
	RecoveryService  bool
	RepairService    bool
}

func decodeEntityCapabilities(r *reader) (EntityCapabilities, error) {
	raw, err := r.u32()
	if err != nil {
		return EntityCapabilities{}, err
	}
	return EntityCapabilities{
		AmmunitionSupply: raw&(1<<31) != 0,
		FuelSupply:       raw&(1<<30) != 0,
		RecoveryService:  raw&(1<<29) != 0,
		RepairService:    raw&(1<<28) != 0,
	}, nil
}

func (c EntityCapabilities) encode(w *writer) {
	var raw uint32
	if c.AmmunitionSupply {
		raw |= 1 << 31
	}
	if c.FuelSupply {
		raw |= 1 << 30
	}
	if c.RecoveryService {
		raw |= 1 << 29
	}
	if c.RepairService {
		raw |= 1 << 28
	}
	w.u32(raw)
}
