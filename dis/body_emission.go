package dis

import "github.com/mellowdrifter/godis/enumerations"

// FundamentalParameterData is a beam's RF characteristics: center frequency,
// bandwidth, power, pulse timing, and the azimuth/elevation sweep the beam
// scans through.
type FundamentalParameterData struct {
	Frequency           float32
	FrequencyRange      float32
	EffectiveRadiatedPower float32
	PulseRepetitionFrequency float32
	PulseWidth          float32
	BeamAzimuthCenter   float32
	BeamAzimuthSweep    float32
	BeamElevationCenter float32
	BeamElevationSweep  float32
	BeamSweepSync       float32
}

const fundamentalParameterDataLength = 40

func decodeFundamentalParameterData(r *reader) (FundamentalParameterData, error) {
	vals := make([]float32, 10)
	for i := range vals {
		v, err := r.f32()
		if err != nil {
			return FundamentalParameterData{}, err
		}
		vals[i] = v
	}
	return FundamentalParameterData{
		Frequency:                vals[0],
		FrequencyRange:           vals[1],
		EffectiveRadiatedPower:   vals[2],
		PulseRepetitionFrequency: vals[3],
		PulseWidth:               vals[4],
		BeamAzimuthCenter:        vals[5],
		BeamAzimuthSweep:         vals[6],
		BeamElevationCenter:      vals[7],
		BeamElevationSweep:       vals[8],
		BeamSweepSync:            vals[9],
	}, nil
}

func (f FundamentalParameterData) encode(w *writer) {
	w.f32(f.Frequency)
	w.f32(f.FrequencyRange)
	w.f32(f.EffectiveRadiatedPower)
	w.f32(f.PulseRepetitionFrequency)
	w.f32(f.PulseWidth)
	w.f32(f.BeamAzimuthCenter)
	w.f32(f.BeamAzimuthSweep)
	w.f32(f.BeamElevationCenter)
	w.f32(f.BeamElevationSweep)
	w.f32(f.BeamSweepSync)
}

// TrackJam identifies one entity a beam is tracking or jamming.
type TrackJam struct {
	EntityId EntityId
	EmitterId uint8
	BeamId    uint8
}

const trackJamLength = entityIdLength + 2

func decodeTrackJam(r *reader) (TrackJam, error) {
	id, err := decodeEntityId(r)
	if err != nil {
		return TrackJam{}, err
	}
	emitterId, err := r.u8()
	if err != nil {
		return TrackJam{}, err
	}
	beamId, err := r.u8()
	if err != nil {
		return TrackJam{}, err
	}
	return TrackJam{EntityId: id, EmitterId: emitterId, BeamId: beamId}, nil
}

func (t TrackJam) encode(w *writer) {
	t.EntityId.encode(w)
	w.u8(t.EmitterId)
	w.u8(t.BeamId)
}

// Beam is one emission beam of an emitter system.
type Beam struct {
	BeamIDNumber        uint8
	BeamParameterIndex  uint16
	Parameters          FundamentalParameterData
	Function            enumerations.BeamFunction
	HighDensityTrackJam enumerations.HighDensityTrackJam
	JammingTechnique    uint32
	TrackJamData        []TrackJam
}

const beamFixedLength = 1 + 1 + 2 + fundamentalParameterDataLength + 1 + 1 + 1 + 1 + 4 // in bytes, before any track/jam records; see encodedLength

func (b Beam) encodedLength() int {
	return 2 + 2 + fundamentalParameterDataLength + 1 + 1 + 1 + 1 + 4 + len(b.TrackJamData)*trackJamLength
}

func decodeBeam(r *reader) (Beam, error) {
	dataLength, err := r.u8() // in 32-bit words, including this header
	if err != nil {
		return Beam{}, err
	}
	beamId, err := r.u8()
	if err != nil {
		return Beam{}, err
	}
	paramIndex, err := r.u16()
	if err != nil {
		return Beam{}, err
	}
	params, err := decodeFundamentalParameterData(r)
	if err != nil {
		return Beam{}, err
	}
	function, err := r.u8()
	if err != nil {
		return Beam{}, err
	}
	numTargets, err := r.u8()
	if err != nil {
		return Beam{}, err
	}
	hdtj, err := r.u8()
	if err != nil {
		return Beam{}, err
	}
	if err := r.skip(1); err != nil { // padding
		return Beam{}, err
	}
	jammingTechnique, err := r.u32()
	if err != nil {
		return Beam{}, err
	}
	_ = dataLength

	targets := make([]TrackJam, 0, numTargets)
	for i := uint8(0); i < numTargets; i++ {
		tj, err := decodeTrackJam(r)
		if err != nil {
			return Beam{}, err
		}
		targets = append(targets, tj)
	}

	return Beam{
		BeamIDNumber:        beamId,
		BeamParameterIndex:  paramIndex,
		Parameters:          params,
		Function:            enumerations.BeamFunction(function),
		HighDensityTrackJam: enumerations.HighDensityTrackJam(hdtj),
		JammingTechnique:    jammingTechnique,
		TrackJamData:        targets,
	}, nil
}

func (b Beam) encode(w *writer) {
	w.u8(uint8(b.encodedLength() / 4))
	w.u8(b.BeamIDNumber)
	w.u16(b.BeamParameterIndex)
	b.Parameters.encode(w)
	w.u8(uint8(b.Function))
	w.u8(uint8(len(b.TrackJamData)))
	w.u8(uint8(b.HighDensityTrackJam))
	w.zero(1)
	w.u32(b.JammingTechnique)
	for _, t := range b.TrackJamData {
		t.encode(w)
	}
}

// EmitterSystem is one radar, jammer, or sonar emitter carried by an entity.
type EmitterSystem struct {
	Name     enumerations.EmitterName
	Function enumerations.EmitterSystemFunction
	Number   uint8
	Location Vector
	Beams    []Beam
}

func (e EmitterSystem) encodedLength() int {
	total := 2 + 2 + 2 + 2 + vectorLength
	for _, b := range e.Beams {
		total += b.encodedLength()
	}
	return total
}

func decodeEmitterSystem(r *reader) (EmitterSystem, error) {
	systemDataLength, err := r.u8() // in 32-bit words
	if err != nil {
		return EmitterSystem{}, err
	}
	numBeams, err := r.u8()
	if err != nil {
		return EmitterSystem{}, err
	}
	if err := r.skip(2); err != nil { // padding
		return EmitterSystem{}, err
	}
	name, err := r.u16()
	if err != nil {
		return EmitterSystem{}, err
	}
	function, err := r.u8()
	if err != nil {
		return EmitterSystem{}, err
	}
	number, err := r.u8()
	if err != nil {
		return EmitterSystem{}, err
	}
	location, err := decodeVector(r)
	if err != nil {
		return EmitterSystem{}, err
	}
	_ = systemDataLength

	beams := make([]Beam, 0, numBeams)
	for i := uint8(0); i < numBeams; i++ {
		beam, err := decodeBeam(r)
		if err != nil {
			return EmitterSystem{}, err
		}
		beams = append(beams, beam)
	}

	return EmitterSystem{
		Name:     enumerations.EmitterName(name),
		Function: enumerations.EmitterSystemFunction(function),
		Number:   number,
		Location: location,
		Beams:    beams,
	}, nil
}

func (e EmitterSystem) encode(w *writer) {
	w.u8(uint8(e.encodedLength() / 4))
	w.u8(uint8(len(e.Beams)))
	w.zero(2)
	w.u16(uint16(e.Name))
	w.u8(uint8(e.Function))
	w.u8(e.Number)
	e.Location.encode(w)
	for _, b := range e.Beams {
		b.encode(w)
	}
}

// ElectromagneticEmissionBody reports the emitter systems active on an
// entity: the EE PDU used for radar and jammer simulation.
type ElectromagneticEmissionBody struct {
	EmittingEntityId     EntityId
	EventId              EventId
	StateUpdateIndicator enumerations.ElectromagneticEmissionStateUpdateIndicator
	Systems              []EmitterSystem
}

func (ElectromagneticEmissionBody) PduType() enumerations.PduType {
	return enumerations.PduTypeElectromagneticEmission
}

func decodeElectromagneticEmissionBody(r *reader) (ElectromagneticEmissionBody, error) {
	var b ElectromagneticEmissionBody
	var err error
	if b.EmittingEntityId, err = decodeEntityId(r); err != nil {
		return ElectromagneticEmissionBody{}, err
	}
	if b.EventId, err = decodeEventId(r); err != nil {
		return ElectromagneticEmissionBody{}, err
	}
	stateUpdate, err := r.u8()
	if err != nil {
		return ElectromagneticEmissionBody{}, err
	}
	b.StateUpdateIndicator = enumerations.ElectromagneticEmissionStateUpdateIndicator(stateUpdate)
	numSystems, err := r.u8()
	if err != nil {
		return ElectromagneticEmissionBody{}, err
	}
	if err := r.skip(2); err != nil { // padding
		return ElectromagneticEmissionBody{}, err
	}
	b.Systems = make([]EmitterSystem, 0, numSystems)
	for i := uint8(0); i < numSystems; i++ {
		sys, err := decodeEmitterSystem(r)
		if err != nil {
			return ElectromagneticEmissionBody{}, err
		}
		b.Systems = append(b.Systems, sys)
	}
	return b, nil
}

func (b ElectromagneticEmissionBody) encode(w *writer) {
	b.EmittingEntityId.encode(w)
	b.EventId.encode(w)
	w.u8(uint8(b.StateUpdateIndicator))
	w.u8(uint8(len(b.Systems)))
	w.zero(2)
	for _, s := range b.Systems {
		s.encode(w)
	}
}
