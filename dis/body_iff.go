package dis

import "github.com/mellowdrifter/godis/enumerations"

// SystemId identifies an IFF/ATC/NAVAIDS system carried by an entity.
type SystemId struct {
	SystemType   enumerations.IFFSystemType
	SystemName   uint16
	SystemMode   enumerations.IFFSystemMode
}

const systemIdLength = 2 + 2 + 1 + 1 // includes a reserved trailing byte

func decodeSystemId(r *reader) (SystemId, error) {
	systemType, err := r.u16()
	if err != nil {
		return SystemId{}, err
	}
	name, err := r.u16()
	if err != nil {
		return SystemId{}, err
	}
	mode, err := r.u8()
	if err != nil {
		return SystemId{}, err
	}
	if err := r.skip(1); err != nil { // reserved
		return SystemId{}, err
	}
	return SystemId{
		SystemType: enumerations.IFFSystemType(systemType),
		SystemName: name,
		SystemMode: enumerations.IFFSystemMode(mode),
	}, nil
}

func (s SystemId) encode(w *writer) {
	w.u16(uint16(s.SystemType))
	w.u16(s.SystemName)
	w.u8(uint8(s.SystemMode))
	w.zero(1)
}

// IFFBody reports an entity's IFF/ATC/NAVAIDS transponder state.
type IFFBody struct {
	EmittingEntityId    EntityId
	EventId             EventId
	Location             Vector
	System               SystemId
	OperationalStatus    enumerations.IFFOperationalStatus
}

func (IFFBody) PduType() enumerations.PduType { return enumerations.PduTypeIFF }

func decodeIFFBody(r *reader) (IFFBody, error) {
	var b IFFBody
	var err error
	if b.EmittingEntityId, err = decodeEntityId(r); err != nil {
		return IFFBody{}, err
	}
	if b.EventId, err = decodeEventId(r); err != nil {
		return IFFBody{}, err
	}
	if b.Location, err = decodeVector(r); err != nil {
		return IFFBody{}, err
	}
	if b.System, err = decodeSystemId(r); err != nil {
		return IFFBody{}, err
	}
	status, err := r.u8()
	if err != nil {
		return IFFBody{}, err
	}
	b.OperationalStatus = enumerations.IFFOperationalStatus(status)
	if err := r.skip(1); err != nil { // reserved
		return IFFBody{}, err
	}
	return b, nil
}

func (b IFFBody) encode(w *writer) {
	b.EmittingEntityId.encode(w)
	b.EventId.encode(w)
	b.Location.encode(w)
	b.System.encode(w)
	w.u8(uint8(b.OperationalStatus))
	w.zero(1)
}
