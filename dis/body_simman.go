package dis

import "github.com/mellowdrifter/godis/enumerations"

// ClockTime is the two-field simulation-time record used by StartResume and
// StopFreeze: an hour count since the exercise's designated epoch and the
// number of time units past that hour.
type ClockTime struct {
	Hour          uint32
	TimePastHour  uint32
}

const clockTimeLength = 8

func decodeClockTime(r *reader) (ClockTime, error) {
	hour, err := r.u32()
	if err != nil {
		return ClockTime{}, err
	}
	past, err := r.u32()
	if err != nil {
		return ClockTime{}, err
	}
	return ClockTime{Hour: hour, TimePastHour: past}, nil
}

func (c ClockTime) encode(w *writer) {
	w.u32(c.Hour)
	w.u32(c.TimePastHour)
}

func decodeDatumLists(r *reader) ([]FixedDatum, []VariableDatum, error) {
	numFixed, err := r.u32()
	if err != nil {
		return nil, nil, err
	}
	numVariable, err := r.u32()
	if err != nil {
		return nil, nil, err
	}
	fixed := make([]FixedDatum, 0, numFixed)
	for i := uint32(0); i < numFixed; i++ {
		d, err := decodeFixedDatum(r)
		if err != nil {
			return nil, nil, err
		}
		fixed = append(fixed, d)
	}
	variable := make([]VariableDatum, 0, numVariable)
	for i := uint32(0); i < numVariable; i++ {
		d, err := decodeVariableDatum(r)
		if err != nil {
			return nil, nil, err
		}
		variable = append(variable, d)
	}
	return fixed, variable, nil
}

func encodeDatumLists(w *writer, fixed []FixedDatum, variable []VariableDatum) {
	w.u32(uint32(len(fixed)))
	w.u32(uint32(len(variable)))
	for _, d := range fixed {
		d.encode(w)
	}
	for _, d := range variable {
		d.encode(w)
	}
}

// CreateEntityBody commands a receiving simulation to instantiate an entity.
type CreateEntityBody struct {
	OriginatingEntityId EntityId
	ReceivingEntityId   EntityId
	RequestId           uint32
}

func (CreateEntityBody) PduType() enumerations.PduType { return enumerations.PduTypeCreateEntity }

func decodeCreateEntityBody(r *reader) (CreateEntityBody, error) {
	var b CreateEntityBody
	var err error
	if b.OriginatingEntityId, err = decodeEntityId(r); err != nil {
		return CreateEntityBody{}, err
	}
	if b.ReceivingEntityId, err = decodeEntityId(r); err != nil {
		return CreateEntityBody{}, err
	}
	if b.RequestId, err = r.u32(); err != nil {
		return CreateEntityBody{}, err
	}
	return b, nil
}

func (b CreateEntityBody) encode(w *writer) {
	b.OriginatingEntityId.encode(w)
	b.ReceivingEntityId.encode(w)
	w.u32(b.RequestId)
}

// RemoveEntityBody commands a receiving simulation to delete an entity.
type RemoveEntityBody struct {
	OriginatingEntityId EntityId
	ReceivingEntityId   EntityId
	RequestId           uint32
}

func (RemoveEntityBody) PduType() enumerations.PduType { return enumerations.PduTypeRemoveEntity }

func decodeRemoveEntityBody(r *reader) (RemoveEntityBody, error) {
	var b RemoveEntityBody
	var err error
	if b.OriginatingEntityId, err = decodeEntityId(r); err != nil {
		return RemoveEntityBody{}, err
	}
	if b.ReceivingEntityId, err = decodeEntityId(r); err != nil {
		return RemoveEntityBody{}, err
	}
	if b.RequestId, err = r.u32(); err != nil {
		return RemoveEntityBody{}, err
	}
	return b, nil
}

func (b RemoveEntityBody) encode(w *writer) {
	b.OriginatingEntityId.encode(w)
	b.ReceivingEntityId.encode(w)
	w.u32(b.RequestId)
}

// StartResumeBody commands a simulation to start or resume an exercise,
// carrying both the real-world and simulated clock at which to do so.
type StartResumeBody struct {
	OriginatingEntityId EntityId
	ReceivingEntityId   EntityId
	RealWorldTime       ClockTime
	SimulationTime      ClockTime
	RequestId           uint32
}

func (StartResumeBody) PduType() enumerations.PduType { return enumerations.PduTypeStartResume }

func decodeStartResumeBody(r *reader) (StartResumeBody, error) {
	var b StartResumeBody
	var err error
	if b.OriginatingEntityId, err = decodeEntityId(r); err != nil {
		return StartResumeBody{}, err
	}
	if b.ReceivingEntityId, err = decodeEntityId(r); err != nil {
		return StartResumeBody{}, err
	}
	if b.RealWorldTime, err = decodeClockTime(r); err != nil {
		return StartResumeBody{}, err
	}
	if b.SimulationTime, err = decodeClockTime(r); err != nil {
		return StartResumeBody{}, err
	}
	if b.RequestId, err = r.u32(); err != nil {
		return StartResumeBody{}, err
	}
	return b, nil
}

func (b StartResumeBody) encode(w *writer) {
	b.OriginatingEntityId.encode(w)
	b.ReceivingEntityId.encode(w)
	b.RealWorldTime.encode(w)
	b.SimulationTime.encode(w)
	w.u32(b.RequestId)
}

// StopFreezeBody commands a simulation to stop or freeze an exercise.
type StopFreezeBody struct {
	OriginatingEntityId EntityId
	ReceivingEntityId   EntityId
	RealWorldTime       ClockTime
	Reason              uint8
	FrozenBehavior      uint8
	RequestId           uint32
}

func (StopFreezeBody) PduType() enumerations.PduType { return enumerations.PduTypeStopFreeze }

func decodeStopFreezeBody(r *reader) (StopFreezeBody, error) {
	var b StopFreezeBody
	var err error
	if b.OriginatingEntityId, err = decodeEntityId(r); err != nil {
		return StopFreezeBody{}, err
	}
	if b.ReceivingEntityId, err = decodeEntityId(r); err != nil {
		return StopFreezeBody{}, err
	}
	if b.RealWorldTime, err = decodeClockTime(r); err != nil {
		return StopFreezeBody{}, err
	}
	if b.Reason, err = r.u8(); err != nil {
		return StopFreezeBody{}, err
	}
	if b.FrozenBehavior, err = r.u8(); err != nil {
		return StopFreezeBody{}, err
	}
	if err := r.skip(2); err != nil { // padding
		return StopFreezeBody{}, err
	}
	if b.RequestId, err = r.u32(); err != nil {
		return StopFreezeBody{}, err
	}
	return b, nil
}

func (b StopFreezeBody) encode(w *writer) {
	b.OriginatingEntityId.encode(w)
	b.ReceivingEntityId.encode(w)
	b.RealWorldTime.encode(w)
	w.u8(b.Reason)
	w.u8(b.FrozenBehavior)
	w.zero(2)
	w.u32(b.RequestId)
}

// AcknowledgeBody confirms receipt of a CreateEntity, RemoveEntity,
// StartResume, or StopFreeze PDU. Body length is fixed at 20 bytes,
// matching the original acknowledge model's BodyInfo::body_length.
type AcknowledgeBody struct {
	OriginatingEntityId EntityId
	ReceivingEntityId   EntityId
	AcknowledgeFlag     enumerations.AcknowledgeFlag
	ResponseFlag        enumerations.ResponseFlag
	RequestId           uint32
}

func (AcknowledgeBody) PduType() enumerations.PduType { return enumerations.PduTypeAcknowledge }

func decodeAcknowledgeBody(r *reader) (AcknowledgeBody, error) {
	var b AcknowledgeBody
	var err error
	if b.OriginatingEntityId, err = decodeEntityId(r); err != nil {
		return AcknowledgeBody{}, err
	}
	if b.ReceivingEntityId, err = decodeEntityId(r); err != nil {
		return AcknowledgeBody{}, err
	}
	flag, err := r.u16()
	if err != nil {
		return AcknowledgeBody{}, err
	}
	b.AcknowledgeFlag = enumerations.AcknowledgeFlag(flag)
	response, err := r.u16()
	if err != nil {
		return AcknowledgeBody{}, err
	}
	b.ResponseFlag = enumerations.ResponseFlag(response)
	if b.RequestId, err = r.u32(); err != nil {
		return AcknowledgeBody{}, err
	}
	return b, nil
}

func (b AcknowledgeBody) encode(w *writer) {
	b.OriginatingEntityId.encode(w)
	b.ReceivingEntityId.encode(w)
	w.u16(uint16(b.AcknowledgeFlag))
	w.u16(uint16(b.ResponseFlag))
	w.u32(b.RequestId)
}

// ActionRequestBody asks a receiving simulation to perform a named action,
// optionally parameterized by fixed and variable datums. Body length is
// BASE_ACTION_REQUEST_BODY_LENGTH (28) plus 8 bytes per fixed datum plus the
// padded length of each variable datum, per the original model.
type ActionRequestBody struct {
	OriginatingEntityId EntityId
	ReceivingEntityId   EntityId
	RequestId           uint32
	ActionId            enumerations.ActionId
	FixedDatums         []FixedDatum
	VariableDatums      []VariableDatum
}

func (ActionRequestBody) PduType() enumerations.PduType { return enumerations.PduTypeActionRequest }

func decodeActionRequestBody(r *reader) (ActionRequestBody, error) {
	var b ActionRequestBody
	var err error
	if b.OriginatingEntityId, err = decodeEntityId(r); err != nil {
		return ActionRequestBody{}, err
	}
	if b.ReceivingEntityId, err = decodeEntityId(r); err != nil {
		return ActionRequestBody{}, err
	}
	if b.RequestId, err = r.u32(); err != nil {
		return ActionRequestBody{}, err
	}
	actionId, err := r.u32()
	if err != nil {
		return ActionRequestBody{}, err
	}
	b.ActionId = enumerations.ActionId(actionId)
	if b.FixedDatums, b.VariableDatums, err = decodeDatumLists(r); err != nil {
		return ActionRequestBody{}, err
	}
	return b, nil
}

func (b ActionRequestBody) encode(w *writer) {
	b.OriginatingEntityId.encode(w)
	b.ReceivingEntityId.encode(w)
	w.u32(b.RequestId)
	w.u32(uint32(b.ActionId))
	encodeDatumLists(w, b.FixedDatums, b.VariableDatums)
}

// ActionResponseBody reports the outcome of an ActionRequestBody.
type ActionResponseBody struct {
	OriginatingEntityId EntityId
	ReceivingEntityId   EntityId
	RequestId           uint32
	RequestStatus       enumerations.RequestStatus
	FixedDatums         []FixedDatum
	VariableDatums      []VariableDatum
}

func (ActionResponseBody) PduType() enumerations.PduType { return enumerations.PduTypeActionResponse }

func decodeActionResponseBody(r *reader) (ActionResponseBody, error) {
	var b ActionResponseBody
	var err error
	if b.OriginatingEntityId, err = decodeEntityId(r); err != nil {
		return ActionResponseBody{}, err
	}
	if b.ReceivingEntityId, err = decodeEntityId(r); err != nil {
		return ActionResponseBody{}, err
	}
	if b.RequestId, err = r.u32(); err != nil {
		return ActionResponseBody{}, err
	}
	status, err := r.u32()
	if err != nil {
		return ActionResponseBody{}, err
	}
	b.RequestStatus = enumerations.RequestStatus(status)
	if b.FixedDatums, b.VariableDatums, err = decodeDatumLists(r); err != nil {
		return ActionResponseBody{}, err
	}
	return b, nil
}

func (b ActionResponseBody) encode(w *writer) {
	b.OriginatingEntityId.encode(w)
	b.ReceivingEntityId.encode(w)
	w.u32(b.RequestId)
	w.u32(uint32(b.RequestStatus))
	encodeDatumLists(w, b.FixedDatums, b.VariableDatums)
}

// DataQueryBody asks a receiving simulation to report the values of the
// named fixed and variable datum IDs, at the given time interval.
type DataQueryBody struct {
	OriginatingEntityId EntityId
	ReceivingEntityId   EntityId
	RequestId           uint32
	TimeInterval        uint32
	FixedDatumIds       []uint32
	VariableDatumIds    []uint32
}

func (DataQueryBody) PduType() enumerations.PduType { return enumerations.PduTypeDataQuery }

func decodeDatumIdLists(r *reader) ([]uint32, []uint32, error) {
	numFixed, err := r.u32()
	if err != nil {
		return nil, nil, err
	}
	numVariable, err := r.u32()
	if err != nil {
		return nil, nil, err
	}
	fixed := make([]uint32, 0, numFixed)
	for i := uint32(0); i < numFixed; i++ {
		id, err := r.u32()
		if err != nil {
			return nil, nil, err
		}
		fixed = append(fixed, id)
	}
	variable := make([]uint32, 0, numVariable)
	for i := uint32(0); i < numVariable; i++ {
		id, err := r.u32()
		if err != nil {
			return nil, nil, err
		}
		variable = append(variable, id)
	}
	return fixed, variable, nil
}

func encodeDatumIdLists(w *writer, fixed, variable []uint32) {
	w.u32(uint32(len(fixed)))
	w.u32(uint32(len(variable)))
	for _, id := range fixed {
		w.u32(id)
	}
	for _, id := range variable {
		w.u32(id)
	}
}

func decodeDataQueryBody(r *reader) (DataQueryBody, error) {
	var b DataQueryBody
	var err error
	if b.OriginatingEntityId, err = decodeEntityId(r); err != nil {
		return DataQueryBody{}, err
	}
	if b.ReceivingEntityId, err = decodeEntityId(r); err != nil {
		return DataQueryBody{}, err
	}
	if b.RequestId, err = r.u32(); err != nil {
		return DataQueryBody{}, err
	}
	if b.TimeInterval, err = r.u32(); err != nil {
		return DataQueryBody{}, err
	}
	if b.FixedDatumIds, b.VariableDatumIds, err = decodeDatumIdLists(r); err != nil {
		return DataQueryBody{}, err
	}
	return b, nil
}

func (b DataQueryBody) encode(w *writer) {
	b.OriginatingEntityId.encode(w)
	b.ReceivingEntityId.encode(w)
	w.u32(b.RequestId)
	w.u32(b.TimeInterval)
	encodeDatumIdLists(w, b.FixedDatumIds, b.VariableDatumIds)
}

// SetDataBody sets the values of named fixed and variable datums on the
// receiving simulation.
type SetDataBody struct {
	OriginatingEntityId EntityId
	ReceivingEntityId   EntityId
	RequestId           uint32
	FixedDatums         []FixedDatum
	VariableDatums      []VariableDatum
}

func (SetDataBody) PduType() enumerations.PduType { return enumerations.PduTypeSetData }

func decodeSetDataBody(r *reader) (SetDataBody, error) {
	var b SetDataBody
	var err error
	if b.OriginatingEntityId, err = decodeEntityId(r); err != nil {
		return SetDataBody{}, err
	}
	if b.ReceivingEntityId, err = decodeEntityId(r); err != nil {
		return SetDataBody{}, err
	}
	if b.RequestId, err = r.u32(); err != nil {
		return SetDataBody{}, err
	}
	if err := r.skip(4); err != nil { // padding
		return SetDataBody{}, err
	}
	if b.FixedDatums, b.VariableDatums, err = decodeDatumLists(r); err != nil {
		return SetDataBody{}, err
	}
	return b, nil
}

func (b SetDataBody) encode(w *writer) {
	b.OriginatingEntityId.encode(w)
	b.ReceivingEntityId.encode(w)
	w.u32(b.RequestId)
	w.zero(4)
	encodeDatumLists(w, b.FixedDatums, b.VariableDatums)
}

// DataBody reports the values of named fixed and variable datums, typically
// in response to a DataQueryBody. Wire-identical to SetDataBody.
type DataBody struct {
	OriginatingEntityId EntityId
	ReceivingEntityId   EntityId
	RequestId           uint32
	FixedDatums         []FixedDatum
	VariableDatums      []VariableDatum
}

func (DataBody) PduType() enumerations.PduType { return enumerations.PduTypeData }

func decodeDataBody(r *reader) (DataBody, error) {
	var b DataBody
	var err error
	if b.OriginatingEntityId, err = decodeEntityId(r); err != nil {
		return DataBody{}, err
	}
	if b.ReceivingEntityId, err = decodeEntityId(r); err != nil {
		return DataBody{}, err
	}
	if b.RequestId, err = r.u32(); err != nil {
		return DataBody{}, err
	}
	if err := r.skip(4); err != nil { // padding
		return DataBody{}, err
	}
	if b.FixedDatums, b.VariableDatums, err = decodeDatumLists(r); err != nil {
		return DataBody{}, err
	}
	return b, nil
}

func (b DataBody) encode(w *writer) {
	b.OriginatingEntityId.encode(w)
	b.ReceivingEntityId.encode(w)
	w.u32(b.RequestId)
	w.zero(4)
	encodeDatumLists(w, b.FixedDatums, b.VariableDatums)
}

// EventReportBody reports a discrete event not covered by one of the
// dedicated event PDUs (e.g. Fire, Detonation, Collision).
type EventReportBody struct {
	OriginatingEntityId EntityId
	ReceivingEntityId   EntityId
	EventType           enumerations.EventType
	FixedDatums         []FixedDatum
	VariableDatums      []VariableDatum
}

func (EventReportBody) PduType() enumerations.PduType { return enumerations.PduTypeEventReport }

func decodeEventReportBody(r *reader) (EventReportBody, error) {
	var b EventReportBody
	var err error
	if b.OriginatingEntityId, err = decodeEntityId(r); err != nil {
		return EventReportBody{}, err
	}
	if b.ReceivingEntityId, err = decodeEntityId(r); err != nil {
		return EventReportBody{}, err
	}
	eventType, err := r.u32()
	if err != nil {
		return EventReportBody{}, err
	}
	b.EventType = enumerations.EventType(eventType)
	if err := r.skip(4); err != nil { // padding
		return EventReportBody{}, err
	}
	if b.FixedDatums, b.VariableDatums, err = decodeDatumLists(r); err != nil {
		return EventReportBody{}, err
	}
	return b, nil
}

func (b EventReportBody) encode(w *writer) {
	b.OriginatingEntityId.encode(w)
	b.ReceivingEntityId.encode(w)
	w.u32(uint32(b.EventType))
	w.zero(4)
	encodeDatumLists(w, b.FixedDatums, b.VariableDatums)
}

// CommentBody carries free-form data in variable datums, with no
// interpreted semantics of its own.
type CommentBody struct {
	OriginatingEntityId EntityId
	ReceivingEntityId   EntityId
	VariableDatums      []VariableDatum
}

func (CommentBody) PduType() enumerations.PduType { return enumerations.PduTypeComment }

func decodeCommentBody(r *reader) (CommentBody, error) {
	var b CommentBody
	var err error
	if b.OriginatingEntityId, err = decodeEntityId(r); err != nil {
		return CommentBody{}, err
	}
	if b.ReceivingEntityId, err = decodeEntityId(r); err != nil {
		return CommentBody{}, err
	}
	_, variable, err := decodeDatumLists(r)
	if err != nil {
		return CommentBody{}, err
	}
	b.VariableDatums = variable
	return b, nil
}

func (b CommentBody) encode(w *writer) {
	b.OriginatingEntityId.encode(w)
	b.ReceivingEntityId.encode(w)
	encodeDatumLists(w, nil, b.VariableDatums)
}
