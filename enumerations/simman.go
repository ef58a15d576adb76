package enumerations

// AcknowledgeFlag (SISO table 69): which simulation-management request an
// Acknowledge PDU confirms receipt of.
type AcknowledgeFlag uint16

const (
	AcknowledgeFlagCreateEntity AcknowledgeFlag = 1
	AcknowledgeFlagRemoveEntity AcknowledgeFlag = 2
	AcknowledgeFlagStartResume  AcknowledgeFlag = 3
	AcknowledgeFlagStopFreeze   AcknowledgeFlag = 4
)

// ResponseFlag (SISO table 70): whether the acknowledging simulation can
// comply with the request.
type ResponseFlag uint16

const (
	ResponseFlagOther               ResponseFlag = 0
	ResponseFlagAbleToComply        ResponseFlag = 1
	ResponseFlagUnableToComply      ResponseFlag = 2
)

// ActionId (SISO table 71): a subset of the action-request/response code
// points.
type ActionId uint32

const (
	ActionIdOther                      ActionId = 0
	ActionIdLocalStorageOfTheRequestedInformation ActionId = 1
	ActionIdInformSMofEventUpdates     ActionId = 2
	ActionIdConfirmDisconnect          ActionId = 3
	ActionIdRunInteractiveDISLogger    ActionId = 19
	ActionIdJoinExercise               ActionId = 21
	ActionIdResignExercise             ActionId = 22
	ActionIdTimeAdvance                ActionId = 23
)

// RequestStatus (SISO table 72): a subset of the action-response status
// code points.
type RequestStatus uint32

const (
	RequestStatusOther                  RequestStatus = 0
	RequestStatusPending                RequestStatus = 1
	RequestStatusExecuting              RequestStatus = 2
	RequestStatusPartiallyComplete      RequestStatus = 3
	RequestStatusComplete               RequestStatus = 4
	RequestStatusRequestRejected        RequestStatus = 5
	RequestStatusRetransmitRequestNow   RequestStatus = 6
	RequestStatusRetransmitRequestLater RequestStatus = 7
	RequestStatusInvalidTimeParameters  RequestStatus = 8
	RequestStatusSimulationTimeExceeded RequestStatus = 9
)

// EventType (SISO table 73): a subset of the EventReport event codes.
type EventType uint32

const (
	EventTypeOther                 EventType = 0
	EventTypeRanOutOfAmmunition    EventType = 2
	EventTypeKilledInAction        EventType = 3
	EventTypeDamage                EventType = 4
	EventTypeMobilityDisabled      EventType = 5
	EventTypeFireDisabled          EventType = 6
	EventTypeRanOutOfFuel          EventType = 7
)
