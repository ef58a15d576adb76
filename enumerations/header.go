package enumerations

import "fmt"

// ProtocolVersion identifies the DIS wire format revision carried by a PDU
// header (SISO-REF-010 protocol version table). Only 6 and 7 are codecs this
// library can dispatch a body for; any other value still round-trips through
// ProtocolVersion but the header decoder behind ParsePdu and ParseStream
// reports it as UnsupportedProtocolVersion.
type ProtocolVersion uint8

const (
	ProtocolVersionOther ProtocolVersion = 0
	ProtocolVersion1995  ProtocolVersion = 5
	ProtocolVersionIEEE1278_1A1998 ProtocolVersion = 6
	ProtocolVersionIEEE1278_12012  ProtocolVersion = 7
)

// V6 and V7 are the two revisions this codec supports end to end.
const (
	V6 = ProtocolVersionIEEE1278_1A1998
	V7 = ProtocolVersionIEEE1278_12012
)

func (v ProtocolVersion) Known() bool {
	switch v {
	case ProtocolVersionOther, ProtocolVersion1995, V6, V7:
		return true
	default:
		return false
	}
}

func (v ProtocolVersion) String() string {
	switch v {
	case ProtocolVersionOther:
		return "Other"
	case ProtocolVersion1995:
		return "IEEE 1278.1-1995"
	case V6:
		return "IEEE 1278.1a-1998"
	case V7:
		return "IEEE 1278.1-2012"
	default:
		return fmt.Sprintf("Reserved(%d)", uint8(v))
	}
}

// PduType is the SISO-REF-010 "PDU Type" enumeration (table 4). It
// discriminates which body codec a header dispatches to and, independently,
// determines which PduStatus bits apply in a v7 header.
type PduType uint8

const (
	PduTypeOther                            PduType = 0
	PduTypeEntityState                      PduType = 1
	PduTypeFire                             PduType = 2
	PduTypeDetonation                       PduType = 3
	PduTypeCollision                        PduType = 4
	PduTypeServiceRequest                   PduType = 5
	PduTypeResupplyOffer                    PduType = 6
	PduTypeResupplyReceived                 PduType = 7
	PduTypeResupplyCancel                   PduType = 8
	PduTypeRepairComplete                   PduType = 9
	PduTypeRepairResponse                   PduType = 10
	PduTypeCreateEntity                     PduType = 11
	PduTypeRemoveEntity                     PduType = 12
	PduTypeStartResume                      PduType = 13
	PduTypeStopFreeze                       PduType = 14
	PduTypeAcknowledge                      PduType = 15
	PduTypeActionRequest                    PduType = 16
	PduTypeActionResponse                   PduType = 17
	PduTypeDataQuery                        PduType = 18
	PduTypeSetData                          PduType = 19
	PduTypeData                             PduType = 20
	PduTypeEventReport                      PduType = 21
	PduTypeComment                          PduType = 22
	PduTypeElectromagneticEmission          PduType = 23
	PduTypeDesignator                       PduType = 24
	PduTypeTransmitter                      PduType = 25
	PduTypeSignal                           PduType = 26
	PduTypeReceiver                         PduType = 27
	PduTypeIFF                              PduType = 28
	PduTypeUnderwaterAcoustic               PduType = 29
	PduTypeSupplementalEmission             PduType = 30
	PduTypeIntercomSignal                   PduType = 31
	PduTypeIntercomControl                  PduType = 32
	PduTypeAggregateState                   PduType = 33
	PduTypeIsGroupOf                        PduType = 34
	PduTypeTransferOwnership                PduType = 35
	PduTypeIsPartOf                         PduType = 36
	PduTypeMinefieldState                   PduType = 37
	PduTypeMinefieldQuery                   PduType = 38
	PduTypeMinefieldData                    PduType = 39
	PduTypeMinefieldResponseNAK             PduType = 40
	PduTypeEnvironmentalProcess             PduType = 41
	PduTypeGriddedData                      PduType = 42
	PduTypePointObjectState                 PduType = 43
	PduTypeLinearObjectState                PduType = 44
	PduTypeArealObjectState                 PduType = 45
	PduTypeTSPI                             PduType = 46
	PduTypeAppearance                       PduType = 47
	PduTypeArticulatedParts                 PduType = 48
	PduTypeLEFire                           PduType = 49
	PduTypeLEDetonation                     PduType = 50
	PduTypeCreateEntityR                    PduType = 51
	PduTypeRemoveEntityR                    PduType = 52
	PduTypeStartResumeR                     PduType = 53
	PduTypeStopFreezeR                      PduType = 54
	PduTypeAcknowledgeR                     PduType = 55
	PduTypeActionRequestR                   PduType = 56
	PduTypeActionResponseR                  PduType = 57
	PduTypeDataQueryR                       PduType = 58
	PduTypeSetDataR                         PduType = 59
	PduTypeDataR                            PduType = 60
	PduTypeEventReportR                     PduType = 61
	PduTypeCommentR                         PduType = 62
	PduTypeRecordR                          PduType = 63
	PduTypeSetRecordR                       PduType = 64
	PduTypeRecordQueryR                     PduType = 65
	PduTypeCollisionElastic                 PduType = 66
	PduTypeEntityStateUpdate                PduType = 67
	PduTypeDirectedEnergyFire               PduType = 68
	PduTypeEntityDamageStatus               PduType = 69
	PduTypeInformationOperationsAction      PduType = 70
	PduTypeInformationOperationsReport      PduType = 71
	PduTypeAttribute                        PduType = 72
)

func (p PduType) String() string {
	if name, ok := pduTypeNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint8(p))
}

func (p PduType) Known() bool {
	_, ok := pduTypeNames[p]
	return ok
}

var pduTypeNames = map[PduType]string{
	PduTypeOther:                       "Other",
	PduTypeEntityState:                 "EntityState",
	PduTypeFire:                        "Fire",
	PduTypeDetonation:                  "Detonation",
	PduTypeCollision:                   "Collision",
	PduTypeServiceRequest:              "ServiceRequest",
	PduTypeResupplyOffer:               "ResupplyOffer",
	PduTypeResupplyReceived:            "ResupplyReceived",
	PduTypeResupplyCancel:              "ResupplyCancel",
	PduTypeRepairComplete:              "RepairComplete",
	PduTypeRepairResponse:              "RepairResponse",
	PduTypeCreateEntity:                "CreateEntity",
	PduTypeRemoveEntity:                "RemoveEntity",
	PduTypeStartResume:                 "StartResume",
	PduTypeStopFreeze:                  "StopFreeze",
	PduTypeAcknowledge:                 "Acknowledge",
	PduTypeActionRequest:               "ActionRequest",
	PduTypeActionResponse:              "ActionResponse",
	PduTypeDataQuery:                   "DataQuery",
	PduTypeSetData:                     "SetData",
	PduTypeData:                        "Data",
	PduTypeEventReport:                 "EventReport",
	PduTypeComment:                     "Comment",
	PduTypeElectromagneticEmission:     "ElectromagneticEmission",
	PduTypeDesignator:                  "Designator",
	PduTypeTransmitter:                 "Transmitter",
	PduTypeSignal:                      "Signal",
	PduTypeReceiver:                    "Receiver",
	PduTypeIFF:                         "IFF",
	PduTypeUnderwaterAcoustic:          "UnderwaterAcoustic",
	PduTypeSupplementalEmission:        "SupplementalEmissionEntityState",
	PduTypeIntercomSignal:              "IntercomSignal",
	PduTypeIntercomControl:             "IntercomControl",
	PduTypeAggregateState:              "AggregateState",
	PduTypeIsGroupOf:                   "IsGroupOf",
	PduTypeTransferOwnership:           "TransferOwnership",
	PduTypeIsPartOf:                    "IsPartOf",
	PduTypeMinefieldState:              "MinefieldState",
	PduTypeMinefieldQuery:              "MinefieldQuery",
	PduTypeMinefieldData:               "MinefieldData",
	PduTypeMinefieldResponseNAK:        "MinefieldResponseNAK",
	PduTypeEnvironmentalProcess:        "EnvironmentalProcess",
	PduTypeGriddedData:                 "GriddedData",
	PduTypePointObjectState:            "PointObjectState",
	PduTypeLinearObjectState:           "LinearObjectState",
	PduTypeArealObjectState:            "ArealObjectState",
	PduTypeTSPI:                        "TSPI",
	PduTypeAppearance:                  "Appearance",
	PduTypeArticulatedParts:            "ArticulatedParts",
	PduTypeLEFire:                      "LEFire",
	PduTypeLEDetonation:                "LEDetonation",
	PduTypeCreateEntityR:               "CreateEntity-R",
	PduTypeRemoveEntityR:               "RemoveEntity-R",
	PduTypeStartResumeR:                "StartResume-R",
	PduTypeStopFreezeR:                 "StopFreeze-R",
	PduTypeAcknowledgeR:                "Acknowledge-R",
	PduTypeActionRequestR:              "ActionRequest-R",
	PduTypeActionResponseR:             "ActionResponse-R",
	PduTypeDataQueryR:                  "DataQuery-R",
	PduTypeSetDataR:                    "SetData-R",
	PduTypeDataR:                       "Data-R",
	PduTypeEventReportR:                "EventReport-R",
	PduTypeCommentR:                    "Comment-R",
	PduTypeRecordR:                     "Record-R",
	PduTypeSetRecordR:                  "SetRecord-R",
	PduTypeRecordQueryR:                "RecordQuery-R",
	PduTypeCollisionElastic:            "CollisionElastic",
	PduTypeEntityStateUpdate:           "EntityStateUpdate",
	PduTypeDirectedEnergyFire:          "DirectedEnergyFire",
	PduTypeEntityDamageStatus:          "EntityDamageStatus",
	PduTypeInformationOperationsAction: "InformationOperationsAction",
	PduTypeInformationOperationsReport: "InformationOperationsReport",
	PduTypeAttribute:                   "Attribute",
}

// ProtocolFamily is the SISO-REF-010 "Protocol Family" table (table 5). It is
// derivable from PduType; under DecodeOptions.Strict the decoder cross-checks
// that a decoded protocol_family agrees with what the pdu_type implies.
type ProtocolFamily uint8

const (
	ProtocolFamilyOther                        ProtocolFamily = 0
	ProtocolFamilyEntityInformationInteraction ProtocolFamily = 1
	ProtocolFamilyWarfare                      ProtocolFamily = 2
	ProtocolFamilyLogistics                    ProtocolFamily = 3
	ProtocolFamilyRadioCommunications          ProtocolFamily = 4
	ProtocolFamilySimulationManagement         ProtocolFamily = 5
	ProtocolFamilyDistributedEmissionRegen     ProtocolFamily = 6
	ProtocolFamilyEntityManagement             ProtocolFamily = 7
	ProtocolFamilyMinefield                    ProtocolFamily = 8
	ProtocolFamilySyntheticEnvironment         ProtocolFamily = 9
	ProtocolFamilySimulationManagementReliable ProtocolFamily = 10
	ProtocolFamilyLiveEntity                   ProtocolFamily = 11
	ProtocolFamilyNonRealTime                  ProtocolFamily = 12
	ProtocolFamilyInformationOperations        ProtocolFamily = 13
	ProtocolFamilyExperimental                 ProtocolFamily = 129
)

func (f ProtocolFamily) Known() bool {
	switch f {
	case ProtocolFamilyOther, ProtocolFamilyEntityInformationInteraction,
		ProtocolFamilyWarfare, ProtocolFamilyLogistics, ProtocolFamilyRadioCommunications,
		ProtocolFamilySimulationManagement, ProtocolFamilyDistributedEmissionRegen,
		ProtocolFamilyEntityManagement, ProtocolFamilyMinefield, ProtocolFamilySyntheticEnvironment,
		ProtocolFamilySimulationManagementReliable, ProtocolFamilyLiveEntity,
		ProtocolFamilyNonRealTime, ProtocolFamilyInformationOperations, ProtocolFamilyExperimental:
		return true
	default:
		return false
	}
}

func (f ProtocolFamily) String() string {
	switch f {
	case ProtocolFamilyOther:
		return "Other"
	case ProtocolFamilyEntityInformationInteraction:
		return "EntityInformation/Interaction"
	case ProtocolFamilyWarfare:
		return "Warfare"
	case ProtocolFamilyLogistics:
		return "Logistics"
	case ProtocolFamilyRadioCommunications:
		return "RadioCommunications"
	case ProtocolFamilySimulationManagement:
		return "SimulationManagement"
	case ProtocolFamilyDistributedEmissionRegen:
		return "DistributedEmissionRegeneration"
	case ProtocolFamilyEntityManagement:
		return "EntityManagement"
	case ProtocolFamilyMinefield:
		return "Minefield"
	case ProtocolFamilySyntheticEnvironment:
		return "SyntheticEnvironment"
	case ProtocolFamilySimulationManagementReliable:
		return "SimulationManagementWithReliability"
	case ProtocolFamilyLiveEntity:
		return "LiveEntity"
	case ProtocolFamilyNonRealTime:
		return "NonRealTime"
	case ProtocolFamilyInformationOperations:
		return "InformationOperations"
	case ProtocolFamilyExperimental:
		return "Experimental"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(f))
	}
}

// FamilyOf returns the protocol family a conforming sender would set for the
// given pdu_type. HeaderBuilder uses it to fill in Family; on decode it only
// validates the wire value, under DecodeOptions.Strict (otherwise a sender's
// declared family is kept as is).
func FamilyOf(t PduType) ProtocolFamily {
	switch {
	case t == PduTypeEntityState || t == PduTypeCollision || t == PduTypeCollisionElastic ||
		t == PduTypeEntityStateUpdate || t == PduTypeAttribute:
		return ProtocolFamilyEntityInformationInteraction
	case t == PduTypeFire || t == PduTypeDetonation || t == PduTypeDirectedEnergyFire ||
		t == PduTypeEntityDamageStatus:
		return ProtocolFamilyWarfare
	case t >= PduTypeServiceRequest && t <= PduTypeRepairResponse:
		return ProtocolFamilyLogistics
	case t == PduTypeElectromagneticEmission || t == PduTypeDesignator ||
		t == PduTypeSupplementalEmission:
		return ProtocolFamilyDistributedEmissionRegen
	case t == PduTypeTransmitter || t == PduTypeSignal || t == PduTypeReceiver ||
		t == PduTypeIntercomSignal || t == PduTypeIntercomControl:
		return ProtocolFamilyRadioCommunications
	case t == PduTypeIFF || t == PduTypeUnderwaterAcoustic:
		return ProtocolFamilyDistributedEmissionRegen
	case t >= PduTypeCreateEntity && t <= PduTypeComment:
		return ProtocolFamilySimulationManagement
	case t >= PduTypeCreateEntityR && t <= PduTypeRecordQueryR:
		return ProtocolFamilySimulationManagementReliable
	case t == PduTypeAggregateState || t == PduTypeIsGroupOf || t == PduTypeTransferOwnership ||
		t == PduTypeIsPartOf:
		return ProtocolFamilyEntityManagement
	case t >= PduTypeMinefieldState && t <= PduTypeMinefieldResponseNAK:
		return ProtocolFamilyMinefield
	case t >= PduTypeEnvironmentalProcess && t <= PduTypeTSPI:
		return ProtocolFamilySyntheticEnvironment
	case t == PduTypeInformationOperationsAction || t == PduTypeInformationOperationsReport:
		return ProtocolFamilyInformationOperations
	case t == PduTypeLEFire || t == PduTypeLEDetonation:
		return ProtocolFamilyLiveEntity
	default:
		return ProtocolFamilyOther
	}
}
