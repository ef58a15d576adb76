package enumerations

// IFFOperationalStatus (subset of the IFF PDU's system-status record).
type IFFOperationalStatus uint8

const (
	IFFOperationalStatusOn  IFFOperationalStatus = 0
	IFFOperationalStatusOff IFFOperationalStatus = 1
)

// IFFSystemType (SISO table 291): a subset of IFF/ATC/NAVAIDS system types.
type IFFSystemType uint16

const (
	IFFSystemTypeOther       IFFSystemType = 0
	IFFSystemTypeMarkXXIIATCRBS IFFSystemType = 1
	IFFSystemTypeMarkXIIIATCRBS IFFSystemType = 2
	IFFSystemTypeATCRBS      IFFSystemType = 3
	IFFSystemTypeMode4       IFFSystemType = 4
)

// IFFSystemMode (SISO table 292): operating mode of the IFF system.
type IFFSystemMode uint8

const (
	IFFSystemModeNoStatement IFFSystemMode = 0
	IFFSystemModeOff         IFFSystemMode = 1
	IFFSystemModeStandby     IFFSystemMode = 2
	IFFSystemModeNormal      IFFSystemMode = 3
	IFFSystemModeEmergency   IFFSystemMode = 4
)
