package enumerations

// The v7 header's PduStatus byte packs several independent one- or two-bit
// flags whose meaning is selected by the carrying PDU's type (spec.md §4.3).
// Each flag gets its own tiny enum so callers see named values instead of
// bare bits; the header codec (package dis) owns deciding which of these
// apply to a given PduType and packing/unpacking the shared byte.

// TransferredEntityIndicator (bit 0): whether entity control is mid-transfer.
type TransferredEntityIndicator uint8

const (
	TransferredEntityIndicatorNoTransfer    TransferredEntityIndicator = 0
	TransferredEntityIndicatorBeingTransferred TransferredEntityIndicator = 1
)

func (t TransferredEntityIndicator) String() string {
	if t == TransferredEntityIndicatorBeingTransferred {
		return "BeingTransferred"
	}
	return "NoTransfer"
}

// LvcIndicator (bits 1-2): live/virtual/constructive classification.
type LvcIndicator uint8

const (
	LvcIndicatorNoStatement LvcIndicator = 0
	LvcIndicatorLive        LvcIndicator = 1
	LvcIndicatorVirtual     LvcIndicator = 2
	LvcIndicatorConstructive LvcIndicator = 3
)

func (l LvcIndicator) String() string {
	switch l {
	case LvcIndicatorLive:
		return "Live"
	case LvcIndicatorVirtual:
		return "Virtual"
	case LvcIndicatorConstructive:
		return "Constructive"
	default:
		return "NoStatement"
	}
}

// CoupledExtensionIndicator (bit 3): whether a coupled DE/EE PDU follows.
type CoupledExtensionIndicator uint8

const (
	CoupledExtensionIndicatorNotCoupled CoupledExtensionIndicator = 0
	CoupledExtensionIndicatorCoupled    CoupledExtensionIndicator = 1
)

// FireTypeIndicator (bit 4 of Fire/Detonation PduStatus): selects the
// descriptor record layout carried by the Fire body (spec.md §4.4).
type FireTypeIndicator uint8

const (
	FireTypeIndicatorMunition   FireTypeIndicator = 0
	FireTypeIndicatorExpendable FireTypeIndicator = 1
)

// IntercomAttachedIndicator (bit 4 of the Intercom PDU family).
type IntercomAttachedIndicator uint8

const (
	IntercomAttachedIndicatorNotAttached IntercomAttachedIndicator = 0
	IntercomAttachedIndicatorAttached    IntercomAttachedIndicator = 1
)

// IFFSimulationMode (bit 4 of the IFF PDU).
type IFFSimulationMode uint8

const (
	IFFSimulationModeRegeneration IFFSimulationMode = 0
	IFFSimulationModeInteractive  IFFSimulationMode = 1
)

// DetonationTypeIndicator (bit 5 of Detonation PduStatus).
type DetonationTypeIndicator uint8

const (
	DetonationTypeIndicatorMunition   DetonationTypeIndicator = 0
	DetonationTypeIndicatorExpendable DetonationTypeIndicator = 1
)

// RadioAttachedIndicator (bit 5 of Transmitter/Signal/Receiver PduStatus).
type RadioAttachedIndicator uint8

const (
	RadioAttachedIndicatorNotAttached RadioAttachedIndicator = 0
	RadioAttachedIndicatorAttached    RadioAttachedIndicator = 1
)
