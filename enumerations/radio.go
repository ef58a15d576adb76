package enumerations

// RadioCategory (SISO table 139, part of the Transmitter PDU's radio type
// record "category" sub-field isn't separately enumerated upstream; this
// models the commonly used entity/radio category distinction).
type RadioCategory uint8

const (
	RadioCategoryOther    RadioCategory = 0
	RadioCategoryVoice    RadioCategory = 1
	RadioCategoryDataLink RadioCategory = 2
	RadioCategoryVideo    RadioCategory = 3
)

// TransmitState (SISO table 127): transmitter on/off/idle state.
type TransmitState uint8

const (
	TransmitStateOff       TransmitState = 0
	TransmitStateOnButNotTransmitting TransmitState = 1
	TransmitStateOnAndTransmitting    TransmitState = 2
)

// InputSource (SISO table 128): where the transmitted signal originates.
type InputSource uint8

const (
	InputSourceOther       InputSource = 0
	InputSourcePilot       InputSource = 1
	InputSourceCopilot     InputSource = 2
	InputSourceFirstOfficer InputSource = 3
	InputSourceDriver      InputSource = 4
	InputSourceLoader      InputSource = 5
	InputSourceGunner      InputSource = 6
	InputSourceCommander   InputSource = 7
	InputSourceDigitalDataDevice InputSource = 8
	InputSourceIntercom    InputSource = 9
)

// ModulationMajorModulation (SISO table 155): top-level modulation family.
type ModulationMajorModulation uint16

const (
	ModulationMajorModulationOther     ModulationMajorModulation = 0
	ModulationMajorModulationAmplitude ModulationMajorModulation = 1
	ModulationMajorModulationAmplitudeAndAngle ModulationMajorModulation = 2
	ModulationMajorModulationAngle     ModulationMajorModulation = 3
	ModulationMajorModulationCombination ModulationMajorModulation = 4
	ModulationMajorModulationPulse     ModulationMajorModulation = 5
	ModulationMajorModulationUnmodulated ModulationMajorModulation = 6
	ModulationMajorModulationCarrierPhaseShiftModulation ModulationMajorModulation = 7
)

// ModulationSystem (SISO table 164): the specific modulation standard/system.
type ModulationSystem uint16

const (
	ModulationSystemOther           ModulationSystem = 0
	ModulationSystemGenericRadio    ModulationSystem = 1
	ModulationSystemHAVEQUICK       ModulationSystem = 2
	ModulationSystemHAVEQUICKII     ModulationSystem = 3
	ModulationSystemSINCGARS        ModulationSystem = 4
	ModulationSystemCCTTSINCGARS    ModulationSystem = 5
)

// AntennaPatternType (Transmitter antenna pattern record, SISO table 133).
type AntennaPatternType uint16

const (
	AntennaPatternTypeOmnidirectional AntennaPatternType = 0
	AntennaPatternTypeBeam            AntennaPatternType = 1
	AntennaPatternTypeSphericalHarmonic AntennaPatternType = 2
)

// SignalEncodingClass (Signal PDU encoding scheme's class sub-field, SISO
// table 271).
type SignalEncodingClass uint8

const (
	SignalEncodingClassEncodedAudio    SignalEncodingClass = 0
	SignalEncodingClassRawBinaryData   SignalEncodingClass = 1
	SignalEncodingClassApplicationSpecificData SignalEncodingClass = 2
	SignalEncodingClassDatabaseIndex   SignalEncodingClass = 3
)

// SignalEncodingType (Signal PDU encoding scheme's type sub-field, SISO
// table 270): a subset of known audio/data codecs.
type SignalEncodingType uint16

const (
	SignalEncodingType8bitMuLaw   SignalEncodingType = 1
	SignalEncodingTypeCVSD        SignalEncodingType = 2
	SignalEncodingTypeADPCM       SignalEncodingType = 3
	SignalEncodingType16bitLinearPCM SignalEncodingType = 4
	SignalEncodingType8bitLinearPCM SignalEncodingType = 5
	SignalEncodingTypeVQ          SignalEncodingType = 6
)
