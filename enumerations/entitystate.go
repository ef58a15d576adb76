package enumerations

import "fmt"

// ForceId (SISO table 6): which side an entity fights for.
type ForceId uint8

const (
	ForceIdOther     ForceId = 0
	ForceIdFriendly  ForceId = 1
	ForceIdOpposing  ForceId = 2
	ForceIdNeutral   ForceId = 3
	ForceIdFriendly2 ForceId = 4
	ForceIdOpposing2 ForceId = 5
	ForceIdNeutral2  ForceId = 6
	ForceIdFriendly3 ForceId = 7
	ForceIdOpposing3 ForceId = 8
	ForceIdNeutral3  ForceId = 9
)

func (f ForceId) Known() bool {
	return f <= ForceIdNeutral3
}

func (f ForceId) String() string {
	names := [...]string{"Other", "Friendly", "Opposing", "Neutral", "Friendly2",
		"Opposing2", "Neutral2", "Friendly3", "Opposing3", "Neutral3"}
	if int(f) < len(names) {
		return names[f]
	}
	return fmt.Sprintf("Unknown(%d)", uint8(f))
}

// EntityKind (SISO table 7, "Kind" column of the entity type record).
type EntityKind uint8

const (
	EntityKindOther         EntityKind = 0
	EntityKindPlatform      EntityKind = 1
	EntityKindMunition      EntityKind = 2
	EntityKindLifeForm      EntityKind = 3
	EntityKindEnvironmental EntityKind = 4
	EntityKindCulturalFeature EntityKind = 5
	EntityKindSupply        EntityKind = 6
	EntityKindRadio         EntityKind = 7
	EntityKindExpendable    EntityKind = 8
	EntityKindSensorEmitter EntityKind = 9
)

func (k EntityKind) String() string {
	names := [...]string{"Other", "Platform", "Munition", "LifeForm", "Environmental",
		"CulturalFeature", "Supply", "Radio", "Expendable", "SensorEmitter"}
	if int(k) < len(names) {
		return names[k]
	}
	return fmt.Sprintf("Unknown(%d)", uint8(k))
}

// Domain codes (SISO table 8, "Domain" column). Only the platform-domain
// codes the specific-appearance dispatch (spec.md §4.4/§4.5) cares about are
// named; every other value still decodes, just without a symbolic name.
const (
	DomainLand       uint8 = 1
	DomainAir        uint8 = 2
	DomainSurface    uint8 = 3
	DomainSubsurface uint8 = 4
	DomainSpace      uint8 = 5
)

// Country (SISO table 29). A representative subset of the ~250-entry table;
// any other code still round-trips through the type, just unnamed.
type Country uint16

const (
	CountryOther         Country = 0
	CountryFrance        Country = 71
	CountryGermany       Country = 78
	CountryItaly         Country = 106
	CountryNetherlands   Country = 144
	CountryUnitedKingdom Country = 200
	CountryUnitedStates  Country = 225
	CountryCanada        Country = 39
	CountryAustralia     Country = 13
	CountryJapan         Country = 112
	CountryNATO          Country = 221
)

var countryNames = map[Country]string{
	CountryOther:         "Other",
	CountryFrance:        "France",
	CountryGermany:       "Germany",
	CountryItaly:         "Italy",
	CountryNetherlands:   "Netherlands",
	CountryUnitedKingdom: "UnitedKingdom",
	CountryUnitedStates:  "UnitedStates",
	CountryCanada:        "Canada",
	CountryAustralia:     "Australia",
	CountryJapan:         "Japan",
	CountryNATO:          "NATO",
}

func (c Country) Known() bool {
	_, ok := countryNames[c]
	return ok
}

func (c Country) String() string {
	if name, ok := countryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint16(c))
}

// DrAlgorithm (SISO table 31): dead-reckoning model applied by the receiver.
// The codec carries this value but never performs the extrapolation itself
// (spec.md §1 Non-goals).
type DrAlgorithm uint8

const (
	DrAlgorithmOther  DrAlgorithm = 0
	DrAlgorithmStatic DrAlgorithm = 1
	DrAlgorithmFPW    DrAlgorithm = 2
	DrAlgorithmRPW    DrAlgorithm = 3
	DrAlgorithmRVW    DrAlgorithm = 4
	DrAlgorithmFVW    DrAlgorithm = 5
	DrAlgorithmFPB    DrAlgorithm = 6
	DrAlgorithmRPB    DrAlgorithm = 7
	DrAlgorithmRVB    DrAlgorithm = 8
	DrAlgorithmFVB    DrAlgorithm = 9
)

func (d DrAlgorithm) String() string {
	names := [...]string{"Other", "Static", "DRM(F,P,W)", "DRM(R,P,W)", "DRM(R,V,W)",
		"DRM(F,V,W)", "DRM(F,P,B)", "DRM(R,P,B)", "DRM(R,V,B)", "DRM(F,V,B)"}
	if int(d) < len(names) {
		return names[d]
	}
	return fmt.Sprintf("Unknown(%d)", uint8(d))
}

// EntityMarkingCharacterSet (SISO table 45).
type EntityMarkingCharacterSet uint8

const (
	EntityMarkingCharacterSetUnused EntityMarkingCharacterSet = 0
	EntityMarkingCharacterSetASCII  EntityMarkingCharacterSet = 1
)

// ApTypeDesignator (articulation parameter record, SISO table 66): whether
// the parameter type field that follows is an ArticulatedParts or
// AttachedParts variant.
type ApTypeDesignator uint8

const (
	ApTypeDesignatorArticulated ApTypeDesignator = 0
	ApTypeDesignatorAttached    ApTypeDesignator = 1
)

// ArticulatedPartsTypeMetric (low bits of the articulated-parts variant's
// parameter type, SISO table 67).
type ArticulatedPartsTypeMetric uint32

const (
	ArticulatedPartsTypeMetricPosition             ArticulatedPartsTypeMetric = 1
	ArticulatedPartsTypeMetricPositionRate         ArticulatedPartsTypeMetric = 2
	ArticulatedPartsTypeMetricExtension            ArticulatedPartsTypeMetric = 3
	ArticulatedPartsTypeMetricExtensionRate        ArticulatedPartsTypeMetric = 4
	ArticulatedPartsTypeMetricX                    ArticulatedPartsTypeMetric = 5
	ArticulatedPartsTypeMetricXRate                ArticulatedPartsTypeMetric = 6
	ArticulatedPartsTypeMetricY                    ArticulatedPartsTypeMetric = 7
	ArticulatedPartsTypeMetricYRate                ArticulatedPartsTypeMetric = 8
	ArticulatedPartsTypeMetricZ                    ArticulatedPartsTypeMetric = 9
	ArticulatedPartsTypeMetricZRate                ArticulatedPartsTypeMetric = 10
	ArticulatedPartsTypeMetricAzimuth              ArticulatedPartsTypeMetric = 11
	ArticulatedPartsTypeMetricAzimuthRate          ArticulatedPartsTypeMetric = 12
	ArticulatedPartsTypeMetricElevation            ArticulatedPartsTypeMetric = 13
	ArticulatedPartsTypeMetricElevationRate        ArticulatedPartsTypeMetric = 14
	ArticulatedPartsTypeMetricRotation             ArticulatedPartsTypeMetric = 15
	ArticulatedPartsTypeMetricRotationRate         ArticulatedPartsTypeMetric = 16
)

// ArticulatedPartsTypeClass (high bits of the articulated-parts variant's
// parameter type, SISO table 68) identifies which movable part is described.
// Values are station-specific; only a handful of common ones are named.
type ArticulatedPartsTypeClass uint32

const (
	ArticulatedPartsTypeClassNone           ArticulatedPartsTypeClass = 0
	ArticulatedPartsTypeClassRudder         ArticulatedPartsTypeClass = 1024
	ArticulatedPartsTypeClassLeftFlap       ArticulatedPartsTypeClass = 1056
	ArticulatedPartsTypeClassRightFlap      ArticulatedPartsTypeClass = 1088
	ArticulatedPartsTypeClassLandingGear    ArticulatedPartsTypeClass = 3072
	ArticulatedPartsTypeClassTailHook       ArticulatedPartsTypeClass = 3104
	ArticulatedPartsTypeClassPrimaryTurret1 ArticulatedPartsTypeClass = 4096
)
