package enumerations

import "fmt"

// MunitionDescriptorWarhead (SISO table 61): a subset of the warhead table
// used by the Munition-variant Fire/Detonation descriptor record.
type MunitionDescriptorWarhead uint16

const (
	MunitionDescriptorWarheadOther           MunitionDescriptorWarhead = 0
	MunitionDescriptorWarheadCargoVariable   MunitionDescriptorWarhead = 10
	MunitionDescriptorWarheadHighExplosive   MunitionDescriptorWarhead = 1000
	MunitionDescriptorWarheadSmoke           MunitionDescriptorWarhead = 2000
	MunitionDescriptorWarheadIllumination    MunitionDescriptorWarhead = 3000
	MunitionDescriptorWarheadPractice        MunitionDescriptorWarhead = 4000
	MunitionDescriptorWarheadKinetic         MunitionDescriptorWarhead = 5000
	MunitionDescriptorWarheadNuclear         MunitionDescriptorWarhead = 8000
)

func (w MunitionDescriptorWarhead) String() string {
	switch w {
	case MunitionDescriptorWarheadOther:
		return "Other"
	case MunitionDescriptorWarheadCargoVariable:
		return "CargoVariable"
	case MunitionDescriptorWarheadHighExplosive:
		return "HighExplosive"
	case MunitionDescriptorWarheadSmoke:
		return "Smoke"
	case MunitionDescriptorWarheadIllumination:
		return "Illumination"
	case MunitionDescriptorWarheadPractice:
		return "Practice"
	case MunitionDescriptorWarheadKinetic:
		return "Kinetic"
	case MunitionDescriptorWarheadNuclear:
		return "Nuclear"
	default:
		return fmt.Sprintf("Unknown(%d)", uint16(w))
	}
}

// MunitionDescriptorFuse (SISO table 62): a subset of the fuse table.
type MunitionDescriptorFuse uint16

const (
	MunitionDescriptorFuseOther        MunitionDescriptorFuse = 0
	MunitionDescriptorFuseContact      MunitionDescriptorFuse = 1000
	MunitionDescriptorFuseTimed        MunitionDescriptorFuse = 2000
	MunitionDescriptorFuseProximity    MunitionDescriptorFuse = 3000
	MunitionDescriptorFuseCommand      MunitionDescriptorFuse = 4000
	MunitionDescriptorFuseAltitude     MunitionDescriptorFuse = 5000
	MunitionDescriptorFuseDepth        MunitionDescriptorFuse = 6000
)

// DetonationResult (SISO table 63): outcome recorded in a Detonation PDU.
type DetonationResult uint8

const (
	DetonationResultOther                          DetonationResult = 0
	DetonationResultEntityImpact                    DetonationResult = 1
	DetonationResultEntityProximateDetonation        DetonationResult = 2
	DetonationResultGroundImpact                    DetonationResult = 3
	DetonationResultGroundProximateDetonation        DetonationResult = 4
	DetonationResultDetonation                      DetonationResult = 5
	DetonationResultNoneDudFire                     DetonationResult = 6
	DetonationResultNoneTrackingDropped              DetonationResult = 9
)

func (d DetonationResult) String() string {
	switch d {
	case DetonationResultOther:
		return "Other"
	case DetonationResultEntityImpact:
		return "EntityImpact"
	case DetonationResultEntityProximateDetonation:
		return "EntityProximateDetonation"
	case DetonationResultGroundImpact:
		return "GroundImpact"
	case DetonationResultGroundProximateDetonation:
		return "GroundProximateDetonation"
	case DetonationResultDetonation:
		return "Detonation"
	case DetonationResultNoneDudFire:
		return "NoneOrDudFire"
	case DetonationResultNoneTrackingDropped:
		return "NoneTrackingImpractical"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(d))
	}
}
