package enumerations

// The enums in this file back the sub-byte fields of the EntityState
// appearance record (spec.md §4.5 / C5). Each one is small enough that its
// wire width is a uint8 even though the field itself occupies 1-3 bits;
// From-/ToPrimitive is the identity conversion documented in doc.go.

type EntityPaintScheme uint8

const (
	EntityPaintSchemeUniformColor EntityPaintScheme = 0
	EntityPaintSchemeCamouflage   EntityPaintScheme = 1
)

type EntityMobilityKill uint8

const (
	EntityMobilityKillNoMobilityKill EntityMobilityKill = 0
	EntityMobilityKillMobilityKill   EntityMobilityKill = 1
)

type EntityFirePower uint8

const (
	EntityFirePowerNoFirePowerKill EntityFirePower = 0
	EntityFirePowerFirePowerKill   EntityFirePower = 1
)

type EntityDamage uint8

const (
	EntityDamageNoDamage       EntityDamage = 0
	EntityDamageSlightDamage   EntityDamage = 1
	EntityDamageModerateDamage EntityDamage = 2
	EntityDamageDestroyed      EntityDamage = 3
)

type EntitySmoke uint8

const (
	EntitySmokeNotSmoking                            EntitySmoke = 0
	EntitySmokeSmokePlumeRising                       EntitySmoke = 1
	EntitySmokeEmittingEngineSmoke                    EntitySmoke = 2
	EntitySmokeEmittingEngineSmokeAndSmokePlumeRising EntitySmoke = 3
)

type EntityTrailingEffect uint8

const (
	EntityTrailingEffectNone   EntityTrailingEffect = 0
	EntityTrailingEffectSmall  EntityTrailingEffect = 1
	EntityTrailingEffectMedium EntityTrailingEffect = 2
	EntityTrailingEffectLarge  EntityTrailingEffect = 3
)

type EntityHatchState uint8

const (
	EntityHatchStateNotApplicable          EntityHatchState = 0
	EntityHatchStateClosed                  EntityHatchState = 1
	EntityHatchStatePopped                  EntityHatchState = 2
	EntityHatchStatePoppedAndPersonVisible  EntityHatchState = 3
	EntityHatchStateOpen                    EntityHatchState = 4
	EntityHatchStateOpenAndPersonVisible    EntityHatchState = 5
)

type EntityLights uint8

const (
	EntityLightsNone               EntityLights = 0
	EntityLightsRunningLightsOn    EntityLights = 1
	EntityLightsNavigationLightsOn EntityLights = 2
	EntityLightsFormationLightsOn  EntityLights = 3
)

type EntityFlamingEffect uint8

const (
	EntityFlamingEffectNone          EntityFlamingEffect = 0
	EntityFlamingEffectFlamesPresent EntityFlamingEffect = 1
)

// Land platform specific-appearance sub-fields.

type Launcher uint8

const (
	LauncherNotRaised Launcher = 0
	LauncherRaised    Launcher = 1
)

type Camouflage uint8

const (
	CamouflageDesert Camouflage = 0
	CamouflageWinter Camouflage = 1
	CamouflageForest Camouflage = 2
)

type Concealed uint8

const (
	ConcealedNotConcealed Concealed = 0
	ConcealedConcealed    Concealed = 1
)

type FrozenStatus uint8

const (
	FrozenStatusNotFrozen FrozenStatus = 0
	FrozenStatusFrozen    FrozenStatus = 1
)

type PowerPlantStatus uint8

const (
	PowerPlantStatusOff PowerPlantStatus = 0
	PowerPlantStatusOn  PowerPlantStatus = 1
)

// PlatformOperationalState is the "State" sub-field shared by every
// platform-domain specific-appearance record (land/air/surface/subsurface/
// space/guided munition). Named to avoid colliding with Go's many other uses
// of "State".
type PlatformOperationalState uint8

const (
	PlatformOperationalStateActive      PlatformOperationalState = 0
	PlatformOperationalStateDeactivated PlatformOperationalState = 1
)

type Tent uint8

const (
	TentNotExtended Tent = 0
	TentExtended    Tent = 1
)

type Ramp uint8

const (
	RampUp   Ramp = 0
	RampDown Ramp = 1
)

type Afterburner uint8

const (
	AfterburnerNotOn Afterburner = 0
	AfterburnerOn    Afterburner = 1
)

type LaunchFlash uint8

const (
	LaunchFlashNotPresent LaunchFlash = 0
	LaunchFlashPresent    LaunchFlash = 1
)

type LifeFormsState uint8

const (
	LifeFormsStateNull                   LifeFormsState = 0
	LifeFormsStateUprightStandingStill   LifeFormsState = 1
	LifeFormsStateUprightWalking         LifeFormsState = 2
	LifeFormsStateUprightRunning         LifeFormsState = 3
	LifeFormsStateKneeling               LifeFormsState = 4
	LifeFormsStateProne                  LifeFormsState = 5
	LifeFormsStateCrawling               LifeFormsState = 6
	LifeFormsStateSwimming               LifeFormsState = 7
	LifeFormsStateParachuting            LifeFormsState = 8
	LifeFormsStateJumping                LifeFormsState = 9
)

type ActivityState uint8

const (
	ActivityStateActive      ActivityState = 0
	ActivityStateDeactivated ActivityState = 1
)

type Weapon uint8

const (
	WeaponNotPresent    Weapon = 0
	WeaponStowed        Weapon = 1
	WeaponDeployed      Weapon = 2
	WeaponFiringPosition Weapon = 3
)

type Density uint8

const (
	DensityClear     Density = 0
	DensityHazy      Density = 1
	DensityDense     Density = 2
	DensityVeryDense Density = 3
	DensityOpaque    Density = 4
)
