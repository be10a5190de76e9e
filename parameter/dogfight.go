package parameter

import "time"

// Dogfight Mission
const (
	// DogfightMissionTime is the survival duration for victory
	DogfightMissionTime = 180 * time.Second

	// DogfightPlayerHealth and DogfightPlayerShield are starting and cap values
	DogfightPlayerHealth = 100
	DogfightPlayerShield = 100

	// DogfightDefaultPilot is used when no profile is saved
	DogfightDefaultPilot = "X-WING PILOT"

	// DogfightEfficiencyKills is the kill count that rates 100% efficiency
	DogfightEfficiencyKills = 25
)

// Dogfight Player
const (
	// DogfightPlayerSpeed is movement per reference frame
	DogfightPlayerSpeed = 0.35

	// Clamp window for the fighter
	DogfightBoundX    = 18.0
	DogfightBoundYMin = -10.0
	DogfightBoundYMax = 8.0

	// DogfightTilt is the maximum bank/pitch angle, approached by DogfightTiltLerp per frame
	DogfightTilt     = 0.5
	DogfightTiltLerp = 0.1

	// DogfightFireInterval is the minimum time between player volleys
	DogfightFireInterval = 300 * time.Millisecond

	// DogfightPlayerDamage is damage per player laser
	DogfightPlayerDamage = 25

	// DogfightLaserOffsetX and DogfightLaserOffsetZ position the twin cannons
	DogfightLaserOffsetX = 0.8
	DogfightLaserOffsetZ = -1.5

	// DogfightPlayerLaserSpeed travels toward -z
	DogfightPlayerLaserSpeed = 2.2
)

// Dogfight Shield
const (
	DogfightShieldDuration = 4 * time.Second
	DogfightShieldCooldown = 25 * time.Second

	// DogfightShieldMinimum is the shield energy required to activate
	DogfightShieldMinimum = 25
)

// Dogfight Enemies
const (
	DogfightEnemyHealth     = 40
	DogfightEnemyDamage     = 8
	DogfightEnemyFireRate   = 2 * time.Second
	DogfightEnemySpeed      = 0.15
	DogfightSpawnRate       = 0.8
	DogfightSpawnBase       = 2.5 * float64(time.Second)
	DogfightMaxEnemies      = 7
	DogfightPickupChance    = 0.3
	DogfightEnemyLaserSpeed = 0.9

	// DogfightEnemyLaserOffset is the z offset ahead of the enemy where lasers appear
	DogfightEnemyLaserOffset = 2.0

	// Spawn volume
	DogfightSpawnX      = 12.5
	DogfightSpawnY      = 7.5
	DogfightSpawnZNear  = -40.0
	DogfightSpawnZDepth = 20.0

	// DogfightEnemyFarPlane removes enemies that flew past the player
	DogfightEnemyFarPlane = 30.0

	// DogfightLaserFarPlane removes lasers beyond |z|
	DogfightLaserFarPlane = 100.0
)

// Dogfight Collisions
const (
	DogfightLaserHitRadius      = 2.5
	DogfightLaserHitRadiusLarge = 3.5
	DogfightPlayerHitRadius     = 3.5
	DogfightRamRadius           = 5.0
	DogfightRamDamage           = 35
)

// DogfightEnemyType is one row of the enemy table
type DogfightEnemyType struct {
	Weight      float64
	HealthMul   float64
	FireMul     float64
	SpeedMul    float64
	Points      int
	ZigzagX     float64
	BobY        float64
	LargeHitbox bool
}

// DogfightEnemyTypes is indexed by component.EnemyInterceptor..EnemyGroundTargeting
var DogfightEnemyTypes = [3]DogfightEnemyType{
	{Weight: 0.60, HealthMul: 1.0, FireMul: 1.0, SpeedMul: 1.0, Points: 100, ZigzagX: 0.02},
	{Weight: 0.25, HealthMul: 1.1, FireMul: 1.0, SpeedMul: 1.0, Points: 125, ZigzagX: 0.015},
	{Weight: 0.15, HealthMul: 1.3, FireMul: 1.5, SpeedMul: 0.7, Points: 150, BobY: 0.008, LargeHitbox: true},
}

// Dogfight Pickups
const (
	DogfightPickupSpeed     = 0.3
	DogfightPickupRadius    = 3.5
	DogfightPickupFarPlane  = 20.0
	DogfightPickupHeal      = 35
	DogfightPickupShield    = 60
	DogfightPickupAmmoScore = 250
)

// Dogfight Effects
const (
	DogfightExplosionLife = 1500 * time.Millisecond
	DogfightHitLife       = 300 * time.Millisecond
	DogfightAlertLife     = 2 * time.Second
	DogfightPopupLife     = 1 * time.Second
)

// Dogfight Starfield
const (
	DogfightStars         = 220
	DogfightStarSpeed     = 1.8
	DogfightStarFarPlane  = 30.0
	DogfightStarResetZ    = -150.0
	DogfightStarResetBand = 50.0
	DogfightStarSpread    = 100.0
)

// Dogfight Targeting
const (
	DogfightTargetDot   = 0.97
	DogfightTargetRange = 60.0
)

// DogfightRank maps a score threshold to a pilot rank
type DogfightRank struct {
	MinScore int
	Title    string
}

// DogfightRanks is ordered by ascending threshold
var DogfightRanks = []DogfightRank{
	{0, "ROOKIE"},
	{3000, "PILOT"},
	{6000, "VETERAN"},
	{10000, "JEDI ACE"},
	{15000, "JEDI LEGEND"},
}
