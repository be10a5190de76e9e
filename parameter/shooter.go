package parameter

// Shooter Player
const (
	// ShooterPlayerHealth is the starting and maximum player health
	ShooterPlayerHealth = 100

	// ShooterPlayerSpeed is player movement per reference frame
	ShooterPlayerSpeed = 0.2

	// ShooterPlayerTilt is the bank angle applied while strafing
	ShooterPlayerTilt = 0.3

	// ShooterBoundX and ShooterBoundZ clamp the player on the play plane
	ShooterBoundX = 15.0
	ShooterBoundZ = 10.0
)

// Shooter Bullets
const (
	// ShooterBulletSpeed is bullet travel toward +z per reference frame
	ShooterBulletSpeed = 0.5

	// ShooterBulletDamage is health removed from an enemy per bullet
	ShooterBulletDamage = 1

	// ShooterBulletSpawnOffset is the z distance ahead of the player where bullets appear
	ShooterBulletSpawnOffset = 2.0

	// ShooterBulletFarPlane removes bullets beyond this z
	ShooterBulletFarPlane = 50.0

	// ShooterBulletHitRadius is the bullet versus enemy collision distance
	ShooterBulletHitRadius = 1.5
)

// Shooter Enemies
const (
	// ShooterMaxEnemies caps enemies on screen
	ShooterMaxEnemies = 10

	// ShooterCollisionRadius is the enemy versus player collision distance
	ShooterCollisionRadius = 2.0

	// ShooterCollisionDamage is player damage from an enemy collision
	ShooterCollisionDamage = 10

	// ShooterKillPoints is awarded once per destroyed enemy
	ShooterKillPoints = 100

	// Spawn band: enemies enter at these offsets on one of four sides
	ShooterSpawnTop    = 20.0
	ShooterSpawnBottom = -20.0
	ShooterSpawnRight  = 30.0
	ShooterSpawnLeft   = -30.0
	ShooterSpawnSpread = 30.0
	ShooterSpawnDepth  = 20.0
)

// ShooterDifficulty is one row of the difficulty table
type ShooterDifficulty struct {
	SpawnChance float64 // Probability per tick
	SpeedBase   float64
	SpeedJitter float64
	Health      int
}

// ShooterDifficulties is indexed by core.Difficulty
var ShooterDifficulties = [3]ShooterDifficulty{
	{SpawnChance: 0.01, SpeedBase: 0.03, SpeedJitter: 0.02, Health: 1},
	{SpawnChance: 0.02, SpeedBase: 0.05, SpeedJitter: 0.03, Health: 2},
	{SpawnChance: 0.03, SpeedBase: 0.08, SpeedJitter: 0.04, Health: 3},
}

// Shooter Effects
const (
	// ShooterExplosionParticles is particle count per explosion
	ShooterExplosionParticles = 20

	// ShooterExplosionLifeFrames is frames until an explosion particle fades (life 1.0, -0.03 per frame)
	ShooterExplosionLifeFrames = 33

	// ShooterHitFlashFrames is frames for the hit flash to fade (opacity -0.1 per frame)
	ShooterHitFlashFrames = 10

	// ShooterStars is the background star count
	ShooterStars = 120
)
