package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityInput    = 10
	PriorityPlayer   = 20
	PrioritySpawn    = 30
	PriorityEnemy    = 40
	PriorityBullet   = 50
	PriorityPickup   = 55
	PriorityCombat   = 60 // After all movement, before effects
	PriorityMission  = 70
	PriorityStar     = 80
	PriorityEffect   = 90
	PriorityBoundary = 100
	PriorityCull     = 1000 // Always last, removals after every scan
)

// Render Priorities (lower draws first)
const (
	RenderStars   = 10
	RenderWorld   = 20
	RenderEffects = 30
	RenderHUD     = 40
	RenderOverlay = 50
)
