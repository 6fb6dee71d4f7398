package constant

// --- Player ---
const (
	// PlayerRadius is the collision radius of the firing entity
	PlayerRadius = 1.0
)

// --- Enemy ---
const (
	// EnemyRadius is the collision radius of every enemy
	EnemyRadius = 1.0

	// EnemyCountMin and EnemyCountMax bound the enemies placed per round (inclusive)
	EnemyCountMin = 2
	EnemyCountMax = 5

	// EnemyPlayerClearance is the minimum center distance between any enemy and the player
	EnemyPlayerClearance = 10.0
)

// --- Obstacle ---
const (
	// ObstacleCountMin and ObstacleCountMax bound the obstacles placed per round (inclusive)
	ObstacleCountMin = 5
	ObstacleCountMax = 15

	// ObstacleRadiusMin and ObstacleRadiusMax bound the obstacle radius to [min, max); max is never drawn
	ObstacleRadiusMin = 2.0
	ObstacleRadiusMax = 6.0

	// ObstacleSidesMin and ObstacleSidesMax bound the cosmetic polygon side count
	ObstacleSidesMin = 3
	ObstacleSidesMax = 15
)

// --- Placement ---
const (
	// PlacementMaxAttempts caps rejection sampling draws per entity
	PlacementMaxAttempts = 10000

	// RoundRetries is the number of fresh placements tried before a round setup error is reported
	RoundRetries = 8
)
