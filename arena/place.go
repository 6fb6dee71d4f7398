package arena

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lixenwraith/graphwar/constant"
	"github.com/lixenwraith/graphwar/vmath"
)

// Sentinel errors
var (
	ErrPlacementExhausted = errors.New("placement attempts exhausted")
	ErrInvalidRound       = errors.New("round violates placement invariants")
)

// Rules bound one round's placement
type Rules struct {
	HalfExtent float64 // centers are drawn in [-HalfExtent, HalfExtent]^2

	ObstacleCountMin, ObstacleCountMax   int
	ObstacleRadiusMin, ObstacleRadiusMax float64
	ObstacleSidesMin, ObstacleSidesMax   int

	PlayerRadius float64

	EnemyCountMin, EnemyCountMax int
	EnemyRadius                  float64
	EnemyClearance               float64 // minimum enemy-to-player center distance

	MaxAttempts int // draws per entity before giving up
}

// DefaultRules returns the standard round bounds
func DefaultRules() Rules {
	return Rules{
		HalfExtent:        constant.FieldHalfExtent,
		ObstacleCountMin:  constant.ObstacleCountMin,
		ObstacleCountMax:  constant.ObstacleCountMax,
		ObstacleRadiusMin: constant.ObstacleRadiusMin,
		ObstacleRadiusMax: constant.ObstacleRadiusMax,
		ObstacleSidesMin:  constant.ObstacleSidesMin,
		ObstacleSidesMax:  constant.ObstacleSidesMax,
		PlayerRadius:      constant.PlayerRadius,
		EnemyCountMin:     constant.EnemyCountMin,
		EnemyCountMax:     constant.EnemyCountMax,
		EnemyRadius:       constant.EnemyRadius,
		EnemyClearance:    constant.EnemyPlayerClearance,
		MaxAttempts:       constant.PlacementMaxAttempts,
	}
}

// placer accumulates accepted entities for rejection sampling
type placer struct {
	rng   *vmath.FastRand
	rules Rules
	taken []Entity
}

// PlaceRound places obstacles, then the player, then enemies
// Every candidate is redrawn until it clears all previously placed entities
func PlaceRound(rng *vmath.FastRand, rules Rules) (*Round, error) {
	p := &placer{rng: rng, rules: rules}
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return nil, fmt.Errorf("round id: %w", err)
	}
	r := &Round{ID: id}

	obstacles := rng.IntRange(rules.ObstacleCountMin, rules.ObstacleCountMax)
	for i := 0; i < obstacles; i++ {
		e := Entity{
			Kind:   KindObstacle,
			Radius: rng.FloatRange(rules.ObstacleRadiusMin, rules.ObstacleRadiusMax),
			Sides:  rng.IntRange(rules.ObstacleSidesMin, rules.ObstacleSidesMax),
		}
		placed, err := p.place(e, nil)
		if err != nil {
			return nil, fmt.Errorf("obstacle %d of %d: %w", i+1, obstacles, err)
		}
		r.Obstacles = append(r.Obstacles, placed)
	}

	player, err := p.place(Entity{Kind: KindPlayer, Radius: rules.PlayerRadius}, nil)
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	r.Player = player

	clearOfPlayer := func(c vmath.Point) bool {
		return vmath.Distance(c, player.Center) > rules.EnemyClearance
	}
	enemies := rng.IntRange(rules.EnemyCountMin, rules.EnemyCountMax)
	for i := 0; i < enemies; i++ {
		placed, err := p.place(Entity{Kind: KindEnemy, Radius: rules.EnemyRadius}, clearOfPlayer)
		if err != nil {
			return nil, fmt.Errorf("enemy %d of %d: %w", i+1, enemies, err)
		}
		r.Enemies = append(r.Enemies, placed)
	}

	return r, nil
}

// place draws centers until e clears every taken entity and the extra check
func (p *placer) place(e Entity, extra func(vmath.Point) bool) (Entity, error) {
	h := p.rules.HalfExtent
	for attempt := 0; attempt < p.rules.MaxAttempts; attempt++ {
		e.Center = vmath.Point{
			X: p.rng.FloatRange(-h, h),
			Y: p.rng.FloatRange(-h, h),
		}
		if extra != nil && !extra(e.Center) {
			continue
		}
		if p.fits(e) {
			p.taken = append(p.taken, e)
			return e, nil
		}
	}
	return Entity{}, fmt.Errorf("%w after %d draws", ErrPlacementExhausted, p.rules.MaxAttempts)
}

func (p *placer) fits(e Entity) bool {
	for _, t := range p.taken {
		if e.Overlaps(t) {
			return false
		}
	}
	return true
}

// Validate re-checks the non-overlap and enemy clearance invariants
func (r *Round) Validate(rules Rules) error {
	all := r.All()
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			if all[i].Overlaps(all[j]) {
				return fmt.Errorf("%w: %s %v overlaps %s %v",
					ErrInvalidRound, all[i].Kind, all[i].Center, all[j].Kind, all[j].Center)
			}
		}
	}
	for _, e := range r.Enemies {
		if vmath.Distance(e.Center, r.Player.Center) <= rules.EnemyClearance {
			return fmt.Errorf("%w: enemy %v within %g of player", ErrInvalidRound, e.Center, rules.EnemyClearance)
		}
	}
	return nil
}
