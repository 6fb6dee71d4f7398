package arena

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/graphwar/curve"
	"github.com/lixenwraith/graphwar/vmath"
)

// Kind identifies an entity role within a round
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindObstacle
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindObstacle:
		return "obstacle"
	}
	return "unknown"
}

// Entity is a circular game object
type Entity struct {
	Kind   Kind
	Center vmath.Point
	Radius float64
	Sides  int // obstacle polygon side count, cosmetic only
}

// Circle returns the collision shape used by the detector
func (e Entity) Circle() curve.Circle {
	return curve.Circle{Center: e.Center, Radius: e.Radius}
}

// Overlaps reports whether two entity circles touch or intersect
func (e Entity) Overlaps(o Entity) bool {
	return !vmath.CirclesSeparated(e.Center, e.Radius, o.Center, o.Radius)
}

// Round is one randomized placement of player, enemies and obstacles
type Round struct {
	ID        uuid.UUID
	Player    Entity
	Enemies   []Entity
	Obstacles []Entity
}

// All returns every entity, obstacles first in placement order
func (r *Round) All() []Entity {
	all := make([]Entity, 0, len(r.Obstacles)+1+len(r.Enemies))
	all = append(all, r.Obstacles...)
	all = append(all, r.Player)
	all = append(all, r.Enemies...)
	return all
}

// Circles converts entities to collision shapes in the same order
func Circles(entities []Entity) []curve.Circle {
	out := make([]curve.Circle, len(entities))
	for i, e := range entities {
		out[i] = e.Circle()
	}
	return out
}
