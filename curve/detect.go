package curve

import (
	"github.com/emirpasic/gods/sets/hashset"

	"github.com/lixenwraith/graphwar/vmath"
)

// Kind distinguishes what a sample hit
type Kind uint8

const (
	// KindEnemy is destroyed; the curve continues
	KindEnemy Kind = iota
	// KindObstacle stops the curve at the contact sample
	KindObstacle
)

func (k Kind) String() string {
	switch k {
	case KindEnemy:
		return "enemy"
	case KindObstacle:
		return "obstacle"
	}
	return "unknown"
}

// Circle is the collision shape of an entity
type Circle struct {
	Center vmath.Point
	Radius float64
}

// Event records the first sample that touched an entity
type Event struct {
	Frame  int  // sample index in the point sequence
	Index  int  // entity index in the slice passed to Detect
	Kind   Kind // enemy or obstacle
	Center vmath.Point
}

// Result is the outcome of one shot
type Result struct {
	Points  []vmath.Point // points up to and including Cut
	Events  []Event       // every first contact in frame order, including those past Cut
	Cut     int           // last visible frame, -1 for an empty curve
	Blocked bool          // an obstacle stopped the curve
}

type hitKey struct {
	index int
	kind  Kind
}

// Detect scans points in order against enemies then obstacles
// The lowest obstacle frame truncates the visible curve; enemy hits never do
func Detect(points []vmath.Point, enemies, obstacles []Circle) Result {
	res := Result{Cut: len(points) - 1}
	seen := hashset.New()

	record := func(frame, index int, kind Kind, c Circle) {
		key := hitKey{index: index, kind: kind}
		if seen.Contains(key) {
			return
		}
		seen.Add(key)
		res.Events = append(res.Events, Event{Frame: frame, Index: index, Kind: kind, Center: c.Center})
	}

	for frame, p := range points {
		for i, c := range enemies {
			if vmath.InCircle(p, c.Center, c.Radius) {
				record(frame, i, KindEnemy, c)
			}
		}
		for i, c := range obstacles {
			if vmath.InCircle(p, c.Center, c.Radius) {
				if !res.Blocked {
					res.Blocked = true
					res.Cut = frame
				}
				record(frame, i, KindObstacle, c)
			}
		}
	}

	res.Points = make([]vmath.Point, res.Cut+1)
	copy(res.Points, points)
	return res
}

// Visible returns events at or before the cut
func (r Result) Visible() []Event {
	return r.Reached(r.Cut)
}

// Reached returns visible events whose frame is at most frame
// Used per animation frame to decide which enemies to remove
func (r Result) Reached(frame int) []Event {
	if frame > r.Cut {
		frame = r.Cut
	}
	var out []Event
	for _, ev := range r.Events {
		if ev.Frame <= frame {
			out = append(out, ev)
		}
	}
	return out
}

// Hit reports whether any visible enemy event exists
func (r Result) Hit() bool {
	for _, ev := range r.Visible() {
		if ev.Kind == KindEnemy {
			return true
		}
	}
	return false
}
