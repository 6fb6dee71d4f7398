package vmath

import "math"

// Point is a position in logical field units
type Point struct {
	X, Y float64
}

// Add returns p translated by q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// IsFinite reports whether both coordinates are finite
func (p Point) IsFinite() bool {
	return IsFinite(p.X) && IsFinite(p.Y)
}

// DistanceSq returns squared Euclidean distance without sqrt
func DistanceSq(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Distance returns Euclidean distance
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
