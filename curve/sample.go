package curve

import (
	"math"

	"github.com/lixenwraith/graphwar/constant"
	"github.com/lixenwraith/graphwar/vmath"
)

// Evaluator is anything that maps x to y or reports that the point does not exist
type Evaluator interface {
	Evaluate(x float64) (float64, error)
}

// Domain is a curve-local x interval, both ends inclusive
type Domain struct {
	Min, Max float64
}

// DefaultDomain covers the whole field
func DefaultDomain() Domain {
	return Domain{Min: constant.CurveDomainMin, Max: constant.CurveDomainMax}
}

// Follow widens the domain by |origin.X| on both ends so a curve anchored
// away from the center still spans the field
func (d Domain) Follow(origin vmath.Point) Domain {
	off := math.Abs(origin.X)
	return Domain{Min: d.Min - off, Max: d.Max + off}
}

// maxSampleIndex keeps sample indices exactly representable as float64
const maxSampleIndex = 1 << 52

// Count returns the number of samples Sample takes over d, 0 when d is unusable
// and -1 when it exceeds constant.MaxCurveSamples
func (d Domain) Count(resolution int) int {
	if resolution <= 0 || d.Max < d.Min || !vmath.IsFinite(d.Min) || !vmath.IsFinite(d.Max) {
		return 0
	}
	res := float64(resolution)
	first := math.Round(d.Min * res)
	last := math.Round(d.Max * res)
	if math.Abs(first) > maxSampleIndex || math.Abs(last) > maxSampleIndex {
		return -1
	}
	n := last - first + 1
	if n > constant.MaxCurveSamples {
		return -1
	}
	return int(n)
}

// Sample evaluates e every 1/resolution units across d and anchors the
// retained points at origin. Samples that fail or are non-finite are dropped.
// A domain wider than constant.MaxCurveSamples allows yields no points.
func Sample(e Evaluator, origin vmath.Point, d Domain, resolution int) []vmath.Point {
	n := d.Count(resolution)
	if n <= 0 {
		return []vmath.Point{}
	}

	res := float64(resolution)
	first := int(math.Round(d.Min * res))
	last := first + n - 1

	points := make([]vmath.Point, 0, n)
	for i := first; i <= last; i++ {
		x := float64(i) / res
		y, err := e.Evaluate(x)
		if err != nil || !vmath.IsFinite(y) {
			continue
		}
		p := vmath.Point{X: x + origin.X, Y: y + origin.Y}
		if !p.IsFinite() {
			continue
		}
		points = append(points, p)
	}
	return points
}
