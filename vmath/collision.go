package vmath

// InCircle reports whether p lies inside or on the circle (center, radius)
// Boundary contact counts as a hit
func InCircle(p, center Point, radius float64) bool {
	if radius < 0 {
		return false
	}
	return DistanceSq(p, center) <= radius*radius
}

// CirclesSeparated reports whether two circles are strictly apart
// (center distance greater than the sum of radii, tangency is overlap)
func CirclesSeparated(c1 Point, r1 float64, c2 Point, r2 float64) bool {
	return Distance(c1, c2) > r1+r2
}
