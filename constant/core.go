package constant

import "time"

// Field geometry (logical plot units)
const (
	// FieldHalfExtent bounds the visible field to [-FieldHalfExtent, FieldHalfExtent] on both axes
	FieldHalfExtent = 25.0

	// CurveDomainMin and CurveDomainMax are the default curve-local sampling interval
	CurveDomainMin = -FieldHalfExtent
	CurveDomainMax = FieldHalfExtent

	// CurveResolution is the number of samples per x unit
	CurveResolution = 100

	// MaxCurveSamples caps the samples of one curve; wider domains produce no points
	MaxCurveSamples = 1 << 20
)

// Reveal animation
const (
	// FrameDuration is the time one curve sample takes to appear during the reveal animation
	FrameDuration = 2 * time.Millisecond
)
