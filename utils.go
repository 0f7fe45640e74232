package scad

import "math"

const (
	// MillimetresPerInch is millimetres per inch (25.4)
	MillimetresPerInch = 25.4
	// InchesPerMillimetre is inches per millimetre
	InchesPerMillimetre = 1.0 / MillimetresPerInch
)

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return degrees / 180 * math.Pi
}

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Sign returns the sign of x. Sign(0) is 0.
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// Finite reports whether x is neither NaN nor an infinity.
func Finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
