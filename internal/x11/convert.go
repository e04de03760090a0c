package x11

import "math"

// ClampCoord saturates a coordinate into the protocol's INT16 range.
func ClampCoord(v int) int16 {
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	default:
		return int16(v)
	}
}

// ClampSize saturates a dimension into [1, MaxInt16]. The server rejects
// zero-sized windows, and xwindow.Configure reads sizes as int16, turning
// anything larger into 1.
func ClampSize(v int) uint16 {
	switch {
	case v < 1:
		return 1
	case v > math.MaxInt16:
		return math.MaxInt16
	default:
		return uint16(v)
	}
}
