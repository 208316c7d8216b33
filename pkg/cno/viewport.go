package cno

// Viewport bounds the plotted extent along each axis independently.
//
// Each limit is optional: a nil pointer leaves that side open. Limits apply
// in output coordinates, after any projection. Coordinates beyond a limit
// are masked, not removed, so line sequences keep their shape.
//
// Example:
//
//	// Western hemisphere only, all latitudes.
//	viewport := cno.Viewport{
//	    XMin: cno.Float64(-180),
//	    XMax: cno.Float64(0),
//	}
type Viewport struct {
	XMin *float64
	XMax *float64
	YMin *float64
	YMax *float64
}

// Float64 returns a pointer to v, for building viewport literals.
func Float64(v float64) *float64 {
	return &v
}

// Unbounded reports whether the viewport sets no limit on either axis.
func (v Viewport) Unbounded() bool {
	return v.XMin == nil && v.XMax == nil && v.YMin == nil && v.YMax == nil
}
