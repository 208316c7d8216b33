package cno

// Bounds represents an axis-aligned bounding box in output coordinates.
//
// For unprojected overlays X is longitude and Y is latitude in decimal
// degrees; after a projection the units are whatever the projection emits.
type Bounds struct {
	MinX float64 // Western edge
	MaxX float64 // Eastern edge
	MinY float64 // Southern edge
	MaxY float64 // Northern edge
}

// Contains returns true if the point (x, y) is within the bounds.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX &&
		y >= b.MinY && y <= b.MaxY
}

// Intersects returns true if the given bounds intersects with this bounds.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.MaxX < b.MinX ||
		other.MinX > b.MaxX ||
		other.MaxY < b.MinY ||
		other.MinY > b.MaxY)
}

// Union returns the smallest bounds containing both this and other.
func (b Bounds) Union(other Bounds) Bounds {
	result := b
	if other.MinX < result.MinX {
		result.MinX = other.MinX
	}
	if other.MaxX > result.MaxX {
		result.MaxX = other.MaxX
	}
	if other.MinY < result.MinY {
		result.MinY = other.MinY
	}
	if other.MaxY > result.MaxY {
		result.MaxY = other.MaxY
	}
	return result
}

// Expand returns a new Bounds expanded by the given margin in all directions.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		MinX: b.MinX - margin,
		MaxX: b.MaxX + margin,
		MinY: b.MinY - margin,
		MaxY: b.MaxY + margin,
	}
}

// featureBounds calculates the bounding box of a feature's unmasked
// coordinates. ok is false when the feature has none.
func featureBounds(f Feature) (bounds Bounds, ok bool) {
	for _, coord := range f.Coordinates {
		if coord.Masked {
			continue
		}
		if !ok {
			bounds = Bounds{
				MinX: coord.X,
				MaxX: coord.X,
				MinY: coord.Y,
				MaxY: coord.Y,
			}
			ok = true
			continue
		}
		if coord.X < bounds.MinX {
			bounds.MinX = coord.X
		}
		if coord.X > bounds.MaxX {
			bounds.MaxX = coord.X
		}
		if coord.Y < bounds.MinY {
			bounds.MinY = coord.Y
		}
		if coord.Y > bounds.MaxY {
			bounds.MaxY = coord.Y
		}
	}
	return bounds, ok
}
