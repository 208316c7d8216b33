package parser

// ValidateCoordinate validates a single coordinate pair
// Overlay coordinates must be within valid geographic bounds
func ValidateCoordinate(lon, lat float64) error {
	if lat < -90.0 || lat > 90.0 {
		return &ErrInvalidCoordinate{Lon: lon, Lat: lat}
	}
	if lon < -180.0 || lon > 180.0 {
		return &ErrInvalidCoordinate{Lon: lon, Lat: lat}
	}
	return nil
}

// validateOverlay checks every coordinate pair against the geographic range.
// The first out-of-range pair fails the whole decode; partial overlays are
// never returned.
func validateOverlay(o *Overlay) error {
	for _, feature := range o.Features {
		for _, coord := range feature.Coordinates {
			if err := ValidateCoordinate(coord[0], coord[1]); err != nil {
				return err
			}
		}
	}
	return nil
}
