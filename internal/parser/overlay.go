package parser

// Feature is one connected line sequence from an overlay file.
//
// Coordinates are [longitude, latitude] pairs in file order, decimal degrees.
// Both formats store a flat run of values; the decoders pair them up and
// reject runs with an odd count.
type Feature struct {
	Coordinates [][]float64
}

// Overlay holds the parse result for one file.
//
// Warnings carries non-fatal conditions observed during decoding, such as a
// binary file with a malformed header. A non-empty Warnings slice does not
// mean the features are unusable.
type Overlay struct {
	Features []Feature
	Warnings []error
}

// FeatureCount returns the number of features in the overlay.
func (o *Overlay) FeatureCount() int {
	return len(o.Features)
}

// CoordinateCount returns the total number of coordinate pairs across all
// features.
func (o *Overlay) CoordinateCount() int {
	count := 0
	for _, f := range o.Features {
		count += len(f.Coordinates)
	}
	return count
}
