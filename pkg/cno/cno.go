// Package cno provides a public API for reading CNO and CNOB coastline
// overlay files, the line-overlay formats published with NASA GISS Panoply.
//
// Overlay files hold connected line sequences of longitude,latitude pairs.
// Decode them with DecodeFile, or use a Loader to resolve overlays by name,
// download known overlays on demand, project and clip their coordinates, and
// cache the result.
package cno

import (
	"github.com/dhconnelly/rtreego"

	"github.com/barronh/cno/internal/parser"
)

// Coordinate is a single overlay vertex in output coordinates.
type Coordinate struct {
	X float64
	Y float64

	// Masked marks a vertex outside the viewport, or one the projection
	// could not place. Masked vertices keep their slot so line sequences
	// stay aligned, but their position is meaningless and they must not
	// be drawn.
	Masked bool
}

// Feature is one connected line sequence from an overlay.
//
// Coordinates are in file order. Features fresh from a decoder hold raw
// longitude,latitude values with nothing masked; features from a Pipeline
// hold projected values with out-of-viewport vertices masked.
type Feature struct {
	Coordinates []Coordinate
}

// Bounds returns the bounding box of the feature's unmasked coordinates.
//
// The zero Bounds is returned when the feature has no unmasked coordinates.
func (f *Feature) Bounds() Bounds {
	b, _ := featureBounds(*f)
	return b
}

// Masked reports whether every coordinate in the feature is masked.
func (f *Feature) Masked() bool {
	for _, c := range f.Coordinates {
		if !c.Masked {
			return false
		}
	}
	return true
}

// FeatureSet holds the features decoded from one overlay source.
//
// Features keep their file order. Access them via Features, FeatureCount,
// or FeaturesInBounds for viewport queries backed by a spatial index.
//
// All fields are private to maintain encapsulation.
type FeatureSet struct {
	features     []Feature
	spatialIndex *spatialIndex
	bounds       Bounds
	warnings     []error
}

// NewFeatureSet builds a feature set and its spatial index.
//
// Warnings are non-fatal conditions observed while producing the features,
// such as a binary overlay with a malformed header.
func NewFeatureSet(features []Feature, warnings ...error) *FeatureSet {
	set := &FeatureSet{
		features: features,
		warnings: warnings,
	}
	set.buildSpatialIndex()
	return set
}

// Features returns all features in file order.
func (s *FeatureSet) Features() []Feature {
	return s.features
}

// FeatureCount returns the number of features in the set.
func (s *FeatureSet) FeatureCount() int {
	return len(s.features)
}

// Bounds returns the bounding box containing all unmasked coordinates.
func (s *FeatureSet) Bounds() Bounds {
	return s.bounds
}

// Warnings returns the non-fatal conditions observed while producing the
// set. A non-empty result does not mean the features are unusable.
func (s *FeatureSet) Warnings() []error {
	return s.warnings
}

// spatialIndex provides O(log n) spatial queries using an R-tree.
type spatialIndex struct {
	rtree *rtreego.Rtree
}

// indexedFeature wraps a feature for R-tree storage.
type indexedFeature struct {
	feature Feature
	bounds  Bounds
}

// Bounds implements rtreego.Spatial.
func (f *indexedFeature) Bounds() rtreego.Rect {
	point := rtreego.Point{f.bounds.MinX, f.bounds.MinY}

	// R-tree rectangles need non-zero dimensions; pad degenerate
	// features (single points, straight horizontal or vertical lines).
	xLength := f.bounds.MaxX - f.bounds.MinX
	yLength := f.bounds.MaxY - f.bounds.MinY
	const epsilon = 0.0001
	if xLength < epsilon {
		xLength = epsilon
	}
	if yLength < epsilon {
		yLength = epsilon
	}

	rect, _ := rtreego.NewRect(point, []float64{xLength, yLength})
	return rect
}

// FeaturesInBounds returns all features whose bounding box intersects the
// given box.
//
// This is the primary query for viewport rendering: only features that
// could be visible are returned. Results come from the R-tree index, with a
// linear scan as fallback.
//
// Example:
//
//	viewport := cno.Bounds{MinX: -10, MaxX: 10, MinY: 30, MaxY: 45}
//	for _, feature := range set.FeaturesInBounds(viewport) {
//	    render(feature)
//	}
func (s *FeatureSet) FeaturesInBounds(bounds Bounds) []Feature {
	if s.spatialIndex == nil || s.spatialIndex.rtree == nil {
		return s.featuresInBoundsLinear(bounds)
	}

	point := rtreego.Point{bounds.MinX, bounds.MinY}
	xLength := bounds.MaxX - bounds.MinX
	yLength := bounds.MaxY - bounds.MinY
	const epsilon = 0.0001
	if xLength < epsilon {
		xLength = epsilon
	}
	if yLength < epsilon {
		yLength = epsilon
	}
	queryRect, _ := rtreego.NewRect(point, []float64{xLength, yLength})

	spatials := s.spatialIndex.rtree.SearchIntersect(queryRect)

	result := make([]Feature, 0, len(spatials))
	for _, spatial := range spatials {
		indexed := spatial.(*indexedFeature)
		result = append(result, indexed.feature)
	}
	return result
}

// featuresInBoundsLinear performs linear search when no spatial index exists.
func (s *FeatureSet) featuresInBoundsLinear(bounds Bounds) []Feature {
	result := make([]Feature, 0)
	for _, feature := range s.features {
		fb, ok := featureBounds(feature)
		if ok && bounds.Intersects(fb) {
			result = append(result, feature)
		}
	}
	return result
}

// buildSpatialIndex creates the R-tree index and the set bounds.
// Features with no unmasked coordinates have no extent and are not indexed.
func (s *FeatureSet) buildSpatialIndex() {
	if len(s.features) == 0 {
		return
	}

	// 2D R-tree, min 25 / max 50 children per node.
	rtree := rtreego.NewTree(2, 25, 50)

	var setBounds *Bounds
	for _, feature := range s.features {
		fb, ok := featureBounds(feature)
		if !ok {
			continue
		}

		rtree.Insert(&indexedFeature{
			feature: feature,
			bounds:  fb,
		})

		if setBounds == nil {
			b := fb
			setBounds = &b
		} else {
			b := setBounds.Union(fb)
			setBounds = &b
		}
	}

	s.spatialIndex = &spatialIndex{rtree: rtree}
	if setBounds != nil {
		s.bounds = *setBounds
	}
}

// newFeatureSetFromOverlay converts a raw parse result to the public types.
func newFeatureSetFromOverlay(overlay *parser.Overlay) *FeatureSet {
	features := make([]Feature, len(overlay.Features))
	for i, f := range overlay.Features {
		coords := make([]Coordinate, len(f.Coordinates))
		for j, c := range f.Coordinates {
			coords[j] = Coordinate{X: c[0], Y: c[1]}
		}
		features[i] = Feature{Coordinates: coords}
	}
	return NewFeatureSet(features, overlay.Warnings...)
}
