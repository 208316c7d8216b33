package cno

import (
	"math"
)

// Projection maps a geographic coordinate to output coordinates.
//
// Any function with this shape serves: a map projection, an affine screen
// transform, or Identity. A projection signals an unplaceable point by
// returning NaN for either output; the pipeline masks such points on both
// axes.
type Projection func(lon, lat float64) (x, y float64)

// Identity returns coordinates unchanged. It stands in for a nil projection
// so the transform loop never branches on the function being set.
func Identity(lon, lat float64) (x, y float64) {
	return lon, lat
}

// Pipeline projects decoded features into output coordinates and masks
// those outside a viewport.
//
// Masking is per coordinate and per axis: a coordinate is masked when its x
// falls outside the x limits or its y falls outside the y limits. A feature
// is dropped entirely when all of its x values are masked, or all of its y
// values are masked, since no segment of it could be drawn.
type Pipeline struct {
	proj     Projection
	viewport Viewport
}

// NewPipeline builds a pipeline. A nil projection means Identity.
func NewPipeline(proj Projection, viewport Viewport) *Pipeline {
	if proj == nil {
		proj = Identity
	}
	return &Pipeline{
		proj:     proj,
		viewport: viewport,
	}
}

// Viewport returns the pipeline's viewport.
func (p *Pipeline) Viewport() Viewport {
	return p.viewport
}

// Apply transforms and clips features, returning the survivors.
//
// The input is never mutated. Surviving features keep their coordinate
// count, with out-of-viewport vertices carrying the Masked flag.
func (p *Pipeline) Apply(features []Feature) []Feature {
	result := make([]Feature, 0, len(features))
	for _, feature := range features {
		if out, ok := p.transformFeature(feature); ok {
			result = append(result, out)
		}
	}
	return result
}

// Transform applies the pipeline to a whole set, carrying warnings through.
func (p *Pipeline) Transform(set *FeatureSet) *FeatureSet {
	return NewFeatureSet(p.Apply(set.Features()), set.Warnings()...)
}

// transformFeature projects and masks one feature. ok is false when the
// feature should be dropped.
func (p *Pipeline) transformFeature(feature Feature) (Feature, bool) {
	coords := make([]Coordinate, len(feature.Coordinates))
	allXMasked := true
	allYMasked := true

	for i, c := range feature.Coordinates {
		x, y := p.proj(c.X, c.Y)

		// Masks are tracked per axis: a coordinate masked only in x
		// still counts as placed in y, which keeps a feature alive
		// when different vertices leave the viewport on different
		// axes. Already-masked input stays masked.
		xMasked := c.Masked
		yMasked := c.Masked
		if v := p.viewport.XMin; v != nil && x < *v {
			xMasked = true
		}
		if v := p.viewport.XMax; v != nil && x > *v {
			xMasked = true
		}
		if v := p.viewport.YMin; v != nil && y < *v {
			yMasked = true
		}
		if v := p.viewport.YMax; v != nil && y > *v {
			yMasked = true
		}
		// NaN always escapes range checks, so test it explicitly.
		// An unplaceable point is masked on both axes.
		if math.IsNaN(x) || math.IsNaN(y) {
			xMasked = true
			yMasked = true
		}

		coords[i] = Coordinate{X: x, Y: y, Masked: xMasked || yMasked}
		if !xMasked {
			allXMasked = false
		}
		if !yMasked {
			allYMasked = false
		}
	}

	if allXMasked || allYMasked {
		return Feature{}, false
	}
	return Feature{Coordinates: coords}, true
}
