// Package proj4 adapts PROJ.4 map projections to overlay pipelines.
package proj4

import (
	"fmt"
	"math"

	"github.com/ctessum/geom/proj"

	"github.com/barronh/cno/pkg/cno"
)

// longLat is the geographic reference system of overlay files.
const longLat = "+proj=longlat +datum=WGS84 +no_defs"

// New builds a projection from a PROJ.4 definition string.
//
// The returned projection maps geographic longitude,latitude (WGS84
// degrees) to coordinates in the target system. Points the target system
// cannot place come back as (NaN, NaN), which a Pipeline masks.
//
// Example:
//
//	mercator, err := proj4.New("+proj=merc +a=6378137 +b=6378137")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	loader, err := cno.NewLoader(cno.LoaderOptions{Projection: mercator})
func New(def string) (cno.Projection, error) {
	src, err := proj.Parse(longLat)
	if err != nil {
		return nil, fmt.Errorf("parse geographic reference: %w", err)
	}
	dst, err := proj.Parse(def)
	if err != nil {
		return nil, fmt.Errorf("parse projection: %w", err)
	}
	transform, err := src.NewTransform(dst)
	if err != nil {
		return nil, fmt.Errorf("build transform: %w", err)
	}

	return func(lon, lat float64) (float64, float64) {
		x, y, err := transform(lon, lat)
		if err != nil {
			return math.NaN(), math.NaN()
		}
		return x, y
	}, nil
}
