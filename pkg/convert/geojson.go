// Package convert builds overlay feature sets from other geometry formats.
//
// GeoJSON input covers the common interchange case: line strings and
// polygon rings become overlay features, ready to encode as .cno or .cnob
// files.
package convert

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/barronh/cno/pkg/cno"
)

// GeoJSON converts a GeoJSON FeatureCollection to an overlay feature set.
//
// LineString and Ring geometries become one feature each;
// MultiLineString, Polygon, and MultiPolygon contribute one feature per
// line or ring; Point and MultiPoint become single-coordinate features;
// GeometryCollection members are converted recursively. Features land in
// file order.
func GeoJSON(data []byte) (*cno.FeatureSet, error) {
	collection, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse geojson: %w", err)
	}

	var features []cno.Feature
	for _, feature := range collection.Features {
		features = appendGeometry(features, feature.Geometry)
	}
	return cno.NewFeatureSet(features), nil
}

// GeoJSONFile converts a GeoJSON file to an overlay file, picking the
// output format from the output path's suffix.
//
// An existing output file is never overwritten.
//
// Example:
//
//	err := convert.GeoJSONFile("coastline.geojson", "coastline.cnob")
func GeoJSONFile(geojsonPath, outPath string) error {
	if _, err := os.Stat(outPath); err == nil {
		return fmt.Errorf("output exists: %s", outPath)
	}

	data, err := os.ReadFile(geojsonPath)
	if err != nil {
		return fmt.Errorf("read geojson: %w", err)
	}

	set, err := GeoJSON(data)
	if err != nil {
		return err
	}
	return cno.EncodeFile(set, outPath)
}

func appendGeometry(features []cno.Feature, g orb.Geometry) []cno.Feature {
	switch geom := g.(type) {
	case orb.Point:
		features = append(features, pointFeature(geom))
	case orb.MultiPoint:
		for _, point := range geom {
			features = append(features, pointFeature(point))
		}
	case orb.LineString:
		features = appendLine(features, geom)
	case orb.Ring:
		features = appendLine(features, orb.LineString(geom))
	case orb.MultiLineString:
		for _, line := range geom {
			features = appendLine(features, line)
		}
	case orb.Polygon:
		for _, ring := range geom {
			features = appendLine(features, orb.LineString(ring))
		}
	case orb.MultiPolygon:
		for _, polygon := range geom {
			for _, ring := range polygon {
				features = appendLine(features, orb.LineString(ring))
			}
		}
	case orb.Collection:
		for _, member := range geom {
			features = appendGeometry(features, member)
		}
	}
	return features
}

// appendLine adds one feature per coordinate sequence, skipping empty
// sequences the way decoding skips empty chunks.
func appendLine(features []cno.Feature, line orb.LineString) []cno.Feature {
	if len(line) == 0 {
		return features
	}
	coords := make([]cno.Coordinate, len(line))
	for i, point := range line {
		coords[i] = cno.Coordinate{X: point.Lon(), Y: point.Lat()}
	}
	return append(features, cno.Feature{Coordinates: coords})
}

func pointFeature(p orb.Point) cno.Feature {
	return cno.Feature{
		Coordinates: []cno.Coordinate{{X: p.Lon(), Y: p.Lat()}},
	}
}
