package main

import (
	"fmt"
	"log"
	"os"

	"github.com/barronh/cno/pkg/cno"
	"github.com/barronh/cno/pkg/convert"
)

func main() {
	// A small feature collection: one line, one triangle
	geojson := `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "properties": {}, "geometry":
				{"type": "LineString", "coordinates": [[-10,40],[0,45],[10,50]]}},
			{"type": "Feature", "properties": {}, "geometry":
				{"type": "Polygon", "coordinates": [[[0,0],[8,0],[4,6],[0,0]]]}}
		]
	}`
	if err := os.WriteFile("coast.geojson", []byte(geojson), 0o644); err != nil {
		log.Fatal(err)
	}

	// Convert; the .cnob suffix selects the binary format
	if err := convert.GeoJSONFile("coast.geojson", "coast.cnob"); err != nil {
		log.Fatal(err)
	}

	// Read the converted overlay back
	set, err := cno.DecodeFile("coast.cnob")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Converted features: %d\n", set.FeatureCount())
	for i, feature := range set.Features() {
		fmt.Printf("  feature %d: %d coordinates\n", i, len(feature.Coordinates))
	}
}
