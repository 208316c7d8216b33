package convert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/barronh/cno/pkg/cno"
)

func checkCoords(t *testing.T, feature cno.Feature, want [][2]float64) {
	t.Helper()
	if len(feature.Coordinates) != len(want) {
		t.Fatalf("Expected %d coordinates, got %d", len(want), len(feature.Coordinates))
	}
	for i, coord := range feature.Coordinates {
		if coord.X != want[i][0] || coord.Y != want[i][1] {
			t.Errorf("Coordinate %d: expected (%v, %v), got (%v, %v)",
				i, want[i][0], want[i][1], coord.X, coord.Y)
		}
	}
}

func TestGeoJSONLineString(t *testing.T) {
	data := `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "properties": {}, "geometry":
				{"type": "LineString", "coordinates": [[0,0],[10,5],[20,10]]}}
		]
	}`

	set, err := GeoJSON([]byte(data))
	if err != nil {
		t.Fatalf("Failed to convert: %v", err)
	}
	if set.FeatureCount() != 1 {
		t.Fatalf("Expected 1 feature, got %d", set.FeatureCount())
	}
	checkCoords(t, set.Features()[0], [][2]float64{{0, 0}, {10, 5}, {20, 10}})
}

func TestGeoJSONPolygonWithHole(t *testing.T) {
	data := `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "properties": {}, "geometry":
				{"type": "Polygon", "coordinates": [
					[[0,0],[10,0],[10,10],[0,10],[0,0]],
					[[2,2],[4,2],[4,4],[2,4],[2,2]]
				]}}
		]
	}`

	set, err := GeoJSON([]byte(data))
	if err != nil {
		t.Fatalf("Failed to convert: %v", err)
	}
	// Outer ring and hole each become a feature, in file order.
	if set.FeatureCount() != 2 {
		t.Fatalf("Expected 2 features, got %d", set.FeatureCount())
	}
	outer := set.Features()[0]
	if len(outer.Coordinates) != 5 {
		t.Fatalf("Expected 5 coordinates in outer ring, got %d", len(outer.Coordinates))
	}
	if outer.Coordinates[1].X != 10 || outer.Coordinates[1].Y != 0 {
		t.Errorf("Expected (10, 0), got (%v, %v)",
			outer.Coordinates[1].X, outer.Coordinates[1].Y)
	}
	hole := set.Features()[1]
	if hole.Coordinates[0].X != 2 || hole.Coordinates[0].Y != 2 {
		t.Errorf("Expected hole to start at (2, 2), got (%v, %v)",
			hole.Coordinates[0].X, hole.Coordinates[0].Y)
	}
}

func TestGeoJSONMultiPolygon(t *testing.T) {
	data := `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "properties": {}, "geometry":
				{"type": "MultiPolygon", "coordinates": [
					[[[0,0],[1,0],[1,1],[0,0]]],
					[[[5,5],[6,5],[6,6],[5,5]]]
				]}}
		]
	}`

	set, err := GeoJSON([]byte(data))
	if err != nil {
		t.Fatalf("Failed to convert: %v", err)
	}
	if set.FeatureCount() != 2 {
		t.Fatalf("Expected 2 features, got %d", set.FeatureCount())
	}
	if set.Features()[1].Coordinates[0].X != 5 {
		t.Errorf("Expected second polygon to start at x=5, got %v",
			set.Features()[1].Coordinates[0].X)
	}
}

func TestGeoJSONPoints(t *testing.T) {
	data := `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "properties": {}, "geometry":
				{"type": "Point", "coordinates": [3,4]}},
			{"type": "Feature", "properties": {}, "geometry":
				{"type": "MultiPoint", "coordinates": [[5,6],[7,8]]}}
		]
	}`

	set, err := GeoJSON([]byte(data))
	if err != nil {
		t.Fatalf("Failed to convert: %v", err)
	}
	if set.FeatureCount() != 3 {
		t.Fatalf("Expected 3 features, got %d", set.FeatureCount())
	}
	for i, want := range [][2]float64{{3, 4}, {5, 6}, {7, 8}} {
		checkCoords(t, set.Features()[i], [][2]float64{want})
	}
}

func TestGeoJSONCollection(t *testing.T) {
	data := `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "properties": {}, "geometry":
				{"type": "GeometryCollection", "geometries": [
					{"type": "Point", "coordinates": [1,2]},
					{"type": "LineString", "coordinates": [[3,4],[5,6]]}
				]}}
		]
	}`

	set, err := GeoJSON([]byte(data))
	if err != nil {
		t.Fatalf("Failed to convert: %v", err)
	}
	if set.FeatureCount() != 2 {
		t.Fatalf("Expected 2 features, got %d", set.FeatureCount())
	}
	checkCoords(t, set.Features()[0], [][2]float64{{1, 2}})
	checkCoords(t, set.Features()[1], [][2]float64{{3, 4}, {5, 6}})
}

func TestGeoJSONSkipsEmptyLineString(t *testing.T) {
	data := `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "properties": {}, "geometry":
				{"type": "LineString", "coordinates": []}}
		]
	}`

	set, err := GeoJSON([]byte(data))
	if err != nil {
		t.Fatalf("Failed to convert: %v", err)
	}
	if set.FeatureCount() != 0 {
		t.Errorf("Expected 0 features, got %d", set.FeatureCount())
	}
}

func TestGeoJSONInvalid(t *testing.T) {
	if _, err := GeoJSON([]byte("not geojson")); err == nil {
		t.Error("Expected error for invalid input")
	}
}

func TestGeoJSONFile(t *testing.T) {
	data := `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "properties": {}, "geometry":
				{"type": "LineString", "coordinates": [[0,0],[10,5]]}},
			{"type": "Feature", "properties": {}, "geometry":
				{"type": "LineString", "coordinates": [[-4,-4],[4,4]]}}
		]
	}`

	for _, name := range []string{"out.cno", "out.cnob"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			inPath := filepath.Join(dir, "coast.geojson")
			if err := os.WriteFile(inPath, []byte(data), 0o644); err != nil {
				t.Fatalf("Failed to write input: %v", err)
			}
			outPath := filepath.Join(dir, name)

			if err := GeoJSONFile(inPath, outPath); err != nil {
				t.Fatalf("Failed to convert: %v", err)
			}

			set, err := cno.DecodeFile(outPath)
			if err != nil {
				t.Fatalf("Failed to decode output: %v", err)
			}
			if set.FeatureCount() != 2 {
				t.Fatalf("Expected 2 features, got %d", set.FeatureCount())
			}
			checkCoords(t, set.Features()[0], [][2]float64{{0, 0}, {10, 5}})
			checkCoords(t, set.Features()[1], [][2]float64{{-4, -4}, {4, 4}})
		})
	}
}

func TestGeoJSONFileRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "coast.geojson")
	if err := os.WriteFile(inPath, []byte(`{"type":"FeatureCollection","features":[]}`), 0o644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}
	outPath := filepath.Join(dir, "out.cno")
	if err := os.WriteFile(outPath, []byte("precious"), 0o644); err != nil {
		t.Fatalf("Failed to write output: %v", err)
	}

	err := GeoJSONFile(inPath, outPath)
	if err == nil {
		t.Fatal("Expected error for existing output")
	}
	if !strings.Contains(err.Error(), "exists") {
		t.Errorf("Expected exists in message, got %q", err.Error())
	}

	// The output file is untouched.
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if string(data) != "precious" {
		t.Errorf("Expected output preserved, got %q", data)
	}
}

func TestGeoJSONFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := GeoJSONFile(filepath.Join(dir, "absent.geojson"), filepath.Join(dir, "out.cno"))
	if err == nil {
		t.Error("Expected error for missing input")
	}
}
