package main

import (
	"fmt"
	"log"

	"github.com/barronh/cno/pkg/cno"
)

func main() {
	// Clip to the North Atlantic
	loader, err := cno.NewLoader(cno.LoaderOptions{
		Viewport: cno.Viewport{
			XMin: cno.Float64(-80),
			XMax: cno.Float64(0),
			YMin: cno.Float64(20),
			YMax: cno.Float64(70),
		},
		AutoDownload: true,
	})
	if err != nil {
		log.Fatal(err)
	}

	coasts, err := loader.Coastlines(3)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Features inside the viewport: %d\n", coasts.FeatureCount())

	// Count coordinates masked at the viewport edge
	masked := 0
	for _, feature := range coasts.Features() {
		for _, coord := range feature.Coordinates {
			if coord.Masked {
				masked++
			}
		}
	}
	fmt.Printf("Masked edge coordinates: %d\n", masked)
}
