package main

import (
	"fmt"
	"log"

	"github.com/barronh/cno/pkg/cno"
	"github.com/barronh/cno/pkg/proj4"
)

func main() {
	// Web Mercator, the common tile projection
	mercator, err := proj4.New("+proj=merc +a=6378137 +b=6378137")
	if err != nil {
		log.Fatal(err)
	}

	// Mercator stretches without bound near the poles; clip to the
	// square extent used by map tiles
	loader, err := cno.NewLoader(cno.LoaderOptions{
		Projection: mercator,
		Viewport: cno.Viewport{
			YMin: cno.Float64(-20037508.34),
			YMax: cno.Float64(20037508.34),
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

	// Bounds are now in meters
	bounds := coasts.Bounds()
	fmt.Printf("Projected features: %d\n", coasts.FeatureCount())
	fmt.Printf("Extent: [%.0f,%.0f] to [%.0f,%.0f]\n",
		bounds.MinX, bounds.MinY,
		bounds.MaxX, bounds.MaxY)
}
