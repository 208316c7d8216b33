package main

import (
	"fmt"
	"log"

	"github.com/barronh/cno/pkg/cno"
)

func main() {
	// Report each fetch as it happens
	loader, err := cno.NewLoader(cno.LoaderOptions{
		AutoDownload: true,
		OnDownload: func(name, url string) {
			fmt.Printf("Downloading %s\n  from %s\n", name, url)
		},
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Data directory: %s\n", loader.DataDir())

	// Fetched on first use, reused from disk afterwards
	coasts, err := loader.Coastlines(3)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Coastline features: %d\n", coasts.FeatureCount())

	// Everything the downloader knows about
	fmt.Println("Downloadable overlays:")
	for name := range cno.Downloadable() {
		fmt.Printf("  %s\n", name)
	}

	// Everything already on disk
	paths, err := cno.DiscoverOverlays(loader.DataDir())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Local overlays: %d\n", len(paths))
}
