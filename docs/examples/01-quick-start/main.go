package main

import (
	"fmt"
	"log"

	"github.com/barronh/cno/pkg/cno"
)

func main() {
	// Decode an overlay file
	set, err := cno.DecodeFile("MWDB_Coasts_3.cnob")
	if err != nil {
		log.Fatal(err)
	}

	// Print overlay info
	fmt.Printf("Features: %d\n", set.FeatureCount())
	for _, warning := range set.Warnings() {
		fmt.Printf("Warning: %v\n", warning)
	}

	// Get overlay bounds
	bounds := set.Bounds()
	fmt.Printf("Bounds: [%.4f,%.4f] to [%.4f,%.4f]\n",
		bounds.MinX, bounds.MinY,
		bounds.MaxX, bounds.MaxY)
}
