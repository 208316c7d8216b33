package main

import (
	"fmt"
	"log"
	"time"

	"github.com/barronh/cno/pkg/cno"
)

func main() {
	loader, err := cno.NewLoader(cno.LoaderOptions{AutoDownload: true})
	if err != nil {
		log.Fatal(err)
	}

	// First load parses the file
	start := time.Now()
	if _, err := loader.Coastlines(3); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("First load:  %v\n", time.Since(start))

	// Second load comes from the cache
	start = time.Now()
	if _, err := loader.Coastlines(3); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Second load: %v\n", time.Since(start))

	stats := loader.CacheStats()
	fmt.Printf("Cache: %d entries, %.0f%% hit rate\n",
		stats.Entries, stats.HitRate()*100)

	// Drop the entries; hit counters keep accumulating
	loader.ClearCache()
	fmt.Printf("After clear: %d entries\n", loader.CacheStats().Entries)
}
