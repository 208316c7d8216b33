package cno

import (
	"fmt"

	"github.com/barronh/cno/internal/parser"
)

// LoaderOptions configures a Loader.
type LoaderOptions struct {
	// Projection maps lon,lat to output x,y.
	// Nil means identity: raw degrees pass through.
	Projection Projection

	// Viewport clips transformed coordinates.
	// The zero Viewport leaves every side unbounded.
	Viewport Viewport

	// ClipAxesOnRender: advise renderers to set their axis limits to the
	// viewport. The loader only carries the flag; drawing layers read it.
	// Default: true
	ClipAxesOnRender bool

	// DataDir overrides the overlay data directory.
	// If empty, CNO_DATA then ~/.cno apply (see DataDir).
	DataDir string

	// Resolver overrides overlay resolution entirely. If nil, a
	// DirResolver over the data directory is built from the options
	// below.
	Resolver Resolver

	// AutoDownload enables fetching known overlays on demand.
	// Default: true
	AutoDownload bool

	// OnDownload, if set, is called before each overlay download begins.
	OnDownload func(name, url string)

	// ValidateCoordinates rejects raw coordinates outside the geographic
	// range (lon ±180, lat ±90) at decode time.
	// Default: false
	ValidateCoordinates bool
}

// DefaultLoaderOptions returns loader options with defaults.
func DefaultLoaderOptions() LoaderOptions {
	return LoaderOptions{
		ClipAxesOnRender: true,
		AutoDownload:     true,
	}
}

// FeatureOptions controls caching for a single load.
type FeatureOptions struct {
	// Key names the cache slot. Empty means the overlay name. Distinct
	// keys are independent slots even for the same file.
	Key string

	// Cache stores the result for later calls. A lookup still happens
	// either way; Cache only controls storage.
	Cache bool
}

// DefaultFeatureOptions returns feature options with defaults.
func DefaultFeatureOptions() FeatureOptions {
	return FeatureOptions{
		Cache: true,
	}
}

// Loader resolves overlays by name, decodes them, runs them through one
// fixed projection and viewport, and caches the transformed result.
//
// A Loader's configuration is immutable: there are no setters, and a new
// projection or viewport means a new Loader with its own empty cache, so a
// cached entry can never disagree with the configuration that produced it.
//
// The cache is not synchronized. Share a Loader across goroutines only with
// external locking; the intended use is one Loader per plotting routine.
//
// Example:
//
//	loader, err := cno.NewLoader(cno.DefaultLoaderOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	coasts, err := loader.Coastlines(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Loaded %d coastline features\n", coasts.FeatureCount())
type Loader struct {
	pipeline *Pipeline
	resolver Resolver
	dataDir  string
	clipAxes bool
	validate bool
	cache    *featureCache
}

// NewLoader creates a loader from options.
func NewLoader(opts LoaderOptions) (*Loader, error) {
	dataDir := DataDir(opts.DataDir)

	resolver := opts.Resolver
	if resolver == nil {
		resolver = &DirResolver{
			SearchDirs:   []string{dataDir},
			Downloads:    Downloadable(),
			AutoDownload: opts.AutoDownload,
			OnDownload:   opts.OnDownload,
		}
	}

	return &Loader{
		pipeline: NewPipeline(opts.Projection, opts.Viewport),
		resolver: resolver,
		dataDir:  dataDir,
		clipAxes: opts.ClipAxesOnRender,
		validate: opts.ValidateCoordinates,
		cache:    newFeatureCache(),
	}, nil
}

// Features returns the transformed features of the named overlay, loading
// and caching on first use.
//
// The name may be a path, a file name under the data directory, or one of
// the downloadable overlay names (see Downloadable).
func (l *Loader) Features(name string) (*FeatureSet, error) {
	return l.FeaturesWithOptions(name, DefaultFeatureOptions())
}

// FeaturesWithOptions returns the transformed features of the named
// overlay with explicit cache control.
//
// The cache is keyed by opts.Key, defaulting to name. A hit returns the
// stored set as-is, even if the underlying file has changed since; remove
// the key or clear the cache to pick up file changes.
func (l *Loader) FeaturesWithOptions(name string, opts FeatureOptions) (*FeatureSet, error) {
	key := opts.Key
	if key == "" {
		key = name
	}

	if set, ok := l.cache.Get(key); ok {
		return set, nil
	}

	path, err := l.resolver.Resolve(name)
	if err != nil {
		return nil, err
	}

	overlay, err := parser.DecodeFile(path, parser.ParseOptions{
		ValidateCoordinates: l.validate,
	})
	if err != nil {
		return nil, err
	}

	set := l.pipeline.Transform(newFeatureSetFromOverlay(overlay))
	if opts.Cache {
		l.cache.Add(key, set)
	}
	return set, nil
}

// Coastlines loads the world coastline overlay at the given resolution.
// Resolution 1 is fine, 3 is coarse; both are downloadable.
func (l *Loader) Coastlines(res int) (*FeatureSet, error) {
	return l.Features(fmt.Sprintf("MWDB_Coasts_%d.cnob", res))
}

// Countries loads the coastline-and-country-border overlay at the given
// resolution.
func (l *Loader) Countries(res int) (*FeatureSet, error) {
	return l.Features(fmt.Sprintf("MWDB_Coasts_Countries_%d.cnob", res))
}

// States loads the North America coastline-and-state-border overlay at the
// given resolution.
func (l *Loader) States(res int) (*FeatureSet, error) {
	return l.Features(fmt.Sprintf("MWDB_Coasts_NA_%d.cnob", res))
}

// Viewport returns the loader's viewport.
func (l *Loader) Viewport() Viewport {
	return l.pipeline.Viewport()
}

// ClipAxesOnRender reports whether renderers should set their axis limits
// to the viewport.
func (l *Loader) ClipAxesOnRender() bool {
	return l.clipAxes
}

// DataDir returns the loader's overlay data directory.
func (l *Loader) DataDir() string {
	return l.dataDir
}

// CacheStats returns cache statistics.
func (l *Loader) CacheStats() CacheStats {
	return l.cache.Stats()
}

// ClearCache drops every cached feature set.
func (l *Loader) ClearCache() {
	l.cache.Clear()
}

// RemoveCached drops one cached feature set by key.
func (l *Loader) RemoveCached(key string) {
	l.cache.Remove(key)
}
