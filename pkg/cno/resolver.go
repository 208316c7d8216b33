package cno

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound indicates an overlay name that resolved to no file.
type ErrNotFound struct {
	Name  string   // The requested overlay name
	Tried []string // Every location checked, in order
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("overlay %s not found, tried:\n - %s",
		e.Name, strings.Join(e.Tried, "\n - "))
}

// Resolver locates an overlay file by logical name.
type Resolver interface {
	// Resolve returns the path of the overlay file for name.
	Resolve(name string) (string, error)
}

// DirResolver resolves overlay names against a list of directories, with
// optional download-on-demand for known overlays.
//
// Resolution order: the name itself as a path, then the name joined to each
// search directory. On a complete miss, a name present in Downloads is
// fetched into the first search directory when AutoDownload is set;
// otherwise Resolve returns ErrNotFound listing every location tried.
type DirResolver struct {
	// SearchDirs are tried in order after the literal path.
	SearchDirs []string

	// Downloads maps overlay names to their download URLs.
	// See Downloadable for the published table.
	Downloads map[string]string

	// AutoDownload enables fetching overlays named in Downloads.
	AutoDownload bool

	// OnDownload, if set, is called before each download begins.
	OnDownload func(name, url string)
}

// Resolve implements Resolver.
func (r *DirResolver) Resolve(name string) (string, error) {
	candidates := make([]string, 0, len(r.SearchDirs)+1)
	candidates = append(candidates, name)
	for _, dir := range r.SearchDirs {
		candidates = append(candidates, filepath.Join(dir, name))
	}

	tried := make([]string, 0, len(candidates))
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		tried = append(tried, path)
	}

	if url, ok := r.Downloads[name]; ok && r.AutoDownload {
		destDir := "."
		if len(r.SearchDirs) > 0 {
			destDir = r.SearchDirs[0]
		}
		if r.OnDownload != nil {
			r.OnDownload(name, url)
		}
		return DownloadOverlay(name, url, destDir)
	}

	return "", &ErrNotFound{Name: name, Tried: tried}
}

// panoplyURL is the base URL of the overlay files published with Panoply.
const panoplyURL = "https://www.giss.nasa.gov/tools/panoply/overlays/"

// panoplyOverlays lists the published overlay files: world coastline,
// border, lake, and river sets at two resolutions, plus grid and
// paleogeography overlays.
var panoplyOverlays = []string{
	"MWDB_Coasts_1.cnob",
	"MWDB_Coasts_3.cnob",
	"MWDB_Coasts_Countries_1.cnob",
	"MWDB_Coasts_Countries_3.cnob",
	"MWDB_Coasts_Lakes_1.cnob",
	"MWDB_Coasts_Lakes_3.cnob",
	"MWDB_Coasts_NA_1.cnob",
	"MWDB_Coasts_NA_3.cnob",
	"MWDB_Coasts_USA_1.cnob",
	"MWDB_Coasts_USA_3.cnob",
	"MWDB_Lakes_Rivers_1.cnob",
	"MWDB_Lakes_Rivers_3.cnob",
	"Earth_5x4.cnob",
	"Earth_10x8.cnob",
	"Paleo_Cretaceous_100Ma.cnob",
	"Paleo_Paleocene_56Ma.cnob",
	"Paleo_Sturtian_750Ma.cnob",
	"Venus_MR_6052km.cnob",
}

// Downloadable returns the table of known downloadable overlays, mapping
// overlay names to their download URLs. The returned map is a copy; callers
// may add or remove entries before handing it to a DirResolver.
func Downloadable() map[string]string {
	table := make(map[string]string, len(panoplyOverlays))
	for _, name := range panoplyOverlays {
		table[name] = panoplyURL + name
	}
	return table
}

// DownloadOverlay fetches an overlay file into destDir.
//
// If the file already exists it is not downloaded again. Returns the path
// of the overlay file.
//
// Example:
//
//	path, err := cno.DownloadOverlay(
//	    "MWDB_Coasts_3.cnob",
//	    cno.Downloadable()["MWDB_Coasts_3.cnob"],
//	    cno.DataDir(""),
//	)
func DownloadOverlay(name, url, destDir string) (string, error) {
	destPath := filepath.Join(destDir, name)

	// Check if already downloaded
	if _, err := os.Stat(destPath); err == nil {
		return destPath, nil
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("create overlay dir: %w", err)
	}

	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("download overlay: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download failed: HTTP %d", resp.StatusCode)
	}

	outFile, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}

	_, err = io.Copy(outFile, resp.Body)
	outFile.Close()
	if err != nil {
		return "", fmt.Errorf("save overlay: %w", err)
	}

	return destPath, nil
}

// DataDir returns the overlay data directory.
//
// A non-empty override wins, then the CNO_DATA environment variable, then
// ~/.cno. The directory is not created; DownloadOverlay does that on first
// use.
func DataDir(override string) string {
	if override != "" {
		return override
	}
	if dir := os.Getenv("CNO_DATA"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".cno")
}

// DiscoverOverlays finds all .cno and .cnob files in a directory tree.
//
// Example:
//
//	paths, err := cno.DiscoverOverlays(cno.DataDir(""))
//	fmt.Printf("Found %d overlays\n", len(paths))
func DiscoverOverlays(root string) ([]string, error) {
	var paths []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".cno", ".cnob":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	return paths, nil
}
