package cno

import (
	"fmt"
	"io"
	"os"

	"github.com/barronh/cno/internal/parser"
)

// Format identifies an overlay file encoding.
type Format int

const (
	// FormatText is the delimited text encoding used by .cno files.
	FormatText Format = iota

	// FormatBinary is the big-endian binary encoding used by .cnob files.
	FormatBinary
)

// String returns the string representation of the format.
func (f Format) String() string {
	return parser.Format(f).String()
}

// FormatForPath returns the format implied by the path suffix.
//
// Only the ".cno" suffix selects the text format; every other suffix is
// read and written as binary.
func FormatForPath(path string) Format {
	return Format(parser.FormatForPath(path))
}

// Decode parses overlay data into a feature set.
//
// The result holds raw longitude,latitude coordinates with nothing masked.
// Apply a Pipeline for projection and clipping, or use a Loader to do both
// with caching.
func Decode(data []byte, format Format) (*FeatureSet, error) {
	overlay, err := parser.Decode(data, parser.Format(format), parser.DefaultParseOptions())
	if err != nil {
		return nil, err
	}
	return newFeatureSetFromOverlay(overlay), nil
}

// DecodeFile reads an overlay file, picking the format from its suffix.
//
// Example:
//
//	set, err := cno.DecodeFile("MWDB_Coasts_3.cnob")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Loaded %d features\n", set.FeatureCount())
func DecodeFile(path string) (*FeatureSet, error) {
	overlay, err := parser.DecodeFile(path, parser.DefaultParseOptions())
	if err != nil {
		return nil, err
	}
	return newFeatureSetFromOverlay(overlay), nil
}

// Encode writes a feature set in the given format.
//
// Masked coordinates have no representation in either format, so a set
// holding any masked coordinate is refused. Encode raw, unclipped sets.
func Encode(set *FeatureSet, w io.Writer, format Format) error {
	overlay, err := overlayFromFeatureSet(set)
	if err != nil {
		return err
	}
	return encodeOverlay(overlay, w, format)
}

// EncodeFile writes a feature set to path, picking the format from the
// path's suffix.
//
// The set is converted before the destination is opened, so refusing a
// masked set leaves an existing file at path untouched.
func EncodeFile(set *FeatureSet, path string) error {
	overlay, err := overlayFromFeatureSet(set)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create overlay: %w", err)
	}
	if err := encodeOverlay(overlay, file, FormatForPath(path)); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func encodeOverlay(overlay *parser.Overlay, w io.Writer, format Format) error {
	switch format {
	case FormatText:
		return parser.EncodeText(w, overlay)
	case FormatBinary:
		return parser.EncodeBinary(w, overlay)
	default:
		return fmt.Errorf("unknown format: %d", format)
	}
}

// overlayFromFeatureSet converts public features back to the raw form,
// refusing masked coordinates.
func overlayFromFeatureSet(set *FeatureSet) (*parser.Overlay, error) {
	overlay := &parser.Overlay{
		Features: make([]parser.Feature, set.FeatureCount()),
	}
	for i, feature := range set.Features() {
		coords := make([][]float64, len(feature.Coordinates))
		for j, c := range feature.Coordinates {
			if c.Masked {
				return nil, fmt.Errorf("feature %d: masked coordinates cannot be encoded", i)
			}
			coords[j] = []float64{c.X, c.Y}
		}
		overlay.Features[i] = parser.Feature{Coordinates: coords}
	}
	return overlay, nil
}
