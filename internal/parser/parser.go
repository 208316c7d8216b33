package parser

import (
	"fmt"
	"os"
	"path/filepath"
)

// Format identifies the encoding of an overlay file.
type Format int

const (
	// FormatText is the delimited text encoding used by .cno files.
	FormatText Format = iota

	// FormatBinary is the big-endian binary encoding used by .cnob files.
	FormatBinary
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "CNO"
	case FormatBinary:
		return "CNOB"
	default:
		return "Unknown"
	}
}

// FormatForPath returns the format implied by the path suffix.
//
// Only the ".cno" suffix selects the text format. Every other suffix,
// including no suffix at all, is read as binary. The historical reader
// applied exactly this rule, so files named ".cnob", ".CNO" or anything
// else go through the binary decoder.
func FormatForPath(path string) Format {
	if filepath.Ext(path) == ".cno" {
		return FormatText
	}
	return FormatBinary
}

// ParseOptions configures decoding behavior
type ParseOptions struct {
	// ValidateCoordinates: if true, reject coordinates outside the
	// geographic range (lon ±180, lat ±90)
	// Default: false (historical overlay files are trusted as-is)
	ValidateCoordinates bool
}

// DefaultParseOptions returns parse options with defaults
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		ValidateCoordinates: false,
	}
}

// Decode parses overlay data in the given format.
func Decode(data []byte, format Format, opts ParseOptions) (*Overlay, error) {
	switch format {
	case FormatText:
		return DecodeText(data, opts)
	case FormatBinary:
		return DecodeBinary(data, opts)
	default:
		return nil, fmt.Errorf("unknown format: %d", format)
	}
}

// DecodeFile reads an overlay file, picking the format from its suffix.
// Decode failures name the file, so a bad overlay in a batch of loads is
// identifiable from the error alone.
func DecodeFile(path string, opts ParseOptions) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overlay: %w", err)
	}
	overlay, err := Decode(data, FormatForPath(path), opts)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return overlay, nil
}
