package parser

import (
	"fmt"
)

// ErrInvalidCoordinate indicates coordinate out of valid bounds
type ErrInvalidCoordinate struct {
	Lon, Lat float64
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid coordinate: lon=%f lat=%f (lon must be ±180, lat must be ±90)",
		e.Lon, e.Lat)
}

// ErrOddCoordinateCount indicates a value stream that cannot be paired into
// lon,lat coordinates
type ErrOddCoordinateCount struct {
	Feature int // Index among decoded features; empty chunks do not count
	Count   int // Number of values found
}

func (e *ErrOddCoordinateCount) Error() string {
	return fmt.Sprintf("feature %d: %d values cannot form lon,lat pairs",
		e.Feature, e.Count)
}

// ErrInvalidNumber indicates a text token that does not parse as a float
type ErrInvalidNumber struct {
	Line  int    // 1-based line number in the file
	Token string // The offending token
}

func (e *ErrInvalidNumber) Error() string {
	return fmt.Sprintf("line %d: invalid number %q", e.Line, e.Token)
}

// ErrTruncatedStream indicates a binary stream whose length is not a whole
// number of 4-byte values
type ErrTruncatedStream struct {
	Size int // Byte length of the stream
}

func (e *ErrTruncatedStream) Error() string {
	return fmt.Sprintf("truncated stream: %d bytes is not a multiple of 4", e.Size)
}

// HeaderMismatch indicates a binary file without the expected magic bytes.
// It is reported as a warning on the decode result, never as a failure:
// files in the wild carry usable data behind malformed headers.
type HeaderMismatch struct {
	Header []byte // Bytes actually present, at most 8
}

func (e *HeaderMismatch) Error() string {
	return fmt.Sprintf("header %q does not match %q", e.Header, binaryMagic)
}
