package parser

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
)

const (
	// binaryMagic is the 8-byte header of the binary overlay format.
	binaryMagic = "GISSCNOB"

	// binarySentinel bounds each feature in the value stream. Real
	// coordinates never reach it: the largest possible scaled value is
	// 180000 (longitude 180).
	binarySentinel = 999999

	// coordinateScale converts between degrees and the stored fixed-point
	// integers.
	coordinateScale = 1000.0
)

// DecodeBinary parses the binary overlay format (.cnob).
//
// The file is a stream of big-endian int32 values, normally opening with the
// 8-byte magic "GISSCNOB". Each feature is bounded by a leading and trailing
// 999999 sentinel; the values strictly between a sentinel pair are
// fixed-point coordinates, longitude then latitude, each degree value
// multiplied by 1000.
//
// The magic is checked loosely: a missing or malformed header adds a
// HeaderMismatch warning to the result and decoding proceeds. The whole
// stream is scanned from offset 0 regardless, so bytes before the first
// sentinel, the magic included, never become coordinates. A stream with
// fewer than two sentinels decodes to an empty overlay with no error, and
// adjacent sentinels produce no feature.
func DecodeBinary(data []byte, opts ParseOptions) (*Overlay, error) {
	if len(data)%4 != 0 {
		return nil, &ErrTruncatedStream{Size: len(data)}
	}

	overlay := &Overlay{}
	if len(data) < 8 || string(data[:8]) != binaryMagic {
		header := data
		if len(header) > 8 {
			header = header[:8]
		}
		overlay.Warnings = append(overlay.Warnings, &HeaderMismatch{Header: header})
	}

	values := make([]int32, len(data)/4)
	for i := range values {
		values[i] = int32(binary.BigEndian.Uint32(data[i*4:]))
	}

	var sentinels []int
	for i, v := range values {
		if v == binarySentinel {
			sentinels = append(sentinels, i)
		}
	}

	featureIndex := 0
	for k := 0; k+1 < len(sentinels); k++ {
		span := values[sentinels[k]+1 : sentinels[k+1]]
		if len(span) == 0 {
			continue
		}
		if len(span)%2 != 0 {
			return nil, &ErrOddCoordinateCount{Feature: featureIndex, Count: len(span)}
		}
		coords := make([][]float64, 0, len(span)/2)
		for i := 0; i < len(span); i += 2 {
			coords = append(coords, []float64{
				float64(span[i]) / coordinateScale,
				float64(span[i+1]) / coordinateScale,
			})
		}
		overlay.Features = append(overlay.Features, Feature{Coordinates: coords})
		featureIndex++
	}

	if opts.ValidateCoordinates {
		if err := validateOverlay(overlay); err != nil {
			return nil, err
		}
	}

	return overlay, nil
}

// EncodeBinary writes an overlay in the binary format.
//
// The output is the magic, a leading sentinel, then each feature's scaled
// coordinates followed by a sentinel. N features produce N+1 sentinels, the
// layout DecodeBinary pairs back into the same N features. An empty overlay
// encodes as the magic alone.
func EncodeBinary(w io.Writer, o *Overlay) error {
	buf := bufio.NewWriter(w)
	buf.WriteString(binaryMagic)
	if len(o.Features) > 0 {
		writeInt32(buf, binarySentinel)
		for _, feature := range o.Features {
			for _, coord := range feature.Coordinates {
				writeInt32(buf, int32(math.Round(coord[0]*coordinateScale)))
				writeInt32(buf, int32(math.Round(coord[1]*coordinateScale)))
			}
			writeInt32(buf, binarySentinel)
		}
	}
	return buf.Flush()
}

func writeInt32(buf *bufio.Writer, v int32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	buf.Write(b[:])
}
