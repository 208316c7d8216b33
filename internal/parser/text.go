package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// textSeparator terminates a feature in the text format.
// Only a line that is exactly "9999" separates features; "9999" appearing
// as a field inside a pair line is ordinary data.
const textSeparator = "9999"

// DecodeText parses the delimited text overlay format (.cno).
//
// The file is a stream of comma-separated longitude,latitude pairs, one pair
// per line, with features separated by lines containing exactly "9999":
//
//	-15.80,28.00
//	-15.67,27.75
//	-15.80,28.00
//	9999
//	-14.25,28.08
//	-13.83,28.25
//
// Blank lines and "#" comments are ignored. Line endings are normalized, so
// CRLF files decode the same as LF files. Values accumulate per feature as a
// flat run and are paired up afterwards; a feature with an odd value count
// fails the whole decode with ErrOddCoordinateCount, and an unparsable token
// fails it with ErrInvalidNumber. Features with no values produce nothing,
// so leading, trailing, and doubled separator lines are harmless.
func DecodeText(data []byte, opts ParseOptions) (*Overlay, error) {
	text := string(data)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	overlay := &Overlay{}
	values := make([]float64, 0, 128)
	featureIndex := 0

	flush := func() error {
		if len(values)%2 != 0 {
			return &ErrOddCoordinateCount{Feature: featureIndex, Count: len(values)}
		}
		if len(values) > 0 {
			coords := make([][]float64, 0, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				coords = append(coords, []float64{values[i], values[i+1]})
			}
			overlay.Features = append(overlay.Features, Feature{Coordinates: coords})
			featureIndex++
		}
		values = values[:0]
		return nil
	}

	for lineno, line := range strings.Split(text, "\n") {
		// Separator check runs on the raw line: " 9999" and "9999 # x"
		// are data, not separators.
		if line == textSeparator {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}

		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		for _, token := range strings.Split(line, ",") {
			token = strings.TrimSpace(token)
			value, err := strconv.ParseFloat(token, 64)
			if err != nil {
				return nil, &ErrInvalidNumber{Line: lineno + 1, Token: token}
			}
			values = append(values, value)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if opts.ValidateCoordinates {
		if err := validateOverlay(overlay); err != nil {
			return nil, err
		}
	}

	return overlay, nil
}

// EncodeText writes an overlay in the delimited text format.
//
// Separator lines are written between features only, so the output decodes
// back to the same features. Values use the shortest representation that
// round-trips through ParseFloat.
func EncodeText(w io.Writer, o *Overlay) error {
	buf := bufio.NewWriter(w)
	for i, feature := range o.Features {
		if i > 0 {
			buf.WriteString(textSeparator)
			buf.WriteByte('\n')
		}
		for _, coord := range feature.Coordinates {
			buf.WriteString(strconv.FormatFloat(coord[0], 'g', -1, 64))
			buf.WriteByte(',')
			buf.WriteString(strconv.FormatFloat(coord[1], 'g', -1, 64))
			buf.WriteByte('\n')
		}
	}
	return buf.Flush()
}
