package timeseries

import (
	"math"

	"github.com/oscillio/tscodec/internal/hash"
)

// HeaderFingerprint returns a 64-bit diagnostic fingerprint of the
// channels' declared shape (label, precision, min, max, in order). It is
// not part of the normative wire format and is not read by any decoder —
// callers may use it to cheaply detect whether two streams were produced
// against the same channel layout (e.g. to decide whether a cached
// MultiSeriesReader's parsed header can be reused for new bytes).
func (w *MultiSeriesWriter) HeaderFingerprint() uint64 {
	return channelsFingerprint(w.channels)
}

// HeaderFingerprint mirrors MultiSeriesWriter.HeaderFingerprint over the
// channels parsed from an existing reader.
func (r *MultiSeriesReader) HeaderFingerprint() uint64 {
	return channelsFingerprint(r.channels)
}

func channelsFingerprint(channels []ValueTypeDefinition) uint64 {
	var buf []byte
	for _, ch := range channels {
		buf = append(buf, []byte(ch.Label)...)
		buf = append(buf, 0)
		buf = append(buf, ch.PrecisionDecimalPlaces)
		buf = appendFloat64Bits(buf, ch.Min)
		buf = appendFloat64Bits(buf, ch.Max)
	}

	return hash.Sum(buf)
}

func appendFloat64Bits(buf []byte, v float64) []byte {
	bits := math.Float64bits(v)
	for i := 7; i >= 0; i-- {
		buf = append(buf, byte(bits>>(8*i)))
	}

	return buf
}
