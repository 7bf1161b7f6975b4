package timeseries

import "github.com/oscillio/tscodec/bitbuffer"

// defaultDelta is the delta-of-delta reset baseline used for the first
// sample of a stream and after every full-timestamp escape.
const defaultDelta int64 = 10

// fullTSPattern is the 5-bit marker (0b11111) for both the mandatory first
// sample and the escape used when a delta-of-delta overflows every bucket.
const (
	fullTSPattern     uint64 = 0b11111
	fullTSPatternBits        = 5
)

type deltaBucket struct {
	pattern      uint64
	patternBits  int
	maxMagnitude uint64
	magBits      int
}

// deltaBuckets holds the four bucket patterns of the prefix code for a
// delta-of-delta's magnitude, smallest magnitude first. A delta-of-delta
// whose magnitude exceeds every bucket's maxMagnitude falls through to the
// fifth pattern, the full-timestamp escape.
var deltaBuckets = []deltaBucket{
	{pattern: 0b10, patternBits: 2, maxMagnitude: 0x3F, magBits: 6},
	{pattern: 0b110, patternBits: 3, maxMagnitude: 0xFF, magBits: 8},
	{pattern: 0b1110, patternBits: 4, maxMagnitude: 0x7FF, magBits: 11},
	{pattern: 0b11110, patternBits: 5, maxMagnitude: 0x7FFFFFFF, magBits: 31},
}

// TimestampCodec is a stateful encoder/decoder for a monotonically
// increasing quantized timestamp stream, using delta-of-delta with a
// five-pattern prefix code plus a sign bit. A single TimestampCodec value
// serves either as an encoder (via Encode) or a decoder (via Decode) over
// its own borrowed bitbuffer.Writer/Reader — never both on the same state.
type TimestampCodec struct {
	first         bool
	previousQ     int64
	previousDelta int64
}

// NewTimestampCodec returns a codec ready to encode or decode the first
// sample of a stream.
func NewTimestampCodec() *TimestampCodec {
	return &TimestampCodec{first: true}
}

// Encode appends the prefix-coded representation of quantized timestamp q
// to w.
func (c *TimestampCodec) Encode(w *bitbuffer.Writer, q int64) error {
	if c.first {
		if err := w.WriteBits(fullTSPattern, fullTSPatternBits); err != nil {
			return err
		}
		if err := w.WriteBits(uint64(q), 64); err != nil {
			return err
		}

		c.first = false
		c.previousQ = q
		c.previousDelta = defaultDelta

		return nil
	}

	delta := q - c.previousQ
	dod := delta - c.previousDelta

	if dod == 0 {
		if err := w.WriteBits(0, 1); err != nil {
			return err
		}

		c.previousQ = q

		return nil
	}

	// Zero-gap removal: shift the unreachable value 0 out of the encoded
	// magnitude space. Flat, sign-independent: subtract 1 before taking
	// the absolute value, regardless of the sign of dod.
	shifted := dod - 1

	var sign uint64
	var magnitude uint64
	if shifted < 1 {
		sign = 1
		magnitude = uint64(-shifted)
	} else {
		sign = 0
		magnitude = uint64(shifted)
	}

	for _, b := range deltaBuckets {
		if magnitude <= b.maxMagnitude {
			if err := w.WriteBits(b.pattern, b.patternBits); err != nil {
				return err
			}
			if err := w.WriteBits(sign, 1); err != nil {
				return err
			}
			if err := w.WriteBits(magnitude, b.magBits); err != nil {
				return err
			}

			c.previousQ = q
			c.previousDelta = delta

			return nil
		}
	}

	// No bucket covers this magnitude: escape to a full 64-bit timestamp
	// and reset the delta baseline, matching the decoder's reset.
	if err := w.WriteBits(fullTSPattern, fullTSPatternBits); err != nil {
		return err
	}
	if err := w.WriteBits(uint64(q), 64); err != nil {
		return err
	}

	c.previousQ = q
	c.previousDelta = defaultDelta

	return nil
}

// Decode reads the next prefix-coded quantized timestamp from r.
func (c *TimestampCodec) Decode(r *bitbuffer.Reader) (int64, error) {
	if c.first {
		if _, err := r.ReadBits(fullTSPatternBits); err != nil {
			return 0, err
		}

		qBits, err := r.ReadBits(64)
		if err != nil {
			return 0, err
		}
		q := int64(qBits)

		c.first = false
		c.previousQ = q
		c.previousDelta = defaultDelta

		return q, nil
	}

	firstBit, err := r.ReadBits(1)
	if err != nil {
		return 0, err
	}

	if firstBit == 0 {
		q := c.previousQ + c.previousDelta
		c.previousQ = q

		return q, nil
	}

	run := 1
	for run < 5 {
		bit, err := r.ReadBits(1)
		if err != nil {
			return 0, err
		}
		if bit != 1 {
			break
		}
		run++
	}

	if run == 5 {
		qBits, err := r.ReadBits(64)
		if err != nil {
			return 0, err
		}
		q := int64(qBits)

		c.previousQ = q
		c.previousDelta = defaultDelta

		return q, nil
	}

	b := deltaBuckets[run-1]

	signBit, err := r.ReadBits(1)
	if err != nil {
		return 0, err
	}

	magnitude, err := r.ReadBits(b.magBits)
	if err != nil {
		return 0, err
	}

	var shifted int64
	if signBit == 1 {
		shifted = -int64(magnitude)
	} else {
		shifted = int64(magnitude)
	}
	dod := shifted + 1

	c.previousDelta += dod
	q := c.previousQ + c.previousDelta
	c.previousQ = q

	return q, nil
}
