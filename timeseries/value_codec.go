package timeseries

import "github.com/oscillio/tscodec/bitbuffer"

// ValueCodec is a stateful encoder/decoder for one numeric channel: clamp
// to [min,max], quantize to fixed decimal places, subtract the minimum to
// get an unsigned integer, and emit a one-bit "changed?" predicate plus
// the integer whenever it changes.
type ValueCodec struct {
	def   ValueTypeDefinition
	first bool
	last  uint64
}

// NewValueCodec returns a codec ready to encode or decode the first sample
// of a channel described by def.
func NewValueCodec(def ValueTypeDefinition) *ValueCodec {
	return &ValueCodec{def: def, first: true}
}

// quantize clamps v to [Min,Max], truncates to the channel's decimal
// precision, and offsets by PreciseMin to land in [0, PreciseMax-PreciseMin].
func (c *ValueCodec) quantize(v float64) uint64 {
	if v < c.def.Min {
		v = c.def.Min
	} else if v > c.def.Max {
		v = c.def.Max
	}

	q := quantizeTruncate(v, c.def.PrecisionDecimalPlaces) - c.def.PreciseMin()

	return uint64(q)
}

// dequantize reverses quantize for a value already known to be in range.
func (c *ValueCodec) dequantize(q uint64) float64 {
	scaled := int64(q) + c.def.PreciseMin()
	scale := pow10(c.def.PrecisionDecimalPlaces)

	return float64(scaled) / scale
}

// Encode appends the encoding of v to w: clamp + quantize, then a
// changed-bit followed by the full value only when it differs from the
// previously encoded sample.
func (c *ValueCodec) Encode(w *bitbuffer.Writer, v float64) error {
	q := c.quantize(v)

	if c.first {
		if err := w.WriteBits(1, 1); err != nil {
			return err
		}
		if err := w.WriteBits(q, int(c.def.BitSize())); err != nil {
			return err
		}

		c.first = false
		c.last = q

		return nil
	}

	if q == c.last {
		return w.WriteBits(0, 1)
	}

	if err := w.WriteBits(1, 1); err != nil {
		return err
	}
	if err := w.WriteBits(q, int(c.def.BitSize())); err != nil {
		return err
	}

	c.last = q

	return nil
}

// Decode reads the next value from r, returning the dequantized double.
func (c *ValueCodec) Decode(r *bitbuffer.Reader) (float64, error) {
	changed, err := r.ReadBits(1)
	if err != nil {
		return 0, err
	}

	if changed == 0 {
		return c.dequantize(c.last), nil
	}

	q, err := r.ReadBits(int(c.def.BitSize()))
	if err != nil {
		return 0, err
	}

	c.last = q
	c.first = false

	return c.dequantize(q), nil
}
