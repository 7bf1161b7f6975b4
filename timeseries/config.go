// Package timeseries implements the bitstream codec on top of bitbuffer:
// TimestampCodec, ValueCodec, and the single- and multi-series streams that
// compose them.
package timeseries

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/oscillio/tscodec/errs"
)

// quantizeTruncate converts a float64 scaled by 10^p to its fixed-point
// integer representative by truncating toward zero, matching the original
// implementation's C-style cast rather than a mathematical floor (floor
// would round a negative scaled value one unit too far away from zero).
func quantizeTruncate(v float64, p uint8) int64 {
	return int64(v * pow10(p))
}

// pow10 returns 10^p as a float64.
func pow10(p uint8) float64 {
	return math.Pow(10, float64(p))
}

// bitSizeFor returns the number of bits needed to represent any integer in
// [0, rangeInclusive], always at least 1.
func bitSizeFor(rangeInclusive uint64) uint8 {
	if rangeInclusive == 0 {
		return 1
	}

	n := rangeInclusive + 1
	size := bits.Len64(n - 1)
	if size == 0 {
		size = 1
	}

	return uint8(size)
}

// ValueTypeDefinition describes one numeric channel's quantization range: a
// label, a number of fixed decimal places, and a clamp range [Min, Max].
type ValueTypeDefinition struct {
	Label                  string
	PrecisionDecimalPlaces uint8
	Min                    float64
	Max                    float64

	preciseMin int64
	preciseMax int64
	bitSize    uint8
}

// NewValueTypeDefinition validates and constructs a ValueTypeDefinition,
// computing its derived PreciseMin, PreciseMax, and BitSize.
func NewValueTypeDefinition(label string, precisionDecimalPlaces uint8, min, max float64) (ValueTypeDefinition, error) {
	for _, r := range label {
		if r == '\n' {
			return ValueTypeDefinition{}, fmt.Errorf("%w: label must not contain a newline", errs.ErrInvalidConfig)
		}
	}
	if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) {
		return ValueTypeDefinition{}, fmt.Errorf("%w: min and max must be finite", errs.ErrInvalidConfig)
	}
	if min > max {
		return ValueTypeDefinition{}, fmt.Errorf("%w: min (%v) must be <= max (%v)", errs.ErrInvalidConfig, min, max)
	}

	preciseMin := quantizeTruncate(min, precisionDecimalPlaces)
	preciseMax := quantizeTruncate(max, precisionDecimalPlaces)

	return ValueTypeDefinition{
		Label:                  label,
		PrecisionDecimalPlaces: precisionDecimalPlaces,
		Min:                    min,
		Max:                    max,
		preciseMin:             preciseMin,
		preciseMax:             preciseMax,
		bitSize:                bitSizeFor(uint64(preciseMax - preciseMin)),
	}, nil
}

// PreciseMin returns Min · 10^p truncated toward zero.
func (d ValueTypeDefinition) PreciseMin() int64 { return d.preciseMin }

// PreciseMax returns Max · 10^p truncated toward zero.
func (d ValueTypeDefinition) PreciseMax() int64 { return d.preciseMax }

// BitSize returns the number of bits needed to store any quantized value
// for this channel; always at least 1, even for a constant (Min == Max)
// channel.
func (d ValueTypeDefinition) BitSize() uint8 { return d.bitSize }

// TimeConfig describes the quantization quantum applied to timestamps:
// time_precision_power T in [0,9], quantum 10^T nanoseconds.
type TimeConfig struct {
	TimePrecisionPower uint8

	divisor int64
}

// NewTimeConfig validates and constructs a TimeConfig.
func NewTimeConfig(timePrecisionPower uint8) (TimeConfig, error) {
	if timePrecisionPower > 9 {
		return TimeConfig{}, fmt.Errorf("%w: time_precision_power must be in [0,9], got %d", errs.ErrInvalidConfig, timePrecisionPower)
	}

	divisor := int64(1)
	for i := uint8(0); i < timePrecisionPower; i++ {
		divisor *= 10
	}

	return TimeConfig{TimePrecisionPower: timePrecisionPower, divisor: divisor}, nil
}

// Divisor returns 10^T.
func (c TimeConfig) Divisor() int64 { return c.divisor }

// Quantize rounds t (nanoseconds) to the nearest multiple of the quantum
// using half-up rounding on the truncated tail, returning q such that the
// dequantized timestamp is q * Divisor().
func (c TimeConfig) Quantize(t int64) int64 {
	if c.divisor == 1 {
		return t
	}

	neg := t < 0
	abs := t
	if neg {
		abs = -t
	}

	q := abs / c.divisor
	tail := abs % c.divisor
	if tail*2 >= c.divisor {
		q++
	}

	if neg {
		return -q
	}

	return q
}

// Dequantize returns q * Divisor(), the reconstructed timestamp.
func (c TimeConfig) Dequantize(q int64) int64 {
	return q * c.divisor
}
