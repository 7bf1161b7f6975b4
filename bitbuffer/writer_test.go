package bitbuffer

import (
	"testing"

	"github.com/oscillio/tscodec/errs"
	"github.com/stretchr/testify/require"
)

func TestWriter_NewWriter(t *testing.T) {
	w := NewWriter(4)
	require.Equal(t, 32, w.BitsAvailable())
	require.Equal(t, 0, w.BitsWritten())
	require.Nil(t, w.Bytes())
}

func TestWriter_WriteBits_InvalidWidth(t *testing.T) {
	w := NewWriter(4)

	_, errZero := 0, w.WriteBits(1, 0)
	require.ErrorIs(t, errZero, errs.ErrInvalidBitWidth)

	errTooWide := w.WriteBits(1, 65)
	require.ErrorIs(t, errTooWide, errs.ErrInvalidBitWidth)
}

func TestWriter_WriteBits_ExactCapacity(t *testing.T) {
	w := NewWriter(1)
	require.NoError(t, w.WriteBits(0xFF, 8))
	require.Equal(t, 0, w.BitsAvailable())
	require.Equal(t, []byte{0xFF}, w.Bytes())
}

func TestWriter_WriteBits_OneMoreBitFails(t *testing.T) {
	w := NewWriter(1)
	require.NoError(t, w.WriteBits(0, 7))
	err := w.WriteBits(1, 2)
	require.ErrorIs(t, err, errs.ErrBufferFull)
	// Rejected write must not have advanced the cursor.
	require.Equal(t, 1, w.BitsAvailable())
}

func TestWriter_WriteBits_MSBFirstPacking(t *testing.T) {
	w := NewWriter(1)
	require.NoError(t, w.WriteBits(0b101, 3))
	require.NoError(t, w.WriteBits(0b1, 1))
	// 101 then 1, left-aligned in the byte: 1011 0000
	require.Equal(t, byte(0b10110000), w.Bytes()[0])
}

func TestWriter_WriteBits_SpansByteBoundary(t *testing.T) {
	w := NewWriter(2)
	require.NoError(t, w.WriteBits(0b111, 3))
	require.NoError(t, w.WriteBits(0x3FF, 10)) // 10 bits, spans into second byte
	require.Equal(t, 13, w.BitsWritten())

	r := NewReader(w.Bytes())
	v1, err := r.ReadBits(3)
	require.NoError(t, err)
	require.Equal(t, uint64(0b111), v1)

	v2, err := r.ReadBits(10)
	require.NoError(t, err)
	require.Equal(t, uint64(0x3FF), v2)
}

func TestWriter_BitsAvailable_NonIncreasing(t *testing.T) {
	w := NewWriter(8)
	prev := w.BitsAvailable()
	for i := 0; i < 10; i++ {
		require.NoError(t, w.WriteBits(uint64(i), 5))
		cur := w.BitsAvailable()
		require.LessOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestWriter_RoundTrip_AllWidthsAllStartPositions(t *testing.T) {
	for startBit := 0; startBit < 8; startBit++ {
		for n := 1; n <= 64; n++ {
			t.Run("", func(t *testing.T) {
				w := NewWriter(16)
				if startBit > 0 {
					require.NoError(t, w.WriteBits(0, startBit))
				}

				// Use a value whose low n bits are a recognizable pattern.
				var value uint64
				if n == 64 {
					value = 0xA5A5A5A5A5A5A5A5
				} else {
					value = (uint64(1)<<n - 1) & 0xA5A5A5A5A5A5A5A5
				}

				require.NoError(t, w.WriteBits(value, n))

				r := NewReader(w.Bytes())
				if startBit > 0 {
					_, err := r.ReadBits(startBit)
					require.NoError(t, err)
				}

				got, err := r.ReadBits(n)
				require.NoError(t, err)

				want := value
				if n < 64 {
					want &= (uint64(1) << n) - 1
				}
				require.Equal(t, want, got)
			})
		}
	}
}
