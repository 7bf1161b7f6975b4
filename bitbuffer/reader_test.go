package bitbuffer

import (
	"testing"

	"github.com/oscillio/tscodec/errs"
	"github.com/stretchr/testify/require"
)

func TestReader_NewReader_CopiesInput(t *testing.T) {
	src := []byte{0xFF}
	r := NewReader(src)
	src[0] = 0x00 // mutating caller's slice must not affect the reader

	v, err := r.ReadBits(8)
	require.NoError(t, err)
	require.Equal(t, uint64(0xFF), v)
}

func TestReader_ReadBits_InvalidWidth(t *testing.T) {
	r := NewReader([]byte{0xFF})

	_, err := r.ReadBits(0)
	require.ErrorIs(t, err, errs.ErrInvalidBitWidth)

	_, err = r.ReadBits(65)
	require.ErrorIs(t, err, errs.ErrInvalidBitWidth)
}

func TestReader_ReadBits_EmptyBuffer(t *testing.T) {
	r := NewReader(nil)
	_, err := r.ReadBits(1)
	require.ErrorIs(t, err, errs.ErrBufferEmpty)
}

func TestReader_ReadBits_OneBitPastEndFails(t *testing.T) {
	r := NewReader([]byte{0xFF})
	_, err := r.ReadBits(8)
	require.NoError(t, err)

	_, err = r.ReadBits(1)
	require.ErrorIs(t, err, errs.ErrBufferEmpty)
	// A failed read must not further decrease availability.
	require.Equal(t, 0, r.BitsAvailable())
}

func TestReader_BitsAvailable_NonIncreasing(t *testing.T) {
	r := NewReader([]byte{0xAA, 0xBB, 0xCC, 0xDD})
	prev := r.BitsAvailable()
	for i := 0; i < 6; i++ {
		_, err := r.ReadBits(5)
		require.NoError(t, err)
		cur := r.BitsAvailable()
		require.Less(t, cur, prev)
		prev = cur
	}
}

func TestReader_ReadBits_SequentialMatchesKnownLayout(t *testing.T) {
	// 0b10110010 0b01110100
	r := NewReader([]byte{0b10110010, 0b01110100})

	v1, err := r.ReadBits(3)
	require.NoError(t, err)
	require.Equal(t, uint64(0b101), v1)

	v2, err := r.ReadBits(5)
	require.NoError(t, err)
	require.Equal(t, uint64(0b10010), v2)

	v3, err := r.ReadBits(8)
	require.NoError(t, err)
	require.Equal(t, uint64(0b01110100), v3)

	require.Equal(t, 0, r.BitsAvailable())
}
