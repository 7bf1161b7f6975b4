package timeseries

import (
	"testing"

	"github.com/oscillio/tscodec/bitbuffer"
	"github.com/stretchr/testify/require"
)

func TestValueCodec_RoundTrip_UnchangedRunsAreOneBitEach(t *testing.T) {
	def, err := NewValueTypeDefinition("v", 1, 0, 100)
	require.NoError(t, err)

	w := bitbuffer.NewWriter(256)
	enc := NewValueCodec(def)
	require.NoError(t, enc.Encode(w, 10.6))
	bitsAfterFirst := w.BitsWritten()

	for i := 0; i < 5; i++ {
		require.NoError(t, enc.Encode(w, 10.6))
	}

	require.Equal(t, 5, w.BitsWritten()-bitsAfterFirst)

	r := bitbuffer.NewReader(w.Bytes())
	dec := NewValueCodec(def)
	for i := 0; i < 6; i++ {
		v, err := dec.Decode(r)
		require.NoError(t, err)
		require.InDelta(t, 10.6, v, 1e-9)
	}
}

func TestValueCodec_ConstantChannel_EncodesOneBit(t *testing.T) {
	def, err := NewValueTypeDefinition("const", 0, 42, 42)
	require.NoError(t, err)

	w := bitbuffer.NewWriter(16)
	enc := NewValueCodec(def)
	require.NoError(t, enc.Encode(w, 42))
	bitsAfterFirst := w.BitsWritten()
	require.NoError(t, enc.Encode(w, 42))
	require.NoError(t, enc.Encode(w, 42))
	require.Equal(t, 2, w.BitsWritten()-bitsAfterFirst)

	r := bitbuffer.NewReader(w.Bytes())
	dec := NewValueCodec(def)
	for i := 0; i < 3; i++ {
		v, err := dec.Decode(r)
		require.NoError(t, err)
		require.Equal(t, 42.0, v)
	}
}

func TestValueCodec_ClampsOutOfRange(t *testing.T) {
	def, err := NewValueTypeDefinition("v", 0, 0, 100)
	require.NoError(t, err)

	w := bitbuffer.NewWriter(16)
	enc := NewValueCodec(def)
	require.NoError(t, enc.Encode(w, 500))

	r := bitbuffer.NewReader(w.Bytes())
	dec := NewValueCodec(def)
	v, err := dec.Decode(r)
	require.NoError(t, err)
	require.Equal(t, 100.0, v)
}

func TestValueCodec_TruncatesTowardZero(t *testing.T) {
	// Input -68710.714987991407 at p=3 decodes as -68710.714 — truncation
	// toward zero, not mathematical floor (which would give -68710.715).
	def, err := NewValueTypeDefinition("v", 3, -250000, 250000)
	require.NoError(t, err)

	w := bitbuffer.NewWriter(64)
	enc := NewValueCodec(def)
	require.NoError(t, enc.Encode(w, -68710.714987991407))

	r := bitbuffer.NewReader(w.Bytes())
	dec := NewValueCodec(def)
	v, err := dec.Decode(r)
	require.NoError(t, err)
	require.InDelta(t, -68710.714, v, 1e-9)
}

func TestValueCodec_ChangedValuesCostFullBitSize(t *testing.T) {
	def, err := NewValueTypeDefinition("v", 0, 0, 1000)
	require.NoError(t, err)

	w := bitbuffer.NewWriter(64)
	enc := NewValueCodec(def)
	require.NoError(t, enc.Encode(w, 0))
	firstBits := w.BitsWritten()

	require.NoError(t, enc.Encode(w, 500))
	secondSampleBits := w.BitsWritten() - firstBits
	require.Equal(t, 1+int(def.BitSize()), secondSampleBits)
}
