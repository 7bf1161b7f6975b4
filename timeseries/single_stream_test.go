package timeseries

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSingleSeriesStream_QuantizesAndRoundTripsMixedTimestamps(t *testing.T) {
	tc, err := NewTimeConfig(2)
	require.NoError(t, err)
	def, err := NewValueTypeDefinition("v", 1, 0.0, 100.0)
	require.NoError(t, err)

	samples := []Sample{
		{100, 10.673},
		{50, 10.6},
		{40, 10.6},
		{300, 10.6},
		{300, 10.6},
		{400, 10.6},
		{800, 10.6},
		{800012, 10.6},
		{1422568543752950000, 10.6},
	}

	w := NewSingleSeriesWriter(4096, tc, def)
	require.Equal(t, len(samples), w.AppendAll(samples))

	r := NewSingleSeriesReader(w.Bytes(), tc, def)

	wantTimes := []int64{100, 100, 0, 300, 300, 400, 800, 800000, 1422568543752950000}
	var gotTimes []int64
	for s := range r.All() {
		gotTimes = append(gotTimes, s.Time)
		require.InDelta(t, 10.6, s.Value, 1e-9)
	}
	require.Equal(t, wantTimes, gotTimes)
}

func TestSingleSeriesStream_StopsAtFirstDecodeFailure(t *testing.T) {
	tc, err := NewTimeConfig(0)
	require.NoError(t, err)
	def, err := NewValueTypeDefinition("v", 0, 0, 10)
	require.NoError(t, err)

	// Capacity enough for the header-less first sample (5+64 timestamp bits
	// plus 1+4 value bits = 74 of 80) but not a second.
	w := NewSingleSeriesWriter(10, tc, def)
	committed := w.AppendAll([]Sample{{1, 5}, {2, 6}, {3, 7}})
	require.Less(t, committed, 3)

	r := NewSingleSeriesReader(w.Bytes(), tc, def)
	count := 0
	for range r.All() {
		count++
	}
	require.Equal(t, committed, count)
}

func TestSingleSeriesWriter_BufferFullStopsAppendAll(t *testing.T) {
	tc, err := NewTimeConfig(0)
	require.NoError(t, err)
	def, err := NewValueTypeDefinition("v", 0, 0, 1)
	require.NoError(t, err)

	w := NewSingleSeriesWriter(1, tc, def)
	samples := make([]Sample, 100)
	for i := range samples {
		samples[i] = Sample{Time: int64(i), Value: float64(i % 2)}
	}

	committed := w.AppendAll(samples)
	require.Less(t, committed, len(samples))
	require.Equal(t, committed, w.Len())
}

func TestSingleSeriesStream_ReEncodeIsByteIdenticalToOriginal(t *testing.T) {
	tc, err := NewTimeConfig(2)
	require.NoError(t, err)
	def, err := NewValueTypeDefinition("v", 1, -1000, 1000)
	require.NoError(t, err)

	samples := []Sample{
		{100, 10.6},
		{50, -42.3},
		{40, -42.3},
		{300, 999.9},
		{800012, 0},
	}

	w := NewSingleSeriesWriter(4096, tc, def)
	require.Equal(t, len(samples), w.AppendAll(samples))
	original := append([]byte(nil), w.Bytes()...)

	r := NewSingleSeriesReader(original, tc, def)
	var decoded []Sample
	for s := range r.All() {
		decoded = append(decoded, s)
	}
	require.Len(t, decoded, len(samples))

	w2 := NewSingleSeriesWriter(4096, tc, def)
	require.Equal(t, len(decoded), w2.AppendAll(decoded))

	require.Equal(t, original, w2.Bytes())
}
