package tscodec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSingleSeriesWriter_RoundTrip(t *testing.T) {
	tc, err := NewTimeConfig(6)
	require.NoError(t, err)
	def, err := NewValueTypeDefinition("cpu.usage", 2, 0, 100)
	require.NoError(t, err)

	w := NewSingleSeriesWriter(4096, tc, def)
	require.NoError(t, w.Append(Sample{Time: 1_000_000_000, Value: 42.17}))
	require.NoError(t, w.Append(Sample{Time: 2_000_000_000, Value: 42.17}))

	r := NewSingleSeriesReader(w.Bytes(), tc, def)
	var got []Sample
	for s := range r.All() {
		got = append(got, s)
	}
	require.Len(t, got, 2)
	require.InDelta(t, 42.17, got[0].Value, 1e-6)
	require.InDelta(t, 42.17, got[1].Value, 1e-6)
}

func TestNewMultiSeriesWriter_RoundTrip(t *testing.T) {
	tc, err := NewTimeConfig(0)
	require.NoError(t, err)
	defA, err := NewValueTypeDefinition("a", 1, 0, 100)
	require.NoError(t, err)
	defB, err := NewValueTypeDefinition("b", 1, 0, 100)
	require.NoError(t, err)

	w, err := NewMultiSeriesWriter(4096, tc, []ValueTypeDefinition{defA, defB})
	require.NoError(t, err)
	require.NoError(t, w.AppendRow(Row{Time: 0, Values: []float64{1.5, 2.5}}))

	r, err := NewMultiSeriesReader(w.Bytes())
	require.NoError(t, err)
	require.Len(t, r.Channels(), 2)
}
