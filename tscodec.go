// Package tscodec provides a lossy compression codec for numeric
// time-series data: delta-of-delta timestamps with a five-pattern prefix
// code, and range-clamped fixed-point quantized values with a one-bit
// "changed" predicate.
//
// # Basic usage
//
// Encoding a single channel:
//
//	tc, _ := tscodec.NewTimeConfig(6) // millisecond quantum (10^6 ns)
//	def, _ := tscodec.NewValueTypeDefinition("cpu.usage", 2, 0, 100)
//	w := tscodec.NewSingleSeriesWriter(4096, tc, def)
//	w.Append(tscodec.Sample{Time: startNanos, Value: 42.17})
//	blob := w.Bytes()
//
// Decoding it back:
//
//	r := tscodec.NewSingleSeriesReader(blob, tc, def)
//	for s := range r.All() {
//	    fmt.Printf("t=%d v=%f\n", s.Time, s.Value)
//	}
//
// A multi-series stream is self-describing — the header carries every
// channel's label, precision, and range — so a reader only needs the
// bytes:
//
//	w, _ := tscodec.NewMultiSeriesWriter(65536, tc, []tscodec.ValueTypeDefinition{defA, defB})
//	w.AppendRow(tscodec.Row{Time: startNanos, Values: []float64{1.5, 2.5}})
//	r, _ := tscodec.NewMultiSeriesReader(w.Bytes())
//	for _, ch := range r.Channels() { ... }
//
// # Package structure
//
// This package provides convenient top-level wrappers around the
// timeseries package, which in turn is built on bitbuffer. For advanced
// usage — envelope compression selection, header fingerprinting — use the
// timeseries, compress, and format packages directly.
package tscodec

import "github.com/oscillio/tscodec/timeseries"

// Sample is one (timestamp, value) pair in a single-series stream.
type Sample = timeseries.Sample

// Row is one timestamp plus one value per channel in a multi-series stream.
type Row = timeseries.Row

// ValueTypeDefinition describes one numeric channel's quantization range.
type ValueTypeDefinition = timeseries.ValueTypeDefinition

// TimeConfig describes the timestamp quantization quantum.
type TimeConfig = timeseries.TimeConfig

// NewValueTypeDefinition validates and constructs a ValueTypeDefinition.
func NewValueTypeDefinition(label string, precisionDecimalPlaces uint8, min, max float64) (ValueTypeDefinition, error) {
	return timeseries.NewValueTypeDefinition(label, precisionDecimalPlaces, min, max)
}

// NewTimeConfig validates and constructs a TimeConfig.
func NewTimeConfig(timePrecisionPower uint8) (TimeConfig, error) {
	return timeseries.NewTimeConfig(timePrecisionPower)
}

// NewSingleSeriesWriter allocates a writer with the given fixed capacity
// (bytes) for one channel.
func NewSingleSeriesWriter(capacity int, tc TimeConfig, def ValueTypeDefinition) *timeseries.SingleSeriesWriter {
	return timeseries.NewSingleSeriesWriter(capacity, tc, def)
}

// NewSingleSeriesReader builds a reader over data using the same config
// the writer used.
func NewSingleSeriesReader(data []byte, tc TimeConfig, def ValueTypeDefinition) *timeseries.SingleSeriesReader {
	return timeseries.NewSingleSeriesReader(data, tc, def)
}

// NewMultiSeriesWriter allocates a writer with the given fixed capacity
// (bytes) for the declared channels.
func NewMultiSeriesWriter(capacity int, tc TimeConfig, channels []ValueTypeDefinition, opts ...timeseries.WriterOption) (*timeseries.MultiSeriesWriter, error) {
	return timeseries.NewMultiSeriesWriter(capacity, tc, channels, opts...)
}

// NewMultiSeriesReader builds a reader over data and parses its header.
func NewMultiSeriesReader(data []byte) (*timeseries.MultiSeriesReader, error) {
	return timeseries.NewMultiSeriesReader(data)
}
