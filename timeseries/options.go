package timeseries

import "github.com/oscillio/tscodec/format"

// WriterOption configures a MultiSeriesWriter at construction time.
type WriterOption func(*MultiSeriesWriter)

// applyWriterOptions applies opts to w in order.
func applyWriterOptions(w *MultiSeriesWriter, opts []WriterOption) {
	for _, opt := range opts {
		opt(w)
	}
}

// WithEnvelopeCompression selects the envelope compression algorithm
// EnvelopeBytes applies to the finished blob. It has no effect on the
// bitstream itself; the default is format.CompressionNone.
func WithEnvelopeCompression(ct format.CompressionType) WriterOption {
	return func(w *MultiSeriesWriter) {
		w.envelope = ct
	}
}
