package timeseries

import (
	"fmt"
	"iter"

	"github.com/oscillio/tscodec/bitbuffer"
)

// SingleSeriesWriter composes one TimestampCodec and one ValueCodec over a
// shared BitBuffer. Min/max/precision/time-precision are carried
// out-of-band — the wire bytes hold no header.
//
// The buffer, not the codec states, owns the memory; a SingleSeriesWriter
// is a clean owning stream rather than a codec that aliases a buffer it
// does not own.
type SingleSeriesWriter struct {
	buf   *bitbuffer.Writer
	time  TimeConfig
	tsc   *TimestampCodec
	vc    *ValueCodec
	count int
}

// NewSingleSeriesWriter allocates a writer with the given fixed capacity
// (bytes) for one channel described by def, quantizing timestamps per tc.
func NewSingleSeriesWriter(capacity int, tc TimeConfig, def ValueTypeDefinition) *SingleSeriesWriter {
	return &SingleSeriesWriter{
		buf:  bitbuffer.NewWriter(capacity),
		time: tc,
		tsc:  NewTimestampCodec(),
		vc:   NewValueCodec(def),
	}
}

// Append encodes one sample. Both the timestamp and value fields must
// succeed for the sample to be considered appended; there is no
// transactional rollback on a mid-sample BufferFull — a buffer that runs
// out mid-sample is truncated at that sample, and a reader built over its
// bytes will stop before it.
func (w *SingleSeriesWriter) Append(s Sample) error {
	q := w.time.Quantize(s.Time)

	if err := w.tsc.Encode(w.buf, q); err != nil {
		return fmt.Errorf("single series: encode timestamp: %w", err)
	}
	if err := w.vc.Encode(w.buf, s.Value); err != nil {
		return fmt.Errorf("single series: encode value: %w", err)
	}

	w.count++

	return nil
}

// AppendAll encodes samples in order, stopping at the first failure. It
// returns the number of samples fully committed, never an error for a
// partial append — that mirrors the no-rollback failure model of Append
// itself and lets a caller bulk-load a stream up to its buffer capacity.
func (w *SingleSeriesWriter) AppendAll(samples []Sample) int {
	for i, s := range samples {
		if err := w.Append(s); err != nil {
			return i
		}
	}

	return len(samples)
}

// Bytes returns the raw, bit-exact wire bytes written so far.
func (w *SingleSeriesWriter) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of samples successfully appended.
func (w *SingleSeriesWriter) Len() int {
	return w.count
}

// SingleSeriesReader is the symmetric counterpart to SingleSeriesWriter.
type SingleSeriesReader struct {
	buf  *bitbuffer.Reader
	time TimeConfig
	tsc  *TimestampCodec
	vc   *ValueCodec
}

// NewSingleSeriesReader builds a reader over data, using the same
// TimeConfig and ValueTypeDefinition the writer used.
func NewSingleSeriesReader(data []byte, tc TimeConfig, def ValueTypeDefinition) *SingleSeriesReader {
	return &SingleSeriesReader{
		buf:  bitbuffer.NewReader(data),
		time: tc,
		tsc:  NewTimestampCodec(),
		vc:   NewValueCodec(def),
	}
}

// Next decodes the next sample, or returns an error (end-of-stream or
// malformed bits) if none remains.
func (r *SingleSeriesReader) Next() (Sample, error) {
	q, err := r.tsc.Decode(r.buf)
	if err != nil {
		return Sample{}, err
	}

	v, err := r.vc.Decode(r.buf)
	if err != nil {
		return Sample{}, err
	}

	return Sample{Time: r.time.Dequantize(q), Value: v}, nil
}

// All returns an iterator over every sample until the first decode
// failure (typically end-of-stream). It is a read-all convenience; a
// caller wanting to distinguish end-of-stream from a malformed stream
// should call Next directly instead.
func (r *SingleSeriesReader) All() iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		for {
			s, err := r.Next()
			if err != nil {
				return
			}
			if !yield(s) {
				return
			}
		}
	}
}

