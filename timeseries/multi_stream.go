package timeseries

import (
	"fmt"
	"iter"
	"math"
	"math/bits"

	"github.com/oscillio/tscodec/bitbuffer"
	"github.com/oscillio/tscodec/compress"
	"github.com/oscillio/tscodec/errs"
	"github.com/oscillio/tscodec/format"
)

// MultiSeriesWriter emits a self-describing header followed by rows, each
// row a timestamp plus one value per channel. Unlike SingleSeriesWriter,
// min/max/precision/time-precision are carried in-band — a reader needs
// nothing but the bytes to reconstruct the channel definitions.
//
// Per-channel codec state is kept as an owned slice of *ValueCodec indexed
// by channel, each record mutated in place by the channel's own encode
// calls: each channel's codec state is owned and mutated in place, avoiding
// accidental value-copy staleness from passing channel state by value
// through a shared helper.
type MultiSeriesWriter struct {
	buf      *bitbuffer.Writer
	time     TimeConfig
	channels []ValueTypeDefinition
	tsc      *TimestampCodec
	vcs      []*ValueCodec

	headerWritten bool
	envelope      format.CompressionType
}

// NewMultiSeriesWriter allocates a writer with the given fixed capacity
// (bytes) for the declared channels, in channel order. At least one
// channel is required.
func NewMultiSeriesWriter(capacity int, tc TimeConfig, channels []ValueTypeDefinition, opts ...WriterOption) (*MultiSeriesWriter, error) {
	if len(channels) == 0 {
		return nil, fmt.Errorf("%w: at least one channel is required", errs.ErrInvalidConfig)
	}

	vcs := make([]*ValueCodec, len(channels))
	for i, ch := range channels {
		vcs[i] = NewValueCodec(ch)
	}

	w := &MultiSeriesWriter{
		buf:      bitbuffer.NewWriter(capacity),
		time:     tc,
		channels: channels,
		tsc:      NewTimestampCodec(),
		vcs:      vcs,
		envelope: format.CompressionNone,
	}

	applyWriterOptions(w, opts)

	return w, nil
}

func (w *MultiSeriesWriter) writeHeader() error {
	n := uint32(len(w.channels))

	if err := w.buf.WriteBits(uint64(format.HeaderMajorVersion), 4); err != nil {
		return err
	}
	if err := w.buf.WriteBits(uint64(format.HeaderMinorVersion), 4); err != nil {
		return err
	}
	if err := w.buf.WriteBits(uint64(w.time.TimePrecisionPower), 8); err != nil {
		return err
	}
	if err := w.buf.WriteBits(0, 16); err != nil { // reserved flags, always 0
		return err
	}
	if err := w.buf.WriteBits(uint64(labelIDBitWidth(n)), 32); err != nil {
		return err
	}
	if err := w.buf.WriteBits(uint64(n), 32); err != nil {
		return err
	}

	for _, ch := range w.channels {
		if err := writeChannelHeader(w.buf, ch); err != nil {
			return err
		}
	}

	w.headerWritten = true

	return nil
}

func writeChannelHeader(buf *bitbuffer.Writer, ch ValueTypeDefinition) error {
	labelBytes := append([]byte(ch.Label), '\n')
	for _, b := range labelBytes {
		if err := buf.WriteBits(uint64(b), 8); err != nil {
			return err
		}
	}

	pad := (4 - len(labelBytes)%4) % 4
	for i := 0; i < pad; i++ {
		if err := buf.WriteBits(0, 8); err != nil {
			return err
		}
	}

	if err := buf.WriteBits(uint64(ch.PrecisionDecimalPlaces), 32); err != nil {
		return err
	}
	if err := buf.WriteBits(math.Float64bits(ch.Max), 64); err != nil {
		return err
	}
	if err := buf.WriteBits(math.Float64bits(ch.Min), 64); err != nil {
		return err
	}

	return nil
}

// labelIDBitWidth returns ⌈log2 N⌉, always at least 1.
func labelIDBitWidth(n uint32) uint32 {
	if n <= 1 {
		return 1
	}

	return uint32(bits.Len32(n - 1))
}

// AppendRow encodes one row: the timestamp, then each channel's value in
// declared order. The row's value count must match the channel count.
func (w *MultiSeriesWriter) AppendRow(row Row) error {
	if len(row.Values) != len(w.channels) {
		return fmt.Errorf("%w: got %d values, want %d", errs.ErrRowShapeMismatch, len(row.Values), len(w.channels))
	}

	if !w.headerWritten {
		if err := w.writeHeader(); err != nil {
			return fmt.Errorf("multi series: write header: %w", err)
		}
	}

	q := w.time.Quantize(row.Time)
	if err := w.tsc.Encode(w.buf, q); err != nil {
		return fmt.Errorf("multi series: encode timestamp: %w", err)
	}

	for i, v := range row.Values {
		if err := w.vcs[i].Encode(w.buf, v); err != nil {
			return fmt.Errorf("multi series: encode channel %d (%s): %w", i, w.channels[i].Label, err)
		}
	}

	return nil
}

// AppendAllRows encodes rows in order, stopping at the first failure, and
// returns the number of rows fully committed.
func (w *MultiSeriesWriter) AppendAllRows(rows []Row) int {
	for i, row := range rows {
		if err := w.AppendRow(row); err != nil {
			return i
		}
	}

	return len(rows)
}

// Bytes returns the raw, bit-exact wire bytes written so far, including
// the header once AppendRow has written it.
func (w *MultiSeriesWriter) Bytes() []byte {
	return w.buf.Bytes()
}

// BitsWritten returns the exact number of bits written so far, including
// any partial final byte.
func (w *MultiSeriesWriter) BitsWritten() int {
	return w.buf.BitsWritten()
}

// EnvelopeBytes returns Bytes() wrapped with the writer's configured
// envelope compression algorithm (format.CompressionNone by default).
func (w *MultiSeriesWriter) EnvelopeBytes() ([]byte, error) {
	return compress.EnvelopeCompress(w.envelope, w.Bytes())
}

// MultiSeriesReader is the symmetric counterpart to MultiSeriesWriter. It
// parses the header eagerly at construction so a caller can inspect
// Channels() before decoding any row.
type MultiSeriesReader struct {
	buf      *bitbuffer.Reader
	time     TimeConfig
	channels []ValueTypeDefinition
	tsc      *TimestampCodec
	vcs      []*ValueCodec
}

// NewMultiSeriesReader builds a reader over data and parses its header.
func NewMultiSeriesReader(data []byte) (*MultiSeriesReader, error) {
	buf := bitbuffer.NewReader(data)

	major, err := buf.ReadBits(4)
	if err != nil {
		return nil, fmt.Errorf("multi series: read major version: %w", err)
	}
	minor, err := buf.ReadBits(4)
	if err != nil {
		return nil, fmt.Errorf("multi series: read minor version: %w", err)
	}
	if uint8(major) != format.HeaderMajorVersion || uint8(minor) != format.HeaderMinorVersion {
		return nil, fmt.Errorf("%w: got %d.%d, want %d.%d", errs.ErrVersionMismatch, major, minor, format.HeaderMajorVersion, format.HeaderMinorVersion)
	}

	precisionPower, err := buf.ReadBits(8)
	if err != nil {
		return nil, fmt.Errorf("multi series: read time precision power: %w", err)
	}

	if _, err := buf.ReadBits(16); err != nil { // reserved flags, never interpreted
		return nil, fmt.Errorf("multi series: read reserved flags: %w", err)
	}

	if _, err := buf.ReadBits(32); err != nil { // label_id_bit_width, not otherwise used
		return nil, fmt.Errorf("multi series: read label id bit width: %w", err)
	}

	n, err := buf.ReadBits(32)
	if err != nil {
		return nil, fmt.Errorf("multi series: read channel count: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: channel count must be at least 1", errs.ErrMalformedHeader)
	}

	tc, err := NewTimeConfig(uint8(precisionPower))
	if err != nil {
		return nil, fmt.Errorf("multi series: %w", err)
	}

	channels := make([]ValueTypeDefinition, n)
	for i := range channels {
		ch, err := readChannelHeader(buf)
		if err != nil {
			return nil, fmt.Errorf("multi series: channel %d: %w", i, err)
		}
		channels[i] = ch
	}

	vcs := make([]*ValueCodec, len(channels))
	for i, ch := range channels {
		vcs[i] = NewValueCodec(ch)
	}

	return &MultiSeriesReader{
		buf:      buf,
		time:     tc,
		channels: channels,
		tsc:      NewTimestampCodec(),
		vcs:      vcs,
	}, nil
}

// NewMultiSeriesReaderFromEnvelope reverses EnvelopeBytes, decompressing
// data with ct before parsing it as a multi-series stream.
func NewMultiSeriesReaderFromEnvelope(data []byte, ct format.CompressionType) (*MultiSeriesReader, error) {
	raw, err := compress.EnvelopeDecompress(ct, data)
	if err != nil {
		return nil, fmt.Errorf("multi series: envelope decompress: %w", err)
	}

	return NewMultiSeriesReader(raw)
}

func readChannelHeader(buf *bitbuffer.Reader) (ValueTypeDefinition, error) {
	var label []byte
	bytesRead := 0
	for {
		b, err := buf.ReadBits(8)
		if err != nil {
			return ValueTypeDefinition{}, fmt.Errorf("read label byte: %w", err)
		}
		bytesRead++
		if byte(b) == '\n' {
			break
		}
		label = append(label, byte(b))
	}

	pad := (4 - bytesRead%4) % 4
	for i := 0; i < pad; i++ {
		b, err := buf.ReadBits(8)
		if err != nil {
			return ValueTypeDefinition{}, fmt.Errorf("read label padding: %w", err)
		}
		if b != 0 {
			return ValueTypeDefinition{}, fmt.Errorf("%w: non-zero label padding byte", errs.ErrMalformedHeader)
		}
	}

	precision, err := buf.ReadBits(32)
	if err != nil {
		return ValueTypeDefinition{}, fmt.Errorf("read precision: %w", err)
	}

	maxBits, err := buf.ReadBits(64)
	if err != nil {
		return ValueTypeDefinition{}, fmt.Errorf("read max: %w", err)
	}
	minBits, err := buf.ReadBits(64)
	if err != nil {
		return ValueTypeDefinition{}, fmt.Errorf("read min: %w", err)
	}

	max := math.Float64frombits(maxBits)
	min := math.Float64frombits(minBits)

	return NewValueTypeDefinition(string(label), uint8(precision), min, max)
}

// Channels returns the parsed per-channel definitions, in declared order.
func (r *MultiSeriesReader) Channels() []ValueTypeDefinition {
	return r.channels
}

// NextRow decodes the next row, or returns an error (end-of-stream or
// malformed bits) if none remains.
func (r *MultiSeriesReader) NextRow() (Row, error) {
	q, err := r.tsc.Decode(r.buf)
	if err != nil {
		return Row{}, err
	}

	values := make([]float64, len(r.vcs))
	for i, vc := range r.vcs {
		v, err := vc.Decode(r.buf)
		if err != nil {
			return Row{}, fmt.Errorf("decode channel %d (%s): %w", i, r.channels[i].Label, err)
		}
		values[i] = v
	}

	return Row{Time: r.time.Dequantize(q), Values: values}, nil
}

// All returns an iterator over every row until the first decode failure
// (typically end-of-stream). A caller wanting to distinguish end-of-stream
// from a malformed stream should call NextRow directly instead.
func (r *MultiSeriesReader) All() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for {
			row, err := r.NextRow()
			if err != nil {
				return
			}
			if !yield(row) {
				return
			}
		}
	}
}
