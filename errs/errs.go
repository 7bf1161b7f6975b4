// Package errs centralizes the sentinel errors used across tscodec.
//
// Call sites wrap these with fmt.Errorf("%w: ...", errs.ErrXxx, ...) to add
// context; callers use errors.Is against the sentinel to classify a
// failure, matching the error taxonomy the bitstream codec defines.
package errs

import "errors"

var (
	// ErrBufferFull is returned by a writer when a write would advance past
	// the buffer's declared capacity. Previously committed samples remain
	// valid; the caller stops the session.
	ErrBufferFull = errors.New("bitbuffer: buffer full")

	// ErrBufferEmpty is returned by a reader when a read would require more
	// bits than remain unconsumed in the buffer.
	ErrBufferEmpty = errors.New("bitbuffer: insufficient bits remaining")

	// ErrInvalidBitWidth is returned when a caller requests a write/read of
	// a bit width outside [1, 64].
	ErrInvalidBitWidth = errors.New("bitbuffer: bit width must be in [1, 64]")

	// ErrVersionMismatch is returned by a multi-series reader when the
	// header's major/minor version does not match this implementation's.
	ErrVersionMismatch = errors.New("multiseries: header version mismatch")

	// ErrMalformedHeader is returned by a multi-series reader when the
	// header fails a structural check (e.g. non-zero label padding bytes).
	ErrMalformedHeader = errors.New("multiseries: malformed header")

	// ErrRowShapeMismatch is returned by a multi-series writer when a row's
	// value count does not match the channel count declared in the header.
	ErrRowShapeMismatch = errors.New("multiseries: row value count does not match channel count")

	// ErrInvalidConfig is returned at construction time when a
	// ValueTypeDefinition or TimeConfig is invalid (non-finite min/max,
	// min > max, negative precision, time precision power out of [0,9]).
	ErrInvalidConfig = errors.New("tscodec: invalid configuration")

	// ErrUnsupportedCompression is returned by the compress package when
	// asked to build a codec for an unrecognized format.CompressionType.
	ErrUnsupportedCompression = errors.New("compress: unsupported compression type")
)
