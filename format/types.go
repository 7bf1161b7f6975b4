// Package format defines the wire-format constants shared across tscodec:
// the multi-series header version pair and the envelope compression types
// the compress package can wrap a finished blob in.
package format

// CompressionType identifies an optional envelope compression algorithm
// applied to an already-encoded blob. It has no bearing on the bitstream
// itself — a reader decodes the same bits whether or not the blob was
// wrapped with one of these on the way to storage.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone applies no envelope compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd uses Zstandard.
	CompressionS2   CompressionType = 0x3 // CompressionS2 uses S2 (a Snappy extension).
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 uses LZ4.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Multi-series header version. Any change to the wire layout defined in
// MultiSeriesWriter/MultiSeriesReader requires a major bump; purely
// additive header fields require a minor bump.
const (
	HeaderMajorVersion uint8 = 0
	HeaderMinorVersion uint8 = 1
)
