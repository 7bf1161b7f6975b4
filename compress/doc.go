// Package compress provides optional envelope compression codecs for a
// finished tscodec bitstream blob.
//
// The bitstream itself already exploits structure in the data (delta-of-delta
// timestamps, fixed-point quantized values); this package is a second,
// independent stage that a caller may apply to the resulting bytes before
// handing them to storage or a network, and must reverse before handing them
// back to a bitbuffer.Reader. It has no bearing on the bitstream's semantics —
// decoding is identical whether or not the blob passed through one of these.
//
// # Algorithms
//
//   - None (format.CompressionNone): passthrough, zero overhead.
//   - Zstd (format.CompressionZstd): best ratio, moderate speed. Good for
//     cold storage and network transmission.
//   - S2 (format.CompressionS2): a Snappy extension, balanced speed/ratio.
//     Good for hot-path ingestion.
//   - LZ4 (format.CompressionLZ4): fastest decompression, moderate ratio.
//     Good for query-heavy read paths.
//
// # Usage
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "envelope")
//	compressed, err := codec.Compress(blob)
//	...
//	original, err := codec.Decompress(compressed)
//
// All four algorithms share the Codec interface, so a caller can select one
// by format.CompressionType at construction time and treat them uniformly
// afterward.
package compress
