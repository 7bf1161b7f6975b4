package compress

// NoOpCompressor passes a tscodec blob through unchanged. It is the
// envelope default: the bitstream codec is already dense, so skipping
// envelope compression costs nothing beyond a slice alias.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor returns a compressor that copies nothing and
// allocates nothing.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged.
//
// The returned slice aliases data; callers must not mutate data
// afterward if they still hold the result.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
