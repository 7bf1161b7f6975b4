// Package hash provides the xxHash64 digest used as a cheap fingerprint
// for multi-series headers.
package hash

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 digest of data.
//
// This is used as a diagnostic fingerprint over a byte string built from a
// multi-series stream's channel definitions (see HeaderFingerprint in the
// timeseries package), not as part of the normative wire format — two
// readers can cheaply compare fingerprints to confirm they agree on channel
// layout without a byte-for-byte comparison.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
