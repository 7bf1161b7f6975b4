// Package bitbuffer provides a bit-granular, fixed-capacity byte buffer:
// a Writer that packs arbitrary-width integers (1 to 64 bits) across byte
// boundaries MSB-first, and a Reader that unpacks them back out in the
// same order.
//
// Every higher layer of tscodec — TimestampCodec, ValueCodec,
// SingleSeriesStream, MultiSeriesStream — is built on these two types.
// Neither grows: a Writer is constructed with a declared capacity and
// reports ErrBufferFull the instant a write would exceed it; a Reader is
// constructed from a byte region of known length and reports
// ErrBufferEmpty the instant a read would exceed it. Both fail without
// corrupting bits already committed before the failing call.
package bitbuffer
