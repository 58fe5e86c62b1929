// Package arithcoder implements a lossless arithmetic coder: a range-based
// entropy codec that compresses a sequence of symbols to a bitstream whose
// length approaches the sequence's empirical entropy, and decodes that
// bitstream back to the exact input.
//
// The codec is built from four pieces: a fixed-width integer Range, a
// SymbolModel capability (and its CountModel implementation) mapping symbols
// to sub-intervals, and an Encoder/Decoder pair that narrow the Range one
// symbol at a time. Bit-level I/O is provided by the bitio subpackage.
// Compress and Decompress wire these together with a length-prefixed
// container format; cmd/arithc and cmd/arithd are thin CLI drivers around
// them.
package arithcoder
