// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/prs

package prs

import "errors"

// Sentinel errors for decompression and compression.
var (
	// ErrEmptyInput is returned when the input slice or stream is empty.
	ErrEmptyInput = errors.New("empty input")
	// ErrUnexpectedEOF is returned when the stream ends while a control byte
	// or payload byte is still required (before the termination sentinel).
	ErrUnexpectedEOF = errors.New("unexpected end of stream")
	// ErrCorruptStream is returned when a decoded field violates the format:
	// a zero offset field outside the sentinel, a back-reference past the
	// start of the output, or a malformed chained length.
	ErrCorruptStream = errors.New("corrupt stream")
	// ErrTooLarge is returned when decompression exceeds MaxOutputSize, or
	// DecompressFromReader reads more than MaxInputSize bytes.
	ErrTooLarge = errors.New("stream exceeds configured size limit")
	// ErrOptionsRequired is returned when a decompression entry point is
	// called with nil options (the dialect must be chosen explicitly).
	ErrOptionsRequired = errors.New("options required: Dialect must be set")
	// ErrUnknownDialect is returned when Options carry a Dialect value that
	// is neither Legacy nor Modern.
	ErrUnknownDialect = errors.New("unknown dialect")
	// ErrClosed is returned when a Writer is used after Close.
	ErrClosed = errors.New("writer already closed")

	// ErrCompressInternal is returned when the compressor hits an internal invariant violation
	// (e.g. a token the wire format cannot carry). Callers can use errors.Is(err, prs.ErrCompressInternal).
	ErrCompressInternal = errors.New("internal compressor error")
)
