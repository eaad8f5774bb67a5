// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/prs

package prs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// stepFunc advances a decode by exactly one token.
type stepFunc func(*controlReader, *window) (done bool, err error)

// dialectStep returns the decode step for d. The two dialects are separate
// functions rather than one parameterized loop so each stays a straight-line
// decoder for its own grammar.
func dialectStep(d Dialect) (stepFunc, error) {
	switch d {
	case Legacy:
		return legacyStep, nil
	case Modern:
		return modernStep, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownDialect, uint8(d))
	}
}

// Decompress decompresses a complete stream from src in the dialect named by
// opts. Returns ErrOptionsRequired if opts is nil; ErrEmptyInput if src is
// empty. Input bytes after the stream terminator are ignored.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	out, _, err := DecompressN(src, opts)
	return out, err
}

// DecompressN decompresses a complete stream from src and also returns the
// number of input bytes consumed through the stream terminator (nRead).
// nRead is 0 on error. Use this when advancing across back-to-back streams.
func DecompressN(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	if opts == nil {
		return nil, 0, ErrOptionsRequired
	}

	step, err := dialectStep(opts.Dialect)
	if err != nil {
		return nil, 0, err
	}

	if len(src) == 0 {
		return nil, 0, ErrEmptyInput
	}

	br := bytes.NewReader(src)
	w := window{buf: make([]byte, 0, 2*len(src)), limit: opts.MaxOutputSize}
	if err := decodeAll(step, &controlReader{br: br}, &w); err != nil {
		return nil, 0, err
	}

	return w.buf, len(src) - br.Len(), nil
}

// DecompressFromReader decompresses a complete stream from r, decoding as it
// reads instead of slurping the input first. If opts.MaxInputSize > 0 and the
// stream needs more input bytes than that, returns ErrTooLarge.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	zr, err := NewReader(r, opts)
	if err != nil {
		return nil, err
	}

	out, err := io.ReadAll(zr)
	if err != nil {
		if errors.Is(err, ErrUnexpectedEOF) && zr.in.n == 0 {
			return nil, ErrEmptyInput
		}

		return nil, err
	}

	return out, nil
}

// decodeAll runs step until the stream terminator.
func decodeAll(step stepFunc, c *controlReader, w *window) error {
	for {
		done, err := step(c, w)
		if err != nil {
			return err
		}

		if done {
			return nil
		}
	}
}
