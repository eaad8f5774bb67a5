// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/prs

package prs

import "fmt"

// window is the append-only decode buffer. It holds the full output of one
// pass and serves as the source for back-reference copies; there is no
// eviction, so memory use is bounded by the decompressed size. PRS targets
// small-to-medium assets, where whole-pass retention is the expected cost.
// A nonzero limit rejects growth past it before any allocation happens.
type window struct {
	buf   []byte
	limit int // max output bytes, 0 = unbounded
}

// len returns the number of bytes decoded so far.
func (w *window) len() int {
	return len(w.buf)
}

// appendByte appends one literal byte.
func (w *window) appendByte(b byte) error {
	if w.limit > 0 && len(w.buf) >= w.limit {
		return fmt.Errorf("%w: output beyond %d bytes", ErrTooLarge, w.limit)
	}

	w.buf = append(w.buf, b)
	return nil
}

// copyMatch appends length bytes copied from dist bytes behind the current
// end. If dist < length the regions overlap and the copy must run
// byte-by-byte so that repeated bytes (RLE) come out right; the built-in copy
// does not handle overlapping regions where src precedes dst.
func (w *window) copyMatch(dist, length int) error {
	start := len(w.buf) - dist
	if start < 0 {
		return fmt.Errorf("%w: match distance %d exceeds %d decoded bytes", ErrCorruptStream, dist, len(w.buf))
	}

	if w.limit > 0 && len(w.buf)+length > w.limit {
		return fmt.Errorf("%w: output beyond %d bytes", ErrTooLarge, w.limit)
	}

	if dist >= length {
		w.buf = append(w.buf, w.buf[start:start+length]...)
		return nil
	}

	base := len(w.buf)
	w.buf = append(w.buf, make([]byte, length)...)
	for i := range length {
		w.buf[base+i] = w.buf[start+i]
	}

	return nil
}
