// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/prs

package prs

import (
	"fmt"

	"github.com/woozymasta/prs/lz77"
)

// Compress compresses src into a complete stream in the dialect named by
// opts. opts may be nil (legacy dialect, level 1). Levels outside 1-9 are
// clamped; higher levels search harder for matches and never change the
// format. Empty src yields the three-byte terminator-only stream.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions(Legacy)
	}

	if !opts.Dialect.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDialect, uint8(opts.Dialect))
	}

	level := opts.Level
	level = max(level, 1)
	level = min(level, 9)
	cfg := finderConfig(level, opts.Dialect)

	mf := opts.Finder
	if mf == nil {
		f := lz77.AcquireFinder(cfg)
		defer lz77.ReleaseFinder(f)
		mf = f
	}

	if opts.Dialect == Legacy {
		return compressLegacy(src, mf, cfg)
	}

	return compressModern(src, mf, cfg)
}

// maxCompressedSize returns the worst-case stream size for inLen input bytes:
// all literals cost one control bit and one payload byte each, plus the
// terminator.
func maxCompressedSize(inLen int) int {
	return inLen + inLen/8 + 4
}
