// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/prs

package prs

import "github.com/woozymasta/prs/lz77"

// Dialect selects which PRS wire layout a codec instance speaks. The two
// dialects share the token grammar but disagree on extended match lengths and
// are not interchangeable; there is no way to detect the dialect of a buffer.
type Dialect uint8

const (
	// Legacy is the layout of Dreamcast/Saturn era titles.
	Legacy Dialect = iota
	// Modern is the layout of later titles with larger assets.
	Modern
)

// String returns the lowercase dialect name.
func (d Dialect) String() string {
	switch d {
	case Legacy:
		return "legacy"
	case Modern:
		return "modern"
	default:
		return "unknown"
	}
}

// valid reports whether d is one of the two supported dialects.
func (d Dialect) valid() bool {
	return d == Legacy || d == Modern
}

// DecompressOptions configures decompression.
// Dialect is required; size limits guard against hostile streams when set.
type DecompressOptions struct {
	// Dialect is the wire layout of the stream (Legacy or Modern).
	Dialect Dialect
	// MaxOutputSize limits how many bytes a stream may expand to (0 = no limit).
	MaxOutputSize int
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options for the given dialect with no size limits.
func DefaultDecompressOptions(d Dialect) *DecompressOptions {
	return &DecompressOptions{Dialect: d}
}

// CompressOptions configures compression.
type CompressOptions struct {
	// Dialect is the wire layout to produce (Legacy or Modern).
	Dialect Dialect
	// Level: 1 = fast greedy parse; 2–9 = deeper match search with lazy
	// matching (better ratio, slower). Values outside [1,9] are clamped.
	Level int
	// Finder overrides the token source. Nil uses the pooled default
	// hash-chain finder. Supplied finders are Reset with the wire bounds
	// of Dialect and the search depth of Level before use.
	Finder lz77.MatchFinder
}

// DefaultCompressOptions returns options for fast compression (level 1) in the given dialect.
func DefaultCompressOptions(d Dialect) *CompressOptions {
	return &CompressOptions{Dialect: d, Level: 1}
}
