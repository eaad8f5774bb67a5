// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/prs

package prs

// PRS format constants: short/long match bounds shared by both dialects, and
// the per-dialect extended-length parameters.

// Match bounds shared by the Legacy and Modern wire layouts.
const (
	// minMatchLen is the smallest back-reference either dialect can carry.
	minMatchLen = 2
	// maxShortMatchLen is the largest length of the two-control-bit short form.
	maxShortMatchLen = 5
	// maxShortMatchDist is the largest distance of the short form; the
	// offset byte 0 encodes exactly this distance.
	maxShortMatchDist = 256
	// maxSizedMatchLen is the largest length the 3-bit size field can carry.
	maxSizedMatchLen = 9
	// maxMatchDist is the largest distance of the 13-bit long-form offset
	// field; field value 0 is reserved (sentinel / corrupt).
	maxMatchDist = 8191
)

// Per-dialect extended-length parameters. The extended form is selected by a
// zero size field and carries length payload bytes after the offset field.
const (
	// legacyExtendedBias is added to the single extended-length byte.
	legacyExtendedBias = 1
	// legacyMaxMatchLen is the largest match one Legacy token can carry.
	legacyMaxMatchLen = 0xFF + legacyExtendedBias

	// modernExtendedBias is added to the chained extended-length total.
	modernExtendedBias = 10
	// modernChainByte escapes the Modern extended length: it adds
	// modernChainStep and demands another length byte.
	modernChainByte = 0xFF
	// modernChainStep is the amount each chain byte contributes.
	modernChainStep = 255

	// maxChainedLenBytes limits Modern length chains so malformed inputs
	// cannot overflow length reconstruction math.
	maxChainedLenBytes = int(^uint(0)/modernChainStep) - 2
)
