// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/prs

package prs

import "fmt"

// legacyStep decodes one legacy token: a literal, a short match, a long
// match, or the termination sentinel. It returns done=true on the sentinel
// and leaves the stream positioned on the next token otherwise, so a decode
// can stop between any two tokens and resume later.
func legacyStep(c *controlReader, w *window) (done bool, err error) {
	bit, err := c.readBit()
	if err != nil {
		return false, err
	}

	if bit {
		b, err := c.readPayloadByte()
		if err != nil {
			return false, err
		}

		return false, w.appendByte(b)
	}

	long, err := c.readBit()
	if err != nil {
		return false, err
	}

	if !long {
		// Short match: two control bits of length, high bit first, then
		// one offset byte counting back from 256.
		hi, err := c.readBit()
		if err != nil {
			return false, err
		}

		lo, err := c.readBit()
		if err != nil {
			return false, err
		}

		length := minMatchLen
		if hi {
			length += 2
		}
		if lo {
			length++
		}

		b, err := c.readPayloadByte()
		if err != nil {
			return false, err
		}

		return false, w.copyMatch(maxShortMatchDist-int(b), length)
	}

	v, err := c.readPayloadLE16()
	if err != nil {
		return false, err
	}

	// An all-zero pair is the stream terminator.
	if v == 0 {
		return true, nil
	}

	offField := int(v >> 3)
	if offField == 0 {
		return false, fmt.Errorf("%w: zero offset field outside terminator", ErrCorruptStream)
	}
	dist := maxMatchDist + 1 - offField

	length := int(v & 7)
	if length == 0 {
		// Extended length: one byte, bias 1.
		ext, err := c.readPayloadByte()
		if err != nil {
			return false, err
		}

		length = int(ext) + legacyExtendedBias
	} else {
		length += minMatchLen
	}

	return false, w.copyMatch(dist, length)
}
