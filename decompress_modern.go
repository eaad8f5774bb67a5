// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/prs

package prs

import "fmt"

// modernStep decodes one modern token. The grammar is the legacy one except
// for extended lengths, which chain: every 0xFF byte adds 255 and demands
// another byte, and the first other byte closes the run with bias 10.
func modernStep(c *controlReader, w *window) (done bool, err error) {
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
		ext := 0
		for chunks := 0; ; chunks++ {
			// Cap chain runs so malformed inputs cannot overflow
			// length reconstruction math.
			if chunks > maxChainedLenBytes {
				return false, fmt.Errorf("%w: runaway chained length", ErrCorruptStream)
			}

			b, err := c.readPayloadByte()
			if err != nil {
				return false, err
			}

			if b != modernChainByte {
				ext += int(b)
				break
			}
			ext += modernChainStep
		}

		length = modernExtendedBias + ext
	} else {
		length += minMatchLen
	}

	return false, w.copyMatch(dist, length)
}
