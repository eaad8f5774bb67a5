// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/prs

package prs

import (
	"fmt"

	"github.com/woozymasta/prs/lz77"
)

// encodeLegacyToken serializes one token. Short form covers lengths 2-5
// within distance 256, the sized long form lengths 3-9, the extended long
// form lengths up to 256 with a single biased count byte. A 2-byte match
// beyond distance 256 has no wire form and is rejected.
func encodeLegacyToken(c *controlBuffer, t lz77.Token) error {
	if !t.IsMatch() {
		c.writeBit(true)
		c.writeByte(t.Literal)
		return nil
	}

	dist, length := t.Distance, t.Length
	if dist < 1 || dist > maxMatchDist || length < minMatchLen || length > legacyMaxMatchLen {
		return fmt.Errorf("%w: match length=%d distance=%d not encodable", ErrCompressInternal, length, dist)
	}

	switch {
	case length <= maxShortMatchLen && dist <= maxShortMatchDist:
		c.writeBit(false)
		c.writeBit(false)
		n := length - minMatchLen
		c.writeBit(n&2 != 0)
		c.writeBit(n&1 != 0)
		c.writeByte(byte(maxShortMatchDist - dist))

	case length == minMatchLen:
		return fmt.Errorf("%w: 2-byte match at distance %d beyond %d", ErrCompressInternal, dist, maxShortMatchDist)

	case length <= maxSizedMatchLen:
		c.writeBit(false)
		c.writeBit(true)
		c.writeLE16(uint16((maxMatchDist+1-dist)<<3 | (length - minMatchLen))) //nolint:gosec // G115: fits 16 bits by the bounds above

	default:
		c.writeBit(false)
		c.writeBit(true)
		c.writeLE16(uint16((maxMatchDist + 1 - dist) << 3)) //nolint:gosec // G115: fits 16 bits by the bounds above
		c.writeByte(byte(length - legacyExtendedBias))
	}

	return nil
}

// compressLegacy drives mf over src and serializes its tokens into a
// complete legacy stream.
func compressLegacy(src []byte, mf lz77.MatchFinder, cfg lz77.Config) ([]byte, error) {
	sink := controlBuffer{out: make([]byte, 0, maxCompressedSize(len(src)))}

	mf.Reset(cfg)
	mf.Append(src)
	mf.Finish()

	pos := 0
	for {
		t, ok := mf.Next()
		if !ok {
			break
		}

		if !t.IsMatch() {
			sink.writeBit(true)
			sink.writeByte(t.Literal)
			pos++
			continue
		}

		if pos+t.Length > len(src) {
			return nil, fmt.Errorf("%w: token overruns input at %d", ErrCompressInternal, pos)
		}

		if t.Length == minMatchLen && t.Distance > maxShortMatchDist {
			// No wire form for these; emit the two bytes themselves.
			sink.writeBit(true)
			sink.writeByte(src[pos])
			sink.writeBit(true)
			sink.writeByte(src[pos+1])
			pos += 2
			continue
		}

		if err := encodeLegacyToken(&sink, t); err != nil {
			return nil, err
		}
		pos += t.Length
	}

	if pos != len(src) {
		return nil, fmt.Errorf("%w: tokens covered %d of %d input bytes", ErrCompressInternal, pos, len(src))
	}

	return sink.finish(), nil
}
