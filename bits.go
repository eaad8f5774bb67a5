package prs

import (
	"errors"
	"io"
)

// Control bits select literal vs. match interpretation of the payload bytes
// that follow. They are packed least-significant-bit first into control bytes
// interleaved with the payload in one stream: the reader fetches a fresh
// control byte whenever the previous one is exhausted, and the writer patches
// the current control byte in place while payload bytes land after it.

// controlReader unpacks control bits and payload bytes from a byte stream.
type controlReader struct {
	br   io.ByteReader
	cmds byte  // current control byte; consumed bits are shifted out
	rem  uint8 // control bits left in cmds
}

// readBit returns the next control bit, refilling from the stream on demand.
func (c *controlReader) readBit() (bool, error) {
	if c.rem == 0 {
		b, err := c.br.ReadByte()
		if err != nil {
			return false, mapSourceErr(err)
		}
		c.cmds = b
		c.rem = 8
	}

	bit := c.cmds&1 != 0
	c.cmds >>= 1
	c.rem--

	return bit, nil
}

// readPayloadByte reads one payload byte from the underlying stream.
func (c *controlReader) readPayloadByte() (byte, error) {
	b, err := c.br.ReadByte()
	if err != nil {
		return 0, mapSourceErr(err)
	}

	return b, nil
}

// readPayloadLE16 reads one little-endian uint16 payload field.
func (c *controlReader) readPayloadLE16() (uint16, error) {
	lo, err := c.br.ReadByte()
	if err != nil {
		return 0, mapSourceErr(err)
	}

	hi, err := c.br.ReadByte()
	if err != nil {
		return 0, mapSourceErr(err)
	}

	return uint16(lo) | uint16(hi)<<8, nil
}

// mapSourceErr maps end-of-data from the source to ErrUnexpectedEOF; a valid
// stream always terminates at the sentinel, never at source EOF. Other source
// errors pass through untouched.
func mapSourceErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrUnexpectedEOF
	}

	return err
}

// controlBuffer packs control bits and payload bytes into a growing output
// buffer. cmdIndex marks the control byte currently being filled; everything
// before it is final and safe to flush.
type controlBuffer struct {
	out      []byte
	cmdIndex int   // index of the current control byte in out
	bitsRem  uint8 // bits still writable at out[cmdIndex]
}

// writeBit appends one control bit, starting a fresh control byte when the
// current one is full.
func (c *controlBuffer) writeBit(bit bool) {
	if c.bitsRem == 0 {
		c.cmdIndex = len(c.out)
		c.out = append(c.out, 0)
		c.bitsRem = 8
	}

	if bit {
		c.out[c.cmdIndex] |= 1 << (8 - c.bitsRem)
	}

	c.bitsRem--
}

// writeByte appends one payload byte.
func (c *controlBuffer) writeByte(b byte) {
	c.out = append(c.out, b)
}

// writeLE16 appends one little-endian uint16 payload field.
func (c *controlBuffer) writeLE16(v uint16) {
	c.out = append(c.out, byte(v), byte(v>>8))
}

// finish appends the termination sentinel (control bits 0,1 and a zero offset
// field) and returns the completed stream. Unused bits of the final control
// byte stay zero.
func (c *controlBuffer) finish() []byte {
	c.writeBit(false)
	c.writeBit(true)
	c.out = append(c.out, 0, 0)

	return c.out
}

// countingByteReader wraps an io.ByteReader and counts consumed bytes,
// optionally failing once a read limit is crossed.
type countingByteReader struct {
	br    io.ByteReader
	n     int
	limit int // 0 = no limit
}

func (c *countingByteReader) ReadByte() (byte, error) {
	if c.limit > 0 && c.n >= c.limit {
		return 0, ErrTooLarge
	}

	b, err := c.br.ReadByte()
	if err != nil {
		return 0, err
	}
	c.n++

	return b, nil
}
