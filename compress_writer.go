package prs

import (
	"io"

	"github.com/woozymasta/prs/lz77"
)

// Writer compresses data written to it into a stream on an io.Writer. Output
// leaves incrementally: each flush stops short of the control byte still
// being filled, so bytes already handed to the destination never need
// patching. Close emits the stream terminator; a stream without it is
// truncated.
type Writer struct {
	dst    io.Writer
	mf     lz77.MatchFinder
	owned  *lz77.Finder // pooled finder, nil when the caller supplied one
	encode func(*controlBuffer, lz77.Token) error
	sink   controlBuffer
	err    error
	closed bool
}

// NewWriter returns a Writer producing the dialect named by opts into w.
// opts may be nil (legacy dialect, level 1).
func NewWriter(w io.Writer, opts *CompressOptions) (*Writer, error) {
	if opts == nil {
		opts = DefaultCompressOptions(Legacy)
	}

	var encode func(*controlBuffer, lz77.Token) error
	switch opts.Dialect {
	case Legacy:
		encode = encodeLegacyToken
	case Modern:
		encode = encodeModernToken
	default:
		return nil, ErrUnknownDialect
	}

	level := opts.Level
	level = max(level, 1)
	level = min(level, 9)
	cfg := finderConfig(level, opts.Dialect)

	z := &Writer{dst: w, encode: encode}
	if opts.Finder != nil {
		z.mf = opts.Finder
		z.mf.Reset(cfg)
	} else {
		z.owned = lz77.AcquireFinder(cfg)
		z.mf = z.owned
	}

	return z, nil
}

// Write implements io.Writer. It feeds p to the match finder, serializes
// every token that no further input can change, and flushes the finalized
// output prefix. The token decisions do not depend on how the input is
// chunked, so the stream comes out identical to Compress of the whole input.
func (z *Writer) Write(p []byte) (int, error) {
	if z.closed {
		return 0, ErrClosed
	}
	if z.err != nil {
		return 0, z.err
	}

	z.mf.Append(p)
	if err := z.drain(); err != nil {
		return 0, err
	}
	if err := z.flushSafe(); err != nil {
		return 0, err
	}

	return len(p), nil
}

// Close drains the finder, emits the stream terminator and flushes whatever
// remains. Close after Close returns the first result.
func (z *Writer) Close() error {
	if z.closed {
		return z.err
	}
	z.closed = true

	defer func() {
		if z.owned != nil {
			lz77.ReleaseFinder(z.owned)
			z.owned = nil
		}
		z.mf = nil
	}()

	if z.err != nil {
		return z.err
	}

	z.mf.Finish()
	if err := z.drain(); err != nil {
		return err
	}

	out := z.sink.finish()
	if _, err := z.dst.Write(out); err != nil {
		z.err = err
		return err
	}
	z.sink.out = nil

	return nil
}

// drain serializes every settled token.
func (z *Writer) drain() error {
	for {
		t, ok := z.mf.Next()
		if !ok {
			return nil
		}

		if err := z.encode(&z.sink, t); err != nil {
			z.err = err
			return err
		}
	}
}

// flushSafe writes out everything before the control byte currently being
// filled and shifts the rest down.
func (z *Writer) flushSafe() error {
	n := z.sink.cmdIndex
	if n == 0 {
		return nil
	}

	if _, err := z.dst.Write(z.sink.out[:n]); err != nil {
		z.err = err
		return err
	}

	rem := copy(z.sink.out, z.sink.out[n:])
	z.sink.out = z.sink.out[:rem]
	z.sink.cmdIndex = 0

	return nil
}
