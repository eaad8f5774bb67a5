package prs

import (
	"bufio"
	"io"
)

// Reader decompresses a stream incrementally from an io.Reader. It decodes
// whole tokens only, so between any two Read calls its state sits exactly on
// a token boundary and the next call resumes there. After the stream
// terminator Read returns io.EOF; bytes past the terminator are left unread
// in the source.
type Reader struct {
	ctrl   controlReader
	in     *countingByteReader
	w      window
	step   stepFunc
	served int // window bytes already handed to the caller
	done   bool
	err    error // sticky decode failure
}

// NewReader returns a Reader decoding the dialect named by opts from r.
// Returns ErrOptionsRequired if opts is nil. If r is not an io.ByteReader it
// is wrapped in a bufio.Reader, so r may see reads past the terminator.
func NewReader(r io.Reader, opts *DecompressOptions) (*Reader, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	step, err := dialectStep(opts.Dialect)
	if err != nil {
		return nil, err
	}

	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	in := &countingByteReader{br: br, limit: opts.MaxInputSize}
	return &Reader{
		ctrl: controlReader{br: in},
		in:   in,
		w:    window{limit: opts.MaxOutputSize},
		step: step,
	}, nil
}

// Read implements io.Reader. It decodes tokens until p can be filled or the
// stream ends, then serves from the pending output. A decode failure is
// reported once everything decoded before it has been served.
func (z *Reader) Read(p []byte) (int, error) {
	for z.err == nil && !z.done && z.w.len()-z.served < len(p) {
		done, err := z.step(&z.ctrl, &z.w)
		if err != nil {
			z.err = err
			break
		}

		z.done = done
	}

	if z.served < z.w.len() {
		n := copy(p, z.w.buf[z.served:])
		z.served += n
		return n, nil
	}

	if z.err != nil {
		return 0, z.err
	}
	if z.done {
		return 0, io.EOF
	}

	return 0, nil
}
