package prs

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDecompress_OptionsRequired(t *testing.T) {
	_, err := Decompress([]byte{0x02, 0x00, 0x00}, nil)
	if !errors.Is(err, ErrOptionsRequired) {
		t.Fatalf("expected ErrOptionsRequired, got %v", err)
	}

	_, err = DecompressFromReader(strings.NewReader("\x02\x00\x00"), nil)
	if !errors.Is(err, ErrOptionsRequired) {
		t.Fatalf("expected ErrOptionsRequired (reader), got %v", err)
	}
}

func TestDecompress_UnknownDialect(t *testing.T) {
	_, err := Decompress([]byte{0x02, 0x00, 0x00}, &DecompressOptions{Dialect: 7})
	if !errors.Is(err, ErrUnknownDialect) {
		t.Fatalf("expected ErrUnknownDialect, got %v", err)
	}
}

func TestDecompress_EmptyInput(t *testing.T) {
	_, err := Decompress(nil, DefaultDecompressOptions(Legacy))
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}

	_, err = DecompressFromReader(strings.NewReader(""), DefaultDecompressOptions(Legacy))
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput (reader), got %v", err)
	}
}

func TestDecompress_TerminatorOnly(t *testing.T) {
	// Two control bits select the long form, the zero pair ends the stream.
	stream := []byte{0x02, 0x00, 0x00}

	for _, d := range []Dialect{Legacy, Modern} {
		out, err := Decompress(stream, DefaultDecompressOptions(d))
		if err != nil {
			t.Fatalf("%v: Decompress failed: %v", d, err)
		}
		if len(out) != 0 {
			t.Fatalf("%v: expected empty output, got %d bytes", d, len(out))
		}
	}
}

func TestDecompress_LiteralRun(t *testing.T) {
	// Three literal bits, then the terminator, all in control byte 0x17.
	stream := []byte{0x17, 0x61, 0x62, 0x63, 0x00, 0x00}

	for _, d := range []Dialect{Legacy, Modern} {
		out, err := Decompress(stream, DefaultDecompressOptions(d))
		if err != nil {
			t.Fatalf("%v: Decompress failed: %v", d, err)
		}
		if !bytes.Equal(out, []byte("abc")) {
			t.Fatalf("%v: got %q, want %q", d, out, "abc")
		}
	}
}

func TestDecompress_ShortMatchSelfOverlap(t *testing.T) {
	// Literal 'A', then a short match with distance 1 and length 5 that
	// reads bytes it is itself producing.
	stream := []byte{0x59, 0x41, 0xFF, 0x00, 0x00}

	out, err := Decompress(stream, DefaultDecompressOptions(Legacy))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, []byte("AAAAAA")) {
		t.Fatalf("got %q, want %q", out, "AAAAAA")
	}
}

func TestDecompress_SizedLongMatch(t *testing.T) {
	// Literals 'a','b', then a long match with distance 2 and length 7.
	stream := []byte{0x2B, 0x61, 0x62, 0xF5, 0xFF, 0x00, 0x00}

	out, err := Decompress(stream, DefaultDecompressOptions(Legacy))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, []byte("ababababa")) {
		t.Fatalf("got %q, want %q", out, "ababababa")
	}
}

func TestDecompress_ExtendedLengthByDialect(t *testing.T) {
	// Literals 'a','b', then a long match with distance 2, size bits 0 and
	// extension byte 0x0B. Legacy reads length 11+1, modern 10+11; the same
	// bytes decode to different outputs.
	stream := []byte{0x2B, 0x61, 0x62, 0xF0, 0xFF, 0x0B, 0x00, 0x00}

	legacyOut, err := Decompress(stream, DefaultDecompressOptions(Legacy))
	if err != nil {
		t.Fatalf("legacy Decompress failed: %v", err)
	}
	if want := bytes.Repeat([]byte("ab"), 7); !bytes.Equal(legacyOut, want) {
		t.Fatalf("legacy: got %q, want %q", legacyOut, want)
	}

	modernOut, err := Decompress(stream, DefaultDecompressOptions(Modern))
	if err != nil {
		t.Fatalf("modern Decompress failed: %v", err)
	}
	want := append(bytes.Repeat([]byte("ab"), 11), 'a')
	if !bytes.Equal(modernOut, want) {
		t.Fatalf("modern: got %q, want %q", modernOut, want)
	}
}

func TestDecompress_ModernChainedLength(t *testing.T) {
	// Extension bytes 0xFF 0x02 chain to length 10+255+2 = 267.
	stream := []byte{0x2B, 0x61, 0x62, 0xF0, 0xFF, 0xFF, 0x02, 0x00, 0x00}

	out, err := Decompress(stream, DefaultDecompressOptions(Modern))
	if err != nil {
		t.Fatalf("modern Decompress failed: %v", err)
	}
	want := append(bytes.Repeat([]byte("ab"), 134), 'a')
	if !bytes.Equal(out, want) {
		t.Fatalf("modern: got %d bytes, want %d", len(out), len(want))
	}

	// Legacy reads 0xFF as a complete extension (length 256) and then
	// trips over the leftover bytes. It must fail, not panic.
	_, err = Decompress(stream, DefaultDecompressOptions(Legacy))
	if !errors.Is(err, ErrCorruptStream) {
		t.Fatalf("legacy: expected ErrCorruptStream, got %v", err)
	}
}

func TestDecompress_TruncatedInputAlwaysFails(t *testing.T) {
	streams := map[string][]byte{
		"literals":       {0x17, 0x61, 0x62, 0x63, 0x00, 0x00},
		"short-match":    {0x59, 0x41, 0xFF, 0x00, 0x00},
		"chained-length": {0x2B, 0x61, 0x62, 0xF0, 0xFF, 0xFF, 0x02, 0x00, 0x00},
	}

	for name, stream := range streams {
		for _, d := range []Dialect{Legacy, Modern} {
			if name == "chained-length" && d == Legacy {
				continue
			}

			for cut := 1; cut < len(stream); cut++ {
				truncated := stream[:len(stream)-cut]
				_, err := Decompress(truncated, DefaultDecompressOptions(d))
				if !errors.Is(err, ErrUnexpectedEOF) {
					t.Fatalf("%s/%v cut=%d: expected ErrUnexpectedEOF, got %v", name, d, cut, err)
				}
			}
		}
	}
}

func TestDecompress_CorruptStreams(t *testing.T) {
	cases := []struct {
		name   string
		stream []byte
	}{
		// Long match with a zero offset field but nonzero size bits.
		{name: "zero-offset-field", stream: []byte{0x02, 0x05, 0x00}},
		// Short match with distance 256 into an empty window.
		{name: "short-match-before-window", stream: []byte{0x00, 0x00}},
		// Long match with distance 5000 after one literal.
		{name: "long-match-before-window", stream: []byte{0x05, 0x78, 0xC5, 0x63}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, d := range []Dialect{Legacy, Modern} {
				_, err := Decompress(tc.stream, DefaultDecompressOptions(d))
				if !errors.Is(err, ErrCorruptStream) {
					t.Fatalf("%v: expected ErrCorruptStream, got %v", d, err)
				}
			}
		})
	}
}

func TestDecompress_MaxOutputSize(t *testing.T) {
	stream := []byte{0x59, 0x41, 0xFF, 0x00, 0x00} // expands to 6 bytes

	opts := DefaultDecompressOptions(Legacy)
	opts.MaxOutputSize = 3
	_, err := Decompress(stream, opts)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}

	opts.MaxOutputSize = 6
	out, err := Decompress(stream, opts)
	if err != nil {
		t.Fatalf("Decompress at exact limit failed: %v", err)
	}
	if !bytes.Equal(out, []byte("AAAAAA")) {
		t.Fatalf("got %q, want %q", out, "AAAAAA")
	}
}

func TestDecompressN_ReturnsConsumedBytes(t *testing.T) {
	stream := []byte{0x17, 0x61, 0x62, 0x63, 0x00, 0x00}

	decoded, nRead, err := DecompressN(stream, DefaultDecompressOptions(Legacy))
	if err != nil {
		t.Fatalf("DecompressN failed: %v", err)
	}
	if nRead != len(stream) {
		t.Errorf("nRead = %d, want %d", nRead, len(stream))
	}
	if !bytes.Equal(decoded, []byte("abc")) {
		t.Errorf("decoded mismatch")
	}

	// Back-to-back: bytes after the terminator are not consumed.
	extra := []byte("trailing")
	src := append(append([]byte(nil), stream...), extra...)
	decoded2, nRead2, err := DecompressN(src, DefaultDecompressOptions(Legacy))
	if err != nil {
		t.Fatalf("DecompressN with trailing failed: %v", err)
	}
	if nRead2 != len(stream) {
		t.Errorf("nRead with trailing = %d, want %d", nRead2, len(stream))
	}
	if !bytes.Equal(decoded2, []byte("abc")) {
		t.Errorf("decoded with trailing mismatch")
	}
	if !bytes.Equal(src[nRead2:], extra) {
		t.Errorf("advancing by nRead should land on the trailing bytes")
	}
}

func TestDecompressFromReader_MaxInputSize(t *testing.T) {
	stream := []byte{0x17, 0x61, 0x62, 0x63, 0x00, 0x00}

	opts := DefaultDecompressOptions(Legacy)
	opts.MaxInputSize = len(stream) - 1
	_, err := DecompressFromReader(bytes.NewReader(stream), opts)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}

	opts.MaxInputSize = len(stream)
	out, err := DecompressFromReader(bytes.NewReader(stream), opts)
	if err != nil {
		t.Fatalf("DecompressFromReader at exact limit failed: %v", err)
	}
	if !bytes.Equal(out, []byte("abc")) {
		t.Fatalf("got %q, want %q", out, "abc")
	}
}

func TestWindowCopyMatch(t *testing.T) {
	t.Run("non-overlapping", func(t *testing.T) {
		w := window{buf: append(make([]byte, 0, 16), "abcdefgh"...)}
		if err := w.copyMatch(8, 4); err != nil {
			t.Fatalf("copyMatch failed: %v", err)
		}
		if got, want := string(w.buf), "abcdefghabcd"; got != want {
			t.Fatalf("unexpected window: got %q want %q", got, want)
		}
	})

	t.Run("overlapping", func(t *testing.T) {
		w := window{buf: append(make([]byte, 0, 8), "ABC"...)}
		if err := w.copyMatch(3, 5); err != nil {
			t.Fatalf("copyMatch failed: %v", err)
		}
		if got, want := string(w.buf), "ABCABCAB"; got != want {
			t.Fatalf("unexpected window: got %q want %q", got, want)
		}
	})

	t.Run("before-window-start", func(t *testing.T) {
		w := window{buf: append(make([]byte, 0, 8), "XY"...)}
		err := w.copyMatch(3, 2)
		if !errors.Is(err, ErrCorruptStream) {
			t.Fatalf("expected ErrCorruptStream, got %v", err)
		}
	})
}
