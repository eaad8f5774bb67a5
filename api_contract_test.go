package prs

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestAPIContract_DecompressAllowsTrailingBytes(t *testing.T) {
	src := bytes.Repeat([]byte("api-contract"), 64)

	for _, d := range []Dialect{Legacy, Modern} {
		compressed, err := Compress(src, &CompressOptions{Dialect: d, Level: 5})
		if err != nil {
			t.Fatalf("%v: Compress failed: %v", d, err)
		}

		payload := append(append([]byte{}, compressed...), []byte("tail")...)
		out, err := Decompress(payload, DefaultDecompressOptions(d))
		if err != nil {
			t.Fatalf("%v: Decompress with trailing bytes failed: %v", d, err)
		}

		if !bytes.Equal(out, src) {
			t.Fatalf("%v: decoded output mismatch for trailing-byte input", d)
		}
	}
}

func TestAPIContract_DecompressCanonicalStreams(t *testing.T) {
	// Both expand to 512 zero bytes: one literal, then distance-1 matches
	// spanning the rest. The legacy stream needs two extended matches, the
	// modern one a single chained length.
	legacyStream := []byte{0x55, 0x00, 0xF8, 0xFF, 0xFF, 0xF8, 0xFF, 0xFE, 0x00, 0x00}
	modernStream := []byte{0x15, 0x00, 0xF8, 0xFF, 0xFF, 0xF6, 0x00, 0x00}
	expected := make([]byte, 512)

	out, err := Decompress(legacyStream, DefaultDecompressOptions(Legacy))
	if err != nil {
		t.Fatalf("Decompress failed for canonical legacy stream: %v", err)
	}
	if !bytes.Equal(out, expected) {
		t.Fatal("canonical legacy stream decoded data mismatch")
	}

	out, err = Decompress(modernStream, DefaultDecompressOptions(Modern))
	if err != nil {
		t.Fatalf("Decompress failed for canonical modern stream: %v", err)
	}
	if !bytes.Equal(out, expected) {
		t.Fatal("canonical modern stream decoded data mismatch")
	}
}

func TestAPIContract_StreamingEqualsWholeBuffer(t *testing.T) {
	src := bytes.Repeat([]byte("streaming equals whole-buffer calls "), 300)

	for _, d := range []Dialect{Legacy, Modern} {
		opts := &CompressOptions{Dialect: d, Level: 5}
		whole, err := Compress(src, opts)
		if err != nil {
			t.Fatalf("%v: Compress failed: %v", d, err)
		}

		var streamed bytes.Buffer
		zw, err := NewWriter(&streamed, opts)
		if err != nil {
			t.Fatalf("%v: NewWriter failed: %v", d, err)
		}
		for i := 0; i < len(src); i += 7 {
			end := min(i+7, len(src))
			if _, err := zw.Write(src[i:end]); err != nil {
				t.Fatalf("%v: Write failed: %v", d, err)
			}
		}
		if err := zw.Close(); err != nil {
			t.Fatalf("%v: Close failed: %v", d, err)
		}

		if !bytes.Equal(streamed.Bytes(), whole) {
			t.Fatalf("%v: streamed output differs from whole-buffer output", d)
		}

		zr, err := NewReader(bytes.NewReader(whole), DefaultDecompressOptions(d))
		if err != nil {
			t.Fatalf("%v: NewReader failed: %v", d, err)
		}
		var decoded bytes.Buffer
		buf := make([]byte, 1)
		for {
			n, err := zr.Read(buf)
			decoded.Write(buf[:n])
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				t.Fatalf("%v: Read failed: %v", d, err)
			}
		}

		if !bytes.Equal(decoded.Bytes(), src) {
			t.Fatalf("%v: streamed decode differs from input", d)
		}
	}
}
