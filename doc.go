// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/prs

/*
Package prs implements PRS compression and decompression, the LZ77 scheme
used by SEGA titles since the Saturn and Dreamcast era.

A stream interleaves control bits, packed LSB-first into control bytes, with
payload bytes. Literals cost one control bit; matches reach up to 8191 bytes
back in two forms, a short one for lengths 2-5 within 256 bytes and a long
one carrying a 13-bit offset field. The stream ends with the terminator pair
`0x00 0x00` under long-form control bits. Two dialects exist: Legacy with
single-byte extended match lengths (at most 256), and Modern with chained
extended lengths and no length cap. Nothing in a buffer identifies its
dialect; callers must know which one they hold.

# Decompress

Dialect is required (use DecompressOptions). From a byte slice:

	out, err := prs.Decompress(compressed, prs.DefaultDecompressOptions(prs.Legacy))

To get the number of input bytes consumed (e.g. for back-to-back streams):

	out, nRead, err := prs.DecompressN(compressed, prs.DefaultDecompressOptions(prs.Legacy))
	// advance: compressed = compressed[nRead:]

From an io.Reader, all at once or incrementally:

	out, err := prs.DecompressFromReader(r, prs.DefaultDecompressOptions(prs.Modern))

	zr, err := prs.NewReader(r, prs.DefaultDecompressOptions(prs.Modern))
	_, err = io.Copy(dst, zr)

# Compress

Options may be nil (legacy dialect, level 1). Levels 2-9 search harder for
matches; the level never changes the wire format:

	out, err := prs.Compress(data, nil)
	out, err := prs.Compress(data, &prs.CompressOptions{Dialect: prs.Modern, Level: 9})

To compress to an io.Writer incrementally; Close writes the terminator:

	zw, err := prs.NewWriter(w, nil)
	_, err = zw.Write(data)
	err = zw.Close()
*/
package prs
