// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/prs

/*
Package lz77 finds back-references for LZ77-family encoders and hands them out
as a token stream: one Token per parsing decision, either a single literal
byte or a (distance, length) match against earlier input.

The package does not know any wire format. A codec drives a MatchFinder as an
oracle, feeding input with Append and pulling decisions with Next; the finder
only surfaces a token once no future input can change it, so the same token
stream comes out whether the input arrives in one slice or byte by byte.

The default Finder indexes the input with exact 2-byte heads and hashed 3-byte
chains, walks chains newest-first with a bounded probe count, and optionally
defers a match by one byte when the next position matches longer. Finder state
is large; use AcquireFinder/ReleaseFinder to recycle it through a pool.
*/
package lz77
