package lz77

// Token is a single parsing decision: a literal byte when Length is zero,
// otherwise a back-reference of Length bytes starting Distance bytes behind
// the current output position.
type Token struct {
	// Distance is the backward distance of a match, 0 for literals.
	Distance int
	// Length is the match length, 0 for literals.
	Length int
	// Literal is the literal byte when Length is 0.
	Literal byte
}

// IsMatch reports whether the token is a back-reference.
func (t Token) IsMatch() bool {
	return t.Length > 0
}

// Config bounds the tokens a finder may produce and tunes how hard it
// searches. A zero value for any field selects that field's default.
type Config struct {
	// MaxDistance is the largest backward distance a match may have.
	MaxDistance int
	// MaxShortDistance is the largest distance allowed for matches of
	// exactly 2 bytes. 0 disables 2-byte matches entirely; longer matches
	// are not affected.
	MaxShortDistance int
	// MaxLength is the largest match length a token may carry.
	MaxLength int
	// MaxChain caps how many chain candidates are probed per position.
	MaxChain int
	// NiceLength stops the search early once a match at least this long
	// is found.
	NiceLength int
	// Lazy defers a match by one byte when the following position holds a
	// strictly longer one.
	Lazy bool
}

// MatchFinder turns input bytes into a Token stream. Implementations must
// emit tokens that cover the input exactly once, in order, and must respect
// the bounds of the Config they were last Reset with; in particular a 2-byte
// match farther back than MaxShortDistance has no encoding and must never be
// produced.
//
// The zero-or-more Append calls, one Finish call, and interleaved Next calls
// all happen on a single goroutine.
type MatchFinder interface {
	// Append extends the input. The finder keeps its own copy; the caller
	// may reuse p after Append returns.
	Append(p []byte)
	// Finish marks the end of the input. Tokens held back waiting for
	// lookahead become available to Next.
	Finish()
	// Next returns the next settled token. ok is false when no token can
	// be produced yet, or when the whole input has been tokenized.
	Next() (t Token, ok bool)
	// Reset discards all state and re-arms the finder for a new input.
	Reset(cfg Config)
}
