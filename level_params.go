package prs

import "github.com/woozymasta/prs/lz77"

// finderLevelParams holds match-finder tuning for one compression level.
// All fields are unexported; the type is used only inside the package.
type finderLevelParams struct {
	maxChain int  // max hash chain probes per position
	niceLen  int  // nice match length (stop searching)
	lazy     bool // defer a match when the next position matches longer
}

// fixedLevels defines finder parameters for compression levels 1-9.
var fixedLevels = [9]finderLevelParams{
	{8, 8, false},
	{16, 16, false},
	{32, 32, false},
	{32, 16, true},
	{64, 32, true},
	{128, 128, true},
	{256, 128, true},
	{2048, modernFinderMaxLen, true},
	{4096, 0, true},
}

// modernFinderMaxLen caps match lengths proposed for modern streams. The
// chained length coding is unbounded on the wire; this is an encoder policy.
const modernFinderMaxLen = 2048

// finderConfig maps a clamped level and dialect to the finder configuration
// used when the caller does not supply a MatchFinder.
func finderConfig(level int, d Dialect) lz77.Config {
	p := fixedLevels[level-1]

	maxLen := legacyMaxMatchLen
	if d == Modern {
		maxLen = modernFinderMaxLen
	}
	nice := p.niceLen
	if nice <= 0 || nice > maxLen {
		nice = maxLen
	}

	return lz77.Config{
		MaxDistance:      maxMatchDist,
		MaxShortDistance: maxShortMatchDist,
		MaxLength:        maxLen,
		MaxChain:         p.maxChain,
		NiceLength:       nice,
		Lazy:             p.lazy,
	}
}
