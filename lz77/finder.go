package lz77

// Finder is the default MatchFinder: exact 2-byte heads plus hashed 3-byte
// chains over the whole input, walked newest-first.

const (
	hash3Size = 16384
	hash2Size = 65536

	// minTokenMatch is the shortest back-reference worth a token.
	minTokenMatch = 2

	defaultMaxDistance = 8191
	defaultMaxLength   = 256
	defaultMaxChain    = 32
)

// Finder implements MatchFinder with hash chains. The zero value is not
// ready; call Reset (or AcquireFinder) first.
type Finder struct {
	cfg Config

	src  []byte  // accumulated input
	prev []int32 // chain links, parallel to src (0 means end, stored as pos+1)
	pos  int     // next position to tokenize

	finished bool

	head3 [hash3Size]int32 // newest position per 3-byte hash key (0 means empty, stored as pos+1)
	head2 [hash2Size]int32 // newest position per exact 2-byte key
}

// key2 returns the exact 2-byte table key for data.
func key2(data []byte, pos int) uint {
	return uint(data[pos+1])<<8 | uint(data[pos])
}

// key3 returns the hashed 3-byte table key for data.
func key3(data []byte, pos int) uint {
	key := uint(data[pos])
	key = (key << 5) ^ uint(data[pos+1])
	key = (key << 5) ^ uint(data[pos+2])
	key = (key * 0x9f5f) >> 5
	return key & (hash3Size - 1)
}

// Reset implements MatchFinder. Zero Config fields get defaults; a zero
// MaxShortDistance keeps 2-byte matches disabled.
func (f *Finder) Reset(cfg Config) {
	if cfg.MaxDistance <= 0 {
		cfg.MaxDistance = defaultMaxDistance
	}
	if cfg.MaxLength <= 0 {
		cfg.MaxLength = defaultMaxLength
	}
	if cfg.MaxChain <= 0 {
		cfg.MaxChain = defaultMaxChain
	}
	if cfg.NiceLength <= 0 || cfg.NiceLength > cfg.MaxLength {
		cfg.NiceLength = cfg.MaxLength
	}

	f.cfg = cfg
	f.src = f.src[:0]
	f.prev = f.prev[:0]
	f.pos = 0
	f.finished = false
	clear(f.head3[:])
	clear(f.head2[:])
}

// Append implements MatchFinder.
func (f *Finder) Append(p []byte) {
	f.src = append(f.src, p...)
	f.prev = append(f.prev, make([]int32, len(p))...)
}

// Finish implements MatchFinder.
func (f *Finder) Finish() {
	f.finished = true
}

// Next implements MatchFinder. Before Finish a position is only tokenized
// once more than MaxLength bytes of lookahead sit behind it, so the decision
// cannot change when more input arrives.
func (f *Finder) Next() (Token, bool) {
	pos := f.pos
	if pos >= len(f.src) {
		return Token{}, false
	}
	if !f.finished && len(f.src)-pos <= f.cfg.MaxLength {
		return Token{}, false
	}

	dist, length := f.search(pos)
	f.insert(pos)

	if length >= minTokenMatch {
		if f.cfg.Lazy && length < f.cfg.NiceLength && pos+1 < len(f.src) {
			if _, nextLen := f.search(pos + 1); nextLen > length {
				f.pos = pos + 1
				return Token{Literal: f.src[pos]}, true
			}
		}
		for i := pos + 1; i < pos+length && i+1 < len(f.src); i++ {
			f.insert(i)
		}
		f.pos = pos + length
		return Token{Distance: dist, Length: length}, true
	}

	f.pos = pos + 1
	return Token{Literal: f.src[pos]}, true
}

// search returns the best match at pos within the configured bounds, or
// (0, 0) when none qualifies.
func (f *Finder) search(pos int) (dist, length int) {
	src := f.src
	maxLen := len(src) - pos
	if maxLen > f.cfg.MaxLength {
		maxLen = f.cfg.MaxLength
	}
	if maxLen < minTokenMatch {
		return 0, 0
	}

	minPos := pos - f.cfg.MaxDistance
	if minPos < 0 {
		minPos = 0
	}

	best, bestDist := 0, 0

	// The 2-byte head is exact, so the candidate needs no verification and
	// is the nearest previous occurrence of src[pos:pos+2].
	if c := int(f.head2[key2(src, pos)]) - 1; c >= minPos {
		n := matchLen(src, c, pos, maxLen)
		d := pos - c
		if n >= 3 || (n >= 2 && d <= f.cfg.MaxShortDistance) {
			best, bestDist = n, d
		}
	}

	if best >= maxLen || best >= f.cfg.NiceLength || maxLen < 3 {
		return bestDist, best
	}

	node := int(f.head3[key3(src, pos)]) - 1
	for probes := f.cfg.MaxChain; probes > 0 && node >= minPos; probes-- {
		// 3-byte keys are hashed, so probe cheap bytes before extending.
		if src[node] == src[pos] && (best == 0 || src[node+best] == src[pos+best]) {
			n := matchLen(src, node, pos, maxLen)
			d := pos - node
			if n > best && (n >= 3 || d <= f.cfg.MaxShortDistance) {
				best, bestDist = n, d
				if best >= maxLen || best >= f.cfg.NiceLength {
					break
				}
			}
		}
		node = int(f.prev[node]) - 1
	}

	return bestDist, best
}

// matchLen counts equal bytes at a and b, at most max. a < b is assumed; the
// run may extend past b for overlapping matches.
func matchLen(src []byte, a, b, max int) int {
	n := 0
	for n < max && src[a+n] == src[b+n] {
		n++
	}
	return n
}

// insert links pos into the hash tables. Positions too close to the end for
// a full key are not indexed.
func (f *Finder) insert(pos int) {
	src := f.src
	if pos+1 >= len(src) {
		return
	}
	f.head2[key2(src, pos)] = int32(pos + 1) //nolint:gosec // G115: input positions fit int32
	if pos+2 >= len(src) {
		return
	}
	k := key3(src, pos)
	f.prev[pos] = f.head3[k]
	f.head3[k] = int32(pos + 1) //nolint:gosec // G115: input positions fit int32
}
