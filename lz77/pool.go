package lz77

import "sync"

// finderPool is a pool of finders; Finder state is a few hundred KiB of
// tables, worth recycling.
var finderPool = sync.Pool{
	New: func() any {
		return &Finder{}
	},
}

// AcquireFinder returns a pooled Finder reset with cfg.
func AcquireFinder(cfg Config) *Finder {
	f := finderPool.Get().(*Finder)
	f.Reset(cfg)
	return f
}

// ReleaseFinder returns a finder to the pool. The finder must not be used
// after release.
func ReleaseFinder(f *Finder) {
	if f == nil {
		return
	}

	f.src = f.src[:0]
	f.prev = f.prev[:0]
	finderPool.Put(f)
}
