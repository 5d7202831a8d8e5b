package buffer

import "sync"

// Pool provides sync.Pool-based Buffer reuse so schedule.Scheduler's
// repeated Render calls share one growing mix accumulator instead of
// allocating outLen float64s fresh per render.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Get returns a Buffer with the requested length, zeroed so a reused
// accumulator carries no samples from a prior render. length is the
// render's output length: the highest placementPos+len(samples) across
// every mixed clip, so the buffer grows to match the longest melody
// rendered so far and never shrinks its backing array in between.
// Callers must return it via Put when done.
func (p *Pool) Get(length int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Resize(length)
	b.Zero()
	return b
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
