package roster

// Ring is a fixed-capacity sliding window of int samples, oldest-first.
// Push is the single mutator: it evicts the oldest sample once full.
type Ring struct {
	buf   []int
	start int
	n     int
}

// NewRing creates a ring holding at most capacity samples, pre-filled with
// the given seed values (excess seed values are pushed through, so only the
// newest capacity values survive).
func NewRing(capacity int, seed ...int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	r := &Ring{buf: make([]int, capacity)}
	for _, v := range seed {
		r.Push(v)
	}
	return r
}

// Push appends a sample, evicting the oldest if the ring is full.
func (r *Ring) Push(v int) {
	if r.n < len(r.buf) {
		r.buf[(r.start+r.n)%len(r.buf)] = v
		r.n++
		return
	}
	r.buf[r.start] = v
	r.start = (r.start + 1) % len(r.buf)
}

// Len returns the number of samples currently held.
func (r *Ring) Len() int { return r.n }

// Cap returns the ring capacity.
func (r *Ring) Cap() int { return len(r.buf) }

// Values returns the samples oldest-first as a fresh slice.
func (r *Ring) Values() []int {
	out := make([]int, r.n)
	for i := 0; i < r.n; i++ {
		out[i] = r.buf[(r.start+i)%len(r.buf)]
	}
	return out
}

// Last returns the newest sample, or 0 if the ring is empty.
func (r *Ring) Last() int {
	if r.n == 0 {
		return 0
	}
	return r.buf[(r.start+r.n-1)%len(r.buf)]
}
