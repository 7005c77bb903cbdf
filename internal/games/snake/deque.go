package snake

// deque is a growable ring buffer with O(1) push-front and pop-back.
// Index 0 is the front.
type deque[T comparable] struct {
	buf  []T
	head int
	n    int
}

func newDeque[T comparable](capacity int) *deque[T] {
	return &deque[T]{buf: make([]T, max(capacity, 1))}
}

func (d *deque[T]) Len() int {
	return d.n
}

func (d *deque[T]) PushFront(v T) {
	if d.n == len(d.buf) {
		d.grow()
	}
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = v
	d.n++
}

// PopBack removes and returns the last element. It panics on an empty deque.
func (d *deque[T]) PopBack() T {
	if d.n == 0 {
		panic("snake: PopBack on empty deque")
	}
	idx := (d.head + d.n - 1) % len(d.buf)
	v := d.buf[idx]
	var zero T
	d.buf[idx] = zero
	d.n--
	return v
}

// At returns the i-th element from the front.
func (d *deque[T]) At(i int) T {
	return d.buf[(d.head+i)%len(d.buf)]
}

func (d *deque[T]) Contains(v T) bool {
	for i := range d.n {
		if d.At(i) == v {
			return true
		}
	}
	return false
}

// Slice returns a copy of the elements, front first.
func (d *deque[T]) Slice() []T {
	out := make([]T, d.n)
	for i := range d.n {
		out[i] = d.At(i)
	}
	return out
}

func (d *deque[T]) Clear() {
	clear(d.buf)
	d.head = 0
	d.n = 0
}

func (d *deque[T]) grow() {
	buf := make([]T, len(d.buf)*2)
	for i := range d.n {
		buf[i] = d.At(i)
	}
	d.buf = buf
	d.head = 0
}
