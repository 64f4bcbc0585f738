package npeek

// NextFunc pulls the next item from a lazy sequence. The second return value
// is false once the sequence is exhausted, mirroring the "comma ok" idiom
// used throughout the standard library.
type NextFunc[T any] func() (T, bool)

// NPeekable buffers items pulled from an underlying NextFunc so that callers
// may look one or more steps ahead of the next Next() without consuming
// anything. The buffer is a plain slice used as a FIFO queue; the cursor
// indexes into it to track how far a chain of Peek/PeekNext calls has
// looked.
type NPeekable[T any] struct {
	next   NextFunc[T]
	view   []T
	cursor int
}

// New wraps next in an NPeekable.
func New[T any](next NextFunc[T]) *NPeekable[T] {
	return &NPeekable[T]{next: next}
}

// Next consumes and returns the next item, resetting the peek cursor. It
// prefers the buffer's front; the underlying sequence is pulled from only
// when the buffer is empty.
func (p *NPeekable[T]) Next() (T, bool) {
	if len(p.view) != 0 {
		item := p.view[0]
		p.view = p.view[1:]
		p.cursor = 0
		return item, true
	}
	return p.next()
}

// Peek returns the item at the cursor without consuming it. The cursor
// starts at 0, i.e. the item that the next call to Next would return.
func (p *NPeekable[T]) Peek() (T, bool) {
	if p.cursor == len(p.view) {
		item, ok := p.next()
		if !ok {
			var zero T
			return zero, false
		}
		p.view = append(p.view, item)
	}
	return p.view[p.cursor], true
}

// PeekNext advances the cursor by one and returns the item it now
// references, pulling from the underlying sequence if needed.
func (p *NPeekable[T]) PeekNext() (T, bool) {
	p.AdvanceCursor()
	return p.Peek()
}

// AdvanceCursor moves the cursor forward one step, pulling a fresh item into
// the buffer if the cursor has run off its end. Reports whether a fresh item
// was available.
func (p *NPeekable[T]) AdvanceCursor() bool {
	if p.cursor == len(p.view) {
		item, ok := p.next()
		if !ok {
			return false
		}
		p.view = append(p.view, item)
	}
	p.cursor++
	return true
}

// ResetCursor returns the cursor to 0, so the next Peek sees the item that
// Next would return.
func (p *NPeekable[T]) ResetCursor() {
	p.cursor = 0
}

// NextIf consumes and returns the next item only if it is present and
// predicate reports true for it; otherwise it leaves the sequence untouched.
func (p *NPeekable[T]) NextIf(predicate func(T) bool) (T, bool) {
	item, ok := p.Peek()
	if ok && predicate(item) {
		return p.Next()
	}
	var zero T
	return zero, false
}
