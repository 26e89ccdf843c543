package parsekit

// Stream is a positioned cursor over a finite, random-accessible sequence
// of tokens of type T. The underlying slice is shared; only the position
// is duplicated on Clone, which is why a Stream is cheap to snapshot and
// restore around a speculative parse.
type Stream[T any] struct {
	buf    []T
	pos    int
	config *Config
}

// NewStream wraps items in a fresh Stream positioned at the start, using
// cfg for recursion-depth guarding and tracing.
func NewStream[T any](items []T, cfg *Config) *Stream[T] {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Stream[T]{buf: items, config: cfg}
}

// Next returns the token at the current position and advances by one. The
// third return value is false at end-of-input, in which case the other
// two are zero values.
func (s *Stream[T]) Next() (Index, T, bool) {
	if s.pos >= len(s.buf) {
		var zero T
		return EndIndex, zero, false
	}
	idx := Index(s.pos)
	tok := s.buf[s.pos]
	s.pos++
	return idx, tok, true
}

// Checkpoint returns an opaque snapshot of the current position.
func (s *Stream[T]) Checkpoint() Index {
	return Index(s.pos)
}

// AtEnd reports whether the stream is exhausted.
func (s *Stream[T]) AtEnd() bool {
	return s.pos >= len(s.buf)
}

// Clone duplicates the cursor. The backing slice is shared.
func (s *Stream[T]) Clone() *Stream[T] {
	dup := *s
	return &dup
}

// restore overwrites s's mutable position with other's. Used by attempt to
// commit a speculative clone back into the caller's stream.
func (s *Stream[T]) restore(other *Stream[T]) {
	s.pos = other.pos
}

// SpanFrom builds a SpanT covering [checkpoint, current) of s. It is a
// free function, not a method, because Go forbids adding a new type
// parameter (SpanT) to a method on a generic receiver.
func SpanFrom[T any, SpanT Span[T, SpanT]](s *Stream[T], checkpoint Index) SpanT {
	var zero SpanT
	lo, hi := int(checkpoint), s.pos
	if lo >= hi {
		return zero.SpanNone()
	}
	if hi-lo == 1 {
		return zero.SpanSingle(checkpoint, s.buf[lo])
	}
	return zero.SpanGroup(s.buf[lo:hi], checkpoint, Index(hi))
}

// attempt is the backtracking primitive every multi-step Pattern runs
// under: it clones stream, runs f against the clone, and writes the
// clone's position back into stream only on success. On failure stream is
// left untouched, satisfying the non-consuming-failure invariant.
func attempt[I, O any, E Error[I, E]](stream *Stream[I], f func(*Stream[I]) (ParseResult[I, O, E], *Fail[I, E])) (ParseResult[I, O, E], *Fail[I, E]) {
	clone := stream.Clone()
	res, fail := f(clone)
	if fail == nil {
		stream.restore(clone)
	}
	return res, fail
}
