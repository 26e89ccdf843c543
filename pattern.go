package parsekit

// ParseResult is what a Pattern produces on the success path: the output
// value together with a Residual Fail. Residual is not itself a failure —
// it is the furthest error any abandoned branch reached while this result
// was being produced, carried forward so that enclosing combinators can
// still fold it into their own Residual or a later hard failure. Once a
// top-level parse fully succeeds, Parser.Parse discards it.
type ParseResult[I, O any, E Error[I, E]] struct {
	Output   O
	Residual Fail[I, E]
}

func result[I, O any, E Error[I, E]](out O, residual Fail[I, E]) ParseResult[I, O, E] {
	return ParseResult[I, O, E]{Output: out, Residual: residual}
}

// Pattern is a parsing step: given a Stream, it either returns a
// ParseResult and a nil *Fail (success), or a zero ParseResult and a
// non-nil *Fail (hard failure). Pattern is a named function type, not an
// interface wrapping a struct, because Go forbids adding a new type
// parameter to a method on a generic receiver — every combinator that
// introduces a new output type (Map, Then, Or, ...) must therefore be a
// free function taking and returning Patterns, never a method. This also
// means "cloning" a Pattern is just copying the function value, and
// "boxing" it (see Boxed) is a no-op: a Go closure already presents one
// fixed, erased call signature regardless of how deeply it's composed.
type Pattern[I, O any, E Error[I, E]] func(*Stream[I]) (ParseResult[I, O, E], *Fail[I, E])

// Parser pairs a Pattern with the entry point for running it to
// completion against a whole input, handling depth-guard setup and
// end-of-input checking.
type Parser[I, O any, E Error[I, E]] struct {
	pat Pattern[I, O, E]
}

// NewParser wraps a raw Pattern as a Parser.
func NewParser[I, O any, E Error[I, E]](pat Pattern[I, O, E]) Parser[I, O, E] {
	return Parser[I, O, E]{pat: pat}
}

// Pattern exposes the underlying Pattern, for combinators that take a
// Parser but need the bare function value.
func (p Parser[I, O, E]) Pattern() Pattern[I, O, E] {
	return p.pat
}

// Parse runs p against inputs from the start. On a full match — p
// succeeds and consumes every input — it returns the output and no
// errors: the Residual any abandoned branch left behind along the way is
// discarded, since the parse it was tracked for succeeded outright. If p
// fails outright, it returns the zero output and the errors at the
// furthest position reached by any branch. If p succeeds but leaves
// tokens unconsumed, it returns p's output alongside the errors at the
// furthest position reached by any branch, folding in Residual where one
// was carried.
func (p Parser[I, O, E]) Parse(inputs []I, opts ...Option) (O, []E) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	stream := NewStream(inputs, cfg)
	res, fail := p.pat(stream)
	if fail != nil {
		return res.Output, fail.Collect()
	}
	if !stream.AtEnd() {
		idx, sym, _ := stream.Next()
		end := OneFail[I, E](idx, zeroError[I, E]().ExpectedEnd(sym, idx))
		merged := res.Residual.Max(end)
		return res.Output, merged.Collect()
	}
	return res.Output, nil
}

// step invokes the underlying Pattern directly; combinators compose at
// this level rather than through Parser.Parse, which is reserved for the
// top-level entry point (it performs end-of-input checking that inner
// steps must not).
func (p Parser[I, O, E]) step(s *Stream[I]) (ParseResult[I, O, E], *Fail[I, E]) {
	return p.pat(s)
}

// Maybe is an optional value, the output type of OrNot. Named Maybe rather
// than Option to avoid colliding with the functional-option Option type
// used by Parser.Parse (config.go) — Go doesn't allow two same-named
// types in one package regardless of arity.
type Maybe[T any] struct {
	Value   T
	Present bool
}

// Some wraps a present value.
func Some[T any](v T) Maybe[T] {
	return Maybe[T]{Value: v, Present: true}
}

// None is the absent Maybe value.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Pair is a minimal 2-tuple, used by Then before a caller supplies a
// combining function.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is a minimal 3-tuple, used by Then2.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}
