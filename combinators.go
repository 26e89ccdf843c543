package parsekit

// Map transforms a successful output through f, leaving the residual Fail
// (and the stream position) untouched. A free function, not a method,
// because it introduces the new output type parameter O2.
func Map[I, O1, O2 any, E Error[I, E]](pat Pattern[I, O1, E], f func(O1) O2) Pattern[I, O2, E] {
	return func(s *Stream[I]) (ParseResult[I, O2, E], *Fail[I, E]) {
		res, fail := pat(s)
		if fail != nil {
			return ParseResult[I, O2, E]{}, fail
		}
		return result[I, O2, E](f(res.Output), res.Residual), nil
	}
}

// MapWithSpan is Map, but f also receives a SpanT covering the tokens
// this pattern consumed.
func MapWithSpan[I, O1, O2 any, E Error[I, E], SpanT Span[I, SpanT]](pat Pattern[I, O1, E], f func(O1, SpanT) O2) Pattern[I, O2, E] {
	return func(s *Stream[I]) (ParseResult[I, O2, E], *Fail[I, E]) {
		checkpoint := s.Checkpoint()
		res, fail := pat(s)
		if fail != nil {
			return ParseResult[I, O2, E]{}, fail
		}
		span := SpanFrom[I, SpanT](s, checkpoint)
		return result[I, O2, E](f(res.Output, span), res.Residual), nil
	}
}

// To discards a successful output and replaces it with out.
func To[I, O1, O2 any, E Error[I, E]](pat Pattern[I, O1, E], out O2) Pattern[I, O2, E] {
	return Map[I, O1, O2, E](pat, func(O1) O2 { return out })
}

// Chained wraps a pattern's output as a singleton slice, so a
// single-item pattern can be passed to ChainSeq.
func Chained[I, O any, E Error[I, E]](pat Pattern[I, O, E]) Pattern[I, []O, E] {
	return Map[I, O, []O, E](pat, func(o O) []O { return []O{o} })
}

// MapErr transforms the error type a Pattern fails (and, for a successful
// parse, the residual Fail it carries forward) with f.
func MapErr[I, O any, E Error[I, E], D Error[I, D]](pat Pattern[I, O, E], f func(E) D) Pattern[I, O, D] {
	return func(s *Stream[I]) (ParseResult[I, O, D], *Fail[I, D]) {
		res, fail := pat(s)
		if fail != nil {
			mapped := MapFail[I, E, D](*fail, f)
			return ParseResult[I, O, D]{}, &mapped
		}
		return result[I, O, D](res.Output, MapFail[I, E, D](res.Residual, f)), nil
	}
}

// WithContext annotates every error a Pattern can fail with with ctx.
func WithContext[I, O any, E Error[I, E]](pat Pattern[I, O, E], ctx any) Pattern[I, O, E] {
	return MapErr[I, O, E, E](pat, func(e E) E { return e.WithContext(ctx) })
}

// Then runs a then b in sequence, backtracking both as a unit: if b
// fails, a's consumption is undone too. The furthest-position Fail from
// whichever branch reached further is carried forward either way.
func Then[I, A, B any, E Error[I, E]](a Pattern[I, A, E], b Pattern[I, B, E]) Pattern[I, Pair[A, B], E] {
	return func(s *Stream[I]) (ParseResult[I, Pair[A, B], E], *Fail[I, E]) {
		return attempt(s, func(s *Stream[I]) (ParseResult[I, Pair[A, B], E], *Fail[I, E]) {
			ra, fa := a(s)
			if fa != nil {
				return ParseResult[I, Pair[A, B], E]{}, fa
			}
			rb, fb := b(s)
			if fb != nil {
				merged := ra.Residual.Max(*fb)
				return ParseResult[I, Pair[A, B], E]{}, &merged
			}
			merged := ra.Residual.Max(rb.Residual)
			return result[I, Pair[A, B], E](Pair[A, B]{First: ra.Output, Second: rb.Output}, merged), nil
		})
	}
}

// Then2 is Then flattened: it feeds a (A, B) pair and a next pattern c
// into a 3-tuple instead of nesting pairs.
func Then2[I, A, B, C any, E Error[I, E]](a Pattern[I, A, E], b Pattern[I, B, E], c Pattern[I, C, E]) Pattern[I, Triple[A, B, C], E] {
	ab := Then[I, A, B, E](a, b)
	return Map[I, Pair[Pair[A, B], C], Triple[A, B, C], E](
		Then[I, Pair[A, B], C, E](ab, c),
		func(p Pair[Pair[A, B], C]) Triple[A, B, C] {
			return Triple[A, B, C]{First: p.First.First, Second: p.First.Second, Third: p.Second}
		},
	)
}

// Then3 chains four patterns into a flattened 4-tuple struct.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

func Then3[I, A, B, C, D any, E Error[I, E]](a Pattern[I, A, E], b Pattern[I, B, E], c Pattern[I, C, E], d Pattern[I, D, E]) Pattern[I, Quad[A, B, C, D], E] {
	abc := Then2[I, A, B, C, E](a, b, c)
	return Map[I, Pair[Triple[A, B, C], D], Quad[A, B, C, D], E](
		Then[I, Triple[A, B, C], D, E](abc, d),
		func(p Pair[Triple[A, B, C], D]) Quad[A, B, C, D] {
			return Quad[A, B, C, D]{First: p.First.First, Second: p.First.Second, Third: p.First.Third, Fourth: p.Second}
		},
	)
}

// ChainSeq concatenates two slice-producing patterns run in sequence into
// a single flat slice, for building up runs of heterogeneous repetitions.
func ChainSeq[I, O any, E Error[I, E]](a Pattern[I, []O, E], b Pattern[I, []O, E]) Pattern[I, []O, E] {
	return Map[I, Pair[[]O, []O], []O, E](Then[I, []O, []O, E](a, b), func(p Pair[[]O, []O]) []O {
		out := make([]O, 0, len(p.First)+len(p.Second))
		out = append(out, p.First...)
		out = append(out, p.Second...)
		return out
	})
}

// Or tries a, and only if it fails, tries b. If b also fails, the two
// failures are merged by furthest position. If b succeeds after a
// failed, a's Fail is folded into the result's residual so outer
// combinators (and Parser.Parse's end-of-input check) still see it.
func Or[I, O any, E Error[I, E]](a Pattern[I, O, E], b Pattern[I, O, E]) Pattern[I, O, E] {
	return func(s *Stream[I]) (ParseResult[I, O, E], *Fail[I, E]) {
		ra, fa := a(s)
		if fa == nil {
			return ra, nil
		}
		rb, fb := b(s)
		if fb != nil {
			merged := fa.Max(*fb)
			return ParseResult[I, O, E]{}, &merged
		}
		merged := fa.Max(rb.Residual)
		return result[I, O, E](rb.Output, merged), nil
	}
}

// PaddingFor runs a then b and keeps only b's output, discarding a (for
// example, leading whitespace).
func PaddingFor[I, A, B any, E Error[I, E]](a Pattern[I, A, E], b Pattern[I, B, E]) Pattern[I, B, E] {
	return Map[I, Pair[A, B], B, E](Then[I, A, B, E](a, b), func(p Pair[A, B]) B { return p.Second })
}

// PaddedBy runs a then b and keeps only a's output, discarding b (for
// example, trailing whitespace).
func PaddedBy[I, A, B any, E Error[I, E]](a Pattern[I, A, E], b Pattern[I, B, E]) Pattern[I, A, E] {
	return Map[I, Pair[A, B], A, E](Then[I, A, B, E](a, b), func(p Pair[A, B]) A { return p.First })
}

// Repeated greedily matches pat zero or more times, stopping (without
// consuming) at the first failure. The failure that stopped it becomes
// the residual Fail of the overall (successful) result, so a Repeated
// that matches nothing still reports why it couldn't match more.
//
// An iteration that succeeds while consuming no input is not repeated
// indefinitely: Repeated breaks after such an iteration rather than
// looping forever, a deliberate departure from a reference
// implementation that assumes every sub-pattern makes progress.
func Repeated[I, O any, E Error[I, E]](pat Pattern[I, O, E]) Pattern[I, []O, E] {
	return func(s *Stream[I]) (ParseResult[I, []O, E], *Fail[I, E]) {
		var outputs []O
		for {
			before := s.Checkpoint()
			res, fail := pat(s)
			if fail != nil {
				return result[I, []O, E](outputs, *fail), nil
			}
			outputs = append(outputs, res.Output)
			if s.Checkpoint() == before {
				return result[I, []O, E](outputs, res.Residual), nil
			}
		}
	}
}

// OnceOrMore is Repeated but requires at least one match, propagating the
// first failure as a hard error when even the first attempt fails.
func OnceOrMore[I, O any, E Error[I, E]](pat Pattern[I, O, E]) Pattern[I, []O, E] {
	return func(s *Stream[I]) (ParseResult[I, []O, E], *Fail[I, E]) {
		var outputs []O
		for {
			before := s.Checkpoint()
			res, fail := pat(s)
			if fail != nil {
				if len(outputs) > 0 {
					return result[I, []O, E](outputs, *fail), nil
				}
				return ParseResult[I, []O, E]{}, fail
			}
			outputs = append(outputs, res.Output)
			if s.Checkpoint() == before {
				return result[I, []O, E](outputs, res.Residual), nil
			}
		}
	}
}

// SeparatedBy matches pat, then sep, then pat, then sep, ... stopping
// (without consuming) at whichever fails first; a separator not followed
// by another pat is left unconsumed. Like Repeated, it reports that
// failure as the successful result's residual.
func SeparatedBy[I, O, Y any, E Error[I, E]](pat Pattern[I, O, E], sep Pattern[I, Y, E]) Pattern[I, []O, E] {
	return func(s *Stream[I]) (ParseResult[I, []O, E], *Fail[I, E]) {
		var outputs []O
		var beforeSep *Stream[I]
		for {
			roundStart := s.Checkpoint()
			res, fail := pat(s)
			if fail != nil {
				if beforeSep != nil {
					// Leave a trailing separator unconsumed.
					s.restore(beforeSep)
				}
				return result[I, []O, E](outputs, *fail), nil
			}
			outputs = append(outputs, res.Output)

			beforeSep = s.Clone()
			_, sepFail := sep(s)
			if sepFail != nil {
				return result[I, []O, E](outputs, *sepFail), nil
			}
			if s.Checkpoint() == roundStart {
				return result[I, []O, E](outputs, NoFail[I, E]()), nil
			}
		}
	}
}

// OrNot makes pat optional: its failure becomes a successful absent
// Maybe rather than propagating, with the failure kept as the residual
// Fail.
func OrNot[I, O any, E Error[I, E]](pat Pattern[I, O, E]) Pattern[I, Maybe[O], E] {
	return func(s *Stream[I]) (ParseResult[I, Maybe[O], E], *Fail[I, E]) {
		res, fail := pat(s)
		if fail != nil {
			return result[I, Maybe[O], E](None[O](), *fail), nil
		}
		return result[I, Maybe[O], E](Some(res.Output), res.Residual), nil
	}
}

// ReduceLeft folds a (seed, items) pair left-to-right through f.
func ReduceLeft[I, A, B any, E Error[I, E]](pat Pattern[I, Pair[A, []B], E], f func(A, B) A) Pattern[I, A, E] {
	return Map[I, Pair[A, []B], A, E](pat, func(p Pair[A, []B]) A {
		acc := p.First
		for _, b := range p.Second {
			acc = f(acc, b)
		}
		return acc
	})
}

// ReduceRight folds an (items, seed) pair right-to-left through f.
func ReduceRight[I, A, B any, E Error[I, E]](pat Pattern[I, Pair[[]A, B], E], f func(A, B) B) Pattern[I, B, E] {
	return Map[I, Pair[[]A, B], B, E](pat, func(p Pair[[]A, B]) B {
		acc := p.Second
		for i := len(p.First) - 1; i >= 0; i-- {
			acc = f(p.First[i], acc)
		}
		return acc
	})
}

// Boxed is the identity function. A reference implementation's boxed()
// erases a combinator chain's concrete type behind a trait object so it
// can be stored without naming it; a Go Pattern is already one fixed
// closure type regardless of how deeply it's composed, so there is
// nothing left to erase. It exists only so ported call sites compile
// unchanged.
func Boxed[I, O any, E Error[I, E]](pat Pattern[I, O, E]) Pattern[I, O, E] {
	return pat
}
