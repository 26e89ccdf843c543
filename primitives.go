package parsekit

// Any matches and returns a single token of any value, failing only at
// end of input.
func Any[I any, E Error[I, E]]() Pattern[I, I, E] {
	return func(s *Stream[I]) (ParseResult[I, I, E], *Fail[I, E]) {
		return attempt(s, func(s *Stream[I]) (ParseResult[I, I, E], *Fail[I, E]) {
			_, sym, ok := s.Next()
			if !ok {
				f := OneFail[I, E](EndIndex, zeroError[I, E]().UnexpectedEnd())
				return ParseResult[I, I, E]{}, &f
			}
			return result[I, I, E](sym, NoFail[I, E]()), nil
		})
	}
}

// End succeeds only at end of input, consuming nothing.
func End[I any, E Error[I, E]]() Pattern[I, struct{}, E] {
	return func(s *Stream[I]) (ParseResult[I, struct{}, E], *Fail[I, E]) {
		return attempt(s, func(s *Stream[I]) (ParseResult[I, struct{}, E], *Fail[I, E]) {
			idx, sym, ok := s.Next()
			if ok {
				f := OneFail[I, E](idx, zeroError[I, E]().ExpectedEnd(sym, idx))
				return ParseResult[I, struct{}, E]{}, &f
			}
			return result[I, struct{}, E](struct{}{}, NoFail[I, E]()), nil
		})
	}
}

// Just matches a single token equal (per eq) to item, returning the
// matched token. Use JustEq when I is comparable for the common case of
// item being of the same type as the stream's tokens.
func Just[I, J any, E Error[I, E]](item J, eq func(I, J) bool) Pattern[I, I, E] {
	return func(s *Stream[I]) (ParseResult[I, I, E], *Fail[I, E]) {
		return attempt(s, func(s *Stream[I]) (ParseResult[I, I, E], *Fail[I, E]) {
			idx, sym, ok := s.Next()
			if !ok {
				f := OneFail[I, E](EndIndex, zeroError[I, E]().UnexpectedEnd())
				return ParseResult[I, I, E]{}, &f
			}
			if eq(sym, item) {
				return result[I, I, E](sym, NoFail[I, E]()), nil
			}
			f := OneFail[I, E](idx, zeroError[I, E]().UnexpectedSym(sym, idx))
			return ParseResult[I, I, E]{}, &f
		})
	}
}

// JustEq matches a single token equal to item, for the common case where
// the stream's token type is itself comparable. Unlike the generalized
// Just, its mismatch error carries item via Expected, since item and the
// stream's token type are the same here.
func JustEq[I comparable, E Error[I, E]](item I) Pattern[I, I, E] {
	return func(s *Stream[I]) (ParseResult[I, I, E], *Fail[I, E]) {
		return attempt(s, func(s *Stream[I]) (ParseResult[I, I, E], *Fail[I, E]) {
			idx, sym, ok := s.Next()
			if !ok {
				f := OneFail[I, E](EndIndex, zeroError[I, E]().UnexpectedEnd())
				return ParseResult[I, I, E]{}, &f
			}
			if sym == item {
				return result[I, I, E](sym, NoFail[I, E]()), nil
			}
			f := OneFail[I, E](idx, zeroError[I, E]().UnexpectedSym(sym, idx).Expected(item))
			return ParseResult[I, I, E]{}, &f
		})
	}
}

// Seq matches a fixed run of tokens in order, returning the matched
// tokens. It fails as soon as any element mismatches, without consuming
// beyond the mismatch (attempt restores the stream on failure).
func Seq[I, J any, E Error[I, E]](items []J, eq func(I, J) bool) Pattern[I, []I, E] {
	return func(s *Stream[I]) (ParseResult[I, []I, E], *Fail[I, E]) {
		return attempt(s, func(s *Stream[I]) (ParseResult[I, []I, E], *Fail[I, E]) {
			syms := make([]I, 0, len(items))
			for _, item := range items {
				idx, sym, ok := s.Next()
				if !ok {
					f := OneFail[I, E](EndIndex, zeroError[I, E]().UnexpectedEnd())
					return ParseResult[I, []I, E]{}, &f
				}
				if !eq(sym, item) {
					f := OneFail[I, E](idx, zeroError[I, E]().UnexpectedSym(sym, idx))
					return ParseResult[I, []I, E]{}, &f
				}
				syms = append(syms, sym)
			}
			return result[I, []I, E](syms, NoFail[I, E]()), nil
		})
	}
}

// PermitMap consumes one token and maps it through f; if f returns false
// the token is rejected and the parse fails without consuming it.
func PermitMap[I, O any, E Error[I, E]](f func(I) (O, bool)) Pattern[I, O, E] {
	return func(s *Stream[I]) (ParseResult[I, O, E], *Fail[I, E]) {
		return attempt(s, func(s *Stream[I]) (ParseResult[I, O, E], *Fail[I, E]) {
			idx, sym, ok := s.Next()
			if !ok {
				f := OneFail[I, E](EndIndex, zeroError[I, E]().UnexpectedEnd())
				return ParseResult[I, O, E]{}, &f
			}
			out, accepted := f(sym)
			if !accepted {
				fl := OneFail[I, E](idx, zeroError[I, E]().UnexpectedSym(sym, idx))
				return ParseResult[I, O, E]{}, &fl
			}
			return result[I, O, E](out, NoFail[I, E]()), nil
		})
	}
}

// Permit consumes a single token satisfying pred, returning it unchanged.
func Permit[I any, E Error[I, E]](pred func(I) bool) Pattern[I, I, E] {
	return PermitMap[I, I, E](func(sym I) (I, bool) {
		if pred(sym) {
			return sym, true
		}
		var zero I
		return zero, false
	})
}

// NestedParse consumes one token, uses lookup to obtain a sub-Pattern and
// a fresh sequence of sub-tokens from it, and runs the sub-Pattern over
// that sub-sequence; sub-tokens the sub-Pattern leaves unconsumed are not
// reported as an error. It is the building block for parsers
// whose tokens themselves contain nested token streams (for example, a
// bracket-matched lexer that groups its contents into a single token).
//
// An error raised by the inner parser is re-expressed in the outer
// stream's index space by adding the outer token's index to it, rather
// than replacing the outer index outright: the caller can still tell
// "something inside the token at position N failed" even though the
// precise inner offset is approximate once added back.
func NestedParse[I, J any, E Error[I, E]](lookup func(I) (Pattern[I, J, E], []I, bool)) Pattern[I, J, E] {
	return func(s *Stream[I]) (ParseResult[I, J, E], *Fail[I, E]) {
		return attempt(s, func(s *Stream[I]) (ParseResult[I, J, E], *Fail[I, E]) {
			idx, sym, ok := s.Next()
			if !ok {
				f := OneFail[I, E](EndIndex, zeroError[I, E]().UnexpectedEnd())
				return ParseResult[I, J, E]{}, &f
			}
			pat, inner, has := lookup(sym)
			if !has {
				f := OneFail[I, E](idx, zeroError[I, E]().UnexpectedSym(sym, idx))
				return ParseResult[I, J, E]{}, &f
			}
			innerStream := NewStream(inner, s.config)
			res, fail := pat(innerStream)
			if fail != nil {
				offset := fail.addIndex(idx)
				return ParseResult[I, J, E]{}, &offset
			}
			return res, nil
		})
	}
}
