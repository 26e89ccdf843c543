package parsekit

import (
	"fmt"
	"sort"
	"strings"
)

// Error is the capability a user-chosen failure value must implement.
// Self is always instantiated to the implementing type (F-bounded
// polymorphism), the Go substitute for a reference implementation's
// associated Error::Context type and static trait functions.
//
// UnexpectedSym, UnexpectedEnd and ExpectedEnd are constructor-shaped:
// they carry no meaningful receiver state and are conventionally invoked
// on a zero value of Self (see zeroError). Expected, WithContext and
// Merge are ordinary annotate/combine operations on an existing value.
type Error[S any, Self any] interface {
	UnexpectedSym(sym S, at Index) Self
	UnexpectedEnd() Self
	ExpectedEnd(sym S, at Index) Self
	Expected(thing S) Self
	WithContext(ctx any) Self
	Merge(other Self) Self
}

func zeroError[S any, E Error[S, E]]() E {
	var zero E
	return zero
}

// DefaultError is the cheapest possible error capability, for users who
// only care about success/failure and never inspect the reason.
type DefaultError[S any] = EmptyError[S]

// EmptyError discards all failure detail. Every method returns the
// receiver unchanged; useful for tests and size-optimized grammars.
type EmptyError[S any] struct{}

func (e EmptyError[S]) UnexpectedSym(S, Index) EmptyError[S]  { return e }
func (e EmptyError[S]) UnexpectedEnd() EmptyError[S]          { return e }
func (e EmptyError[S]) ExpectedEnd(S, Index) EmptyError[S]    { return e }
func (e EmptyError[S]) Expected(S) EmptyError[S]              { return e }
func (e EmptyError[S]) WithContext(any) EmptyError[S]         { return e }
func (e EmptyError[S]) Merge(EmptyError[S]) EmptyError[S]     { return e }
func (e EmptyError[S]) String() string                        { return "parse error" }

// SimpleError carries the symbol found (if any), the position it was
// found at (if any), and the set of things that were expected there. The
// Expected set is nil after ExpectedEnd: "end of input" is semantically
// exclusive of any symbolic expectation, so it suppresses further merges
// rather than accumulating alongside them.
type SimpleError[S comparable] struct {
	Found    *S
	At       *Index
	Expected map[S]struct{}
	ctx      []any
}

func (SimpleError[S]) UnexpectedSym(sym S, at Index) SimpleError[S] {
	return SimpleError[S]{Found: &sym, At: &at, Expected: map[S]struct{}{}}
}

func (SimpleError[S]) UnexpectedEnd() SimpleError[S] {
	return SimpleError[S]{Expected: map[S]struct{}{}}
}

func (SimpleError[S]) ExpectedEnd(sym S, at Index) SimpleError[S] {
	return SimpleError[S]{Found: &sym, At: &at, Expected: nil}
}

func (e SimpleError[S]) Expected(thing S) SimpleError[S] {
	if e.Expected == nil {
		return e
	}
	next := make(map[S]struct{}, len(e.Expected)+1)
	for k := range e.Expected {
		next[k] = struct{}{}
	}
	next[thing] = struct{}{}
	e.Expected = next
	return e
}

func (e SimpleError[S]) WithContext(ctx any) SimpleError[S] {
	e.ctx = append(append([]any{}, e.ctx...), ctx)
	return e
}

// Merge combines two SimpleErrors produced at the same position (the only
// case Fail.Max calls Merge for). At is kept from the receiver, not
// recomputed from other — a deliberate carry-over from the reference
// implementation, not an oversight.
func (e SimpleError[S]) Merge(other SimpleError[S]) SimpleError[S] {
	found := e.Found
	if found == nil {
		found = other.Found
	}
	var expected map[S]struct{}
	if e.Expected != nil && other.Expected != nil {
		expected = make(map[S]struct{})
		for k := range e.Expected {
			expected[k] = struct{}{}
		}
		for k := range other.Expected {
			expected[k] = struct{}{}
		}
	}
	return SimpleError[S]{
		Found:    found,
		At:       e.At,
		Expected: expected,
		ctx:      append(append([]any{}, e.ctx...), other.ctx...),
	}
}

func (e SimpleError[S]) Error() string {
	var b strings.Builder
	if e.Found != nil {
		fmt.Fprintf(&b, "found %v", *e.Found)
	} else {
		b.WriteString("found end of input")
	}
	if e.Expected == nil {
		b.WriteString(", expected end of input")
	} else if len(e.Expected) > 0 {
		items := make([]string, 0, len(e.Expected))
		for k := range e.Expected {
			items = append(items, fmt.Sprintf("%v", k))
		}
		sort.Strings(items)
		fmt.Fprintf(&b, ", expected one of %s", strings.Join(items, ", "))
	}
	for _, c := range e.ctx {
		fmt.Fprintf(&b, " (in %v)", c)
	}
	return b.String()
}
