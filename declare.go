package parsekit

import (
	"fmt"

	xgxerror "github.com/xgx-io/xgx-error"
)

// Declaration is a late-bound grammar cell: Link returns a Pattern that
// defers to whatever Define eventually installs, letting grammar rules
// reference each other before all of them exist as Go values. This is
// the Go counterpart of a reference implementation's Rc<RefCell<Option<...>>>
// indirection; Go has no equivalent of a boxed trait object; instead of
// boxing the target Pattern, Declaration stores it as the same Pattern
// function-value type every other combinator already traffics in.
type Declaration[I, O any, E Error[I, E]] struct {
	pat    Pattern[I, O, E]
	define bool
}

// Declare creates an undefined Declaration. Calling Link before Define
// is fine — Link's returned Pattern only dereferences the cell when it
// actually runs, by which point Define must have been called.
func Declare[I, O any, E Error[I, E]]() *Declaration[I, O, E] {
	return &Declaration[I, O, E]{}
}

// Link returns a Pattern that forwards to whatever this Declaration is
// (or will be) Defined as. Calling the returned Pattern before Define has
// run is a programming error, not a parse failure, and panics via
// xgxerror.Defect.
func (d *Declaration[I, O, E]) Link() Pattern[I, O, E] {
	return func(s *Stream[I]) (ParseResult[I, O, E], *Fail[I, E]) {
		if !d.define {
			panic(xgxerror.Defect(fmt.Errorf("parsekit: Link called on a Declaration that was never Define-d")))
		}
		if !s.config.enterDeclaration() {
			panic(xgxerror.Defect(fmt.Errorf("parsekit: recursion depth exceeded %d; grammar may be left-recursive", s.config.maxDepth)))
		}
		defer s.config.leaveDeclaration()
		return d.pat(s)
	}
}

// Define installs pat as this Declaration's target and returns a Pattern
// equivalent to Link's, for the common case of wanting the newly defined
// rule's own Pattern value back. Defining the same Declaration twice is a
// programming error and panics via xgxerror.Defect.
func (d *Declaration[I, O, E]) Define(pat Pattern[I, O, E]) Pattern[I, O, E] {
	if d.define {
		panic(xgxerror.Defect(fmt.Errorf("parsekit: Declaration already Defined")))
	}
	d.pat = pat
	d.define = true
	return d.Link()
}

// Recursive builds a self-referential Pattern in one step: f receives a
// Declaration it can Link against to refer to the rule being built, and
// must return the completed Pattern, which is then used to Define it.
func Recursive[I, O any, E Error[I, E]](f func(*Declaration[I, O, E]) Pattern[I, O, E]) Pattern[I, O, E] {
	decl := Declare[I, O, E]()
	return decl.Define(f(decl))
}
