package parsekit

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestDeclareDefineThenLinkParses(t *testing.T) {
	decl := Declare[byte, byte, byteErr]()
	decl.Define(JustEq[byte, byteErr]('a'))

	p := NewParser(decl.Link())
	out, errs := p.Parse([]byte("a"))
	assert.Equal(t, 0, len(errs))
	assert.Equal(t, byte('a'), out)
}

func TestLinkBeforeDefinePanics(t *testing.T) {
	decl := Declare[byte, byte, byteErr]()
	link := decl.Link()

	defer func() {
		r := recover()
		assert.True(t, r != nil)
	}()
	s := NewStream([]byte("a"), nil)
	link(s)
}

func TestDoubleDefinePanics(t *testing.T) {
	decl := Declare[byte, byte, byteErr]()
	decl.Define(JustEq[byte, byteErr]('a'))

	defer func() {
		r := recover()
		assert.True(t, r != nil)
	}()
	decl.Define(JustEq[byte, byteErr]('b'))
}

func TestRecursiveParsesNestedStructure(t *testing.T) {
	// balanced parens: '(' expr ')' | 'x'
	pat := Recursive[byte, int, byteErr](func(decl *Declaration[byte, int, byteErr]) Pattern[byte, int, byteErr] {
		inner := Map[byte, Triple[byte, int, byte], int, byteErr](
			Then2[byte, byte, int, byte, byteErr](JustEq[byte, byteErr]('('), decl.Link(), JustEq[byte, byteErr](')')),
			func(t Triple[byte, int, byte]) int { return t.Second + 1 },
		)
		leaf := To[byte, byte, int, byteErr](JustEq[byte, byteErr]('x'), 0)
		return Or[byte, int, byteErr](inner, leaf)
	})

	p := NewParser(pat)
	out, errs := p.Parse([]byte("((x))"))
	assert.Equal(t, 0, len(errs))
	assert.Equal(t, 2, out)
}

func TestRecursionDepthGuardPanics(t *testing.T) {
	decl := Declare[byte, byte, byteErr]()
	decl.Define(decl.Link())

	p := NewParser(decl.Link())

	defer func() {
		r := recover()
		assert.True(t, r != nil)
	}()
	p.Parse([]byte("x"), WithMaxDepth(10))
}
