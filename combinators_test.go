package parsekit

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestMapTransformsOutput(t *testing.T) {
	p := NewParser(Map[byte, byte, int, byteErr](Any[byte, byteErr](), func(b byte) int { return int(b) }))
	out, errs := p.Parse([]byte("A"))
	assert.Equal(t, 0, len(errs))
	assert.Equal(t, 65, out)
}

func TestToReplacesOutput(t *testing.T) {
	p := NewParser(To[byte, byte, string, byteErr](Any[byte, byteErr](), "matched"))
	out, errs := p.Parse([]byte("A"))
	assert.Equal(t, 0, len(errs))
	assert.Equal(t, "matched", out)
}

func TestMapErrChangesErrorType(t *testing.T) {
	p := NewParser(MapErr[byte, byte, byteErr, DefaultError[byte]](Any[byte, byteErr](), func(byteErr) DefaultError[byte] {
		return DefaultError[byte]{}
	}))
	_, errs := p.Parse(nil)
	assert.Equal(t, 1, len(errs))
}

func TestWithContextAnnotates(t *testing.T) {
	p := NewParser(WithContext[byte, byte, byteErr](JustEq[byte, byteErr]('a'), "digit-expr"))
	_, errs := p.Parse([]byte("b"))
	assert.Equal(t, 1, len(errs))
	assert.Contains(t, errs[0].Error(), "digit-expr")
}

func TestThenCombinesBothOutputs(t *testing.T) {
	p := NewParser(Then[byte, byte, byte, byteErr](JustEq[byte, byteErr]('a'), JustEq[byte, byteErr]('b')))
	out, errs := p.Parse([]byte("ab"))
	assert.Equal(t, 0, len(errs))
	assert.Equal(t, byte('a'), out.First)
	assert.Equal(t, byte('b'), out.Second)
}

func TestThenRollsBackOnSecondFailure(t *testing.T) {
	s := NewStream([]byte("ax"), nil)
	pat := Then[byte, byte, byte, byteErr](JustEq[byte, byteErr]('a'), JustEq[byte, byteErr]('b'))
	_, fail := pat(s)
	assert.True(t, fail != nil)
	assert.Equal(t, Index(0), s.Checkpoint())
}

func TestOrTriesSecondOnFirstFailure(t *testing.T) {
	p := NewParser(Or[byte, byte, byteErr](JustEq[byte, byteErr]('a'), JustEq[byte, byteErr]('b')))
	out, errs := p.Parse([]byte("b"))
	assert.Equal(t, 0, len(errs))
	assert.Equal(t, byte('b'), out)
}

func TestOrPrefersFirstOnSuccess(t *testing.T) {
	p := NewParser(Or[byte, byte, byteErr](JustEq[byte, byteErr]('a'), JustEq[byte, byteErr]('a')))
	out, errs := p.Parse([]byte("a"))
	assert.Equal(t, 0, len(errs))
	assert.Equal(t, byte('a'), out)
}

func TestOrFailsWithFurthestWhenBothFail(t *testing.T) {
	p := NewParser(Or[byte, byte, byteErr](JustEq[byte, byteErr]('a'), JustEq[byte, byteErr]('b')))
	_, errs := p.Parse([]byte("c"))
	assert.Equal(t, 1, len(errs))
	_, hasA := errs[0].Expected['a']
	_, hasB := errs[0].Expected['b']
	assert.True(t, hasA)
	assert.True(t, hasB)
}

func TestPaddingForDiscardsLeading(t *testing.T) {
	p := NewParser(PaddingFor[byte, byte, byte, byteErr](JustEq[byte, byteErr](' '), Any[byte, byteErr]()))
	out, errs := p.Parse([]byte(" x"))
	assert.Equal(t, 0, len(errs))
	assert.Equal(t, byte('x'), out)
}

func TestPaddedByDiscardsTrailing(t *testing.T) {
	p := NewParser(PaddedBy[byte, byte, byte, byteErr](Any[byte, byteErr](), JustEq[byte, byteErr](' ')))
	out, errs := p.Parse([]byte("x "))
	assert.Equal(t, 0, len(errs))
	assert.Equal(t, byte('x'), out)
}

func TestRepeatedMatchesGreedily(t *testing.T) {
	p := NewParser(Repeated[byte, byte, byteErr](JustEq[byte, byteErr]('a')))
	out, errs := p.Parse([]byte("aaab"))
	assert.Equal(t, 1, len(errs))
	assert.Equal(t, []byte{'a', 'a', 'a'}, out)
}

func TestRepeatedSucceedsOnZeroMatches(t *testing.T) {
	p := NewParser(Repeated[byte, byte, byteErr](JustEq[byte, byteErr]('a')))
	out, errs := p.Parse([]byte("b"))
	assert.Equal(t, 1, len(errs))
	assert.Equal(t, 0, len(out))
}

func TestRepeatedBreaksOnZeroProgress(t *testing.T) {
	zeroWidth := OrNot[byte, byte, byteErr](JustEq[byte, byteErr]('z'))
	s := NewStream([]byte("a"), nil)
	pat := Repeated[byte, Maybe[byte], byteErr](zeroWidth)
	res, fail := pat(s)
	assert.True(t, fail == nil)
	assert.Equal(t, 1, len(res.Output))
	assert.Equal(t, Index(0), s.Checkpoint())
}

func TestOnceOrMoreRequiresAtLeastOne(t *testing.T) {
	p := NewParser(OnceOrMore[byte, byte, byteErr](JustEq[byte, byteErr]('a')))
	_, errs := p.Parse([]byte("b"))
	assert.Equal(t, 1, len(errs))
}

func TestOnceOrMoreSucceedsWithOne(t *testing.T) {
	p := NewParser(OnceOrMore[byte, byte, byteErr](JustEq[byte, byteErr]('a')))
	out, errs := p.Parse([]byte("a"))
	assert.Equal(t, 0, len(errs))
	assert.Equal(t, []byte{'a'}, out)
}

func TestSeparatedByCollectsItems(t *testing.T) {
	p := NewParser(SeparatedBy[byte, byte, byte, byteErr](Permit[byte, byteErr](func(b byte) bool { return b >= '0' && b <= '9' }), JustEq[byte, byteErr](',')))
	out, errs := p.Parse([]byte("1,2,3"))
	assert.Equal(t, 0, len(errs))
	assert.Equal(t, []byte{'1', '2', '3'}, out)
}

func TestOrNotSucceedsOnFailure(t *testing.T) {
	p := NewParser(OrNot[byte, byte, byteErr](JustEq[byte, byteErr]('a')))
	out, errs := p.Parse(nil)
	assert.Equal(t, 0, len(errs))
	assert.False(t, out.Present)
}

func TestOrNotSucceedsOnMatch(t *testing.T) {
	p := NewParser(OrNot[byte, byte, byteErr](JustEq[byte, byteErr]('a')))
	out, errs := p.Parse([]byte("a"))
	assert.Equal(t, 0, len(errs))
	assert.True(t, out.Present)
	assert.Equal(t, byte('a'), out.Value)
}

func TestReduceLeftFoldsLeftToRight(t *testing.T) {
	digit := Map[byte, byte, int, byteErr](Permit[byte, byteErr](func(b byte) bool { return b >= '0' && b <= '9' }), func(b byte) int { return int(b - '0') })
	pat := Then[byte, int, []int, byteErr](digit, Repeated[byte, int, byteErr](digit))
	reduced := ReduceLeft[byte, int, int, byteErr](pat, func(a, b int) int { return a*10 + b })

	p := NewParser(reduced)
	out, errs := p.Parse([]byte("123"))
	assert.Equal(t, 0, len(errs))
	assert.Equal(t, 123, out)
}

func TestBoxedIsIdentity(t *testing.T) {
	p := NewParser(Boxed[byte, byte, byteErr](JustEq[byte, byteErr]('a')))
	out, errs := p.Parse([]byte("a"))
	assert.Equal(t, 0, len(errs))
	assert.Equal(t, byte('a'), out)
}
