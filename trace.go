package parsekit

import (
	"fmt"
	"io"
	"strings"
)

// TraceKind categorizes a TraceEvent, mirroring the reference combinator
// library's Enter/Match/NotMatch distinction.
type TraceKind int

const (
	TraceEnter TraceKind = iota
	TraceMatch
	TraceNoMatch
)

func (k TraceKind) String() string {
	switch k {
	case TraceEnter:
		return ">"
	case TraceMatch:
		return "<"
	case TraceNoMatch:
		return "!"
	}
	return "?"
}

// TraceEvent records one named Pattern's entry and outcome, collected only
// when the Stream's Config has WithTrace applied.
type TraceEvent struct {
	Kind   TraceKind
	Depth  int
	Name   string
	At     Index
	Result string
}

// Traced wraps pat so that, when tracing is enabled on the Stream's
// Config, entering and leaving it records a TraceEvent pair under name.
// Tracing is otherwise a no-op, so instrumenting a grammar with Traced
// costs nothing when WithTrace isn't supplied.
func Traced[I, O any, E Error[I, E]](name string, pat Pattern[I, O, E]) Pattern[I, O, E] {
	return func(s *Stream[I]) (ParseResult[I, O, E], *Fail[I, E]) {
		cfg := s.config
		at := s.Checkpoint()
		depth := cfg.traceDepth
		cfg.traceDepth++
		defer func() { cfg.traceDepth-- }()
		cfg.recordTrace(TraceEvent{Kind: TraceEnter, Depth: depth, Name: name, At: at})
		res, fail := pat(s)
		if fail != nil {
			cfg.recordTrace(TraceEvent{Kind: TraceNoMatch, Depth: depth, Name: name, At: at, Result: fmt.Sprintf("%v", fail.Collect())})
			return res, fail
		}
		cfg.recordTrace(TraceEvent{Kind: TraceMatch, Depth: depth, Name: name, At: at, Result: fmt.Sprintf("%v", res.Output)})
		return res, fail
	}
}

// DumpTrace writes trace events (for example, Config.Events) to w in the
// reference combinator library's indented Enter/Match/NotMatch format.
func DumpTrace(w io.Writer, events []TraceEvent) {
	for _, ev := range events {
		indent := strings.Repeat("  ", ev.Depth)
		switch ev.Kind {
		case TraceEnter:
			fmt.Fprintf(w, "%s%s %s at %d\n", indent, ev.Kind, ev.Name, ev.At)
		case TraceMatch:
			fmt.Fprintf(w, "%s%s %s => %s\n", indent, ev.Kind, ev.Name, ev.Result)
		case TraceNoMatch:
			fmt.Fprintf(w, "%s%s %s => %s\n", indent, ev.Kind, ev.Name, ev.Result)
		}
	}
}
