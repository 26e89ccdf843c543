package parsekit

// Config holds per-parse settings threaded through a Stream: the
// recursion-depth guard and whether trace events are being collected.
type Config struct {
	maxDepth   int
	depth      int
	traceDepth int
	trace      bool
	events     []TraceEvent
}

// DefaultMaxDepth bounds recursive descent before a Declaration-based
// grammar is assumed to be looping, mirroring the stack-overflow guard the
// reference tool-building code applies defensively around recursive
// combinators.
const DefaultMaxDepth = 100000

// DefaultConfig returns the settings used when Parse is called without
// options: depth guarded at DefaultMaxDepth, tracing off.
func DefaultConfig() *Config {
	return &Config{maxDepth: DefaultMaxDepth}
}

// Option configures a Parser.Parse call.
type Option func(*Config)

// WithMaxDepth overrides the recursion-depth guard.
func WithMaxDepth(n int) Option {
	return func(c *Config) { c.maxDepth = n }
}

// WithTrace enables trace event collection, retrievable afterward via
// Config.Events. Parser.Parse builds its own Config and does not return
// it, so the events of a Parse call are not retrievable; a Config passed
// to NewStream keeps them.
func WithTrace() Option {
	return func(c *Config) { c.trace = true }
}

// Events returns the trace events recorded in this Config while tracing
// was enabled by WithTrace.
func (c *Config) Events() []TraceEvent {
	return c.events
}

func (c *Config) enterDeclaration() bool {
	c.depth++
	return c.depth <= c.maxDepth
}

func (c *Config) leaveDeclaration() {
	c.depth--
}

func (c *Config) recordTrace(ev TraceEvent) {
	if c.trace {
		c.events = append(c.events, ev)
	}
}
