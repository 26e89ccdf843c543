package parsekit

import "math"

// Index is a 0-based position in a Stream. EndIndex is the sentinel used
// for errors produced at end-of-input, mirroring a reference Rust
// implementation's use of !0 (all bits set) for the same purpose.
type Index = uint64

// EndIndex marks "end of input" for error positions.
const EndIndex Index = math.MaxUint64
