// Package geomopts provides the functional-options type shared by the
// sweep, Boolean and relation entrypoints. Triangulation takes no
// options.
//
// The kernel is exact rather than epsilon-tolerant, so there is no
// epsilon knob here; the functional-options shape covers what an exact
// sweep can still usefully tune: a capacity hint for the event store's
// backing arrays, and a switch to collect crossing points during a
// sweep.
package geomopts

// Options holds the configurable parameters accepted by the sweep,
// Boolean and relation entrypoints.
type Options struct {
	// EventCapacityHint pre-sizes the event store's backing arrays.
	// Zero means "let the store grow from empty", the default.
	EventCapacityHint int

	// CollectIntersections makes a sweep record every proper crossing
	// point between segments of different operands, at the cost of an
	// allocation per crossing. Off by default; relate turns it on for
	// its own sweep and does not return the points.
	CollectIntersections bool
}

// Option configures an Options value.
type Option func(*Options)

// WithEventCapacityHint pre-sizes the event store for n expected input
// segments (i.e. 2n initial event handles), avoiding reallocation during
// ingestion for callers who know their input size in advance.
func WithEventCapacityHint(n int) Option {
	return func(o *Options) { o.EventCapacityHint = n }
}

// WithIntersectionCollection turns on crossing-point bookkeeping in a
// sweep; the recorded points are read back with
// sweep.Operation.CrossingPoints.
func WithIntersectionCollection() Option {
	return func(o *Options) { o.CollectIntersections = true }
}

// Apply starts from the zero-value Options and applies each opt in
// order.
func Apply(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
