//go:build !debug

// Package trace provides the sweep engine's verbose event tracing,
// gated behind the "debug" build tag so production builds pay nothing
// for it. In a normal build Tracef is inlined away to a no-op.
package trace

// Tracef is a no-op in normal builds. Build with "-tags debug" to route
// it to stderr instead (see trace_debug.go).
func Tracef(format string, args ...interface{}) {}
