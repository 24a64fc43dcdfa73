// Package trace provides the tracing subsystem for bigcalc.
//
// Tracing records command, expression and operator boundaries so that slow
// evaluations (huge factorials, deep divisions) can be diagnosed.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	bigcalc eval --trace=- --trace-level=expr "2 1000 ^ 3 /"
//
// # Architecture
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: immediate write to output (file/stderr)
//   - RingTracer: circular buffer dumped when a command fails
//   - MultiTracer: combines multiple tracers
//   - Heartbeat: periodic liveness events during long computations
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: only the ring dump on failure
//   - LevelCommand: CLI command boundaries
//   - LevelExpr: per-expression events
//   - LevelDebug: everything including single operators
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	ctx, span := trace.Start(ctx, trace.ScopeExpr, "eval")
//	defer span.End("")
package trace
