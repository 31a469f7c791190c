// Package trace records what the analyzer is doing: driver runs, phases,
// files and, at the finest level, every grammar rule the parser enters.
//
// # Usage
//
//	jackfront --trace=- --trace-level=file src/
//
// # Tracers
//
//   - Nop: disabled tracing, zero overhead
//   - StreamTracer: writes each event as it happens (text or NDJSON)
//   - RingTracer: keeps the last N events for a dump after a failure
//   - MultiTracer: fans out to several tracers
//
// # Levels
//
//   - LevelOff: nothing
//   - LevelPhase: driver and phase boundaries
//   - LevelFile: one span per analyzed file
//   - LevelRule: every parser rule
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	sp := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, path, 0)
//	defer sp.End("")
package trace
