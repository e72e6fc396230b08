// Package profile provides optional runtime profiling for arpx.
//
// Profiling uses [github.com/pkg/profile] and is compiled in only with the
// "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Config.Start] always returns a no-op and [Modes] is
// empty.
//
// # Modes
//
// allocs, block, clock, cpu, goroutine, heap, mem, mutex, thread, trace.
//
// # Usage
//
//	defer profile.Make(
//		profile.WithMode("cpu"),
//		profile.WithPath(dir),
//	).Start().Stop()
//
// Profile files are written to the configured directory named after the
// mode (cpu.pprof, mem.pprof). Analyze them with go tool pprof:
//
//	go tool pprof -http=: $XDG_CACHE_HOME/arpx/pprof/cpu.pprof
//
// The pprof build also registers the [net/http/pprof] handlers.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
