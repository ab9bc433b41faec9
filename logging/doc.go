// Package logging provides a minimal logging interface and adapters for
// statesearch.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the solver facade and the report runner use for
// observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - SearchLogger with contextual helpers (component, run ID) and a
//     domain helper for recording completed search runs
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	solver := statesearch.New(func(o *statesearch.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging
