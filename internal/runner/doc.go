// Package runner is the subprocess boundary between reelkit and the
// DCP-o-matic executables.
//
// The Executor interface is the single capability the tool clients depend
// on, so tests drive them with recording stubs. The real implementation
// resolves the binary on PATH, enforces a timeout, captures stdout and
// stderr, and reports the exit code; a non-zero exit is data for the
// interpreters, not an error. An optional advisory file lock serializes
// invocations for installs whose tools share a render cache.
package runner
