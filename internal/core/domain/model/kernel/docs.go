// Package kernel contains shared value objects used across domain aggregates.
// Types in this package are immutable and safe for concurrent use.
package kernel
