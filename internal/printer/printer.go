package printer

// Package printer contains the backends a rendered command stream can be
// submitted to. The render pipeline is pure; everything that touches a real
// device (or a spool directory standing in for one) lives here.

import "context"

// Backend delivers rendered printer command streams to a physical printer
// or a stand-in for one.
type Backend interface {
	// Kind identifies the printer class served by this backend, e.g. "label".
	Kind() string
	// IsAvailable reports whether the backend can currently accept jobs.
	IsAvailable(ctx context.Context) bool
	// Submit hands a complete command stream to the backend under the given
	// job name and returns a backend-specific job reference.
	Submit(ctx context.Context, jobName string, stream []byte) (string, error)
}
