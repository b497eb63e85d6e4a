// Package internal implements the loom render engine: the fiber tree,
// the cooperative work loop, the positional reconciler, the commit phase
// and the hook state cells. The public package wraps it with a typed API.
package internal

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'loom.engine'.
func tracer() tracing.Trace {
	return tracing.Select("loom.engine")
}
