// Copyright 2026 The Oil Transport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sink implements the snapshot-sink capability contract of spec
// §4.7: per-step state handed to zero or more observers. This mirrors the
// teacher's out package, which likewise drives a small, fixed set of
// output collectors from one call site in the solver loop, except here the
// collectors are behind an explicit interface rather than package-level
// globals, since the core composes an arbitrary caller-supplied set.
package sink

// Sink receives per-step and final simulation state. Implementations MUST
// NOT mutate u and MUST NOT retain a reference to u beyond the call: u is
// only valid for the duration of the call and must be copied if it needs
// to survive past it.
type Sink interface {
	// OnStep is called after the integrator writes, at step 0, at the
	// steps selected by the write-frequency policy and at the final step.
	OnStep(step int, t float64, u []float64, diagnostic float64) error
	// OnFinal is called once after the final step.
	OnFinal(step int, t float64, u []float64, diagnostic float64) error
	// Close releases any resources held by the sink.
	Close() error
}
