// Copyright 2026 The Oil Transport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sink

// Nop is a Sink that does nothing; the default when a caller wants the
// orchestrator to run without any observers.
type Nop struct{}

// OnStep implements Sink
func (Nop) OnStep(step int, t float64, u []float64, diagnostic float64) error { return nil }

// OnFinal implements Sink
func (Nop) OnFinal(step int, t float64, u []float64, diagnostic float64) error { return nil }

// Close implements Sink
func (Nop) Close() error { return nil }
