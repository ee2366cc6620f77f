// Copyright 2026 The Oil Transport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sink

import (
	"io"

	"github.com/cpmech/oiltransport/restart"
)

// RestartWriter checkpoints the current concentration field to w in the
// restart text format (package restart) every time it is invoked; the
// orchestrator decides the cadence via the write-frequency policy. Only
// OnFinal and step-cadence calls from the orchestrator reach it — the
// writer itself has no notion of frequency.
type RestartWriter struct {
	w io.WriteCloser
}

// NewRestartWriter wraps w; the caller retains ownership of closing w via
// Close.
func NewRestartWriter(w io.WriteCloser) *RestartWriter {
	return &RestartWriter{w: w}
}

// OnStep implements Sink
func (r *RestartWriter) OnStep(step int, t float64, u []float64, diagnostic float64) error {
	return restart.Write(r.w, t, diagnostic, u)
}

// OnFinal implements Sink
func (r *RestartWriter) OnFinal(step int, t float64, u []float64, diagnostic float64) error {
	return r.OnStep(step, t, u, diagnostic)
}

// Close implements Sink
func (r *RestartWriter) Close() error {
	return r.w.Close()
}
