// Copyright 2026 The Oil Transport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sink

// Frame is one captured simulation snapshot
type Frame struct {
	Step          int
	Time          float64
	Concentration []float64 // owned copy, safe to retain
	Diagnostic    float64
}

// FrameCollector buffers frames for an external renderer to consume later;
// visualization itself (colour mapping, animation assembly) stays an
// external collaborator per spec §1.
type FrameCollector struct {
	Frames []Frame
}

// NewFrameCollector returns an empty collector
func NewFrameCollector() *FrameCollector {
	return &FrameCollector{}
}

// OnStep implements Sink
func (f *FrameCollector) OnStep(step int, t float64, u []float64, diagnostic float64) error {
	f.Frames = append(f.Frames, Frame{
		Step:          step,
		Time:          t,
		Concentration: append([]float64(nil), u...),
		Diagnostic:    diagnostic,
	})
	return nil
}

// OnFinal implements Sink; it records the final state unless OnStep has
// already captured a frame for the same step
func (f *FrameCollector) OnFinal(step int, t float64, u []float64, diagnostic float64) error {
	if n := len(f.Frames); n > 0 && f.Frames[n-1].Step == step {
		return nil
	}
	return f.OnStep(step, t, u, diagnostic)
}

// Close implements Sink
func (f *FrameCollector) Close() error { return nil }
