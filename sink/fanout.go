// Copyright 2026 The Oil Transport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sink

import "errors"

// Fanout composes zero or more sinks and drives all of them from one call,
// grounded in the teacher's habit of driving a fixed handful of output
// collectors from a single hook in the solver loop (out.out.go). A failure
// in one sink does not stop the others from being called; all errors are
// joined and returned so the orchestrator can log them without halting.
type Fanout struct {
	Sinks []Sink
}

// NewFanout composes sinks into one
func NewFanout(sinks ...Sink) *Fanout {
	return &Fanout{Sinks: sinks}
}

// OnStep implements Sink
func (f *Fanout) OnStep(step int, t float64, u []float64, diagnostic float64) error {
	var errs []error
	for _, s := range f.Sinks {
		if err := s.OnStep(step, t, u, diagnostic); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// OnFinal implements Sink
func (f *Fanout) OnFinal(step int, t float64, u []float64, diagnostic float64) error {
	var errs []error
	for _, s := range f.Sinks {
		if err := s.OnFinal(step, t, u, diagnostic); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close releases every sink's resources, joining any errors
func (f *Fanout) Close() error {
	var errs []error
	for _, s := range f.Sinks {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
