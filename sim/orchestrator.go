// Copyright 2026 The Oil Transport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cpmech/oiltransport/geom"
	"github.com/cpmech/oiltransport/mesh"
	"github.com/cpmech/oiltransport/oilerr"
	"github.com/cpmech/oiltransport/sink"
)

// State is one of the orchestrator's five lifecycle states, spec §4.8.
type State int

const (
	StateLoaded State = iota
	StateInitialised
	StateRunning
	StateFinalising
	StateDone
)

// String names a State for logging
func (s State) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateInitialised:
		return "initialised"
	case StateRunning:
		return "running"
	case StateFinalising:
		return "finalising"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// Params is the validated parameter record the core consumes (spec §6);
// config.Config carries the same information plus file-format concerns and
// converts to Params via config.Config.ToParams.
type Params struct {
	NSteps         int
	TStart         float64
	TEnd           float64
	FishingGrounds geom.Box
	WriteFrequency *int // nil means no periodic sink calls
}

// dt returns the fixed step size mandated by spec §9:
// (t_end - t_start) / n_steps.
func (p Params) dt() float64 {
	return (p.TEnd - p.TStart) / float64(p.NSteps)
}

// validate rejects a Params that would make dt ill-defined or that
// otherwise violates spec §6's required-key table.
func (p Params) validate() error {
	if p.NSteps <= 0 {
		return oilerr.New(oilerr.ConfigInconsistent, "n_steps")
	}
	if p.TEnd <= p.TStart {
		return oilerr.New(oilerr.ConfigInconsistent, "t_end")
	}
	return nil
}

// Orchestrator drives the mesh through the state machine of spec §4.8,
// generalizing the teacher's fem.FEM.Run stage loop (which iterates FE
// load-stages) to a single explicit time window swept in NSteps steps.
type Orchestrator struct {
	mesh   *mesh.Mesh
	params Params
	sink   sink.Sink
	integ  Integrator
	state  State
	step   int
	Log    *logrus.Logger // set to logrus.StandardLogger() by New; must not be nil
}

// New returns an Orchestrator in the loaded state
func New(m *mesh.Mesh, params Params, snk sink.Sink) *Orchestrator {
	if snk == nil {
		snk = sink.Nop{}
	}
	return &Orchestrator{mesh: m, params: params, sink: snk, state: StateLoaded, Log: logrus.StandardLogger()}
}

// State reports the orchestrator's current lifecycle state
func (o *Orchestrator) State() State { return o.state }

// Initialize transitions loaded -> initialised, computing and emitting the
// step-0 diagnostic and frame regardless of write-frequency (spec §4.8: a
// sink always receives step 0 and the final step).
func (o *Orchestrator) Initialize() error {
	if o.state != StateLoaded {
		return fmt.Errorf("sim: Initialize called in state %v, want %v", o.state, StateLoaded)
	}
	if err := o.params.validate(); err != nil {
		return err
	}
	diag := FishingGroundsMass(o.mesh, o.params.FishingGrounds)
	if err := o.sink.OnStep(0, o.params.TStart, o.mesh.Concentrations(), diag); err != nil {
		o.logSinkError(0, err)
	}
	o.state = StateInitialised
	o.Log.WithFields(logrus.Fields{"n_steps": o.params.NSteps, "diagnostic": diag}).Info("initialised")
	return nil
}

// Run drives the simulation from initialised through running to done,
// returning the final fishing-grounds diagnostic. ctx is checked once per
// step so a caller can stop the loop between steps (see SPEC_FULL.md §4.8);
// spec §5 forbids cancelling mid-step only, which this honours since the
// check happens strictly between integrator sweeps.
func (o *Orchestrator) Run(ctx context.Context) (float64, error) {
	if o.state != StateInitialised {
		return 0, fmt.Errorf("sim: Run called in state %v, want %v", o.state, StateInitialised)
	}
	o.state = StateRunning
	dt := o.params.dt()

	var diag float64
	for step := 1; step <= o.params.NSteps; step++ {
		if err := ctx.Err(); err != nil {
			return diag, err
		}
		if err := o.integ.Step(o.mesh, dt); err != nil {
			return diag, err
		}
		o.step = step
		t := o.params.TStart + float64(step)*dt
		diag = FishingGroundsMass(o.mesh, o.params.FishingGrounds)

		final := step == o.params.NSteps
		if final {
			o.state = StateFinalising
		}
		if shouldEmit(step, o.params.WriteFrequency, final) {
			if err := o.sink.OnStep(step, t, o.mesh.Concentrations(), diag); err != nil {
				o.logSinkError(step, err)
			}
		}
		if final {
			if err := o.sink.OnFinal(step, t, o.mesh.Concentrations(), diag); err != nil {
				o.logSinkError(step, err)
			}
		}
	}
	o.state = StateDone
	o.Log.WithFields(logrus.Fields{"steps": o.params.NSteps, "diagnostic": diag}).Info("run complete")
	return diag, nil
}

// logSinkError reports a non-fatal sink failure (spec §7: snapshot-sink I/O
// failures are reported but do not halt the integration).
func (o *Orchestrator) logSinkError(step int, err error) {
	o.Log.WithFields(logrus.Fields{"step": step, "error": err}).Error("sink failed")
}

// shouldEmit implements the write-frequency policy of spec §4.8: every k
// steps, plus always at step 0 and the final step.
func shouldEmit(step int, wf *int, final bool) bool {
	if step == 0 || final {
		return true
	}
	if wf == nil {
		return false
	}
	if *wf <= 0 {
		return false
	}
	return step%*wf == 0
}
