// Copyright 2026 The Oil Transport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim implements the explicit time integrator, the run-diagnostic
// and the orchestrator state machine that drives them, grounded in the
// teacher's fem.FEM (stage loop) and fem.Solver (time-loop interface)
// generalized from implicit FE assembly to one explicit upwind sweep.
package sim

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/cpmech/oiltransport/flux"
	"github.com/cpmech/oiltransport/geom"
	"github.com/cpmech/oiltransport/mesh"
	"github.com/cpmech/oiltransport/oilerr"
)

// parallelThreshold is the triangle count above which Integrator.Step
// splits the sweep across a bounded worker pool instead of running it on
// a single goroutine; below it, the overhead of spawning workers is not
// worth paying. Spec §5 permits, but does not require, this.
const parallelThreshold = 2000

// Integrator performs one explicit forward-Euler sweep per Step call,
// double-buffering the concentration field so every triangle reads the
// snapshot from the start of the step (spec §4.4).
type Integrator struct{}

// Step advances m's concentrations by one step of size dt. All triangles
// read the pre-step snapshot; the sweep order is immaterial.
func (Integrator) Step(m *mesh.Mesh, dt float64) error {
	cur := m.Concentrations()
	next := make([]float64, len(cur))

	var err error
	if len(m.Triangles) > parallelThreshold {
		err = parallelSweep(m, cur, next, dt)
	} else {
		err = sequentialSweep(m, cur, next, dt)
	}
	if err != nil {
		return err
	}
	m.SetConcentrations(next)
	return nil
}

func sequentialSweep(m *mesh.Mesh, cur, next []float64, dt float64) error {
	for i := range m.Triangles {
		v, err := updateCell(m, &m.Triangles[i], cur, dt)
		if err != nil {
			return err
		}
		next[i] = v
	}
	return nil
}

// parallelSweep splits the triangle range across runtime.GOMAXPROCS(0)
// workers; each worker only ever writes the indices in its own slice of
// next, so no synchronisation is needed beyond the final join.
func parallelSweep(m *mesh.Mesh, cur, next []float64, dt float64) error {
	n := len(m.Triangles)
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				v, err := updateCell(m, &m.Triangles[i], cur, dt)
				if err != nil {
					errs[w] = err
					return
				}
				next[i] = v
			}
		}(w, lo, hi)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// updateCell computes triangle t's new concentration from the read-only
// snapshot cur, summing the upwind flux contribution of every interface.
func updateCell(m *mesh.Mesh, t *mesh.TriangleCell, cur []float64, dt float64) (float64, error) {
	uT := cur[t.Index]
	var sum float64
	for _, iface := range t.Interfaces {
		var uN float64
		var vN geom.Point
		if iface.NeighbourIsLine {
			uN, vN = uT, t.VelocitySample
		} else {
			uN = cur[iface.NeighbourIndex]
			vN = m.Triangles[iface.NeighbourIndex].VelocitySample
		}
		sum += flux.Upwind(t.Area, t.VelocitySample, vN, iface.OutwardNormal, iface.EdgeLength, uT, uN, dt)
	}
	v := uT + sum
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, oilerr.New(oilerr.InvalidConcentration, fmt.Sprintf("triangle %d: %v", t.Index, v))
	}
	return v, nil
}
