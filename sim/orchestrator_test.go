// Copyright 2026 The Oil Transport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"bytes"
	"context"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/oiltransport/geom"
	"github.com/cpmech/oiltransport/ic"
	"github.com/cpmech/oiltransport/mesh"
	"github.com/cpmech/oiltransport/restart"
	"github.com/cpmech/oiltransport/sink"
)

func wholeDomainParams(nSteps int, wf *int) Params {
	return Params{
		NSteps:         nSteps,
		TStart:         0,
		TEnd:           1,
		FishingGrounds: geom.Box{Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: 1, Y: 1}},
		WriteFrequency: wf,
	}
}

func TestRunRejectsSkippingInitialize(tst *testing.T) {
	m := twoTrianglesZeroVelocity(tst, 0.1, 0.2)
	o := New(m, wholeDomainParams(4, nil), nil)
	if _, err := o.Run(context.Background()); err == nil {
		tst.Fatal("expected Run before Initialize to fail")
	}
}

func TestLifecycleReachesDone(tst *testing.T) {
	m := twoTrianglesZeroVelocity(tst, 0.1, 0.2)
	o := New(m, wholeDomainParams(4, nil), nil)
	if err := o.Initialize(); err != nil {
		tst.Fatalf("Initialize failed: %v", err)
	}
	if o.State() != StateInitialised {
		tst.Fatalf("expected initialised, got %v", o.State())
	}
	if _, err := o.Run(context.Background()); err != nil {
		tst.Fatalf("Run failed: %v", err)
	}
	if o.State() != StateDone {
		tst.Fatalf("expected done, got %v", o.State())
	}
}

func TestWriteFrequencyCadence(tst *testing.T) {
	m := twoTrianglesZeroVelocity(tst, 0.1, 0.2)
	wf := 2
	fc := sink.NewFrameCollector()
	o := New(m, wholeDomainParams(6, &wf), fc)
	if err := o.Initialize(); err != nil {
		tst.Fatalf("Initialize failed: %v", err)
	}
	if _, err := o.Run(context.Background()); err != nil {
		tst.Fatalf("Run failed: %v", err)
	}
	// expect steps 0 (Initialize), 2, 4, 6 (periodic) -- 6 is also final
	var steps []int
	for _, f := range fc.Frames {
		steps = append(steps, f.Step)
	}
	want := []int{0, 2, 4, 6}
	if len(steps) != len(want) {
		tst.Fatalf("got steps %v, want %v", steps, want)
	}
	for i := range want {
		if steps[i] != want[i] {
			tst.Fatalf("got steps %v, want %v", steps, want)
		}
	}
}

func TestDiagnosticEqualsWholeDomainMass(tst *testing.T) {
	m := twoTrianglesZeroVelocity(tst, 0.1, 0.2)
	o := New(m, wholeDomainParams(3, nil), nil)
	if err := o.Initialize(); err != nil {
		tst.Fatalf("Initialize failed: %v", err)
	}
	diag, err := o.Run(context.Background())
	if err != nil {
		tst.Fatalf("Run failed: %v", err)
	}
	want := m.Triangles[0].Concentration*m.Triangles[0].Area + m.Triangles[1].Concentration*m.Triangles[1].Area
	chk.Scalar(tst, "diagnostic", 1e-12, diag, want)
}

// TestRestartRoundTrip is spec §8 scenario 4: running N steps, writing a
// restart, reloading it and continuing N steps reproduces 2N steps run in
// one pass.
func TestRestartRoundTrip(tst *testing.T) {
	buildMesh := func(tst *testing.T) *mesh.Mesh {
		points := []geom.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
		triangles := [][3]int{{0, 1, 2}, {1, 3, 2}}
		lines := [][2]int{{0, 1}, {1, 3}, {3, 2}, {2, 0}}
		m, err := mesh.Build(points, triangles, lines)
		if err != nil {
			tst.Fatalf("Build failed: %v", err)
		}
		return m
	}

	const n = 5
	straight := buildMesh(tst)
	ic.Gaussian(straight, geom.Point{X: 0.3, Y: 0.3})
	integ := Integrator{}
	dt := 1.0 / float64(2*n)
	for i := 0; i < 2*n; i++ {
		if err := integ.Step(straight, dt); err != nil {
			tst.Fatalf("straight step %d: %v", i, err)
		}
	}

	staged := buildMesh(tst)
	ic.Gaussian(staged, geom.Point{X: 0.3, Y: 0.3})
	for i := 0; i < n; i++ {
		if err := integ.Step(staged, dt); err != nil {
			tst.Fatalf("staged first half step %d: %v", i, err)
		}
	}
	var buf bytes.Buffer
	if err := restart.Write(&buf, float64(n)*dt, 0, staged.Concentrations()); err != nil {
		tst.Fatalf("restart.Write: %v", err)
	}
	snap, err := restart.Read(&buf)
	if err != nil {
		tst.Fatalf("restart.Read: %v", err)
	}

	resumed := buildMesh(tst)
	if err := ic.FromRestart(resumed, snap); err != nil {
		tst.Fatalf("FromRestart: %v", err)
	}
	for i := 0; i < n; i++ {
		if err := integ.Step(resumed, dt); err != nil {
			tst.Fatalf("resumed step %d: %v", i, err)
		}
	}

	chk.Scalar(tst, "u0", 1e-9, resumed.Triangles[0].Concentration, straight.Triangles[0].Concentration)
	chk.Scalar(tst, "u1", 1e-9, resumed.Triangles[1].Concentration, straight.Triangles[1].Concentration)
}
