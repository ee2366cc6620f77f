// Copyright 2026 The Oil Transport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/oiltransport/geom"
)

func TestConcentrationsRoundTrip(tst *testing.T) {
	m := twoTriangles(tst)
	m.Triangles[0].Concentration = 1.5
	m.Triangles[1].Concentration = 2.5
	u := m.Concentrations()
	chk.Scalar(tst, "u[0]", 1e-15, u[0], 1.5)
	chk.Scalar(tst, "u[1]", 1e-15, u[1], 2.5)

	u[0], u[1] = 9, 10
	m.SetConcentrations(u)
	chk.Scalar(tst, "set u[0]", 1e-15, m.Triangles[0].Concentration, 9)
	chk.Scalar(tst, "set u[1]", 1e-15, m.Triangles[1].Concentration, 10)
}

func TestNeighbourStateReflectsAtBoundary(tst *testing.T) {
	points := []geom.Point{{0, 0}, {1, 0}, {0, 1}}
	triangles := [][3]int{{0, 1, 2}}
	lines := [][2]int{{0, 1}, {1, 2}, {2, 0}}
	m, err := Build(points, triangles, lines)
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}
	m.Triangles[0].Concentration = 1.0
	t := &m.Triangles[0]
	for _, iface := range t.Interfaces {
		u, v := m.NeighbourState(t, iface)
		chk.Scalar(tst, "reflected u", 1e-15, u, 1.0)
		chk.Scalar(tst, "reflected v.x", 1e-15, v.X, t.VelocitySample.X)
		chk.Scalar(tst, "reflected v.y", 1e-15, v.Y, t.VelocitySample.Y)
	}
}

func TestVelocityField(tst *testing.T) {
	v := VelocityField(geom.Point{X: 1, Y: 2})
	chk.Scalar(tst, "v.x", 1e-15, v.X, 2-0.2*1)
	chk.Scalar(tst, "v.y", 1e-15, v.Y, -1)
}
