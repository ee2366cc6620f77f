// Copyright 2026 The Oil Transport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flux implements the upwind numerical flux across one oriented
// triangle interface, the same numerical rule used for the diffusive flux
// model in the teacher's mdl/diffusion package, generalized from a
// diffusive coefficient to an advective upwind selection.
package flux

import "github.com/cpmech/oiltransport/geom"

// Upwind returns the contribution of one interface to the per-step update
// of the owning triangle's concentration, per spec §4.3.
//
//   areaT  -- owning triangle's area
//   vT, vN -- velocity samples of the triangle and the interface's neighbour
//   normal -- outward unit normal of the interface
//   edgeLen-- edge length
//   uT, uN -- current concentrations of the triangle and the neighbour
//   dt     -- step size
func Upwind(areaT float64, vT, vN geom.Point, normal geom.Point, edgeLen, uT, uN, dt float64) float64 {
	vAvg := vT.Add(vN).Scale(0.5)
	nu := normal.Scale(edgeLen)
	s := nu.Dot(vAvg)

	var g float64
	if s > 0 {
		g = uT * s
	} else {
		g = uN * s
	}
	return -(dt / areaT) * g
}
