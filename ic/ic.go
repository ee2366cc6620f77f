// Copyright 2026 The Oil Transport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ic implements the initial-condition module: a Gaussian seed
// around a spill centre, or ingestion of a restart snapshot, mirroring
// src/simulation/simulator.py's initialize_oil_spill and
// src/io/solution_reader.py from the original program.
package ic

import (
	"fmt"
	"math"

	"github.com/cpmech/oiltransport/geom"
	"github.com/cpmech/oiltransport/mesh"
	"github.com/cpmech/oiltransport/oilerr"
	"github.com/cpmech/oiltransport/restart"
)

// gaussianScale is the fixed variance-like divisor in the seed formula,
// spec §4.2: exp(-((mx-x*)^2+(my-y*)^2)/0.01)
const gaussianScale = 0.01

// Gaussian seeds every triangle's concentration from a Gaussian centred at
// center; line-cells stay at zero.
func Gaussian(m *mesh.Mesh, center geom.Point) {
	for i := range m.Triangles {
		t := &m.Triangles[i]
		dx := t.Midpoint.X - center.X
		dy := t.Midpoint.Y - center.Y
		t.Concentration = math.Exp(-(dx*dx + dy*dy) / gaussianScale)
	}
}

// FromRestart assigns every triangle's concentration from snap, defaulting
// to 0 for any triangle index absent from the snapshot. Returns
// oilerr.RestartMismatch if snap names an index outside [0,len(Triangles)).
func FromRestart(m *mesh.Mesh, snap restart.Snapshot) error {
	for idx := range snap.Concentrations {
		if idx < 0 || idx >= len(m.Triangles) {
			return oilerr.New(oilerr.RestartMismatch, fmt.Sprintf("cell index %d", idx))
		}
	}
	for i := range m.Triangles {
		m.Triangles[i].Concentration = snap.Concentrations[i]
	}
	return nil
}
