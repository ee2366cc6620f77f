// Copyright 2026 The Oil Transport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"github.com/cpmech/oiltransport/geom"
	"github.com/cpmech/oiltransport/mesh"
)

// FishingGroundsMass returns the integrated oil mass,
// sum(concentration(T)*area(T)), over triangles whose midpoint lies in the
// closed rectangle box, per spec §4.6.
func FishingGroundsMass(m *mesh.Mesh, box geom.Box) float64 {
	var total float64
	for i := range m.Triangles {
		t := &m.Triangles[i]
		if box.Contains(t.Midpoint) {
			total += t.Concentration * t.Area
		}
	}
	return total
}
