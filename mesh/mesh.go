// Copyright 2026 The Oil Transport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mesh implements the cell store and topology for the unstructured
// triangular mesh that the transport core integrates over. Cells are kept
// in two flat, parallel arrays — one of line-cells (solid boundary walls),
// one of triangle-cells (the degrees of freedom) — per the systems-design
// note of splitting a tagged cell union into dense, variant-specific arrays
// rather than dispatching on type at every access.
package mesh

import (
	"github.com/cpmech/oiltransport/geom"
)

// Interface is one shared edge between a triangle and a neighbouring cell,
// carrying the geometric data the flux kernel needs
type Interface struct {
	NeighbourIndex int        // index into Mesh.Triangles, or Mesh.Lines if NeighbourIsLine
	NeighbourIsLine bool      // true if the neighbour is a line-cell (solid wall)
	EdgeVector     geom.Point // p_b - p_a, corner order preserved from input
	EdgeLength     float64    // ‖EdgeVector‖
	OutwardNormal  geom.Point // unit vector, points away from the triangle's centroid
}

// LineCell is a boundary segment; it carries no concentration and acts as a
// solid wall (see flux.Upwind and the Mesh.NeighbourState helper)
type LineCell struct {
	Index      int
	PointRefs  [2]int
	Neighbours []int // indices into Mesh.Lines of line-cells sharing an endpoint
}

// TriangleCell is an interior cell carrying the transported scalar
type TriangleCell struct {
	Index          int
	PointRefs      [3]int
	Neighbours     []int // indices into Mesh.Triangles, parallel to a subset of Interfaces
	Midpoint       geom.Point
	Area           float64
	VelocitySample geom.Point
	Concentration  float64
	Interfaces     []Interface
}

// Mesh is the owned aggregate of points and cells; it is immutable after
// Build returns except for TriangleCell.Concentration, which sim.Integrator
// rewrites once per step. Cells reference points and each other by index
// into this aggregate, never by pointer.
type Mesh struct {
	Points    []geom.Point
	Lines     []LineCell
	Triangles []TriangleCell
}

// VelocityField is the prescribed steady velocity v(x,y) = (y-0.2x, -x)
func VelocityField(p geom.Point) geom.Point {
	return geom.Point{X: p.Y - 0.2*p.X, Y: -p.X}
}

// NeighbourState returns the concentration and velocity sample to use for
// the far side of an interface: the actual triangle's state for an interior
// neighbour, or the reflective boundary rule of spec §4.5 (the triangle's
// own state) when the neighbour is a line-cell.
func (m *Mesh) NeighbourState(t *TriangleCell, iface Interface) (u float64, v geom.Point) {
	if iface.NeighbourIsLine {
		return t.Concentration, t.VelocitySample
	}
	ngh := &m.Triangles[iface.NeighbourIndex]
	return ngh.Concentration, ngh.VelocitySample
}

// Concentrations returns a freshly allocated slice of every triangle's
// current concentration, indexed by TriangleCell.Index
func (m *Mesh) Concentrations() []float64 {
	u := make([]float64, len(m.Triangles))
	for i := range m.Triangles {
		u[i] = m.Triangles[i].Concentration
	}
	return u
}

// SetConcentrations overwrites every triangle's concentration from u,
// indexed by TriangleCell.Index
func (m *Mesh) SetConcentrations(u []float64) {
	for i := range m.Triangles {
		m.Triangles[i].Concentration = u[i]
	}
}
