// Copyright 2026 The Oil Transport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"
	"math"

	"github.com/cpmech/oiltransport/geom"
	"github.com/cpmech/oiltransport/oilerr"
)

// triangleEdges lists the three local edges in corner-traversal order:
// 0<->1, 1<->2, 2<->0
var triangleEdges = [3][2]int{{0, 1}, {1, 2}, {2, 0}}

// edgeKey is an unordered pair of point indices identifying a raw mesh edge
type edgeKey struct{ a, b int }

func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// cellKind distinguishes the two cell variants in the edge index
type cellKind int

const (
	kindTriangle cellKind = iota
	kindLine
)

type cellRef struct {
	kind cellKind
	idx  int
}

// Build computes the full topology (neighbours and interfaces) from a raw
// point table and triangle/line point-index lists, per spec §4.1. The
// returned Mesh is frozen except for TriangleCell.Concentration.
func Build(points []geom.Point, triangles [][3]int, lines [][2]int) (*Mesh, error) {
	m := &Mesh{
		Points:    points,
		Lines:     make([]LineCell, len(lines)),
		Triangles: make([]TriangleCell, len(triangles)),
	}

	// first pass: allocate cells and compute per-triangle geometry
	for i, pr := range lines {
		m.Lines[i] = LineCell{Index: i, PointRefs: pr}
	}
	for i, pr := range triangles {
		t := TriangleCell{Index: i, PointRefs: pr}
		p0, p1, p2 := points[pr[0]], points[pr[1]], points[pr[2]]
		t.Midpoint = geom.Mean(p0, p1, p2)
		t.Area = triangleArea(p0, p1, p2)
		if t.Area <= 0 {
			return nil, oilerr.New(oilerr.DegenerateTriangle, fmt.Sprintf("triangle %d", i))
		}
		t.VelocitySample = VelocityField(t.Midpoint)
		m.Triangles[i] = t
	}

	// build the edge index: unordered point-pair -> cells referencing it
	edgeIndex := make(map[edgeKey][]cellRef)
	for i, t := range m.Triangles {
		for _, e := range triangleEdges {
			key := newEdgeKey(t.PointRefs[e[0]], t.PointRefs[e[1]])
			edgeIndex[key] = append(edgeIndex[key], cellRef{kindTriangle, i})
		}
	}
	for i, l := range m.Lines {
		key := newEdgeKey(l.PointRefs[0], l.PointRefs[1])
		edgeIndex[key] = append(edgeIndex[key], cellRef{kindLine, i})
	}
	for key, refs := range edgeIndex {
		if len(refs) > 2 {
			return nil, oilerr.New(oilerr.MeshIllFormed,
				fmt.Sprintf("edge (%d,%d) shared by %d cells", key.a, key.b, len(refs)))
		}
	}

	// second pass: populate each triangle's interfaces and neighbours
	for ti := range m.Triangles {
		t := &m.Triangles[ti]
		for _, e := range triangleEdges {
			ia, ib := t.PointRefs[e[0]], t.PointRefs[e[1]]
			key := newEdgeKey(ia, ib)
			refs := edgeIndex[key]
			var other *cellRef
			for k := range refs {
				r := refs[k]
				if r.kind == kindTriangle && r.idx == ti {
					continue
				}
				other = &refs[k]
				break
			}
			if other == nil {
				return nil, oilerr.New(oilerr.MeshIllFormed,
					fmt.Sprintf("triangle %d edge (%d,%d) has no neighbour", ti, ia, ib))
			}

			pa, pb := points[ia], points[ib]
			edgeVec := pb.Sub(pa)
			edgeLen := edgeVec.Norm()
			normal := edgeVec.Perp().Unit()
			if normal.Dot(pa.Sub(t.Midpoint)) < 0 {
				normal = normal.Scale(-1)
			}

			iface := Interface{
				NeighbourIndex:  other.idx,
				NeighbourIsLine: other.kind == kindLine,
				EdgeVector:      edgeVec,
				EdgeLength:      edgeLen,
				OutwardNormal:   normal,
			}
			t.Interfaces = append(t.Interfaces, iface)
			if !iface.NeighbourIsLine {
				t.Neighbours = append(t.Neighbours, other.idx)
			}
		}
	}

	// line-cell neighbours: the one-point rule, used only by optional
	// boundary-traversal collaborators, never by the flux kernel
	pointToLines := make(map[int][]int)
	for i, l := range m.Lines {
		pointToLines[l.PointRefs[0]] = append(pointToLines[l.PointRefs[0]], i)
		pointToLines[l.PointRefs[1]] = append(pointToLines[l.PointRefs[1]], i)
	}
	for i := range m.Lines {
		l := &m.Lines[i]
		seen := make(map[int]bool)
		for _, ep := range l.PointRefs {
			for _, other := range pointToLines[ep] {
				if other == i || seen[other] {
					continue
				}
				seen[other] = true
				l.Neighbours = append(l.Neighbours, other)
			}
		}
	}

	return m, nil
}

// triangleArea returns the unsigned area of the triangle (p0,p1,p2)
func triangleArea(p0, p1, p2 geom.Point) float64 {
	return 0.5 * math.Abs((p0.X-p2.X)*(p1.Y-p0.Y)-(p0.X-p1.X)*(p2.Y-p0.Y))
}
