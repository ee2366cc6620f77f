// Copyright 2026 The Oil Transport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geom implements the 2D point and vector primitives used by the
// mesh and flux packages
package geom

import "math"

// Point is an immutable 2D point/vector; x and y never change after creation
type Point struct {
	X, Y float64
}

// Add returns p+q
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p scaled by s
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Dot returns the dot product p·q
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z-component of the 3D cross product (p,0) x (q,0)
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Norm returns the Euclidean length of p
func (p Point) Norm() float64 {
	return math.Sqrt(p.Dot(p))
}

// Perp returns p rotated by +90 degrees: (x,y) -> (-y,x)
func (p Point) Perp() Point {
	return Point{-p.Y, p.X}
}

// Unit returns p scaled to unit length; panics if p is the zero vector since
// callers only ever normalize non-degenerate edge vectors
func (p Point) Unit() Point {
	n := p.Norm()
	if n == 0 {
		panic("geom: cannot normalize the zero vector")
	}
	return p.Scale(1 / n)
}

// Mean returns the arithmetic mean (centroid) of pts; pts must be non-empty
func Mean(pts ...Point) Point {
	var x, y float64
	for _, p := range pts {
		x += p.X
		y += p.Y
	}
	n := float64(len(pts))
	return Point{x / n, y / n}
}

// Box is an axis-aligned rectangle [Min.X,Max.X] x [Min.Y,Max.Y]
type Box struct {
	Min, Max Point
}

// Contains reports whether p lies within the closed rectangle b
func (b Box) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}
