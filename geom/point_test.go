// Copyright 2026 The Oil Transport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestPointArithmetic(tst *testing.T) {
	p := Point{1, 2}
	q := Point{3, 4}
	chk.Scalar(tst, "p+q.x", 1e-15, p.Add(q).X, 4)
	chk.Scalar(tst, "p+q.y", 1e-15, p.Add(q).Y, 6)
	chk.Scalar(tst, "p-q.x", 1e-15, p.Sub(q).X, -2)
	chk.Scalar(tst, "p.q", 1e-15, p.Dot(q), 11)
	chk.Scalar(tst, "pxq", 1e-15, p.Cross(q), -2)
	chk.Scalar(tst, "|p|", 1e-15, Point{3, 4}.Norm(), 5)
}

func TestPointPerp(tst *testing.T) {
	v := Point{1, 0}
	r := v.Perp()
	chk.Scalar(tst, "perp.x", 1e-15, r.X, 0)
	chk.Scalar(tst, "perp.y", 1e-15, r.Y, 1)
}

func TestMean(tst *testing.T) {
	m := Mean(Point{0, 0}, Point{2, 0}, Point{0, 2})
	chk.Scalar(tst, "mean.x", 1e-15, m.X, 2.0/3.0)
	chk.Scalar(tst, "mean.y", 1e-15, m.Y, 2.0/3.0)
}

func TestBoxContains(tst *testing.T) {
	b := Box{Point{0, 0}, Point{1, 1}}
	if !b.Contains(Point{0.5, 0.5}) {
		tst.Fatal("expected point inside box")
	}
	if b.Contains(Point{1.5, 0.5}) {
		tst.Fatal("expected point outside box")
	}
}
