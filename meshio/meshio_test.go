// Copyright 2026 The Oil Transport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"strings"
	"testing"
)

const twoTriangleMsh = `$Nodes
0 0.0 0.0
1 1.0 0.0
2 0.0 1.0
3 1.0 1.0
$EndNodes
$Elements
0 2 0 1
1 2 1 3
2 2 3 2
3 2 2 0
4 3 0 1 2
5 3 1 3 2
$EndElements
`

func TestReadBuildsTwoTriangleMesh(tst *testing.T) {
	m, err := Read(strings.NewReader(twoTriangleMsh))
	if err != nil {
		tst.Fatalf("Read failed: %v", err)
	}
	if len(m.Triangles) != 2 {
		tst.Fatalf("expected 2 triangles, got %d", len(m.Triangles))
	}
	if len(m.Lines) != 4 {
		tst.Fatalf("expected 4 line cells, got %d", len(m.Lines))
	}
	if len(m.Points) != 4 {
		tst.Fatalf("expected 4 points, got %d", len(m.Points))
	}
	if len(m.Triangles[0].Interfaces) != 3 {
		tst.Fatalf("expected triangle 0 to have 3 interfaces, got %d", len(m.Triangles[0].Interfaces))
	}
}

func TestReadRejectsMissingNodesBlock(tst *testing.T) {
	const bad = `$Elements
0 3 0 1 2
$EndElements
`
	if _, err := Read(strings.NewReader(bad)); err == nil {
		tst.Fatal("expected error for missing $Nodes block")
	}
}

func TestReadRejectsMalformedNodeLine(tst *testing.T) {
	const bad = `$Nodes
0 not-a-number 0.0
$EndNodes
$Elements
0 3 0 1 2
$EndElements
`
	if _, err := Read(strings.NewReader(bad)); err == nil {
		tst.Fatal("expected error for malformed node line")
	}
}

func TestReadRejectsDataOutsideBlock(tst *testing.T) {
	const bad = `0 0.0 0.0
$Nodes
1 1.0 0.0
$EndNodes
`
	if _, err := Read(strings.NewReader(bad)); err == nil {
		tst.Fatal("expected error for data outside of any block")
	}
}

func TestReadRejectsUnsupportedElementType(tst *testing.T) {
	const bad = `$Nodes
0 0.0 0.0
1 1.0 0.0
2 0.0 1.0
$EndNodes
$Elements
0 4 0 1 2 0
$EndElements
`
	if _, err := Read(strings.NewReader(bad)); err == nil {
		tst.Fatal("expected error for unsupported element type")
	}
}
