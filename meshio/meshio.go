// Copyright 2026 The Oil Transport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package meshio reads the simplified Gmsh-like text mesh format this
// repository uses to feed mesh.Build. Mesh-file parsing is explicitly out
// of the transport core's scope; this package is the external collaborator
// that turns a file into the (points, triangles, lines) triple mesh.Build
// expects. Grounded in the node/cell split inp.ReadMsh (PaddySchmidt-gofem's
// inp/msh.go) reads, simplified to a nodes/elements text grammar since the
// full Gmsh .msh grammar the original program's "meshio" Python dependency
// supports is out of scope here.
package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cpmech/oiltransport/geom"
	"github.com/cpmech/oiltransport/mesh"
	"github.com/cpmech/oiltransport/oilerr"
)

const (
	lineElementType     = "2"
	triangleElementType = "3"
)

// Read parses the .omsh text format from r and builds a *mesh.Mesh.
//
// Grammar:
//
//	$Nodes
//	<index> <x> <y>
//	...
//	$EndNodes
//	$Elements
//	<index> <type> <p0> <p1> [<p2>]
//	...
//	$EndElements
//
// type is "2" for a line (two point indices) or "3" for a triangle (three
// point indices); node and element index columns are accepted but ignored,
// points and cells are ordered by their position in the file, matching the
// 0-based, file-order indexing mesh.Build expects.
func Read(r io.Reader) (*mesh.Mesh, error) {
	scanner := bufio.NewScanner(r)
	var points []geom.Point
	var triangles [][3]int
	var lines [][2]int

	section := ""
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		switch text {
		case "$Nodes":
			section = "nodes"
			continue
		case "$EndNodes":
			section = ""
			continue
		case "$Elements":
			section = "elements"
			continue
		case "$EndElements":
			section = ""
			continue
		}
		switch section {
		case "nodes":
			p, err := parseNode(text)
			if err != nil {
				return nil, formatErr(lineNo, err)
			}
			points = append(points, p)
		case "elements":
			kind, refs, err := parseElement(text)
			if err != nil {
				return nil, formatErr(lineNo, err)
			}
			switch kind {
			case lineElementType:
				lines = append(lines, [2]int{refs[0], refs[1]})
			case triangleElementType:
				triangles = append(triangles, [3]int{refs[0], refs[1], refs[2]})
			default:
				return nil, formatErr(lineNo, fmt.Errorf("unsupported element type %q", kind))
			}
		default:
			return nil, formatErr(lineNo, fmt.Errorf("data outside of a $Nodes/$Elements block"))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, oilerr.Wrap(oilerr.MeshIllFormed, "meshio.Read", err)
	}
	if len(points) == 0 {
		return nil, oilerr.New(oilerr.MeshIllFormed, "no $Nodes block")
	}
	if len(triangles) == 0 {
		return nil, oilerr.New(oilerr.MeshIllFormed, "no triangle elements")
	}
	return mesh.Build(points, triangles, lines)
}

func parseNode(text string) (geom.Point, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return geom.Point{}, fmt.Errorf("node line %q: want 3 fields, got %d", text, len(fields))
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("node line %q: %w", text, err)
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("node line %q: %w", text, err)
	}
	return geom.Point{X: x, Y: y}, nil
}

func parseElement(text string) (kind string, refs [3]int, err error) {
	fields := strings.Fields(text)
	if len(fields) < 4 {
		return "", refs, fmt.Errorf("element line %q: want at least 4 fields, got %d", text, len(fields))
	}
	kind = fields[1]
	want := 2
	if kind == triangleElementType {
		want = 3
	}
	if len(fields) != 2+want {
		return "", refs, fmt.Errorf("element line %q: type %s wants %d point indices", text, kind, want)
	}
	for i := 0; i < want; i++ {
		v, perr := strconv.Atoi(fields[2+i])
		if perr != nil {
			return "", refs, fmt.Errorf("element line %q: %w", text, perr)
		}
		refs[i] = v
	}
	return kind, refs, nil
}

func formatErr(lineNo int, cause error) error {
	return oilerr.Wrap(oilerr.MeshIllFormed, fmt.Sprintf("line %d", lineNo), cause)
}
