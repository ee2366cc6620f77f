// Copyright 2026 The Oil Transport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package restart implements the restart checkpoint text format, a
// line-oriented format directly grounded in the original program's
// src/io/solution_writer.py and src/io/solution_reader.py:
//
//	t = <float>, total_oil_in_fishing_grounds = <float>
//	Cell <index>: <amount>
//	Cell <index>: <amount>
//	...
//
// The header line is advisory; Read takes t and the diagnostic from it when
// it can but never validates it, and parses every "Cell <int>: <float>" line.
package restart

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cpmech/oiltransport/oilerr"
)

// Snapshot is a parsed restart checkpoint
type Snapshot struct {
	T              float64
	Diagnostic     float64
	Concentrations map[int]float64 // triangle index -> concentration
}

// Write emits the restart text format for u, one line per triangle, indexed
// 0..len(u)-1, preceded by the advisory header line.
func Write(w io.Writer, t, diagnostic float64, u []float64) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "t = %v, total_oil_in_fishing_grounds = %v\n", t, diagnostic); err != nil {
		return err
	}
	for i, v := range u {
		if _, err := fmt.Fprintf(bw, "Cell %d: %v\n", i, v); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read parses the restart text format. The header line is read (for T and
// Diagnostic) but not validated against any other source; every
// "Cell <int>: <float>" line is kept in the returned Snapshot.
func Read(r io.Reader) (Snapshot, error) {
	snap := Snapshot{Concentrations: make(map[int]float64)}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "t =") {
			parseHeader(line, &snap)
			continue
		}
		if strings.HasPrefix(line, "Cell") {
			idx, val, err := parseCellLine(line)
			if err != nil {
				return Snapshot{}, oilerr.Wrap(oilerr.RestartMismatch, line, err)
			}
			snap.Concentrations[idx] = val
		}
	}
	if err := scanner.Err(); err != nil {
		return Snapshot{}, oilerr.Wrap(oilerr.RestartMismatch, "restart stream", err)
	}
	return snap, nil
}

// parseHeader best-effort extracts t and the diagnostic from the advisory
// header line; malformed headers are silently ignored, matching the
// original reader's "ignore the first line" behaviour.
func parseHeader(line string, snap *Snapshot) {
	parts := strings.Split(line, ",")
	if len(parts) >= 1 {
		if kv := strings.SplitN(parts[0], "=", 2); len(kv) == 2 {
			if v, err := strconv.ParseFloat(strings.TrimSpace(kv[1]), 64); err == nil {
				snap.T = v
			}
		}
	}
	if len(parts) >= 2 {
		if kv := strings.SplitN(parts[1], "=", 2); len(kv) == 2 {
			if v, err := strconv.ParseFloat(strings.TrimSpace(kv[1]), 64); err == nil {
				snap.Diagnostic = v
			}
		}
	}
}

// parseCellLine parses "Cell <int>: <float>"
func parseCellLine(line string) (idx int, val float64, err error) {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed cell line %q", line)
	}
	fields := strings.Fields(parts[0])
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("malformed cell header %q", parts[0])
	}
	idx, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad cell index in %q: %w", line, err)
	}
	val, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad cell amount in %q: %w", line, err)
	}
	return idx, val, nil
}
