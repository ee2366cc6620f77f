// Copyright 2026 The Oil Transport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package oilerr implements the fatal-error taxonomy shared by the mesh,
// sim, restart and config packages
package oilerr

import "fmt"

// Kind classifies a fatal error by the condition that produced it
type Kind int

// error kinds, one per row of the error taxonomy
const (
	MeshIllFormed Kind = iota
	DegenerateTriangle
	InvalidConcentration
	RestartMismatch
	ConfigInconsistent
)

// String names a Kind for use in messages and logs
func (k Kind) String() string {
	switch k {
	case MeshIllFormed:
		return "MeshIllFormed"
	case DegenerateTriangle:
		return "DegenerateTriangle"
	case InvalidConcentration:
		return "InvalidConcentration"
	case RestartMismatch:
		return "RestartMismatch"
	case ConfigInconsistent:
		return "ConfigInconsistent"
	}
	return "Unknown"
}

// Error is a structured fatal error naming its Kind and the offending entity
// (a cell index, point index, or config key, stringified by the caller)
type Error struct {
	Kind   Kind
	Entity string
	Err    error
}

// New returns a new Error with no wrapped cause
func New(kind Kind, entity string) *Error {
	return &Error{Kind: kind, Entity: entity}
}

// Wrap returns a new Error wrapping cause
func Wrap(kind Kind, entity string, cause error) *Error {
	return &Error{Kind: kind, Entity: entity, Err: cause}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Entity, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Entity)
}

// Unwrap exposes the wrapped cause to errors.Is/errors.As
func (e *Error) Unwrap() error {
	return e.Err
}
