// Copyright 2026 The Oil Transport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package config implements the ambient configuration record: the TOML
// loader and the validation spec §7 calls ConfigInconsistent. Parsing
// configuration files is explicitly out of the transport core's scope
// (spec §1); this package is the external collaborator the core's sim.Params
// is handed by. Grounded in the teacher's inp.Data (a JSON-tagged struct
// validated after unmarshal in inp/sim.go) and in the original program's
// own TOML-based src/io/config_reader.py, which this repository follows
// for the concrete file format since the spec is silent on it.
package config

import (
	"github.com/BurntSushi/toml"

	"github.com/cpmech/oiltransport/geom"
	"github.com/cpmech/oiltransport/oilerr"
	"github.com/cpmech/oiltransport/sim"
)

// Config is the raw, not-yet-validated configuration record, spec §6.
type Config struct {
	NSteps         int           `toml:"n_steps"`
	TStart         float64       `toml:"t_start"`
	TEnd           float64       `toml:"t_end"`
	OilSpillCenter *[2]float64   `toml:"oil_spill_center"`
	FishingGrounds [2][2]float64 `toml:"fishing_grounds"`
	WriteFrequency *int          `toml:"write_frequency"`
	RestartFile    string        `toml:"restart_file"`
}

// Load reads and unmarshals a TOML configuration file; it does not
// validate the result, which the caller must do with Validate before use.
func Load(path string) (*Config, error) {
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, oilerr.Wrap(oilerr.ConfigInconsistent, path, err)
	}
	return &c, nil
}

// Validate checks the required-key and consistency rules of spec §6,
// returning oilerr.ConfigInconsistent on the first violation found.
func (c *Config) Validate() error {
	if c.NSteps <= 0 {
		return oilerr.New(oilerr.ConfigInconsistent, "n_steps")
	}
	if c.TEnd <= c.TStart {
		return oilerr.New(oilerr.ConfigInconsistent, "t_end")
	}
	if c.TStart < 0 {
		return oilerr.New(oilerr.ConfigInconsistent, "t_start")
	}
	if c.RestartFile == "" && c.TStart != 0 {
		return oilerr.New(oilerr.ConfigInconsistent, "t_start")
	}
	if c.RestartFile != "" && c.TStart == 0 {
		return oilerr.New(oilerr.ConfigInconsistent, "restart_file")
	}
	if c.RestartFile == "" && c.OilSpillCenter == nil {
		return oilerr.New(oilerr.ConfigInconsistent, "oil_spill_center")
	}
	if c.WriteFrequency != nil && *c.WriteFrequency <= 0 {
		return oilerr.New(oilerr.ConfigInconsistent, "write_frequency")
	}
	return nil
}

// OilSpillCenterPoint returns the configured spill centre as a geom.Point;
// it must only be called after Validate has confirmed OilSpillCenter is set.
func (c *Config) OilSpillCenterPoint() geom.Point {
	return geom.Point{X: c.OilSpillCenter[0], Y: c.OilSpillCenter[1]}
}

// ToParams converts a validated Config into the core's sim.Params record.
func (c *Config) ToParams() sim.Params {
	box := geom.Box{
		Min: geom.Point{X: c.FishingGrounds[0][0], Y: c.FishingGrounds[1][0]},
		Max: geom.Point{X: c.FishingGrounds[0][1], Y: c.FishingGrounds[1][1]},
	}
	return sim.Params{
		NSteps:         c.NSteps,
		TStart:         c.TStart,
		TEnd:           c.TEnd,
		FishingGrounds: box,
		WriteFrequency: c.WriteFrequency,
	}
}
