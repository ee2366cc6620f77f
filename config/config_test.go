// Copyright 2026 The Oil Transport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/oiltransport/oilerr"
)

func validConfig() Config {
	center := [2]float64{0.35, 0.45}
	return Config{
		NSteps:         100,
		TStart:         0,
		TEnd:           1,
		OilSpillCenter: &center,
		FishingGrounds: [2][2]float64{{0, 1}, {0, 1}},
	}
}

func TestValidateAcceptsWellFormedConfig(tst *testing.T) {
	c := validConfig()
	if err := c.Validate(); err != nil {
		tst.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateRejectsMissingSpillCenterWithoutRestart(tst *testing.T) {
	c := validConfig()
	c.OilSpillCenter = nil
	err := c.Validate()
	var oe *oilerr.Error
	if !errors.As(err, &oe) || oe.Kind != oilerr.ConfigInconsistent {
		tst.Fatalf("expected ConfigInconsistent, got %v", err)
	}
}

func TestValidateRejectsRestartWithZeroTStart(tst *testing.T) {
	c := validConfig()
	c.RestartFile = "restart.txt"
	err := c.Validate()
	var oe *oilerr.Error
	if !errors.As(err, &oe) || oe.Kind != oilerr.ConfigInconsistent {
		tst.Fatalf("expected ConfigInconsistent, got %v", err)
	}
}

func TestValidateRejectsNonzeroTStartWithoutRestart(tst *testing.T) {
	c := validConfig()
	c.TStart = 0.5
	err := c.Validate()
	var oe *oilerr.Error
	if !errors.As(err, &oe) || oe.Kind != oilerr.ConfigInconsistent {
		tst.Fatalf("expected ConfigInconsistent, got %v", err)
	}
}

func TestToParamsMapsFishingGrounds(tst *testing.T) {
	c := validConfig()
	p := c.ToParams()
	chk.Scalar(tst, "min.x", 1e-15, p.FishingGrounds.Min.X, 0)
	chk.Scalar(tst, "max.x", 1e-15, p.FishingGrounds.Max.X, 1)
	chk.Scalar(tst, "min.y", 1e-15, p.FishingGrounds.Min.Y, 0)
	chk.Scalar(tst, "max.y", 1e-15, p.FishingGrounds.Max.Y, 1)
}
