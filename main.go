// Copyright 2026 The Oil Transport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/oiltransport/config"
	"github.com/cpmech/oiltransport/ic"
	"github.com/cpmech/oiltransport/meshio"
	"github.com/cpmech/oiltransport/restart"
	"github.com/cpmech/oiltransport/sim"
	"github.com/cpmech/oiltransport/sink"
)

func main() {

	// catch panics from the core (degenerate meshes, gosl/chk assertions)
	// the same way the teacher's root main.go reports a fatal run
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	io.PfWhite("\nOil Transport -- 2D finite-volume oil concentration transport\n\n")
	io.Pf("Copyright 2026 The Oil Transport Authors. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	flag.Parse()
	if len(flag.Args()) < 2 {
		chk.Panic("please provide a mesh file and a configuration file. Ex.: oiltransport bay.omsh bay.toml\n")
	}
	meshPath := flag.Arg(0)
	configPath := flag.Arg(1)

	if err := run(meshPath, configPath); err != nil {
		chk.Panic("%v\n", err)
	}

	io.PfGreen("\nrun complete\n")
}

// run wires config -> meshio -> ic/restart -> sim.Orchestrator -> sink, the
// ambient surface spec.md leaves unspecified beyond the interfaces it names.
func run(meshPath, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	meshFile, err := os.Open(meshPath)
	if err != nil {
		return err
	}
	defer meshFile.Close()
	m, err := meshio.Read(meshFile)
	if err != nil {
		return err
	}

	if cfg.RestartFile != "" {
		restartFile, err := os.Open(cfg.RestartFile)
		if err != nil {
			return err
		}
		defer restartFile.Close()
		snap, err := restart.Read(restartFile)
		if err != nil {
			return err
		}
		if err := ic.FromRestart(m, snap); err != nil {
			return err
		}
	} else {
		ic.Gaussian(m, cfg.OilSpillCenterPoint())
	}

	snk := buildSink(cfg)
	defer snk.Close()

	orch := sim.New(m, cfg.ToParams(), snk)
	if err := orch.Initialize(); err != nil {
		return err
	}
	diag, err := orch.Run(context.Background())
	if err != nil {
		return err
	}
	io.Pf("final fishing-grounds diagnostic: %v\n", diag)
	return nil
}

// buildSink always collects frames in memory and, when the configuration
// names a restart file, also appends every emitted snapshot to it, the
// final one last -- a
// sink.Fanout of the two, per spec §4.9's "sinks compose" allowance.
func buildSink(cfg *config.Config) sink.Sink {
	fc := sink.NewFrameCollector()
	if cfg.RestartFile == "" {
		return fc
	}
	f, err := os.Create(cfg.RestartFile)
	if err != nil {
		io.PfRed("cannot open restart file %q for writing: %v\n", cfg.RestartFile, err)
		return fc
	}
	return &sink.Fanout{Sinks: []sink.Sink{fc, sink.NewRestartWriter(f)}}
}
