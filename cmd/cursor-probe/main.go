// Command cursor-probe evaluates window/camera/touch scenes and prints where the cursor resolves.
//
// Usage:
//
//	cursor-probe -scene scene.toml           print raw, UI and world positions once
//	cursor-probe -scene scene.yaml -watch    reprint whenever the file changes
//	cursor-probe -terminal [-touch]          use this terminal as the primary window
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/lixenwraith/winparam/core"
	"github.com/lixenwraith/winparam/engine"
	"github.com/lixenwraith/winparam/scene"
	"github.com/lixenwraith/winparam/system"
)

var (
	sceneFlag    = flag.String("scene", "", "Scene file (.toml, .yaml, .yml)")
	watchFlag    = flag.Bool("watch", false, "Re-evaluate the scene when the file changes")
	terminalFlag = flag.Bool("terminal", false, "Use this terminal as the primary window")
	touchFlag    = flag.Bool("touch", false, "With -terminal, left button emulates a touch")
	logLevelFlag = flag.String("log-level", "info", "Log level: debug, info, warn, error, off")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cursor-probe: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *sceneFlag == "" && !*terminalFlag {
		flag.Usage()
		return errors.New("one of -scene or -terminal is required")
	}
	if *watchFlag && (*sceneFlag == "" || *terminalFlag) {
		return errors.New("-watch needs -scene and cannot be combined with -terminal")
	}

	logger, closer, err := setupLogging(*logLevelFlag, *terminalFlag)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	world := engine.NewWorld()
	system.RegisterDefaults(world)

	if *terminalFlag {
		var sc *scene.Scene
		if *sceneFlag != "" {
			if sc, err = scene.Load(*sceneFlag); err != nil {
				return err
			}
		}
		return runLive(world, sc, *touchFlag, logger)
	}

	rep, err := evaluate(world, *sceneFlag, logger)
	if err != nil {
		return err
	}
	rep.WriteTo(os.Stdout)

	if !*watchFlag {
		return nil
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info("watching scene", "path", *sceneFlag)
	return watchScene(ctx, world, *sceneFlag, os.Stdout, logger)
}
