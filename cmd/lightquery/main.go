// Package main is the entry point for lightquery, which reports the lights
// a shaded object at a given position would receive.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/lightscene/internal/assets"
	"github.com/Faultbox/lightscene/internal/config"
	"github.com/Faultbox/lightscene/internal/engine/lighting"
	"github.com/Faultbox/lightscene/internal/engine/scene"
	"github.com/Faultbox/lightscene/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	fileCfg := logger.FileConfig{}
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
		fileCfg.JSON = cfg.Logging.JSON
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, true); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	targets, err := parseTargets(config.Args())
	if err != nil {
		logger.Error("invalid query position", zap.Error(err))
		os.Exit(2)
	}

	lights := lighting.NewLightScene()
	editor := scene.New(lights)

	if cfg.Scene.Path != "" {
		imported, err := assets.LoadLights(cfg.Scene.Path)
		if err != nil {
			logger.Error("failed to load scene", zap.String("path", cfg.Scene.Path), zap.Error(err))
			os.Exit(1)
		}
		if err := imported.AddTo(editor); err != nil {
			logger.Error("failed to populate scene", zap.Error(err))
			os.Exit(1)
		}
	} else {
		logger.Warn("no scene given, using editor defaults")
		if err := addDefaultLights(editor); err != nil {
			logger.Error("failed to add default lights", zap.Error(err))
			os.Exit(1)
		}
	}

	logger.Info("light scene ready",
		zap.Int("point_lights", lights.PointLightCount()),
		zap.Int("directional_lights", lights.DirectionalLightCount()))

	for _, target := range targets {
		sel := lights.LightsFor(target, cfg.Lighting.Point, cfg.Lighting.Directional)
		printSelection(os.Stdout, target, sel)
		printUniforms(os.Stdout, sel)
	}
}
