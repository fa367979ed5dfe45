package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagScene    = flag.String("scene", "", "glTF scene to load lights from")
	flagMaxPoint = flag.Int("max-point", -1, "Maximum point lights per object")
	flagMinPoint = flag.Int("min-point", -1, "Minimum point lights per object (padded with off lights)")
	flagMaxDir   = flag.Int("max-dir", -1, "Maximum directional lights per object")
	flagMinDir   = flag.Int("min-dir", -1, "Minimum directional lights per object (padded with off lights)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
// Negative counts mean the flag was not given.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagScene != "" {
		cfg.Scene.Path = *flagScene
	}
	if *flagMaxPoint >= 0 {
		cfg.Lighting.Point.Max = *flagMaxPoint
	}
	if *flagMinPoint >= 0 {
		cfg.Lighting.Point.Min = *flagMinPoint
	}
	if *flagMaxDir >= 0 {
		cfg.Lighting.Directional.Max = *flagMaxDir
	}
	if *flagMinDir >= 0 {
		cfg.Lighting.Directional.Min = *flagMinDir
	}
}
