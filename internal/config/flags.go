package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagInput   = flag.String("input", "", "Folder containing the six cube face images")
	flagOutput  = flag.String("output", "", "Destination panorama file (.jpg or .png)")
	flagQuality = flag.Int("quality", 0, "JPEG quality (1-100)")
	flagWorkers = flag.Int("workers", 0, "Rasterization workers (0 = one per CPU)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagInput != "" {
		cfg.Input.Dir = *flagInput
	}
	if *flagOutput != "" {
		cfg.Output.Path = *flagOutput
	}
	if *flagQuality > 0 {
		cfg.Output.JPEGQuality = *flagQuality
	}
	if *flagWorkers > 0 {
		cfg.Convert.Workers = *flagWorkers
	}
}
