package bootstrap

import (
	"fmt"
	"io"

	"github.com/chmouel/gowc/internal/config"
	"github.com/chmouel/gowc/internal/log"
)

// loadConfig loads the configuration file and applies --config overrides.
// A broken file is reported and replaced by defaults; bad overrides fail.
func loadConfig(stderr io.Writer, configFileFlag string, configOverrides []string) (*config.AppConfig, error) {
	cfg, err := config.LoadConfig(configFileFlag)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	if len(configOverrides) > 0 {
		if err := cfg.ApplyCLIOverrides(configOverrides); err != nil {
			return nil, fmt.Errorf("error applying config overrides: %w", err)
		}
	}

	return cfg, nil
}

// setupDebugLog opens the debug log named by the flag, else by the config.
// Without either, buffered messages are discarded.
func setupDebugLog(stderr io.Writer, debugLogFlag string, cfg *config.AppConfig) {
	path := debugLogFlag
	if path == "" {
		path = cfg.DebugLog
	}
	if path == "" {
		log.Discard()
		return
	}

	if expanded, err := config.ExpandPath(path); err == nil {
		path = expanded
	}
	cfg.DebugLog = path

	if err := log.Open(path); err != nil {
		fmt.Fprintf(stderr, "Error opening debug log file %q: %v\n", path, err)
	}
}
