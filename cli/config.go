package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
)

// tomlConfig holds the optional user defaults read from ~/.digests.toml.
// Flags and environment variables override any value found here,
// except that the --json flag can switch JSON output on but not off.
type tomlConfig struct {
	Algorithm  string `toml:"algorithm"`
	JSONOutput bool   `toml:"json"`
}

// loadConfig reads the defaults file. A missing file is not an error;
// a malformed one is reported to the caller.
func loadConfig() (*tomlConfig, error) {
	cfg := new(tomlConfig)

	path := os.Getenv(`DIGESTS_CONFIG`)
	if path == "" {
		home, err := homedir.Dir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, `.digests.toml`)
	}

	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
