package bench

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"

	"github.com/calvinalkan/emap/pkg/emap"
)

// ConfigFileName is the default config file name, looked up in the working
// directory.
const ConfigFileName = ".emap-bench.json"

// Config holds benchmark options.
type Config struct {
	Rounds        int      `json:"rounds,omitempty"`
	Capacity      int      `json:"capacity,omitempty"`
	Contenders    []string `json:"contenders,omitempty"`
	Out           string   `json:"out,omitempty"`
	AssertFastest bool     `json:"assert_fastest,omitempty"`

	// Source is the config file that was loaded, empty for defaults only.
	Source string `json:"-"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Rounds:   1000,
		Capacity: 100,
	}
}

// Validate checks option ranges and contender names.
func (c Config) Validate() error {
	if c.Rounds <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRounds, c.Rounds)
	}

	if c.Capacity < MinCapacity || c.Capacity > emap.MaxCapacity {
		return fmt.Errorf("%w: %d (must be in [%d, %d])", ErrInvalidCapacity, c.Capacity, MinCapacity, emap.MaxCapacity)
	}

	_, err := SelectFactories(c.Contenders)

	return err
}

// LoadConfig loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Config file at default location (.emap-bench.json in workDir, if exists)
// 3. Explicit config file via configPath (replaces 2, must exist)
//
// CLI flag overrides are applied by the caller.
//
// Fields merge only when the file sets a non-zero value. For assert_fastest
// this means a file can turn the assertion on, while "false" in a file is
// the same as leaving the key out. Nothing below the file layer enables it,
// so the default stays off. To disable a file's true for one run, pass
// --assert=false, whose default is the loaded value.
func LoadConfig(workDir, configPath string) (Config, error) {
	cfg := DefaultConfig()

	cfgFile := filepath.Join(workDir, ConfigFileName)
	mustExist := false

	if configPath != "" {
		cfgFile = configPath
		if !filepath.IsAbs(cfgFile) {
			cfgFile = filepath.Join(workDir, cfgFile)
		}

		mustExist = true

		_, statErr := os.Stat(cfgFile)
		if statErr != nil {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
		}
	}

	fileCfg, loaded, err := loadConfigFile(cfgFile, mustExist)
	if err != nil {
		return Config{}, err
	}

	if !loaded {
		return cfg, nil
	}

	cfg = mergeConfig(cfg, fileCfg)
	cfg.Source = cfgFile

	return cfg, nil
}

// loadConfigFile loads a config file. If mustExist is false, missing files return zero config.
func loadConfigFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return Config{}, false, nil
		}

		return Config{}, false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
	}

	cfg, err := parseConfig(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	return cfg, true, nil
}

func parseConfig(data []byte) (Config, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	err = json.Unmarshal(standardized, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	return cfg, nil
}

// mergeConfig overlays the non-zero fields of override onto base.
func mergeConfig(base, override Config) Config {
	if override.Rounds != 0 {
		base.Rounds = override.Rounds
	}

	if override.Capacity != 0 {
		base.Capacity = override.Capacity
	}

	if len(override.Contenders) > 0 {
		base.Contenders = override.Contenders
	}

	if override.Out != "" {
		base.Out = override.Out
	}

	if override.AssertFastest {
		base.AssertFastest = true
	}

	return base
}
