package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/hasse/pkg/pipeline"
)

// configFileName is the name of the config file inside the config directory.
const configFileName = "config.toml"

// defaultAddr is the listen address of "hasse serve".
const defaultAddr = ":8080"

// Config holds user defaults read from $XDG_CONFIG_HOME/hasse/config.toml.
// Every field seeds the default of the matching command-line flag.
//
//	layout = "circular"
//	level_height = 80
//	max_elements = 1000
//	formats = ["json", "svg"]
//	cache_dir = "/var/cache/hasse"
//	redis_url = "redis://localhost:6379/0"
//	addr = ":9000"
type Config struct {
	Layout      string   `toml:"layout"`
	LevelHeight float64  `toml:"level_height"`
	MaxElements int      `toml:"max_elements"`
	Formats     []string `toml:"formats"`
	CacheDir    string   `toml:"cache_dir"`
	RedisURL    string   `toml:"redis_url"`
	Addr        string   `toml:"addr"`
}

// defaultConfig returns the built-in defaults.
func defaultConfig() Config {
	return Config{
		Layout:      pipeline.DefaultLayout,
		LevelHeight: pipeline.DefaultLevelHeight,
		MaxElements: pipeline.DefaultMaxElements,
		Formats:     append([]string(nil), pipeline.DefaultFormats...),
		Addr:        defaultAddr,
	}
}

// configPath returns the config file path using XDG standard
// (~/.config/hasse/config.toml). It returns "" when no home directory
// can be determined.
func configPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, configFileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, configFileName)
}

// loadConfig reads the config file at path on top of the defaults.
// A missing file is not an error. On error the defaults are returned.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	var file Config
	md, err := toml.DecodeFile(path, &file)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("read %s: unknown key %q", path, undecoded[0].String())
	}

	if file.Layout != "" {
		cfg.Layout = file.Layout
	}
	if file.LevelHeight != 0 {
		cfg.LevelHeight = file.LevelHeight
	}
	if file.MaxElements != 0 {
		cfg.MaxElements = file.MaxElements
	}
	if len(file.Formats) > 0 {
		cfg.Formats = file.Formats
	}
	if file.CacheDir != "" {
		cfg.CacheDir = file.CacheDir
	}
	if file.RedisURL != "" {
		cfg.RedisURL = file.RedisURL
	}
	if file.Addr != "" {
		cfg.Addr = file.Addr
	}
	return cfg, nil
}
