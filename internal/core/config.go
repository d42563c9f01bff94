package core

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is looked up in the working directory, then in the home
// directory. A missing file means the defaults apply.
const ConfigFile = ".minotefmt.toml"

// Config carries the tool settings.
type Config struct {
	Convert  ConvertConfig  `toml:"convert"`
	Markdown MarkdownConfig `toml:"markdown"`
}

type ConvertConfig struct {
	// Verify re-parses every generated document and compares it against the
	// source tree before writing, refusing to persist a lossy conversion.
	Verify bool `toml:"verify"`
	// Indent applies to blocks imported from formats without an indent
	// notion, like Markdown.
	Indent int `toml:"indent"`
}

type MarkdownConfig struct {
	// Underline picks the Markdown spelling for underlined text:
	// "html" emits <u>...</u>, "ignore" drops the format.
	Underline string `toml:"underline"`
	// Highlight picks the Markdown spelling for highlighted text:
	// "double-equal" emits ==...==, "html" emits <mark>, "ignore" drops it.
	Highlight string `toml:"highlight"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Convert: ConvertConfig{
			Verify: true,
			Indent: 1,
		},
		Markdown: MarkdownConfig{
			Underline: "html",
			Highlight: "double-equal",
		},
	}
}

var (
	configOnce      sync.Once
	configSingleton *Config
)

// CurrentConfig returns the loaded settings, reading the config file on
// first use and falling back to the defaults.
func CurrentConfig() *Config {
	configOnce.Do(func() {
		cfg, err := loadConfig()
		if err != nil {
			CurrentLogger().Warnf("config: %v; using defaults", err)
			cfg = DefaultConfig()
		}
		configSingleton = cfg
	})
	return configSingleton
}

// SetCurrentConfig overrides the settings, mainly for tests.
func SetCurrentConfig(cfg *Config) {
	configOnce.Do(func() {})
	configSingleton = cfg
}

func loadConfig() (*Config, error) {
	for _, dir := range configDirs() {
		path := filepath.Join(dir, ConfigFile)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return parseConfig(data, path)
	}
	return DefaultConfig(), nil
}

func parseConfig(data []byte, path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Convert.Indent < 1 {
		cfg.Convert.Indent = 1
	}
	return cfg, nil
}

func configDirs() []string {
	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}
