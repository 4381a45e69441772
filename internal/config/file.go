package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the name of the optional defaults file, looked up in the
// current directory first and the home directory second.
const ConfigFile = ".xtree.yaml"

type fileConfig struct {
	ShowHidden  bool     `yaml:"show_hidden"`
	NoColor     bool     `yaml:"no_color"`
	FollowLinks bool     `yaml:"follow_links"`
	Depth       *int     `yaml:"depth"`
	Ignore      []string `yaml:"ignore"`
}

// LoadDefaults returns Options seeded from the optional config file, with
// XTREE_* environment overrides layered on top. A missing or unreadable
// file yields the built-in defaults.
func LoadDefaults() Options {
	opts := Default()

	if fc, err := loadFromFile(); err == nil {
		opts.ShowHidden = fc.ShowHidden
		if fc.NoColor {
			opts.UseColor = false
		}
		opts.FollowSymlinks = fc.FollowLinks
		if fc.Depth != nil {
			opts.MaxDepth = *fc.Depth
		}
		opts.IgnorePatterns = append(opts.IgnorePatterns, fc.Ignore...)
	}

	applyEnv(&opts)
	return opts
}

func loadFromFile() (fileConfig, error) {
	var fc fileConfig

	path := ConfigFile
	if _, err := os.Stat(path); os.IsNotExist(err) {
		home, err := os.UserHomeDir()
		if err != nil {
			return fc, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, ConfigFile)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fc, fmt.Errorf("config file not found")
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("failed to parse config file: %w", err)
	}

	return fc, nil
}

func applyEnv(opts *Options) {
	if os.Getenv("XTREE_ALL") != "" {
		opts.ShowHidden = true
	}

	if os.Getenv("XTREE_NO_COLOR") != "" {
		opts.UseColor = false
	}

	if v := os.Getenv("XTREE_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.MaxDepth = n
		}
	}

	if v := os.Getenv("XTREE_IGNORE"); v != "" {
		opts.IgnorePatterns = append(opts.IgnorePatterns, ParseIgnorePatterns(v)...)
	}
}
