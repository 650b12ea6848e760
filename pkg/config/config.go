// Package config loads, normalizes and hot-reloads the clip2file
// configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every user-tunable knob. Extensions are kept lower-cased and
// dot-prefixed; see Normalize.
type Config struct {
	// Destination is the directory files are created in. Empty means no
	// destination is available and every clipboard event is a no-op.
	Destination string `yaml:"destination"`

	// AllowedExtensions gates which filenames the heuristic classifier
	// accepts.
	AllowedExtensions []string `yaml:"allowed_extensions"`

	// ContentRegexes are tried in order against the first clipboard line;
	// capture group 1 is the filename. Invalid patterns are skipped.
	ContentRegexes []string `yaml:"content_regexes"`

	// WordCountLimit caps how many whitespace-separated tokens a bare
	// filename candidate may contain.
	WordCountLimit int `yaml:"word_count_limit"`

	// Feature toggles.
	CreateEmpty          bool `yaml:"create_empty"`
	CreateWithContent    bool `yaml:"create_with_content"`
	CreateTree           bool `yaml:"create_tree"`
	SkipExistingDirs     bool `yaml:"skip_existing_dirs"`
	AutoCreateParentDirs bool `yaml:"auto_create_parent_dirs"`

	// LargeTreeThreshold is the combined entity count above which tree
	// materialization asks for confirmation first.
	LargeTreeThreshold int `yaml:"large_tree_threshold"`

	// PollInterval is how often watch mode samples the clipboard.
	PollInterval time.Duration `yaml:"-"`

	// LogLevel sets console verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the built-in configuration. The extension list
// matches the defaults the original tray utility shipped with.
func DefaultConfig() *Config {
	return &Config{
		AllowedExtensions: []string{
			".txt", ".md", ".log", ".sql", ".cpp", ".h", ".js", ".json", ".xml",
		},
		ContentRegexes: []string{
			`^//\s*([^\s/]+\.\w+)\s*$`,
			`^#\s*([^\s#]+\.\w+)\s*$`,
		},
		WordCountLimit:       5,
		CreateEmpty:          true,
		CreateWithContent:    true,
		CreateTree:           true,
		SkipExistingDirs:     true,
		AutoCreateParentDirs: true,
		LargeTreeThreshold:   10,
		PollInterval:         500 * time.Millisecond,
		LogLevel:             "info",
	}
}

// yamlConfig mirrors Config for unmarshalling. Pointers distinguish "absent"
// from "false"/zero so file values merge over defaults.
type yamlConfig struct {
	Destination          *string  `yaml:"destination"`
	AllowedExtensions    []string `yaml:"allowed_extensions"`
	ContentRegexes       []string `yaml:"content_regexes"`
	WordCountLimit       *int     `yaml:"word_count_limit"`
	CreateEmpty          *bool    `yaml:"create_empty"`
	CreateWithContent    *bool    `yaml:"create_with_content"`
	CreateTree           *bool    `yaml:"create_tree"`
	SkipExistingDirs     *bool    `yaml:"skip_existing_dirs"`
	AutoCreateParentDirs *bool    `yaml:"auto_create_parent_dirs"`
	LargeTreeThreshold   *int     `yaml:"large_tree_threshold"`
	PollInterval         *string  `yaml:"poll_interval"`
	LogLevel             *string  `yaml:"log_level"`
}

// Load reads configuration from path. A missing file yields the defaults
// without error; a malformed file is an error and the caller should keep
// running on its previous configuration.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var y yamlConfig
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if y.Destination != nil {
		cfg.Destination = *y.Destination
	}
	if y.AllowedExtensions != nil {
		cfg.AllowedExtensions = y.AllowedExtensions
	}
	if y.ContentRegexes != nil {
		cfg.ContentRegexes = y.ContentRegexes
	}
	if y.WordCountLimit != nil {
		cfg.WordCountLimit = *y.WordCountLimit
	}
	if y.CreateEmpty != nil {
		cfg.CreateEmpty = *y.CreateEmpty
	}
	if y.CreateWithContent != nil {
		cfg.CreateWithContent = *y.CreateWithContent
	}
	if y.CreateTree != nil {
		cfg.CreateTree = *y.CreateTree
	}
	if y.SkipExistingDirs != nil {
		cfg.SkipExistingDirs = *y.SkipExistingDirs
	}
	if y.AutoCreateParentDirs != nil {
		cfg.AutoCreateParentDirs = *y.AutoCreateParentDirs
	}
	if y.LargeTreeThreshold != nil {
		cfg.LargeTreeThreshold = *y.LargeTreeThreshold
	}
	if y.PollInterval != nil {
		d, err := time.ParseDuration(*y.PollInterval)
		if err != nil {
			return nil, fmt.Errorf("invalid poll_interval %q: %w", *y.PollInterval, err)
		}
		cfg.PollInterval = d
	}
	if y.LogLevel != nil {
		cfg.LogLevel = *y.LogLevel
	}

	cfg.Normalize()
	return cfg, nil
}

// Normalize lower-cases and dot-prefixes the extension list, dropping
// duplicates and entries carrying path or wildcard characters. It returns
// how many entries were dropped so the caller can warn about them.
func (c *Config) Normalize() (dropped int) {
	seen := make(map[string]struct{}, len(c.AllowedExtensions))
	out := c.AllowedExtensions[:0]
	for _, ext := range c.AllowedExtensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if strings.ContainsAny(ext, `\/:*?"<>|`) {
			dropped++
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		ext = strings.ToLower(ext)
		if _, dup := seen[ext]; dup {
			continue
		}
		seen[ext] = struct{}{}
		out = append(out, ext)
	}
	c.AllowedExtensions = out

	if c.WordCountLimit <= 0 {
		c.WordCountLimit = DefaultConfig().WordCountLimit
	}
	if c.LargeTreeThreshold <= 0 {
		c.LargeTreeThreshold = DefaultConfig().LargeTreeThreshold
	}
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultConfig().PollInterval
	}
	return dropped
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "clip2file", "config.yaml"), nil
}

// WriteDefault creates path with the default configuration if it does not
// exist yet, so first-run users get something to edit.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return err
	}
	header := "# clip2file configuration. Edits are picked up while the watcher runs.\n"
	return os.WriteFile(path, append([]byte(header), data...), 0o644)
}
