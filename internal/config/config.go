// Package config provides configuration loading and validation for the LuckyDock
// editor tool. It handles reading configuration from files, providing defaults,
// and ensuring all required settings are properly set.
//
// This is the editor's own configuration, not a dock instance file: it says
// where the engine lives and where the skins are, never what a dock shows.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/7eventy7/luckydock/internal/filesys"
)

var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrNoConfig is returned when the configuration file is not found.
	ErrNoConfig = errors.New("configuration file not found")
)

const (
	// DefaultConfigPath is the default path for the configuration file,
	// relative to the user's home directory.
	DefaultConfigPath = ".luckydock/config.yaml"
	// DefaultGroup is the skin group folder that holds all dock instances.
	DefaultGroup = "LuckyDock"
	// DefaultTimeout is the default timeout for one engine command invocation.
	DefaultTimeout = 5 * time.Second
	// DefaultRetryDelay is the default delay between command forms in a
	// reload sequence.
	DefaultRetryDelay = 250 * time.Millisecond
	// DefaultSettleDelay is the default pause between unloading an instance
	// from the engine and removing its folder.
	DefaultSettleDelay = 150 * time.Millisecond
	// DefaultBackupKeep is the default number of retained skin file backups.
	DefaultBackupKeep = 5
)

// Config holds the editor tool configuration.
type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Skins   SkinsConfig   `yaml:"skins"`
	Backups BackupsConfig `yaml:"backups"`
}

// EngineConfig holds settings for driving the external rendering engine.
type EngineConfig struct {
	// Path is an explicit engine executable; empty means auto-discover.
	Path string `yaml:"path"`
	// Timeout bounds a single engine command invocation.
	Timeout time.Duration `yaml:"timeout"`
	// RetryDelay is the pause between command forms in a reload sequence.
	RetryDelay time.Duration `yaml:"retry_delay"`
	// SettleDelay is the pause between unload and folder deletion; the
	// engine may still hold the skin file open right after unloading.
	SettleDelay time.Duration `yaml:"settle_delay"`
}

// SkinsConfig holds the location of dock instances on disk.
type SkinsConfig struct {
	// Root is the engine's skins directory; empty means the per-OS default.
	Root string `yaml:"root"`
	// Group is the skin group folder name holding all dock instances.
	Group string `yaml:"group"`
}

// BackupsConfig controls skin file backups taken before each rewrite.
type BackupsConfig struct {
	// Keep is the number of retained backups per instance; 0 disables backups.
	Keep int `yaml:"keep"`
}

// Provider defines the interface for loading configuration.
type Provider interface {
	Load() (*Config, error)
}

// FSProvider implements Provider using the local filesystem.
type FSProvider struct {
	fs   filesys.ReadWriteFS
	path string
}

// Verify FSProvider implements Provider interface.
var _ Provider = (*FSProvider)(nil)

// New creates a new configuration provider using the default configuration path.
// It uses the OS filesystem and the user's home directory to locate the
// configuration file. If the home directory cannot be determined, it falls
// back to the current directory.
func New() Provider {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not determine home directory: %v\n", err)
		home = ""
	}
	return NewWithPath(filesys.OS(), filepath.Join(home, DefaultConfigPath))
}

// NewWithPath creates a new provider with a specific config path.
// It allows specifying both the filesystem implementation and the path to use.
func NewWithPath(fs filesys.ReadWriteFS, path string) Provider {
	return &FSProvider{
		fs:   fs,
		path: path,
	}
}

// Default returns a default configuration with preset values.
// This is used when no configuration file exists.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			Timeout:     DefaultTimeout,
			RetryDelay:  DefaultRetryDelay,
			SettleDelay: DefaultSettleDelay,
		},
		Skins: SkinsConfig{
			Group: DefaultGroup,
		},
		Backups: BackupsConfig{
			Keep: DefaultBackupKeep,
		},
	}
}

// Load loads the configuration from the specified path.
func (p *FSProvider) Load() (*Config, error) {
	_ = p.ensureConfigDir()

	cfg, err := p.loadAndParse()
	if err != nil {
		if errors.Is(err, ErrNoConfig) {
			return Default(), nil
		}
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Validate checks the configuration to ensure all required fields are set.
// Every violation is reported, not just the first, so a bad config file
// gets fixed in one edit.
func (c *Config) Validate() error {
	var errs error
	group := strings.TrimSpace(c.Skins.Group)
	if group == "" {
		errs = multierr.Append(errs, errors.New("skin group cannot be empty"))
	} else if strings.ContainsAny(group, `\/`) {
		errs = multierr.Append(errs, errors.New("skin group cannot contain path separators"))
	}
	if c.Engine.Timeout < time.Second {
		errs = multierr.Append(errs, errors.New("engine timeout must be at least 1 second"))
	}
	if c.Engine.RetryDelay < 50*time.Millisecond {
		errs = multierr.Append(errs, errors.New("engine retry delay must be at least 50ms"))
	}
	if c.Engine.SettleDelay < 0 {
		errs = multierr.Append(errs, errors.New("engine settle delay cannot be negative"))
	}
	if c.Backups.Keep < 0 {
		errs = multierr.Append(errs, errors.New("backup keep count cannot be negative"))
	}
	return errs
}

// SkinsRoot returns the configured skins directory, or the per-OS default
// when none is set. On Windows the engine keeps skins under the user's
// Documents folder; elsewhere the same relative layout is used so tests
// and dry runs behave identically.
func (c *Config) SkinsRoot() string {
	if root := strings.TrimSpace(c.Skins.Root); root != "" {
		return root
	}
	return defaultSkinsRoot()
}

func defaultSkinsRoot() string {
	if runtime.GOOS == "windows" {
		if profile := os.Getenv("USERPROFILE"); profile != "" {
			return filepath.Join(profile, "Documents", "Rainmeter", "Skins")
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, "Documents", "Rainmeter", "Skins")
}

func (p *FSProvider) ensureConfigDir() error {
	dir := filepath.Dir(p.path)
	if _, err := p.fs.Stat(dir); os.IsNotExist(err) {
		if err := p.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}
	return nil
}

func (p *FSProvider) loadAndParse() (*Config, error) {
	f, err := p.fs.Open(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoConfig
		}
		return nil, fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close()

	cfg := Default()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decoding config file: %w", err)
	}

	return cfg, nil
}
