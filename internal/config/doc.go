// Package config provides configuration management for the LuckyDock editor tool.
//
// The package uses a Provider interface to abstract configuration loading, with the
// primary implementation being filesystem-based configuration via YAML files.
//
// # Configuration Structure
//
// Configuration is structured as follows:
//
//	engine:
//	  path: ""               # explicit engine executable; empty = auto-discover
//	  timeout: 5s            # timeout for one engine command invocation
//	  retry_delay: 250ms     # delay between command forms in a reload sequence
//	  settle_delay: 150ms    # pause between unload and instance folder deletion
//	skins:
//	  root: ""               # skins directory; empty = per-OS default
//	  group: LuckyDock       # skin group folder holding all dock instances
//	backups:
//	  keep: 5                # retained skin file backups per instance; 0 disables
//
// # Basic Usage
//
// Load configuration using the default path (~/.luckydock/config.yaml):
//
//	cfg, err := config.New().Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Load configuration from a specific path:
//
//	provider := config.NewWithPath(filesys.OS(), "/etc/luckydock/config.yaml")
//	cfg, err := provider.Load()
//
// # Configuration Validation
//
// The package performs validation of loaded configuration:
//   - Skin group must not be empty and must not contain path separators
//   - Engine timeout must be at least 1 second
//   - Engine retry delay must be at least 50ms
//   - Settle delay and backup keep count must not be negative
//
// # Default Configuration
//
// If no configuration file exists, the following defaults are used:
//   - Engine: auto-discovered, 5s timeout, 250ms retry delay, 150ms settle delay
//   - Skins: per-OS skins directory, group "LuckyDock"
//   - Backups: keep 5
//
// Missing fields in a partial configuration file keep their defaults.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrInvalidConfig: Configuration validation failed
//   - ErrNoConfig: Configuration file not found (returns defaults)
//
// The package is designed to be extensible, allowing for additional
// configuration providers to be implemented (e.g., environment variables)
// by implementing the Provider interface.
package config
