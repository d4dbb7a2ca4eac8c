// Package config provides layered configuration for picoterm.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Overrides  │  ← Highest priority (Set)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← PICOTERM_*
//	├─────────────────────────────┤
//	│  2. User Settings           │  ← ~/.config/picoterm/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Settings are addressed by dotted paths such as "editor.tabSize". Typed
// snapshots of each section are available through Editor, UI, Logging
// and Keys.
//
// # Basic Usage
//
//	cfg := config.New(config.WithConfigFile(path))
//	if err := cfg.Load(ctx); err != nil {
//	    return err
//	}
//	tab := cfg.Editor().TabSize
package config
