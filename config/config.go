// Package config holds the user-tunable settings: the quit key binding and
// debug logging. Values come from built-in defaults, then an optional TOML
// file, then command-line flags applied by the caller.
package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/lixenwraith/kilo/terminal"
	"github.com/lixenwraith/kilo/toml"
)

const (
	appName  = "kilo"
	fileName = "kilo.toml"

	DefaultQuitKey      = "ctrl_q"
	DefaultLogDir       = "logs"
	DefaultLogMaxSizeMB = 10
)

// Config is the decoded configuration file
type Config struct {
	Keys KeysConfig `toml:"keys"`
	Log  LogConfig  `toml:"log"`
}

// KeysConfig binds editor commands to key names understood by terminal.ParseKey
type KeysConfig struct {
	Quit    string   `toml:"quit"`
	QuitAlt []string `toml:"quit_alt"` // extra quit bindings
}

// LogConfig controls the debug log file
type LogConfig struct {
	Debug     bool   `toml:"debug"`
	Dir       string `toml:"dir"`
	MaxSizeMB uint   `toml:"max_size_mb"` // rotate the log past this size
}

// Default returns the configuration used when no file is present
func Default() Config {
	return Config{
		Keys: KeysConfig{Quit: DefaultQuitKey},
		Log:  LogConfig{Dir: DefaultLogDir, MaxSizeMB: DefaultLogMaxSizeMB},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/kilo/kilo.toml, or ~/.config/kilo/kilo.toml
// when XDG_CONFIG_HOME is unset
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "config: locate home directory")
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads path over the defaults.
// A missing file is an error only when required is set, i.e. the user named it.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, errors.Wrap(err, "config")
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config: %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config: %s", path)
	}
	return cfg, nil
}

// Validate checks that every key binding names a known key and the log
// size limit is usable
func (c Config) Validate() error {
	if _, err := c.QuitKeys(); err != nil {
		return err
	}
	if c.Log.MaxSizeMB == 0 {
		return errors.New("log.max_size_mb: must be at least 1")
	}
	return nil
}

// QuitKey resolves the primary quit binding
func (c Config) QuitKey() (terminal.Event, error) {
	return parseBinding("keys.quit", c.Keys.Quit)
}

// QuitKeys resolves the primary quit binding followed by keys.quit_alt
func (c Config) QuitKeys() ([]terminal.Event, error) {
	primary, err := c.QuitKey()
	if err != nil {
		return nil, err
	}
	evs := []terminal.Event{primary}
	for i, name := range c.Keys.QuitAlt {
		ev, err := parseBinding(fmt.Sprintf("keys.quit_alt[%d]", i), name)
		if err != nil {
			return nil, err
		}
		evs = append(evs, ev)
	}
	return evs, nil
}

// LogMaxSize is the rotation threshold in bytes
func (c Config) LogMaxSize() int64 {
	return int64(c.Log.MaxSizeMB) << 20
}

func parseBinding(field, name string) (terminal.Event, error) {
	ev, ok := terminal.ParseKey(name)
	if !ok {
		return terminal.Event{}, errors.Errorf("%s: unknown key %q", field, name)
	}
	return ev, nil
}
