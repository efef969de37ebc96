// Package config loads the settings shared by the GUI and terminal front-ends.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config is the contents of the TOML settings file.
type Config struct {
	// LogPath is where the log is written. Empty keeps stderr.
	LogPath string `toml:"log_path"`
	// StartFEN sets the position new games start from. Empty is the
	// standard starting position; otherwise White must be to move in an
	// undecided position.
	StartFEN string `toml:"start_fen"`

	Window Window `toml:"window"`
}

// Window holds the GUI window settings.
type Window struct {
	Title  string  `toml:"title"`
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
	Scale  float32 `toml:"scale"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogPath: "./log",
		Window: Window{
			Title:  "Legendary Chess",
			Width:  800,
			Height: 1000,
			Scale:  1.5,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %vx%v must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("window scale %v must be positive", c.Window.Scale)
	}
	return nil
}

// ApplyScale exports the window scale to fyne through FYNE_SCALE unless the
// user already set it. It must run before the fyne app is created.
func (w Window) ApplyScale() error {
	if _, ok := os.LookupEnv("FYNE_SCALE"); ok {
		return nil
	}
	if err := os.Setenv("FYNE_SCALE", strconv.FormatFloat(float64(w.Scale), 'f', -1, 32)); err != nil {
		return fmt.Errorf("set FYNE_SCALE: %w", err)
	}
	return nil
}

// InitLog sends the standard logger to dest with the given prefix.
func InitLog(dest, prefix string) error {
	log.SetPrefix(prefix)
	if dest == "" {
		return nil
	}
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return nil
}
