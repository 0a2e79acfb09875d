// Package config loads controller tuning from a YAML file layered over the defaults
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/goorbit/pkg/control"
	"github.com/philipparndt/goorbit/pkg/geometry"
	"gopkg.in/yaml.v3"
)

var (
	ErrFriction  = errors.New("friction must be inside (0, 1)")
	ErrTolerance = errors.New("tolerance must not be negative")
	ErrDistance  = errors.New("default distance must be positive")
	ErrUp        = errors.New("up vector must not be zero")
)

// Load reads the tuning file at path. An empty path returns the defaults.
func Load(path string) (control.Config, error) {
	if path == "" {
		return control.DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return control.Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return control.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML tuning from r. Keys missing from the document keep their defaults.
func Parse(r io.Reader) (control.Config, error) {
	cfg := control.DefaultConfig()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return control.Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return control.Config{}, err
	}
	return cfg, nil
}

// Validate checks the preconditions the controller relies on but does not check itself
func Validate(cfg control.Config) error {
	for _, ch := range cfg.Channels() {
		if ch.Friction <= 0 || ch.Friction >= 1 {
			return fmt.Errorf("%s: %w (got %v)", ch.Name, ErrFriction, ch.Friction)
		}
		if ch.Tolerance < 0 {
			return fmt.Errorf("%s: %w (got %v)", ch.Name, ErrTolerance, ch.Tolerance)
		}
	}
	if cfg.DefaultDistance <= 0 {
		return fmt.Errorf("%w (got %v)", ErrDistance, cfg.DefaultDistance)
	}
	if cfg.Up == (geometry.Vector3{}) {
		return ErrUp
	}
	return nil
}

// Write encodes cfg as YAML, e.g. to produce a starting tuning file
func Write(w io.Writer, cfg control.Config) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return encoder.Close()
}
