// SPDX-License-Identifier: MIT

package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/slitsim/wave"
)

// ErrInvalidConfig indicates a configuration value outside its allowed range.
var ErrInvalidConfig = errors.New("validation: invalid config")

// Config parameterizes the reference suite. The zero value is not useful;
// start from DefaultConfig.
type Config struct {
	Probabilistic StepsConfig `yaml:"probabilistic"`
	Quantum       StepsConfig `yaml:"quantum"`
	Wave          WaveConfig  `yaml:"wave"`

	// Tolerance for equalities on classical results (conservation, 1/3 targets).
	Tolerance float64 `yaml:"tolerance"`

	// Parallel is the number of checks run concurrently (1 = sequential).
	Parallel int `yaml:"parallel"`
}

// StepsConfig sets the number of evolution steps.
type StepsConfig struct {
	Steps int `yaml:"steps"`
}

// WaveConfig mirrors wave.Params plus the worker count.
type WaveConfig struct {
	SlitDistance   float64 `yaml:"slit_distance"`
	Wavelength     float64 `yaml:"wavelength"`
	ScreenDistance float64 `yaml:"screen_distance"`
	ScreenWidth    float64 `yaml:"screen_width"`
	NumPoints      int     `yaml:"num_points"`
	Workers        int     `yaml:"workers"`
}

// Params converts the wave section into wave.Params.
func (w WaveConfig) Params() wave.Params {
	return wave.Params{
		SlitDistance:   w.SlitDistance,
		Wavelength:     w.Wavelength,
		ScreenDistance: w.ScreenDistance,
		ScreenWidth:    w.ScreenWidth,
		NumPoints:      w.NumPoints,
	}
}

// DefaultConfig returns the reference scenario: two evolution steps, the
// reference wave geometry, tolerance 1e-9, sequential checks.
func DefaultConfig() Config {
	p := wave.DefaultParams()

	return Config{
		Probabilistic: StepsConfig{Steps: 2},
		Quantum:       StepsConfig{Steps: 2},
		Wave: WaveConfig{
			SlitDistance:   p.SlitDistance,
			Wavelength:     p.Wavelength,
			ScreenDistance: p.ScreenDistance,
			ScreenWidth:    p.ScreenWidth,
			NumPoints:      p.NumPoints,
			Workers:        1,
		},
		Tolerance: 1e-9,
		Parallel:  1,
	}
}

// LoadConfig reads a YAML file and overlays it on DefaultConfig.
// Unknown keys are rejected. The result is validated.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	defer f.Close()

	return ReadConfig(f)
}

// ReadConfig is LoadConfig over an io.Reader. An empty document yields the defaults.
func ReadConfig(r io.Reader) (Config, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if len(bytes.TrimSpace(raw)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err = dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("decode config: %w", err)
		}
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects values the suite cannot run with. Physical wave parameters
// are left to wave.Compute so that a bad geometry surfaces as a failed check
// with a DomainError, not as a config error.
func (c Config) Validate() error {
	switch {
	case c.Probabilistic.Steps < 0:
		return fmt.Errorf("probabilistic.steps=%d: %w", c.Probabilistic.Steps, ErrInvalidConfig)
	case c.Quantum.Steps < 0:
		return fmt.Errorf("quantum.steps=%d: %w", c.Quantum.Steps, ErrInvalidConfig)
	case c.Wave.Workers < 1:
		return fmt.Errorf("wave.workers=%d: %w", c.Wave.Workers, ErrInvalidConfig)
	case c.Parallel < 1:
		return fmt.Errorf("parallel=%d: %w", c.Parallel, ErrInvalidConfig)
	case !(c.Tolerance > 0) || math.IsInf(c.Tolerance, 0):
		return fmt.Errorf("tolerance=%g: %w", c.Tolerance, ErrInvalidConfig)
	}

	return nil
}
