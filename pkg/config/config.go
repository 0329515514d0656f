// Package config provides configuration loading and management for adcorr.
// It handles loading pipeline parameters from YAML files and provides default values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"adcorr/pkg/corrections"
	"adcorr/pkg/geometry"
	"adcorr/pkg/pipeline"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration loaded from YAML
type Config struct {
	// Geometry of the detector relative to the sample
	Geometry struct {
		// BeamCenter is the beam position in pixels, row then column
		BeamCenter [2]float64 `yaml:"beamCenter"`

		// PixelSizes is the real-space size of a pixel, row then column
		PixelSizes [2]float64 `yaml:"pixelSizes"`

		// Distance between sample and detector, in the unit of PixelSizes
		Distance float64 `yaml:"distance"`
	} `yaml:"geometry"`

	// Detector response parameters
	Detector struct {
		// CountTimes holds one count time for all frames or one per frame
		CountTimes []float64 `yaml:"countTimes"`

		MinimumPulseSeparation   float64 `yaml:"minimumPulseSeparation"`
		MinimumArrivalSeparation float64 `yaml:"minimumArrivalSeparation"`

		BaseDarkCurrent          float64 `yaml:"baseDarkCurrent"`
		TemporalDarkCurrent      float64 `yaml:"temporalDarkCurrent"`
		FluxDependentDarkCurrent float64 `yaml:"fluxDependentDarkCurrent"`

		// AbsorptionCoefficient and Thickness describe the detector head material
		AbsorptionCoefficient float64 `yaml:"absorptionCoefficient"`
		Thickness             float64 `yaml:"thickness"`
	} `yaml:"detector"`

	// Sample parameters
	Sample struct {
		Thickness              float64 `yaml:"thickness"`
		AbsorptionCoefficient  float64 `yaml:"absorptionCoefficient"`
		HorizontalPolarization float64 `yaml:"horizontalPolarization"`

		// DisplacedFraction is the fraction of dispersant displaced by the analyte
		DisplacedFraction float64 `yaml:"displacedFraction"`
	} `yaml:"sample"`

	// Pipeline selection and reporting
	Pipeline struct {
		// Name is one of pipeline.Names()
		Name string `yaml:"name"`

		// LogLevel is a zerolog level name
		LogLevel string `yaml:"logLevel"`
	} `yaml:"pipeline"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Geometry.BeamCenter = [2]float64{0, 0}
	cfg.Geometry.PixelSizes = [2]float64{172e-6, 172e-6} // Pilatus pixel pitch in metres
	cfg.Geometry.Distance = 1.0

	cfg.Detector.CountTimes = []float64{1.0}
	cfg.Detector.AbsorptionCoefficient = 1.0
	cfg.Detector.Thickness = 1.0

	cfg.Sample.Thickness = 1.0
	cfg.Sample.HorizontalPolarization = corrections.DefaultHorizontalPolarization

	cfg.Pipeline.Name = pipeline.SimpleSampleName
	cfg.Pipeline.LogLevel = "info"

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	return SaveConfig(DefaultConfig(), configPath)
}

// Validate checks the fields every pipeline needs. Physical ranges are left
// to the corrections themselves.
func (c *Config) Validate() error {
	if len(c.Detector.CountTimes) == 0 {
		return fmt.Errorf("%w: detector.countTimes is empty", ErrInvalidConfig)
	}
	for _, name := range pipeline.Names() {
		if name == c.Pipeline.Name {
			return nil
		}
	}
	return fmt.Errorf("%w: pipeline.name %q is not one of %v", ErrInvalidConfig, c.Pipeline.Name, pipeline.Names())
}

// PipelineParams converts the configuration into pipeline parameters. Frame
// inputs such as masks and backgrounds are left for the caller to fill in.
func (c *Config) PipelineParams() pipeline.Params {
	return pipeline.Params{
		BeamCenter:                    geometry.Pair(c.Geometry.BeamCenter),
		PixelSizes:                    geometry.Pair(c.Geometry.PixelSizes),
		Distance:                      c.Geometry.Distance,
		CountTimes:                    append([]float64(nil), c.Detector.CountTimes...),
		MinimumPulseSeparation:        c.Detector.MinimumPulseSeparation,
		MinimumArrivalSeparation:      c.Detector.MinimumArrivalSeparation,
		BaseDarkCurrent:               c.Detector.BaseDarkCurrent,
		TemporalDarkCurrent:           c.Detector.TemporalDarkCurrent,
		FluxDependentDarkCurrent:      c.Detector.FluxDependentDarkCurrent,
		DetectorAbsorptionCoefficient: c.Detector.AbsorptionCoefficient,
		DetectorThickness:             c.Detector.Thickness,
		HorizontalPolarization:        c.Sample.HorizontalPolarization,
		SampleAbsorptionCoefficient:   c.Sample.AbsorptionCoefficient,
		SampleThickness:               c.Sample.Thickness,
		DisplacedFraction:             c.Sample.DisplacedFraction,
	}
}
