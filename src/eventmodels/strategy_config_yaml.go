package eventmodels

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StrategyConfigYAML holds the tunable strategy parameters. Every constant
// in the qualification gates and the spread simulator is configuration, not
// ground truth: the simulator's premium heuristics in particular are rough
// approximations, not a calibrated pricing model.
type StrategyConfigYAML struct {
	VolumeThreshold        float64             `yaml:"volumeThreshold"`
	TermStructureThreshold float64             `yaml:"termStructureThreshold"`
	IVRVThreshold          float64             `yaml:"ivRvThreshold"`
	RecommendPolicy        string              `yaml:"recommendPolicy"`
	ScanDelaySeconds       int                 `yaml:"scanDelaySeconds"`
	MaxPositions           int                 `yaml:"maxPositions"`
	PositionSizePct        float64             `yaml:"positionSizePct"`
	StartingCapital        float64             `yaml:"startingCapital"`
	DefaultExpectedMove    float64             `yaml:"defaultExpectedMove"`
	Simulator              SimulatorConfigYAML `yaml:"simulator"`
}

type SimulatorConfigYAML struct {
	StrikeIncrement      float64 `yaml:"strikeIncrement"`
	FrontPremiumFactor   float64 `yaml:"frontPremiumFactor"`
	BackFrontRatio       float64 `yaml:"backFrontRatio"`
	IVCrushFactor        float64 `yaml:"ivCrushFactor"`
	BackRetentionFactor  float64 `yaml:"backRetentionFactor"`
	FrontBreachRetention float64 `yaml:"frontBreachRetention"`
}

func NewDefaultStrategyConfig() StrategyConfigYAML {
	return StrategyConfigYAML{
		VolumeThreshold:        1_000_000,
		TermStructureThreshold: -0.1,
		IVRVThreshold:          1.2,
		RecommendPolicy:        "strict",
		ScanDelaySeconds:       1,
		MaxPositions:           3,
		PositionSizePct:        0.06,
		StartingCapital:        10_000,
		DefaultExpectedMove:    5.0,
		Simulator: SimulatorConfigYAML{
			StrikeIncrement:      5,
			FrontPremiumFactor:   0.4,
			BackFrontRatio:       0.7,
			IVCrushFactor:        0.5,
			BackRetentionFactor:  0.8,
			FrontBreachRetention: 0.2,
		},
	}
}

func (c *StrategyConfigYAML) Validate() error {
	if c.VolumeThreshold < 0 {
		return fmt.Errorf("StrategyConfigYAML: volumeThreshold must be non-negative")
	}

	if c.IVRVThreshold <= 0 {
		return fmt.Errorf("StrategyConfigYAML: ivRvThreshold must be positive")
	}

	if c.PositionSizePct <= 0 || c.PositionSizePct > 1 {
		return fmt.Errorf("StrategyConfigYAML: positionSizePct must be in (0, 1]")
	}

	if c.RecommendPolicy != "strict" && c.RecommendPolicy != "lenient" {
		return fmt.Errorf("StrategyConfigYAML: unknown recommendPolicy: %s", c.RecommendPolicy)
	}

	return nil
}

// LoadStrategyConfig reads a YAML config file, filling any omitted fields
// with defaults. A missing file falls back to defaults entirely.
func LoadStrategyConfig(path string) (StrategyConfigYAML, error) {
	config := NewDefaultStrategyConfig()

	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}

		return config, fmt.Errorf("LoadStrategyConfig: failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("LoadStrategyConfig: failed to parse %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return config, err
	}

	return config, nil
}
