package feetier

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"cosec/internal/models"

	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Tiers []seedTier `yaml:"tiers"`
}

type seedTier struct {
	Name          string   `yaml:"name"`
	MinValue      float64  `yaml:"min_value"`
	MaxValue      *float64 `yaml:"max_value"`
	FeePercentage float64  `yaml:"fee_percentage"`
}

// ParseSeed reads a YAML tier table. A tier without max_value is unbounded.
// Unknown keys are rejected so typos do not silently open a tier.
func ParseSeed(r io.Reader) ([]models.FeeTier, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file seedFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptySeed
		}
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	if len(file.Tiers) == 0 {
		return nil, ErrEmptySeed
	}

	tiers := make([]models.FeeTier, 0, len(file.Tiers))
	for _, t := range file.Tiers {
		tiers = append(tiers, models.FeeTier{
			Name:          strings.TrimSpace(t.Name),
			MinValue:      t.MinValue,
			MaxValue:      t.MaxValue,
			FeePercentage: t.FeePercentage,
		})
	}
	if err := validateTiers(tiers); err != nil {
		return nil, err
	}
	return tiers, nil
}
