package engine

import "fmt"

// Config tunes how stops are built and how often the reporter strikes.
type Config struct {
	// Planned encounters per stop, inclusive.
	MinEncounters int
	MaxEncounters int

	// Citizens present per stop, inclusive.
	MinRoster int
	MaxRoster int

	// Shape weights rolled for each planned encounter; the remainder is standard.
	ProjectileChance    float64
	ChildChance         float64
	SecretWitnessChance float64

	// Ambush chance = (base + perTier*(tier-1)) * chaos, capped at MaxAmbushChance.
	AmbushBaseChance    float64
	AmbushChancePerTier float64
	ChaosMultiplier     float64
	MaxAmbushChance     float64

	// Chance a pending ambush fires on each pull.
	AmbushFireChance float64

	// Investigation progress added when a stop completes.
	InvestigationPerStop     int
	InvestigationSecretBonus int
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		MinEncounters:            3,
		MaxEncounters:            6,
		MinRoster:                5,
		MaxRoster:                15,
		ProjectileChance:         0.08,
		ChildChance:              0.08,
		SecretWitnessChance:      0.07,
		AmbushBaseChance:         0.15,
		AmbushChancePerTier:      0.05,
		ChaosMultiplier:          1.0,
		MaxAmbushChance:          0.9,
		AmbushFireChance:         0.3,
		InvestigationPerStop:     5,
		InvestigationSecretBonus: 15,
	}
}

func (c Config) validate() error {
	if c.MinEncounters <= 0 {
		return fmt.Errorf("MinEncounters must be > 0")
	}
	if c.MinEncounters > c.MaxEncounters {
		return fmt.Errorf("MinEncounters must be <= MaxEncounters")
	}
	if c.MinRoster <= 0 || c.MinRoster > c.MaxRoster {
		return fmt.Errorf("invalid roster size: min=%d max=%d", c.MinRoster, c.MaxRoster)
	}
	for name, p := range map[string]float64{
		"ProjectileChance":    c.ProjectileChance,
		"ChildChance":         c.ChildChance,
		"SecretWitnessChance": c.SecretWitnessChance,
		"AmbushBaseChance":    c.AmbushBaseChance,
		"AmbushChancePerTier": c.AmbushChancePerTier,
		"MaxAmbushChance":     c.MaxAmbushChance,
		"AmbushFireChance":    c.AmbushFireChance,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s must be within [0,1], got %v", name, p)
		}
	}
	if c.ProjectileChance+c.ChildChance+c.SecretWitnessChance > 1 {
		return fmt.Errorf("encounter shape chances sum above 1")
	}
	if c.ChaosMultiplier < 0 {
		return fmt.Errorf("ChaosMultiplier must be >= 0")
	}
	if c.InvestigationPerStop < 0 || c.InvestigationSecretBonus < 0 {
		return fmt.Errorf("investigation increments must be >= 0")
	}
	return nil
}
