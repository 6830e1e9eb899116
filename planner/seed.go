package planner

import "fmt"

// Seed is an initial network applied through the public mutation path.
// The struct tags are used when a Seed is read from configuration.
type Seed struct {
	Locations []string   `yaml:"locations" validate:"dive,required,min=2,cityname"`
	Roads     []SeedRoad `yaml:"roads" validate:"dive"`
}

// SeedRoad is one road of a Seed.
type SeedRoad struct {
	From     string `yaml:"from" validate:"required,cityname"`
	To       string `yaml:"to" validate:"required,cityname"`
	Distance int    `yaml:"distance" validate:"gt=0"`
}

// Seed adds every location of s, then every road, stopping at the first
// failure. Entries applied before the failure are kept.
func (p *Planner) Seed(s Seed) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, name := range s.Locations {
		if err := p.addLocation(name); err != nil {
			return fmt.Errorf("seed location %d (%q): %w", i, name, err)
		}
	}
	for i, r := range s.Roads {
		if err := p.addRoad(r.From, r.To, r.Distance); err != nil {
			return fmt.Errorf("seed road %d (%q-%q): %w", i, r.From, r.To, err)
		}
	}
	p.logger.Info("seed applied", "locations", len(s.Locations), "roads", len(s.Roads))

	return nil
}
