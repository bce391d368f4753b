package trajectory

import "github.com/spigell/growth-explorer/internal/candidate"

// Metrics aggregates everything derived from one candidate's timeline.
type Metrics struct {
	Progression  []ProgressionEntry `json:"progression"`
	Promotions   []Promotion        `json:"promotions"`
	Velocity     float64            `json:"velocity"`
	Acceleration Acceleration       `json:"acceleration"`
	Pattern      Pattern            `json:"pattern"`
	Narrative    string             `json:"narrative"`
	CurrentLevel int                `json:"current_level"`
	LevelsGained int                `json:"levels_gained"`
}

// Analyze runs the full derivation chain for a candidate record:
// progression, promotions, velocity, acceleration, pattern, narrative.
// Each stage consumes only prior stages' outputs.
func Analyze(record *candidate.Record) Metrics {
	progression := Progression(record.Timeline)
	promotions := Promotions(progression)
	velocity := Velocity(progression, record.ExperienceYears)
	acceleration := AccelerationOf(promotions)
	pattern := Classify(progression, record.ExperienceYears, promotions)
	narrative := Narrative(record.Name, progression, promotions, pattern, velocity, record.ExperienceYears)

	metrics := Metrics{
		Progression:  progression,
		Promotions:   promotions,
		Velocity:     velocity,
		Acceleration: acceleration,
		Pattern:      pattern,
		Narrative:    narrative,
	}

	if len(progression) > 0 {
		metrics.CurrentLevel = progression[len(progression)-1].Level
		metrics.LevelsGained = progression[len(progression)-1].Level - progression[0].Level
	}

	return metrics
}
