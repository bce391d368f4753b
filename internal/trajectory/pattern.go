package trajectory

import "math"

// Pattern is a closed classification of career trajectories.
type Pattern string

const (
	EarlyCareer     Pattern = "Early Career"
	FastRiser       Pattern = "Fast Riser"
	SteadyClimber   Pattern = "Steady Climber"
	LateralExplorer Pattern = "Lateral Explorer"
	Specialist      Pattern = "Specialist"
	LateBloomer     Pattern = "Late Bloomer"
	Plateaued       Pattern = "Plateaued"
	Developing      Pattern = "Developing"
)

// displayLabels carry the decorative suffix shown to users. Classification
// compares Pattern values, never these strings.
var displayLabels = map[Pattern]string{
	EarlyCareer:     "Early Career 🌱",
	FastRiser:       "Fast Riser 🚀",
	SteadyClimber:   "Steady Climber 📈",
	LateralExplorer: "Lateral Explorer 🔄",
	Specialist:      "Specialist 🎯",
	LateBloomer:     "Late Bloomer 🌟",
	Plateaued:       "Plateaued ⏸️",
	Developing:      "Developing 🌱",
}

// DisplayLabel returns the decorated form of the pattern for presentation.
func (p Pattern) DisplayLabel() string {
	if label, ok := displayLabels[p]; ok {
		return label
	}
	return string(p)
}

// Classify matches the trajectory against an ordered decision list. Order is
// significant: the first matching rule wins. In particular Lateral Explorer
// takes precedence over Specialist when both match.
func Classify(progression []ProgressionEntry, experienceYears int, promotions []Promotion) Pattern {
	if len(progression) == 0 || len(promotions) == 0 {
		return EarlyCareer
	}

	velocity := Velocity(progression, experienceYears)
	avgPromotionYears := math.Inf(1)
	if len(promotions) > 0 {
		avgPromotionYears = meanYears(promotions)
	}
	totalLevels := progression[len(progression)-1].Level - progression[0].Level

	switch {
	case velocity >= 0.4 && avgPromotionYears <= 2.5:
		return FastRiser
	case velocity >= 0.25 && velocity < 0.4 && avgPromotionYears >= 2 && avgPromotionYears <= 4:
		return SteadyClimber
	case totalLevels <= 1 && len(progression) >= 3:
		return LateralExplorer
	case totalLevels == 0:
		return Specialist
	case AccelerationOf(promotions) == Accelerating:
		return LateBloomer
	case AccelerationOf(promotions) == Decelerating:
		return Plateaued
	default:
		return Developing
	}
}
