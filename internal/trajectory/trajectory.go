// Package trajectory derives a seniority progression from a candidate's
// career timeline and classifies it into a named pattern.
package trajectory

import (
	"math"
	"sort"

	"github.com/spigell/growth-explorer/internal/candidate"
)

// defaultLevel is assumed when a role event carries no seniority level.
const defaultLevel = 2

// SeniorityLabels maps seniority levels to display names.
var SeniorityLabels = map[int]string{
	1: "Junior",
	2: "Mid-Level",
	3: "Senior",
	4: "Lead/Staff",
	5: "Principal/Director",
}

// ProgressionEntry is one role change in a candidate's career, ordered by year.
type ProgressionEntry struct {
	Year  int    `json:"year"`
	Level int    `json:"level"`
	Event string `json:"event"`
}

// Promotion is a transition between two consecutive role events where the
// seniority level strictly increased.
type Promotion struct {
	FromLevel int    `json:"from_level"`
	ToLevel   int    `json:"to_level"`
	Years     int    `json:"years"`
	FromYear  int    `json:"from_year"`
	ToYear    int    `json:"to_year"`
	FromRole  string `json:"from_role"`
	ToRole    string `json:"to_role"`
}

// Acceleration is the qualitative trend in promotion cadence.
type Acceleration string

const (
	Accelerating Acceleration = "accelerating"
	Stable       Acceleration = "stable"
	Decelerating Acceleration = "decelerating"
)

// Progression extracts the seniority progression from a timeline: role events
// only, sorted ascending by year, with missing levels defaulted to mid-level.
func Progression(timeline []candidate.TimelineEvent) []ProgressionEntry {
	var entries []ProgressionEntry
	for _, event := range timeline {
		if event.Type != candidate.EventRole {
			continue
		}
		level := event.SeniorityLevel
		if level == 0 {
			level = defaultLevel
		}
		entries = append(entries, ProgressionEntry{
			Year:  event.Year,
			Level: level,
			Event: event.Event,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Year < entries[j].Year
	})

	return entries
}

// Promotions scans the progression pairwise and returns every strict level
// increase. Lateral moves and demotions produce no record.
func Promotions(progression []ProgressionEntry) []Promotion {
	var promotions []Promotion
	for i := 0; i+1 < len(progression); i++ {
		from, to := progression[i], progression[i+1]
		if to.Level <= from.Level {
			continue
		}
		promotions = append(promotions, Promotion{
			FromLevel: from.Level,
			ToLevel:   to.Level,
			Years:     to.Year - from.Year,
			FromYear:  from.Year,
			ToYear:    to.Year,
			FromRole:  from.Event,
			ToRole:    to.Event,
		})
	}
	return promotions
}

// Velocity is net seniority levels gained per year of experience, rounded to
// two decimals. Returns 0 for an empty progression or zero experience.
func Velocity(progression []ProgressionEntry, experienceYears int) float64 {
	if len(progression) == 0 || experienceYears == 0 {
		return 0
	}

	levelsGained := progression[len(progression)-1].Level - progression[0].Level
	velocity := float64(levelsGained) / float64(experienceYears)

	return math.Round(velocity*100) / 100
}

// AccelerationOf compares the average interval of the last two promotions
// against the earlier ones. The 0.8/1.2 band scales with absolute cadence
// rather than using a fixed threshold.
func AccelerationOf(promotions []Promotion) Acceleration {
	if len(promotions) < 2 {
		return Stable
	}

	recentAvg := meanYears(promotions[len(promotions)-2:])
	earlierAvg := recentAvg
	if len(promotions) > 2 {
		earlierAvg = meanYears(promotions[:len(promotions)-2])
	}

	switch {
	case recentAvg < earlierAvg*0.8:
		return Accelerating
	case recentAvg > earlierAvg*1.2:
		return Decelerating
	default:
		return Stable
	}
}

func meanYears(promotions []Promotion) float64 {
	if len(promotions) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range promotions {
		total += float64(p.Years)
	}
	return total / float64(len(promotions))
}
