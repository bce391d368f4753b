package trajectory

import (
	"fmt"
	"strings"
)

func seniorityLabel(level int) string {
	if label, ok := SeniorityLabels[level]; ok {
		return label
	}
	return "Unknown"
}

// Narrative renders a deterministic prose description of the trajectory from
// already-computed metrics. It derives nothing new.
func Narrative(name string, progression []ProgressionEntry, promotions []Promotion, pattern Pattern, velocity float64, experienceYears int) string {
	if len(progression) == 0 {
		return "Insufficient career history data."
	}

	startLabel := seniorityLabel(progression[0].Level)
	currentLabel := seniorityLabel(progression[len(progression)-1].Level)
	levelsGained := progression[len(progression)-1].Level - progression[0].Level

	levelWord := "levels"
	if levelsGained == 1 {
		levelWord = "level"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Career Trajectory: %s**\n\n", pattern.DisplayLabel())
	fmt.Fprintf(&b, "%s started as a **%s** professional and is currently at the **%s** level, ", name, startLabel, currentLabel)
	fmt.Fprintf(&b, "advancing **%d %s** over **%d years**.\n\n", levelsGained, levelWord, experienceYears)

	switch {
	case velocity >= 0.4:
		fmt.Fprintf(&b, "With a trajectory velocity of **%v levels/year**, this represents **exceptional career acceleration** - significantly faster than industry averages.\n\n", velocity)
	case velocity >= 0.25:
		fmt.Fprintf(&b, "With a trajectory velocity of **%v levels/year**, this shows **solid career progression** at a healthy pace.\n\n", velocity)
	default:
		fmt.Fprintf(&b, "With a trajectory velocity of **%v levels/year**, this indicates **steady, measured growth** with focus on skill deepening.\n\n", velocity)
	}

	if len(promotions) > 0 {
		b.WriteString("**Promotion History:**\n")
		for _, promo := range promotions {
			yearWord := "years"
			if promo.Years == 1 {
				yearWord = "year"
			}
			fmt.Fprintf(&b, "- **%d → %d** (%d %s): %s to %s\n",
				promo.FromYear, promo.ToYear, promo.Years, yearWord,
				seniorityLabel(promo.FromLevel), seniorityLabel(promo.ToLevel),
			)
		}

		avgYears := meanYears(promotions)
		fmt.Fprintf(&b, "\n**Average time between promotions:** %.1f years\n", avgYears)

		switch {
		case avgYears <= 2:
			b.WriteString("This is exceptionally fast - well above market pace.\n")
		case avgYears <= 3:
			b.WriteString("This is faster than typical industry standards.\n")
		case avgYears <= 5:
			b.WriteString("This aligns with standard career progression timelines.\n")
		default:
			b.WriteString("This suggests a focus on mastery before advancement.\n")
		}
	}

	return b.String()
}
