package scoring

import (
	"fmt"
	"strings"
)

const (
	strengthThreshold    = 75
	developmentThreshold = 60
)

// Explain renders a natural-language explanation of the overall score:
// a tiered headline, then key strengths (factors at 75 or above) and areas
// for development (factors below 60), both in canonical factor order.
func Explain(sub SubScores, overall float64) string {
	var strengths []string
	var improvements []string

	for _, factor := range Factors() {
		score := sub[factor]
		entry := fmt.Sprintf("%s (%.0f/100)", factor.Title(), score)
		switch {
		case score >= strengthThreshold:
			strengths = append(strengths, entry)
		case score < developmentThreshold:
			improvements = append(improvements, entry)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Overall Growth Potential: %v/100**\n\n", overall)

	switch {
	case overall >= strengthThreshold:
		b.WriteString("**Exceptional Growth Potential** - This candidate demonstrates outstanding ability to learn, adapt, and evolve.\n\n")
	case overall >= developmentThreshold:
		b.WriteString("**Strong Growth Potential** - This candidate shows solid potential for development and advancement.\n\n")
	default:
		b.WriteString("**Developing Growth Potential** - This candidate has room to strengthen their growth trajectory.\n\n")
	}

	if len(strengths) > 0 {
		b.WriteString("**Key Strengths:**\n")
		for _, s := range strengths {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		b.WriteString("\n")
	}

	if len(improvements) > 0 {
		b.WriteString("**Areas for Development:**\n")
		for _, i := range improvements {
			fmt.Fprintf(&b, "- %s\n", i)
		}
	}

	return b.String()
}
