package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spigell/growth-explorer/internal/candidate"
	"github.com/spigell/growth-explorer/internal/scoring"
)

// CandidateContext flattens a candidate's profile, scores, raw metrics and
// timeline into the textual block fed to the AI assistant as prompt context.
func CandidateContext(record *candidate.Record, sub scoring.SubScores, overall float64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "CANDIDATE PROFILE: %s\n", record.Name)
	fmt.Fprintf(&b, "Role: %s\n", record.Role)
	fmt.Fprintf(&b, "Experience: %d years\n", record.ExperienceYears)
	fmt.Fprintf(&b, "Background: %s\n\n", record.Background)

	fmt.Fprintf(&b, "GROWTH POTENTIAL SCORE: %v/100\n\n", overall)

	b.WriteString("SUB-FACTOR SCORES:\n")
	for _, factor := range scoring.Factors() {
		fmt.Fprintf(&b, "- %s: %.1f/100 (Weight: %d%%)\n", factor.Title(), sub[factor], scoring.Weights[factor])
	}

	b.WriteString("\nDETAILED METRICS:\n")
	for _, group := range metricGroups(record.Metrics) {
		fmt.Fprintf(&b, "\n%s:\n", group.title)
		for _, m := range group.values {
			fmt.Fprintf(&b, "  - %s: %v\n", m.name, m.value)
		}
	}

	b.WriteString("\nCAREER TIMELINE:\n")
	timeline := make([]candidate.TimelineEvent, len(record.Timeline))
	copy(timeline, record.Timeline)
	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].Year < timeline[j].Year
	})
	for _, event := range timeline {
		fmt.Fprintf(&b, "- %d: %s (%s)\n", event.Year, event.Event, event.Type)
	}

	return b.String()
}

// PoolContext builds the all-candidates overview context.
func PoolContext(set *candidate.Set) string {
	var b strings.Builder
	b.WriteString("OVERVIEW OF ALL CANDIDATES:\n\n")

	for _, record := range set.Items {
		sub := scoring.Calculate(record.Metrics)
		overall := scoring.Overall(sub)

		fmt.Fprintf(&b, "\n%s:\n", record.Name)
		fmt.Fprintf(&b, "- Overall Score: %v/100\n", overall)
		fmt.Fprintf(&b, "- Role: %s\n", record.Role)
		for _, factor := range scoring.Factors() {
			fmt.Fprintf(&b, "- %s: %.1f/100\n", factor.Title(), sub[factor])
		}
	}

	return b.String()
}

type metricValue struct {
	name  string
	value float64
}

type metricGroup struct {
	title  string
	values []metricValue
}

func metricGroups(m candidate.Metrics) []metricGroup {
	return []metricGroup{
		{scoring.LearningAgility.Title(), []metricValue{
			{"Certifications", m.LearningAgility.Certifications},
			{"Courses Completed", m.LearningAgility.CoursesCompleted},
			{"Learning Velocity", m.LearningAgility.LearningVelocity},
		}},
		{scoring.SkillProgression.Title(), []metricValue{
			{"Role Transitions", m.SkillProgression.RoleTransitions},
			{"Tech Stack Breadth", m.SkillProgression.TechStackBreadth},
			{"Seniority Growth", m.SkillProgression.SeniorityGrowth},
		}},
		{scoring.Adaptability.Title(), []metricValue{
			{"Industry Switches", m.Adaptability.IndustrySwitches},
			{"Domain Pivots", m.Adaptability.DomainPivots},
			{"Challenge Response", m.Adaptability.ChallengeResponse},
		}},
		{scoring.InnovationMindset.Title(), []metricValue{
			{"Side Projects", m.InnovationMindset.SideProjects},
			{"Contributions", m.InnovationMindset.Contributions},
			{"Patents Publications", m.InnovationMindset.PatentsPublications},
		}},
		{scoring.FeedbackIntegration.Title(), []metricValue{
			{"Performance Improvements", m.FeedbackIntegration.PerformanceImprovements},
			{"Mentorship Sought", m.FeedbackIntegration.MentorshipSought},
			{"Self Awareness", m.FeedbackIntegration.SelfAwareness},
		}},
	}
}
