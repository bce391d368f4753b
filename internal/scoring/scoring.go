// Package scoring computes the Growth Potential score: five bounded
// sub-factor scores combined into a weighted overall score.
package scoring

import (
	"math"
	"strings"

	"github.com/spigell/growth-explorer/internal/candidate"
)

// Factor identifies one of the five scoring dimensions.
type Factor string

const (
	LearningAgility     Factor = "learning_agility"
	SkillProgression    Factor = "skill_progression"
	Adaptability        Factor = "adaptability"
	InnovationMindset   Factor = "innovation_mindset"
	FeedbackIntegration Factor = "feedback_integration"
)

// Weights per factor. Must sum to 100.
var Weights = map[Factor]int{
	LearningAgility:     30,
	SkillProgression:    25,
	Adaptability:        20,
	InnovationMindset:   15,
	FeedbackIntegration: 10,
}

// Factors returns the five factors in canonical order.
func Factors() []Factor {
	return []Factor{
		LearningAgility,
		SkillProgression,
		Adaptability,
		InnovationMindset,
		FeedbackIntegration,
	}
}

// Title returns the human-readable factor name.
func (f Factor) Title() string {
	words := strings.Split(string(f), "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// SubScores maps each factor to its score in [0,100].
type SubScores map[Factor]float64

// LearningAgilityScore measures how quickly a candidate acquires new skills.
// learningVelocity is months between skill acquisitions, lower is better.
func LearningAgilityScore(certifications, coursesCompleted, learningVelocity float64) float64 {
	certifications = nonNegative(certifications)
	coursesCompleted = nonNegative(coursesCompleted)
	learningVelocity = nonNegative(learningVelocity)

	certScore := math.Min(certifications*15, 40)
	courseScore := math.Min(coursesCompleted*5, 30)
	velocityScore := math.Max(30-learningVelocity*3, 0)

	return math.Min(certScore+courseScore+velocityScore, 100)
}

// SkillProgressionScore measures career trajectory and skill development.
// seniorityGrowth is years to reach the current level, lower is better.
func SkillProgressionScore(roleTransitions, techStackBreadth, seniorityGrowth float64) float64 {
	roleTransitions = nonNegative(roleTransitions)
	techStackBreadth = nonNegative(techStackBreadth)
	seniorityGrowth = nonNegative(seniorityGrowth)

	transitionScore := math.Min(roleTransitions*20, 40)
	breadthScore := math.Min(techStackBreadth*4, 40)
	// The growth term is floored at 10, so this factor never reads below ~9.1.
	growthScore := math.Max(30-seniorityGrowth*2, 10)

	return (transitionScore + breadthScore + growthScore) / 110 * 100
}

// AdaptabilityScore measures the ability to thrive in changing environments.
// challengeResponse is a 0-10 behavioral interview score.
func AdaptabilityScore(industrySwitches, domainPivots, challengeResponse float64) float64 {
	industrySwitches = nonNegative(industrySwitches)
	domainPivots = nonNegative(domainPivots)
	challengeResponse = nonNegative(challengeResponse)

	switchScore := math.Min(industrySwitches*25, 50)
	pivotScore := math.Min(domainPivots*15, 30)
	responseScore := challengeResponse * 2

	return (switchScore + pivotScore + responseScore) / 100 * 100
}

// InnovationMindsetScore measures creative problem-solving and initiative.
func InnovationMindsetScore(sideProjects, contributions, patentsPublications float64) float64 {
	sideProjects = nonNegative(sideProjects)
	contributions = nonNegative(contributions)
	patentsPublications = nonNegative(patentsPublications)

	projectScore := math.Min(sideProjects*15, 45)
	contributionScore := math.Min(contributions*8, 35)
	ipScore := math.Min(patentsPublications*10, 20)

	return (projectScore + contributionScore + ipScore) / 100 * 100
}

// FeedbackIntegrationScore measures how well a candidate learns from feedback.
// mentorshipSought and selfAwareness are 0-10 assessments.
func FeedbackIntegrationScore(performanceImprovements, mentorshipSought, selfAwareness float64) float64 {
	performanceImprovements = nonNegative(performanceImprovements)
	mentorshipSought = nonNegative(mentorshipSought)
	selfAwareness = nonNegative(selfAwareness)

	improvementScore := math.Min(performanceImprovements*15, 40)
	mentorshipScore := mentorshipSought * 3
	awarenessScore := selfAwareness * 3

	return improvementScore + mentorshipScore + awarenessScore
}

// Calculate computes all five sub-scores from a candidate's raw metrics.
func Calculate(m candidate.Metrics) SubScores {
	return SubScores{
		LearningAgility: LearningAgilityScore(
			m.LearningAgility.Certifications,
			m.LearningAgility.CoursesCompleted,
			m.LearningAgility.LearningVelocity,
		),
		SkillProgression: SkillProgressionScore(
			m.SkillProgression.RoleTransitions,
			m.SkillProgression.TechStackBreadth,
			m.SkillProgression.SeniorityGrowth,
		),
		Adaptability: AdaptabilityScore(
			m.Adaptability.IndustrySwitches,
			m.Adaptability.DomainPivots,
			m.Adaptability.ChallengeResponse,
		),
		InnovationMindset: InnovationMindsetScore(
			m.InnovationMindset.SideProjects,
			m.InnovationMindset.Contributions,
			m.InnovationMindset.PatentsPublications,
		),
		FeedbackIntegration: FeedbackIntegrationScore(
			m.FeedbackIntegration.PerformanceImprovements,
			m.FeedbackIntegration.MentorshipSought,
			m.FeedbackIntegration.SelfAwareness,
		),
	}
}

// Overall computes the weighted Growth Potential score, rounded to one decimal.
// With sub-scores in [0,100] and weights summing to 100, the result is in [0,100].
func Overall(sub SubScores) float64 {
	total := 0.0
	for factor, weight := range Weights {
		total += sub[factor] * (float64(weight) / 100)
	}
	return math.Round(total*10) / 10
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
