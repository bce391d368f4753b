package candidate

import "fmt"

// EventType is a closed set of timeline event kinds.
type EventType string

const (
	EventRole          EventType = "role"
	EventCertification EventType = "certification"
	EventAchievement   EventType = "achievement"
)

// Valid reports whether the event type is one of the known kinds.
func (t EventType) Valid() bool {
	switch t {
	case EventRole, EventCertification, EventAchievement:
		return true
	}
	return false
}

// TimelineEvent is a single dated entry in a candidate's career history.
// SeniorityLevel is expected on role events; zero means the source omitted it
// and consumers fall back to mid-level.
type TimelineEvent struct {
	Year           int       `json:"year"`
	Event          string    `json:"event"`
	Type           EventType `json:"type"`
	SeniorityLevel int       `json:"seniority_level"`
}

// LearningAgilityInputs are the raw metrics behind the learning agility factor.
type LearningAgilityInputs struct {
	Certifications   float64 `json:"certifications"`
	CoursesCompleted float64 `json:"courses_completed"`
	// LearningVelocity is months between skill acquisitions. Lower is better.
	LearningVelocity float64 `json:"learning_velocity"`
}

// SkillProgressionInputs are the raw metrics behind the skill progression factor.
type SkillProgressionInputs struct {
	RoleTransitions  float64 `json:"role_transitions"`
	TechStackBreadth float64 `json:"tech_stack_breadth"`
	// SeniorityGrowth is years to reach the current level. Lower is better.
	SeniorityGrowth float64 `json:"seniority_growth"`
}

// AdaptabilityInputs are the raw metrics behind the adaptability factor.
type AdaptabilityInputs struct {
	IndustrySwitches float64 `json:"industry_switches"`
	DomainPivots     float64 `json:"domain_pivots"`
	// ChallengeResponse is a 0-10 behavioral interview score.
	ChallengeResponse float64 `json:"challenge_response"`
}

// InnovationMindsetInputs are the raw metrics behind the innovation mindset factor.
type InnovationMindsetInputs struct {
	SideProjects        float64 `json:"side_projects"`
	Contributions       float64 `json:"contributions"`
	PatentsPublications float64 `json:"patents_publications"`
}

// FeedbackIntegrationInputs are the raw metrics behind the feedback integration factor.
type FeedbackIntegrationInputs struct {
	PerformanceImprovements float64 `json:"performance_improvements"`
	// MentorshipSought and SelfAwareness are 0-10 assessments.
	MentorshipSought float64 `json:"mentorship_sought"`
	SelfAwareness    float64 `json:"self_awareness"`
}

// Metrics groups the raw inputs for all five scoring factors.
type Metrics struct {
	LearningAgility     LearningAgilityInputs     `json:"learning_agility"`
	SkillProgression    SkillProgressionInputs    `json:"skill_progression"`
	Adaptability        AdaptabilityInputs        `json:"adaptability"`
	InnovationMindset   InnovationMindsetInputs   `json:"innovation_mindset"`
	FeedbackIntegration FeedbackIntegrationInputs `json:"feedback_integration"`
}

// Record holds everything known about a single candidate. It is immutable for
// the lifetime of a scoring request; all derived values are recomputed from it.
type Record struct {
	Name            string          `json:"name"`
	Role            string          `json:"role"`
	ExperienceYears int             `json:"experience_years"`
	Background      string          `json:"background"`
	Metrics         Metrics         `json:"metrics"`
	Timeline        []TimelineEvent `json:"timeline"`
}

// Validate checks the record shape before it reaches the scoring engine.
// The engine itself assumes valid records.
func (r *Record) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("candidate name is required")
	}
	for _, event := range r.Timeline {
		if !event.Type.Valid() {
			return fmt.Errorf("candidate %q: unknown timeline event type %q", r.Name, event.Type)
		}
	}
	return nil
}

// Set is a collection of candidate records loaded from a dataset.
type Set struct {
	Items []*Record
}

func (s *Set) Len() int {
	return len(s.Items)
}

func (s *Set) Names() []string {
	names := make([]string, 0, len(s.Items))
	for _, record := range s.Items {
		names = append(names, record.Name)
	}
	return names
}

func (s *Set) FindByName(name string) *Record {
	for _, record := range s.Items {
		if record.Name == name {
			return record
		}
	}
	return nil
}

// RemoveByIndex removes a record from the set by index. Does not preserve order.
func (s *Set) RemoveByIndex(idx int) {
	s.Items[idx] = s.Items[len(s.Items)-1]
	s.Items = s.Items[:len(s.Items)-1]
}
