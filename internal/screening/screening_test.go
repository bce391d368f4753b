package screening

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/spigell/growth-explorer/internal/ai"
	"github.com/spigell/growth-explorer/internal/candidate"
)

type stubAssistant struct {
	assessment ai.MatchAssessment
	err        error
	calls      int
}

func (s *stubAssistant) Ask(context.Context, string, string) (string, error) {
	return "stub answer", nil
}

func (s *stubAssistant) MatchResume(context.Context, string, string) (*ai.MatchAssessment, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	result := s.assessment
	return &result, nil
}

func sampleSet(t *testing.T) *candidate.Set {
	t.Helper()
	set, err := candidate.Default()
	if err != nil {
		t.Fatalf("loading the embedded dataset: %s", err)
	}
	return set
}

func run(t *testing.T, cfg *Config, deps Deps, steps []Filter, set *candidate.Set) (*candidate.Set, map[string]*ai.MatchAssessment) {
	t.Helper()
	left, assessments, err := Run(context.Background(), cfg, deps, steps, set)
	if err != nil {
		t.Fatalf("running screening: %s", err)
	}
	return left, assessments
}

func TestMinScoreFilter(t *testing.T) {
	set := sampleSet(t)
	deps := Deps{Logger: zap.NewNop()}

	left, _ := run(t, &Config{MinScore: 80}, deps, []Filter{NewMinScore()}, set)

	if left.Len() != 2 {
		t.Fatalf("expected 2 candidates above 80, got %v", left.Names())
	}
	if left.FindByName("Marcus Rodriguez") != nil {
		t.Fatalf("expected Marcus Rodriguez to be dropped")
	}
}

func TestMinScoreFilterZeroIsPassthrough(t *testing.T) {
	set := sampleSet(t)

	left, _ := run(t, &Config{}, Deps{}, []Filter{NewMinScore()}, set)
	if left.Len() != set.Len() {
		t.Fatalf("expected all candidates to pass, got %d", left.Len())
	}
}

func TestMinScoreFilterValidation(t *testing.T) {
	set := sampleSet(t)

	_, _, err := Run(context.Background(), &Config{MinScore: 150}, Deps{}, []Filter{NewMinScore()}, set)
	if err == nil {
		t.Fatalf("expected a validation error for min score above 100")
	}
}

func TestExperienceFilter(t *testing.T) {
	set := sampleSet(t)
	deps := Deps{Logger: zap.NewNop()}

	left, _ := run(t, &Config{MinExperience: 5}, deps, []Filter{NewExperience()}, set)

	if left.Len() != 2 {
		t.Fatalf("expected 2 candidates with 5+ years, got %v", left.Names())
	}
	if left.FindByName("Aisha Patel") != nil {
		t.Fatalf("expected Aisha Patel to be dropped")
	}
}

func TestExperienceFilterValidation(t *testing.T) {
	set := sampleSet(t)

	_, _, err := Run(context.Background(), &Config{MinExperience: -1}, Deps{}, []Filter{NewExperience()}, set)
	if err == nil {
		t.Fatalf("expected a validation error for negative experience")
	}
}

func TestPatternFilter(t *testing.T) {
	set := sampleSet(t)
	deps := Deps{Logger: zap.NewNop()}

	left, _ := run(t, &Config{Patterns: []string{"Lateral Explorer"}}, deps, []Filter{NewPattern()}, set)

	if left.Len() != 2 {
		t.Fatalf("expected 2 lateral explorers, got %v", left.Names())
	}
	if left.FindByName("Sarah Chen") != nil {
		t.Fatalf("expected Sarah Chen to be dropped")
	}
}

func TestPatternFilterIsCaseInsensitive(t *testing.T) {
	set := sampleSet(t)

	left, _ := run(t, &Config{Patterns: []string{"  lateral explorer "}}, Deps{}, []Filter{NewPattern()}, set)
	if left.Len() != 2 {
		t.Fatalf("expected case-insensitive pattern match, got %v", left.Names())
	}
}

func TestAIFitFilterApproves(t *testing.T) {
	set := sampleSet(t)
	assistant := &stubAssistant{assessment: ai.MatchAssessment{Fit: true, Score: 85, Analysis: "good"}}
	cfg := &Config{
		JobDescription: "Senior engineer for a growing platform team.",
		AI:             &AIConfig{Enabled: true},
	}

	left, assessments := run(t, cfg, Deps{Logger: zap.NewNop(), Assistant: assistant}, []Filter{NewAIFit()}, set)

	if left.Len() != set.Len() {
		t.Fatalf("expected all candidates to pass, got %v", left.Names())
	}
	if assistant.calls != set.Len() {
		t.Fatalf("expected one assistant call per candidate, got %d", assistant.calls)
	}
	if len(assessments) != set.Len() {
		t.Fatalf("expected an assessment per candidate, got %d", len(assessments))
	}
}

func TestAIFitFilterMinimumScoreOverride(t *testing.T) {
	set := sampleSet(t)
	assistant := &stubAssistant{assessment: ai.MatchAssessment{Fit: true, Score: 85}}
	cfg := &Config{
		JobDescription: "Principal role.",
		AI:             &AIConfig{Enabled: true, MinimumFitScore: 90},
	}

	left, assessments := run(t, cfg, Deps{Assistant: assistant}, []Filter{NewAIFit()}, set)

	if left.Len() != 0 {
		t.Fatalf("expected all candidates below the fit floor to be dropped, got %v", left.Names())
	}
	if len(assessments) != set.Len() {
		t.Fatalf("assessments must be collected even for dropped candidates, got %d", len(assessments))
	}
}

func TestAIFitFilterKeepsCandidateOnError(t *testing.T) {
	set := sampleSet(t)
	assistant := &stubAssistant{err: errors.New("quota exceeded")}
	cfg := &Config{
		JobDescription: "Any role.",
		AI:             &AIConfig{Enabled: true},
	}

	left, assessments := run(t, cfg, Deps{Logger: zap.NewNop(), Assistant: assistant}, []Filter{NewAIFit()}, set)

	if left.Len() != set.Len() {
		t.Fatalf("candidates must be kept when the assistant fails, got %v", left.Names())
	}
	if len(assessments) != 0 {
		t.Fatalf("expected no assessments on error, got %d", len(assessments))
	}
}

func TestAIFitFilterDisablesItselfWithoutConfig(t *testing.T) {
	set := sampleSet(t)
	filter := NewAIFit()

	left, _ := run(t, &Config{}, Deps{}, []Filter{filter}, set)

	if filter.IsEnabled() {
		t.Fatalf("expected the filter to disable itself without AI configuration")
	}
	if left.Len() != set.Len() {
		t.Fatalf("expected all candidates to pass, got %d", left.Len())
	}
}

func TestAIFitFilterRequiresJobDescription(t *testing.T) {
	set := sampleSet(t)
	cfg := &Config{AI: &AIConfig{Enabled: true}}

	_, _, err := Run(context.Background(), cfg, Deps{}, []Filter{NewAIFit()}, set)
	if err == nil {
		t.Fatalf("expected an error when the job description is missing")
	}
}

func TestAIFitFilterSkipsWithoutAssistant(t *testing.T) {
	set := sampleSet(t)
	cfg := &Config{
		JobDescription: "Any role.",
		AI:             &AIConfig{Enabled: true},
	}

	left, _ := run(t, cfg, Deps{Logger: zap.NewNop()}, []Filter{NewAIFit()}, set)
	if left.Len() != set.Len() {
		t.Fatalf("expected a passthrough without an assistant, got %d", left.Len())
	}
}

func TestRunChainsFilters(t *testing.T) {
	set := sampleSet(t)
	cfg := &Config{MinScore: 80, MinExperience: 5}
	steps := []Filter{NewMinScore(), NewExperience(), NewPattern(), NewAIFit()}

	left, _ := run(t, cfg, Deps{Logger: zap.NewNop()}, steps, set)

	if left.Len() != 1 || left.FindByName("Sarah Chen") == nil {
		t.Fatalf("expected only Sarah Chen to survive, got %v", left.Names())
	}
}

func TestDescribe(t *testing.T) {
	steps := []Filter{NewMinScore(), NewExperience(), NewPattern(), NewAIFit()}

	statuses := Describe(steps)
	if len(statuses) != len(steps) {
		t.Fatalf("expected %d statuses, got %d", len(steps), len(statuses))
	}

	seen := map[string]bool{}
	for _, status := range statuses {
		seen[status.Name] = true
	}
	for _, name := range []string{"min_score", "experience", "pattern", "ai_fit"} {
		if !seen[name] {
			t.Fatalf("missing status for %q: %v", name, statuses)
		}
	}
}
