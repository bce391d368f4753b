package screening

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/growth-explorer/internal/ai"
	"github.com/spigell/growth-explorer/internal/candidate"
	"github.com/spigell/growth-explorer/internal/report"
	"github.com/spigell/growth-explorer/internal/scoring"
	"github.com/spigell/growth-explorer/internal/trajectory"
)

type minScoreFilter struct {
	minScore float64
}

// NewMinScore creates a filter that drops candidates whose overall Growth
// Potential score is below the configured floor.
func NewMinScore() Filter {
	return &minScoreFilter{}
}

func (f *minScoreFilter) Name() string { return "min_score" }

func (f *minScoreFilter) Disable(string) {}

func (f *minScoreFilter) IsEnabled() bool { return true }

func (f *minScoreFilter) Validate(cfg *Config) error {
	f.minScore = 0
	if cfg != nil {
		if cfg.MinScore < 0 || cfg.MinScore > 100 {
			return fmt.Errorf("minimum score must be in [0,100], got %v", cfg.MinScore)
		}
		f.minScore = cfg.MinScore
	}
	return nil
}

func (f *minScoreFilter) Apply(_ context.Context, deps Deps, set *candidate.Set) (*candidate.Set, Step, error) {
	initial := set.Len()
	if f.minScore == 0 {
		return set, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	kept := make([]*candidate.Record, 0, initial)
	var dropped []string
	for _, record := range set.Items {
		overall := scoring.Overall(scoring.Calculate(record.Metrics))
		if overall < f.minScore {
			dropped = append(dropped, record.Name)
			continue
		}
		kept = append(kept, record)
	}

	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("excluding candidates below minimum score",
			zap.Float64("min_score", f.minScore),
			zap.Strings("excluded_candidates", dropped),
			zap.Int("candidates_left", len(kept)),
		)
	}

	return &candidate.Set{Items: kept}, Step{Initial: initial, Dropped: len(dropped), Left: len(kept)}, nil
}

func (f *minScoreFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: true,
		Details: map[string]string{"min_score": fmt.Sprintf("%.1f", f.minScore)},
	}
}

type experienceFilter struct {
	minYears int
}

// NewExperience creates a filter that drops candidates with less experience
// than the configured minimum.
func NewExperience() Filter {
	return &experienceFilter{}
}

func (f *experienceFilter) Name() string { return "experience" }

func (f *experienceFilter) Disable(string) {}

func (f *experienceFilter) IsEnabled() bool { return true }

func (f *experienceFilter) Validate(cfg *Config) error {
	f.minYears = 0
	if cfg != nil {
		if cfg.MinExperience < 0 {
			return fmt.Errorf("minimum experience must not be negative, got %d", cfg.MinExperience)
		}
		f.minYears = cfg.MinExperience
	}
	return nil
}

func (f *experienceFilter) Apply(_ context.Context, deps Deps, set *candidate.Set) (*candidate.Set, Step, error) {
	initial := set.Len()
	if f.minYears == 0 {
		return set, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	kept := make([]*candidate.Record, 0, initial)
	var dropped []string
	for _, record := range set.Items {
		if record.ExperienceYears < f.minYears {
			dropped = append(dropped, record.Name)
			continue
		}
		kept = append(kept, record)
	}

	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("excluding candidates below minimum experience",
			zap.Int("min_experience_years", f.minYears),
			zap.Strings("excluded_candidates", dropped),
			zap.Int("candidates_left", len(kept)),
		)
	}

	return &candidate.Set{Items: kept}, Step{Initial: initial, Dropped: len(dropped), Left: len(kept)}, nil
}

func (f *experienceFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: true,
		Details: map[string]string{"min_experience_years": strconv.Itoa(f.minYears)},
	}
}

type patternFilter struct {
	patterns []string
}

// NewPattern creates a filter that keeps only candidates whose trajectory
// pattern is in the configured list.
func NewPattern() Filter {
	return &patternFilter{}
}

func (f *patternFilter) Name() string { return "pattern" }

func (f *patternFilter) Disable(string) {}

func (f *patternFilter) IsEnabled() bool { return true }

func (f *patternFilter) Validate(cfg *Config) error {
	f.patterns = nil
	if cfg != nil {
		f.patterns = append(f.patterns, cfg.Patterns...)
	}
	return nil
}

func (f *patternFilter) Apply(_ context.Context, deps Deps, set *candidate.Set) (*candidate.Set, Step, error) {
	initial := set.Len()
	if len(f.patterns) == 0 {
		return set, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	allowed := make(map[string]struct{}, len(f.patterns))
	for _, p := range f.patterns {
		allowed[strings.ToLower(strings.TrimSpace(p))] = struct{}{}
	}

	kept := make([]*candidate.Record, 0, initial)
	var dropped []string
	for _, record := range set.Items {
		progression := trajectory.Progression(record.Timeline)
		promotions := trajectory.Promotions(progression)
		pattern := trajectory.Classify(progression, record.ExperienceYears, promotions)

		if _, ok := allowed[strings.ToLower(string(pattern))]; !ok {
			dropped = append(dropped, record.Name)
			continue
		}
		kept = append(kept, record)
	}

	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("excluding candidates by trajectory pattern",
			zap.Strings("allowed_patterns", f.patterns),
			zap.Strings("excluded_candidates", dropped),
			zap.Int("candidates_left", len(kept)),
		)
	}

	return &candidate.Set{Items: kept}, Step{Initial: initial, Dropped: len(dropped), Left: len(kept)}, nil
}

func (f *patternFilter) Status() Status {
	details := map[string]string{}
	if len(f.patterns) > 0 {
		details["patterns"] = strings.Join(f.patterns, ",")
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}

type aiFitFilter struct {
	disabled    bool
	reason      string
	config      *AIConfig
	jobDesc     string
	assessments map[string]*ai.MatchAssessment
}

// NewAIFit creates the AI-based fit filter. It stays inert until enabled via
// configuration and an assistant is provided.
func NewAIFit() Filter {
	return &aiFitFilter{}
}

func (f *aiFitFilter) Name() string { return "ai_fit" }

func (f *aiFitFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *aiFitFilter) IsEnabled() bool { return !f.disabled }

func (f *aiFitFilter) Validate(cfg *Config) error {
	f.config = nil
	f.jobDesc = ""
	if cfg != nil {
		f.config = cfg.AI
		f.jobDesc = strings.TrimSpace(cfg.JobDescription)
	}
	if !f.IsEnabled() {
		return nil
	}
	if f.config == nil || !f.config.Enabled {
		f.Disable("ai fit filter is not enabled in configuration")
		return nil
	}
	if f.jobDesc == "" {
		return fmt.Errorf("job description is required when ai fit filter is enabled")
	}
	return nil
}

func (f *aiFitFilter) Apply(ctx context.Context, deps Deps, set *candidate.Set) (*candidate.Set, Step, error) {
	initial := set.Len()
	if deps.Assistant == nil {
		if deps.Logger != nil {
			deps.Logger.Info("ai assistant is not configured; skipping ai_fit filter")
		}
		return set, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	kept := make([]*candidate.Record, 0, initial)
	f.assessments = make(map[string]*ai.MatchAssessment, initial)

	for _, record := range set.Items {
		sub := scoring.Calculate(record.Metrics)
		profile := report.CandidateContext(record, sub, scoring.Overall(sub))

		assessment, err := deps.Assistant.MatchResume(ctx, profile, f.jobDesc)
		if err != nil {
			if deps.Logger != nil {
				deps.Logger.Warn("AI evaluation failed; keeping candidate",
					zap.String("candidate", record.Name),
					zap.Error(err),
				)
			}
			kept = append(kept, record)
			continue
		}

		f.assessments[record.Name] = assessment

		fit := assessment.Fit
		if f.config != nil && f.config.MinimumFitScore > 0 && assessment.Score < f.config.MinimumFitScore {
			fit = false
		}

		if !fit {
			if deps.Logger != nil {
				deps.Logger.Info("candidate rejected by AI fit check",
					zap.String("candidate", record.Name),
					zap.Float64("ai_score", assessment.Score),
				)
			}
			continue
		}

		if deps.Logger != nil {
			deps.Logger.Info("candidate approved by AI fit check",
				zap.String("candidate", record.Name),
				zap.Float64("ai_score", assessment.Score),
			)
		}
		kept = append(kept, record)
	}

	return &candidate.Set{Items: kept}, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}, nil
}

func (f *aiFitFilter) Assessments() map[string]*ai.MatchAssessment {
	if f.assessments == nil {
		return map[string]*ai.MatchAssessment{}
	}
	return f.assessments
}

func (f *aiFitFilter) Status() Status {
	details := map[string]string{}
	if f.config != nil {
		details["minimum_fit_score"] = fmt.Sprintf("%.2f", f.config.MinimumFitScore)
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
