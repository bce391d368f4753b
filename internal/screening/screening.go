// Package screening runs a candidate pool through a sequence of filters:
// score and experience floors, trajectory pattern selection, and an optional
// AI-based fit check against a job description.
package screening

import (
	"context"
	"fmt"

	"github.com/spigell/growth-explorer/internal/ai"
	"github.com/spigell/growth-explorer/internal/candidate"
	"go.uber.org/zap"
)

// Filter represents a single screening step applied to the candidate pool.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(ctx context.Context, deps Deps, set *candidate.Set) (*candidate.Set, Step, error)
}

// Deps aggregates dependencies shared across all screening steps.
type Deps struct {
	Logger    *zap.Logger
	Assistant ai.Assistant
}

// Step describes the result of executing a screening step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Config contains configuration settings consumed by the filters.
type Config struct {
	MinScore       float64
	MinExperience  int
	Patterns       []string
	JobDescription string
	AI             *AIConfig
}

// AIConfig stores AI-related configuration used by the fit filter.
type AIConfig struct {
	Enabled         bool
	MinimumFitScore float64
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

// statusProvider is implemented by filters that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// Run executes the supplied filters sequentially, returning the remaining
// candidates and any AI assessments collected along the way.
func Run(ctx context.Context, cfg *Config, deps Deps, steps []Filter, set *candidate.Set) (*candidate.Set, map[string]*ai.MatchAssessment, error) {
	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	assessments := make(map[string]*ai.MatchAssessment)
	for _, step := range steps {
		if !step.IsEnabled() {
			if deps.Logger != nil {
				deps.Logger.Info("filter disabled", zap.String("name", step.Name()))
			}
			continue
		}

		next, info, err := step.Apply(ctx, deps, set)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Info("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		set = next

		if collector, ok := step.(interface {
			Assessments() map[string]*ai.MatchAssessment
		}); ok {
			for name, assessment := range collector.Assessments() {
				assessments[name] = assessment
			}
		}
	}

	return set, assessments, nil
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}
