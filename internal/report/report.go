// Package report assembles presentation-ready values from the scoring and
// trajectory engines: ranking summaries, full per-candidate reports, and the
// flattened textual context consumed by the AI assistant.
package report

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/spigell/growth-explorer/internal/candidate"
	"github.com/spigell/growth-explorer/internal/scoring"
	"github.com/spigell/growth-explorer/internal/trajectory"
)

// Summary is one row of the candidate ranking.
type Summary struct {
	Name  string  `json:"name"`
	Role  string  `json:"role"`
	Score float64 `json:"score"`
}

// CandidateReport is the full evaluation of a single candidate.
type CandidateReport struct {
	Name            string             `json:"name"`
	Role            string             `json:"role"`
	ExperienceYears int                `json:"experience_years"`
	SubScores       scoring.SubScores  `json:"sub_scores"`
	Overall         float64            `json:"overall_score"`
	Explanation     string             `json:"explanation"`
	Trajectory      trajectory.Metrics `json:"trajectory"`
}

// Build evaluates a candidate record through both engines.
func Build(record *candidate.Record) CandidateReport {
	sub := scoring.Calculate(record.Metrics)
	overall := scoring.Overall(sub)

	return CandidateReport{
		Name:            record.Name,
		Role:            record.Role,
		ExperienceYears: record.ExperienceYears,
		SubScores:       sub,
		Overall:         overall,
		Explanation:     scoring.Explain(sub, overall),
		Trajectory:      trajectory.Analyze(record),
	}
}

// Summaries returns one summary per candidate, sorted by score descending.
func Summaries(set *candidate.Set) []Summary {
	summaries := make([]Summary, 0, set.Len())
	for _, record := range set.Items {
		sub := scoring.Calculate(record.Metrics)
		summaries = append(summaries, Summary{
			Name:  record.Name,
			Role:  record.Role,
			Score: scoring.Overall(sub),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Score > summaries[j].Score
	})

	return summaries
}

// DumpToTmpFile writes the reports to a temporary JSON file and returns its name.
func DumpToTmpFile(reports []CandidateReport) (string, error) {
	file, err := os.CreateTemp("", "candidate_reports_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reports); err != nil {
		return "", err
	}
	return file.Name(), nil
}
