package report

import (
	"encoding/json"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/spigell/growth-explorer/internal/candidate"
	"github.com/spigell/growth-explorer/internal/scoring"
)

func sampleSet(t *testing.T) *candidate.Set {
	t.Helper()
	set, err := candidate.Default()
	if err != nil {
		t.Fatalf("loading the embedded dataset: %s", err)
	}
	return set
}

func TestSummariesSortedByScore(t *testing.T) {
	set := sampleSet(t)

	summaries := Summaries(set)
	if len(summaries) != set.Len() {
		t.Fatalf("expected %d summaries, got %d", set.Len(), len(summaries))
	}

	for i := 1; i < len(summaries); i++ {
		if summaries[i].Score > summaries[i-1].Score {
			t.Fatalf("summaries are not sorted by score descending: %v", summaries)
		}
	}

	if summaries[0].Name != "Sarah Chen" {
		t.Fatalf("expected Sarah Chen first, got %s", summaries[0].Name)
	}
	if summaries[0].Score != 92.8 {
		t.Fatalf("expected score 92.8, got %v", summaries[0].Score)
	}
	if summaries[len(summaries)-1].Name != "Marcus Rodriguez" {
		t.Fatalf("expected Marcus Rodriguez last, got %s", summaries[len(summaries)-1].Name)
	}
}

func TestBuild(t *testing.T) {
	set := sampleSet(t)
	record := set.FindByName("Sarah Chen")

	got := Build(record)

	if got.Name != record.Name || got.Role != record.Role {
		t.Fatalf("report identity mismatch: %+v", got)
	}
	if got.Overall != 92.8 {
		t.Fatalf("expected overall 92.8, got %v", got.Overall)
	}
	if len(got.SubScores) != len(scoring.Factors()) {
		t.Fatalf("expected a sub-score per factor, got %v", got.SubScores)
	}
	if got.Explanation == "" {
		t.Fatalf("expected an explanation")
	}
	if len(got.Trajectory.Progression) == 0 {
		t.Fatalf("expected trajectory progression entries")
	}

	again := Build(record)
	if !reflect.DeepEqual(got, again) {
		t.Fatalf("expected identical reports for the same record")
	}
}

func TestCandidateContext(t *testing.T) {
	set := sampleSet(t)
	record := set.FindByName("Sarah Chen")
	sub := scoring.Calculate(record.Metrics)
	overall := scoring.Overall(sub)

	got := CandidateContext(record, sub, overall)

	for _, fragment := range []string{
		"CANDIDATE PROFILE: Sarah Chen",
		"Role: Senior Software Engineer",
		"Experience: 6 years",
		"GROWTH POTENTIAL SCORE: 92.8/100",
		"SUB-FACTOR SCORES:",
		"- Learning Agility: 88.0/100 (Weight: 30%)",
		"DETAILED METRICS:",
		"  - Certifications: 5",
		"CAREER TIMELINE:",
	} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("expected %q in context:\n%s", fragment, got)
		}
	}

	first := strings.Index(got, "- 2019:")
	last := strings.Index(got, "- 2024:")
	if first == -1 || last == -1 || first > last {
		t.Fatalf("timeline must be sorted by year:\n%s", got)
	}
}

func TestPoolContext(t *testing.T) {
	set := sampleSet(t)

	got := PoolContext(set)
	for _, name := range set.Names() {
		if !strings.Contains(got, name+":") {
			t.Fatalf("expected %q in pool context:\n%s", name, got)
		}
	}
	if !strings.Contains(got, "OVERVIEW OF ALL CANDIDATES:") {
		t.Fatalf("missing overview header:\n%s", got)
	}
}

func TestDumpToTmpFile(t *testing.T) {
	set := sampleSet(t)

	reports := make([]CandidateReport, 0, set.Len())
	for _, record := range set.Items {
		reports = append(reports, Build(record))
	}

	filename, err := DumpToTmpFile(reports)
	if err != nil {
		t.Fatalf("dumping reports: %s", err)
	}
	defer os.Remove(filename)

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("reading dumped file: %s", err)
	}

	var decoded []CandidateReport
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("dumped file is not valid JSON: %s", err)
	}
	if len(decoded) != len(reports) {
		t.Fatalf("expected %d reports, got %d", len(reports), len(decoded))
	}
}
