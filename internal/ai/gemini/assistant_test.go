package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGenerator) Model() string { return "stub-model" }

func TestAsk(t *testing.T) {
	generator := &stubGenerator{response: "She is a strong candidate."}
	assistant := NewAssistant(generator, zap.NewNop(), 0)

	answer, err := assistant.Ask(context.Background(), "CANDIDATE PROFILE: Sarah", "Is she a good fit?")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if answer != "She is a strong candidate." {
		t.Fatalf("unexpected answer: %q", answer)
	}

	if !strings.Contains(generator.lastPrompt, "CANDIDATE PROFILE: Sarah") {
		t.Fatalf("prompt must embed the context block:\n%s", generator.lastPrompt)
	}
	if !strings.Contains(generator.lastPrompt, "Is she a good fit?") {
		t.Fatalf("prompt must embed the question:\n%s", generator.lastPrompt)
	}
	if strings.Contains(generator.lastPrompt, "{{CONTEXT}}") || strings.Contains(generator.lastPrompt, "{{QUESTION}}") {
		t.Fatalf("template placeholders must be replaced:\n%s", generator.lastPrompt)
	}
}

func TestAskRequiresQuestion(t *testing.T) {
	assistant := NewAssistant(&stubGenerator{}, zap.NewNop(), 0)

	if _, err := assistant.Ask(context.Background(), "context", "   "); err == nil {
		t.Fatalf("expected an error for a blank question")
	}
}

func TestAskPropagatesGeneratorError(t *testing.T) {
	generator := &stubGenerator{err: errors.New("rate limited")}
	assistant := NewAssistant(generator, zap.NewNop(), 0)

	if _, err := assistant.Ask(context.Background(), "context", "question"); err == nil {
		t.Fatalf("expected the generator error to propagate")
	}
}

func TestMatchResume(t *testing.T) {
	generator := &stubGenerator{response: `{"score": 82, "fit": true, "analysis": "Strong overlap in required skills."}`}
	assistant := NewAssistant(generator, zap.NewNop(), 0)

	assessment, err := assistant.MatchResume(context.Background(), "resume text", "job description text")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if !assessment.Fit {
		t.Fatalf("expected a fit")
	}
	if assessment.Score != 82 {
		t.Fatalf("expected score 82, got %v", assessment.Score)
	}
	if assessment.Analysis != "Strong overlap in required skills." {
		t.Fatalf("unexpected analysis: %q", assessment.Analysis)
	}
	if assessment.Raw == "" {
		t.Fatalf("expected the raw response to be kept")
	}

	if !strings.Contains(generator.lastPrompt, "resume text") || !strings.Contains(generator.lastPrompt, "job description text") {
		t.Fatalf("prompt must embed the resume and job description:\n%s", generator.lastPrompt)
	}
}

func TestMatchResumeFencedResponse(t *testing.T) {
	generator := &stubGenerator{response: "```json\n{\"score\": 55, \"fit\": false, \"analysis\": \"Missing core skills.\"}\n```"}
	assistant := NewAssistant(generator, zap.NewNop(), 0)

	assessment, err := assistant.MatchResume(context.Background(), "resume", "jd")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if assessment.Fit || assessment.Score != 55 {
		t.Fatalf("unexpected assessment: %+v", assessment)
	}
}

func TestMatchResumeRequiresInputs(t *testing.T) {
	assistant := NewAssistant(&stubGenerator{}, zap.NewNop(), 0)

	if _, err := assistant.MatchResume(context.Background(), "", "jd"); err == nil {
		t.Fatalf("expected an error for an empty resume")
	}
	if _, err := assistant.MatchResume(context.Background(), "resume", " "); err == nil {
		t.Fatalf("expected an error for an empty job description")
	}
}

func TestMatchResumeInvalidJSON(t *testing.T) {
	generator := &stubGenerator{response: "I cannot answer that."}
	assistant := NewAssistant(generator, zap.NewNop(), 0)

	if _, err := assistant.MatchResume(context.Background(), "resume", "jd"); err == nil {
		t.Fatalf("expected a parse error for a non-JSON response")
	}
}

func TestParseMatchResponseCoercion(t *testing.T) {
	cases := []struct {
		name      string
		raw       string
		wantFit   bool
		wantScore float64
	}{
		{"string score and fit", `{"score": "73", "fit": "yes", "analysis": "ok"}`, true, 73},
		{"numeric fit", `{"score": 10, "fit": 1, "analysis": "ok"}`, true, 10},
		{"missing fields", `{"analysis": "ok"}`, false, 0},
		{"unparseable score", `{"score": "high", "fit": false, "analysis": "ok"}`, false, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseMatchResponse(tc.raw)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if got.Fit != tc.wantFit || got.Score != tc.wantScore {
				t.Fatalf("expected fit=%v score=%v, got %+v", tc.wantFit, tc.wantScore, got)
			}
		})
	}
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  {\"a\": 1}  ", `{"a": 1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractJSON(tc.raw); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
