package ai

import "context"

// MatchAssessment is the result of matching a resume against a job description.
type MatchAssessment struct {
	Fit      bool
	Score    float64
	Analysis string
	Raw      string
}

// Assistant answers questions about candidates and matches resumes to job
// descriptions. Implementations call an external language-model service.
type Assistant interface {
	Ask(ctx context.Context, contextBlock, question string) (string, error)
	MatchResume(ctx context.Context, resume, jobDescription string) (*MatchAssessment, error)
}
