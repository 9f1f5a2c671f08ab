package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"hirewise/cv-matcher/internal/models"
)

// Sampling settings per operation. Extraction and matching want
// consistency; generation wants some variety.
const (
	parseTemperature     = 0.3
	matchTemperature     = 0.2
	generateTemperature  = 0.7
	parseMaxTokens       = 2000
	matchMaxTokens       = 4000
	jobDescMaxTokens     = 2000
	interviewMaxTokens   = 2500
)

// Analyzer orchestrates the document extractor, prompt builder, completion
// client and response normalizer behind the HTTP surface.
type Analyzer interface {
	ParseCV(ctx context.Context, filename string, data []byte) (*models.ParsedCV, error)
	MatchJobs(ctx context.Context, req models.MatchRequest) (*models.MatchReport, error)
	GenerateJobDescription(ctx context.Context, req models.GenerateJobDescriptionRequest) (*models.GeneratedJobDescription, error)
	GenerateInterviewQuestions(ctx context.Context, req models.GenerateInterviewQuestionsRequest) (*models.InterviewQuestions, error)
}

type analyzer struct {
	completions CompletionClient
	extractor   TextExtractor
	prompts     *PromptBuilder
	log         *zap.Logger
}

// NewAnalyzer builds the orchestrator. completions may be nil when no API
// credential is configured; every operation then fails fast with
// ErrNotConfigured while the process keeps serving health checks.
func NewAnalyzer(
	completions CompletionClient,
	extractor TextExtractor,
	prompts *PromptBuilder,
	log *zap.Logger,
) Analyzer {
	return &analyzer{
		completions: completions,
		extractor:   extractor,
		prompts:     prompts,
		log:         log,
	}
}

// ParseCV implements Analyzer.
func (a *analyzer) ParseCV(ctx context.Context, filename string, data []byte) (*models.ParsedCV, error) {
	if a.completions == nil {
		return nil, ErrNotConfigured
	}

	text, err := a.extractor.Extract(data, filename)
	if err != nil {
		return nil, err
	}

	a.log.Info("cv text extracted",
		zap.String("filename", filename),
		zap.Int("text_length", len(text)),
	)

	response, err := a.completions.Complete(ctx, CompletionRequest{
		Messages:    a.prompts.BuildParseCVMessages(text),
		Temperature: parseTemperature,
		MaxTokens:   parseMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	profile, err := NormalizeProfile(response)
	if err != nil {
		return nil, err
	}

	return &models.ParsedCV{
		Profile:  *profile,
		FullText: text,
	}, nil
}

// MatchJobs implements Analyzer.
func (a *analyzer) MatchJobs(ctx context.Context, req models.MatchRequest) (*models.MatchReport, error) {
	if a.completions == nil {
		return nil, ErrNotConfigured
	}

	if len(req.Jobs) == 0 {
		return nil, fmt.Errorf("job list must not be empty")
	}

	seen := make(map[string]struct{}, len(req.Jobs))
	for _, job := range req.Jobs {
		if _, dup := seen[job.ID]; dup {
			return nil, fmt.Errorf("duplicate job id: %s", job.ID)
		}
		seen[job.ID] = struct{}{}
	}

	response, err := a.completions.Complete(ctx, CompletionRequest{
		Messages:    a.prompts.BuildMatchMessages(req),
		Temperature: matchTemperature,
		MaxTokens:   matchMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	report, err := NormalizeMatchReport(response, req.Jobs)
	if err != nil {
		return nil, err
	}

	a.log.Info("cv-job matching completed",
		zap.Int("jobs", len(req.Jobs)),
		zap.Float64("overall_score", *report.OverallScore),
		zap.String("best_match", report.BestMatch.JobID),
	)

	return report, nil
}

// GenerateJobDescription implements Analyzer.
func (a *analyzer) GenerateJobDescription(ctx context.Context, req models.GenerateJobDescriptionRequest) (*models.GeneratedJobDescription, error) {
	if a.completions == nil {
		return nil, ErrNotConfigured
	}

	response, err := a.completions.Complete(ctx, CompletionRequest{
		Messages:    a.prompts.BuildJobDescriptionMessages(req),
		Temperature: generateTemperature,
		MaxTokens:   jobDescMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	object, err := DecodeJSONObject(response)
	if err != nil {
		return nil, err
	}

	description, dOK := object["description"].(string)
	requirements, rOK := object["requirements"].(string)
	benefits, bOK := object["benefits"].(string)
	if !dOK || !rOK || !bOK {
		return nil, fmt.Errorf("%w: missing description, requirements or benefits", ErrMalformedResponse)
	}

	return &models.GeneratedJobDescription{
		Description:  description,
		Requirements: requirements,
		Benefits:     benefits,
	}, nil
}

// GenerateInterviewQuestions implements Analyzer. The model returns a
// formatted markdown document, not JSON.
func (a *analyzer) GenerateInterviewQuestions(ctx context.Context, req models.GenerateInterviewQuestionsRequest) (*models.InterviewQuestions, error) {
	if a.completions == nil {
		return nil, ErrNotConfigured
	}

	response, err := a.completions.Complete(ctx, CompletionRequest{
		Messages:    a.prompts.BuildInterviewQuestionMessages(req),
		Temperature: generateTemperature,
		MaxTokens:   interviewMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	questions := StripMarkdownFences(response)
	if strings.TrimSpace(questions) == "" {
		return nil, fmt.Errorf("%w: empty question document", ErrMalformedResponse)
	}

	return &models.InterviewQuestions{
		Questions:  questions,
		JobID:      req.JobID,
		JobTitle:   req.JobTitle,
		Department: req.Department,
		Level:      req.Level,
	}, nil
}
