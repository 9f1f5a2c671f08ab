package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"hirewise/cv-matcher/internal/models"
)

const fenceDelimiter = "```"

// Placeholder content for a synthesized best match. The zero score and the
// visible text let callers detect a degraded report.
const (
	fallbackStrength       = "Analysis unavailable - please retry"
	fallbackWeakness       = "System error"
	fallbackRecommendation = "Please try again later."
)

// RecoverJSON applies the strict-then-lenient parsing ladder to a raw
// completion blob: strict decode of the whole text, then a ```json-labeled
// fenced block, then any generic fenced block. When nothing decodes, the
// returned error wraps ErrResponseNotJSON and carries the original strict
// decode failure.
func RecoverJSON(raw string) ([]byte, error) {
	trimmed := strings.TrimSpace(raw)

	var probe any
	strictErr := json.Unmarshal([]byte(trimmed), &probe)
	if strictErr == nil {
		return []byte(trimmed), nil
	}

	if block, ok := fencedBlock(trimmed, "json"); ok {
		if json.Valid([]byte(block)) {
			return []byte(block), nil
		}
	}

	if block, ok := fencedBlock(trimmed, ""); ok {
		if json.Valid([]byte(block)) {
			return []byte(block), nil
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrResponseNotJSON, strictErr)
}

// fencedBlock returns the trimmed text between the first opening delimiter
// (optionally labeled) and the next closing delimiter.
func fencedBlock(text, label string) (string, bool) {
	marker := fenceDelimiter + label
	start := strings.Index(text, marker)
	if start == -1 {
		return "", false
	}

	rest := text[start+len(marker):]
	end := strings.Index(rest, fenceDelimiter)
	if end == -1 {
		return "", false
	}

	return strings.TrimSpace(rest[:end]), true
}

// DecodeJSONObject recovers JSON from a raw completion blob and confirms it
// is an object rather than a list or scalar.
func DecodeJSONObject(raw string) (map[string]any, error) {
	recovered, err := RecoverJSON(raw)
	if err != nil {
		return nil, err
	}

	return ensureObject(recovered)
}

// NormalizeProfile decodes a parse-cv completion into a candidate profile.
func NormalizeProfile(raw string) (*models.CandidateProfile, error) {
	recovered, err := RecoverJSON(raw)
	if err != nil {
		return nil, err
	}

	if _, err := ensureObject(recovered); err != nil {
		return nil, err
	}

	var profile models.CandidateProfile
	if err := json.Unmarshal(recovered, &profile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if profile.Skills == nil {
		profile.Skills = []string{}
	}

	return &profile, nil
}

// NormalizeMatchReport decodes a match completion and repairs it into the
// response contract. jobs is the submitted job list, used for the fallback
// best match; it must be non-empty.
func NormalizeMatchReport(raw string, jobs []models.JobPosting) (*models.MatchReport, error) {
	recovered, err := RecoverJSON(raw)
	if err != nil {
		return nil, err
	}

	if _, err := ensureObject(recovered); err != nil {
		return nil, err
	}

	var report models.MatchReport
	if err := json.Unmarshal(recovered, &report); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return RepairMatchReport(&report, jobs), nil
}

// RepairMatchReport guarantees the report shape the caller was promised:
// best_match always present, all_matches sorted descending by score with
// ties keeping input order, best_match equal to the top entry and
// overall_score recomputed from it. The model's own claim about the best
// job is never trusted over the recomputed maximum. Applying the repair to
// an already-repaired report changes nothing.
func RepairMatchReport(report *models.MatchReport, jobs []models.JobPosting) *models.MatchReport {
	if report.BestMatch == nil {
		report.BestMatch = &models.MatchResult{
			JobID:          jobs[0].ID,
			JobTitle:       jobs[0].Title,
			MatchScore:     0,
			Strengths:      []string{fallbackStrength},
			Weaknesses:     []string{fallbackWeakness},
			Recommendation: fallbackRecommendation,
		}
	}

	if len(report.AllMatches) == 0 {
		report.AllMatches = []models.MatchResult{*report.BestMatch}
	}

	sort.SliceStable(report.AllMatches, func(i, j int) bool {
		return report.AllMatches[i].MatchScore > report.AllMatches[j].MatchScore
	})

	best := report.AllMatches[0]
	report.BestMatch = &best

	score := best.MatchScore
	report.OverallScore = &score

	return report
}

// StripMarkdownFences removes a wrapping code fence from a plain-text
// completion, for operations whose output is formatted text rather than JSON.
func StripMarkdownFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, fenceDelimiter) {
		s = strings.TrimPrefix(s, fenceDelimiter+"markdown")
		s = strings.TrimPrefix(s, fenceDelimiter)
		if idx := strings.LastIndex(s, fenceDelimiter); idx != -1 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}

func ensureObject(recovered []byte) (map[string]any, error) {
	var value any
	if err := json.Unmarshal(recovered, &value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseNotJSON, err)
	}

	object, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON object, got %T", ErrMalformedResponse, value)
	}

	return object, nil
}
