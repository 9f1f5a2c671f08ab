package models

// MatchResult is the model's verdict for a single job posting.
type MatchResult struct {
	JobID          string   `json:"job_id"`
	JobTitle       string   `json:"job_title"`
	MatchScore     float64  `json:"match_score"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	Recommendation string   `json:"recommendation"`
}

// MatchReport is the full matching outcome for one CV against a job list.
// BestMatch is always the highest-scoring entry of AllMatches and
// OverallScore equals its score; the normalizer enforces both.
type MatchReport struct {
	OverallScore *float64      `json:"overall_score"`
	BestMatch    *MatchResult  `json:"best_match"`
	AllMatches   []MatchResult `json:"all_matches"`
}
