package services

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"hirewise/cv-matcher/internal/models"
)

func jobs(ids ...string) []models.JobPosting {
	out := make([]models.JobPosting, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.JobPosting{ID: id, Title: "Job " + id})
	}
	return out
}

func TestRecoverJSONDirect(t *testing.T) {
	raw := `{"overall_score": 42}`

	recovered, err := RecoverJSON(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(recovered) != raw {
		t.Fatalf("expected identity recovery, got %s", recovered)
	}
}

func TestRecoverJSONLabeledFence(t *testing.T) {
	raw := "Here is the result:\n```json\n{\"a\": 1}\n```\nHope that helps!"

	recovered, err := RecoverJSON(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(recovered) != `{"a": 1}` {
		t.Fatalf("unexpected recovered JSON: %s", recovered)
	}
}

func TestRecoverJSONGenericFence(t *testing.T) {
	raw := "Sure:\n```\n{\"a\": 1}\n```"

	recovered, err := RecoverJSON(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(recovered) != `{"a": 1}` {
		t.Fatalf("unexpected recovered JSON: %s", recovered)
	}
}

func TestRecoverJSONPicksLabeledFenceAmongSeveral(t *testing.T) {
	raw := "```\nnot json at all\n```\nsome prose\n```json\n{\"a\": 2}\n```"

	recovered, err := RecoverJSON(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(recovered) != `{"a": 2}` {
		t.Fatalf("unexpected recovered JSON: %s", recovered)
	}
}

func TestRecoverJSONFailsOnProse(t *testing.T) {
	_, err := RecoverJSON("Sorry, I cannot help with that.")
	if !errors.Is(err, ErrResponseNotJSON) {
		t.Fatalf("expected ErrResponseNotJSON, got %v", err)
	}
}

func TestRecoverJSONFailsOnTruncatedFencedJSON(t *testing.T) {
	_, err := RecoverJSON("```json\n{\"a\": \n```")
	if !errors.Is(err, ErrResponseNotJSON) {
		t.Fatalf("expected ErrResponseNotJSON, got %v", err)
	}
}

func TestDecodeJSONObjectRejectsNonObject(t *testing.T) {
	for _, raw := range []string{`[1, 2, 3]`, `"just a string"`, `42`} {
		_, err := DecodeJSONObject(raw)
		if !errors.Is(err, ErrMalformedResponse) {
			t.Fatalf("expected ErrMalformedResponse for %q, got %v", raw, err)
		}
	}
}

func TestNormalizeProfile(t *testing.T) {
	raw := "```json\n{\"full_name\": \"Jane Doe\", \"email\": \"jane@example.com\", \"skills\": [\"Go\", \"SQL\"]}\n```"

	profile, err := NormalizeProfile(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.FullName != "Jane Doe" {
		t.Fatalf("unexpected full name: %s", profile.FullName)
	}

	if len(profile.Skills) != 2 {
		t.Fatalf("expected 2 skills, got %v", profile.Skills)
	}

	if profile.Summary != nil {
		t.Fatalf("expected nil summary, got %v", *profile.Summary)
	}
}

func TestNormalizeProfileNullSkillsBecomeEmpty(t *testing.T) {
	profile, err := NormalizeProfile(`{"full_name": "A", "email": "a@b.c", "skills": null}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.Skills == nil || len(profile.Skills) != 0 {
		t.Fatalf("expected empty skills slice, got %v", profile.Skills)
	}
}

func TestNormalizeMatchReportResortsAndRecomputes(t *testing.T) {
	raw := "Here is the result:\n```json\n" +
		`{"overall_score":10,"best_match":{"job_id":"A","match_score":10},"all_matches":[{"job_id":"A","match_score":10},{"job_id":"B","match_score":90}]}` +
		"\n```"

	report, err := NormalizeMatchReport(raw, jobs("A", "B"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.AllMatches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(report.AllMatches))
	}

	if report.AllMatches[0].JobID != "B" || report.AllMatches[1].JobID != "A" {
		t.Fatalf("expected order [B, A], got [%s, %s]", report.AllMatches[0].JobID, report.AllMatches[1].JobID)
	}

	if report.BestMatch.JobID != "B" {
		t.Fatalf("best match must be recomputed to B, got %s", report.BestMatch.JobID)
	}

	if report.OverallScore == nil || *report.OverallScore != 90 {
		t.Fatalf("overall score must be recomputed to 90, got %v", report.OverallScore)
	}
}

func TestNormalizeMatchReportSynthesizesBestMatch(t *testing.T) {
	report, err := NormalizeMatchReport(`{}`, jobs("first", "second"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.BestMatch == nil {
		t.Fatalf("best match must always be present")
	}

	if report.BestMatch.JobID != "first" {
		t.Fatalf("fallback must reference the first submitted job, got %s", report.BestMatch.JobID)
	}

	if report.BestMatch.MatchScore != 0 {
		t.Fatalf("fallback score must be 0, got %v", report.BestMatch.MatchScore)
	}

	if len(report.BestMatch.Weaknesses) == 0 {
		t.Fatalf("fallback must carry visible placeholder weaknesses")
	}

	if len(report.AllMatches) != 1 {
		t.Fatalf("all_matches must be synthesized from best_match, got %d entries", len(report.AllMatches))
	}
}

func TestNormalizeMatchReportSynthesizesAllMatches(t *testing.T) {
	raw := `{"best_match":{"job_id":"X","job_title":"Job X","match_score":77}}`

	report, err := NormalizeMatchReport(raw, jobs("X"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.AllMatches) != 1 || report.AllMatches[0].JobID != "X" {
		t.Fatalf("expected all_matches [X], got %v", report.AllMatches)
	}

	if report.OverallScore == nil || *report.OverallScore != 77 {
		t.Fatalf("expected overall score 77, got %v", report.OverallScore)
	}
}

func TestRepairMatchReportStableSort(t *testing.T) {
	report := &models.MatchReport{
		AllMatches: []models.MatchResult{
			{JobID: "a", MatchScore: 50},
			{JobID: "b", MatchScore: 50},
			{JobID: "c", MatchScore: 80},
		},
		BestMatch: &models.MatchResult{JobID: "a", MatchScore: 50},
	}

	repaired := RepairMatchReport(report, jobs("a", "b", "c"))

	got := []string{repaired.AllMatches[0].JobID, repaired.AllMatches[1].JobID, repaired.AllMatches[2].JobID}
	want := []string{"c", "a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected stable order %v, got %v", want, got)
	}
}

func TestRepairMatchReportIdempotent(t *testing.T) {
	raw := `{"best_match":{"job_id":"A","match_score":10},"all_matches":[{"job_id":"A","match_score":10},{"job_id":"B","match_score":90}]}`

	first, err := NormalizeMatchReport(raw, jobs("A", "B"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	second := RepairMatchReport(first, jobs("A", "B"))

	after, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if string(before) != string(after) {
		t.Fatalf("repair is not idempotent:\nbefore: %s\nafter:  %s", before, after)
	}
}

func TestNormalizeMatchReportRejectsArray(t *testing.T) {
	_, err := NormalizeMatchReport(`[{"job_id":"A"}]`, jobs("A"))
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestStripMarkdownFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "# Questions\n1. Why?", "# Questions\n1. Why?"},
		{"markdown fence", "```markdown\n# Questions\n```", "# Questions"},
		{"bare fence", "```\n# Questions\n```", "# Questions"},
		{"whitespace", "  \n# Questions\n ", "# Questions"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripMarkdownFences(tc.in); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
