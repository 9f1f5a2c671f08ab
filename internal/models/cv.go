package models

// CandidateProfile holds the structured fields extracted from a CV.
// Only name and email are expected to be present; everything else is
// best-effort and may be null in the model output.
type CandidateProfile struct {
	FullName    string   `json:"full_name"`
	Email       string   `json:"email"`
	PhoneNumber *string  `json:"phone_number,omitempty"`
	Address     *string  `json:"address,omitempty"`
	University  *string  `json:"university,omitempty"`
	Education   *string  `json:"education,omitempty"`
	Experience  *string  `json:"experience,omitempty"`
	Skills      []string `json:"skills"`
	Summary     *string  `json:"summary,omitempty"`
}

// ParsedCV is the result of parsing an uploaded CV: the raw extracted
// text plus the profile fields recovered from the model response.
type ParsedCV struct {
	Profile  CandidateProfile `json:"profile"`
	FullText string           `json:"full_text"`
}
