package models

type MatchRequest struct {
	CVText       string           `json:"cv_text"`
	CVData       CandidateProfile `json:"cv_data"`
	Jobs         []JobPosting     `json:"jobs"`
	PrimaryJobID string           `json:"primary_job_id,omitempty"`
}

type GenerateJobDescriptionRequest struct {
	Title        string `json:"title"`
	Level        string `json:"level"`
	Department   string `json:"department"`
	WorkLocation string `json:"work_location,omitempty"`
	JobType      string `json:"job_type,omitempty"`
	Language     string `json:"language,omitempty"`
	Keywords     string `json:"keywords,omitempty"`
}

// GeneratedJobDescription is the description/requirements/benefits triple
// produced for a job posting.
type GeneratedJobDescription struct {
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Benefits     string `json:"benefits"`
}

type GenerateInterviewQuestionsRequest struct {
	JobID                 string `json:"job_id"`
	JobTitle              string `json:"job_title"`
	Department            string `json:"department"`
	Level                 string `json:"level"`
	JobType               string `json:"job_type,omitempty"`
	WorkLocation          string `json:"work_location,omitempty"`
	Description           string `json:"description,omitempty"`
	Requirements          string `json:"requirements,omitempty"`
	MandatoryRequirements string `json:"mandatory_requirements,omitempty"`
	Language              string `json:"language,omitempty"`
}

// InterviewQuestions carries the generated question document. Questions is
// formatted markdown, not JSON.
type InterviewQuestions struct {
	Questions  string `json:"questions"`
	JobID      string `json:"job_id"`
	JobTitle   string `json:"job_title"`
	Department string `json:"department"`
	Level      string `json:"level"`
}

// APIResponse is the success envelope shared by every endpoint.
type APIResponse struct {
	Success  bool           `json:"success"`
	Data     any            `json:"data"`
	Message  string         `json:"message"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type HealthResponse struct {
	Status        string `json:"status"`
	LLMConfigured bool   `json:"llm_configured"`
}
