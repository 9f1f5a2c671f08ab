package models

// JobPosting describes one position a CV can be matched against.
// ID is caller-supplied and must be unique within a matching request.
type JobPosting struct {
	ID                    string `json:"id"`
	Title                 string `json:"title"`
	Department            string `json:"department,omitempty"`
	Level                 string `json:"level,omitempty"`
	JobType               string `json:"job_type,omitempty"`
	WorkLocation          string `json:"work_location,omitempty"`
	Location              string `json:"location,omitempty"`
	Description           string `json:"description,omitempty"`
	Requirements          string `json:"requirements,omitempty"`
	MandatoryRequirements string `json:"mandatory_requirements,omitempty"`
	Benefits              string `json:"benefits,omitempty"`
}
