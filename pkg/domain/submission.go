package domain

// SubmissionForm is the raw "submit a VC" form, facets entered as comma-separated text
type SubmissionForm struct {
	Name    string `json:"name"`
	Website string `json:"website"`
	HQ      string `json:"hq"`
	Regions string `json:"regions"`
	Stages  string `json:"stages"`
	Sectors string `json:"sectors"`
	Ticket  string `json:"ticket"`
}

// Submission is a parsed firm submission, handed off manually as JSON.
// Field order defines the JSON key order.
type Submission struct {
	Name    string   `json:"name"`
	Website string   `json:"website"`
	HQ      string   `json:"hq"`
	Regions []string `json:"regions"`
	Stages  []string `json:"stages"`
	Sectors []string `json:"sectors"`
	Ticket  string   `json:"ticket"`
}
