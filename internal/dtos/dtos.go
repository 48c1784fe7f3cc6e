package dtos

// URLExtractionRequest is the JSON body of the URL-sourced intake endpoint.
// At least one of Message and ImageURL must be set; the handler rejects an
// empty request before any work happens.
type URLExtractionRequest struct {
	Message  string `json:"message"`
	ImageURL string `json:"image_url"`
}

type PrivateJobRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	JobTitle    string `json:"job_title" binding:"required"`

	// Optional fields
	Email       string `json:"email"`
	Location    string `json:"location"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Comment     string `json:"comment"`
}

type GovernmentJobRequest struct {
	Organization string `json:"organization" binding:"required"`
	JobTitle     string `json:"job_title" binding:"required"`

	// Optional fields; dates are "YYYY-MM-DD" strings
	JobTitleEn  string `json:"job_title_en"`
	Description string `json:"description"`
	ApplyStart  string `json:"apply_start"`
	ApplyEnd    string `json:"apply_end"`
	URL         string `json:"url"`
	FileLink    string `json:"file_link"`
	Comment     string `json:"comment"`
}
