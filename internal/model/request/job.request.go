package request

// CreateJobRequest carries the fields of a new job posting. Only existence is
// checked; semantic validation (price ordering, deadline format) is a
// non-goal.
type CreateJobRequest struct {
	EmployerEmail string  `json:"employer_email" validate:"required,email"`
	JobTitle      string  `json:"job_title"      validate:"required"`
	JobDeadline   string  `json:"job_deadline"   validate:"required"`
	Category      string  `json:"category"       validate:"required"`
	MinPrice      float64 `json:"min_price"`
	MaxPrice      float64 `json:"max_price"`
	Description   string  `json:"description"`
}

// UpdateJobRequest is the whitelist for the full-field replace. Fields not
// listed here never reach the update document.
type UpdateJobRequest struct {
	EmployerEmail string  `json:"employer_email" validate:"required,email"`
	JobTitle      string  `json:"job_title"      validate:"required"`
	JobDeadline   string  `json:"job_deadline"   validate:"required"`
	Category      string  `json:"category"       validate:"required"`
	MinPrice      float64 `json:"min_price"`
	MaxPrice      float64 `json:"max_price"`
	Description   string  `json:"description"`
}

// IDParam binds the :id path segment. Mongo ObjectIDs are 24 hex chars.
type IDParam struct {
	ID string `uri:"id" validate:"required,hexadecimal,len=24"`
}

// ListJobsQuery filters the public jobs listing.
type ListJobsQuery struct {
	Category string `form:"category"`
}

// PostedJobsQuery names the employer whose postings are requested. The
// handler rejects the request when it differs from the token email.
type PostedJobsQuery struct {
	UserEmail string `form:"user-email"`
}
