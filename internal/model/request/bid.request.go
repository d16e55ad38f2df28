package request

// CreateBidRequest carries a new bid against a job. Inserted verbatim.
type CreateBidRequest struct {
	JobID         string  `json:"job_id"`
	JobTitle      string  `json:"job_title"`
	EmployeeEmail string  `json:"employee_email"  validate:"required,email"`
	JobOwnerEmail string  `json:"job_owner_email" validate:"required,email"`
	Status        string  `json:"status"`
	Price         float64 `json:"price"`
	Deadline      string  `json:"deadline"`
	Comment       string  `json:"comment"`
}

// UpdateBidStatusRequest patches only the status field of a bid.
type UpdateBidStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected"`
}

// ListBidsQuery filters bids by bidder and/or job owner.
type ListBidsQuery struct {
	UserEmail     string `form:"user-email"`
	EmployerEmail string `form:"employer-email"`
}
