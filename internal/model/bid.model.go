package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Bid status values. The store does not enforce the enum; the PATCH boundary
// validation does.
const (
	BidStatusPending  = "pending"
	BidStatusAccepted = "accepted"
	BidStatusRejected = "rejected"
)

// Bid is an employee's offer against a job, stored in the bidjobs collection.
type Bid struct {
	ID            bson.ObjectID `bson:"_id,omitempty"     json:"_id,omitempty"`
	JobID         string        `bson:"job_id,omitempty"  json:"job_id,omitempty"`
	JobTitle      string        `bson:"job_title,omitempty" json:"job_title,omitempty"`
	EmployeeEmail string        `bson:"employee_email"    json:"employee_email"`
	JobOwnerEmail string        `bson:"job_owner_email"   json:"job_owner_email"`
	Status        string        `bson:"status"            json:"status"`
	Price         float64       `bson:"price,omitempty"   json:"price,omitempty"`
	Deadline      string        `bson:"deadline,omitempty" json:"deadline,omitempty"`
	Comment       string        `bson:"comment,omitempty" json:"comment,omitempty"`
}
