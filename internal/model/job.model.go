package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Job is a posted work item in the jobs collection. Field names follow the
// document schema used by the web client, so bson and json tags match.
type Job struct {
	ID            bson.ObjectID `bson:"_id,omitempty"  json:"_id,omitempty"`
	EmployerEmail string        `bson:"employer_email" json:"employer_email"`
	JobTitle      string        `bson:"job_title"      json:"job_title"`
	JobDeadline   string        `bson:"job_deadline"   json:"job_deadline"`
	Category      string        `bson:"category"       json:"category"`
	MinPrice      float64       `bson:"min_price"      json:"min_price"`
	MaxPrice      float64       `bson:"max_price"      json:"max_price"`
	Description   string        `bson:"description"    json:"description"`
}
