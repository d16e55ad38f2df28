// Package store translates domain operations on jobs and bids into MongoDB
// collection calls. Handlers depend on the interfaces so tests can inject
// in-memory fakes.
package store

import (
	"context"

	"github.com/skillwaves/skillwaves-server/internal/model"
	"github.com/skillwaves/skillwaves-server/internal/model/response"
)

// JobFilter is a conjunction over zero or one optional field.
type JobFilter struct {
	Category string
}

// BidFilter is a conjunction over zero, one or two optional equality fields.
type BidFilter struct {
	EmployeeEmail string
	JobOwnerEmail string
}

type JobStore interface {
	// GetByID returns the job, or (nil, nil) when no document matches.
	GetByID(ctx context.Context, id string) (*model.Job, error)
	// List returns all jobs matching the filter, unordered and unpaginated.
	List(ctx context.Context, filter JobFilter) ([]model.Job, error)
	// ListByEmployer returns all jobs posted by the given email. The caller
	// must have already checked the requesting identity against the email.
	ListByEmployer(ctx context.Context, email string) ([]model.Job, error)
	// Create inserts the job verbatim and returns the generated identifier.
	Create(ctx context.Context, job model.Job) (response.InsertResult, error)
	// Replace sets exactly the seven whitelisted job fields. No upsert.
	Replace(ctx context.Context, id string, job model.Job) (response.UpdateResult, error)
	// Delete removes by identifier. A zero count is success, not an error.
	Delete(ctx context.Context, id string) (response.DeleteResult, error)
}

type BidStore interface {
	List(ctx context.Context, filter BidFilter) ([]model.Bid, error)
	Create(ctx context.Context, bid model.Bid) (response.InsertResult, error)
	// PatchStatus sets only the status field of the bid.
	PatchStatus(ctx context.Context, id, status string) (response.UpdateResult, error)
}
