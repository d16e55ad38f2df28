package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"

	"github.com/skillwaves/skillwaves-server/internal/model"
	"github.com/skillwaves/skillwaves-server/internal/model/response"
)

// MongoJobStore implements JobStore over the jobs collection.
type MongoJobStore struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func NewMongoJobStore(collection *mongo.Collection) *MongoJobStore {
	return &MongoJobStore{
		collection: collection,
		logger:     zap.L(),
	}
}

func (s *MongoJobStore) GetByID(ctx context.Context, id string) (*model.Job, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid job id %q: %w", id, err)
	}

	var job model.Job
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&job)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Absence is not an error; the handler responds with a null body.
		return nil, nil
	}
	if err != nil {
		s.logger.Error("Job lookup failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("find job %q: %w", id, err)
	}
	return &job, nil
}

func (s *MongoJobStore) List(ctx context.Context, filter JobFilter) ([]model.Job, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	return s.find(ctx, query)
}

func (s *MongoJobStore) ListByEmployer(ctx context.Context, email string) ([]model.Job, error) {
	query := bson.M{}
	if email != "" {
		query["employer_email"] = email
	}
	return s.find(ctx, query)
}

func (s *MongoJobStore) find(ctx context.Context, query bson.M) ([]model.Job, error) {
	cursor, err := s.collection.Find(ctx, query)
	if err != nil {
		s.logger.Error("Job query failed", zap.Any("query", query), zap.Error(err))
		return nil, fmt.Errorf("find jobs: %w", err)
	}

	jobs := []model.Job{}
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}
	return jobs, nil
}

func (s *MongoJobStore) Create(ctx context.Context, job model.Job) (response.InsertResult, error) {
	result, err := s.collection.InsertOne(ctx, job)
	if err != nil {
		s.logger.Error("Job insert failed", zap.Error(err))
		return response.InsertResult{}, fmt.Errorf("insert job: %w", err)
	}

	insertedID := ""
	if oid, ok := result.InsertedID.(bson.ObjectID); ok {
		insertedID = oid.Hex()
	}
	return response.InsertResult{InsertedID: insertedID, Acknowledged: result.Acknowledged}, nil
}

func (s *MongoJobStore) Replace(ctx context.Context, id string, job model.Job) (response.UpdateResult, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return response.UpdateResult{}, fmt.Errorf("invalid job id %q: %w", id, err)
	}

	// Whitelist replace: exactly these seven fields, nothing else.
	update := bson.M{
		"$set": bson.M{
			"employer_email": job.EmployerEmail,
			"job_title":      job.JobTitle,
			"job_deadline":   job.JobDeadline,
			"category":       job.Category,
			"min_price":      job.MinPrice,
			"max_price":      job.MaxPrice,
			"description":    job.Description,
		},
	}

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": oid}, update,
		options.UpdateOne().SetUpsert(false))
	if err != nil {
		s.logger.Error("Job update failed", zap.String("id", id), zap.Error(err))
		return response.UpdateResult{}, fmt.Errorf("update job %q: %w", id, err)
	}

	return response.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (s *MongoJobStore) Delete(ctx context.Context, id string) (response.DeleteResult, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return response.DeleteResult{}, fmt.Errorf("invalid job id %q: %w", id, err)
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		s.logger.Error("Job delete failed", zap.String("id", id), zap.Error(err))
		return response.DeleteResult{}, fmt.Errorf("delete job %q: %w", id, err)
	}
	return response.DeleteResult{DeletedCount: result.DeletedCount}, nil
}
