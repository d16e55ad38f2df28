package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"

	"github.com/skillwaves/skillwaves-server/internal/model"
	"github.com/skillwaves/skillwaves-server/internal/model/response"
)

// MongoBidStore implements BidStore over the bidjobs collection.
type MongoBidStore struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func NewMongoBidStore(collection *mongo.Collection) *MongoBidStore {
	return &MongoBidStore{
		collection: collection,
		logger:     zap.L(),
	}
}

func (s *MongoBidStore) List(ctx context.Context, filter BidFilter) ([]model.Bid, error) {
	query := bson.M{}
	if filter.EmployeeEmail != "" {
		query["employee_email"] = filter.EmployeeEmail
	}
	if filter.JobOwnerEmail != "" {
		query["job_owner_email"] = filter.JobOwnerEmail
	}

	cursor, err := s.collection.Find(ctx, query)
	if err != nil {
		s.logger.Error("Bid query failed", zap.Any("query", query), zap.Error(err))
		return nil, fmt.Errorf("find bids: %w", err)
	}

	bids := []model.Bid{}
	if err := cursor.All(ctx, &bids); err != nil {
		return nil, fmt.Errorf("decode bids: %w", err)
	}
	return bids, nil
}

func (s *MongoBidStore) Create(ctx context.Context, bid model.Bid) (response.InsertResult, error) {
	result, err := s.collection.InsertOne(ctx, bid)
	if err != nil {
		s.logger.Error("Bid insert failed", zap.Error(err))
		return response.InsertResult{}, fmt.Errorf("insert bid: %w", err)
	}

	insertedID := ""
	if oid, ok := result.InsertedID.(bson.ObjectID); ok {
		insertedID = oid.Hex()
	}
	return response.InsertResult{InsertedID: insertedID, Acknowledged: result.Acknowledged}, nil
}

func (s *MongoBidStore) PatchStatus(ctx context.Context, id, status string) (response.UpdateResult, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return response.UpdateResult{}, fmt.Errorf("invalid bid id %q: %w", id, err)
	}

	update := bson.M{"$set": bson.M{"status": status}}
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		s.logger.Error("Bid status update failed", zap.String("id", id), zap.Error(err))
		return response.UpdateResult{}, fmt.Errorf("update bid %q: %w", id, err)
	}

	return response.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}
