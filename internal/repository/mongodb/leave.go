package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type leaveRepositoryImpl struct {
	coll *mongo.Collection
}

func NewLeaveRepository(db *database.MongoDB) leave.LeaveRepository {
	return &leaveRepositoryImpl{coll: db.Collection(database.CollectionLeaves)}
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.Leave, error) {
	query := bson.M{}
	if filter.EmployeeID != nil {
		query["employeeId"] = *filter.EmployeeID
	}
	if filter.Status != nil {
		query["status"] = string(*filter.Status)
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "employeeId", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}

	var docs []leaveDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode leaves: %w", err)
	}

	leaves := make([]leave.Leave, 0, len(docs))
	for _, d := range docs {
		leaves = append(leaves, d.toEntity())
	}
	return leaves, nil
}

// GetByEmployeeAndDate implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (leave.Leave, error) {
	var doc leaveDocument
	err := r.coll.FindOne(ctx, bson.M{"employeeId": employeeID, "date": date}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave: %w", err)
	}
	return doc.toEntity(), nil
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	if _, err := r.coll.InsertOne(ctx, newLeaveDocument(l)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return leave.Leave{}, leave.ErrLeaveAlreadyExists
		}
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}
	return l, nil
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, employeeID string, date string, status leave.Status) (leave.Leave, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc leaveDocument
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"employeeId": employeeID, "date": date},
		bson.M{"$set": bson.M{"status": string(status)}},
		opts,
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to update leave status: %w", err)
	}
	return doc.toEntity(), nil
}

// ReplaceAll implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ReplaceAll(ctx context.Context, leaves []leave.Leave) error {
	docs := make([]interface{}, 0, len(leaves))
	for _, l := range leaves {
		docs = append(docs, newLeaveDocument(l))
	}
	return replaceAll(ctx, r.coll, docs)
}
