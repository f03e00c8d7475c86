package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionEmployees  = "employees"
	CollectionAttendance = "attendance"
	CollectionLeaves     = "leaves"
)

type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDB(ctx context.Context, uri, name string) (*MongoDB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoDB{Client: client, Database: client.Database(name)}, nil
}

func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.Database.Collection(name)
}

func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// EnsureIndexes creates the unique keys the repositories rely on.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		CollectionEmployees: {
			{
				Keys:    bson.D{{Key: "uniqueLink", Value: 1}},
				Options: options.Index().SetName("uniq_uniqueLink").SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "name", Value: 1}},
				Options: options.Index().SetName("idx_name"),
			},
		},
		CollectionAttendance: {
			{
				Keys:    bson.D{{Key: "employeeId", Value: 1}, {Key: "date", Value: 1}},
				Options: options.Index().SetName("uniq_employeeId_date").SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "date", Value: 1}},
				Options: options.Index().SetName("idx_date"),
			},
		},
		CollectionLeaves: {
			{
				Keys:    bson.D{{Key: "employeeId", Value: 1}, {Key: "date", Value: 1}},
				Options: options.Index().SetName("uniq_employeeId_date").SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "status", Value: 1}},
				Options: options.Index().SetName("idx_status"),
			},
		},
	}
	for name, models := range indexes {
		if _, err := m.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}
