package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	TrainsCollectionName  string = "trains"
	TicketsCollectionName string = "tickets"
)

func Connect(ctx context.Context, connString string, dbName string) (*mongo.Database, error) {
	clientOptions := options.Client().ApplyURI(connString)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %w", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("db is not available: %w", err)
	}

	return client.Database(dbName), nil
}

// EnsureIndexes creates the unique indexes backing the business keys:
// one train per number, one ticket per PNR.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := func(field string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
	}

	if _, err := db.Collection(TrainsCollectionName).Indexes().CreateOne(ctx, unique("number")); err != nil {
		return fmt.Errorf("trains number index: %w", err)
	}
	if _, err := db.Collection(TicketsCollectionName).Indexes().CreateOne(ctx, unique("pnr")); err != nil {
		return fmt.Errorf("tickets pnr index: %w", err)
	}

	return nil
}
