package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"railway-reservation/model"
)

type TrainCollection struct {
	coll *mongo.Collection
}

func NewTrainCollection(db *mongo.Database) *TrainCollection {
	return &TrainCollection{coll: db.Collection(TrainsCollectionName)}
}

func (c *TrainCollection) Insert(ctx context.Context, train model.Train) error {
	_, err := c.coll.InsertOne(ctx, train)
	if mongo.IsDuplicateKeyError(err) {
		return model.ErrDuplicateTrain
	}
	if err != nil {
		return fmt.Errorf("insert train: %w", err)
	}
	return nil
}

func (c *TrainCollection) Get(ctx context.Context, number string) (model.Train, error) {
	var train model.Train
	err := c.coll.FindOne(ctx, bson.M{"number": number}).Decode(&train)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Train{}, model.ErrTrainNotFound
	}
	if err != nil {
		return model.Train{}, fmt.Errorf("get train: %w", err)
	}
	return train, nil
}

func (c *TrainCollection) List(ctx context.Context) ([]model.Train, error) {
	cur, err := c.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list trains: %w", err)
	}

	trains := []model.Train{}
	if err := cur.All(ctx, &trains); err != nil {
		return nil, fmt.Errorf("decode trains: %w", err)
	}
	return trains, nil
}

// ClaimSeat takes one seat off the train in a single conditional update.
// The seats > 0 filter and the decrement are applied atomically by the
// server, so two concurrent claims can never oversell the last seat.
func (c *TrainCollection) ClaimSeat(ctx context.Context, number string) error {
	res, err := c.coll.UpdateOne(ctx,
		bson.M{"number": number, "seats": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"seats": -1}})
	if err != nil {
		return fmt.Errorf("claim seat: %w", err)
	}
	if res.ModifiedCount == 0 {
		return model.ErrNoSeatsAvailable
	}
	return nil
}

// AdjustSeats applies an unconditional seat delta. Callers are responsible
// for not driving the count negative; seat claims go through ClaimSeat.
func (c *TrainCollection) AdjustSeats(ctx context.Context, number string, delta int) error {
	res, err := c.coll.UpdateOne(ctx,
		bson.M{"number": number},
		bson.M{"$inc": bson.M{"seats": delta}})
	if err != nil {
		return fmt.Errorf("adjust seats: %w", err)
	}
	if res.MatchedCount == 0 {
		return model.ErrTrainNotFound
	}
	return nil
}
