package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"railway-reservation/model"
)

type TicketCollection struct {
	coll *mongo.Collection
}

func NewTicketCollection(db *mongo.Database) *TicketCollection {
	return &TicketCollection{coll: db.Collection(TicketsCollectionName)}
}

func (c *TicketCollection) Insert(ctx context.Context, ticket model.Ticket) error {
	_, err := c.coll.InsertOne(ctx, ticket)
	if err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

func (c *TicketCollection) Get(ctx context.Context, pnr string) (model.Ticket, error) {
	var ticket model.Ticket
	err := c.coll.FindOne(ctx, bson.M{"pnr": pnr}).Decode(&ticket)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Ticket{}, model.ErrTicketNotFound
	}
	if err != nil {
		return model.Ticket{}, fmt.Errorf("get ticket: %w", err)
	}
	return ticket, nil
}

func (c *TicketCollection) Delete(ctx context.Context, pnr string) error {
	res, err := c.coll.DeleteOne(ctx, bson.M{"pnr": pnr})
	if err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	if res.DeletedCount == 0 {
		return model.ErrTicketNotFound
	}
	return nil
}

func (c *TicketCollection) Exists(ctx context.Context, pnr string) (bool, error) {
	count, err := c.coll.CountDocuments(ctx, bson.M{"pnr": pnr})
	if err != nil {
		return false, fmt.Errorf("count tickets: %w", err)
	}
	return count > 0, nil
}
