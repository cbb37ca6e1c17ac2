package service

import (
	"context"

	"railway-reservation/model"
)

type TrainStore interface {
	Insert(ctx context.Context, train model.Train) error
	Get(ctx context.Context, number string) (model.Train, error)
	List(ctx context.Context) ([]model.Train, error)
	ClaimSeat(ctx context.Context, number string) error
	AdjustSeats(ctx context.Context, number string, delta int) error
}

type TicketStore interface {
	Insert(ctx context.Context, ticket model.Ticket) error
	Get(ctx context.Context, pnr string) (model.Ticket, error)
	Delete(ctx context.Context, pnr string) error
	Exists(ctx context.Context, pnr string) (bool, error)
}

type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}
