package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"railway-reservation/model"
)

type TrainRegistry struct {
	trains TrainStore
	log    *logrus.Logger
}

func NewTrainRegistry(trains TrainStore, log *logrus.Logger) *TrainRegistry {
	return &TrainRegistry{trains: trains, log: log}
}

func (r *TrainRegistry) Register(ctx context.Context, req model.CreateTrainRequest) (model.Train, error) {
	train := model.Train{
		Id:          primitive.NewObjectID(),
		Number:      strings.TrimSpace(req.Number),
		Name:        strings.TrimSpace(req.Name),
		Source:      strings.TrimSpace(req.Source),
		Destination: strings.TrimSpace(req.Destination),
		Seats:       *req.Seats,
	}

	// whitespace-only fields survive the required tag
	if train.Number == "" || train.Name == "" || train.Source == "" || train.Destination == "" {
		return model.Train{}, fmt.Errorf("%w: all train details are required", model.ErrInvalidInput)
	}

	if err := r.trains.Insert(ctx, train); err != nil {
		return model.Train{}, err
	}

	r.log.WithFields(logrus.Fields{
		"number": train.Number,
		"seats":  train.Seats,
	}).Info("train registered")

	return train, nil
}

func (r *TrainRegistry) Find(ctx context.Context, number string) (model.Train, error) {
	return r.trains.Get(ctx, number)
}

func (r *TrainRegistry) List(ctx context.Context) ([]model.Train, error) {
	return r.trains.List(ctx)
}
