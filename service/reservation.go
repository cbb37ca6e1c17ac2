package service

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"railway-reservation/model"
)

// Reservation orchestrates the train inventory and the ticket ledger.
// Seat claims go through the store's conditional decrement, so a reservation
// against the last seat succeeds at most once even under concurrent requests.
type Reservation struct {
	trains  TrainStore
	tickets TicketStore
	log     *logrus.Logger
}

func NewReservation(trains TrainStore, tickets TicketStore, log *logrus.Logger) *Reservation {
	return &Reservation{trains: trains, tickets: tickets, log: log}
}

func (s *Reservation) Reserve(ctx context.Context, req model.ReserveTicketRequest) (model.Ticket, error) {
	trainNo := strings.TrimSpace(req.TrainNo)
	passengerName := strings.TrimSpace(req.PassengerName)
	if trainNo == "" || passengerName == "" {
		return model.Ticket{}, fmt.Errorf("%w: all reservation details are required", model.ErrInvalidInput)
	}

	if _, err := s.trains.Get(ctx, trainNo); err != nil {
		return model.Ticket{}, err
	}

	if err := s.trains.ClaimSeat(ctx, trainNo); err != nil {
		return model.Ticket{}, err
	}

	pnr, err := s.generatePNR(ctx)
	if err != nil {
		s.releaseSeat(ctx, trainNo)
		return model.Ticket{}, err
	}

	ticket := model.Ticket{
		Id:            primitive.NewObjectID(),
		PNR:           pnr,
		TrainNo:       trainNo,
		PassengerName: passengerName,
		PassengerAge:  *req.PassengerAge,
		Status:        model.TicketStatusConfirmed,
	}
	if err := s.tickets.Insert(ctx, ticket); err != nil {
		s.releaseSeat(ctx, trainNo)
		return model.Ticket{}, fmt.Errorf("create ticket: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"pnr":     ticket.PNR,
		"trainNo": ticket.TrainNo,
	}).Info("ticket reserved")

	return ticket, nil
}

func (s *Reservation) CheckStatus(ctx context.Context, pnr string) (model.Ticket, error) {
	return s.tickets.Get(ctx, pnr)
}

func (s *Reservation) Cancel(ctx context.Context, pnr string) error {
	ticket, err := s.tickets.Get(ctx, pnr)
	if err != nil {
		return err
	}

	if err := s.tickets.Delete(ctx, pnr); err != nil {
		return err
	}

	if err := s.trains.AdjustSeats(ctx, ticket.TrainNo, 1); err != nil {
		return fmt.Errorf("return seat to train %v: %w", ticket.TrainNo, err)
	}

	s.log.WithFields(logrus.Fields{
		"pnr":     ticket.PNR,
		"trainNo": ticket.TrainNo,
	}).Info("ticket cancelled")

	return nil
}

// generatePNR draws 5-digit codes uniformly from [10000, 99999] and re-draws
// on collision with an existing ticket. With 90000 possible codes collisions
// are rare, but the loop stays correct however many it takes.
func (s *Reservation) generatePNR(ctx context.Context) (string, error) {
	for {
		pnr := strconv.Itoa(10000 + rand.Intn(90000))
		exists, err := s.tickets.Exists(ctx, pnr)
		if err != nil {
			return "", fmt.Errorf("check pnr: %w", err)
		}
		if !exists {
			return pnr, nil
		}
	}
}

// releaseSeat undoes a claimed seat when ticket creation fails afterwards,
// keeping the seat count consistent with the tickets actually outstanding.
func (s *Reservation) releaseSeat(ctx context.Context, trainNo string) {
	if err := s.trains.AdjustSeats(ctx, trainNo, 1); err != nil {
		s.log.WithFields(logrus.Fields{
			"trainNo": trainNo,
		}).WithError(err).Error("failed to release claimed seat")
	}
}
