package handlers_test

import (
	"context"
	"io"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"railway-reservation/handlers"
	"railway-reservation/model"
	"railway-reservation/router"
	"railway-reservation/service"
)

type fakeTrainStore struct {
	mu     sync.Mutex
	trains map[string]model.Train
}

func newFakeTrainStore(trains ...model.Train) *fakeTrainStore {
	s := &fakeTrainStore{trains: map[string]model.Train{}}
	for _, t := range trains {
		s.trains[t.Number] = t
	}
	return s
}

func (s *fakeTrainStore) Insert(ctx context.Context, train model.Train) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trains[train.Number]; ok {
		return model.ErrDuplicateTrain
	}
	s.trains[train.Number] = train
	return nil
}

func (s *fakeTrainStore) Get(ctx context.Context, number string) (model.Train, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	train, ok := s.trains[number]
	if !ok {
		return model.Train{}, model.ErrTrainNotFound
	}
	return train, nil
}

func (s *fakeTrainStore) List(ctx context.Context) ([]model.Train, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	trains := []model.Train{}
	for _, t := range s.trains {
		trains = append(trains, t)
	}
	return trains, nil
}

func (s *fakeTrainStore) ClaimSeat(ctx context.Context, number string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	train, ok := s.trains[number]
	if !ok || train.Seats == 0 {
		return model.ErrNoSeatsAvailable
	}
	train.Seats--
	s.trains[number] = train
	return nil
}

func (s *fakeTrainStore) AdjustSeats(ctx context.Context, number string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	train, ok := s.trains[number]
	if !ok {
		return model.ErrTrainNotFound
	}
	train.Seats = uint(int(train.Seats) + delta)
	s.trains[number] = train
	return nil
}

func (s *fakeTrainStore) seats(number string) uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trains[number].Seats
}

type fakeTicketStore struct {
	mu      sync.Mutex
	tickets map[string]model.Ticket
}

func newFakeTicketStore(tickets ...model.Ticket) *fakeTicketStore {
	s := &fakeTicketStore{tickets: map[string]model.Ticket{}}
	for _, ticket := range tickets {
		s.tickets[ticket.PNR] = ticket
	}
	return s
}

func (s *fakeTicketStore) Insert(ctx context.Context, ticket model.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets[ticket.PNR] = ticket
	return nil
}

func (s *fakeTicketStore) Get(ctx context.Context, pnr string) (model.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ticket, ok := s.tickets[pnr]
	if !ok {
		return model.Ticket{}, model.ErrTicketNotFound
	}
	return ticket, nil
}

func (s *fakeTicketStore) Delete(ctx context.Context, pnr string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tickets[pnr]; !ok {
		return model.ErrTicketNotFound
	}
	delete(s.tickets, pnr)
	return nil
}

func (s *fakeTicketStore) Exists(ctx context.Context, pnr string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tickets[pnr]
	return ok, nil
}

type fakePaymentGateway struct {
	clientSecret string
	err          error
}

func (g *fakePaymentGateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.clientSecret, nil
}

func newTestApp(trains service.TrainStore, tickets service.TicketStore, gateway service.PaymentGateway) *fiber.App {
	log := logrus.New()
	log.SetOutput(io.Discard)

	registry := service.NewTrainRegistry(trains, log)
	reservation := service.NewReservation(trains, tickets, log)
	h := handlers.New(registry, reservation, gateway)

	app := fiber.New()
	router.SetupRoutes(app, h)
	return app
}

func testTrain(number string, seats uint) model.Train {
	return model.Train{
		Id:          primitive.NewObjectID(),
		Number:      number,
		Name:        "Night Express",
		Source:      "Mumbai",
		Destination: "Delhi",
		Seats:       seats,
	}
}

func testTicket(pnr string, trainNo string) model.Ticket {
	return model.Ticket{
		Id:            primitive.NewObjectID(),
		PNR:           pnr,
		TrainNo:       trainNo,
		PassengerName: "John Doe",
		PassengerAge:  42,
		Status:        model.TicketStatusConfirmed,
	}
}
