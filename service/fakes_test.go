package service

import (
	"context"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"railway-reservation/model"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

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

	insertErr   error
	existsCalls int
	// pretend the first collidingDraws generated codes are taken
	collidingDraws int
}

func newFakeTicketStore() *fakeTicketStore {
	return &fakeTicketStore{tickets: map[string]model.Ticket{}}
}

func (s *fakeTicketStore) Insert(ctx context.Context, ticket model.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.insertErr != nil {
		return s.insertErr
	}
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
	s.existsCalls++
	if s.existsCalls <= s.collidingDraws {
		return true, nil
	}
	_, ok := s.tickets[pnr]
	return ok, nil
}

func (s *fakeTicketStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tickets)
}
