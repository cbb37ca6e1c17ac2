package model

// Request schemas for the HTTP surface. Pointer fields separate a missing
// value from a legitimate zero, e.g. registering a train with no free seats.

type CreateTrainRequest struct {
	Number      string `json:"number" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Source      string `json:"source" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	Seats       *uint  `json:"seats" validate:"required"`
}

type ReserveTicketRequest struct {
	TrainNo       string `json:"trainNo" validate:"required"`
	PassengerName string `json:"passengerName" validate:"required"`
	PassengerAge  *uint  `json:"passengerAge" validate:"required,gt=0"`
}

type CreatePaymentRequest struct {
	Amount   *int64 `json:"amount" validate:"required,gt=0"`
	Currency string `json:"currency"`
}
