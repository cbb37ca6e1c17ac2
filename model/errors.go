package model

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrDuplicateTrain   = errors.New("train with this number already exists")
	ErrTrainNotFound    = errors.New("train not found")
	ErrTicketNotFound   = errors.New("ticket not found")
	ErrNoSeatsAvailable = errors.New("no seats available")
	ErrPaymentGateway   = errors.New("payment gateway failure")
)
