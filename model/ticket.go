package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type TicketStatus string

const (
	TicketStatusConfirmed TicketStatus = "CONFIRMED"
	TicketStatusCancelled TicketStatus = "CANCELLED"
)

type Ticket struct {
	Id            primitive.ObjectID `json:"_id" bson:"_id"`
	PNR           string             `json:"pnr" bson:"pnr"`
	TrainNo       string             `json:"trainNo" bson:"train_no"`
	PassengerName string             `json:"passengerName" bson:"passenger_name"`
	PassengerAge  uint               `json:"passengerAge" bson:"passenger_age"`
	Status        TicketStatus       `json:"status" bson:"status"`
}
