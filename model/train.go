package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Train struct {
	Id          primitive.ObjectID `json:"_id" bson:"_id"`
	Number      string             `json:"number" bson:"number"`
	Name        string             `json:"name" bson:"name"`
	Source      string             `json:"source" bson:"source"`
	Destination string             `json:"destination" bson:"destination"`
	Seats       uint               `json:"seats" bson:"seats"`
}
