package model

import "time"

type Comment struct {
	ID        string    `json:"id" bson:"id"`
	VideoID   string    `json:"videoId" bson:"videoId"`
	UserID    string    `json:"userId" bson:"userId"`
	Text      string    `json:"text" bson:"text"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
