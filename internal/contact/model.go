package contact

import "time"

type Message struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Message   string    `bson:"message" json:"message"`
	Topic     *string   `bson:"topic" json:"topic"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type CreateRequest struct {
	Name    string  `json:"name" validate:"required,notblank,min=2,max=200"`
	Email   string  `json:"email" validate:"required,email"`
	Message string  `json:"message" validate:"required,notblank,min=10,max=2000"`
	Topic   *string `json:"topic" validate:"omitempty,max=200"`
}
