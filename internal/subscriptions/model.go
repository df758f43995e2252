package subscriptions

import "time"

type Subscription struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Name      *string   `bson:"name" json:"name"`
	Interests []string  `bson:"interests" json:"interests"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

type SubscribeRequest struct {
	Email     string   `json:"email" validate:"required,email,max=254"`
	Name      *string  `json:"name" validate:"omitempty,max=200"`
	Interests []string `json:"interests" validate:"omitempty,max=50,dive,max=100"`
}
