package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Doctor is created once through the admin listing form and never updated.
// Image holds the raw profile picture bytes; JSON encoding base64s it.
type Doctor struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Image []byte             `bson:"image" json:"image"`
}
