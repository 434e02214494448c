package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is stored in the `users` collection. Only the email is persisted;
// the document id is assigned by the store. There is no password: identity
// is established by email alone and proven afterwards with a bearer token.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email string             `bson:"email" json:"email"`
}
