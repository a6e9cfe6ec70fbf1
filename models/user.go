package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// MaskedPassword replaces the plaintext password in every API response.
const MaskedPassword = "*********"

// User is the local profile stored in the "users" collection. The password is
// never persisted here; Firebase owns the credential and only a masked
// placeholder ever appears in responses.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name" binding:"required"`
	Lastname string             `bson:"lastname" json:"lastname" binding:"required"`
	Email    string             `bson:"email" json:"email" binding:"required,email"`
	Password string             `bson:"-" json:"password,omitempty" binding:"required"`
	Active   bool               `bson:"active" json:"active"`
	Admin    bool               `bson:"admin" json:"admin"`
}
