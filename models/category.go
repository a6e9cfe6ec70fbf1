package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category groups products in the catalog. The id is assigned by MongoDB on
// insert; there is no uniqueness constraint on the name.
type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name" binding:"required"`
	Description string             `bson:"description" json:"description"`
}
