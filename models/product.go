package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product belongs to a category through a weak reference: CategoryID is
// checked against the categories collection on create and update, but deleting
// a category does not cascade and leaves its products orphaned.
//
// Availability is a pointer so a missing field can default to true; Stock
// defaults to zero.
type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CategoryID   string             `bson:"category_id" json:"category_id" binding:"required"`
	Name         string             `bson:"name" json:"name" binding:"required"`
	Description  string             `bson:"description" json:"description"`
	Price        float64            `bson:"price" json:"price"`
	Stock        int                `bson:"stock" json:"stock" binding:"gte=0"`
	Availability *bool              `bson:"availability" json:"availability"`
}

// ApplyDefaults fills the fields the request body may omit.
func (p *Product) ApplyDefaults() {
	if p.Availability == nil {
		available := true
		p.Availability = &available
	}
}
