package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// DefaultRating is applied when a create request omits the rating field.
const DefaultRating = 4.5

// Toy represents a toy product stored in the "toy" collection.
// The ID is assigned by the store and rendered as a hex string in JSON.
type Toy struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64            `json:"price" bson:"price"`
	Category    string             `json:"category" bson:"category"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Rating      float64            `json:"rating" bson:"rating"`
	InStock     bool               `json:"in_stock" bson:"in_stock"`
}

// CreateToyRequest is the payload for POST /api/toys.
// Optional numeric and boolean fields are pointers so that absence can be
// told apart from a zero value when applying defaults.
type CreateToyRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
	Image       string   `json:"image"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	InStock     *bool    `json:"in_stock"`
}

// Toy maps a validated request to a Toy entity, applying defaults for
// omitted optional fields.
func (r CreateToyRequest) Toy() Toy {
	toy := Toy{
		Name:        r.Name,
		Description: r.Description,
		Price:       *r.Price,
		Category:    r.Category,
		Image:       r.Image,
		Rating:      DefaultRating,
		InStock:     true,
	}

	if r.Rating != nil {
		toy.Rating = *r.Rating
	}
	if r.InStock != nil {
		toy.InStock = *r.InStock
	}

	return toy
}
