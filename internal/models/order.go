package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// OrderItem is a line item embedded in an order. Name, price and image are
// denormalized copies taken at purchase time; toy_id references a Toy id
// but is not enforced as a foreign key.
type OrderItem struct {
	ToyID    string  `json:"toy_id" bson:"toy_id"`
	Name     string  `json:"name" bson:"name"`
	Price    float64 `json:"price" bson:"price"`
	Quantity int     `json:"quantity" bson:"quantity"`
	Image    string  `json:"image,omitempty" bson:"image,omitempty"`
}

// Order represents a submitted order stored in the "order" collection.
// Orders are written once and never read back or updated by this service.
type Order struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	CustomerName    string             `json:"customer_name" bson:"customer_name"`
	CustomerEmail   string             `json:"customer_email" bson:"customer_email"`
	CustomerAddress string             `json:"customer_address" bson:"customer_address"`
	Items           []OrderItem        `json:"items" bson:"items"`
	Subtotal        float64            `json:"subtotal" bson:"subtotal"`
	Shipping        float64            `json:"shipping" bson:"shipping"`
	Total           float64            `json:"total" bson:"total"`
	Notes           string             `json:"notes,omitempty" bson:"notes,omitempty"`
}

// OrderItemRequest is a line item in an incoming order payload.
type OrderItemRequest struct {
	ToyID    string   `json:"toy_id" validate:"required"`
	Name     string   `json:"name" validate:"required"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
	Quantity int      `json:"quantity" validate:"required,min=1"`
	Image    string   `json:"image"`
}

// CreateOrderRequest is the payload for POST /api/orders. Monetary totals
// are trusted as submitted; the service does not recompute or verify them
// against current toy prices.
type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name" validate:"required"`
	CustomerEmail   string             `json:"customer_email" validate:"required,email"`
	CustomerAddress string             `json:"customer_address" validate:"required"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Subtotal        *float64           `json:"subtotal" validate:"required,gte=0"`
	Shipping        *float64           `json:"shipping" validate:"omitempty,gte=0"`
	Total           *float64           `json:"total" validate:"required,gte=0"`
	Notes           string             `json:"notes"`
}

// Order maps a validated request to an Order entity. Shipping defaults to 0
// when omitted.
func (r CreateOrderRequest) Order() Order {
	items := make([]OrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, OrderItem{
			ToyID:    item.ToyID,
			Name:     item.Name,
			Price:    *item.Price,
			Quantity: item.Quantity,
			Image:    item.Image,
		})
	}

	order := Order{
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerAddress: r.CustomerAddress,
		Items:           items,
		Subtotal:        *r.Subtotal,
		Total:           *r.Total,
		Notes:           r.Notes,
	}

	if r.Shipping != nil {
		order.Shipping = *r.Shipping
	}

	return order
}
