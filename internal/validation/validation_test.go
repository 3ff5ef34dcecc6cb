package validation

import (
	"errors"
	"testing"

	"toystore/internal/models"
)

func f64(v float64) *float64 { return &v }

func validToyRequest() models.CreateToyRequest {
	return models.CreateToyRequest{
		Name:     "STEM Robot Kit",
		Price:    f64(49.99),
		Category: "STEM",
	}
}

func TestStruct_Toy(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*models.CreateToyRequest)
		wantFields []string
	}{
		{
			name:       "valid payload",
			mutate:     func(r *models.CreateToyRequest) {},
			wantFields: nil,
		},
		{
			name:       "zero price is valid",
			mutate:     func(r *models.CreateToyRequest) { r.Price = f64(0) },
			wantFields: nil,
		},
		{
			name:       "missing name",
			mutate:     func(r *models.CreateToyRequest) { r.Name = "" },
			wantFields: []string{"name"},
		},
		{
			name:       "missing price",
			mutate:     func(r *models.CreateToyRequest) { r.Price = nil },
			wantFields: []string{"price"},
		},
		{
			name:       "negative price",
			mutate:     func(r *models.CreateToyRequest) { r.Price = f64(-1) },
			wantFields: []string{"price"},
		},
		{
			name:       "rating above range",
			mutate:     func(r *models.CreateToyRequest) { r.Rating = f64(5.5) },
			wantFields: []string{"rating"},
		},
		{
			name:       "rating below range",
			mutate:     func(r *models.CreateToyRequest) { r.Rating = f64(-0.5) },
			wantFields: []string{"rating"},
		},
		{
			name: "all violations reported at once",
			mutate: func(r *models.CreateToyRequest) {
				r.Name = ""
				r.Category = ""
				r.Price = f64(-1)
			},
			wantFields: []string{"name", "price", "category"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validToyRequest()
			tt.mutate(&req)

			err := Struct(req)

			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Errorf("Struct() unexpected error = %v", err)
				}
				return
			}

			var verr *Error
			if !errors.As(err, &verr) {
				t.Fatalf("Struct() error = %v, want *validation.Error", err)
			}

			got := map[string]bool{}
			for _, f := range verr.Fields {
				got[f.Field] = true
			}
			for _, want := range tt.wantFields {
				if !got[want] {
					t.Errorf("Struct() missing violation for field %q, got %v", want, verr.Fields)
				}
			}
			if len(verr.Fields) != len(tt.wantFields) {
				t.Errorf("Struct() reported %d violations, want %d: %v", len(verr.Fields), len(tt.wantFields), verr.Fields)
			}
		})
	}
}

func validOrderRequest() models.CreateOrderRequest {
	return models.CreateOrderRequest{
		CustomerName:    "Ada",
		CustomerEmail:   "ada@example.com",
		CustomerAddress: "1 Engine St",
		Items: []models.OrderItemRequest{
			{ToyID: "65af0b1c2d3e4f5a6b7c8d9e", Name: "STEM Robot Kit", Price: f64(49.99), Quantity: 1},
		},
		Subtotal: f64(49.99),
		Total:    f64(49.99),
	}
}

func TestStruct_Order(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.CreateOrderRequest)
		wantField string
	}{
		{
			name:   "valid payload",
			mutate: func(r *models.CreateOrderRequest) {},
		},
		{
			name:   "omitted shipping is valid",
			mutate: func(r *models.CreateOrderRequest) { r.Shipping = nil },
		},
		{
			name:      "non-email customer_email",
			mutate:    func(r *models.CreateOrderRequest) { r.CustomerEmail = "abc" },
			wantField: "customer_email",
		},
		{
			name:      "missing customer_address",
			mutate:    func(r *models.CreateOrderRequest) { r.CustomerAddress = "" },
			wantField: "customer_address",
		},
		{
			name:      "negative subtotal",
			mutate:    func(r *models.CreateOrderRequest) { r.Subtotal = f64(-5) },
			wantField: "subtotal",
		},
		{
			name:      "item quantity below one",
			mutate:    func(r *models.CreateOrderRequest) { r.Items[0].Quantity = 0 },
			wantField: "items[0].quantity",
		},
		{
			name:      "item missing toy_id",
			mutate:    func(r *models.CreateOrderRequest) { r.Items[0].ToyID = "" },
			wantField: "items[0].toy_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validOrderRequest()
			tt.mutate(&req)

			err := Struct(req)

			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Struct() unexpected error = %v", err)
				}
				return
			}

			var verr *Error
			if !errors.As(err, &verr) {
				t.Fatalf("Struct() error = %v, want *validation.Error", err)
			}

			found := false
			for _, f := range verr.Fields {
				if f.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("Struct() missing violation for field %q, got %v", tt.wantField, verr.Fields)
			}
		})
	}
}
