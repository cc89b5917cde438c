package domain

import "time"

// Product is a catalog entry. Prices are EUR. Available gates ordering;
// Popular is a display hint only.
type Product struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Price     float64   `json:"price" bson:"price"`
	Category  string    `json:"category,omitempty" bson:"category,omitempty"`
	Available bool      `json:"available" bson:"available"`
	Popular   bool      `json:"popular" bson:"popular"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" bson:"updatedAt"`
}
