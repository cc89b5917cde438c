package domain

import "time"

// OrderStatus represents the state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderItem is one priced line of an order. PriceAtOrder snapshots the
// product price at submission time; later catalog price changes never
// retroactively alter past orders.
type OrderItem struct {
	Product      Ref     `json:"product" bson:"product"`
	ProductName  string  `json:"product_name,omitempty" bson:"productName,omitempty"`
	Quantity     int     `json:"quantity" bson:"quantity"`
	PriceAtOrder float64 `json:"price_at_order" bson:"priceAtOrder"`
}

// Order is immutable once created. Member is billed; Bartender entered the
// order.
type Order struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	Session     Ref         `json:"session" bson:"session"`
	Member      Ref         `json:"member" bson:"member"`
	Bartender   Ref         `json:"bartender" bson:"bartender"`
	Items       []OrderItem `json:"items" bson:"items"`
	TotalAmount float64     `json:"total_amount" bson:"totalAmount"`
	Status      OrderStatus `json:"status" bson:"status"`
	CreatedAt   time.Time   `json:"created_at" bson:"createdAt"`
}

// TotalQuantity returns the sum of all line item quantities.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, it := range o.Items {
		total += it.Quantity
	}
	return total
}

// TopItem returns the line item with the strictly greatest quantity.
// First-seen wins on ties. Returns a zero item for an empty order.
func (o *Order) TopItem() OrderItem {
	var top OrderItem
	for _, it := range o.Items {
		if it.Quantity > top.Quantity {
			top = it
		}
	}
	return top
}
