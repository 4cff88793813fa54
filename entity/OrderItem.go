package entity

// OrderItem is a named line inside an order; the name is its identity.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func (i OrderItem) LinePrice() float64 { return i.Price }
func (i OrderItem) LineQuantity() int  { return i.Quantity }
