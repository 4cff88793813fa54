// Package client is the kiosk side of the order flow: the in-progress order
// reducer, a store that serialises actions, and an HTTP session against the
// kiosk API.
package client

import "time"

const (
	DefaultOrderType   = "Dine In"
	DefaultPaymentType = "Pay Here"
)

type Category struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

type Product struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// OrderItem is keyed by Name inside an order.
type OrderItem struct {
	Name     string  `json:"name"`
	Image    string  `json:"image,omitempty"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func (i OrderItem) LinePrice() float64 { return i.Price }
func (i OrderItem) LineQuantity() int  { return i.Quantity }

// Order is the order being built at the kiosk. TaxPrice, TotalPrice and
// ItemsCount are derived from OrderItems by the reducer only.
type Order struct {
	OrderType   string      `json:"orderType"`
	PaymentType string      `json:"paymentType"`
	OrderItems  []OrderItem `json:"orderItems"`
	TaxPrice    float64     `json:"taxPrice"`
	TotalPrice  float64     `json:"totalPrice"`
	ItemsCount  int         `json:"itemsCount"`
}

// CreatedOrder is the server's record of a submitted order.
type CreatedOrder struct {
	ID          string      `json:"_id"`
	Number      int         `json:"number"`
	OrderType   string      `json:"orderType"`
	PaymentType string      `json:"paymentType"`
	OrderItems  []OrderItem `json:"orderItems"`
	IsPaid      bool        `json:"isPaid"`
	IsReady     bool        `json:"isReady"`
	InProgress  bool        `json:"inProgress"`
	IsCanceled  bool        `json:"isCanceled"`
	IsDelivered bool        `json:"isDelivered"`
	ItemsPrice  float64     `json:"itemsPrice"`
	TaxPrice    float64     `json:"taxPrice"`
	TotalPrice  float64     `json:"totalPrice"`
	CreatedAt   time.Time   `json:"createdAt"`
}

type State struct {
	CategoryList Remote[[]Category]
	ProductList  Remote[[]Product]
	Order        Order
	OrderCreate  Remote[CreatedOrder]
}

func InitialState() State {
	return State{
		CategoryList: Loading[[]Category](),
		ProductList:  Loading[[]Product](),
		Order: Order{
			OrderType:   DefaultOrderType,
			PaymentType: DefaultPaymentType,
			OrderItems:  []OrderItem{},
		},
		OrderCreate: Loading[CreatedOrder](),
	}
}
