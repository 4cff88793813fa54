package client

import "github.com/jibrilosman/self-order-kiosk/pkg/pricing"

// Apply returns the state after a. It does no I/O and never writes to the
// slices of s; unknown actions return s unchanged.
func Apply(s State, a Action) State {
	switch a := a.(type) {
	case AddItem:
		s.Order = withItems(s.Order, addItem(s.Order.OrderItems, a.Item))
	case RemoveItem:
		s.Order = withItems(s.Order, removeItem(s.Order.OrderItems, a.Name))
	case ClearOrder:
		s.Order = withItems(s.Order, []OrderItem{})
	case ClearSubmitted:
		s.Order = withItems(s.Order, removeSubmitted(s.Order.OrderItems, a.Items))
	case SetOrderType:
		s.Order.OrderType = a.Value
	case SetPaymentType:
		s.Order.PaymentType = a.Value

	case CategoryListRequest:
		s.CategoryList = Loading[[]Category]()
	case CategoryListSuccess:
		s.CategoryList = Succeeded(a.Categories)
	case CategoryListFail:
		s.CategoryList = Failed[[]Category](a.Err)

	case ProductListRequest:
		s.ProductList = Loading[[]Product]()
	case ProductListSuccess:
		s.ProductList = Succeeded(a.Products)
	case ProductListFail:
		s.ProductList = Failed[[]Product](a.Err)

	case OrderCreateRequest:
		s.OrderCreate = Loading[CreatedOrder]()
	case OrderCreateSuccess:
		s.OrderCreate = Succeeded(a.Order)
	case OrderCreateFail:
		s.OrderCreate = Failed[CreatedOrder](a.Err)
	}
	return s
}

// withItems is the only place derived order fields are written.
func withItems(o Order, items []OrderItem) Order {
	sum := pricing.Summarize(items)
	o.OrderItems = items
	o.ItemsCount = sum.ItemsCount
	o.TaxPrice = sum.TaxPrice
	o.TotalPrice = sum.TotalPrice
	return o
}

// addItem replaces a same-named line in place, otherwise appends.
func addItem(items []OrderItem, item OrderItem) []OrderItem {
	out := make([]OrderItem, len(items), len(items)+1)
	copy(out, items)
	for i := range out {
		if out[i].Name == item.Name {
			out[i] = item
			return out
		}
	}
	return append(out, item)
}

func removeItem(items []OrderItem, name string) []OrderItem {
	out := make([]OrderItem, 0, len(items))
	for _, it := range items {
		if it.Name != name {
			out = append(out, it)
		}
	}
	return out
}

func removeSubmitted(items, submitted []OrderItem) []OrderItem {
	sent := make(map[OrderItem]bool, len(submitted))
	for _, it := range submitted {
		sent[it] = true
	}
	out := make([]OrderItem, 0, len(items))
	for _, it := range items {
		if !sent[it] {
			out = append(out, it)
		}
	}
	return out
}
