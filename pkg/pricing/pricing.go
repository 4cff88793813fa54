// Package pricing holds the kiosk's order arithmetic. Client and server both
// derive tax and totals from the item lines through Summarize so they agree
// to the cent.
package pricing

import "math"

// TaxRate is applied to the item subtotal.
const TaxRate = 0.13

// Line is one priced order line.
type Line interface {
	LinePrice() float64
	LineQuantity() int
}

type Summary struct {
	ItemsCount int
	ItemsPrice float64
	TaxPrice   float64
	TotalPrice float64
}

// Round2 rounds to cents, halves away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Summarize does not validate quantities; zero or negative lines count as given.
func Summarize[L Line](items []L) Summary {
	var s Summary
	for _, it := range items {
		s.ItemsCount += it.LineQuantity()
		s.ItemsPrice += float64(it.LineQuantity()) * it.LinePrice()
	}
	s.TaxPrice = Round2(TaxRate * s.ItemsPrice)
	s.TotalPrice = Round2(s.ItemsPrice + s.TaxPrice)
	return s
}
