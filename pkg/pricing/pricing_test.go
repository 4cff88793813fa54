package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type line struct {
	price float64
	qty   int
}

func (l line) LinePrice() float64 { return l.price }
func (l line) LineQuantity() int  { return l.qty }

func TestSummarize(t *testing.T) {
	s := Summarize([]line{{price: 10, qty: 2}, {price: 5, qty: 1}})

	assert.Equal(t, 3, s.ItemsCount)
	assert.InDelta(t, 25, s.ItemsPrice, 1e-9)
	assert.Equal(t, 3.25, s.TaxPrice)
	assert.Equal(t, 28.25, s.TotalPrice)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize([]line(nil)))
}

func TestSummarizeNegativeQuantity(t *testing.T) {
	s := Summarize([]line{{price: 4, qty: -1}})

	assert.Equal(t, -1, s.ItemsCount)
	assert.Equal(t, -0.52, s.TaxPrice)
	assert.Equal(t, -4.52, s.TotalPrice)
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{1.005, 1}, // 100.49999... once scaled
		{0.125, 0.13},
		{-0.125, -0.13},
		{3.14159, 3.14},
		{0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Round2(tc.in), "Round2(%v)", tc.in)
	}
}
