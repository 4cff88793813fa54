package services_test

import (
	"context"
	"testing"

	"github.com/jibrilosman/self-order-kiosk/pkg/testdb"
	"github.com/jibrilosman/self-order-kiosk/repository"
	"github.com/jibrilosman/self-order-kiosk/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductSeedAndList(t *testing.T) {
	svc := services.NewProductService(repository.NewProductRepository(testdb.Open(t)))
	ctx := context.Background()

	seeded, err := svc.Seed(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, seeded)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, len(seeded))

	drinks, err := svc.List(ctx, "Drinks")
	require.NoError(t, err)
	require.NotEmpty(t, drinks)
	for _, p := range drinks {
		assert.Equal(t, "Drinks", p.Category)
	}

	// no uniqueness on seed
	_, err = svc.Seed(ctx)
	require.NoError(t, err)
	all, err = svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2*len(seeded))
}

func TestProductCreate(t *testing.T) {
	svc := services.NewProductService(repository.NewProductRepository(testdb.Open(t)))

	p, err := svc.Create(context.Background(), &services.CreateProductReq{Name: "Milkshake", Price: 4.5, Category: "Desserts"})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)

	cats := svc.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
	}
	assert.Contains(t, names, p.Category)
}
