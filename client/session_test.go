package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKioskServer(t *testing.T, orders http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]Category{{Name: "Burgers"}, {Name: "Drinks"}})
	})
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("category") == "Drinks" {
			_ = json.NewEncoder(w).Encode([]Product{{ID: "p2", Name: "Cola", Price: 2.5, Category: "Drinks"}})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "db down"})
	})
	if orders != nil {
		mux.HandleFunc("/api/orders", orders)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSessionLoadCatalog(t *testing.T) {
	srv := newKioskServer(t, nil)
	st := NewStore()
	sess := NewSession(srv.URL+"/api/", st)

	require.NoError(t, sess.LoadCategories(context.Background()))
	cats, ok := st.State().CategoryList.Data()
	require.True(t, ok)
	assert.Len(t, cats, 2)

	require.NoError(t, sess.LoadProducts(context.Background(), "Drinks"))
	products, ok := st.State().ProductList.Data()
	require.True(t, ok)
	assert.Equal(t, "Cola", products[0].Name)

	err := sess.LoadProducts(context.Background(), "")
	require.Error(t, err)
	assert.True(t, IsAPIError(err))
	assert.ErrorContains(t, st.State().ProductList.Err(), "db down")
}

func TestSessionSubmitOrder(t *testing.T) {
	var got Order
	srv := newKioskServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(CreatedOrder{ID: "o1", Number: 1, TotalPrice: 28.25, InProgress: true})
	})
	st := NewStore()
	st.Dispatch(AddItem{Item: burger(2)})
	st.Dispatch(AddItem{Item: fries(1)})

	created, err := NewSession(srv.URL+"/api", st).SubmitOrder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, created.Number)
	assert.Equal(t, 3, got.ItemsCount)
	assert.Equal(t, "Dine In", got.OrderType)

	s := st.State()
	stored, ok := s.OrderCreate.Data()
	require.True(t, ok)
	assert.Equal(t, "o1", stored.ID)
	assert.Empty(t, s.Order.OrderItems)
}

func TestSessionSubmitKeepsItemsAddedInFlight(t *testing.T) {
	st := NewStore()
	cola := OrderItem{Name: "Cola", Price: 2.5, Quantity: 1}
	srv := newKioskServer(t, func(w http.ResponseWriter, r *http.Request) {
		// the customer keeps tapping while the order is being stored
		st.Dispatch(AddItem{Item: cola})
		_ = json.NewEncoder(w).Encode(CreatedOrder{ID: "o2", Number: 2})
	})
	st.Dispatch(AddItem{Item: burger(1)})

	_, err := NewSession(srv.URL+"/api", st).SubmitOrder(context.Background())
	require.NoError(t, err)

	s := st.State()
	assert.Equal(t, []OrderItem{cola}, s.Order.OrderItems)
	assert.Equal(t, 1, s.Order.ItemsCount)
}

func TestSessionSubmitMessageReplyFails(t *testing.T) {
	srv := newKioskServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Data is required."})
	})
	st := NewStore()
	st.Dispatch(SetOrderType{Value: "Take Out"})

	_, err := NewSession(srv.URL+"/api", st).SubmitOrder(context.Background())
	require.Error(t, err)
	assert.True(t, IsAPIError(err))

	s := st.State()
	assert.ErrorContains(t, s.OrderCreate.Err(), "Data is required.")
	assert.Equal(t, "Take Out", s.Order.OrderType)
}
