package ws_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jibrilosman/self-order-kiosk/entity"
	"github.com/jibrilosman/self-order-kiosk/pkg/testdb"
	"github.com/jibrilosman/self-order-kiosk/repository"
	"github.com/jibrilosman/self-order-kiosk/services"
	"github.com/jibrilosman/self-order-kiosk/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderBoardPushesSnapshotAndEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testdb.Open(t)
	log, _ := test.NewNullLogger()

	orders := services.NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewSequenceRepository(db, repository.OrderNumberSequence),
		nil,
		log,
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	existing, err := orders.Create(ctx, &services.CreateOrderReq{
		OrderType:   "Dine In",
		PaymentType: "Pay Here",
		OrderItems:  []entity.OrderItem{{Name: "Cola", Price: 2.5, Quantity: 1}},
	})
	require.NoError(t, err)

	board := ws.NewOrderBoard(orders, log)
	orders.Events = board
	go board.Run(ctx)

	r := gin.New()
	r.GET("/ws/orders", board.HandleWebSocket)
	srv := httptest.NewServer(r)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/orders", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var snap ws.Snapshot
	require.NoError(t, conn.ReadJSON(&snap))
	assert.Equal(t, "snapshot", snap.Type)
	require.Len(t, snap.Orders, 1)
	assert.Equal(t, existing.ID, snap.Orders[0].ID)

	require.Eventually(t, func() bool { return board.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	_, err = orders.ApplyAction(ctx, existing.ID, services.ActionDeliver)
	require.NoError(t, err)

	var frame ws.Frame
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, services.EventOrderDelivered, frame.Type)
	assert.Equal(t, existing.ID, frame.Order.ID)
	assert.False(t, frame.Active)

	cancel()
	_, _, err = conn.ReadMessage()
	assert.Error(t, err)
}

func TestOrderBoardScreenJoiningMidStreamSeesEveryOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testdb.Open(t)
	log, _ := test.NewNullLogger()

	orders := services.NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewSequenceRepository(db, repository.OrderNumberSequence),
		nil,
		log,
	)
	board := ws.NewOrderBoard(orders, log)
	orders.Events = board

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go board.Run(ctx)

	r := gin.New()
	r.GET("/ws/orders", board.HandleWebSocket)
	srv := httptest.NewServer(r)
	defer srv.Close()

	const total = 30
	var (
		created = make(chan string, total)
		warm    = make(chan struct{})
	)
	go func() {
		defer close(created)
		for i := 0; i < total; i++ {
			o, err := orders.Create(ctx, &services.CreateOrderReq{
				OrderType:   "Take Out",
				PaymentType: "Pay Here",
				OrderItems:  []entity.OrderItem{{Name: "Fries", Price: 5, Quantity: 1}},
			})
			if !assert.NoError(t, err) {
				return
			}
			created <- o.ID
			if i == 5 {
				close(warm)
			}
			time.Sleep(2 * time.Millisecond)
		}
	}()

	<-warm
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/orders", nil)
	require.NoError(t, err)
	defer conn.Close()

	want := map[string]bool{}
	for id := range created {
		want[id] = true
	}
	require.Len(t, want, total)

	seen := map[string]bool{}
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for len(seen) < total {
		var msg struct {
			Type   string         `json:"type"`
			Orders []entity.Order `json:"orders"`
			Order  entity.Order   `json:"order"`
		}
		require.NoError(t, conn.ReadJSON(&msg), "seen %d of %d", len(seen), total)
		if msg.Type == "snapshot" {
			for _, o := range msg.Orders {
				seen[o.ID] = true
			}
			continue
		}
		seen[msg.Order.ID] = true
	}
	assert.Equal(t, want, seen)
}

func TestOrderBoardBacklog(t *testing.T) {
	log, _ := test.NewNullLogger()
	board := ws.NewOrderBoard(nil, log)

	var err error
	for i := 0; i < 100 && err == nil; i++ {
		err = board.Publish(context.Background(), services.OrderEvent{Type: services.EventOrderCreated})
	}
	assert.ErrorIs(t, err, ws.ErrBoardBacklog)
}
