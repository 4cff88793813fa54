package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jibrilosman/self-order-kiosk/entity"
	"github.com/jibrilosman/self-order-kiosk/pkg/metrics"
	"github.com/jibrilosman/self-order-kiosk/pkg/pricing"
	"github.com/jibrilosman/self-order-kiosk/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// numberAttempts bounds retries when a sequence hands out a taken number.
const numberAttempts = 3

// Sequencer hands out order numbers; each call returns a value no other call gets.
type Sequencer interface {
	Next(ctx context.Context) (int, error)
}

type OrderService struct {
	Repo   *repository.OrderRepository
	Seq    Sequencer
	Events Publisher
	Log    logrus.FieldLogger
}

func NewOrderService(repo *repository.OrderRepository, seq Sequencer, events Publisher, log logrus.FieldLogger) *OrderService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &OrderService{Repo: repo, Seq: seq, Events: events, Log: log}
}

// CreateOrderReq is the draft the kiosk submits. Prices sent by the client
// are ignored and recomputed from the items.
type CreateOrderReq struct {
	OrderType   string             `json:"orderType"`
	PaymentType string             `json:"paymentType"`
	OrderItems  []entity.OrderItem `json:"orderItems"`
}

func (r *CreateOrderReq) valid() bool {
	return strings.TrimSpace(r.OrderType) != "" &&
		strings.TrimSpace(r.PaymentType) != "" &&
		len(r.OrderItems) > 0
}

// ----- Create -----
func (s *OrderService) Create(ctx context.Context, req *CreateOrderReq) (*entity.Order, error) {
	if req == nil || !req.valid() {
		return nil, ErrDataRequired
	}

	sum := pricing.Summarize(req.OrderItems)
	items := make([]entity.OrderItem, len(req.OrderItems))
	copy(items, req.OrderItems)

	var order *entity.Order
	for attempt := 1; ; attempt++ {
		number, err := s.Seq.Next(ctx)
		if err != nil {
			return nil, fmt.Errorf("assign order number: %w", err)
		}

		order = &entity.Order{
			Number:      number,
			OrderType:   req.OrderType,
			PaymentType: req.PaymentType,
			InProgress:  true,
			ItemsPrice:  sum.ItemsPrice,
			TaxPrice:    sum.TaxPrice,
			TotalPrice:  sum.TotalPrice,
			OrderItems:  items,
		}
		err = s.Repo.CreateOrder(ctx, order)
		if err == nil {
			break
		}
		if errors.Is(err, repository.ErrDuplicateNumber) && attempt < numberAttempts {
			s.Log.WithFields(logrus.Fields{"number": number, "attempt": attempt}).Warn("order number taken, retrying")
			continue
		}
		return nil, fmt.Errorf("save order: %w", err)
	}

	metrics.RecordOrderCreated()
	s.Log.WithFields(logrus.Fields{"order_id": order.ID, "number": order.Number, "total": order.TotalPrice}).Info("order_created")
	s.publish(ctx, EventOrderCreated, order)
	return order, nil
}

// ----- List & Detail -----
func (s *OrderService) ListActive(ctx context.Context) ([]entity.Order, error) {
	orders, err := s.Repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) ListAll(ctx context.Context) ([]entity.Order, error) {
	orders, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return o, nil
}

// ----- Lifecycle -----

// ApplyAction flips lifecycle flags. Unknown actions still save and succeed.
func (s *OrderService) ApplyAction(ctx context.Context, id string, action OrderAction) (*entity.Order, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	known := action.Apply(o)
	if !known {
		s.Log.WithFields(logrus.Fields{"order_id": id, "action": string(action)}).Warn("unknown order action")
	}
	if err := s.Repo.SaveOrder(ctx, o); err != nil {
		return nil, fmt.Errorf("save order %s: %w", id, err)
	}

	metrics.RecordOrderAction(string(action), known)
	s.Log.WithFields(logrus.Fields{"order_id": id, "number": o.Number, "action": string(action)}).Info("order_action_applied")
	s.publish(ctx, action.eventType(), o)
	return o, nil
}

// publish never fails the caller; delivery problems are logged and counted.
func (s *OrderService) publish(ctx context.Context, typ string, o *entity.Order) {
	if s.Events == nil {
		return
	}
	ev := OrderEvent{Type: typ, Order: *o, At: time.Now().UTC()}
	if err := s.Events.Publish(ctx, ev); err != nil {
		metrics.RecordPublishFailure()
		s.Log.WithError(err).WithFields(logrus.Fields{"event": typ, "order_id": o.ID}).Error("publish order event")
	}
}
