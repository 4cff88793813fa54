package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jibrilosman/self-order-kiosk/entity"
)

const (
	EventOrderCreated   = "order.created"
	EventOrderReady     = "order.ready"
	EventOrderDelivered = "order.delivered"
	EventOrderCanceled  = "order.canceled"
	EventOrderUpdated   = "order.updated"
)

// OrderEvent announces a change to a persisted order.
type OrderEvent struct {
	Type  string       `json:"type"`
	Order entity.Order `json:"order"`
	At    time.Time    `json:"at"`
}

type Publisher interface {
	Publish(ctx context.Context, ev OrderEvent) error
}

type PublisherFunc func(ctx context.Context, ev OrderEvent) error

func (f PublisherFunc) Publish(ctx context.Context, ev OrderEvent) error { return f(ctx, ev) }

// Publishers fans an event out to every member and joins their errors.
type Publishers []Publisher

func (ps Publishers) Publish(ctx context.Context, ev OrderEvent) error {
	var errs []error
	for _, p := range ps {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Broker is a message bus that takes a routing key and a JSON body.
type Broker interface {
	Publish(ctx context.Context, key string, body []byte) error
}

// BrokerPublisher routes events by type, e.g. "order.ready".
type BrokerPublisher struct {
	Broker Broker
}

func (p BrokerPublisher) Publish(ctx context.Context, ev OrderEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", ev.Type, err)
	}
	return p.Broker.Publish(ctx, ev.Type, body)
}
