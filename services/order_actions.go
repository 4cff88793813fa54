package services

import "github.com/jibrilosman/self-order-kiosk/entity"

// OrderAction is the body of PUT /orders/:id.
type OrderAction string

const (
	ActionReady   OrderAction = "ready"
	ActionDeliver OrderAction = "deliver"
	ActionCancel  OrderAction = "cancel"
)

// Apply sets the flags for a known action and reports whether it knew it.
// Flags are independent: cancel after deliver (or the reverse) is allowed.
func (a OrderAction) Apply(o *entity.Order) bool {
	switch a {
	case ActionReady:
		o.IsReady = true
		o.InProgress = false
	case ActionDeliver:
		o.IsDelivered = true
	case ActionCancel:
		o.IsCanceled = true
	default:
		return false
	}
	return true
}

func (a OrderAction) eventType() string {
	switch a {
	case ActionReady:
		return EventOrderReady
	case ActionDeliver:
		return EventOrderDelivered
	case ActionCancel:
		return EventOrderCanceled
	default:
		return EventOrderUpdated
	}
}
