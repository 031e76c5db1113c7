// Package lifecycle holds the per-order record of the last accepted transition.
//
// A Context is a cache of where the lifecycle engine last left an order. The order row
// stays authoritative: when the two disagree, the order's status wins.
package lifecycle

import (
	"errors"
	"time"

	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/core/domain/model/order"
)

var ErrContextIsNotConstructed = errors.New("Context must be created via NewContext constructor")

// Context remembers the status and event of the last accepted transition of one order.
type Context struct {
	orderID    kernel.UUID
	lastStatus order.Status
	lastEvent  order.Event
	updatedAt  time.Time

	isConstructed bool
}

// NewContext builds the context for an order after event moved it into status.
func NewContext(orderID kernel.UUID, status order.Status, event order.Event, at time.Time) (*Context, error) {
	var eventErr error
	if !event.IsDeclared() {
		eventErr = errors.New("last event must be a declared event")
	}
	if err := errors.Join(orderID.Validate(), status.Validate(), eventErr); err != nil {
		return nil, err
	}

	return &Context{
		orderID:       orderID,
		lastStatus:    status,
		lastEvent:     event,
		updatedAt:     at.UTC(),
		isConstructed: true,
	}, nil
}

func (c *Context) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrContextIsNotConstructed
	}
	return nil
}

func (c *Context) OrderID() kernel.UUID {
	return c.orderID
}

func (c *Context) LastStatus() order.Status {
	return c.lastStatus
}

func (c *Context) LastEvent() order.Event {
	return c.lastEvent
}

func (c *Context) UpdatedAt() time.Time {
	return c.updatedAt
}

// AgreesWith reports whether the context points at the order's current status.
func (c *Context) AgreesWith(o *order.Order) bool {
	return c.orderID.IsEqual(o.ID()) && c.lastStatus == o.Status()
}
