package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// InitialVersion is the version of a freshly placed order.
const InitialVersion int64 = 1

// Order is the aggregate root of the lifecycle. Its status only ever moves forward
// through the topology, and once it reaches a terminal status it never changes again.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Customer and restaurant identifiers are positive
//   - Has at least one line item and a positive total
//   - Delivery address is not blank
//   - Version starts at InitialVersion and grows by one with every persisted update
//
// An Order loaded from storage carries the version it was read at. Repositories use it as
// the optimistic concurrency token, so a loaded instance is meant to be persisted once.
type Order struct {
	id           kernel.UUID
	customerID   int64
	restaurantID int64
	status       Status
	items        []LineItem
	total        kernel.Money
	address      string
	isDeleted    bool
	isArchived   bool
	createdAt    time.Time
	updatedAt    time.Time
	version      int64

	isConstructed bool
}

// NewOrder creates an order in InitialStatus.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("12.50")
//	item, _ := order.NewLineItem(7, "Margherita", 2, price)
//	total, _ := kernel.MoneyFromString("25.00")
//	o, err := order.NewOrder(kernel.NewUUID(), 101, 201, []order.LineItem{item}, total, "12 Baker St", time.Now())
func NewOrder(
	id kernel.UUID,
	customerID, restaurantID int64,
	items []LineItem,
	total kernel.Money,
	address string,
	now time.Time,
) (*Order, error) {
	order := &Order{
		status:        InitialStatus,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		version:       InitialVersion,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setRestaurantID(restaurantID),
		order.setItems(items),
		order.setTotal(total),
		order.setAddress(address),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreParams carries a persisted order back into the domain.
type RestoreParams struct {
	ID           kernel.UUID
	CustomerID   int64
	RestaurantID int64
	Status       Status
	Items        []LineItem
	Total        kernel.Money
	Address      string
	IsDeleted    bool
	IsArchived   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Version      int64
}

// RestoreOrder rebuilds an order from storage. Unlike NewOrder it accepts any valid status.
func RestoreOrder(p RestoreParams) (*Order, error) {
	order := &Order{
		isDeleted:     p.IsDeleted,
		isArchived:    p.IsArchived,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(p.ID),
		order.setCustomerID(p.CustomerID),
		order.setRestaurantID(p.RestaurantID),
		order.setStatus(p.Status),
		order.setItems(p.Items),
		order.setTotal(p.Total),
		order.setAddress(p.Address),
		order.setVersion(p.Version),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was built by NewOrder or RestoreOrder.
// A nil order and a zero-value struct both return ErrOrderIsNotConstructed,
// so the transition policy can call it before reading any field.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Status, items and version are ignored; a nil other is never equal.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the id of the customer who placed the order.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

func (o *Order) RestaurantID() int64 {
	return o.restaurantID
}

// Status returns the current lifecycle status.
// Only AdvanceTo changes it after construction.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the amount charged for the order.
func (o *Order) Total() kernel.Money {
	return o.total
}

// DeliveryAddress returns the trimmed address the order is delivered to.
func (o *Order) DeliveryAddress() string {
	return o.address
}

func (o *Order) IsDeleted() bool {
	return o.isDeleted
}

// IsArchived reports whether the archive job has flagged the order.
// Archived orders are still readable and still accept events.
func (o *Order) IsArchived() bool {
	return o.isArchived
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the version the order was created or loaded at.
// It does not change in memory; the repository compares it on update and
// increments the stored copy.
//
// Example:
//
//	o, _ := repo.Get(ctx, id)      // o.Version() == 3
//	_ = repo.Update(ctx, o)        // row now at version 4
//	_ = repo.Update(ctx, o)        // ConcurrencyConflictError: still expects 3
func (o *Order) Version() int64 {
	return o.version
}

// AdvanceTo moves the order to next as the result of event and stamps updatedAt.
//
// It rejects:
//   - any change once the order is terminal (StateIsInvalidError)
//   - a target that does not rank above the current status (TransitionIsInvalidError)
//
// AdvanceTo does not consult the topology; callers resolve next through Topology.Next first.
//
// Example:
//
//	next, err := order.DefaultTopology().Next(o.Status(), order.MarkReady)
//	if err != nil {
//	    return err
//	}
//	if err = o.AdvanceTo(order.MarkReady, next, time.Now()); err != nil {
//	    return err
//	}
func (o *Order) AdvanceTo(event Event, next Status, at time.Time) error {
	if o.status.IsTerminal() {
		return errs.NewStateIsInvalidError("order", o.status.String())
	}
	if err := next.Validate(); err != nil {
		return err
	}
	if !o.status.Precedes(next) {
		return errs.NewTransitionIsInvalidErrorWithCause(o.status.String(), event.String(),
			errors.New("transition would not advance the order"))
	}

	o.status = next
	o.updatedAt = at.UTC()
	return nil
}

// ValidateAssignable reports whether a delivery agent may be attached to the order.
// Only READY orders accept an agent.
func (o *Order) ValidateAssignable() error {
	if o.status.IsTerminal() {
		return errs.NewStateIsInvalidError("order", o.status.String())
	}
	if o.status != Ready {
		return errs.NewStateIsInvalidErrorWithCause("order", o.status.String(),
			errors.New("not ready for delivery"))
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("customer id", fmt.Errorf("%d is not greater than 0", id))
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("restaurant id", fmt.Errorf("%d is not greater than 0", id))
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err)
		}
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	if !total.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("total", fmt.Errorf("%s is not greater than 0", total))
	}
	o.total = total
	return nil
}

func (o *Order) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.address = address
	return nil
}

func (o *Order) setVersion(version int64) error {
	if version < InitialVersion {
		return errs.NewVersionIsInvalidError("order version",
			fmt.Errorf("%d is less than %d", version, InitialVersion))
	}
	o.version = version
	return nil
}
