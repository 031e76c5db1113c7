// Package delivery models which delivery agent carries an order.
package delivery

import (
	"errors"
	"fmt"
	"time"

	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/pkg/errs"
)

var ErrMappingIsNotConstructed = errors.New("Mapping must be created via NewMapping constructor")

// Mapping attaches one delivery agent to one order. There is at most one mapping per order;
// reassigning an agent rewrites the existing mapping in place.
type Mapping struct {
	id              kernel.UUID
	orderID         kernel.UUID
	deliveryAgentID int64
	isDeleted       bool
	isArchived      bool
	createdAt       time.Time
	updatedAt       time.Time

	isConstructed bool
}

// NewMapping creates a mapping for an order that has none yet.
// The caller checks that the order is READY; the mapping itself only validates ids.
//
// Example:
//
//	m, err := delivery.NewMapping(o.ID(), 9, time.Now())
//	if err != nil {
//	    return err
//	}
//	err = uow.DeliveryMappingRepository().Add(ctx, m)
func NewMapping(orderID kernel.UUID, deliveryAgentID int64, at time.Time) (*Mapping, error) {
	return RestoreMapping(RestoreParams{
		ID:              kernel.NewUUID(),
		OrderID:         orderID,
		DeliveryAgentID: deliveryAgentID,
		CreatedAt:       at,
		UpdatedAt:       at,
	})
}

// RestoreParams carries a stored mapping row back into the domain.
type RestoreParams struct {
	ID              kernel.UUID
	OrderID         kernel.UUID
	DeliveryAgentID int64
	IsDeleted       bool
	IsArchived      bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RestoreMapping rebuilds a mapping from storage, keeping its deleted and archived flags.
func RestoreMapping(p RestoreParams) (*Mapping, error) {
	if err := errors.Join(
		p.ID.Validate(),
		p.OrderID.Validate(),
		validateAgentID(p.DeliveryAgentID),
	); err != nil {
		return nil, err
	}

	return &Mapping{
		id:              p.ID,
		orderID:         p.OrderID,
		deliveryAgentID: p.DeliveryAgentID,
		isDeleted:       p.IsDeleted,
		isArchived:      p.IsArchived,
		createdAt:       p.CreatedAt.UTC(),
		updatedAt:       p.UpdatedAt.UTC(),
		isConstructed:   true,
	}, nil
}

// Validate returns ErrMappingIsNotConstructed for nil and zero-value mappings.
func (m *Mapping) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMappingIsNotConstructed
	}
	return nil
}

// ReassignTo replaces the agent. A soft-deleted mapping is revived.
// The mapping id and order id never change, so an order keeps one row however
// often it is reassigned.
//
// Example:
//
//	m, err := repo.GetByOrder(ctx, orderID)
//	if err != nil {
//	    return err
//	}
//	if err = m.ReassignTo(12, time.Now()); err != nil {
//	    return err
//	}
//	err = repo.Update(ctx, m)
func (m *Mapping) ReassignTo(deliveryAgentID int64, at time.Time) error {
	if err := validateAgentID(deliveryAgentID); err != nil {
		return err
	}
	m.deliveryAgentID = deliveryAgentID
	m.isDeleted = false
	m.updatedAt = at.UTC()
	return nil
}

func (m *Mapping) ID() kernel.UUID {
	return m.id
}

// OrderID returns the order the agent carries. It is unique across mappings.
func (m *Mapping) OrderID() kernel.UUID {
	return m.orderID
}

// DeliveryAgentID returns the currently assigned agent.
func (m *Mapping) DeliveryAgentID() int64 {
	return m.deliveryAgentID
}

func (m *Mapping) IsDeleted() bool {
	return m.isDeleted
}

// IsArchived reports whether the archive job flagged the mapping together with its order.
func (m *Mapping) IsArchived() bool {
	return m.isArchived
}

func (m *Mapping) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Mapping) UpdatedAt() time.Time {
	return m.updatedAt
}

func validateAgentID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivery agent id", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}
