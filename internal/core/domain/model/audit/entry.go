// Package audit models the append-only record written for every accepted transition.
package audit

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderlifecycle/internal/core/domain/model/actor"
	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/pkg/errs"
)

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Entry records that an actor moved an order into a status. Entries are never modified.
type Entry struct {
	id         kernel.UUID
	orderID    kernel.UUID
	status     order.Status
	remark     string
	actorRole  actor.Role
	actorID    int64
	createdAt  time.Time
	isDeleted  bool
	isArchived bool

	isConstructed bool
}

// NewEntry builds an entry for a transition that was just accepted.
func NewEntry(
	orderID kernel.UUID,
	status order.Status,
	remark string,
	role actor.Role,
	actorID int64,
	at time.Time,
) (*Entry, error) {
	return RestoreEntry(RestoreParams{
		ID:        kernel.NewUUID(),
		OrderID:   orderID,
		Status:    status,
		Remark:    remark,
		ActorRole: role,
		ActorID:   actorID,
		CreatedAt: at,
	})
}

// RestoreParams carries a stored entry back into the domain.
type RestoreParams struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	Status     order.Status
	Remark     string
	ActorRole  actor.Role
	ActorID    int64
	CreatedAt  time.Time
	IsDeleted  bool
	IsArchived bool
}

// RestoreEntry rebuilds a stored entry.
func RestoreEntry(p RestoreParams) (*Entry, error) {
	errList := []error{p.ID.Validate(), p.OrderID.Validate(), p.Status.Validate(), p.ActorRole.Validate()}
	if p.ActorID <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("actor id",
			fmt.Errorf("%d is not greater than 0", p.ActorID)))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Entry{
		id:            p.ID,
		orderID:       p.OrderID,
		status:        p.Status,
		remark:        strings.TrimSpace(p.Remark),
		actorRole:     p.ActorRole,
		actorID:       p.ActorID,
		createdAt:     p.CreatedAt.UTC(),
		isDeleted:     p.IsDeleted,
		isArchived:    p.IsArchived,
		isConstructed: true,
	}, nil
}

func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

func (e *Entry) ID() kernel.UUID {
	return e.id
}

func (e *Entry) OrderID() kernel.UUID {
	return e.orderID
}

func (e *Entry) Status() order.Status {
	return e.status
}

func (e *Entry) Remark() string {
	return e.remark
}

func (e *Entry) ActorRole() actor.Role {
	return e.actorRole
}

func (e *Entry) ActorID() int64 {
	return e.actorID
}

func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Entry) IsDeleted() bool {
	return e.isDeleted
}

func (e *Entry) IsArchived() bool {
	return e.isArchived
}
