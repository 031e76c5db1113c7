package queries

import (
	"errors"
	"fmt"

	"orderlifecycle/internal/pkg/errs"
	"orderlifecycle/internal/pkg/guard"
)

var ErrGetReadyForPickupOrdersQueryIsNotConstructed = errors.New(
	"GetReadyForPickupOrdersQuery must be created via NewGetReadyForPickupOrdersQuery constructor",
)

// GetReadyForPickupOrdersQuery lists the orders mapped to a delivery agent.
// RestaurantID narrows the list to one restaurant; ReadyOnly keeps only orders in READY.
//
// Example:
//
//	restaurantID := int64(201)
//	query, err := NewGetReadyForPickupOrdersQuery(77, &restaurantID, true)
type GetReadyForPickupOrdersQuery struct {
	deliveryAgentID int64
	restaurantID    *int64
	readyOnly       bool

	guard guard.ConstructorGuard
}

func NewGetReadyForPickupOrdersQuery(
	deliveryAgentID int64,
	restaurantID *int64,
	readyOnly bool,
) (GetReadyForPickupOrdersQuery, error) {
	var errList []error
	if deliveryAgentID <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("delivery agent id",
			fmt.Errorf("%d is not greater than 0", deliveryAgentID)))
	}
	if restaurantID != nil && *restaurantID <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("restaurant id",
			fmt.Errorf("%d is not greater than 0", *restaurantID)))
	}
	if err := errors.Join(errList...); err != nil {
		return GetReadyForPickupOrdersQuery{}, err
	}

	query := GetReadyForPickupOrdersQuery{
		deliveryAgentID: deliveryAgentID,
		readyOnly:       readyOnly,
		guard:           guard.NewConstructorGuard(),
	}
	if restaurantID != nil {
		id := *restaurantID
		query.restaurantID = &id
	}
	return query, nil
}

func (q GetReadyForPickupOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetReadyForPickupOrdersQueryIsNotConstructed)
}

func (q GetReadyForPickupOrdersQuery) DeliveryAgentID() int64 {
	return q.deliveryAgentID
}

// RestaurantID returns the restaurant filter and whether one is set.
func (q GetReadyForPickupOrdersQuery) RestaurantID() (int64, bool) {
	if q.restaurantID == nil {
		return 0, false
	}
	return *q.restaurantID, true
}

func (q GetReadyForPickupOrdersQuery) ReadyOnly() bool {
	return q.readyOnly
}
