// Package actor defines the closed set of roles that act on an order.
package actor

import (
	"fmt"
	"strings"

	"orderlifecycle/internal/pkg/errs"
)

// Role identifies who submits a request. It is a closed enumeration:
// values outside the declared set fail Validate.
type Role int

const (
	// Unknown catches uninitialized Role values.
	Unknown Role = iota
	Customer
	RestaurantOwner
	DeliveryAgent
)

func getRoleStrings() map[Role]string {
	//nolint:exhaustive // Unknown has no wire name
	return map[Role]string{
		Customer:        "customer",
		RestaurantOwner: "restaurant_owner",
		DeliveryAgent:   "delivery_agent",
	}
}

// Roles returns every valid role in declaration order.
func Roles() []Role {
	return []Role{Customer, RestaurantOwner, DeliveryAgent}
}

// ParseRole maps a wire name to a Role, ignoring case and surrounding spaces.
//
// Example:
//
//	role, err := actor.ParseRole(c.Request().Header.Get("X-UserType"))
func ParseRole(s string) (Role, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for role, name := range getRoleStrings() {
		if name == normalized {
			return role, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

// Validate fails for Unknown and undeclared values.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name, or "unknown".
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// IsOneOf reports whether r is any of roles.
func (r Role) IsOneOf(roles ...Role) bool {
	for _, candidate := range roles {
		if r == candidate {
			return true
		}
	}
	return false
}
