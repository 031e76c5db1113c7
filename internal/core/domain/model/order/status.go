package order

import (
	"fmt"

	"orderlifecycle/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions (see topology.go):
//
//	PLACED ──> CONFIRMED ──> PREPARING ──> READY ──> PICKED_UP ──> DELIVERED
//	   │           │             │           │           │
//	   └───────────┴─────────────┴───────────┴───────────┴──────> CANCELLED
//
// The numeric value of a Status is an identifier only. Ordering between states
// comes from Rank, which is assigned explicitly in getStatusRanks.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status of every new order.
	Placed

	// Confirmed means the restaurant accepted the order.
	Confirmed

	// Preparing means the kitchen started working on the order.
	Preparing

	// Ready means the order waits for a delivery agent. Agents can only be assigned here.
	Ready

	// PickedUp means a delivery agent collected the order.
	PickedUp

	// Delivered is terminal: the order reached the customer.
	Delivered

	// Cancelled is terminal: the order was abandoned before delivery.
	Cancelled
)

// InitialStatus is the status every order is created in.
const InitialStatus = Placed

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Placed:    "PLACED",
		Confirmed: "CONFIRMED",
		Preparing: "PREPARING",
		Ready:     "READY",
		PickedUp:  "PICKED_UP",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getStatusRanks is the progress order used by the monotonic progress guard.
// A transition is accepted only if the target rank is strictly greater than the
// source rank, so every declared transition must point to a higher rank.
// Cancelled outranks every other state so it stays reachable from all of them.
func getStatusRanks() map[Status]int {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]int{
		Placed:    10,
		Confirmed: 20,
		Preparing: 30,
		Ready:     40,
		PickedUp:  50,
		Delivered: 60,
		Cancelled: 70,
	}
}

// Statuses returns every valid status sorted by rank.
func Statuses() []Status {
	return []Status{Placed, Confirmed, Preparing, Ready, PickedUp, Delivered, Cancelled}
}

// ParseStatus maps a persisted or wire name such as "PICKED_UP" to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the declared states.
func (s Status) Validate() error {
	if _, ok := getStatusRanks()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Rank returns the position of the status in the progress order, or 0 for invalid values.
func (s Status) Rank() int {
	return getStatusRanks()[s]
}

// IsTerminal reports whether no event may be applied past this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Precedes reports whether moving from s to next advances the order.
func (s Status) Precedes(next Status) bool {
	return s.Rank() > 0 && next.Rank() > s.Rank()
}
