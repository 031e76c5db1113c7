// Package order holds the Order aggregate and the static lifecycle it moves through.
//
// The package includes:
//   - Order: the aggregate root with identity, line items, total, address and status
//   - Status and Event: the closed sets of lifecycle states and named actions
//   - Topology: the declared (status, event) -> status edges, validated to be forward-only
//   - AuthorizationMatrix: which actor role may submit which event
//
// Key business rules:
//   - Orders start in PLACED and only move to strictly higher ranked states
//   - DELIVERED and CANCELLED are terminal and absorb every further event
//   - CANCEL is declared from every non-terminal state and granted to restaurant owners only
//   - Delivery agents can be attached only while an order is READY
package order
