// Package services provides domain services that decide on order lifecycle changes
// without touching storage.
//
// The package includes:
//   - TransitionPolicy: checks an event against terminal states, the authorization matrix,
//     the topology and the progress guard, then advances the order
package services
