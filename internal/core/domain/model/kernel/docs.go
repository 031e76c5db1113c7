// Package kernel provides the value objects shared by every aggregate of the
// order lifecycle domain.
//
// The package includes:
//   - UUID: identifiers for orders, audit entries, and delivery mappings
//   - Money: non-negative fixed-point amounts with two fractional digits
//
// Both are immutable and must be created through their constructors; zero values
// fail Validate.
package kernel
