// Package kernel provides core domain primitives for the dispatch client.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - GeoPoint: A value object for a named geographic coordinate
//   - UUID: A value object for unique identifiers
//   - ConstructorGuard: A defensive programming pattern to ensure proper object construction
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
