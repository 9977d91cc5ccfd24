// Package order provides the delivery order value object of the dispatch client.
//
// An Order is a read-only record owned by the order catalog: the client
// browses, selects, and executes orders, but never mutates their fields.
// Execution progress is tracked by the session aggregate, not by the order
// itself.
//
// Key business rules:
//   - Orders must have a positive catalog-assigned identifier and a vendor name
//   - Pickup (point A) and dropoff (point B) must be valid geo points
//   - Fee and distance are display-formatted strings supplied by the catalog
//   - Orders are immutable and compared by identifier
package order
