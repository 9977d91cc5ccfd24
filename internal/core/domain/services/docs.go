// Package services provides domain services of the dispatch client that
// compute derived state across aggregates.
//
// The package includes:
//   - MapViewBuilder: a pure function of the session state and the courier
//     position that produces the marker set and camera command for the map
//     surface
//
// Domain services hold no mutable state of their own; rendering side effects
// are performed by adapters behind the MapSurface port.
package services
