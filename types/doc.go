// Package types defines the canonical synthesized data model: attribute
// mappings, monitoring features, and measurement time-value-pair series.
//
// Objects of these types are what a synthesis query streams back to the
// caller. They are expressed entirely in canonical vocabulary; wherever a
// provider term could not be mapped, the attribute carries the NOT_SUPPORTED
// sentinel mapping rather than being dropped, so consumers can filter
// annotated records instead of losing data silently.
package types
