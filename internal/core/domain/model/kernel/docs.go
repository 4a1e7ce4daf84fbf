// Package kernel provides core domain primitives shared across the order and
// courier models.
//
// It contains the value objects every aggregate builds on:
//   - UUID: validated entity identifier wrapping github.com/google/uuid
//   - Address: structured shipping address with required recipient fields
//
// All kernel types are immutable value objects constructed through factory
// functions; zero values fail Validate. This keeps invalid primitives from
// ever reaching the aggregates that embed them.
package kernel
