// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order keeps a single identity from checkout to delivery; its Stage value
// object records the current hand-off position (Placed, Shipped, Assigned,
// Delivered) and validates every transition. The human-readable status label
// shown to collaborators is carried alongside the stage and updated by the
// same transition methods, so the two can never drift apart through domain
// operations.
//
// Courier references follow the stage: only Assigned (and optionally
// Delivered) orders hold one. Exclusivity of a courier across orders is a
// cross-aggregate rule and lives in the services package.
package order
