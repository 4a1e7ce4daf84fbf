// Package services contains domain services: business rules that span more
// than one aggregate.
//
// AssignmentService owns the courier exclusivity rule. It validates a claim
// against the derived busy set before letting an order enter the Assigned
// stage; the final word under concurrent claims belongs to the store's
// uniqueness constraint.
package services
