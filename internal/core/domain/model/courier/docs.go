// Package courier contains the Courier aggregate: the delivery agent entity
// referenced, but not owned, by orders.
//
// Couriers are created and removed independently of the order lifecycle.
// Availability is never stored on the courier; it is derived at decision time
// from the orders currently in the Assigned stage.
package courier
