// Package order models customer orders and their status workflow.
//
// The package includes:
//   - Order: the aggregate root holding details, status, audit timestamps and
//     the optimistic-concurrency version token
//   - Status: the seven workflow stages and the static transition table
//   - Event: OrderCreated and OrderStatusChanged, recorded by the aggregate
//     and persisted to the outbox together with the order
//
// Key business rules:
//   - Orders start in Created
//   - Completed and Cancelled are terminal, any other stage may be cancelled
//   - Re-applying the current status is an invalid transition
package order
