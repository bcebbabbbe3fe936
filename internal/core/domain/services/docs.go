// Package services holds domain logic that spans aggregates.
//
// AccessPolicy evaluates the view and mutate rules for orders and restaurants.
// It never reads storage: use cases load the order, the restaurant and its
// managers first and pass them in.
package services
