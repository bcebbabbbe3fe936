// Package errs provides the error types shared by the domain, application and
// adapter layers.
//
// Every type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound) usable with errors.Is
//   - a struct carrying the details, usable with errors.As
//   - constructors with and without a cause
//   - Unwrap returning the sentinel
//
// Business outcomes that callers are expected to handle (order not found,
// forbidden, wrong status) are modelled as result variants by the use cases;
// the types in this package describe failures detected below that level, such
// as a missing row, a rejected foreign key or a stale version token.
package errs
