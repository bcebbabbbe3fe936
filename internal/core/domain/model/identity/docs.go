// Package identity describes who is calling: user accounts, the roles they
// hold and the principal built from a verified token.
package identity
