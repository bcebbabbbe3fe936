// Package restaurant models restaurants and the users who manage them.
package restaurant
