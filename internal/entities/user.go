// Package entities contains core business entities.
package entities

// User is an opaque identity from the external auth provider, referenced by id.
type User struct {
	ID     string
	Active bool
}
