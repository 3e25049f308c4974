// Package entities contains core business entities.
package entities

// Team collectively owns projects through team-project links. Only active
// teams confer access.
type Team struct {
	ID     int64
	Name   string
	Active bool
}
