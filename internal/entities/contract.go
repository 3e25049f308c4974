// Package entities contains core business entities.
package entities

import "time"

// Contract is a deployed contract tracked under a project. The net is copied
// from the parent environment at creation time and never changes.
type Contract struct {
	ID            int64
	Address       string
	Net           Net
	ProjectID     int64
	EnvironmentID int64
	Active        bool
	CreatedAt     *time.Time
}

// APIKey is a provisioned project credential. Rotation deactivates the
// current key and mints a fresh one.
type APIKey struct {
	ID        int64
	ProjectID int64
	Key       string
	Active    bool
	CreatedAt *time.Time
}
