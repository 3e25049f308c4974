// Package entities contains core business entities.
package entities

import "time"

// Net enumerates target network designators.
type Net string

const (
	// NetTest marks testnet entities.
	NetTest Net = "TESTNET"
	// NetMain marks mainnet entities.
	NetMain Net = "MAINNET"
)

// ValidNet reports whether n is a known network designator.
func ValidNet(n Net) bool {
	return n == NetTest || n == NetMain
}

// Project is a console project owned by a team. Projects are never physically
// deleted; Active=false marks them soft-deleted.
type Project struct {
	ID        int64
	Name      string
	Net       Net
	Active    bool
	CreatedAt *time.Time
}

// Environment is a per-network sub-scope of a project. Contracts are added
// through an environment and inherit its net.
type Environment struct {
	ID        int64
	ProjectID int64
	Name      string
	Net       Net
	Active    bool
}

// ProjectSelector identifies a project either directly by id or indirectly
// through one of its environments. Exactly one field is set.
type ProjectSelector struct {
	ProjectID     *int64
	EnvironmentID *int64
}

// ByProjectID builds a selector carrying the project id.
func ByProjectID(id int64) ProjectSelector {
	return ProjectSelector{ProjectID: &id}
}

// ByEnvironmentID builds a selector resolving through an environment.
func ByEnvironmentID(id int64) ProjectSelector {
	return ProjectSelector{EnvironmentID: &id}
}
