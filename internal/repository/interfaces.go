// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/near/pagoda-console-sub002/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user and team provisioning operations.
type UserInterface interface {
	ProvisionUser(ctx context.Context, userID string) (*entities.User, *entities.Team, error)
	ActiveTeamID(ctx context.Context, userID string) (int64, bool, error)
	HasProjectPermission(ctx context.Context, userID string, sel entities.ProjectSelector) (bool, error)
}

// ProjectInterface exposes project and environment operations.
type ProjectInterface interface {
	CreateProject(ctx context.Context, teamID int64, name string, net entities.Net) (*entities.Project, error)
	GetProject(ctx context.Context, sel entities.ProjectSelector, lite bool) (*entities.Project, error)
	SoftDeleteProject(ctx context.Context, projectID int64) error
	ListProjects(ctx context.Context, userID string) ([]entities.Project, error)
	GetEnvironment(ctx context.Context, environmentID int64) (*entities.Environment, error)
	ListEnvironments(ctx context.Context, projectID int64) ([]entities.Environment, error)
}

// ContractInterface exposes contract operations.
type ContractInterface interface {
	CreateContract(ctx context.Context, c entities.Contract) (*entities.Contract, error)
	GetContract(ctx context.Context, contractID int64) (*entities.Contract, error)
	SoftDeleteContract(ctx context.Context, contractID int64) error
	ListContracts(ctx context.Context, projectID int64) ([]entities.Contract, error)
}

// KeyInterface exposes API key operations.
type KeyInterface interface {
	ListKeys(ctx context.Context, projectID int64) ([]entities.APIKey, error)
	RotateKey(ctx context.Context, projectID int64) (*entities.APIKey, error)
}
