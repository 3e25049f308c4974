package usecase

import (
	"context"

	"github.com/near/pagoda-console-sub002/internal/entities"
)

// UserUsecaseInterface abstracts user provisioning for the delivery layer.
type UserUsecaseInterface interface {
	ProvisionUser(ctx context.Context, userID string) (*entities.User, *entities.Team, error)
}

// ProjectUsecaseInterface abstracts project lifecycle operations.
type ProjectUsecaseInterface interface {
	CreateProject(ctx context.Context, userID, name string, net entities.Net) (*entities.Project, error)
	DeleteProject(ctx context.Context, userID string, projectID int64) error
	ListProjects(ctx context.Context, userID string) ([]entities.Project, error)
	GetEnvironments(ctx context.Context, userID string, projectID int64) ([]entities.Environment, error)
}

// ContractUsecaseInterface abstracts contract lifecycle operations.
type ContractUsecaseInterface interface {
	AddContract(ctx context.Context, userID string, environmentID int64, address string) (*entities.Contract, error)
	RemoveContract(ctx context.Context, userID string, contractID int64) error
	GetContracts(ctx context.Context, userID string, projectID int64) ([]entities.Contract, error)
}

// KeyUsecaseInterface abstracts API key operations.
type KeyUsecaseInterface interface {
	GetKeys(ctx context.Context, userID string, projectID int64) ([]entities.APIKey, error)
	RotateKey(ctx context.Context, userID string, projectID int64) (*entities.APIKey, error)
}
