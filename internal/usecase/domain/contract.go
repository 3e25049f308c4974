// Package domain contains application usecases orchestrating domain logic by contract.
package domain

import (
	"context"
	"fmt"

	"github.com/near/pagoda-console-sub002/internal/entities"
)

// AddContract registers a contract under the environment's project. The
// contract inherits the environment's net at creation time.
func (u *Usecase) AddContract(ctx context.Context, userID string, environmentID int64, address string) (*entities.Contract, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if address == "" {
		return nil, fmt.Errorf("%w: address is required", entities.ErrInvalidArgument)
	}

	sel := entities.ByEnvironmentID(environmentID)
	if err := u.checkPermission(ctx, userID, sel); err != nil {
		return nil, err
	}

	env, err := u.repo.GetEnvironment(ctx, environmentID)
	if err != nil {
		return nil, err
	}
	if !env.Active {
		return nil, entities.ErrBadEnvironment
	}

	contract, err := u.repo.CreateContract(ctx, entities.Contract{
		Address:       address,
		Net:           env.Net,
		ProjectID:     env.ProjectID,
		EnvironmentID: env.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("add contract: %w", err)
	}
	return contract, nil
}

// RemoveContract soft-deletes a contract after checking permission on its
// owning project.
func (u *Usecase) RemoveContract(ctx context.Context, userID string, contractID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	contract, err := u.repo.GetContract(ctx, contractID)
	if err != nil {
		return err
	}
	if !contract.Active {
		return entities.ErrBadContract
	}

	if err := u.checkPermission(ctx, userID, entities.ByProjectID(contract.ProjectID)); err != nil {
		return err
	}
	return u.repo.SoftDeleteContract(ctx, contractID)
}

// GetContracts returns active contracts of a project the user manages.
func (u *Usecase) GetContracts(ctx context.Context, userID string, projectID int64) ([]entities.Contract, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	sel := entities.ByProjectID(projectID)
	if _, err := u.getActiveProject(ctx, sel, true); err != nil {
		return nil, err
	}
	if err := u.checkPermission(ctx, userID, sel); err != nil {
		return nil, err
	}
	return u.repo.ListContracts(ctx, projectID)
}
