package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/near/pagoda-console-sub002/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertContractQuery = `
INSERT INTO contracts(address, net, project_id, environment_id)
VALUES($1, $2, $3, $4)
RETURNING id, created_at`
	selectContractQuery = `
SELECT id, address, net, project_id, environment_id, is_active, created_at
FROM contracts
WHERE id = $1`
	deactivateContractQuery = `UPDATE contracts SET is_active = false WHERE id = $1`
	listContractsQuery      = `
SELECT id, address, net, project_id, environment_id, is_active, created_at
FROM contracts
WHERE project_id = $1 AND is_active
ORDER BY id`
)

// CreateContract inserts a contract row. Net and project id come prefilled by
// the caller from the parent environment.
func (p *Postgres) CreateContract(ctx context.Context, c entities.Contract) (*entities.Contract, error) {
	var createdAt time.Time
	err := p.db.QueryRow(ctx, insertContractQuery, c.Address, c.Net, c.ProjectID, c.EnvironmentID).
		Scan(&c.ID, &createdAt)
	if err != nil {
		p.log.Errorw("failed to insert contract", "error", err, "address", c.Address)
		return nil, fmt.Errorf("insert contract: %w", err)
	}
	c.Active = true
	c.CreatedAt = &createdAt

	p.log.Infow("contract created", "contract_id", c.ID, "project_id", c.ProjectID, "address", c.Address)
	return &c, nil
}

// GetContract fetches a contract by id. Missing rows map to ErrBadContract.
func (p *Postgres) GetContract(ctx context.Context, contractID int64) (*entities.Contract, error) {
	var c entities.Contract
	var createdAt time.Time
	err := p.db.QueryRow(ctx, selectContractQuery, contractID).
		Scan(&c.ID, &c.Address, &c.Net, &c.ProjectID, &c.EnvironmentID, &c.Active, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrBadContract
		}
		return nil, fmt.Errorf("get contract: %w", err)
	}
	c.CreatedAt = &createdAt
	return &c, nil
}

// SoftDeleteContract flips the active flag off. Missing rows map to ErrBadContract.
func (p *Postgres) SoftDeleteContract(ctx context.Context, contractID int64) error {
	tag, err := p.db.Exec(ctx, deactivateContractQuery, contractID)
	if err != nil {
		p.log.Errorw("failed to deactivate contract", "error", err, "contract_id", contractID)
		return fmt.Errorf("deactivate contract: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrBadContract
	}
	p.log.Infow("contract deactivated", "contract_id", contractID)
	return nil
}

// ListContracts returns active contracts of a project.
func (p *Postgres) ListContracts(ctx context.Context, projectID int64) ([]entities.Contract, error) {
	rows, err := p.db.Query(ctx, listContractsQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()

	contracts := make([]entities.Contract, 0)
	for rows.Next() {
		var c entities.Contract
		var createdAt time.Time
		if err := rows.Scan(&c.ID, &c.Address, &c.Net, &c.ProjectID, &c.EnvironmentID, &c.Active, &createdAt); err != nil {
			p.log.Errorw("failed to scan contract", "error", err, "project_id", projectID)
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		c.CreatedAt = &createdAt
		contracts = append(contracts, c)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate contracts", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("iterate contracts: %w", err)
	}

	return contracts, nil
}
