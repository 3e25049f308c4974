package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/near/pagoda-console-sub002/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	listKeysQuery = `
SELECT id, project_id, key, is_active, created_at
FROM api_keys
WHERE project_id = $1 AND is_active
ORDER BY id`
	revokeKeysQuery = `UPDATE api_keys SET is_active = false WHERE project_id = $1 AND is_active`
	insertKeyQuery  = `
INSERT INTO api_keys(project_id, key)
VALUES($1, $2)
RETURNING id, created_at`
)

// ListKeys returns active API keys of a project.
func (p *Postgres) ListKeys(ctx context.Context, projectID int64) ([]entities.APIKey, error) {
	rows, err := p.db.Query(ctx, listKeysQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	defer rows.Close()

	keys := make([]entities.APIKey, 0)
	for rows.Next() {
		var k entities.APIKey
		var createdAt time.Time
		if err := rows.Scan(&k.ID, &k.ProjectID, &k.Key, &k.Active, &createdAt); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		k.CreatedAt = &createdAt
		keys = append(keys, k)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate keys: %w", err)
	}

	return keys, nil
}

// RotateKey revokes the project's active keys and mints a fresh one in a
// single transaction.
func (p *Postgres) RotateKey(ctx context.Context, projectID int64) (*entities.APIKey, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, revokeKeysQuery, projectID); err != nil {
		p.log.Errorw("failed to revoke keys", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("revoke keys: %w", err)
	}

	k := entities.APIKey{ProjectID: projectID, Key: uuid.NewString(), Active: true}
	var createdAt time.Time
	if err := tx.QueryRow(ctx, insertKeyQuery, projectID, k.Key).Scan(&k.ID, &createdAt); err != nil {
		p.log.Errorw("failed to insert key", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("insert key: %w", err)
	}
	k.CreatedAt = &createdAt

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("api key rotated", "project_id", projectID, "key_id", k.ID)
	return &k, nil
}
