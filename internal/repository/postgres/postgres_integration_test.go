package postgres_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/near/pagoda-console-sub002/config"
	"github.com/near/pagoda-console-sub002/internal/entities"
	"github.com/near/pagoda-console-sub002/internal/repository"
	"github.com/near/pagoda-console-sub002/internal/usecase/domain"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo, err := repository.New(ctx, "postgres", testLogger(t), cfg)
	require.NoError(t, err)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	usr, team, err := repo.ProvisionUser(ctx, "alice")
	require.NoError(t, err)
	require.True(t, usr.Active)
	require.True(t, team.Active)

	_, teamAgain, err := repo.ProvisionUser(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, team.ID, teamAgain.ID)

	teamID, found, err := repo.ActiveTeamID(ctx, "alice")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, team.ID, teamID)

	proj, err := repo.CreateProject(ctx, team.ID, "demo", entities.NetTest)
	require.NoError(t, err)
	require.True(t, proj.Active)
	require.NotNil(t, proj.CreatedAt)

	envs, err := repo.ListEnvironments(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, envs, 1)
	require.Equal(t, entities.NetTest, envs[0].Net)
	require.Equal(t, proj.ID, envs[0].ProjectID)

	allowed, err := repo.HasProjectPermission(ctx, "alice", entities.ByProjectID(proj.ID))
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = repo.HasProjectPermission(ctx, "alice", entities.ByEnvironmentID(envs[0].ID))
	require.NoError(t, err)
	require.True(t, allowed)

	_, _, err = repo.ProvisionUser(ctx, "bob")
	require.NoError(t, err)
	allowed, err = repo.HasProjectPermission(ctx, "bob", entities.ByProjectID(proj.ID))
	require.NoError(t, err)
	require.False(t, allowed)

	lite, err := repo.GetProject(ctx, entities.ByProjectID(proj.ID), true)
	require.NoError(t, err)
	require.True(t, lite.Active)

	full, err := repo.GetProject(ctx, entities.ByEnvironmentID(envs[0].ID), false)
	require.NoError(t, err)
	require.Equal(t, proj.ID, full.ID)
	require.Equal(t, entities.NetTest, full.Net)

	contract, err := repo.CreateContract(ctx, entities.Contract{
		Address:       "counter.testnet",
		Net:           envs[0].Net,
		ProjectID:     envs[0].ProjectID,
		EnvironmentID: envs[0].ID,
	})
	require.NoError(t, err)
	require.True(t, contract.Active)
	require.Equal(t, proj.Net, contract.Net)

	contracts, err := repo.ListContracts(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, contracts, 1)

	require.NoError(t, repo.SoftDeleteContract(ctx, contract.ID))
	contracts, err = repo.ListContracts(ctx, proj.ID)
	require.NoError(t, err)
	require.Empty(t, contracts)

	removed, err := repo.GetContract(ctx, contract.ID)
	require.NoError(t, err)
	require.False(t, removed.Active)

	require.NoError(t, repo.SoftDeleteProject(ctx, proj.ID))
	deleted, err := repo.GetProject(ctx, entities.ByProjectID(proj.ID), true)
	require.NoError(t, err)
	require.False(t, deleted.Active)

	projects, err := repo.ListProjects(ctx, "alice")
	require.NoError(t, err)
	require.Empty(t, projects)

	_, err = repo.GetProject(ctx, entities.ByProjectID(999999), true)
	require.ErrorIs(t, err, entities.ErrBadProject)
	_, err = repo.GetContract(ctx, 999999)
	require.ErrorIs(t, err, entities.ErrBadContract)
	_, err = repo.GetEnvironment(ctx, 999999)
	require.ErrorIs(t, err, entities.ErrBadEnvironment)
}

func TestKeyRotationIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo, err := repository.New(ctx, "postgres", testLogger(t), cfg)
	require.NoError(t, err)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	_, team, err := repo.ProvisionUser(ctx, "alice")
	require.NoError(t, err)
	proj, err := repo.CreateProject(ctx, team.ID, "demo", entities.NetMain)
	require.NoError(t, err)

	k1, err := repo.RotateKey(ctx, proj.ID)
	require.NoError(t, err)
	require.True(t, k1.Active)

	keys, err := repo.ListKeys(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, keys, 1)
	require.Equal(t, k1.Key, keys[0].Key)

	k2, err := repo.RotateKey(ctx, proj.ID)
	require.NoError(t, err)
	require.NotEqual(t, k1.Key, k2.Key)

	keys, err = repo.ListKeys(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, keys, 1)
	require.Equal(t, k2.Key, keys[0].Key)
}

func TestDomainLifecycleIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo, err := repository.New(ctx, "postgres", testLogger(t), cfg)
	require.NoError(t, err)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	uc := domain.New(testLogger(t), ctx, repo, 10*time.Second)

	_, _, err = uc.ProvisionUser(ctx, "alice")
	require.NoError(t, err)

	proj, err := uc.CreateProject(ctx, "alice", "demo", entities.NetTest)
	require.NoError(t, err)

	envs, err := uc.GetEnvironments(ctx, "alice", proj.ID)
	require.NoError(t, err)
	require.Len(t, envs, 1)

	contract, err := uc.AddContract(ctx, "alice", envs[0].ID, "counter.testnet")
	require.NoError(t, err)
	require.Equal(t, proj.Net, contract.Net)
	require.True(t, contract.Active)

	// a user outside the owning team cannot touch the contract
	_, _, err = uc.ProvisionUser(ctx, "bob")
	require.NoError(t, err)
	err = uc.RemoveContract(ctx, "bob", contract.ID)
	require.ErrorIs(t, err, entities.ErrPermissionDenied)

	require.NoError(t, uc.RemoveContract(ctx, "alice", contract.ID))
	err = uc.RemoveContract(ctx, "alice", contract.ID)
	require.ErrorIs(t, err, entities.ErrBadContract)

	require.NoError(t, uc.DeleteProject(ctx, "alice", proj.ID))
	err = uc.DeleteProject(ctx, "alice", proj.ID)
	require.ErrorIs(t, err, entities.ErrBadProject)

	_, err = uc.GetContracts(ctx, "alice", proj.ID)
	require.ErrorIs(t, err, entities.ErrBadProject)

	// an unprovisioned user hits the untyped no-team failure
	_, err = uc.CreateProject(ctx, "ghost", "demo2", entities.NetTest)
	require.Error(t, err)
	require.NotErrorIs(t, err, entities.ErrPermissionDenied)
	require.NotErrorIs(t, err, entities.ErrBadProject)
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=developer_console_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "developer_console_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=developer_console_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
