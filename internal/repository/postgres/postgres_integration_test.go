package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	deploymentModels "github.com/altinn/designer-api/api/deployments/models"
	"github.com/altinn/designer-api/internal/database"
	"github.com/altinn/designer-api/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestPool(t *testing.T) *pgxpool.Pool {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := database.Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, database.Migrate(ctx, pool))
	return pool
}

// uniqueOrg isolates each test's rows in a shared database.
func uniqueOrg() string {
	return "org-" + uuid.NewString()[:8]
}

func Test_ReleaseRepository_GetSucceededRelease(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()
	releases := NewReleaseRepository(pool)
	org := uniqueOrg()
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	seed := func(tag, buildID string, status deploymentModels.BuildStatus, result deploymentModels.BuildResult, offset time.Duration) {
		_, err := releases.Create(ctx, &deploymentModels.ReleaseEntity{
			Org: org, App: "app1", TagName: tag, TargetCommitish: "abc123",
			Build:   deploymentModels.BuildEntity{ID: buildID, Status: status, Result: result},
			Created: created.Add(offset),
		})
		require.NoError(t, err)
	}
	seed("1.0.0", "1", deploymentModels.BuildStatusCompleted, deploymentModels.BuildResultSucceeded, 0)
	seed("1.0.0", "2", deploymentModels.BuildStatusCompleted, deploymentModels.BuildResultFailed, time.Minute)
	seed("1.0.1", "3", deploymentModels.BuildStatusCompleted, deploymentModels.BuildResultPartiallySucceeded, 0)
	seed("1.0.2", "4", deploymentModels.BuildStatusInProgress, "", 0)
	seed("1.0.3", "5", deploymentModels.BuildStatusCompleted, deploymentModels.BuildResultFailed, 0)
	seed("1.0.4", "6", deploymentModels.BuildStatusCompleted, deploymentModels.BuildResultCanceled, 0)

	t.Run("newer failed build of the same tag is skipped", func(t *testing.T) {
		release, err := releases.GetSucceededRelease(ctx, org, "app1", "1.0.0")
		require.NoError(t, err)
		assert.Equal(t, "1", release.Build.ID)
		assert.Equal(t, "abc123", release.TargetCommitish)
	})

	t.Run("partially succeeded counts as succeeded", func(t *testing.T) {
		release, err := releases.GetSucceededRelease(ctx, org, "app1", "1.0.1")
		require.NoError(t, err)
		assert.Equal(t, "3", release.Build.ID)
	})

	for _, tag := range []string{"1.0.2", "1.0.3", "1.0.4", "9.9.9"} {
		t.Run("no succeeded release for "+tag, func(t *testing.T) {
			_, err := releases.GetSucceededRelease(ctx, org, "app1", tag)
			assert.ErrorIs(t, err, repository.ErrNotFound)
		})
	}

	t.Run("other app is not matched", func(t *testing.T) {
		_, err := releases.GetSucceededRelease(ctx, org, "app2", "1.0.0")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func Test_DeploymentRepository(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()
	deployments := NewDeploymentRepository(pool)
	org := uniqueOrg()
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	newDeployment := func(buildID string, offset time.Duration) *deploymentModels.DeploymentEntity {
		return &deploymentModels.DeploymentEntity{
			ID: uuid.NewString(), Org: org, App: "app1", EnvName: "tt02", TagName: "1.0.0",
			Build:   deploymentModels.BuildEntity{ID: buildID, Status: deploymentModels.BuildStatusNotStarted},
			Created: created.Add(offset), CreatedBy: "testuser", DeployedInEnv: true,
		}
	}
	first, second := newDeployment("10", 0), newDeployment("11", time.Minute)
	for _, d := range []*deploymentModels.DeploymentEntity{first, second} {
		_, err := deployments.Create(ctx, d)
		require.NoError(t, err)
	}

	t.Run("get lists newest first and honours top", func(t *testing.T) {
		top := 1
		all, err := deployments.Get(ctx, org, "app1", deploymentModels.DocumentQuery{})
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, second.ID, all[0].ID)
		assert.False(t, all[0].DeployedInEnv)

		limited, err := deployments.Get(ctx, org, "app1", deploymentModels.DocumentQuery{Top: &top, SortDirection: deploymentModels.SortAscending})
		require.NoError(t, err)
		require.Len(t, limited, 1)
		assert.Equal(t, first.ID, limited[0].ID)
	})

	t.Run("get by build id", func(t *testing.T) {
		found, err := deployments.GetByBuildID(ctx, org, "10")
		require.NoError(t, err)
		assert.Equal(t, first.ID, found.ID)

		_, err = deployments.GetByBuildID(ctx, org, "404")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("update replaces the document", func(t *testing.T) {
		first.Build.Status = deploymentModels.BuildStatusCompleted
		first.Build.Result = deploymentModels.BuildResultSucceeded
		require.NoError(t, deployments.Update(ctx, first))

		found, err := deployments.GetByBuildID(ctx, org, "10")
		require.NoError(t, err)
		assert.Equal(t, deploymentModels.BuildStatusCompleted, found.Build.Status)
		assert.Equal(t, deploymentModels.BuildResultSucceeded, found.Build.Result)
	})

	t.Run("update of unknown deployment", func(t *testing.T) {
		err := deployments.Update(ctx, newDeployment("12", 0))
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
