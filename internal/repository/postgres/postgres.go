package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	deploymentModels "github.com/altinn/designer-api/api/deployments/models"
	"github.com/altinn/designer-api/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DeploymentRepository implements repository.DeploymentRepository on PostgreSQL.
type DeploymentRepository struct {
	pool *pgxpool.Pool
}

// ReleaseRepository implements repository.ReleaseRepository on PostgreSQL.
type ReleaseRepository struct {
	pool *pgxpool.Pool
}

// NewDeploymentRepository constructs a DeploymentRepository.
func NewDeploymentRepository(pool *pgxpool.Pool) *DeploymentRepository {
	return &DeploymentRepository{pool: pool}
}

// NewReleaseRepository constructs a ReleaseRepository.
func NewReleaseRepository(pool *pgxpool.Pool) *ReleaseRepository {
	return &ReleaseRepository{pool: pool}
}

const (
	insertDeploymentQuery = `INSERT INTO deployments (id, org, app, env_name, tag_name, build_id, created, entity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	deploymentByBuildIDQuery = `SELECT entity FROM deployments WHERE org = $1 AND build_id = $2 ORDER BY created DESC LIMIT 1`
	updateDeploymentQuery    = `UPDATE deployments SET build_id = $2, entity = $3 WHERE id = $1`
	insertReleaseQuery       = `INSERT INTO releases (org, app, tag_name, build_id, build_status, build_result, created, entity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	succeededReleaseQuery = `SELECT entity FROM releases
		WHERE org = $1 AND app = $2 AND tag_name = $3
		AND build_status = 'completed' AND build_result IN ('succeeded', 'partiallySucceeded')
		ORDER BY created DESC LIMIT 1`
)

var (
	_ repository.DeploymentRepository = (*DeploymentRepository)(nil)
	_ repository.ReleaseRepository    = (*ReleaseRepository)(nil)
)

// Create inserts a deployment document.
func (r *DeploymentRepository) Create(ctx context.Context, deployment *deploymentModels.DeploymentEntity) (*deploymentModels.DeploymentEntity, error) {
	payload, err := marshalDeployment(deployment)
	if err != nil {
		return nil, err
	}

	_, err = r.pool.Exec(ctx, insertDeploymentQuery,
		deployment.ID, deployment.Org, deployment.App, deployment.EnvName, deployment.TagName,
		deployment.Build.ID, deployment.Created, payload)
	if err != nil {
		return nil, fmt.Errorf("insert deployment %s: %w", deployment.ID, err)
	}
	return deployment, nil
}

// Get lists deployment documents of an app.
func (r *DeploymentRepository) Get(ctx context.Context, org, app string, query deploymentModels.DocumentQuery) ([]*deploymentModels.DeploymentEntity, error) {
	sql, args := listDeploymentsQuery(org, app, query)
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list deployments for %s/%s: %w", org, app, err)
	}
	defer rows.Close()

	deployments := make([]*deploymentModels.DeploymentEntity, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		deployment, err := unmarshalDeployment(payload)
		if err != nil {
			return nil, err
		}
		deployments = append(deployments, deployment)
	}
	return deployments, rows.Err()
}

// GetByBuildID fetches the deployment document created by a build.
func (r *DeploymentRepository) GetByBuildID(ctx context.Context, org, buildID string) (*deploymentModels.DeploymentEntity, error) {
	var payload []byte
	if err := r.pool.QueryRow(ctx, deploymentByBuildIDQuery, org, buildID).Scan(&payload); err != nil {
		return nil, notFoundOnNoRows(err)
	}
	return unmarshalDeployment(payload)
}

// Update replaces a deployment document.
func (r *DeploymentRepository) Update(ctx context.Context, deployment *deploymentModels.DeploymentEntity) error {
	payload, err := marshalDeployment(deployment)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, updateDeploymentQuery, deployment.ID, deployment.Build.ID, payload)
	if err != nil {
		return fmt.Errorf("update deployment %s: %w", deployment.ID, err)
	}
	return notFoundOnNoneAffected(tag.RowsAffected())
}

// Create inserts a release document.
func (r *ReleaseRepository) Create(ctx context.Context, release *deploymentModels.ReleaseEntity) (*deploymentModels.ReleaseEntity, error) {
	payload, err := json.Marshal(release)
	if err != nil {
		return nil, err
	}

	_, err = r.pool.Exec(ctx, insertReleaseQuery,
		release.Org, release.App, release.TagName, release.Build.ID,
		string(release.Build.Status), string(buildResultOrNone(release.Build.Result)), release.Created, string(payload))
	if err != nil {
		return nil, fmt.Errorf("insert release %s: %w", release.TagName, err)
	}
	return release, nil
}

// GetSucceededRelease fetches the newest succeeded release with the given tag.
func (r *ReleaseRepository) GetSucceededRelease(ctx context.Context, org, app, tagName string) (*deploymentModels.ReleaseEntity, error) {
	var payload []byte
	if err := r.pool.QueryRow(ctx, succeededReleaseQuery, org, app, tagName).Scan(&payload); err != nil {
		return nil, notFoundOnNoRows(err)
	}

	var release deploymentModels.ReleaseEntity
	if err := json.Unmarshal(payload, &release); err != nil {
		return nil, fmt.Errorf("decode release %s: %w", tagName, err)
	}
	return &release, nil
}

func listDeploymentsQuery(org, app string, query deploymentModels.DocumentQuery) (string, []interface{}) {
	direction := "DESC"
	if query.SortDirection == deploymentModels.SortAscending {
		direction = "ASC"
	}

	sql := fmt.Sprintf(`SELECT entity FROM deployments WHERE org = $1 AND app = $2 ORDER BY created %s, sequence_no %s`, direction, direction)
	args := []interface{}{org, app}
	if query.Top != nil {
		sql += " LIMIT $3"
		args = append(args, *query.Top)
	}
	return sql, args
}

func notFoundOnNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}

func notFoundOnNoneAffected(rows int64) error {
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func buildResultOrNone(result deploymentModels.BuildResult) deploymentModels.BuildResult {
	if result == "" {
		return deploymentModels.BuildResultNone
	}
	return result
}

// marshalDeployment stores everything except the derived deployedInEnv flag.
func marshalDeployment(deployment *deploymentModels.DeploymentEntity) (string, error) {
	stored := *deployment
	stored.DeployedInEnv = false
	payload, err := json.Marshal(&stored)
	if err != nil {
		return "", fmt.Errorf("encode deployment %s: %w", deployment.ID, err)
	}
	return string(payload), nil
}

func unmarshalDeployment(payload []byte) (*deploymentModels.DeploymentEntity, error) {
	var deployment deploymentModels.DeploymentEntity
	if err := json.Unmarshal(payload, &deployment); err != nil {
		return nil, fmt.Errorf("decode deployment: %w", err)
	}
	deployment.DeployedInEnv = false
	return &deployment, nil
}
