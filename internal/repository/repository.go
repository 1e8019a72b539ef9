package repository

import (
	"context"

	deploymentModels "github.com/altinn/designer-api/api/deployments/models"
)

// DeploymentRepository persists deployment documents.
type DeploymentRepository interface {
	Create(ctx context.Context, deployment *deploymentModels.DeploymentEntity) (*deploymentModels.DeploymentEntity, error)
	Get(ctx context.Context, org, app string, query deploymentModels.DocumentQuery) ([]*deploymentModels.DeploymentEntity, error)
	GetByBuildID(ctx context.Context, org, buildID string) (*deploymentModels.DeploymentEntity, error)
	Update(ctx context.Context, deployment *deploymentModels.DeploymentEntity) error
}

// ReleaseRepository persists release documents.
type ReleaseRepository interface {
	Create(ctx context.Context, release *deploymentModels.ReleaseEntity) (*deploymentModels.ReleaseEntity, error)
	GetSucceededRelease(ctx context.Context, org, app, tagName string) (*deploymentModels.ReleaseEntity, error)
}
