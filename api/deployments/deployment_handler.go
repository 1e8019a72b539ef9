package deployments

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	deploymentModels "github.com/altinn/designer-api/api/deployments/models"
	"github.com/altinn/designer-api/api/environments"
	environmentModels "github.com/altinn/designer-api/api/environments/models"
	"github.com/altinn/designer-api/api/metrics"
	"github.com/altinn/designer-api/api/middleware/auth"
	"github.com/altinn/designer-api/api/utils"
	"github.com/altinn/designer-api/internal/azuredevops"
	"github.com/altinn/designer-api/internal/gitea"
	"github.com/altinn/designer-api/internal/kuberneteswrapper"
	"github.com/altinn/designer-api/internal/platformstorage"
	"github.com/altinn/designer-api/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	applicationMetadataPath = "App/config/applicationmetadata.json"
	deployTeamPrefix        = "Deploy-"
	ownersTeam              = "Owners"

	defaultLaggingThreshold       = 5 * time.Minute
	defaultEnvironmentParallelism = 5
)

// DeployHandler creates deployments and reports their state
type DeployHandler interface {
	// Create queues a deploy of a succeeded release to an environment
	Create(ctx context.Context, org, app string, request deploymentModels.CreateDeploymentRequest) (*deploymentModels.DeploymentEntity, error)
	// Get lists the deployments of an app together with what runs in each environment
	Get(ctx context.Context, org, app string, query deploymentModels.DocumentQuery) (*deploymentModels.DeploymentResponse, error)
	// Update refreshes the build of the deployment created by buildID
	Update(ctx context.Context, org, buildID string) error
	// GetPermissions lists the environments the caller may deploy to, plus Owners for org owners
	GetPermissions(ctx context.Context, org string) ([]string, error)
}

// LaggingBuildQueue takes builds whose status should be refreshed out of band
type LaggingBuildQueue interface {
	Enqueue(ctx context.Context, org, buildID string) bool
}

// Dependencies the collaborators of the deploy handler
type Dependencies struct {
	Deployments        repository.DeploymentRepository
	Releases           repository.ReleaseRepository
	Environments       environments.EnvironmentHandler
	Builds             azuredevops.BuildClient
	Kubernetes         kuberneteswrapper.Client
	Gitea              gitea.Client
	Metadata           platformstorage.MetadataUpdater
	LaggingBuilds      LaggingBuildQueue
	DeployDefinitionID int
}

// HandlerOption configures the deploy handler
type HandlerOption func(*deployHandler)

// WithLaggingThreshold sets how long a build may stay in progress before it is refreshed
func WithLaggingThreshold(threshold time.Duration) HandlerOption {
	return func(h *deployHandler) { h.laggingThreshold = threshold }
}

// WithEnvironmentParallelism bounds the number of environments queried at the same time
func WithEnvironmentParallelism(parallelism int) HandlerOption {
	return func(h *deployHandler) { h.environmentParallelism = parallelism }
}

// WithClock overrides the time source
func WithClock(now func() time.Time) HandlerOption {
	return func(h *deployHandler) { h.now = now }
}

// WithIDGenerator overrides how deployment ids are made
func WithIDGenerator(newID func() string) HandlerOption {
	return func(h *deployHandler) { h.newID = newID }
}

type deployHandler struct {
	Dependencies
	laggingThreshold       time.Duration
	environmentParallelism int
	now                    func() time.Time
	newID                  func() string
}

// Init Constructor
func Init(deps Dependencies, opts ...HandlerOption) DeployHandler {
	h := &deployHandler{
		Dependencies:           deps,
		laggingThreshold:       defaultLaggingThreshold,
		environmentParallelism: defaultEnvironmentParallelism,
		now:                    time.Now,
		newID:                  uuid.NewString,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.environmentParallelism < 1 {
		h.environmentParallelism = 1
	}
	return h
}

// Create handler for creating a deployment
func (h *deployHandler) Create(ctx context.Context, org, app string, request deploymentModels.CreateDeploymentRequest) (*deploymentModels.DeploymentEntity, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	principal := auth.CtxTokenPrincipal(ctx)
	logger := log.Ctx(ctx).With().Str("org", org).Str("app", app).Str("env", request.EnvName).Str("tag", request.TagName).Logger()

	env, err := h.Environments.GetEnvironment(ctx, request.EnvName)
	if err != nil {
		var apiErr *utils.Error
		if errors.As(err, &apiErr) && apiErr.Type == utils.Missing {
			return nil, deploymentModels.UnknownEnvironment(request.EnvName)
		}
		return nil, err
	}

	teams, err := h.Gitea.GetTeams(ctx, principal.Token())
	if err != nil {
		return nil, utils.UnexpectedError("Failed to read team membership", err)
	}
	if !hasDeployPermission(teams, org, env.Name) {
		return nil, deploymentModels.MissingDeployPermission(org, env.Name)
	}

	release, err := h.Releases.GetSucceededRelease(ctx, org, app, request.TagName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, deploymentModels.NonExistingRelease(err, org, app, request.TagName)
		}
		return nil, utils.UnexpectedError("Failed to read release", err)
	}

	if err = h.updateApplicationMetadata(ctx, principal.Token(), *env, org, app, release.TargetCommitish); err != nil {
		return nil, err
	}

	build, err := h.Builds.QueueBuild(ctx, azuredevops.QueueBuildParameters{
		AppOwner:       org,
		AppRepo:        app,
		AppEnvironment: env.Name,
		AppCommitID:    release.TargetCommitish,
		Hostname:       env.Hostname,
		TagName:        request.TagName,
		AppDeployToken: principal.Token(),
	}, h.DeployDefinitionID)
	if err != nil {
		return nil, utils.UnexpectedError("Failed to queue deploy build", err)
	}
	logger.Info().Int("build_id", build.ID).Msg("queued deploy build")

	deployment := &deploymentModels.DeploymentEntity{
		ID:        h.newID(),
		Org:       org,
		App:       app,
		EnvName:   env.Name,
		TagName:   request.TagName,
		Created:   h.now().UTC(),
		CreatedBy: principal.Name(),
		Build: deploymentModels.BuildEntity{
			ID:      strconv.Itoa(build.ID),
			Status:  build.Status,
			Started: build.StartTime,
		},
	}

	created, err := h.Deployments.Create(ctx, deployment)
	if err != nil {
		return nil, utils.UnexpectedError("Failed to store deployment", err)
	}

	metrics.AddDeploymentCreated(org, env.Name)
	return created, nil
}

func (h *deployHandler) updateApplicationMetadata(ctx context.Context, token string, env environmentModels.EnvironmentModel, org, app, commitish string) error {
	metadata, err := h.Gitea.GetFileContent(ctx, token, org, app, applicationMetadataPath, commitish)
	if err != nil {
		if errors.Is(err, gitea.ErrNotFound) {
			return utils.TypeMissingError("Application metadata not found in release "+commitish, err)
		}
		return utils.UnexpectedError("Failed to read application metadata", err)
	}

	if err = h.Metadata.UpsertApplicationMetadata(ctx, env, org, app, metadata); err != nil {
		return utils.UnexpectedError("Failed to update application metadata in "+env.Name, err)
	}
	return nil
}

// Get handler for listing deployments
func (h *deployHandler) Get(ctx context.Context, org, app string, query deploymentModels.DocumentQuery) (*deploymentModels.DeploymentResponse, error) {
	deployments, err := h.Deployments.Get(ctx, org, app, query)
	if err != nil {
		return nil, utils.UnexpectedError("Failed to read deployments", err)
	}

	envs, err := h.Environments.GetEnvironments(ctx)
	if err != nil {
		return nil, err
	}

	kubernetesDeployments := h.annotateFromEnvironments(ctx, org, app, deployments, envs)
	h.enqueueLaggingBuilds(ctx, deployments)

	return &deploymentModels.DeploymentResponse{
		PipelineDeploymentList:   deployments,
		KubernetesDeploymentList: kubernetesDeployments,
	}, nil
}

type environmentDeployments struct {
	deployments []*deploymentModels.KubernetesDeployment
	err         error
}

// annotateFromEnvironments queries every environment for what is running, marks the
// pipeline deployments that are live and returns the release as seen in each environment.
// An environment that cannot be queried is reported as unavailable.
func (h *deployHandler) annotateFromEnvironments(ctx context.Context, org, app string, deployments []*deploymentModels.DeploymentEntity, envs []environmentModels.EnvironmentModel) []*deploymentModels.KubernetesDeployment {
	results := make([]environmentDeployments, len(envs))

	var g errgroup.Group
	g.SetLimit(h.environmentParallelism)
	for i, env := range envs {
		g.Go(func() error {
			inEnv, err := h.Kubernetes.GetDeploymentsInEnv(ctx, org, env)
			if err != nil {
				log.Ctx(ctx).Warn().Err(err).Str("env", env.Name).Msg("failed to get deployments in environment")
			}
			results[i] = environmentDeployments{deployments: inEnv, err: err}
			return nil
		})
	}
	_ = g.Wait()

	releaseName := deploymentModels.ReleaseName(org, app)
	kubernetesDeployments := make([]*deploymentModels.KubernetesDeployment, 0, len(envs))
	for i, env := range envs {
		result := results[i]
		if result.err != nil {
			kubernetesDeployments = append(kubernetesDeployments, &deploymentModels.KubernetesDeployment{
				Release: releaseName,
				Status:  deploymentModels.KubernetesDeploymentStatusUnavailable,
				EnvName: env.Name,
			})
			continue
		}

		for _, deployment := range deployments {
			if deployment.EnvName != env.Name {
				continue
			}
			deployment.DeployedInEnv = runs(result.deployments, deployment.ReleaseName(), deployment.TagName)
		}

		if live := findRelease(result.deployments, releaseName); live != nil {
			live.EnvName = env.Name
			kubernetesDeployments = append(kubernetesDeployments, live)
		}
	}
	return kubernetesDeployments
}

func runs(inEnv []*deploymentModels.KubernetesDeployment, release, version string) bool {
	for _, deployment := range inEnv {
		if deployment.Runs(release, version) {
			return true
		}
	}
	return false
}

func findRelease(inEnv []*deploymentModels.KubernetesDeployment, release string) *deploymentModels.KubernetesDeployment {
	for _, deployment := range inEnv {
		if deployment.Release == release {
			return deployment
		}
	}
	return nil
}

func (h *deployHandler) enqueueLaggingBuilds(ctx context.Context, deployments []*deploymentModels.DeploymentEntity) {
	if h.LaggingBuilds == nil {
		return
	}
	now := h.now()
	for _, deployment := range deployments {
		if deployment.HasLaggingBuild(now, h.laggingThreshold) {
			h.LaggingBuilds.Enqueue(ctx, deployment.Org, deployment.Build.ID)
		}
	}
}

// Update handler for refreshing the build status of a deployment
func (h *deployHandler) Update(ctx context.Context, org, buildID string) error {
	deployment, err := h.Deployments.GetByBuildID(ctx, org, buildID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return deploymentModels.NonExistingDeploymentForBuild(err, org, buildID)
		}
		return err
	}

	build, err := h.Builds.GetBuild(ctx, buildID)
	if err != nil {
		return err
	}

	if !deployment.Build.Apply(*build) {
		metrics.AddBuildRefresh(metrics.RefreshUnchanged)
		return nil
	}
	if err = h.Deployments.Update(ctx, deployment); err != nil {
		return err
	}

	metrics.AddBuildRefresh(metrics.RefreshUpdated)
	log.Ctx(ctx).Debug().Str("org", org).Str("build_id", buildID).Str("status", string(deployment.Build.Status)).Msg("refreshed build")
	return nil
}

// GetPermissions handler for listing the environments the caller may deploy to
func (h *deployHandler) GetPermissions(ctx context.Context, org string) ([]string, error) {
	teams, err := h.Gitea.GetTeams(ctx, auth.CtxTokenPrincipal(ctx).Token())
	if err != nil {
		return nil, utils.UnexpectedError("Failed to read team membership", err)
	}

	permitted := make([]string, 0)
	for _, team := range teams {
		if !inOrg(team, org) {
			continue
		}
		switch {
		case team.Name == ownersTeam:
			permitted = append(permitted, team.Name)
		case hasPrefixFold(team.Name, deployTeamPrefix):
			permitted = append(permitted, team.Name[len(deployTeamPrefix):])
		}
	}
	return permitted, nil
}

func hasDeployPermission(teams []gitea.Team, org, envName string) bool {
	for _, team := range teams {
		if inOrg(team, org) && strings.EqualFold(team.Name, deployTeamPrefix+envName) {
			return true
		}
	}
	return false
}

func inOrg(team gitea.Team, org string) bool {
	return team.Organization != nil && strings.EqualFold(team.Organization.Username, org)
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
