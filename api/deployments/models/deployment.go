package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	tagNamePattern = regexp.MustCompile(`(?i)^[a-z0-9][a-z0-9.\-_]{0,127}$`)
	envNamePattern = regexp.MustCompile(`^[a-z0-9\-]{1,64}$`)
)

// DeploymentEntity describe a request to roll out a tagged build of an app to an environment
// swagger:model DeploymentEntity
type DeploymentEntity struct {
	// Id of the deployment document
	//
	// required: true
	// example: 3f8c5b0e-4a7d-4b9e-9d7c-2f1e0a1b2c3d
	ID string `json:"id"`

	// Org owning the app
	//
	// required: true
	// example: ttd
	Org string `json:"org"`

	// App name
	//
	// required: true
	// example: frontend-test
	App string `json:"app"`

	// EnvName the environment the deployment targets
	//
	// required: true
	// example: tt02
	EnvName string `json:"envName"`

	// TagName of the release that is deployed
	//
	// required: true
	// example: 1.0.3
	TagName string `json:"tagName"`

	// Build the deploy pipeline run
	//
	// required: true
	Build BuildEntity `json:"build"`

	// Created timestamp
	//
	// required: true
	Created time.Time `json:"created"`

	// CreatedBy name of the developer requesting the deployment
	//
	// required: false
	CreatedBy string `json:"createdBy,omitempty"`

	// DeployedInEnv true if the tag is the version currently running in the environment
	//
	// required: false
	DeployedInEnv bool `json:"deployedInEnv"`
}

// HasLaggingBuild reports whether the build has been running, or waiting in the queue since the
// deployment was created, for longer than threshold
func (d *DeploymentEntity) HasLaggingBuild(now time.Time, threshold time.Duration) bool {
	return d.Build.IsLagging(now, threshold) || d.Build.IsQueuedSince(d.Created, now, threshold)
}

// ReleaseName name of the app release in the hosting cluster
func (d *DeploymentEntity) ReleaseName() string {
	return ReleaseName(d.Org, d.App)
}

// ReleaseName name of an app release in the hosting cluster
func ReleaseName(org, app string) string {
	return fmt.Sprintf("%s-%s", org, app)
}

// CreateDeploymentRequest holds the parameters for a new deployment
// swagger:model CreateDeploymentRequest
type CreateDeploymentRequest struct {
	// TagName of the release to deploy
	//
	// required: true
	// example: 1.0.3
	TagName string `json:"tagName"`

	// EnvName of the environment to deploy to
	//
	// required: true
	// example: tt02
	EnvName string `json:"envName"`
}

// Validate checks that tag and environment names are well formed
func (r *CreateDeploymentRequest) Validate() error {
	r.TagName = strings.TrimSpace(r.TagName)
	r.EnvName = strings.TrimSpace(r.EnvName)

	switch {
	case r.TagName == "":
		return InvalidDeploymentRequest("tagName is required")
	case !tagNamePattern.MatchString(r.TagName):
		return InvalidDeploymentRequest(fmt.Sprintf("tagName %s is not valid", r.TagName))
	case r.EnvName == "":
		return InvalidDeploymentRequest("envName is required")
	case !envNamePattern.MatchString(r.EnvName):
		return InvalidDeploymentRequest(fmt.Sprintf("envName %s is not valid", r.EnvName))
	}
	return nil
}

// DeploymentResponse pipeline deployments of an app together with what runs in each environment
// swagger:model DeploymentResponse
type DeploymentResponse struct {
	// PipelineDeploymentList deployments requested through the pipeline, newest first by default
	//
	// required: true
	PipelineDeploymentList []*DeploymentEntity `json:"pipelineDeploymentList"`

	// KubernetesDeploymentList the app release as seen in each environment
	//
	// required: true
	KubernetesDeploymentList []*KubernetesDeployment `json:"kubernetesDeploymentList"`
}
