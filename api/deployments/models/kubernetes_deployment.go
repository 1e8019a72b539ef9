package models

// KubernetesDeploymentStatus state of an app release in a cluster
type KubernetesDeploymentStatus string

const (
	KubernetesDeploymentStatusCompleted   KubernetesDeploymentStatus = "completed"
	KubernetesDeploymentStatusProgressing KubernetesDeploymentStatus = "progressing"
	KubernetesDeploymentStatusFailed      KubernetesDeploymentStatus = "failed"
	// KubernetesDeploymentStatusUnavailable the environment could not be queried
	KubernetesDeploymentStatusUnavailable KubernetesDeploymentStatus = "unavailable"
)

// KubernetesDeployment live state of an app release in an environment
// swagger:model KubernetesDeployment
type KubernetesDeployment struct {
	// Release name, {org}-{app}
	//
	// required: false
	// example: ttd-frontend-test
	Release string `json:"release,omitempty"`

	// Version the tag currently rolled out
	//
	// required: false
	// example: 1.0.3
	Version string `json:"version,omitempty"`

	// Status of the rollout
	//
	// required: false
	// enum: completed,progressing,failed,unavailable
	Status KubernetesDeploymentStatus `json:"status,omitempty"`

	// StatusDate when the status was last updated
	//
	// required: false
	// example: 2006-01-02T15:04:05Z
	StatusDate string `json:"statusDate,omitempty"`

	// EnvName the environment reporting the deployment
	//
	// required: true
	// example: tt02
	EnvName string `json:"envName"`
}

// Runs reports whether this is the given release running the given version
func (k *KubernetesDeployment) Runs(release, version string) bool {
	return k.Release == release && k.Version == version
}
