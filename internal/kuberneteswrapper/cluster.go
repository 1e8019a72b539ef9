package kuberneteswrapper

import (
	"context"
	"fmt"
	"strings"
	"time"

	deploymentModels "github.com/altinn/designer-api/api/deployments/models"
	environmentModels "github.com/altinn/designer-api/api/environments/models"
	"github.com/altinn/designer-api/api/utils"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/selection"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

const (
	ReleaseLabel = "release"
	VersionLabel = "app.kubernetes.io/version"

	reasonNewReplicaSetAvailable   = "NewReplicaSetAvailable"
	reasonProgressDeadlineExceeded = "ProgressDeadlineExceeded"
)

type clusterClient struct {
	kubeClient kubernetes.Interface
}

// NewClusterClient Constructor for reading deployments directly from a cluster.
// Each environment is a namespace named after the environment.
func NewClusterClient(kubeClient kubernetes.Interface) Client {
	return &clusterClient{kubeClient: kubeClient}
}

// NewKubernetesClient builds a client from a kubeconfig file, or from the in-cluster config when path is empty
func NewKubernetesClient(kubeConfigPath string) (kubernetes.Interface, error) {
	var config *rest.Config
	var err error
	if kubeConfigPath == "" {
		config, err = rest.InClusterConfig()
	} else {
		config, err = clientcmd.BuildConfigFromFlags("", kubeConfigPath)
	}
	if err != nil {
		return nil, fmt.Errorf("load kubernetes config: %w", err)
	}
	return kubernetes.NewForConfig(config)
}

// GetDeploymentsInEnv lists the release deployments of org in the environment namespace
func (c *clusterClient) GetDeploymentsInEnv(ctx context.Context, org string, env environmentModels.EnvironmentModel) ([]*deploymentModels.KubernetesDeployment, error) {
	releaseExists, err := labels.NewRequirement(ReleaseLabel, selection.Exists, nil)
	if err != nil {
		return nil, err
	}

	list, err := c.kubeClient.AppsV1().Deployments(env.Name).List(ctx, metav1.ListOptions{
		LabelSelector: labels.NewSelector().Add(*releaseExists).String(),
	})
	if err != nil {
		return nil, fmt.Errorf("list deployments in %s: %w", env.Name, err)
	}

	deployments := make([]*deploymentModels.KubernetesDeployment, 0, len(list.Items))
	for _, item := range list.Items {
		release := item.Labels[ReleaseLabel]
		if !strings.HasPrefix(release, org+"-") {
			continue
		}
		status, statusDate := deploymentStatus(&item)
		deployments = append(deployments, &deploymentModels.KubernetesDeployment{
			Release:    release,
			Version:    item.Labels[VersionLabel],
			Status:     status,
			StatusDate: statusDate,
			EnvName:    env.Name,
		})
	}
	return deployments, nil
}

func deploymentStatus(deployment *appsv1.Deployment) (deploymentModels.KubernetesDeploymentStatus, string) {
	var progressing, available *appsv1.DeploymentCondition
	var latest time.Time
	for i := range deployment.Status.Conditions {
		condition := &deployment.Status.Conditions[i]
		switch condition.Type {
		case appsv1.DeploymentProgressing:
			progressing = condition
		case appsv1.DeploymentAvailable:
			available = condition
		}
		if condition.LastUpdateTime.After(latest) {
			latest = condition.LastUpdateTime.Time
		}
	}

	statusDate := utils.FormatTimestamp(latest)
	switch {
	case progressing != nil && progressing.Reason == reasonProgressDeadlineExceeded:
		return deploymentModels.KubernetesDeploymentStatusFailed, statusDate
	case progressing != nil && progressing.Reason == reasonNewReplicaSetAvailable &&
		available != nil && available.Status == corev1.ConditionTrue:
		return deploymentModels.KubernetesDeploymentStatusCompleted, statusDate
	default:
		return deploymentModels.KubernetesDeploymentStatusProgressing, statusDate
	}
}
