package kuberneteswrapper

import (
	"context"
	"testing"
	"time"

	deploymentModels "github.com/altinn/designer-api/api/deployments/models"
	environmentModels "github.com/altinn/designer-api/api/environments/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	kubefake "k8s.io/client-go/kubernetes/fake"
)

var statusTime = metav1.NewTime(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))

func aDeployment(name, namespace, release, version string, conditions ...appsv1.DeploymentCondition) *appsv1.Deployment {
	labels := map[string]string{}
	if release != "" {
		labels[ReleaseLabel] = release
	}
	if version != "" {
		labels[VersionLabel] = version
	}
	return &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace, Labels: labels},
		Status:     appsv1.DeploymentStatus{Conditions: conditions},
	}
}

func condition(conditionType appsv1.DeploymentConditionType, status corev1.ConditionStatus, reason string) appsv1.DeploymentCondition {
	return appsv1.DeploymentCondition{Type: conditionType, Status: status, Reason: reason, LastUpdateTime: statusTime}
}

func TestClusterClient_GetDeploymentsInEnv(t *testing.T) {
	kubeClient := kubefake.NewSimpleClientset(
		aDeployment("ttd-app1", "tt02", "ttd-app1", "1.0.0",
			condition(appsv1.DeploymentAvailable, corev1.ConditionTrue, "MinimumReplicasAvailable"),
			condition(appsv1.DeploymentProgressing, corev1.ConditionTrue, reasonNewReplicaSetAvailable)),
		aDeployment("ttd-app2", "tt02", "ttd-app2", "2.0.0",
			condition(appsv1.DeploymentProgressing, corev1.ConditionFalse, reasonProgressDeadlineExceeded)),
		aDeployment("ttd-app3", "tt02", "ttd-app3", "3.0.0",
			condition(appsv1.DeploymentProgressing, corev1.ConditionTrue, "ReplicaSetUpdated")),
		aDeployment("other-app", "tt02", "other-app", "1.0.0"),
		aDeployment("unlabelled", "tt02", "", ""),
		aDeployment("ttd-app1", "production", "ttd-app1", "0.9.0"),
	)

	client := NewClusterClient(kubeClient)
	deployments, err := client.GetDeploymentsInEnv(context.Background(), "ttd", environmentModels.EnvironmentModel{Name: "tt02"})
	require.NoError(t, err)

	byRelease := map[string]*deploymentModels.KubernetesDeployment{}
	for _, d := range deployments {
		byRelease[d.Release] = d
	}
	require.Len(t, byRelease, 3)

	assert.Equal(t, deploymentModels.KubernetesDeploymentStatusCompleted, byRelease["ttd-app1"].Status)
	assert.Equal(t, "1.0.0", byRelease["ttd-app1"].Version)
	assert.Equal(t, "2024-05-01T12:00:00Z", byRelease["ttd-app1"].StatusDate)
	assert.Equal(t, "tt02", byRelease["ttd-app1"].EnvName)
	assert.Equal(t, deploymentModels.KubernetesDeploymentStatusFailed, byRelease["ttd-app2"].Status)
	assert.Equal(t, deploymentModels.KubernetesDeploymentStatusProgressing, byRelease["ttd-app3"].Status)
}
