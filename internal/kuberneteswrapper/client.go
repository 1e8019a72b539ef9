package kuberneteswrapper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	deploymentModels "github.com/altinn/designer-api/api/deployments/models"
	environmentModels "github.com/altinn/designer-api/api/environments/models"
)

const deploymentsPath = "/kuberneteswrapper/api/v1/deployments"

// Client reports the app releases running in an environment
type Client interface {
	GetDeploymentsInEnv(ctx context.Context, org string, env environmentModels.EnvironmentModel) ([]*deploymentModels.KubernetesDeployment, error)
}

type httpClient struct {
	baseURLOverride string
	client          *http.Client
}

// NewHTTPClient Constructor for the kubernetes-wrapper client.
// When baseURLOverride is empty the wrapper is reached at https://{org}.{appPrefix}.{hostname}.
func NewHTTPClient(baseURLOverride string, client *http.Client) Client {
	return &httpClient{
		baseURLOverride: strings.TrimSuffix(baseURLOverride, "/"),
		client:          client,
	}
}

// GetDeploymentsInEnv lists the deployments reported by the wrapper in the environment
func (c *httpClient) GetDeploymentsInEnv(ctx context.Context, org string, env environmentModels.EnvironmentModel) ([]*deploymentModels.KubernetesDeployment, error) {
	requestURL := c.baseURL(org, env) + deploymentsPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", requestURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("GET %s: unexpected status %d: %s", requestURL, resp.StatusCode, payload)
	}

	var deployments []*deploymentModels.KubernetesDeployment
	if err = json.NewDecoder(resp.Body).Decode(&deployments); err != nil {
		return nil, fmt.Errorf("decode deployments from %s: %w", requestURL, err)
	}
	for _, deployment := range deployments {
		deployment.EnvName = env.Name
	}
	return deployments, nil
}

func (c *httpClient) baseURL(org string, env environmentModels.EnvironmentModel) string {
	if c.baseURLOverride != "" {
		return c.baseURLOverride
	}
	appPrefix := env.AppPrefix
	if appPrefix == "" {
		appPrefix = "apps"
	}
	return fmt.Sprintf("https://%s.%s.%s", org, appPrefix, env.Hostname)
}
