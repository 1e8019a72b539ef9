package azuredevops

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	deploymentModels "github.com/altinn/designer-api/api/deployments/models"
)

const apiVersion = "5.1"

// ErrBuildNotFound the build does not exist in the CI system
var ErrBuildNotFound = errors.New("azuredevops: build not found")

// BuildClient talks to the builds API of the CI system
type BuildClient interface {
	QueueBuild(ctx context.Context, params QueueBuildParameters, definitionID int) (*Build, error)
	GetBuild(ctx context.Context, buildID string) (*deploymentModels.BuildEntity, error)
}

// QueueBuildParameters are handed to the deploy pipeline as variables
type QueueBuildParameters struct {
	AppOwner       string `json:"APP_OWNER"`
	AppRepo        string `json:"APP_REPO"`
	AppEnvironment string `json:"APP_ENVIRONMENT"`
	AppCommitID    string `json:"APP_COMMIT_ID"`
	Hostname       string `json:"HOSTNAME"`
	TagName        string `json:"TAGNAME"`
	AppDeployToken string `json:"APP_DEPLOY_TOKEN,omitempty"`
}

// Build as returned by the builds API
type Build struct {
	ID         int                          `json:"id"`
	Status     deploymentModels.BuildStatus `json:"status"`
	Result     deploymentModels.BuildResult `json:"result,omitempty"`
	QueueTime  *time.Time                   `json:"queueTime,omitempty"`
	StartTime  *time.Time                   `json:"startTime,omitempty"`
	FinishTime *time.Time                   `json:"finishTime,omitempty"`
}

// ToBuildEntity converts the API build to the stored representation
func (b *Build) ToBuildEntity() *deploymentModels.BuildEntity {
	return &deploymentModels.BuildEntity{
		ID:       strconv.Itoa(b.ID),
		Status:   b.Status,
		Result:   b.Result,
		Started:  b.StartTime,
		Finished: b.FinishTime,
	}
}

type queueBuildRequest struct {
	Definition definitionReference `json:"definition"`
	Parameters string              `json:"parameters"`
}

type definitionReference struct {
	ID int `json:"id"`
}

// StatusError a non successful response from the CI system
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

type client struct {
	baseURL     string
	token       string
	httpClient  *http.Client
	queueClient *http.Client
}

// NewClient Constructor. httpClient is used for reads and may retry,
// queueClient is used for queueing builds and must not retry.
func NewClient(baseURL, token string, httpClient, queueClient *http.Client) BuildClient {
	return &client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		token:       token,
		httpClient:  httpClient,
		queueClient: queueClient,
	}
}

// QueueBuild queues a run of the build definition
func (c *client) QueueBuild(ctx context.Context, params QueueBuildParameters, definitionID int) (*Build, error) {
	parameters, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(&queueBuildRequest{
		Definition: definitionReference{ID: definitionID},
		Parameters: string(parameters),
	})
	if err != nil {
		return nil, err
	}

	var build Build
	if err = c.do(ctx, c.queueClient, http.MethodPost, "/_apis/build/builds", body, &build); err != nil {
		return nil, fmt.Errorf("queue build of definition %d: %w", definitionID, err)
	}
	return &build, nil
}

// GetBuild fetches the current state of a build
func (c *client) GetBuild(ctx context.Context, buildID string) (*deploymentModels.BuildEntity, error) {
	var build Build
	if err := c.do(ctx, c.httpClient, http.MethodGet, "/_apis/build/builds/"+url.PathEscape(buildID), nil, &build); err != nil {
		return nil, fmt.Errorf("get build %s: %w", buildID, err)
	}
	return build.ToBuildEntity(), nil
}

func (c *client) do(ctx context.Context, httpClient *http.Client, method, path string, body []byte, target interface{}) error {
	requestURL := fmt.Sprintf("%s%s?api-version=%s", c.baseURL, path, apiVersion)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return err
	}
	req.SetBasicAuth("", c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return ErrBuildNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &StatusError{Method: method, URL: requestURL, StatusCode: resp.StatusCode, Body: string(payload)}
	}

	return json.NewDecoder(resp.Body).Decode(target)
}
