package platformstorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	environmentModels "github.com/altinn/designer-api/api/environments/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// MetadataUpdater pushes application metadata to the platform storage of an environment
type MetadataUpdater interface {
	UpsertApplicationMetadata(ctx context.Context, env environmentModels.EnvironmentModel, org, app string, metadata []byte) error
}

// ClientCredentials for authenticating against platform storage. Disabled when TokenURL is empty.
type ClientCredentials struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
}

type client struct {
	httpClient *http.Client
}

// NewClient Constructor
func NewClient(httpClient *http.Client, credentials ClientCredentials) MetadataUpdater {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if credentials.TokenURL != "" {
		config := &clientcredentials.Config{
			ClientID:     credentials.ClientID,
			ClientSecret: credentials.ClientSecret,
			TokenURL:     credentials.TokenURL,
			Scopes:       credentials.Scopes,
		}
		httpClient = config.Client(context.WithValue(context.Background(), oauth2.HTTPClient, httpClient))
	}
	return &client{httpClient: httpClient}
}

// UpsertApplicationMetadata replaces the metadata of the app, creating it when the app is not yet known
func (c *client) UpsertApplicationMetadata(ctx context.Context, env environmentModels.EnvironmentModel, org, app string, metadata []byte) error {
	applicationsURL := platformURL(env) + "/storage/api/v1/applications"
	putURL := fmt.Sprintf("%s/%s/%s", applicationsURL, url.PathEscape(org), url.PathEscape(app))

	statusCode, err := c.send(ctx, http.MethodPut, putURL, metadata)
	if err != nil {
		return err
	}
	if statusCode != http.StatusNotFound {
		return nil
	}

	log.Ctx(ctx).Debug().Str("org", org).Str("app", app).Str("env", env.Name).Msg("application not in platform storage, creating it")
	postURL := applicationsURL + "?appId=" + url.QueryEscape(org+"/"+app)
	statusCode, err = c.send(ctx, http.MethodPost, postURL, metadata)
	if err != nil {
		return err
	}
	if statusCode == http.StatusNotFound {
		return fmt.Errorf("POST %s: unexpected status %d", postURL, statusCode)
	}
	return nil
}

// send returns the status code of 2xx and 404 responses, any other status is an error
func (c *client) send(ctx context.Context, method, requestURL string, body []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, requestURL, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, requestURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound || (resp.StatusCode >= 200 && resp.StatusCode <= 299) {
		return resp.StatusCode, nil
	}
	payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return 0, fmt.Errorf("%s %s: unexpected status %d: %s", method, requestURL, resp.StatusCode, payload)
}

func platformURL(env environmentModels.EnvironmentModel) string {
	if env.PlatformUrl != "" {
		return strings.TrimSuffix(env.PlatformUrl, "/")
	}
	prefix := env.PlatformPrefix
	if prefix == "" {
		prefix = "platform"
	}
	return fmt.Sprintf("https://%s.%s", prefix, env.Hostname)
}
