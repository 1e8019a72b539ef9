package gitea

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
)

// ErrNotFound the requested resource does not exist in the repository server
var ErrNotFound = errors.New("gitea: not found")

// Organization the owner of a team
type Organization struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Team a team the caller is member of
type Team struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Organization *Organization `json:"organization"`
}

// Client reads from the repository server on behalf of the caller
type Client interface {
	GetTeams(ctx context.Context, token string) ([]Team, error)
	GetFileContent(ctx context.Context, token, org, app, path, ref string) ([]byte, error)
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient Constructor. httpClient is the transport the per caller oauth2 clients are built on.
func NewClient(baseURL string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// GetTeams lists the teams of the caller
func (c *client) GetTeams(ctx context.Context, token string) ([]Team, error) {
	var teams []Team
	body, err := c.get(ctx, token, "/api/v1/user/teams")
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(body, &teams); err != nil {
		return nil, fmt.Errorf("decode teams: %w", err)
	}
	return teams, nil
}

// GetFileContent reads a raw file of the app repository at ref
func (c *client) GetFileContent(ctx context.Context, token, org, app, path, ref string) ([]byte, error) {
	requestPath := fmt.Sprintf("/api/v1/repos/%s/%s/raw/%s", url.PathEscape(org), url.PathEscape(app), escapePath(path))
	if ref != "" {
		requestPath += "?ref=" + url.QueryEscape(ref)
	}
	return c.get(ctx, token, requestPath)
}

func (c *client) get(ctx context.Context, token, path string) ([]byte, error) {
	requestURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.authenticated(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", requestURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("GET %s: %w", requestURL, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("GET %s: unexpected status %d: %s", requestURL, resp.StatusCode, payload)
	}
	return io.ReadAll(resp.Body)
}

func (c *client) authenticated(ctx context.Context, token string) *http.Client {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}))
}

func escapePath(path string) string {
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
