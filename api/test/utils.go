package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/altinn/designer-api/api/router"
	"github.com/altinn/designer-api/api/utils"
	"github.com/altinn/designer-api/api/utils/token"
	"github.com/altinn/designer-api/models"
)

// Utils Instance variables
type Utils struct {
	validator   token.ValidatorInterface
	controllers []models.Controller
}

// NewTestUtils Constructor. A nil validator accepts any token as the test principal.
func NewTestUtils(validator token.ValidatorInterface, controllers ...models.Controller) Utils {
	if validator == nil {
		validator = &acceptAllValidator{}
	}
	return Utils{
		validator:   validator,
		controllers: controllers,
	}
}

// ExecuteRequest Helper method to issue a http request
func (tu *Utils) ExecuteRequest(method, endpoint string) <-chan *httptest.ResponseRecorder {
	return tu.ExecuteRequestWithParameters(method, endpoint, nil)
}

// ExecuteRequestWithParameters Helper method to issue a http request with payload
func (tu *Utils) ExecuteRequestWithParameters(method, endpoint string, parameters interface{}) <-chan *httptest.ResponseRecorder {
	return tu.execute(method, endpoint, parameters, "bearer xyz")
}

// ExecuteUnAuthorizedRequest Helper method to issue a http request without a token
func (tu *Utils) ExecuteUnAuthorizedRequest(method, endpoint string) <-chan *httptest.ResponseRecorder {
	return tu.execute(method, endpoint, nil, "")
}

func (tu *Utils) execute(method, endpoint string, parameters interface{}, authorization string) <-chan *httptest.ResponseRecorder {
	var reader io.Reader

	if parameters != nil {
		payload, _ := json.Marshal(parameters)
		reader = bytes.NewReader(payload)
	}

	req, _ := http.NewRequest(method, endpoint, reader)
	if authorization != "" {
		req.Header.Add("Authorization", authorization)
	}
	req.Header.Add("Accept", "application/json")

	response := make(chan *httptest.ResponseRecorder)
	go func() {
		rr := httptest.NewRecorder()
		router.NewAPIHandler(tu.validator, nil, nil, tu.controllers...).ServeHTTP(rr, req)
		response <- rr
		close(response)
	}()

	return response
}

// GetErrorResponse Gets error repsonse
func GetErrorResponse(response *httptest.ResponseRecorder) (*utils.Error, error) {
	errorResponse := &utils.Error{}
	err := GetResponseBody(response, errorResponse)
	if err != nil {
		return nil, err
	}

	return errorResponse, nil
}

// GetResponseBody Gets response payload as type
func GetResponseBody(response *httptest.ResponseRecorder, target interface{}) error {
	body, _ := io.ReadAll(response.Body)
	return json.Unmarshal(body, target)
}

// TestPrincipal an authenticated caller
type TestPrincipal struct {
	UserName    string
	AccessToken string
}

// NewTestPrincipal Constructor
func NewTestPrincipal() *TestPrincipal {
	return &TestPrincipal{UserName: "testuser", AccessToken: "xyz"}
}

func (p *TestPrincipal) IsAuthenticated() bool { return true }
func (p *TestPrincipal) Token() string         { return p.AccessToken }
func (p *TestPrincipal) Id() string            { return p.UserName }
func (p *TestPrincipal) Name() string          { return p.UserName }

type acceptAllValidator struct{}

func (v *acceptAllValidator) ValidateToken(_ context.Context, accessToken string) (token.TokenPrincipal, error) {
	return &TestPrincipal{UserName: "testuser", AccessToken: accessToken}, nil
}
