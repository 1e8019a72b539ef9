package environments

import (
	"errors"
	"net/http"
	"testing"

	environmentsmock "github.com/altinn/designer-api/api/environments/mock"
	environmentModels "github.com/altinn/designer-api/api/environments/models"
	controllertest "github.com/altinn/designer-api/api/test"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvironments_ReturnsList(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := environmentsmock.NewMockEnvironmentHandler(ctrl)
	handler.EXPECT().GetEnvironments(gomock.Any()).
		Return([]environmentModels.EnvironmentModel{{Name: "tt02", Hostname: "tt02.altinn.no"}}, nil)
	controllerTestUtils := controllertest.NewTestUtils(nil, NewEnvironmentController(handler))

	response := <-controllerTestUtils.ExecuteRequest(http.MethodGet, "/designer/api/environments")
	require.Equal(t, http.StatusOK, response.Code)

	var environments []environmentModels.EnvironmentModel
	require.NoError(t, controllertest.GetResponseBody(response, &environments))
	require.Len(t, environments, 1)
	assert.Equal(t, "tt02.altinn.no", environments[0].Hostname)
}

func TestGetEnvironments_Unavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := environmentsmock.NewMockEnvironmentHandler(ctrl)
	handler.EXPECT().GetEnvironments(gomock.Any()).
		Return(nil, environmentModels.EnvironmentsUnavailable(errors.New("connection refused")))
	controllerTestUtils := controllertest.NewTestUtils(nil, NewEnvironmentController(handler))

	response := <-controllerTestUtils.ExecuteRequest(http.MethodGet, "/designer/api/environments")
	assert.Equal(t, http.StatusInternalServerError, response.Code)
}
