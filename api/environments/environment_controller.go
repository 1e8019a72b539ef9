package environments

import (
	"net/http"

	"github.com/altinn/designer-api/api/utils"
	"github.com/altinn/designer-api/models"
)

type environmentController struct {
	*models.DefaultController
	handler EnvironmentHandler
}

// NewEnvironmentController Constructor
func NewEnvironmentController(handler EnvironmentHandler) models.Controller {
	return &environmentController{handler: handler}
}

// GetRoutes List the supported routes of this handler
func (ec *environmentController) GetRoutes() models.Routes {
	routes := models.Routes{
		models.Route{
			Path:        "/environments",
			Method:      http.MethodGet,
			HandlerFunc: ec.GetEnvironments,
		},
	}

	return routes
}

// GetEnvironments Lists the hosting environments
func (ec *environmentController) GetEnvironments(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /environments environment getEnvironments
	// ---
	// summary: Lists the environments apps can be deployed to
	// responses:
	//   "200":
	//     description: "Successful operation"
	//     schema:
	//        type: "array"
	//        items:
	//           "$ref": "#/definitions/EnvironmentModel"
	//   "403":
	//     description: "Forbidden"
	environments, err := ec.handler.GetEnvironments(r.Context())
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}

	utils.JSONResponse(w, r, environments)
}
