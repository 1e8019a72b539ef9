package deployments

import (
	"net/http"
	"regexp"

	deploymentModels "github.com/altinn/designer-api/api/deployments/models"
	"github.com/altinn/designer-api/api/utils"
	"github.com/altinn/designer-api/models"
	"github.com/gorilla/mux"
)

const rootPath = "/{org}/{app}/deployments"

var appNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]{1,28}[a-z0-9]$`)

type deploymentController struct {
	*models.DefaultController
	handler DeployHandler
}

// NewDeploymentController Constructor
func NewDeploymentController(handler DeployHandler) models.Controller {
	return &deploymentController{handler: handler}
}

// GetRoutes List the supported routes of this handler
func (dc *deploymentController) GetRoutes() models.Routes {
	routes := models.Routes{
		models.Route{
			Path:        rootPath,
			Method:      http.MethodGet,
			HandlerFunc: dc.GetDeployments,
		},
		models.Route{
			Path:        rootPath,
			Method:      http.MethodPost,
			HandlerFunc: dc.CreateDeployment,
		},
		models.Route{
			Path:        rootPath + "/permissions",
			Method:      http.MethodGet,
			HandlerFunc: dc.GetDeployPermissions,
		},
	}

	return routes
}

// GetDeployments Lists deployments of an app
func (dc *deploymentController) GetDeployments(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /{org}/{app}/deployments deployment getDeployments
	// ---
	// summary: Lists the deployments of an app and the release running in each environment
	// parameters:
	// - name: org
	//   in: path
	//   description: organisation owning the app
	//   type: string
	//   required: true
	// - name: app
	//   in: path
	//   description: name of the app
	//   type: string
	//   required: true
	// - name: top
	//   in: query
	//   description: max number of deployments, 1 to 1000
	//   type: integer
	//   required: false
	// - name: sortDirection
	//   in: query
	//   description: asc or desc by created, default desc
	//   type: string
	//   required: false
	// responses:
	//   "200":
	//     description: "Successful operation"
	//     schema:
	//        "$ref": "#/definitions/DeploymentResponse"
	//   "400":
	//     description: "Invalid query"
	//   "403":
	//     description: "Forbidden"
	org, app, ok := appFromPath(w, r)
	if !ok {
		return
	}

	top, err := utils.GetOptionalIntQuery(r, "top")
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}
	query, err := deploymentModels.NewDocumentQuery(top, r.URL.Query().Get("sortDirection"))
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}

	deployments, err := dc.handler.Get(r.Context(), org, app, query)
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}

	utils.JSONResponse(w, r, deployments)
}

// CreateDeployment Queues a deploy of a release
func (dc *deploymentController) CreateDeployment(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /{org}/{app}/deployments deployment createDeployment
	// ---
	// summary: Deploys a succeeded release of the app to an environment
	// parameters:
	// - name: org
	//   in: path
	//   description: organisation owning the app
	//   type: string
	//   required: true
	// - name: app
	//   in: path
	//   description: name of the app
	//   type: string
	//   required: true
	// - name: deployment
	//   in: body
	//   description: release and environment to deploy
	//   required: true
	//   schema:
	//       "$ref": "#/definitions/CreateDeploymentRequest"
	// responses:
	//   "201":
	//     description: "Deployment created"
	//     schema:
	//        "$ref": "#/definitions/DeploymentEntity"
	//   "400":
	//     description: "Invalid request"
	//   "403":
	//     description: "Forbidden"
	//   "404":
	//     description: "Release not found"
	org, app, ok := appFromPath(w, r)
	if !ok {
		return
	}

	var request deploymentModels.CreateDeploymentRequest
	if err := utils.DecodeJSONBody(r, &request); err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}

	deployment, err := dc.handler.Create(r.Context(), org, app, request)
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}

	utils.JSONResponseWithCode(w, r, http.StatusCreated, deployment)
}

// GetDeployPermissions Lists the environments the caller may deploy to
func (dc *deploymentController) GetDeployPermissions(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /{org}/{app}/deployments/permissions deployment getDeployPermissions
	// ---
	// summary: Lists the environments the caller may deploy the app to
	// parameters:
	// - name: org
	//   in: path
	//   description: organisation owning the app
	//   type: string
	//   required: true
	// - name: app
	//   in: path
	//   description: name of the app
	//   type: string
	//   required: true
	// responses:
	//   "200":
	//     description: "Environment names, and Owners for members of the owners team"
	//     schema:
	//        type: "array"
	//        items:
	//           type: "string"
	//   "403":
	//     description: "Forbidden"
	org, _, ok := appFromPath(w, r)
	if !ok {
		return
	}

	permissions, err := dc.handler.GetPermissions(r.Context(), org)
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}

	utils.JSONResponse(w, r, permissions)
}

func appFromPath(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	org := mux.Vars(r)["org"]
	app := mux.Vars(r)["app"]
	if app == "datamodels" || !appNamePattern.MatchString(app) {
		utils.ErrorResponse(w, r, deploymentModels.InvalidAppName(app))
		return "", "", false
	}
	return org, app, true
}
