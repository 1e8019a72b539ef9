package models

import (
	"fmt"

	"github.com/altinn/designer-api/api/utils"
)

// InvalidDeploymentRequest the create request did not validate
func InvalidDeploymentRequest(message string) error {
	return utils.ValidationError("Deployment", message)
}

// InvalidQuery the list query did not validate
func InvalidQuery(message string) error {
	return utils.ValidationError("Query", message)
}

// NonExistingRelease no succeeded release for the tag
func NonExistingRelease(underlyingError error, org, app, tagName string) error {
	return utils.TypeMissingError(fmt.Sprintf("No succeeded release %s found for %s/%s", tagName, org, app), underlyingError)
}

// NonExistingDeploymentForBuild no deployment was created by the build
func NonExistingDeploymentForBuild(underlyingError error, org, buildID string) error {
	return utils.TypeMissingError(fmt.Sprintf("No deployment for build %s found in %s", buildID, org), underlyingError)
}

// UnknownEnvironment the environment is not configured
func UnknownEnvironment(envName string) error {
	return utils.ValidationError("Deployment", fmt.Sprintf("Environment %s does not exist", envName))
}

// MissingDeployPermission the caller is not in the deploy team of the environment
func MissingDeployPermission(org, envName string) error {
	return utils.ForbiddenError(fmt.Sprintf("Missing permission to deploy to %s in %s", envName, org))
}

// InvalidAppName the app name in the path is not a valid app name
func InvalidAppName(app string) error {
	return utils.ValidationError("App", fmt.Sprintf("%s is not a valid app name", app))
}
