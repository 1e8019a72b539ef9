package models

import (
	"fmt"

	"github.com/altinn/designer-api/api/utils"
)

// NonExistingEnvironment No environment found by name
func NonExistingEnvironment(envName string) error {
	return utils.NotFoundError(fmt.Sprintf("Environment %s does not exist", envName))
}

// EnvironmentsUnavailable the environment list could not be loaded
func EnvironmentsUnavailable(underlyingError error) error {
	return utils.UnexpectedError("Unable to load environments", underlyingError)
}
