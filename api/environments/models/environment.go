package models

// EnvironmentModel a hosting environment apps can be deployed to
// swagger:model EnvironmentModel
type EnvironmentModel struct {
	// Name of the environment
	//
	// required: true
	// example: tt02
	Name string `json:"name"`

	// Hostname of the environment
	//
	// required: true
	// example: tt02.altinn.no
	Hostname string `json:"hostname"`

	// Type of the environment
	//
	// required: false
	// example: test
	Type string `json:"type,omitempty"`

	// AppPrefix subdomain prefix for apps
	//
	// required: false
	// example: apps
	AppPrefix string `json:"appPrefix,omitempty"`

	// PlatformPrefix subdomain prefix for the platform
	//
	// required: false
	// example: platform
	PlatformPrefix string `json:"platformPrefix,omitempty"`

	// PlatformUrl base url of platform services in the environment
	//
	// required: false
	// example: https://platform.tt02.altinn.no
	PlatformUrl string `json:"platformUrl,omitempty"`
}

// EnvironmentsDocument the document environments are read from
type EnvironmentsDocument struct {
	Environments []EnvironmentModel `json:"environments"`
}
