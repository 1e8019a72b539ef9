package models

import "time"

// ReleaseEntity a tagged build of an app
// swagger:model ReleaseEntity
type ReleaseEntity struct {
	// Org owning the app
	//
	// required: true
	Org string `json:"org"`

	// App name
	//
	// required: true
	App string `json:"app"`

	// TagName of the release
	//
	// required: true
	// example: 1.0.3
	TagName string `json:"tagName"`

	// TargetCommitish the commit the release was built from
	//
	// required: true
	// example: 4faca8595c5283a9d0f17a623b9255a0d9866a2e
	TargetCommitish string `json:"targetCommitish"`

	// Build the release pipeline run
	//
	// required: true
	Build BuildEntity `json:"build"`

	// Created timestamp
	//
	// required: true
	Created time.Time `json:"created"`
}
