package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_BuildStatus_Rank(t *testing.T) {
	assert.Equal(t, 0, BuildStatusNone.Rank())
	assert.Equal(t, 0, BuildStatus("unknown").Rank())
	assert.Equal(t, BuildStatusNotStarted.Rank(), BuildStatusPostponed.Rank())
	assert.Less(t, BuildStatusNotStarted.Rank(), BuildStatusInProgress.Rank())
	assert.Less(t, BuildStatusInProgress.Rank(), BuildStatusCancelling.Rank())
	assert.Less(t, BuildStatusCancelling.Rank(), BuildStatusCompleted.Rank())
}

func Test_BuildEntity_IsLagging(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	started := now.Add(-10 * time.Minute)
	recent := now.Add(-time.Minute)

	scenarios := []struct {
		name     string
		build    *BuildEntity
		expected bool
	}{
		{name: "nil build", build: nil, expected: false},
		{name: "in progress past threshold", build: &BuildEntity{Status: BuildStatusInProgress, Started: &started}, expected: true},
		{name: "in progress within threshold", build: &BuildEntity{Status: BuildStatusInProgress, Started: &recent}, expected: false},
		{name: "in progress without start", build: &BuildEntity{Status: BuildStatusInProgress}, expected: false},
		{name: "completed", build: &BuildEntity{Status: BuildStatusCompleted, Started: &started}, expected: false},
		{name: "not started", build: &BuildEntity{Status: BuildStatusNotStarted, Started: &started}, expected: false},
	}

	for _, ts := range scenarios {
		t.Run(ts.name, func(t *testing.T) {
			assert.Equal(t, ts.expected, ts.build.IsLagging(now, 5*time.Minute))
		})
	}
}

func Test_DeploymentEntity_HasLaggingBuild(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	started := now.Add(-10 * time.Minute)

	scenarios := []struct {
		name       string
		deployment DeploymentEntity
		expected   bool
	}{
		{name: "running past threshold", deployment: DeploymentEntity{Created: now.Add(-time.Hour), Build: BuildEntity{Status: BuildStatusInProgress, Started: &started}}, expected: true},
		{name: "queued past threshold", deployment: DeploymentEntity{Created: now.Add(-10 * time.Minute), Build: BuildEntity{Status: BuildStatusNotStarted}}, expected: true},
		{name: "postponed past threshold", deployment: DeploymentEntity{Created: now.Add(-10 * time.Minute), Build: BuildEntity{Status: BuildStatusPostponed}}, expected: true},
		{name: "queued recently", deployment: DeploymentEntity{Created: now.Add(-time.Minute), Build: BuildEntity{Status: BuildStatusNotStarted}}, expected: false},
		{name: "queued without created", deployment: DeploymentEntity{Build: BuildEntity{Status: BuildStatusNotStarted}}, expected: false},
		{name: "completed long ago", deployment: DeploymentEntity{Created: now.Add(-time.Hour), Build: BuildEntity{Status: BuildStatusCompleted}}, expected: false},
	}

	for _, ts := range scenarios {
		t.Run(ts.name, func(t *testing.T) {
			assert.Equal(t, ts.expected, ts.deployment.HasLaggingBuild(now, 5*time.Minute))
		})
	}
}

func Test_BuildEntity_IsSucceeded(t *testing.T) {
	assert.True(t, (&BuildEntity{Status: BuildStatusCompleted, Result: BuildResultSucceeded}).IsSucceeded())
	assert.True(t, (&BuildEntity{Status: BuildStatusCompleted, Result: BuildResultPartiallySucceeded}).IsSucceeded())
	assert.False(t, (&BuildEntity{Status: BuildStatusCompleted, Result: BuildResultFailed}).IsSucceeded())
	assert.False(t, (&BuildEntity{Status: BuildStatusInProgress, Result: BuildResultSucceeded}).IsSucceeded())
}

func Test_BuildEntity_Apply(t *testing.T) {
	started := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	finished := started.Add(4 * time.Minute)

	t.Run("progresses status and keeps id", func(t *testing.T) {
		build := BuildEntity{ID: "42", Status: BuildStatusNotStarted}
		changed := build.Apply(BuildEntity{ID: "other", Status: BuildStatusInProgress, Started: &started})

		assert.True(t, changed)
		assert.Equal(t, "42", build.ID)
		assert.Equal(t, BuildStatusInProgress, build.Status)
		assert.Equal(t, &started, build.Started)
	})

	t.Run("completes and keeps start when refreshed has none", func(t *testing.T) {
		build := BuildEntity{ID: "42", Status: BuildStatusInProgress, Started: &started}
		changed := build.Apply(BuildEntity{Status: BuildStatusCompleted, Result: BuildResultSucceeded, Finished: &finished})

		assert.True(t, changed)
		assert.Equal(t, BuildResultSucceeded, build.Result)
		assert.Equal(t, &started, build.Started)
		assert.Equal(t, &finished, build.Finished)
	})

	t.Run("ignores regressing status", func(t *testing.T) {
		build := BuildEntity{ID: "42", Status: BuildStatusCompleted, Result: BuildResultFailed}
		changed := build.Apply(BuildEntity{Status: BuildStatusInProgress, Started: &started})

		assert.False(t, changed)
		assert.Equal(t, BuildStatusCompleted, build.Status)
		assert.Nil(t, build.Started)
	})

	t.Run("completed build is final", func(t *testing.T) {
		build := BuildEntity{ID: "42", Status: BuildStatusCompleted, Result: BuildResultSucceeded, Finished: &finished}
		changed := build.Apply(BuildEntity{Status: BuildStatusCompleted, Result: BuildResultFailed, Finished: &started})

		assert.False(t, changed)
		assert.Equal(t, BuildResultSucceeded, build.Result)
		assert.Equal(t, &finished, build.Finished)
	})

	t.Run("reports unchanged", func(t *testing.T) {
		sameStart := started
		build := BuildEntity{ID: "42", Status: BuildStatusInProgress, Started: &started}
		assert.False(t, build.Apply(BuildEntity{Status: BuildStatusInProgress, Started: &sameStart}))
	})
}
