package models

import "time"

// BuildStatus Status of a build in the CI system
type BuildStatus string

const (
	// BuildStatusNone No status
	BuildStatusNone BuildStatus = "none"
	// BuildStatusNotStarted Queued, not started
	BuildStatusNotStarted BuildStatus = "notStarted"
	// BuildStatusPostponed Postponed by the CI system
	BuildStatusPostponed BuildStatus = "postponed"
	// BuildStatusInProgress Running
	BuildStatusInProgress BuildStatus = "inProgress"
	// BuildStatusCancelling Being cancelled
	BuildStatusCancelling BuildStatus = "cancelling"
	// BuildStatusCompleted Done, see BuildResult
	BuildStatusCompleted BuildStatus = "completed"
)

var buildStatusRank = map[BuildStatus]int{
	BuildStatusNone:       0,
	BuildStatusNotStarted: 1,
	BuildStatusPostponed:  1,
	BuildStatusInProgress: 2,
	BuildStatusCancelling: 3,
	BuildStatusCompleted:  4,
}

// Rank position of the status in the build lifecycle. Unknown statuses rank as none.
func (s BuildStatus) Rank() int {
	return buildStatusRank[s]
}

// BuildResult Outcome of a completed build
type BuildResult string

const (
	BuildResultNone               BuildResult = "none"
	BuildResultSucceeded          BuildResult = "succeeded"
	BuildResultPartiallySucceeded BuildResult = "partiallySucceeded"
	BuildResultFailed             BuildResult = "failed"
	BuildResultCanceled           BuildResult = "canceled"
)

// BuildEntity describe a build in the CI system
// swagger:model BuildEntity
type BuildEntity struct {
	// Id of the build in the CI system
	//
	// required: true
	// example: 12345
	ID string `json:"id"`

	// Status of the build
	//
	// required: true
	// enum: none,notStarted,postponed,inProgress,cancelling,completed
	// example: inProgress
	Status BuildStatus `json:"status"`

	// Result of the build
	//
	// required: false
	// enum: none,succeeded,partiallySucceeded,failed,canceled
	Result BuildResult `json:"result,omitempty"`

	// Started timestamp
	//
	// required: false
	// example: 2006-01-02T15:04:05Z
	Started *time.Time `json:"started,omitempty"`

	// Finished timestamp
	//
	// required: false
	// example: 2006-01-02T15:04:05Z
	Finished *time.Time `json:"finished,omitempty"`
}

// IsLagging reports whether the build has been in progress for longer than threshold
func (b *BuildEntity) IsLagging(now time.Time, threshold time.Duration) bool {
	if b == nil || b.Status != BuildStatusInProgress || b.Started == nil {
		return false
	}
	return b.Started.Add(threshold).Before(now)
}

// IsSucceeded reports whether the build completed with a usable result
func (b *BuildEntity) IsSucceeded() bool {
	return b.Status == BuildStatusCompleted &&
		(b.Result == BuildResultSucceeded || b.Result == BuildResultPartiallySucceeded)
}

// IsQueuedSince reports whether the build has not started and was queued before now minus threshold
func (b *BuildEntity) IsQueuedSince(queued, now time.Time, threshold time.Duration) bool {
	if b == nil || (b.Status != BuildStatusNotStarted && b.Status != BuildStatusPostponed) || queued.IsZero() {
		return false
	}
	return queued.Add(threshold).Before(now)
}

// Apply copies status, result and timestamps from a refreshed build.
// A refreshed status ranking below the current one is ignored and a completed build is final.
// Returns true if anything changed.
func (b *BuildEntity) Apply(refreshed BuildEntity) bool {
	if b.Status == BuildStatusCompleted || refreshed.Status.Rank() < b.Status.Rank() {
		return false
	}

	updated := *b
	updated.Status = refreshed.Status
	updated.Result = refreshed.Result
	if refreshed.Started != nil {
		updated.Started = refreshed.Started
	}
	if refreshed.Finished != nil {
		updated.Finished = refreshed.Finished
	}

	changed := b.Status != updated.Status ||
		b.Result != updated.Result ||
		!equalTime(b.Started, updated.Started) ||
		!equalTime(b.Finished, updated.Finished)
	*b = updated
	return changed
}

func equalTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
