package deployments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/altinn/designer-api/api/metrics"
	"github.com/altinn/designer-api/internal/lease"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// BuildUpdater refreshes the build status of a deployment
type BuildUpdater interface {
	Update(ctx context.Context, org, buildID string) error
}

type refreshRequest struct {
	org     string
	buildID string
}

// Refresher refreshes lagging builds out of band.
// Requests are queued without blocking and consumed by a fixed number of workers.
// A build is refreshed at most once per lease TTL across all replicas sharing the locker.
type Refresher struct {
	queue    chan refreshRequest
	locker   lease.Locker
	workers  int
	leaseTTL time.Duration
	timeout  time.Duration
}

var _ LaggingBuildQueue = (*Refresher)(nil)

// NewRefresher Constructor
func NewRefresher(locker lease.Locker, workers, queueSize int, leaseTTL time.Duration) *Refresher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &Refresher{
		queue:    make(chan refreshRequest, queueSize),
		locker:   locker,
		workers:  workers,
		leaseTTL: leaseTTL,
		timeout:  30 * time.Second,
	}
}

// Enqueue schedules a refresh of the build. It returns false when the queue is full.
func (r *Refresher) Enqueue(ctx context.Context, org, buildID string) bool {
	select {
	case r.queue <- refreshRequest{org: org, buildID: buildID}:
		return true
	default:
		metrics.AddBuildRefresh(metrics.RefreshDropped)
		log.Ctx(ctx).Warn().Str("org", org).Str("build_id", buildID).Msg("refresh queue is full, dropping lagging build")
		return false
	}
}

// Run consumes the queue until ctx is cancelled and waits for in-flight refreshes
func (r *Refresher) Run(ctx context.Context, updater BuildUpdater) {
	logger := log.Ctx(ctx).With().Str("pkg", "refresher").Logger()
	ctx = logger.WithContext(ctx)
	logger.Info().Int("workers", r.workers).Msg("starting build refresher")

	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case request := <-r.queue:
					r.refresh(ctx, updater, request)
				}
			}
		}()
	}
	wg.Wait()
	logger.Info().Msg("build refresher stopped")
}

func (r *Refresher) refresh(ctx context.Context, updater BuildUpdater, request refreshRequest) {
	logger := zerolog.Ctx(ctx).With().Str("org", request.org).Str("build_id", request.buildID).Logger()
	key := leaseKey(request.org, request.buildID)

	token, acquired, err := r.locker.TryAcquire(ctx, key, r.leaseTTL)
	if err != nil {
		metrics.AddBuildRefresh(metrics.RefreshFailed)
		logger.Error().Err(err).Msg("failed to acquire refresh lease")
		return
	}
	if !acquired {
		metrics.AddBuildRefresh(metrics.RefreshSkipped)
		return
	}

	refreshCtx, cancel := context.WithTimeout(logger.WithContext(ctx), r.timeout)
	defer cancel()
	if err = updater.Update(refreshCtx, request.org, request.buildID); err != nil {
		metrics.AddBuildRefresh(metrics.RefreshFailed)
		logger.Warn().Err(err).Msg("failed to refresh lagging build")
		if err = r.locker.Release(context.WithoutCancel(ctx), key, token); err != nil {
			logger.Error().Err(err).Msg("failed to release refresh lease")
		}
	}
}

func leaseKey(org, buildID string) string {
	return fmt.Sprintf("%s/%s", org, buildID)
}
