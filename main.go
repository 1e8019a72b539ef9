// Designer API Server.
// Deploys tagged releases of apps to hosting environments and reports what runs where.
// Schemes: http, https
// BasePath: /designer/api
// Version: 1.0.0
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
//
// SecurityDefinitions:
//   bearer:
//     type: apiKey
//     name: Authorization
//     in: header
//
// Security:
// - bearer:
//
// swagger:meta
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/altinn/designer-api/api/deployments"
	"github.com/altinn/designer-api/api/environments"
	"github.com/altinn/designer-api/api/router"
	"github.com/altinn/designer-api/api/utils/token"
	"github.com/altinn/designer-api/internal/azuredevops"
	"github.com/altinn/designer-api/internal/config"
	"github.com/altinn/designer-api/internal/database"
	"github.com/altinn/designer-api/internal/gitea"
	"github.com/altinn/designer-api/internal/httpclient"
	"github.com/altinn/designer-api/internal/kuberneteswrapper"
	"github.com/altinn/designer-api/internal/lease"
	"github.com/altinn/designer-api/internal/platformstorage"
	"github.com/altinn/designer-api/internal/repository/postgres"
	"github.com/altinn/designer-api/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	c := config.MustParse()
	initLogger(c)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = log.Logger.WithContext(ctx)

	pool, err := database.Open(ctx, c.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	if c.DatabaseMigrate {
		if err = database.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
	}

	locker := getLocker(ctx, c)
	environmentHandler := environments.Init(c.EnvironmentsURL, c.EnvironmentsCacheTTL,
		environments.WithHTTPClient(httpclient.NewRetrying(c.HTTPClientRetryMax, c.HTTPClientTimeout, log.Logger, httpclient.WithTarget("environments"))))

	validator, err := token.NewValidator(c.Oidc.Issuer, c.Oidc.Audience)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create token validator")
	}

	refresher := deployments.NewRefresher(locker, c.RefreshWorkers, c.RefreshQueueSize, c.RefreshLeaseTTL)
	deployHandler := deployments.Init(deployments.Dependencies{
		Deployments:  postgres.NewDeploymentRepository(pool),
		Releases:     postgres.NewReleaseRepository(pool),
		Environments: environmentHandler,
		Builds: azuredevops.NewClient(c.AzureDevOps.BaseURL, c.AzureDevOps.Token,
			httpclient.NewRetrying(c.HTTPClientRetryMax, c.HTTPClientTimeout, log.Logger, httpclient.WithTarget("azuredevops")),
			httpclient.New(c.HTTPClientTimeout, httpclient.WithTarget("azuredevops"))),
		Kubernetes: getKubernetesClient(c),
		Gitea:      gitea.NewClient(c.GiteaBaseURL, httpclient.NewRetrying(c.HTTPClientRetryMax, c.HTTPClientTimeout, log.Logger, httpclient.WithTarget("gitea"))),
		Metadata: platformstorage.NewClient(httpclient.New(c.HTTPClientTimeout, httpclient.WithTarget("platform")), platformstorage.ClientCredentials{
			TokenURL:     c.Platform.TokenURL,
			ClientID:     c.Platform.ClientID,
			ClientSecret: c.Platform.ClientSecret,
			Scopes:       c.Platform.Scopes,
		}),
		LaggingBuilds:      refresher,
		DeployDefinitionID: c.AzureDevOps.DeployDefinitionID,
	},
		deployments.WithLaggingThreshold(c.LaggingBuildThreshold),
		deployments.WithEnvironmentParallelism(c.EnvironmentParallelism),
	)

	controllers := []models.Controller{
		deployments.NewDeploymentController(deployHandler),
		environments.NewEnvironmentController(environmentHandler),
	}

	apiServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", c.Port),
		Handler:           router.NewAPIHandler(validator, c.CorsAllowedOrigins, pool.Ping, controllers...),
		ReadHeaderTimeout: 5 * time.Second,
	}
	metricsServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", c.MetricsPort),
		Handler:           router.NewMetricsHandler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		refresher.Run(gctx, deployHandler)
		return nil
	})
	g.Go(func() error { return serve(apiServer, "api") })
	g.Go(func() error { return serve(metricsServer, "metrics") })
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return errors.Join(apiServer.Shutdown(shutdownCtx), metricsServer.Shutdown(shutdownCtx))
	})

	if err = g.Wait(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}

func serve(server *http.Server, name string) error {
	log.Info().Str("addr", server.Addr).Msgf("%s server starting", name)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server: %w", name, err)
	}
	return nil
}

func initLogger(c config.Config) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.DurationFieldUnit = time.Millisecond

	if c.LogPrettyPrint {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}
	zerolog.DefaultContextLogger = &log.Logger
	log.Debug().Str("level", level.String()).Msg("logger initialized")
}

func getLocker(ctx context.Context, c config.Config) lease.Locker {
	if c.RedisAddr == "" {
		return lease.NewMemoryLocker()
	}
	locker, err := lease.NewRedisLocker(ctx, c.RedisAddr, c.RedisPassword, c.RedisDB)
	if err != nil {
		log.Fatal().Err(err).Str("addr", c.RedisAddr).Msg("failed to connect to redis")
	}
	return locker
}

func getKubernetesClient(c config.Config) kuberneteswrapper.Client {
	if c.KubernetesStatusSource != "cluster" {
		return kuberneteswrapper.NewHTTPClient(c.KubernetesWrapperBaseURL,
			httpclient.NewRetrying(c.HTTPClientRetryMax, c.HTTPClientTimeout, log.Logger, httpclient.WithTarget("kuberneteswrapper")))
	}
	kubeClient, err := kuberneteswrapper.NewKubernetesClient(c.KubeConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create kubernetes client")
	}
	return kuberneteswrapper.NewClusterClient(kubeClient)
}
