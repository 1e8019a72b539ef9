package config

import (
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port           int    `envconfig:"PORT" default:"8080" desc:"Port where API will be served"`
	MetricsPort    int    `envconfig:"METRICS_PORT" default:"9090"  desc:"Port where Metrics will be served"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	LogPrettyPrint bool   `envconfig:"LOG_PRETTY" default:"false"`

	DatabaseURL     string `envconfig:"DATABASE_URL" required:"true" desc:"PostgreSQL connection string"`
	DatabaseMigrate bool   `envconfig:"DATABASE_MIGRATE" default:"true" desc:"Apply schema migrations on start"`

	RedisAddr     string `envconfig:"REDIS_ADDR" desc:"Redis address for refresh leases, in-process leases when empty"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	AzureDevOps  AzureDevOps `envconfig:"AZURE_DEVOPS" required:"true"`
	GiteaBaseURL string      `envconfig:"GITEA_BASE_URL" required:"true"`

	EnvironmentsURL      string        `envconfig:"ENVIRONMENTS_URL" required:"true" desc:"URL or file path of the environments document"`
	EnvironmentsCacheTTL time.Duration `envconfig:"ENVIRONMENTS_CACHE_TTL" default:"10m"`

	KubernetesStatusSource   string `envconfig:"KUBERNETES_STATUS_SOURCE" default:"wrapper" desc:"wrapper or cluster"`
	KubernetesWrapperBaseURL string `envconfig:"KUBERNETES_WRAPPER_BASE_URL" desc:"Overrides https://{org}.{appPrefix}.{hostname}"`
	KubeConfig               string `envconfig:"KUBECONFIG" desc:"Kubeconfig for the cluster source, in-cluster config when empty"`

	Platform Platform `envconfig:"PLATFORM"`
	Oidc     Oidc     `envconfig:"OIDC" required:"true"`

	LaggingBuildThreshold  time.Duration `envconfig:"LAGGING_BUILD_THRESHOLD" default:"5m"`
	RefreshWorkers         int           `envconfig:"REFRESH_WORKERS" default:"4"`
	RefreshQueueSize       int           `envconfig:"REFRESH_QUEUE_SIZE" default:"100"`
	RefreshLeaseTTL        time.Duration `envconfig:"REFRESH_LEASE_TTL" default:"1m"`
	EnvironmentParallelism int           `envconfig:"ENVIRONMENT_PARALLELISM" default:"5"`
	HTTPClientRetryMax     int           `envconfig:"HTTP_CLIENT_RETRY_MAX" default:"3"`
	HTTPClientTimeout      time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"30s"`

	CorsAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`
}

type AzureDevOps struct {
	BaseURL            string `envconfig:"BASE_URL" required:"true"`
	Token              string `envconfig:"TOKEN" required:"true"`
	DeployDefinitionID int    `envconfig:"DEPLOY_DEFINITION_ID" required:"true"`
}

type Platform struct {
	TokenURL     string   `envconfig:"TOKEN_URL"`
	ClientID     string   `envconfig:"CLIENT_ID"`
	ClientSecret string   `envconfig:"CLIENT_SECRET"`
	Scopes       []string `envconfig:"SCOPES"`
}

type Oidc struct {
	Issuer   url.URL `envconfig:"ISSUER" required:"true"`
	Audience string  `envconfig:"AUDIENCE" required:"true"`
}

func MustParse() Config {
	s, err := Parse()
	if err != nil {
		_ = envconfig.Usage("", &s)
		log.Fatal().Msg(err.Error())
	}

	return s
}

// Parse reads the configuration from the environment
func Parse() (Config, error) {
	var s Config
	err := envconfig.Process("", &s)
	return s, err
}
