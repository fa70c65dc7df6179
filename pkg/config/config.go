package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Reviews      ReviewsConfig
	Leads        LeadsConfig
	QuoteLimit   QuoteRateLimitConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GREENVISTA_APP_ENV" required:"true"`
	Port         string `envconfig:"GREENVISTA_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"GREENVISTA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GREENVISTA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"GREENVISTA_DB_DSN"`
	Driver string `envconfig:"GREENVISTA_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"GREENVISTA_DB_HOST"`
	LegacyPort     int    `envconfig:"GREENVISTA_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"GREENVISTA_DB_USER"`
	LegacyPassword string `envconfig:"GREENVISTA_DB_PASSWORD"`
	LegacyName     string `envconfig:"GREENVISTA_DB_NAME"`
	LegacySSLMode  string `envconfig:"GREENVISTA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"GREENVISTA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"GREENVISTA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"GREENVISTA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"GREENVISTA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"GREENVISTA_REDIS_URL" required:"true"`
	Address      string        `envconfig:"GREENVISTA_REDIS_ADDR"`
	Password     string        `envconfig:"GREENVISTA_REDIS_PASSWORD"`
	DB           int           `envconfig:"GREENVISTA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"GREENVISTA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GREENVISTA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GREENVISTA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GREENVISTA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"GREENVISTA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// ReviewsConfig controls the cached review widget data.
type ReviewsConfig struct {
	UpstreamURL  string        `envconfig:"GREENVISTA_REVIEWS_UPSTREAM_URL"`
	FetchTimeout time.Duration `envconfig:"GREENVISTA_REVIEWS_FETCH_TIMEOUT" default:"5s"`
	CacheTTL     time.Duration `envconfig:"GREENVISTA_REVIEWS_CACHE_TTL" default:"24h"`
}

// LeadsConfig overrides the lead-priority cutoffs. The per-signal weights live
// with the rubric defaults; the tier cutoffs are the knobs ops actually turns.
type LeadsConfig struct {
	HotThreshold      int `envconfig:"GREENVISTA_LEADS_HOT_THRESHOLD" default:"80"`
	WarmThreshold     int `envconfig:"GREENVISTA_LEADS_WARM_THRESHOLD" default:"55"`
	StandardThreshold int `envconfig:"GREENVISTA_LEADS_STANDARD_THRESHOLD" default:"30"`
}

type QuoteRateLimitConfig struct {
	Window     time.Duration `envconfig:"GREENVISTA_QUOTE_RATE_LIMIT_WINDOW" default:"1m"`
	IPLimit    int           `envconfig:"GREENVISTA_QUOTE_RATE_LIMIT_IP_LIMIT" default:"10"`
	EmailLimit int           `envconfig:"GREENVISTA_QUOTE_RATE_LIMIT_EMAIL_LIMIT" default:"5"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"GREENVISTA_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"GREENVISTA_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
