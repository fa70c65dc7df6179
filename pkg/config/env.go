package config

// EnvPrefix is the envconfig prefix shared by every section.
const EnvPrefix = "GREENVISTA"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "GREENVISTA_APP_ENV"
	EnvPort     = "GREENVISTA_APP_PORT"
	EnvDBDSN    = "GREENVISTA_DB_DSN"
	EnvDBHost   = "GREENVISTA_DB_HOST"
	EnvDBUser   = "GREENVISTA_DB_USER"
	EnvDBName   = "GREENVISTA_DB_NAME"
	EnvRedisURL = "GREENVISTA_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
