package config

// EnvPrefix is passed to envconfig; individual fields carry fully qualified
// names so the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "ASSETMGR_APP_ENV"
	EnvPort     = "ASSETMGR_APP_PORT"
	EnvLogLevel = "ASSETMGR_LOG_LEVEL"

	EnvDBDSN  = "ASSETMGR_DB_DSN"
	EnvDBHost = "ASSETMGR_DB_HOST"
	EnvDBUser = "ASSETMGR_DB_USER"
	EnvDBName = "ASSETMGR_DB_NAME"

	EnvRedisURL = "ASSETMGR_REDIS_URL"

	EnvJWTSecret              = "ASSETMGR_JWT_SECRET"
	EnvJWTIssuer              = "ASSETMGR_JWT_ISSUER"
	EnvJWTExpMins             = "ASSETMGR_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "ASSETMGR_REFRESH_TOKEN_TTL_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
