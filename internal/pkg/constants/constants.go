package constants

// viper keys
const (
	ViperAddr        = "addr"
	ViperDatabaseDSN = "database_dsn"
	ViperSecretKey   = "secret_key"
	ViperCORSOrigin  = "cors_origin"
)

const HeaderAuthorization = "Authorization"

// CtxKeyUsername is where the auth middleware stores the authenticated
// username for downstream handlers.
const CtxKeyUsername = "username"
