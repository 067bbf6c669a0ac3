package constants

const (
	CtxKeyUserID = "user_id"

	CookieKeyAuthToken = "auth_token"

	ViperKeyListenAddr     = "listen_addr"
	ViperKeyDatabaseURL    = "database_url"
	ViperKeyAllowedOrigins = "allowed_origins"
	ViperKeyDebug          = "debug"
	ViperSecretKey         = "jwt_secret"

	ViperKeyNarrativeBaseURL = "narrative_base_url"
	ViperKeyNarrativeAPIKey  = "narrative_api_key"
	ViperKeyNarrativeModel   = "narrative_model"
	ViperKeyNarrativeTimeout = "narrative_timeout"
)
