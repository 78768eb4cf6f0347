// Package constants defines application-wide constants and default values.
package constants

const (
	AppName    = "castfetch"
	AppVersion = "1.0.0"

	// Remote API
	DefaultBaseURL    = "https://boolean-spec-frontend.vercel.app/freetestapi"
	ActressesEndpoint = "actresses"
	ActorsEndpoint    = "actors"

	// Default configuration values
	DefaultPort       = "5000"
	DefaultLogLevel   = "info"
	DefaultConfigFile = "config.json"

	// Rate limiting of outbound requests
	DefaultRateLimit = 10 // tokens per second
	DefaultRateBurst = 20 // bucket capacity

	// Zero means every id of a batch is fetched at once.
	DefaultMaxConcurrency = 0

	// New records get an id drawn from [0, MaxGeneratedID).
	MaxGeneratedID = 1000
)

// Limits
const (
	// Upper bound on a response body read from the remote API
	MaxResponseBytes = 10 << 20
)
