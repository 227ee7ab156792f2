package version

// Default build-time variables.
// These values are overridden via ldflags
var (
	Version   = "0.0.0+unknown"
	GitCommit = "unknown-commit-sha"
)

// UserAgent is sent with every request geolocdb makes.
func UserAgent() string {
	return "geolocdb/" + Version
}
