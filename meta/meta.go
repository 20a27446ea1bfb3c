// meta/meta.go
package meta

// Version is stamped at build time with -ldflags "-X planter/meta.Version=...".
var Version = "dev"

// DefaultCount is how many recommendations are shown.
const DefaultCount = 5

// DefaultPort is where serve listens.
const DefaultPort = 8080

// DefaultLogLevel is the zerolog level name used without configuration.
const DefaultLogLevel = "info"

// DefaultFirstPlayer holds first-player status in a fresh session.
const DefaultFirstPlayer = "you"

// ConfigName is the config file base name, without extension.
const ConfigName = "planter"

// EnvPrefix prefixes environment overrides, as in PLANTER_DISPLAY_COUNT.
const EnvPrefix = "PLANTER"
