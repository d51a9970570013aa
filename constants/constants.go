package constants

import (
	"log/slog"
	"os"
	"path"
)

const (
	EnvLogLevel = "DONORPIPE_LOG_LEVEL"

	// DefaultArchiveName is the name of the local bundle written when
	// downloading a whole container prefix
	DefaultArchiveName = "data.zip"

	JsonExtension     = ".json"
	GzipJsonExtension = ".json.gz"
)

// LogLevelOff disables logging - it is deliberately above any real slog level
const LogLevelOff = slog.Level(128)

// BaseTmpDir is the root for all staged downloads
var BaseTmpDir = path.Join(os.TempDir(), "donorpipe")
