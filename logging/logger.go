package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/openddlab/donorpipe/constants"
)

func Initialize(appName string) {
	slog.SetDefault(donorpipeLogger(appName))
}

// donorpipeLogger returns a logger that writes to stderr and masks participant ids
func donorpipeLogger(appName string) *slog.Logger {
	level := getLogLevel()
	if level == constants.LogLevelOff {
		return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	}

	handlerOptions := &slog.HandlerOptions{
		Level: level,

		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// participant ids are pseudonymous but still must not land in logs verbatim
			if a.Key == "participant_id" {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(MaskParticipant(a.Value.String())),
				}
			}
			return a
		},
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, handlerOptions)).With("source", appName)
}

// MaskParticipant replaces all but the first and last character of a
// participant id with asterisks
func MaskParticipant(id string) string {
	if len(id) <= 2 {
		return strings.Repeat("*", len(id))
	}
	return id[:1] + strings.Repeat("*", len(id)-2) + id[len(id)-1:]
}

func getLogLevel() slog.Leveler {
	levelEnv := os.Getenv(constants.EnvLogLevel)

	switch strings.ToLower(levelEnv) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return constants.LogLevelOff
	}
}
