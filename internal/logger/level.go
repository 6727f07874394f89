// Package logger provides the leveled, context-carrying logger used across wdioreport.
package logger

import "strings"

// Level is the visibility of a log line. Lower values are always more visible.
type Level int32

// Supported levels.
const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	}

	return "DEBUG"
}

// ParseLevel maps ERROR, WARN, INFO and DEBUG to their levels.
// Matching is case sensitive, the same way the environment variable is read.
func ParseLevel(value string) (Level, bool) {
	switch strings.TrimSpace(value) {
	case "ERROR":
		return LevelError, true
	case "WARN":
		return LevelWarn, true
	case "INFO":
		return LevelInfo, true
	case "DEBUG":
		return LevelDebug, true
	}

	return LevelDebug, false
}

// Env holds the raw environment values the defaults are derived from.
type Env struct {
	Level      string
	Timestamp  string
	StackTrace string
	Production bool
}

// DefaultLevel resolves the level from the environment.
// An unset value yields INFO in production and DEBUG otherwise; unknown values yield DEBUG.
func DefaultLevel(env Env) Level {
	if env.Level == "" {
		if env.Production {
			return LevelInfo
		}

		return LevelDebug
	}

	level, _ := ParseLevel(env.Level)

	return level
}

// DefaultTimestamp resolves whether timestamps are rendered.
func DefaultTimestamp(env Env) bool {
	return parseToggle(env.Timestamp, !env.Production)
}

// DefaultStackTrace resolves whether error stacks are rendered.
func DefaultStackTrace(env Env) bool {
	return parseToggle(env.StackTrace, !env.Production)
}

func parseToggle(value string, unset bool) bool {
	switch value {
	case "":
		return unset
	case "false":
		return false
	default:
		return true
	}
}
