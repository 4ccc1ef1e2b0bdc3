package logger

import "go.uber.org/zap/zapcore"

// Verbosity level constants.
//
// gentokens takes no flags, so the binary always runs at VerbosityUser.
// Higher levels exist for tests and for embedding the tokens package
// in other tools.
const (
	VerbosityUser  = 0 // results and errors only
	VerbosityInfo  = 1 // + operation summaries
	VerbosityDebug = 2 // + per-list sort details
)

// VerbosityToLevel maps a verbosity count to a zap log level
//
// Mapping:
//
//	0       -> WarnLevel  (errors and warnings only)
//	1       -> InfoLevel  (+ informational messages)
//	2+      -> DebugLevel (+ debug messages)
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityUser:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// LevelName returns a human-readable name for verbosity level
func LevelName(verbosity int) string {
	switch verbosity {
	case VerbosityUser:
		return "User"
	case VerbosityInfo:
		return "Info"
	case VerbosityDebug:
		return "Debug"
	default:
		if verbosity > VerbosityDebug {
			return "Debug+"
		}
		return "Unknown"
	}
}
