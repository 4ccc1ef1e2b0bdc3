package logger

import "go.uber.org/zap"

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings.
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"

	FieldList  = "list"  // list label, e.g. validTokens
	FieldCount = "count" // number of entries in a list
	FieldWord  = "word"  // word being classified
	FieldKind  = "kind"  // resulting token kind
)

// ComponentLogger returns a named logger for a specific component.
//
// Call it where the logger is used rather than caching it in a package
// variable, so a later Initialize() takes effect.
//
//	log := logger.ComponentLogger("tokens")
//	log.Debugw("sorted list", logger.FieldList, "validTokens", logger.FieldCount, 3)
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}
