package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	// LevelOff disables tracing.
	LevelOff     Level = iota // no tracing
	LevelError                // only emit on failures
	LevelCommand              // CLI command boundaries
	LevelExpr                 // per-expression events
	LevelDebug                // everything including single operators
)

// String returns the string representation of Level.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelError:
		return "error"
	case LevelCommand:
		return "command"
	case LevelExpr:
		return "expr"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "off":
		return LevelOff, nil
	case "error":
		return LevelError, nil
	case "command":
		return LevelCommand, nil
	case "expr":
		return LevelExpr, nil
	case "debug":
		return LevelDebug, nil
	default:
		return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|error|command|expr|debug)", s)
	}
}

// ShouldEmit returns true if the given scope should emit at this level.
func (l Level) ShouldEmit(scope Scope) bool {
	switch l {
	case LevelCommand:
		return scope <= ScopeCommand
	case LevelExpr:
		return scope <= ScopeExpr
	case LevelDebug:
		return true
	default:
		// LevelError events only surface through the ring dump.
		return false
	}
}

// ShouldRecord reports whether a buffering tracer keeps events of scope.
// At LevelError expression-level events are kept for the failure dump
// without being streamed.
func (l Level) ShouldRecord(scope Scope) bool {
	if l == LevelError {
		return scope <= ScopeExpr
	}
	return l.ShouldEmit(scope)
}
