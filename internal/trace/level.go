package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff   Level = iota // no tracing
	LevelPhase              // driver + phase boundaries
	LevelFile               // per-file spans
	LevelRule               // every grammar rule
)

// String returns the string representation of Level.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelPhase:
		return "phase"
	case LevelFile:
		return "file"
	case LevelRule:
		return "rule"
	default:
		return "unknown"
	}
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "off", "":
		return LevelOff, nil
	case "phase":
		return LevelPhase, nil
	case "file":
		return LevelFile, nil
	case "rule":
		return LevelRule, nil
	default:
		return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|phase|file|rule)", s)
	}
}

// ShouldEmit returns true if the given scope should emit at this level.
func (l Level) ShouldEmit(scope Scope) bool {
	switch l {
	case LevelPhase:
		return scope <= ScopePhase
	case LevelFile:
		return scope <= ScopeFile
	case LevelRule:
		return true
	}
	return false
}
