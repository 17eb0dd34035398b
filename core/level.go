package core

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Level represents the severity rank of a log record.
type Level int

const (
	// NotSet is the zero level; loggers created implicitly start here
	// and therefore pass every record through.
	NotSet Level = 0
	// DebugLevel for detailed diagnostic output
	DebugLevel Level = 10
	// InfoLevel for normal operational messages
	InfoLevel Level = 20
	// WarnLevel for conditions that deserve attention but do not fail
	WarnLevel Level = 30
	// ErrorLevel for failed operations
	ErrorLevel Level = 40
	// CriticalLevel for failures that compromise the whole process
	CriticalLevel Level = 50
)

// Sentinel errors for severity lookups. Callers match them with errors.Is.
var (
	ErrUnknownLevelName = errors.New("unknown level name")
	ErrUnknownLevelRank = errors.New("unknown level rank")
)

// levelNames maps canonical ranks to canonical names. Order matches the
// strictly increasing rank order.
var levelNames = map[Level]string{
	NotSet:        "NOTSET",
	DebugLevel:    "DEBUG",
	InfoLevel:     "INFO",
	WarnLevel:     "WARN",
	ErrorLevel:    "ERROR",
	CriticalLevel: "CRITICAL",
}

// String returns the canonical name of the level, or a decimal rendering
// of the rank for non-canonical values.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "LEVEL(" + strconv.Itoa(int(l)) + ")"
}

// ParseLevel converts a level name to its rank. Matching is
// case-insensitive; unknown names fail with ErrUnknownLevelName.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(s) {
	case "NOTSET":
		return NotSet, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "CRITICAL":
		return CriticalLevel, nil
	default:
		return NotSet, errors.Wrapf(ErrUnknownLevelName, "%q", s)
	}
}

// LevelName returns the canonical name for a rank. Only the six
// canonical ranks resolve; everything else fails with ErrUnknownLevelRank.
func LevelName(rank int) (string, error) {
	if name, ok := levelNames[Level(rank)]; ok {
		return name, nil
	}
	return "", errors.Wrapf(ErrUnknownLevelRank, "%d", rank)
}

// ResolveLevel normalizes the dual name/rank representation accepted at
// the API boundary. It takes a level name (string), a rank (int), or a
// Level, re-deriving the canonical name in all cases so that
// non-canonical ranks are rejected rather than silently carried.
func ResolveLevel(v any) (Level, error) {
	switch lv := v.(type) {
	case Level:
		if _, err := LevelName(int(lv)); err != nil {
			return NotSet, err
		}
		return lv, nil
	case int:
		if _, err := LevelName(lv); err != nil {
			return NotSet, err
		}
		return Level(lv), nil
	case string:
		return ParseLevel(lv)
	default:
		return NotSet, errors.Wrapf(ErrUnknownLevelName, "unsupported level value %v (%T)", v, v)
	}
}
