package log

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Level defines the verbosity of Logger.
type Level int

// Possible logging levels
const (
	Trace Level = iota
	Debug
	Info
	Error
	Panic
)

var levelNames = []string{"TRACE", "DEBUG", "INFO", "ERROR", "PANIC"}

func (l Level) String() string {
	if l < Trace || l > Panic {
		panic(fmt.Sprintf("unknown level: %d", l))
	}
	return levelNames[l]
}

// ParseLevel returns the Level with the given name, matched case
// insensitively.
func ParseLevel(name string) (Level, error) {
	for i, levelName := range levelNames {
		if strings.EqualFold(name, levelName) {
			return Level(i), nil
		}
	}
	return Trace, errors.Errorf("unknown log level '%s'", name)
}

// Names returns the names of all levels, from the most verbose.
func Names() []string {
	names := make([]string, len(levelNames))
	copy(names, levelNames)
	return names
}
