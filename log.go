// Copyright 2017 Canonical Ltd.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package loopscroll

import (
	"bytes"
	"io"
	"log"
	"strings"

	loglevels "github.com/CanonicalLtd/loopscroll/internal/log"
	"github.com/hashicorp/logutils"
)

// NewLogger is a convenience to create a new log.Logger with a filter
// for the given logging level applied. If origins are given, only lines
// from those origins are retained. It's meant to back the StdLogger
// option, whose levels it understands.
func NewLogger(output io.Writer, level string, flag int, origins ...string) *log.Logger {
	if level == "" {
		level = "INFO"
	}

	filter := &LevelFilterWithOrigin{}
	filter.Levels = levels()
	filter.MinLevel = logutils.LogLevel(strings.ToUpper(level))
	filter.Writer = output
	filter.SetOrigins(origins)

	return log.New(filter, "", flag)
}

// LevelFilterWithOrigin is a logutils.LevelFilter that can also filter
// lines by origin, that is the first prefix of the message after the
// level tag, as in "[DEBUG] loopscroll: refreshed 5 items".
type LevelFilterWithOrigin struct {
	logutils.LevelFilter
	Origins []string // Origins to retain. All are retained if empty.
}

// SetOrigins changes the retained origins.
func (f *LevelFilterWithOrigin) SetOrigins(origins []string) {
	f.Origins = origins
}

// Write filters the given line by level and origin.
func (f *LevelFilterWithOrigin) Write(p []byte) (int, error) {
	if !f.checkOrigin(p) {
		return len(p), nil
	}
	return f.LevelFilter.Write(p)
}

// Lines without an origin are always retained. Anything before the level
// tag, like the stdlib timestamp, is skipped.
func (f *LevelFilterWithOrigin) checkOrigin(line []byte) bool {
	if len(f.Origins) == 0 {
		return true
	}
	if i := bytes.IndexByte(line, '['); i >= 0 {
		if j := bytes.Index(line[i:], []byte("] ")); j >= 0 {
			line = line[i+j+2:]
		}
	}
	i := bytes.Index(line, []byte(": "))
	if i < 0 {
		return true
	}
	origin := string(line[:i])
	for _, o := range f.Origins {
		if o == origin {
			return true
		}
	}
	return false
}

func levels() []logutils.LogLevel {
	names := loglevels.Names()
	levels := make([]logutils.LogLevel, len(names))
	for i, name := range names {
		levels[i] = logutils.LogLevel(name)
	}
	return levels
}
