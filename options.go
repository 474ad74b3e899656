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
	stdlog "log"

	"github.com/CanonicalLtd/loopscroll/internal/log"
	"github.com/CanonicalLtd/loopscroll/internal/velocity"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option to be passed to New to customize the resulting controller.
type Option func(*options)

// Direction sets the axis along which the content scrolls and loops.
func Direction(axis Axis) Option {
	return func(options *options) {
		options.axis = axis
	}
}

// InertiaEnabled sets whether the content keeps moving after a drag is released.
func InertiaEnabled(enabled bool) Option {
	return func(options *options) {
		options.inertia = enabled
	}
}

// DecelerationRate sets the fraction of velocity retained after one second
// of inertial motion. It must be in the open interval (0, 1). The default
// is 0.135.
func DecelerationRate(rate float64) Option {
	return func(options *options) {
		options.decelerationRate = rate
	}
}

// SmoothingRate sets how fast, per second, the drag velocity estimate
// follows the instant velocity of the pointer. It must be positive.
func SmoothingRate(rate float64) Option {
	return func(options *options) {
		options.smoothingRate = rate
	}
}

// TraceRetain sets how many recent rearrangements are retained for
// diagnostics. Zero disables tracing.
func TraceRetain(n int) Option {
	return func(options *options) {
		options.traceRetain = n
	}
}

// Metrics registers the controller metrics against the given registerer.
func Metrics(registerer prometheus.Registerer) Option {
	return func(options *options) {
		options.registerer = registerer
	}
}

// LogFunc sets the logging handler for messages emitted by the controller.
func LogFunc(f func(level, message string)) Option {
	return func(options *options) {
		// Little wrapper translating internal log.Level types to plain
		// strings.
		options.logFunc = func(level log.Level, message string) error {
			f(level.String(), message)
			return nil
		}
	}
}

// StdLogger sets a stdlib logger as logging handler for messages emitted
// by the controller. Each line is tagged with its level, as expected by the
// filter of NewLogger.
func StdLogger(logger *stdlog.Logger) Option {
	return func(options *options) {
		options.logFunc = log.Stdlib(logger)
	}
}

// ZapLogger sets a zap logger as logging handler for messages emitted by
// the controller.
func ZapLogger(logger *zap.Logger) Option {
	return func(options *options) {
		options.logFunc = log.Zap(logger)
	}
}

// LogLevel sets the logging level for messages emitted by the controller.
//
// Possible values are "TRACE", "DEBUG", "INFO", "ERROR", "PANIC"
func LogLevel(level string) Option {
	return func(options *options) {
		options.logLevel = level
	}
}

// Create a options instance with default values.
func newOptions() *options {
	return &options{
		axis:             Horizontal,
		inertia:          true,
		decelerationRate: 0.135,
		smoothingRate:    velocity.SmoothingRate,
		traceRetain:      32,
		logFunc:          log.Standard(),
		logLevel:         "INFO",
	}
}

type options struct {
	axis             Axis
	inertia          bool
	decelerationRate float64
	smoothingRate    float64
	traceRetain      int
	registerer       prometheus.Registerer
	logFunc          log.Func
	logLevel         string
}

// Check that all values are in range and return the parsed log level.
func (o *options) validate() (log.Level, error) {
	if o.axis != Horizontal && o.axis != Vertical {
		return 0, errors.Wrapf(ErrInvalidOption, "unknown axis %d", int(o.axis))
	}
	if o.decelerationRate <= 0 || o.decelerationRate >= 1 {
		return 0, errors.Wrapf(ErrInvalidOption, "deceleration rate %g not in (0, 1)", o.decelerationRate)
	}
	if o.smoothingRate <= 0 {
		return 0, errors.Wrapf(ErrInvalidOption, "smoothing rate %g is not positive", o.smoothingRate)
	}
	if o.traceRetain < 0 {
		return 0, errors.Wrapf(ErrInvalidOption, "negative trace retain %d", o.traceRetain)
	}
	if o.logFunc == nil {
		return 0, errors.Wrap(ErrInvalidOption, "nil log function")
	}
	level, err := log.ParseLevel(o.logLevel)
	if err != nil {
		return 0, errors.Wrap(ErrInvalidOption, err.Error())
	}
	return level, nil
}
