package trylog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	logger       *zap.Logger
	name         string
	successLevel zapcore.Level
	failureLevel zapcore.Level
}

// Option configures a Logger.
type Option func(*options)

// WithLogger sets the zap logger entries are written to. Defaults to zap.NewNop().
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithName names the logger.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithSuccessLevel is the level of entries for Success outcomes. Defaults to Debug.
func WithSuccessLevel(level zapcore.Level) Option {
	return func(o *options) {
		o.successLevel = level
	}
}

// WithFailureLevel is the level of entries for Failure outcomes. Defaults to Error.
func WithFailureLevel(level zapcore.Level) Option {
	return func(o *options) {
		o.failureLevel = level
	}
}
