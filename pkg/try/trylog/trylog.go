package trylog

import (
	"github.com/ib-77/try/pkg/try"
	"go.uber.org/zap"
)

// Logger writes try outcomes to a zap logger.
type Logger struct {
	log  *zap.Logger
	opts options
}

// New builds a Logger. Without options it logs to zap.NewNop().
func New(opts ...Option) *Logger {
	o := options{
		logger:       zap.NewNop(),
		successLevel: zap.DebugLevel,
		failureLevel: zap.ErrorLevel,
	}
	for _, opt := range opts {
		opt(&o)
	}

	log := o.logger
	if o.name != "" {
		log = log.Named(o.name)
	}
	return &Logger{log: log, opts: o}
}

// Log writes one entry describing t and returns t unchanged.
func Log[V any](l *Logger, msg string, t try.Try[V]) try.Try[V] {
	fields := []zap.Field{
		zap.Stringer("try_id", t.ID()),
		zap.Time("created_at", t.CreatedAt()),
	}

	v, err := t.Get()
	if err != nil {
		l.log.Log(l.opts.failureLevel, msg, append(fields, zap.Error(err))...)
		return t
	}

	l.log.Log(l.opts.successLevel, msg, append(fields, zap.Any("value", v))...)
	return t
}

// Failures returns a consumer that logs every cause it receives and never fails.
func (l *Logger) Failures(msg string) try.Consumer[error] {
	return func(cause error) error {
		l.log.Log(l.opts.failureLevel, msg, zap.Error(cause))
		return nil
	}
}
