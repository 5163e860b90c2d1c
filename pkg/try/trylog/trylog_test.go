package trylog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ib-77/try/pkg/try"
)

func newObserved(opts ...Option) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return New(append([]Option{WithLogger(zap.New(core))}, opts...)...), logs
}

func TestLog_Success(t *testing.T) {
	t.Parallel()

	l, logs := newObserved()
	in := try.Success("parsed")

	out := Log(l, "step done", in)

	assert.Equal(t, in, out)
	require.Equal(t, 1, logs.Len())

	entry := logs.All()[0]
	assert.Equal(t, "step done", entry.Message)
	assert.Equal(t, zapcore.DebugLevel, entry.Level)

	fields := entry.ContextMap()
	assert.Equal(t, "parsed", fields["value"])
	assert.Equal(t, in.ID().String(), fields["try_id"])
	assert.NotContains(t, fields, "error")
}

func TestLog_Failure(t *testing.T) {
	t.Parallel()

	l, logs := newObserved()
	in := try.Failure[int](errors.New("boom"))

	out := Log(l, "step failed", in)

	assert.Same(t, in.Cause(), out.Cause())
	require.Equal(t, 1, logs.Len())

	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "boom", entry.ContextMap()["error"])
	assert.NotContains(t, entry.ContextMap(), "value")
}

func TestLog_Levels(t *testing.T) {
	t.Parallel()

	l, logs := newObserved(WithSuccessLevel(zapcore.InfoLevel), WithFailureLevel(zapcore.WarnLevel))

	Log(l, "ok", try.Success(1))
	Log(l, "bad", try.Failure[int](errors.New("x")))

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, zapcore.InfoLevel, logs.All()[0].Level)
	assert.Equal(t, zapcore.WarnLevel, logs.All()[1].Level)
}

func TestWithName(t *testing.T) {
	t.Parallel()

	l, logs := newObserved(WithName("parser"))
	Log(l, "ok", try.Success(1))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "parser", logs.All()[0].LoggerName)
}

func TestFailures_WithOnAnyFailure(t *testing.T) {
	t.Parallel()

	l, logs := newObserved()

	require.NoError(t, try.Success(1).OnAnyFailure(l.Failures("unexpected")))
	assert.Equal(t, 0, logs.Len())

	require.NoError(t, try.Failure[int](errors.New("lost")).OnAnyFailure(l.Failures("unexpected")))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "unexpected", logs.All()[0].Message)
	assert.Equal(t, "lost", logs.All()[0].ContextMap()["error"])
}

func TestFailures_WithOnFailureIn(t *testing.T) {
	t.Parallel()

	l, logs := newObserved()
	res := try.Map(try.Success(1), func(int) (int, error) { panic("bad input") })

	require.NoError(t, try.OnFailureIn(res, &try.ErrPanic, l.Failures("recovered panic")))
	require.Equal(t, 1, logs.FilterMessage("recovered panic").Len())
}

func TestNew_DefaultIsNop(t *testing.T) {
	t.Parallel()

	l := New()
	assert.NotPanics(t, func() {
		Log(l, "nothing", try.Success(1))
	})
}
