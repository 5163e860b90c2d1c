package try

import (
	"github.com/stretchr/testify/mock"
)

// consumerMock records every value it accepts and returns the configured error.
type consumerMock[T any] struct {
	mock.Mock
}

func newConsumerMock[T any](ret error) *consumerMock[T] {
	m := &consumerMock[T]{}
	m.On("Accept", mock.Anything).Return(ret)
	return m
}

func (m *consumerMock[T]) Accept(in T) error {
	args := m.Called(in)
	return args.Error(0)
}

func (m *consumerMock[T]) accepted(i int) T {
	return m.Calls[i].Arguments.Get(0).(T)
}

type stateError struct {
	msg string
}

func (e *stateError) Error() string { return e.msg }

type ioError struct {
	msg string
}

func (e *ioError) Error() string { return e.msg }

// transient is implemented by timeoutError only.
type transient interface {
	error
	Transient() bool
}

type timeoutError struct {
	stateError
}

func (e *timeoutError) Transient() bool { return true }
