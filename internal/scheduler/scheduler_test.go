package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/usecase/send_reminders"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

type countingRunner struct {
	calls atomic.Int32
	err   error
	block chan struct{}
}

func (r *countingRunner) Execute(ctx context.Context) (*send_reminders.Result, error) {
	r.calls.Add(1)
	if r.block != nil {
		<-r.block
	}
	if r.err != nil {
		return nil, r.err
	}
	return &send_reminders.Result{Checked: 3, Sent: 1}, nil
}

func TestRunOnce(t *testing.T) {
	runner := &countingRunner{}
	s := New("0 * * * *", time.UTC, time.Minute, runner, logger.NewNop())

	s.RunOnce()
	assert.Equal(t, int32(1), runner.calls.Load())
}

func TestRunOnce_ErrorIsLogged(t *testing.T) {
	runner := &countingRunner{err: errors.New("db down")}
	s := New("0 * * * *", time.UTC, 0, runner, logger.NewNop())

	assert.NotPanics(t, s.RunOnce)
	assert.Equal(t, int32(1), runner.calls.Load())
}

func TestRunOnce_SkipsOverlappingRun(t *testing.T) {
	runner := &countingRunner{block: make(chan struct{})}
	s := New("0 * * * *", time.UTC, 0, runner, logger.NewNop())

	done := make(chan struct{})
	go func() {
		s.RunOnce()
		close(done)
	}()

	require.Eventually(t, func() bool { return runner.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	s.RunOnce()
	assert.Equal(t, int32(1), runner.calls.Load())

	close(runner.block)
	<-done
}

func TestStart_InvalidSpec(t *testing.T) {
	s := New("every hour", time.UTC, 0, &countingRunner{}, logger.NewNop())

	err := s.Start()
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	s := New("0 * * * *", time.UTC, 0, &countingRunner{}, logger.NewNop())

	require.NoError(t, s.Start())
	s.Stop()
}
