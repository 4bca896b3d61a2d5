package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/hfbriefer/pkg/domain"
	"github.com/umputun/hfbriefer/pkg/scheduler/mocks"
	"github.com/umputun/hfbriefer/pkg/selector"
)

func TestNewScheduler(t *testing.T) {
	runner := &mocks.RunnerMock{}

	s := NewScheduler(Params{Runner: runner, Interval: 5 * time.Minute, RunOnStart: true})
	assert.Equal(t, 5*time.Minute, s.interval)
	assert.True(t, s.runOnStart)

	s = NewScheduler(Params{Runner: runner})
	assert.Equal(t, 24*time.Hour, s.interval, "default interval")
	assert.False(t, s.runOnStart)
}

func TestScheduler_StartStop(t *testing.T) {
	runner := &mocks.RunnerMock{
		RunFunc: func(context.Context) (*domain.Report, error) {
			return &domain.Report{ID: 1, ItemName: "org/a"}, nil
		},
	}
	s := NewScheduler(Params{Runner: runner, Interval: 50 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	time.Sleep(180 * time.Millisecond)
	s.Stop()

	calls := len(runner.RunCalls())
	assert.GreaterOrEqual(t, calls, 2)

	// no runs after stop
	time.Sleep(120 * time.Millisecond)
	assert.Len(t, runner.RunCalls(), calls)
}

func TestScheduler_RunOnStart(t *testing.T) {
	runner := &mocks.RunnerMock{
		RunFunc: func(context.Context) (*domain.Report, error) {
			return &domain.Report{ID: 1, ItemName: "org/a"}, nil
		},
	}
	s := NewScheduler(Params{Runner: runner, Interval: time.Hour, RunOnStart: true})

	s.Start(context.Background())
	require.Eventually(t, func() bool { return len(runner.RunCalls()) == 1 }, time.Second, 10*time.Millisecond)
	s.Stop()
	assert.Len(t, runner.RunCalls(), 1)
}

func TestScheduler_ErrorsDoNotStopLoop(t *testing.T) {
	var n atomic.Int32
	runner := &mocks.RunnerMock{
		RunFunc: func(context.Context) (*domain.Report, error) {
			switch n.Add(1) {
			case 1:
				return nil, fmt.Errorf("select item: %w", selector.ErrExhausted)
			case 2:
				return nil, errors.New("llm is down")
			default:
				return &domain.Report{ID: 3, ItemName: "org/c"}, nil
			}
		},
	}
	s := NewScheduler(Params{Runner: runner, Interval: 20 * time.Millisecond, RunOnStart: true})

	s.Start(context.Background())
	require.Eventually(t, func() bool { return n.Load() >= 3 }, 2*time.Second, 10*time.Millisecond)
	s.Stop()
}

func TestScheduler_RunNow(t *testing.T) {
	runner := &mocks.RunnerMock{
		RunFunc: func(context.Context) (*domain.Report, error) {
			return &domain.Report{ID: 7, ItemName: "org/x"}, nil
		},
	}
	s := NewScheduler(Params{Runner: runner})

	report, err := s.RunNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), report.ID)

	runner.RunFunc = func(context.Context) (*domain.Report, error) { return nil, selector.ErrExhausted }
	_, err = s.RunNow(context.Background())
	assert.ErrorIs(t, err, selector.ErrExhausted)
}

func TestScheduler_RunNowSerialized(t *testing.T) {
	var active, maxActive atomic.Int32
	runner := &mocks.RunnerMock{
		RunFunc: func(context.Context) (*domain.Report, error) {
			cur := active.Add(1)
			for {
				prev := maxActive.Load()
				if cur <= prev || maxActive.CompareAndSwap(prev, cur) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			active.Add(-1)
			return &domain.Report{ID: 1}, nil
		},
	}
	s := NewScheduler(Params{Runner: runner})

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.RunNow(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, runner.RunCalls(), 5)
	assert.Equal(t, int32(1), maxActive.Load(), "runs never overlap")
}
