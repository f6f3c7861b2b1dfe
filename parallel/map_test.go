package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMap(t *testing.T) {
	double := func(_ context.Context, _ int, v int) (int, error) {
		time.Sleep(time.Millisecond)
		return v * 2, nil
	}

	tests := []struct {
		name       string
		list       []int
		workers    int
		wantResult []int
	}{
		{
			name:       "empty",
			list:       nil,
			workers:    1,
			wantResult: []int{},
		},
		{
			name:       "one",
			list:       []int{1},
			workers:    1,
			wantResult: []int{2},
		},
		{
			name:       "two workers",
			list:       []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			workers:    2,
			wantResult: []int{2, 4, 6, 8, 10, 12, 14, 16, 18, 20},
		},
		{
			name:       "no limit",
			list:       []int{1, 2, 3, 4, 5},
			workers:    NoLimit,
			wantResult: []int{2, 4, 6, 8, 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotResult, err := Map(context.Background(), tt.list, double, tt.workers)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantResult, gotResult)

			goleak.VerifyNone(t)
		})
	}
}

func TestMap_Bounded(t *testing.T) {
	var inflight, peak int64
	list := make([]int, 50)

	_, err := Map(context.Background(), list, func(_ context.Context, _ int, _ int) (struct{}, error) {
		n := atomic.AddInt64(&inflight, 1)
		for {
			p := atomic.LoadInt64(&peak)
			if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		atomic.AddInt64(&inflight, -1)
		return struct{}{}, nil
	}, 3)

	assert.NoError(t, err)
	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(3))

	goleak.VerifyNone(t)
}

func TestMap_Error(t *testing.T) {
	oops := errors.New("oops")
	var started int64

	result, err := Map(context.Background(), make([]int, 100), func(ctx context.Context, i int, _ int) (int, error) {
		atomic.AddInt64(&started, 1)
		if i == 3 {
			return 0, oops
		}
		select {
		case <-ctx.Done():
		case <-time.After(10 * time.Millisecond):
		}
		return i, nil
	}, 2)

	assert.ErrorIs(t, err, oops)
	assert.Nil(t, result)
	assert.Less(t, atomic.LoadInt64(&started), int64(100), "kept starting after the error")

	goleak.VerifyNone(t)
}

func TestMap_ParentCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	firstRunning := make(chan struct{})

	go func() {
		<-firstRunning
		cancel()
	}()

	result, err := Map(ctx, make([]int, 100), func(ctx context.Context, i int, _ int) (int, error) {
		if i == 0 {
			close(firstRunning)
		}
		<-ctx.Done()
		return i, nil
	}, 1)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)

	goleak.VerifyNone(t)
}
