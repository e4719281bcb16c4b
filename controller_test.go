package gocube

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startController(t *testing.T, ctrl *Controller) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		errc <- ctrl.Run(ctx)
	}()
	t.Cleanup(cancel)
	return cancel, errc
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for controller")
	}
}

func TestControllerAppliesMovesInOrder(t *testing.T) {
	ctrl := NewController()

	var mu sync.Mutex
	var seen []Move
	done := make(chan struct{})
	ctrl.OnMove(func(m Move, p Perm) {
		mu.Lock()
		seen = append(seen, m)
		n := len(seen)
		mu.Unlock()
		if n == len(TPerm) {
			close(done)
		}
	})

	startController(t, ctrl)
	require.NoError(t, ctrl.Enqueue(context.Background(), TPerm...))
	waitFor(t, done)

	mu.Lock()
	assert.Equal(t, TPerm, seen)
	mu.Unlock()
	assert.Equal(t, ComposeMoves(TPerm), ctrl.Permutation())
	assert.Equal(t, TPerm, ctrl.History())
}

func TestControllerCallbackSeesState(t *testing.T) {
	ctrl := NewController()
	states := make(chan Perm, 4)
	ctrl.OnMove(func(_ Move, p Perm) {
		states <- p
	})
	startController(t, ctrl)

	require.NoError(t, ctrl.Enqueue(context.Background(), R, U))
	first := <-states
	second := <-states
	assert.Equal(t, R.Perm(), first)
	assert.Equal(t, ComposeMoves([]Move{R, U}), second)
}

func TestControllerReset(t *testing.T) {
	ctrl := NewController()
	moved := make(chan struct{}, 8)
	reset := make(chan struct{})
	ctrl.OnMove(func(Move, Perm) { moved <- struct{}{} })
	ctrl.OnReset(func() { close(reset) })
	startController(t, ctrl)

	ctx := context.Background()
	require.NoError(t, ctrl.Enqueue(ctx, SexyMove...))
	require.NoError(t, ctrl.Reset(ctx))
	waitFor(t, reset)

	assert.True(t, ctrl.Permutation().IsIdentity())
	assert.Empty(t, ctrl.History())
	assert.Len(t, moved, len(SexyMove))
}

func TestControllerWithoutHistory(t *testing.T) {
	ctrl := NewController(WithMoveHistory(false), WithQueueSize(1))
	done := make(chan struct{})
	ctrl.OnMove(func(m Move, _ Perm) {
		if m == UPrime {
			close(done)
		}
	})
	startController(t, ctrl)

	require.NoError(t, ctrl.Enqueue(context.Background(), SexyMove...))
	waitFor(t, done)

	assert.Empty(t, ctrl.History())
	assert.True(t, Power(ctrl.Permutation(), 6).IsIdentity())
}

func TestControllerCloseDrainsQueue(t *testing.T) {
	ctrl := NewController(WithQueueSize(16))
	require.NoError(t, ctrl.Enqueue(context.Background(), R, R, R))

	ctrl.Close()
	err := ctrl.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RPrime.Perm(), ctrl.Permutation())

	assert.ErrorIs(t, ctrl.Enqueue(context.Background(), U), ErrControllerClosed)
	assert.ErrorIs(t, ctrl.Reset(context.Background()), ErrControllerClosed)
	assert.NotPanics(t, ctrl.Close)
}

func TestControllerRunStopsOnCancel(t *testing.T) {
	ctrl := NewController()
	cancel, errc := startController(t, ctrl)
	cancel()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestControllerEnqueueRespectsContext(t *testing.T) {
	ctrl := NewController(WithQueueSize(1))
	require.NoError(t, ctrl.Enqueue(context.Background(), R))

	// Nothing is draining the queue, so the next send blocks until ctx ends.
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := ctrl.Enqueue(ctx, U)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestControllerConcurrentReaders(t *testing.T) {
	ctrl := NewController()
	done := make(chan struct{})
	count := 0
	ctrl.OnMove(func(Move, Perm) {
		count++
		if count == 48 {
			close(done)
		}
	})
	startController(t, ctrl)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.NoError(t, ctrl.Permutation().Validate())
			}
		}()
	}

	for i := 0; i < 12; i++ {
		require.NoError(t, ctrl.Enqueue(context.Background(), SexyMove...))
	}
	waitFor(t, done)
	wg.Wait()

	assert.True(t, ctrl.Permutation().IsIdentity(), "sexy move has order 6")
	assert.Len(t, ctrl.History(), 48)
}

func TestControllerRejectsAfterRunCancelled(t *testing.T) {
	ctrl := NewController()
	cancel, errc := startController(t, ctrl)
	cancel()
	require.ErrorIs(t, <-errc, context.Canceled)

	assert.ErrorIs(t, ctrl.Enqueue(context.Background(), R), ErrControllerClosed)
	assert.ErrorIs(t, ctrl.Reset(context.Background()), ErrControllerClosed)
	assert.True(t, ctrl.Permutation().IsIdentity())
	assert.Empty(t, ctrl.History())

	assert.ErrorIs(t, ctrl.Run(context.Background()), ErrControllerClosed)
}

func TestControllerCancelAppliesAcceptedMoves(t *testing.T) {
	ctrl := NewController(WithQueueSize(8))
	require.NoError(t, ctrl.Enqueue(context.Background(), R, U))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, ctrl.Run(ctx), context.Canceled)

	assert.Equal(t, ComposeMoves([]Move{R, U}), ctrl.Permutation())
	assert.Equal(t, []Move{R, U}, ctrl.History())
}

func TestControllerAcceptedMovesSurviveClose(t *testing.T) {
	ctrl := NewController(WithQueueSize(4))
	_, errc := startController(t, ctrl)

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if ctrl.Enqueue(context.Background(), R) != nil {
					return
				}
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}

	time.Sleep(5 * time.Millisecond)
	ctrl.Close()
	wg.Wait()
	require.NoError(t, <-errc)

	assert.Len(t, ctrl.History(), accepted)
	assert.Equal(t, Power(R.Perm(), accepted), ctrl.Permutation())
}

func TestControllerRejectsInvalidMoves(t *testing.T) {
	tests := []struct {
		name string
		move Move
	}{
		{"unknown turn", Move{Face: FaceR, Turn: 3}},
		{"zero turn", Move{Face: FaceU}},
		{"unknown face", Move{Face: NumFaces, Turn: CW}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewController(WithQueueSize(8))
			err := ctrl.Enqueue(context.Background(), R, tt.move)
			assert.ErrorIs(t, err, ErrInvalidNotation)

			// Nothing from the batch was queued.
			ctrl.Close()
			require.NoError(t, ctrl.Run(context.Background()))
			assert.True(t, ctrl.Permutation().IsIdentity())
			assert.Empty(t, ctrl.History())
		})
	}
}
