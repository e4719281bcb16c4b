package gocube

import (
	"context"
	"fmt"
	"sync"
)

// command is one unit of work for the controller's writer loop.
type command struct {
	move  Move
	reset bool
}

// Controller owns a Cube and is its only writer. Moves from any goroutine are
// queued with Enqueue and applied in order by Run; readers take snapshots
// with Permutation at any time.
//
//	ctrl := gocube.NewController()
//	ctrl.OnMove(func(m gocube.Move, p gocube.Perm) {
//	    fmt.Println(m, gocube.Order(p))
//	})
//	go ctrl.Run(ctx)
//	ctrl.Enqueue(ctx, gocube.SexyMove...)
type Controller struct {
	cube      *Cube
	queue     chan command
	done      chan struct{} // closed by Close
	stopped   chan struct{} // closed when Run returns
	closeOnce sync.Once
	stopOnce  sync.Once
	sendMu    sync.RWMutex // held shared by senders, exclusively by Run on exit
	config    *config

	mu       sync.RWMutex
	snapshot Perm
	history  []Move
	onMove   func(Move, Perm)
	onReset  func()
}

// NewController creates a controller holding a solved cube.
func NewController(opts ...Option) *Controller {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Controller{
		cube:     NewCube(),
		queue:    make(chan command, cfg.queueSize),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
		config:   cfg,
		snapshot: Identity(),
	}
}

// OnMove sets a callback invoked from the Run goroutine after each move is
// applied, with the move and the resulting state.
func (c *Controller) OnMove(cb func(Move, Perm)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onMove = cb
}

// OnReset sets a callback invoked from the Run goroutine after a reset.
func (c *Controller) OnReset(cb func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onReset = cb
}

// Enqueue queues moves to be applied in order. It blocks while the queue is
// full and returns early if ctx is cancelled or the controller is closed or
// stopped. Every move is checked before any is queued; a move with an
// unknown face or turn fails with ErrInvalidNotation.
//
// A nil error means the move will be applied before Run returns.
func (c *Controller) Enqueue(ctx context.Context, moves ...Move) error {
	for i, m := range moves {
		if !m.Valid() {
			return fmt.Errorf("%w: face %d turn %d at position %d", ErrInvalidNotation, m.Face, m.Turn, i)
		}
	}
	for _, m := range moves {
		if err := c.send(ctx, command{move: m}); err != nil {
			return err
		}
	}
	return nil
}

// Reset queues a return to the solved state behind any pending moves.
func (c *Controller) Reset(ctx context.Context) error {
	return c.send(ctx, command{reset: true})
}

func (c *Controller) send(ctx context.Context, cmd command) error {
	c.sendMu.RLock()
	defer c.sendMu.RUnlock()

	select {
	case <-c.done:
		return ErrControllerClosed
	case <-c.stopped:
		return ErrControllerClosed
	default:
	}

	select {
	case c.queue <- cmd:
		return nil
	case <-c.done:
		return ErrControllerClosed
	case <-c.stopped:
		return ErrControllerClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run applies queued commands until ctx is cancelled or Close is called.
// On either exit it stops accepting commands and applies those already
// accepted, so no successful Enqueue is lost. Run returns nil after Close,
// ctx.Err() after cancellation, and ErrControllerClosed if it already ran.
func (c *Controller) Run(ctx context.Context) error {
	select {
	case <-c.stopped:
		return ErrControllerClosed
	default:
	}

	log := Logger()
	log.Info("controller started", "queue_size", c.config.queueSize)
	defer log.Info("controller stopped")
	defer c.stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.done:
			return nil
		case cmd := <-c.queue:
			c.handle(cmd)
		}
	}
}

// stop refuses new commands, waits out sends already in flight and applies
// whatever they queued.
func (c *Controller) stop() {
	c.stopOnce.Do(func() {
		close(c.stopped)
	})
	c.sendMu.Lock()
	c.sendMu.Unlock() // every sender that raced stopped has returned
	c.drain()
}

func (c *Controller) drain() {
	for {
		select {
		case cmd := <-c.queue:
			c.handle(cmd)
		default:
			return
		}
	}
}

func (c *Controller) handle(cmd command) {
	if cmd.reset {
		c.cube.Reset()
		c.mu.Lock()
		c.snapshot = c.cube.Permutation()
		c.history = nil
		cb := c.onReset
		c.mu.Unlock()

		Logger().Debug("cube reset")
		if cb != nil {
			cb()
		}
		return
	}

	c.cube.ApplyMove(cmd.move)
	state := c.cube.Permutation()

	c.mu.Lock()
	c.snapshot = state
	if c.config.moveHistory {
		c.history = append(c.history, cmd.move)
	}
	cb := c.onMove
	c.mu.Unlock()

	Logger().Debug("move applied", "move", cmd.move.Notation(), "moved", MovedCount(state))
	if cb != nil {
		cb(cmd.move, state)
	}
}

// Permutation returns the most recently published state.
func (c *Controller) Permutation() Perm {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

// History returns a copy of the moves applied since the last reset.
// It is empty when history is disabled.
func (c *Controller) History() []Move {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Move, len(c.history))
	copy(out, c.history)
	return out
}

// Close stops accepting moves. It is safe to call more than once.
func (c *Controller) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}
