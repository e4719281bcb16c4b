package gocube

// Option configures Controller behavior.
type Option func(*config)

type config struct {
	moveHistory bool
	queueSize   int
}

func defaultConfig() *config {
	return &config{
		moveHistory: true,
		queueSize:   64,
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), all applied moves are stored and accessible via
// History(). Disable this for long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithQueueSize sets how many moves may wait to be applied before Enqueue
// blocks. Values below 1 are ignored.
func WithQueueSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.queueSize = n
		}
	}
}
