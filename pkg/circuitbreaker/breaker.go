package circuitbreaker

import (
	"errors"
	"sync"
	"time"

	"github.com/tair/bikeshop/pkg/logger"
)

// ErrOpen is returned by Call while the breaker rejects calls.
var ErrOpen = errors.New("circuit breaker is open")

// State represents the state of a circuit breaker
type State string

const (
	StateClosed   State = "closed"    // Normal operation
	StateOpen     State = "open"      // Rejecting calls
	StateHalfOpen State = "half-open" // Probing whether the dependency recovered
)

// Config controls when the breaker trips and recovers
type Config struct {
	// MaxFailures consecutive failures open the breaker.
	MaxFailures int
	// OpenTimeout is how long the breaker stays open before probing.
	OpenTimeout time.Duration
	// HalfOpenSuccesses successful probes close the breaker again.
	HalfOpenSuccesses int
}

// DefaultConfig returns the breaker settings used for optional dependencies
func DefaultConfig() Config {
	return Config{MaxFailures: 5, OpenTimeout: 30 * time.Second, HalfOpenSuccesses: 3}
}

// Breaker implements the circuit breaker pattern around calls to one dependency
type Breaker struct {
	name string
	cfg  Config
	now  func() time.Time

	mu              sync.Mutex
	state           State
	failures        int
	successCount    int
	lastStateChange time.Time
}

// New creates a closed breaker
func New(name string, cfg Config) *Breaker {
	if cfg.MaxFailures <= 0 {
		cfg.MaxFailures = 1
	}
	if cfg.HalfOpenSuccesses <= 0 {
		cfg.HalfOpenSuccesses = 1
	}
	b := &Breaker{name: name, cfg: cfg, now: time.Now, state: StateClosed}
	b.lastStateChange = b.now()
	return b
}

// Call runs fn unless the breaker is open, and records its outcome.
func (b *Breaker) Call(fn func() error) error {
	if !b.allow() {
		return ErrOpen
	}

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.onFailure()
	} else {
		b.onSuccess()
	}
	return err
}

// State returns the current state
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen && b.now().Sub(b.lastStateChange) >= b.cfg.OpenTimeout {
		b.setState(StateHalfOpen)
		b.successCount = 0
		logger.Logger.Info().Str("circuit", b.name).Msg("Circuit breaker transitioning to half-open")
	}
	return b.state != StateOpen
}

func (b *Breaker) onFailure() {
	b.failures++

	switch {
	case b.state == StateHalfOpen:
		b.setState(StateOpen)
		logger.Logger.Warn().Str("circuit", b.name).Msg("Circuit breaker reopened after half-open failure")
	case b.state == StateClosed && b.failures >= b.cfg.MaxFailures:
		b.setState(StateOpen)
		logger.Logger.Error().
			Str("circuit", b.name).
			Int("failures", b.failures).
			Int("threshold", b.cfg.MaxFailures).
			Msg("Circuit breaker opened")
	}
}

func (b *Breaker) onSuccess() {
	switch b.state {
	case StateHalfOpen:
		b.successCount++
		if b.successCount >= b.cfg.HalfOpenSuccesses {
			b.setState(StateClosed)
			b.failures = 0
			b.successCount = 0
			logger.Logger.Info().Str("circuit", b.name).Msg("Circuit breaker closed after successful recovery")
		}
	case StateClosed:
		b.failures = 0
	}
}

func (b *Breaker) setState(s State) {
	b.state = s
	b.lastStateChange = b.now()
}
