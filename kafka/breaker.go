package kafka

import (
	"context"

	"github.com/tair/bikeshop/pkg/circuitbreaker"
)

// BreakerPublisher drops events without contacting the brokers while its
// circuit breaker is open.
type BreakerPublisher struct {
	next    EventPublisher
	breaker *circuitbreaker.Breaker
}

// NewBreakerPublisher wraps next
func NewBreakerPublisher(next EventPublisher, breaker *circuitbreaker.Breaker) *BreakerPublisher {
	return &BreakerPublisher{next: next, breaker: breaker}
}

func (p *BreakerPublisher) Publish(ctx context.Context, event InventoryEvent) error {
	return p.breaker.Call(func() error {
		return p.next.Publish(ctx, event)
	})
}

func (p *BreakerPublisher) Close() error {
	return p.next.Close()
}
