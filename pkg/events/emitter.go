// Package events provides a synchronous publish/subscribe bus keyed by
// channel name.
package events

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/bebop/internal/logging"
)

var (
	// ErrNilHandler is returned by Subscribe for a nil handler.
	ErrNilHandler = errors.New("events: nil handler")

	// ErrNilMessage is returned by Publish for a nil message.
	ErrNilMessage = errors.New("events: nil message")
)

// Handler receives published messages.
type Handler func(ctx context.Context, msg *Message) error

// Option configures an Emitter.
type Option func(*Emitter)

// WithLogger sets the logger used for delivery diagnostics.
func WithLogger(l *logging.Logger) Option {
	return func(e *Emitter) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMetrics registers publish and failure counters with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(e *Emitter) {
		if reg != nil {
			e.metrics = NewMetrics(reg)
		}
	}
}

// Emitter dispatches messages to the handlers subscribed to a channel.
// Handlers run synchronously in subscription order.
type Emitter struct {
	mu       sync.RWMutex
	channels map[string][]Handler
	order    []string
	logger   *logging.Logger
	metrics  *Metrics
}

func NewEmitter(opts ...Option) *Emitter {
	e := &Emitter{
		channels: make(map[string][]Handler),
		logger:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Subscribe appends h to the handlers of channel. The same handler may be
// subscribed more than once and is then called once per subscription.
func (e *Emitter) Subscribe(channel string, h Handler) error {
	if h == nil {
		return fmt.Errorf("subscribe %q: %w", channel, ErrNilHandler)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.channels[channel]; !ok {
		e.order = append(e.order, channel)
	}
	e.channels[channel] = append(e.channels[channel], h)
	return nil
}

// Publish delivers msg to every handler of channel. A failing handler does
// not stop delivery; all handler errors are joined into the result.
// Publishing to a channel without subscribers is a no-op.
func (e *Emitter) Publish(ctx context.Context, channel string, msg *Message) error {
	if msg == nil {
		return fmt.Errorf("publish %q: %w", channel, ErrNilMessage)
	}
	handlers := e.Subscribers(channel)

	if e.metrics != nil {
		e.metrics.Published.WithLabelValues(channel).Inc()
	}
	e.logger.Trace(ctx, "publishing message",
		zap.String("channel", channel),
		zap.String("action", msg.Action()),
		zap.Int("subscribers", len(handlers)))

	var errs []error
	for i, h := range handlers {
		if e.metrics != nil {
			e.metrics.Deliveries.WithLabelValues(channel).Inc()
		}
		if err := h(ctx, msg); err != nil {
			if e.metrics != nil {
				e.metrics.HandlerFailures.WithLabelValues(channel).Inc()
			}
			e.logger.Warn(ctx, "event handler failed",
				zap.String("channel", channel),
				zap.String("action", msg.Action()),
				zap.Int("handler", i),
				zap.Error(err))
			errs = append(errs, fmt.Errorf("channel %q handler %d: %w", channel, i, err))
		}
	}
	return errors.Join(errs...)
}

// Channels returns a copy of the subscription table.
func (e *Emitter) Channels() map[string][]Handler {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make(map[string][]Handler, len(e.channels))
	for ch, hs := range e.channels {
		out[ch] = slices.Clone(hs)
	}
	return out
}

// ChannelNames returns the channel names in first-subscription order.
func (e *Emitter) ChannelNames() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.order)
}

// Subscribers returns the handlers of channel.
func (e *Emitter) Subscribers(channel string) []Handler {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.channels[channel])
}

// Consumer is embedded by types that publish through an emitter.
type Consumer struct {
	emitter *Emitter
}

func (c *Consumer) SetEmitter(e *Emitter) {
	c.emitter = e
}

func (c *Consumer) Emitter() *Emitter {
	return c.emitter
}
