// Package bebop wires the registries of a site into a single Kit. A plugin
// creates one Kit at boot and passes it to the components that need it.
package bebop

import (
	"fmt"
	"maps"
	"slices"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fyrsmithlabs/bebop/internal/config"
	"github.com/fyrsmithlabs/bebop/internal/logging"
	"github.com/fyrsmithlabs/bebop/pkg/env"
	"github.com/fyrsmithlabs/bebop/pkg/events"
	"github.com/fyrsmithlabs/bebop/pkg/feature"
	"github.com/fyrsmithlabs/bebop/pkg/locations"
	"github.com/fyrsmithlabs/bebop/pkg/site"
	"github.com/fyrsmithlabs/bebop/pkg/tracker"
	"github.com/fyrsmithlabs/bebop/pkg/wpcontext"
)

// Kit holds one instance of every registry.
type Kit struct {
	Site     site.Site
	Paths    *locations.Registry
	URLs     *locations.Registry
	Envs     *env.Manager
	Features *feature.Manager
	Objects  *tracker.Tracker
	Events   *events.Emitter
	Contexts *wpcontext.Manager

	logger *logging.Logger
}

type options struct {
	logger   *logging.Logger
	registry prometheus.Registerer
	probe    env.Probe
}

// Option configures New.
type Option func(*options)

// WithLogger sets the logger handed to the event bus and context manager.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics registers event bus metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) { o.registry = reg }
}

// WithProbe overrides how the current environment is detected. By default
// the site's server name and the APP_ENV variable are used.
func WithProbe(p env.Probe) Option {
	return func(o *options) { o.probe = p }
}

// New builds a Kit for s.
func New(s site.Site, opts ...Option) (*Kit, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	o := options{logger: logging.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.Nop()
	}
	if o.probe == nil {
		o.probe = env.OSProbe(s)
	}

	eventOpts := []events.Option{events.WithLogger(o.logger.Named("events"))}
	if o.registry != nil {
		eventOpts = append(eventOpts, events.WithMetrics(o.registry))
	}

	return &Kit{
		Site:     s,
		Paths:    locations.NewPaths(s),
		URLs:     locations.NewURLs(s),
		Envs:     env.NewManager(o.probe),
		Features: feature.NewManager(),
		Objects:  tracker.New(),
		Events:   events.NewEmitter(eventOpts...),
		Contexts: wpcontext.New(wpcontext.WithLogger(o.logger.Named("context"))),
		logger:   o.logger,
	}, nil
}

// FromConfig builds a Kit for cfg.Site and applies the environments,
// features and extra locations cfg declares.
func FromConfig(cfg *config.Config, opts ...Option) (*Kit, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	k, err := New(cfg.Site, opts...)
	if err != nil {
		return nil, err
	}

	for _, key := range slices.Sorted(maps.Keys(cfg.Environments)) {
		k.Envs.Add(key).Get(key).AddHosts(cfg.Environments[key].Hosts...)
	}
	for _, id := range slices.Sorted(maps.Keys(cfg.Features)) {
		fc := cfg.Features[id]
		f, err := k.Features.Define(id, fc.Options)
		if err != nil {
			return nil, fmt.Errorf("feature %q: %w", id, err)
		}
		if fc.Enabled {
			f.Enable()
		}
	}
	k.Paths.SetAll(cfg.Paths)
	k.URLs.SetAll(cfg.URLs)
	return k, nil
}

// Logger returns the logger the Kit was built with.
func (k *Kit) Logger() *logging.Logger {
	return k.logger
}
