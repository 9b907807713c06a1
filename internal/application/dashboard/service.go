// Package dashboard is the page-level glue of the admin dashboard: it keeps
// one list state container per entity kind per session, forwards URL
// parameters into it and performs optimistic mutations against the kind's
// Source.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/rezkam/rentdesk/internal/domain"
	"github.com/rezkam/rentdesk/internal/urlstate"
)

const instrumentationName = "github.com/rezkam/rentdesk/internal/application/dashboard"

// Service routes dashboard operations to the right session and page.
type Service struct {
	sessions *Sessions
	registry *Registry
	tracer   trace.Tracer

	views     metric.Int64Counter
	mutations metric.Int64Counter
	duration  metric.Float64Histogram
}

// NewService creates a dashboard service over registry.
// Applies defaults for zero or invalid config values.
func NewService(registry *Registry, cfg Config) (*Service, error) {
	cfg.applyDefaults()

	meter := otel.Meter(instrumentationName)

	views, err := meter.Int64Counter(
		"rentdesk.list.views",
		metric.WithDescription("List pages rendered"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create views counter: %w", err)
	}

	mutations, err := meter.Int64Counter(
		"rentdesk.list.mutations",
		metric.WithDescription("Entity mutations applied from the dashboard"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mutations counter: %w", err)
	}

	duration, err := meter.Float64Histogram(
		"rentdesk.list.operation.duration",
		metric.WithDescription("Dashboard operation duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return &Service{
		sessions:  NewSessions(registry, cfg),
		registry:  registry,
		tracer:    otel.Tracer(instrumentationName),
		views:     views,
		mutations: mutations,
		duration:  duration,
	}, nil
}

// Kinds returns the kinds this service can show.
func (s *Service) Kinds() []domain.Kind {
	return s.registry.Kinds()
}

// Sessions exposes the session table, mainly for sweeping.
func (s *Service) Sessions() *Sessions {
	return s.sessions
}

// Show renders the list page of kind for session, synced to the query at loc.
func (s *Service) Show(ctx context.Context, session string, kind domain.Kind, loc urlstate.Location) (View, error) {
	var view View
	err := s.run(ctx, "show", kind, session, func(ctx context.Context, p Page) error {
		view = p.Show(ctx, loc)
		return nil
	})
	if err == nil {
		s.views.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", string(kind))))
	}
	return view, err
}

// Refresh reloads the list of kind for session from its source.
func (s *Service) Refresh(ctx context.Context, session string, kind domain.Kind) error {
	return s.run(ctx, "refresh", kind, session, func(ctx context.Context, p Page) error {
		return p.Refresh(ctx)
	})
}

// Create adds an entity decoded from payload.
func (s *Service) Create(ctx context.Context, session string, kind domain.Kind, payload []byte) (any, error) {
	var out any
	err := s.mutate(ctx, "create", kind, session, func(ctx context.Context, p Page) (err error) {
		out, err = p.Create(ctx, payload)
		return err
	})
	return out, err
}

// Update replaces the entity id with payload.
func (s *Service) Update(ctx context.Context, session string, kind domain.Kind, id string, payload []byte) (any, error) {
	var out any
	err := s.mutate(ctx, "update", kind, session, func(ctx context.Context, p Page) (err error) {
		out, err = p.Update(ctx, id, payload)
		return err
	})
	return out, err
}

// SetStatus changes the status of entity id.
func (s *Service) SetStatus(ctx context.Context, session string, kind domain.Kind, id, status string) (any, error) {
	var out any
	err := s.mutate(ctx, "set_status", kind, session, func(ctx context.Context, p Page) (err error) {
		out, err = p.SetStatus(ctx, id, status)
		return err
	})
	return out, err
}

// Delete removes entity id.
func (s *Service) Delete(ctx context.Context, session string, kind domain.Kind, id string) error {
	return s.mutate(ctx, "delete", kind, session, func(ctx context.Context, p Page) error {
		return p.Delete(ctx, id)
	})
}

func (s *Service) mutate(ctx context.Context, op string, kind domain.Kind, session string, fn func(context.Context, Page) error) error {
	err := s.run(ctx, op, kind, session, fn)
	s.mutations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", string(kind)),
		attribute.String("operation", op),
		attribute.Bool("success", err == nil),
	))
	return err
}

func (s *Service) run(ctx context.Context, op string, kind domain.Kind, session string, fn func(context.Context, Page) error) error {
	ctx, span := s.tracer.Start(ctx, "dashboard."+op, trace.WithAttributes(
		attribute.String("rentdesk.kind", string(kind)),
	))
	defer span.End()

	start := time.Now()
	defer func() {
		s.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
			attribute.String("kind", string(kind)),
			attribute.String("operation", op),
		))
	}()

	page, err := s.sessions.Get(session).Page(kind)
	if err == nil {
		err = fn(ctx, page)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
