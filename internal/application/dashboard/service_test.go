package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezkam/rentdesk/internal/catalog"
	"github.com/rezkam/rentdesk/internal/domain"
	"github.com/rezkam/rentdesk/internal/infrastructure/persistence/memory"
)

func newService(t *testing.T, cfg Config) *Service {
	t.Helper()
	r := NewRegistry()
	Register(r, catalog.Cars(), memory.NewCollection(func(c domain.Car) string { return c.ID }, cars(25, 12)...))
	Register(r, catalog.Leads(), memory.NewCollection(func(l domain.Lead) string { return l.ID }))
	svc, err := NewService(r, cfg)
	require.NoError(t, err)
	return svc
}

func TestService_Kinds(t *testing.T) {
	svc := newService(t, Config{})

	assert.Equal(t, []domain.Kind{domain.KindCars, domain.KindLeads}, svc.Kinds())
}

func TestService_UnknownKind(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, Config{})

	_, err := svc.Show(ctx, "s1", domain.KindFAQs, location(t, "/api/faqs"))
	assert.ErrorIs(t, err, domain.ErrUnknownKind)

	err = svc.Delete(ctx, "s1", domain.KindFAQs, "x")
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}

func TestService_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, Config{})

	a, err := svc.Show(ctx, "alice", domain.KindCars, location(t, "/api/cars?status=available"))
	require.NoError(t, err)
	b, err := svc.Show(ctx, "bob", domain.KindCars, location(t, "/api/cars?page=3"))
	require.NoError(t, err)

	assert.Equal(t, 12, a.Pagination.Total)
	assert.Equal(t, 25, b.Pagination.Total)
	assert.Equal(t, 3, b.Pagination.Page)
	assert.Equal(t, 2, svc.Sessions().Len())
}

func TestService_MutationsShareTheSource(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, Config{})

	_, err := svc.Show(ctx, "alice", domain.KindLeads, location(t, "/api/leads"))
	require.NoError(t, err)
	out, err := svc.Create(ctx, "alice", domain.KindLeads, []byte(`{"name":"Grace","email":"grace@example.com"}`))
	require.NoError(t, err)
	lead := out.(domain.Lead)
	assert.Equal(t, domain.LeadNew, lead.Status)

	_, err = svc.SetStatus(ctx, "alice", domain.KindLeads, lead.ID, domain.LeadQualified)
	require.NoError(t, err)

	// A session opened later loads what the first one wrote.
	v, err := svc.Show(ctx, "bob", domain.KindLeads, location(t, "/api/leads?status=qualified"))
	require.NoError(t, err)
	got := v.Items.([]domain.Lead)
	require.Len(t, got, 1)
	assert.Equal(t, lead.ID, got[0].ID)

	require.NoError(t, svc.Delete(ctx, "bob", domain.KindLeads, lead.ID))
	require.NoError(t, svc.Refresh(ctx, "alice", domain.KindLeads))
	v, err = svc.Show(ctx, "alice", domain.KindLeads, location(t, "/api/leads"))
	require.NoError(t, err)
	assert.Zero(t, v.Pagination.Total)
}

func TestService_CustomPageSizes(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, Config{DefaultPageSize: 5, PageSizes: []int{25, 0, 25}})

	v, err := svc.Show(ctx, "s1", domain.KindCars, location(t, "/api/cars"))
	require.NoError(t, err)

	assert.Equal(t, 5, v.Pagination.Limit)
	assert.Equal(t, 5, v.Pagination.TotalPages)
	assert.Equal(t, []int{5, 25}, v.PageSizes)
}

func TestSessions_Sweep(t *testing.T) {
	cfg := Config{SessionTTL: time.Minute}
	cfg.applyDefaults()
	s := NewSessions(NewRegistry(), cfg)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	s.Get("old")
	now = now.Add(45 * time.Second)
	s.Get("fresh")
	now = now.Add(30 * time.Second)

	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())

	// Using a session keeps it alive.
	now = now.Add(50 * time.Second)
	s.Get("fresh")
	now = now.Add(50 * time.Second)
	assert.Zero(t, s.Sweep())
}

func TestWorkspace_ReusesPages(t *testing.T) {
	r := NewRegistry()
	Register(r, catalog.Cars(), memory.NewCollection(func(c domain.Car) string { return c.ID }))
	cfg := Config{}
	cfg.applyDefaults()
	w := NewSessions(r, cfg).Get("s1")

	p1, err := w.Page(domain.KindCars)
	require.NoError(t, err)
	p2, err := w.Page(domain.KindCars)
	require.NoError(t, err)

	assert.Same(t, p1, p2)
	assert.Equal(t, domain.KindCars, p1.Kind())
}

func TestConfig_ApplyDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "zero",
			want: Config{DefaultPageSize: 10, PageSizes: []int{10, 20, 50}, SessionTTL: DefaultSessionTTL},
		},
		{
			name: "default joins the menu",
			in:   Config{DefaultPageSize: 15, PageSizes: []int{50, 20}, SessionTTL: time.Hour},
			want: Config{DefaultPageSize: 15, PageSizes: []int{15, 20, 50}, SessionTTL: time.Hour},
		},
		{
			name: "invalid sizes dropped",
			in:   Config{PageSizes: []int{-1, 0}},
			want: Config{DefaultPageSize: 10, PageSizes: []int{10, 20, 50}, SessionTTL: DefaultSessionTTL},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.in
			cfg.applyDefaults()
			assert.Equal(t, tt.want, cfg)
		})
	}
}
