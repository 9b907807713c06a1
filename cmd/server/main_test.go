package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezkam/rentdesk/internal/application/dashboard"
	"github.com/rezkam/rentdesk/internal/config"
	"github.com/rezkam/rentdesk/internal/domain"
	"github.com/rezkam/rentdesk/internal/urlstate"
)

func TestNewRegistry_RegistersEveryKind(t *testing.T) {
	r := newRegistry(sources{kind: config.SourceMemory, seed: true, now: time.Now()})

	assert.ElementsMatch(t, domain.Kinds(), r.Kinds())
}

func TestNewRegistry_Seed(t *testing.T) {
	for _, seed := range []bool{true, false} {
		svc, err := dashboard.NewService(newRegistry(sources{kind: config.SourceMemory, seed: seed, now: time.Now()}), dashboard.Config{})
		require.NoError(t, err)
		loc, err := urlstate.NewMemoryLocation("/api/cars")
		require.NoError(t, err)

		view, err := svc.Show(context.Background(), "s", domain.KindCars, loc)
		require.NoError(t, err)

		if seed {
			assert.Equal(t, 36, view.Pagination.Total)
		} else {
			assert.Zero(t, view.Pagination.Total)
		}
	}
}

func TestMaskPassword(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "postgres://app:secret@db:5432/rentdesk", want: "postgres://app:xxxxxx@db:5432/rentdesk"},
		{in: "postgres://db:5432/rentdesk", want: "postgres://db:5432/rentdesk"},
		{in: "postgres://app:secret@db:%zz", want: "[REDACTED]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, maskPassword(tt.in))
	}
}
