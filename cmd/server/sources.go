package main

import (
	"time"

	"github.com/rezkam/rentdesk/internal/application/dashboard"
	"github.com/rezkam/rentdesk/internal/catalog"
	"github.com/rezkam/rentdesk/internal/config"
	"github.com/rezkam/rentdesk/internal/infrastructure/persistence/memory"
	"github.com/rezkam/rentdesk/internal/infrastructure/persistence/postgres"
	"github.com/rezkam/rentdesk/internal/infrastructure/upstream"
)

// sources holds what is needed to build a Source for any kind.
type sources struct {
	kind   string
	seed   bool
	now    time.Time
	store  *postgres.Store
	client *upstream.Client
}

// newRegistry binds every catalog entry to the configured source.
func newRegistry(src sources) *dashboard.Registry {
	r := dashboard.NewRegistry()
	register(r, src, catalog.Cars(), demoCars)
	register(r, src, catalog.Agencies(), demoAgencies)
	register(r, src, catalog.Clients(), nil)
	register(r, src, catalog.Customers(), demoCustomers)
	register(r, src, catalog.Products(), nil)
	register(r, src, catalog.Categories(), nil)
	register(r, src, catalog.FAQs(), demoFAQs)
	register(r, src, catalog.Leads(), demoLeads)
	register(r, src, catalog.TradePersons(), nil)
	register(r, src, catalog.Transactions(), demoTransactions)
	register(r, src, catalog.Users(), nil)
	register(r, src, catalog.ServiceQuestions(), nil)
	return r
}

// register binds entry to a source. demo, when set, builds the seed data
// for the in-memory source.
func register[T any](r *dashboard.Registry, src sources, entry catalog.Entry[T], demo func(time.Time) []T) {
	switch src.kind {
	case config.SourcePostgres:
		dashboard.Register(r, entry, postgres.NewCollection(src.store, entry.Kind, entry.Record))
	case config.SourceREST:
		dashboard.Register(r, entry, upstream.NewResource(src.client, entry.Kind, entry.Schema.ID))
	default:
		var items []T
		if src.seed && demo != nil {
			items = demo(src.now)
		}
		dashboard.Register(r, entry, memory.NewCollection(entry.Schema.ID, items...))
	}
}
