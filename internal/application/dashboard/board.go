package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rezkam/rentdesk/internal/catalog"
	"github.com/rezkam/rentdesk/internal/domain"
	"github.com/rezkam/rentdesk/internal/liststate"
	"github.com/rezkam/rentdesk/internal/urlstate"
)

// URL parameter names shared by every list page.
const (
	ParamPage  = "page"
	ParamLimit = "limit"
	ParamSort  = "sort"
	ParamOrder = "order"
)

// Page is one entity list as seen by a single session.
type Page interface {
	Kind() domain.Kind
	// Show syncs the list state with the query at loc and returns the
	// current page. Fetch failures are reported in View.Error.
	Show(ctx context.Context, loc urlstate.Location) View
	Refresh(ctx context.Context) error
	Create(ctx context.Context, payload []byte) (any, error)
	Update(ctx context.Context, id string, payload []byte) (any, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id, status string) (any, error)
}

// View is what the presentation layer renders for a list page.
type View struct {
	Kind       domain.Kind          `json:"kind"`
	Items      any                  `json:"items"`
	Filters    liststate.Filters    `json:"filters"`
	Sort       string               `json:"sort,omitempty"`
	Order      string               `json:"order,omitempty"`
	Pagination liststate.Pagination `json:"pagination"`
	HasNext    bool                 `json:"hasNext"`
	HasPrev    bool                 `json:"hasPrevious"`
	PageSizes  []int                `json:"pageSizes"`
	Options    map[string][]string  `json:"options"`
	Loading    bool                 `json:"loading"`
	Error      string               `json:"error,omitempty"`
}

// Board binds one list state container to its source.
type Board[T any] struct {
	entry  catalog.Entry[T]
	source Source[T]
	cfg    Config
	now    func() time.Time
	newID  func() (string, error)

	mu     sync.Mutex
	state  *liststate.Container[T]
	loaded bool
	synced bool
	sort   string
	desc   bool
}

// NewBoard creates a Board. cfg must already carry defaults.
func NewBoard[T any](entry catalog.Entry[T], source Source[T], cfg Config) *Board[T] {
	now := func() time.Time { return time.Now().UTC() }
	return &Board[T]{
		entry:  entry,
		source: source,
		cfg:    cfg,
		now:    now,
		newID:  newID,
		state: liststate.New(entry.Schema,
			liststate.WithLimit(cfg.DefaultPageSize),
			liststate.WithClock(now),
		),
	}
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return id.String(), nil
}

// Kind returns the entity kind shown by this board.
func (b *Board[T]) Kind() domain.Kind {
	return b.entry.Kind
}

// Show loads the list on first use, forwards the URL parameters into the
// container and returns the visible page.
func (b *Board[T]) Show(ctx context.Context, loc urlstate.Location) View {
	b.mu.Lock()
	loaded := b.loaded
	b.mu.Unlock()

	if !loaded {
		if err := b.Refresh(ctx); err != nil {
			slog.WarnContext(ctx, "initial list load failed",
				"kind", b.entry.Kind,
				"error", err)
		}
	}

	q := urlstate.New(loc, urlstate.WithDefaults(b.urlDefaults()))

	b.mu.Lock()
	defer b.mu.Unlock()
	b.sync(q)
	return b.view()
}

// urlDefaults lists the value each parameter takes when absent.
func (b *Board[T]) urlDefaults() map[string]string {
	d := map[string]string{
		ParamPage:  "1",
		ParamLimit: strconv.Itoa(b.cfg.DefaultPageSize),
		ParamSort:  "",
		ParamOrder: "asc",
	}
	maps.Copy(d, b.entry.Schema.DefaultFilters())
	for _, key := range b.entry.Extras {
		d[key] = ""
	}
	return d
}

// sync applies q to the container. The first sync of a board honours every
// parameter so shared links open on the linked page. Later filter or limit
// changes return to page 1 and rewrite the page parameter to match.
func (b *Board[T]) sync(q *urlstate.Adapter) {
	defaults := b.entry.Schema.DefaultFilters()
	want := make(liststate.Filters, len(defaults)+len(b.entry.Extras))
	for key, def := range defaults {
		want[key] = q.Get(key, def)
	}
	for _, key := range b.entry.Extras {
		want[key] = q.Get(key, "")
	}
	filtersChanged := !want.Equal(b.state.Filters())
	if filtersChanged {
		b.state.SetFilters(want)
	}

	sortKey, desc := q.Get(ParamSort, ""), q.Get(ParamOrder, "asc") == "desc"
	if sortKey != b.sort || desc != b.desc {
		b.state.SetOrder(b.entry.Order(sortKey, desc))
		b.sort, b.desc = sortKey, desc
	}

	limit := q.GetInt(ParamLimit, b.cfg.DefaultPageSize)
	if !slices.Contains(b.cfg.PageSizes, limit) {
		limit = b.cfg.DefaultPageSize
		q.Set(ParamLimit, strconv.Itoa(limit))
	}
	limitChanged := limit != b.state.Pagination().Limit
	if limitChanged {
		b.state.SetLimit(limit)
	}

	page := q.GetInt(ParamPage, 1)
	switch {
	case b.synced && (filtersChanged || limitChanged):
		if page != 1 {
			q.Set(ParamPage, "1")
		}
	case page < 1:
		b.state.SetPage(1)
		q.Set(ParamPage, "1")
	default:
		b.state.SetPage(page)
	}
	b.synced = true

	if p := b.state.Pagination(); p.OutOfRange() {
		b.state.SetPage(p.LastPage())
		q.Set(ParamPage, strconv.Itoa(p.LastPage()))
	}
}

func (b *Board[T]) view() View {
	p := b.state.Pagination()
	v := View{
		Kind:       b.entry.Kind,
		Items:      b.state.VisiblePage(),
		Filters:    b.state.Filters(),
		Sort:       b.sort,
		Pagination: p,
		HasNext:    p.HasNext(),
		HasPrev:    p.HasPrevious(),
		PageSizes:  slices.Clone(b.cfg.PageSizes),
		Options:    b.entry.Options,
		Loading:    b.state.Loading(),
		Error:      b.state.Err(),
	}
	if b.sort != "" {
		v.Order = "asc"
		if b.desc {
			v.Order = "desc"
		}
	}
	return v
}

// Refresh replaces the list with a fresh collection from the source. The
// container is unlocked while the source is queried so concurrent views
// observe the loading flag.
func (b *Board[T]) Refresh(ctx context.Context) error {
	b.mu.Lock()
	b.state.SetLoading(true)
	b.mu.Unlock()

	items, err := b.source.List(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.state.SetLoading(false)
	if err != nil {
		b.state.SetError(err.Error())
		return fmt.Errorf("failed to load %s: %w", b.entry.Kind, err)
	}
	b.state.SetError("")
	b.state.SetList(items)
	b.loaded = true
	return nil
}

// reconcile discards optimistic changes after a failed source call.
func (b *Board[T]) reconcile(ctx context.Context) {
	if err := b.Refresh(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to reconcile list after source error",
			"kind", b.entry.Kind,
			"error", err)
	}
}

// Create adds a new entity decoded from payload. It appears at the head of
// the list before the source confirms it.
func (b *Board[T]) Create(ctx context.Context, payload []byte) (any, error) {
	e, err := b.decode(payload)
	if err != nil {
		return nil, err
	}

	id, err := b.newID()
	if err != nil {
		return nil, err
	}
	e = b.entry.Assign(e, id, b.now())

	if e, err = b.withStatus(e, b.entry.Statuses[0]); err != nil {
		return nil, err
	}

	b.mu.Lock()
	b.state.Add(e)
	b.mu.Unlock()

	created, err := b.source.Create(ctx, e)
	if err != nil {
		b.reconcile(ctx)
		return nil, fmt.Errorf("failed to create %s: %w", b.entry.Kind, err)
	}

	// The source may assign its own identifier or normalise fields.
	b.mu.Lock()
	b.state.Remove(id)
	b.state.Add(created)
	b.mu.Unlock()

	return created, nil
}

// Update replaces the entity with the given identifier by payload. The
// record's creation time is kept and its last-modified time stamped.
func (b *Board[T]) Update(ctx context.Context, id string, payload []byte) (any, error) {
	e, err := b.decode(payload)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	current, ok := b.state.Get(id)
	if !ok {
		b.mu.Unlock()
		return nil, fmt.Errorf("%s %s: %w", b.entry.Kind, id, domain.ErrNotFound)
	}
	e = b.entry.Assign(e, id, b.entry.Record(current).CreatedAt)
	if e, err = b.withStatus(e, b.entry.Status(current)); err != nil {
		b.mu.Unlock()
		return nil, err
	}
	b.state.Update(e)
	stamped, _ := b.state.Get(id)
	b.mu.Unlock()

	updated, err := b.source.Update(ctx, stamped)
	if err != nil {
		b.reconcile(ctx)
		return nil, fmt.Errorf("failed to update %s %s: %w", b.entry.Kind, id, err)
	}
	b.confirm(updated)
	return updated, nil
}

// SetStatus changes the status of the entity with the given identifier.
func (b *Board[T]) SetStatus(ctx context.Context, id, status string) (any, error) {
	status, err := domain.NewStatus(status, b.entry.Statuses)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	if _, ok := b.state.Get(id); !ok {
		b.mu.Unlock()
		return nil, fmt.Errorf("%s %s: %w", b.entry.Kind, id, domain.ErrNotFound)
	}
	b.state.SetStatus(id, status)
	changed, _ := b.state.Get(id)
	b.mu.Unlock()

	updated, err := b.source.Update(ctx, changed)
	if err != nil {
		b.reconcile(ctx)
		return nil, fmt.Errorf("failed to set status of %s %s: %w", b.entry.Kind, id, err)
	}
	b.confirm(updated)
	return updated, nil
}

// Delete removes the entity with the given identifier.
func (b *Board[T]) Delete(ctx context.Context, id string) error {
	b.mu.Lock()
	if _, ok := b.state.Get(id); !ok {
		b.mu.Unlock()
		return fmt.Errorf("%s %s: %w", b.entry.Kind, id, domain.ErrNotFound)
	}
	b.state.Remove(id)
	b.mu.Unlock()

	if err := b.source.Delete(ctx, id); err != nil {
		b.reconcile(ctx)
		return fmt.Errorf("failed to delete %s %s: %w", b.entry.Kind, id, err)
	}
	return nil
}

// confirm shows the source's copy of an updated entity, which may carry
// fields the source normalised.
func (b *Board[T]) confirm(e T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state.Update(e)
}

func (b *Board[T]) decode(payload []byte) (T, error) {
	var e T
	if err := json.Unmarshal(payload, &e); err != nil {
		return e, fmt.Errorf("%w: %w", domain.ErrInvalidPayload, err)
	}
	return e, nil
}

// withStatus validates the status of e, falling back to def when unset.
func (b *Board[T]) withStatus(e T, def string) (T, error) {
	raw := b.entry.Status(e)
	if raw == "" {
		raw = def
	}
	status, err := domain.NewStatus(raw, b.entry.Statuses)
	if err != nil {
		return e, err
	}
	if b.entry.Schema.SetStatus != nil {
		e = b.entry.Schema.SetStatus(e, status)
	}
	return e, nil
}
